package railwayservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/SMC-BookingWindow/internal/domain"
)

const (
	pathPNRStatus     = "/api/v3/getPNRStatus"
	pathTrainsBetween = "/api/v3/trainBetweenStations"
	pathLiveStatus    = "/api/v1/getLiveTrainStatus"

	headerAPIKey  = "X-RapidAPI-Key"
	headerAPIHost = "X-RapidAPI-Host"

	// метки эндпоинтов для метрик
	endpointPNR    = "pnr_status"
	endpointSearch = "train_search"
	endpointLive   = "live_status"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс для учета запросов к провайдеру
type Metrics interface {
	ObserveRailwayRequest(endpoint, outcome string)
}

// Client клиент для работы с провайдером ж/д данных
type Client struct {
	baseURL    string
	apiKey     string
	apiHost    string
	httpClient *http.Client
	metrics    Metrics
	log        Logger
}

// NewClient создает новый экземпляр клиента провайдера ж/д данных
func NewClient(baseURL, apiKey, apiHost string, timeout time.Duration, metrics Metrics, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		apiHost: apiHost,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		log:     log,
	}
}

// GetPNRStatus получает статус PNR
func (c *Client) GetPNRStatus(ctx context.Context, pnr string) (*domain.PNRStatus, error) {
	var data pnrData
	if err := c.get(ctx, endpointPNR, pathPNRStatus, url.Values{"pnrNumber": {pnr}}, &data); err != nil {
		return nil, err
	}
	return toDomainPNR(data), nil
}

// SearchTrains ищет поезда между станциями на дату
func (c *Client) SearchTrains(ctx context.Context, from, to string, date time.Time) ([]domain.Train, error) {
	params := url.Values{
		"fromStationCode": {from},
		"toStationCode":   {to},
		"dateOfJourney":   {date.Format(domain.DateFormat)},
	}

	var data []trainData
	if err := c.get(ctx, endpointSearch, pathTrainsBetween, params, &data); err != nil {
		return nil, err
	}
	return toDomainTrains(data), nil
}

// GetLiveTrainStatus получает текущее положение поезда
func (c *Client) GetLiveTrainStatus(ctx context.Context, trainNumber string) (*domain.LiveTrainStatus, error) {
	params := url.Values{
		"trainNo":  {trainNumber},
		"startDay": {"1"},
	}

	var data liveData
	if err := c.get(ctx, endpointLive, pathLiveStatus, params, &data); err != nil {
		return nil, err
	}
	return toDomainLive(data), nil
}

func (c *Client) get(ctx context.Context, endpoint, path string, params url.Values, out interface{}) (err error) {
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		if c.metrics != nil {
			c.metrics.ObserveRailwayRequest(endpoint, outcome)
		}
	}()

	reqURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(headerAPIKey, c.apiKey)
		req.Header.Set(headerAPIHost, c.apiHost)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("RailwayService: %s request failed: %v", endpoint, err)
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return ErrNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	// Провайдер сообщает об отсутствии записи через status=false
	if !env.Status || len(env.Data) == 0 || string(env.Data) == "null" {
		c.log.Info("RailwayService: %s returned no data: %s", endpoint, env.Message)
		return ErrNotFound
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: failed to decode data: %v", ErrInvalidResponse, err)
	}

	return nil
}
