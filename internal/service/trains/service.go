package trains

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/m04kA/SMC-BookingWindow/internal/domain"
	"github.com/m04kA/SMC-BookingWindow/internal/integrations/railwayservice"
	"github.com/m04kA/SMC-BookingWindow/internal/service/trains/models"
)

var (
	stationPattern     = regexp.MustCompile(fmt.Sprintf(`^[A-Z]{%d,%d}$`, domain.MinStationCodeLen, domain.MaxStationCodeLen))
	trainNumberPattern = regexp.MustCompile(fmt.Sprintf(`^[0-9]{%d}$`, domain.TrainNumberLength))
)

// Service сервис поиска поездов и их текущего положения
type Service struct {
	client RailwayClient
	logger Logger
}

// NewService создает новый экземпляр сервиса поездов
func NewService(client RailwayClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// Search ищет поезда между станциями на дату
func (s *Service) Search(ctx context.Context, from, to string, date time.Time) (*models.SearchResponse, error) {
	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))

	if !stationPattern.MatchString(from) {
		return nil, fmt.Errorf("%w: from=%q", ErrInvalidStation, from)
	}
	if !stationPattern.MatchString(to) {
		return nil, fmt.Errorf("%w: to=%q", ErrInvalidStation, to)
	}
	if from == to {
		return nil, fmt.Errorf("%w: %s", ErrSameStation, from)
	}
	if date.IsZero() {
		return nil, ErrInvalidDate
	}

	s.logger.Info("Search: %s -> %s on %s", from, to, date.Format(domain.DateFormat))

	trains, err := s.client.SearchTrains(ctx, from, to, date)
	if err != nil {
		return nil, s.mapClientError("Search", err)
	}

	s.logger.Info("Search: found %d trains %s -> %s", len(trains), from, to)
	return &models.SearchResponse{
		From:   from,
		To:     to,
		Date:   date.Format(domain.DateFormat),
		Trains: models.FromDomainTrains(trains),
	}, nil
}

// LiveStatus возвращает текущее положение поезда
func (s *Service) LiveStatus(ctx context.Context, trainNumber string) (*models.LiveStatusResponse, error) {
	trainNumber = strings.TrimSpace(trainNumber)
	if !trainNumberPattern.MatchString(trainNumber) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTrainNumber, trainNumber)
	}

	status, err := s.client.GetLiveTrainStatus(ctx, trainNumber)
	if err != nil {
		return nil, s.mapClientError("LiveStatus", err)
	}

	s.logger.Info("LiveStatus: train=%s at %s", trainNumber, status.CurrentStation)
	return models.FromDomainLive(status), nil
}

func (s *Service) mapClientError(op string, err error) error {
	if errors.Is(err, railwayservice.ErrNotFound) {
		s.logger.Warn("%s: provider returned no data", op)
		return ErrNotFound
	}
	s.logger.Error("%s: provider error: %v", op, err)
	return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
}
