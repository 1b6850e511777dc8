package watch_booking_status

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getBookingStatusHandler "github.com/m04kA/SMC-BookingWindow/internal/api/handlers/get_booking_status"
	"github.com/m04kA/SMC-BookingWindow/internal/domain"
	getBookingStatus "github.com/m04kA/SMC-BookingWindow/internal/usecase/get_booking_status"
	"github.com/m04kA/SMC-BookingWindow/pkg/logger"
)

type evaluationCounter struct {
	mu    sync.Mutex
	count int
}

func (c *evaluationCounter) ObserveEvaluation(quota, phase string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count++
}

func (c *evaluationCounter) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// readEvent читает одно SSE событие и возвращает его имя и данные
func readEvent(t *testing.T, r *bufio.Reader) (string, string) {
	t.Helper()
	var event, data string
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")
		switch {
		case line == "":
			return event, data
		case strings.HasPrefix(line, "event: "):
			event = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			data = strings.TrimPrefix(line, "data: ")
		}
	}
}

func TestHandle_StreamsStatusEvents(t *testing.T) {
	uc := getBookingStatus.NewUseCase(domain.IST, nil, logger.NewNop())
	h := NewHandler(uc, 20*time.Millisecond, nil, logger.NewNop())

	srv := httptest.NewServer(http.HandlerFunc(h.Handle))
	defer srv.Close()

	journey := time.Now().In(domain.IST).AddDate(0, 0, 90).Format(domain.DateFormat)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"?journeyDate="+journey, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	for i := 0; i < 2; i++ {
		event, data := readEvent(t, reader)
		assert.Equal(t, "status", event)

		var body getBookingStatusHandler.BookingWindowResponse
		require.NoError(t, json.Unmarshal([]byte(data), &body))
		assert.Equal(t, journey, body.JourneyDate)
		assert.Equal(t, "future", body.Phase)
	}
}

func TestHandle_InvalidQueryIsRejectedBeforeStreaming(t *testing.T) {
	uc := getBookingStatus.NewUseCase(domain.IST, nil, logger.NewNop())
	h := NewHandler(uc, time.Minute, nil, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/booking-window/watch?journeyDate=nope", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
}

func TestHandle_StopsWhenClientDisconnects(t *testing.T) {
	uc := getBookingStatus.NewUseCase(domain.IST, nil, logger.NewNop())
	h := NewHandler(uc, 10*time.Millisecond, nil, logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/booking-window/watch?journeyDate=2030-01-01&quota=tatkal", nil).
		WithContext(ctx)

	done := make(chan struct{})
	go func() {
		h.Handle(rec, req)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler did not return after client disconnect")
	}
}

func TestHandle_SubscribeEvaluatesOnce(t *testing.T) {
	counter := &evaluationCounter{}
	uc := getBookingStatus.NewUseCase(domain.IST, counter, logger.NewNop())
	h := NewHandler(uc, time.Hour, nil, logger.NewNop())

	srv := httptest.NewServer(http.HandlerFunc(h.Handle))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"?journeyDate=2030-01-01", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	event, _ := readEvent(t, bufio.NewReader(resp.Body))
	assert.Equal(t, "status", event)
	assert.Equal(t, 1, counter.Count())
}
