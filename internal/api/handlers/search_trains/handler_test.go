package search_trains

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingWindow/internal/service/trains"
	"github.com/m04kA/SMC-BookingWindow/internal/service/trains/models"
	"github.com/m04kA/SMC-BookingWindow/pkg/logger"
)

type fakeService struct {
	err      error
	from, to string
	date     time.Time
	calls    int
}

func (s *fakeService) Search(ctx context.Context, from, to string, date time.Time) (*models.SearchResponse, error) {
	s.calls++
	s.from, s.to, s.date = from, to, date
	if s.err != nil {
		return nil, s.err
	}
	return &models.SearchResponse{
		From:   from,
		To:     to,
		Date:   date.Format("2006-01-02"),
		Trains: []models.TrainResponse{{TrainNumber: "12951"}},
	}, nil
}

func TestHandle_OK(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/trains?from=MMCT&to=NDLS&date=2026-12-15", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "MMCT", svc.from)
	assert.Equal(t, "NDLS", svc.to)
	assert.Equal(t, time.Date(2026, time.December, 15, 0, 0, 0, 0, time.UTC), svc.date)

	var body models.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Trains, 1)
	assert.Equal(t, "12951", body.Trains[0].TrainNumber)
}

func TestHandle_InvalidDateSkipsService(t *testing.T) {
	for _, query := range []string{"from=MMCT&to=NDLS", "from=MMCT&to=NDLS&date=15.12.2026"} {
		svc := &fakeService{}
		h := NewHandler(svc, logger.NewNop())

		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/trains?"+query, nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
		assert.Zero(t, svc.calls, query)
	}
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"invalid station", fmt.Errorf("%w: from=\"X\"", trains.ErrInvalidStation), http.StatusBadRequest, msgInvalidStation},
		{"same station", fmt.Errorf("%w: NDLS", trains.ErrSameStation), http.StatusBadRequest, msgSameStation},
		{"invalid date", trains.ErrInvalidDate, http.StatusBadRequest, msgInvalidDate},
		{"not found", trains.ErrNotFound, http.StatusNotFound, msgTrainsNotFound},
		{"provider", fmt.Errorf("%w: timeout", trains.ErrProviderUnavailable), http.StatusBadGateway, msgProviderUnavailable},
		{"unexpected", fmt.Errorf("boom"), http.StatusInternalServerError, "внутренняя ошибка сервера"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.err}, logger.NewNop())

			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/trains?from=MMCT&to=NDLS&date=2026-12-15", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMsg, body["message"])
		})
	}
}
