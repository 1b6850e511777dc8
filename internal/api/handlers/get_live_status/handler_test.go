package get_live_status

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingWindow/internal/service/trains"
	"github.com/m04kA/SMC-BookingWindow/internal/service/trains/models"
	"github.com/m04kA/SMC-BookingWindow/pkg/logger"
)

type fakeService struct {
	err         error
	trainNumber string
}

func (s *fakeService) LiveStatus(ctx context.Context, trainNumber string) (*models.LiveStatusResponse, error) {
	s.trainNumber = trainNumber
	if s.err != nil {
		return nil, s.err
	}
	return &models.LiveStatusResponse{TrainNumber: trainNumber, CurrentStation: "KOTA JN", Delayed: true}, nil
}

func newRouter(svc TrainsService) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/trains/{trainNumber}/live-status", NewHandler(svc, logger.NewNop()).Handle).
		Methods(http.MethodGet)
	return r
}

func TestHandle_OK(t *testing.T) {
	svc := &fakeService{}

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/trains/12951/live-status", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "12951", svc.trainNumber)

	var body models.LiveStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "KOTA JN", body.CurrentStation)
	assert.True(t, body.Delayed)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"invalid train number", fmt.Errorf("%w: \"1295\"", trains.ErrInvalidTrainNumber), http.StatusBadRequest, msgInvalidTrainNumber},
		{"not found", trains.ErrNotFound, http.StatusNotFound, msgTrainNotFound},
		{"provider", fmt.Errorf("%w: timeout", trains.ErrProviderUnavailable), http.StatusBadGateway, msgProviderUnavailable},
		{"unexpected", fmt.Errorf("boom"), http.StatusInternalServerError, "внутренняя ошибка сервера"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newRouter(&fakeService{err: tt.err}).
				ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/trains/12951/live-status", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMsg, body["message"])
		})
	}
}
