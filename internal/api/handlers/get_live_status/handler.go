package get_live_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BookingWindow/internal/api/handlers"
	"github.com/m04kA/SMC-BookingWindow/internal/service/trains"
)

const (
	msgInvalidTrainNumber  = "некорректный номер поезда, ожидается 5 цифр"
	msgTrainNotFound       = "поезд не найден"
	msgProviderUnavailable = "сервис ж/д данных временно недоступен"
)

type Handler struct {
	service TrainsService
	logger  Logger
}

func NewHandler(service TrainsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/trains/{trainNumber}/live-status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	trainNumber := mux.Vars(r)["trainNumber"]

	result, err := h.service.LiveStatus(r.Context(), trainNumber)
	if err != nil {
		switch {
		case errors.Is(err, trains.ErrInvalidTrainNumber):
			h.logger.Warn("GET /trains/{trainNumber}/live-status - Invalid train number: %s", trainNumber)
			handlers.RespondBadRequest(w, msgInvalidTrainNumber)

		case errors.Is(err, trains.ErrNotFound):
			handlers.RespondNotFound(w, msgTrainNotFound)

		case errors.Is(err, trains.ErrProviderUnavailable):
			h.logger.Error("GET /trains/{trainNumber}/live-status - Provider unavailable: %v", err)
			handlers.RespondBadGateway(w, msgProviderUnavailable)

		default:
			h.logger.Error("GET /trains/{trainNumber}/live-status - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
