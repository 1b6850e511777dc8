package get_pnr_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BookingWindow/internal/api/handlers"
	"github.com/m04kA/SMC-BookingWindow/internal/api/middleware"
	"github.com/m04kA/SMC-BookingWindow/internal/service/pnr"
)

const (
	msgMissingUserID       = "отсутствует ID пользователя"
	msgInvalidPNR          = "некорректный PNR, ожидается 10 цифр"
	msgPNRNotFound         = "PNR не найден"
	msgProviderUnavailable = "сервис ж/д данных временно недоступен"
)

type Handler struct {
	service PNRService
	logger  Logger
}

func NewHandler(service PNRService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/pnr/{pnr}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /pnr/{pnr} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	number := mux.Vars(r)["pnr"]

	result, err := h.service.GetStatus(r.Context(), userID, number)
	if err != nil {
		switch {
		case errors.Is(err, pnr.ErrInvalidPNR):
			h.logger.Warn("GET /pnr/{pnr} - Invalid PNR: %s", number)
			handlers.RespondBadRequest(w, msgInvalidPNR)

		case errors.Is(err, pnr.ErrPNRNotFound):
			h.logger.Warn("GET /pnr/{pnr} - PNR not found: %s", number)
			handlers.RespondNotFound(w, msgPNRNotFound)

		case errors.Is(err, pnr.ErrProviderUnavailable):
			h.logger.Error("GET /pnr/{pnr} - Provider unavailable: %v", err)
			handlers.RespondBadGateway(w, msgProviderUnavailable)

		default:
			h.logger.Error("GET /pnr/{pnr} - Failed to get status: pnr=%s, error=%v", number, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /pnr/{pnr} - Status retrieved: user_id=%d, pnr=%s, cached=%t", userID, number, result.Cached)
	handlers.RespondJSON(w, http.StatusOK, result)
}
