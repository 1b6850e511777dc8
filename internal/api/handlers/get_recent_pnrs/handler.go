package get_recent_pnrs

import (
	"net/http"

	"github.com/m04kA/SMC-BookingWindow/internal/api/handlers"
	"github.com/m04kA/SMC-BookingWindow/internal/api/middleware"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
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

// Handle GET /api/v1/pnr/recent
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /pnr/recent - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.ListRecent(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /pnr/recent - Failed to list: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /pnr/recent - Listed: user_id=%d, count=%d", userID, len(result.Items))
	handlers.RespondJSON(w, http.StatusOK, result)
}
