package clear_recent_pnrs

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

// Handle DELETE /api/v1/pnr/recent
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /pnr/recent - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.ClearRecent(r.Context(), userID); err != nil {
		h.logger.Error("DELETE /pnr/recent - Failed to clear: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /pnr/recent - Cleared: user_id=%d", userID)
	w.WriteHeader(http.StatusNoContent)
}
