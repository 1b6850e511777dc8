package get_booking_status

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BookingWindow/internal/api/handlers"
	getBookingStatus "github.com/m04kA/SMC-BookingWindow/internal/usecase/get_booking_status"
)

const (
	msgMissingJourneyDate = "не указана дата поездки (journeyDate)"
	msgInvalidJourneyDate = "некорректный формат даты поездки, ожидается YYYY-MM-DD"
	msgInvalidQuota       = "некорректная квота, ожидается general или tatkal"
)

type Handler struct {
	useCase GetBookingStatusUseCase
	logger  Logger
}

func NewHandler(useCase GetBookingStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/booking-window
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ParseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /booking-window - Invalid query: %v", err)
		handlers.RespondBadRequest(w, QueryErrorMessage(err))
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getBookingStatus.ErrInvalidQuota):
			h.logger.Warn("GET /booking-window - Invalid quota: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuota)

		case errors.Is(err, getBookingStatus.ErrInvalidInput):
			h.logger.Warn("GET /booking-window - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingJourneyDate)

		default:
			h.logger.Error("GET /booking-window - Failed to evaluate: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// QueryErrorMessage возвращает текст ответа для ошибки ParseQuery
func QueryErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrMissingJourneyDate):
		return msgMissingJourneyDate
	case errors.Is(err, ErrInvalidQuota):
		return msgInvalidQuota
	default:
		return msgInvalidJourneyDate
	}
}
