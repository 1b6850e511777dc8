package search_trains

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-BookingWindow/internal/api/handlers"
	"github.com/m04kA/SMC-BookingWindow/internal/domain"
	"github.com/m04kA/SMC-BookingWindow/internal/service/trains"
)

const (
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStation      = "некорректный код станции, ожидается от 2 до 5 латинских букв"
	msgSameStation         = "станции отправления и назначения совпадают"
	msgTrainsNotFound      = "поезда не найдены"
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

// Handle GET /api/v1/trains?from=&to=&date=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	date, err := time.Parse(domain.DateFormat, q.Get("date"))
	if err != nil {
		h.logger.Warn("GET /trains - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Search(r.Context(), q.Get("from"), q.Get("to"), date)
	if err != nil {
		switch {
		case errors.Is(err, trains.ErrInvalidStation):
			h.logger.Warn("GET /trains - Invalid station: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStation)

		case errors.Is(err, trains.ErrSameStation):
			handlers.RespondBadRequest(w, msgSameStation)

		case errors.Is(err, trains.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, trains.ErrNotFound):
			handlers.RespondNotFound(w, msgTrainsNotFound)

		case errors.Is(err, trains.ErrProviderUnavailable):
			h.logger.Error("GET /trains - Provider unavailable: %v", err)
			handlers.RespondBadGateway(w, msgProviderUnavailable)

		default:
			h.logger.Error("GET /trains - Failed to search: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
