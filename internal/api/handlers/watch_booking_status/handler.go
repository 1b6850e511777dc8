package watch_booking_status

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/m04kA/SMC-BookingWindow/internal/api/handlers"
	getBookingStatusHandler "github.com/m04kA/SMC-BookingWindow/internal/api/handlers/get_booking_status"
	"github.com/m04kA/SMC-BookingWindow/internal/domain"
	getBookingStatus "github.com/m04kA/SMC-BookingWindow/internal/usecase/get_booking_status"
	watchBookingStatus "github.com/m04kA/SMC-BookingWindow/internal/usecase/watch_booking_status"
)

const (
	msgStreamingUnsupported = "потоковая передача не поддерживается"
	msgInvalidRequest       = "некорректные параметры запроса"

	eventStatus = "status"
)

type Handler struct {
	useCase  BookingStatusUseCase
	interval time.Duration
	metrics  Metrics
	logger   Logger
}

// NewHandler создает обработчик подписки. interval <= 0 означает интервал по умолчанию.
func NewHandler(useCase BookingStatusUseCase, interval time.Duration, metrics Metrics, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		interval: interval,
		metrics:  metrics,
		logger:   logger,
	}
}

// Handle GET /api/v1/booking-window/watch
// Отдает text/event-stream: событие status сразу и на каждом тике.
// Подписка останавливается при отключении клиента.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := getBookingStatusHandler.ParseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /booking-window/watch - Invalid query: %v", err)
		handlers.RespondBadRequest(w, getBookingStatusHandler.QueryErrorMessage(err))
		return
	}

	// Проверяем запрос до перехода в потоковый режим, чтобы вернуть 400.
	// Первое вычисление делает сам Watcher.
	if err := h.useCase.Validate(req); err != nil {
		if errors.Is(err, getBookingStatus.ErrInvalidInput) || errors.Is(err, getBookingStatus.ErrInvalidQuota) {
			h.logger.Warn("GET /booking-window/watch - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)
			return
		}
		h.logger.Error("GET /booking-window/watch - Failed to validate: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		h.logger.Error("GET /booking-window/watch - ResponseWriter does not support flushing")
		handlers.RespondError(w, http.StatusInternalServerError, msgStreamingUnsupported)
		return
	}

	watcher := watchBookingStatus.New(h.useCase, h.useCase, req, h.interval, h.metrics, h.logger)
	defer watcher.Stop()

	updates, unsubscribe := watcher.Subscribe()
	defer unsubscribe()

	go func() {
		if err := watcher.Start(r.Context()); err != nil {
			h.logger.Warn("GET /booking-window/watch - Watcher finished with error: %v", err)
		}
	}()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	h.logger.Info("GET /booking-window/watch - Subscribed: journey=%s, quota=%s",
		req.JourneyDate.Format(domain.DateFormat), req.Quota)

	for {
		select {
		case <-r.Context().Done():
			h.logger.Info("GET /booking-window/watch - Client disconnected")
			return
		case resp, ok := <-updates:
			if !ok {
				return
			}
			if err := writeEvent(w, eventStatus, getBookingStatusHandler.FromUseCaseResponse(resp)); err != nil {
				h.logger.Warn("GET /booking-window/watch - Failed to write event: %v", err)
				return
			}
			flusher.Flush()
		}
	}
}

func writeEvent(w http.ResponseWriter, event string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, payload)
	return err
}
