package get_booking_status

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BookingWindow/internal/domain"
	"github.com/m04kA/SMC-BookingWindow/internal/service/reminders"
)

// UseCase use case для получения статуса окна бронирования
type UseCase struct {
	timeProvider TimeProvider
	location     *time.Location
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// location задает "локальный" календарь, в котором считаются сегодня и дата открытия.
func NewUseCase(location *time.Location, metrics Metrics, logger Logger) *UseCase {
	if location == nil {
		location = domain.IST
	}

	return &UseCase{
		timeProvider: &RealTimeProvider{},
		location:     location,
		metrics:      metrics,
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Now возвращает текущее время в календарной локации use case
func (uc *UseCase) Now() time.Time {
	return uc.timeProvider.Now().In(uc.location)
}

// Execute выполняет use case для текущего момента времени
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	return uc.EvaluateAt(req, uc.Now())
}

// Validate проверяет запрос без вычисления статуса
func (uc *UseCase) Validate(req *Request) error {
	return validateRequest(req)
}

// EvaluateAt вычисляет статус на заданный момент now.
// Используется при периодическом пересчете, когда время задает подписка.
func (uc *UseCase) EvaluateAt(req *Request, now time.Time) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetBookingStatus: validation failed: %v", err)
		return nil, err
	}

	now = now.In(uc.location)
	status := Evaluate(req.JourneyDate, req.Quota, now)
	display := Present(status)

	if uc.metrics != nil {
		uc.metrics.ObserveEvaluation(string(status.Quota), string(status.Phase))
	}

	uc.logger.Info("GetBookingStatus: journey=%s, quota=%s, open=%s, phase=%s, days=%d, timeOpen=%t, closed=%t",
		req.JourneyDate.Format(domain.DateFormat), req.Quota, status.OpenInstant.Format(time.RFC3339),
		status.Phase, status.DaysRemaining, status.IsTimeOpen, status.IsClosed)

	return &Response{
		JourneyDate: req.JourneyDate,
		EvaluatedAt: now,
		Status:      status,
		Display:     display,
		Reminders:   reminders.Plan(status, req.JourneyDate),
	}, nil
}
