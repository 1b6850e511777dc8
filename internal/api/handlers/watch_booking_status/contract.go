package watch_booking_status

import (
	"time"

	getBookingStatus "github.com/m04kA/SMC-BookingWindow/internal/usecase/get_booking_status"
)

// BookingStatusUseCase проверяет запрос и вычисляет статус на заданный момент
type BookingStatusUseCase interface {
	Validate(req *getBookingStatus.Request) error
	EvaluateAt(req *getBookingStatus.Request, now time.Time) (*getBookingStatus.Response, error)
	Now() time.Time
}

// Metrics интерфейс для учета активных подписок
type Metrics interface {
	WatcherStarted()
	WatcherStopped()
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
