package watch_booking_status

import (
	"time"

	getBookingStatus "github.com/m04kA/SMC-BookingWindow/internal/usecase/get_booking_status"
)

// Evaluator вычисляет статус окна бронирования на заданный момент
type Evaluator interface {
	EvaluateAt(req *getBookingStatus.Request, now time.Time) (*getBookingStatus.Response, error)
}

// Clock источник текущего времени
type Clock interface {
	Now() time.Time
}

// Metrics интерфейс для учета активных подписок
type Metrics interface {
	WatcherStarted()
	WatcherStopped()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
