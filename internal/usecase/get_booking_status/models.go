package get_booking_status

import (
	"time"

	"github.com/m04kA/SMC-BookingWindow/internal/domain"
)

// Request модель запроса статуса окна бронирования
type Request struct {
	JourneyDate time.Time    // Дата поездки (время суток игнорируется)
	Quota       domain.Quota // Квота: general или tatkal
}

// Response модель ответа со статусом окна бронирования
type Response struct {
	JourneyDate time.Time
	EvaluatedAt time.Time // Момент, на который вычислен статус
	Status      domain.BookingStatus
	Display     domain.Display
	Reminders   []domain.Reminder // Пусто, если окно уже открыто
}
