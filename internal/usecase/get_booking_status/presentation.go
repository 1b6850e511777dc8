package get_booking_status

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BookingWindow/internal/domain"
)

const (
	labelClosed    = "CLOSED"
	labelOpenNow   = "OPEN NOW"
	labelOpensSoon = "OPENS SOON"
	labelLate      = "YOU ARE LATE"

	subtitleTatkalClosed = "Tatkal quota usually fills within minutes."
	subtitleTatkalPast   = "Tatkal booking for this journey has already closed."
	subtitleLive         = "Booking is live! Hurry up!"
	subtitleUntilOpen    = "Until booking opens"

	actionLabelBookNow           = "Book Now"
	actionLabelCheckStatus       = "Check Status"
	actionLabelCheckAvailability = "Check Availability"
	actionLabelSetReminder       = "Set Reminder"
)

// Present отображает статус окна бронирования в категорию, надпись и действие.
// Это таблица соответствий без состояния: результат зависит только от status.
func Present(status domain.BookingStatus) domain.Display {
	display := domain.Display{
		Subtitle: subtitle(status),
	}

	switch {
	case status.IsClosed:
		display.Category = domain.CategoryClosed
		display.Label = labelClosed
	case status.Phase == domain.PhasePresent && status.IsTimeOpen:
		display.Category = domain.CategoryOpenNow
		display.Label = labelOpenNow
	case status.Phase == domain.PhasePresent:
		display.Category = domain.CategoryCountdown
		display.Label = labelOpensSoon
	case status.Phase == domain.PhasePast:
		display.Category = domain.CategoryClosed
		display.Label = labelLate
	default:
		display.Category = domain.CategoryCountdown
		display.Label = fmt.Sprintf("%d %s LEFT", status.DaysRemaining, pluralDays(status.DaysRemaining, "DAY", "DAYS"))
	}

	display.Action, display.ActionLabel = action(status)
	return display
}

// action выбирает основную кнопку: бронирование доступно с момента открытия,
// до этого предлагается поставить напоминание
func action(status domain.BookingStatus) (domain.ActionKind, string) {
	bookable := status.Phase == domain.PhasePast ||
		(status.Phase == domain.PhasePresent && status.IsTimeOpen)
	if !bookable {
		return domain.ActionSetReminder, actionLabelSetReminder
	}

	switch {
	case status.IsClosed:
		return domain.ActionCheckStatus, actionLabelCheckStatus
	case status.Phase == domain.PhasePresent:
		return domain.ActionBookNow, actionLabelBookNow
	default:
		return domain.ActionCheckAvailability, actionLabelCheckAvailability
	}
}

func subtitle(status domain.BookingStatus) string {
	switch {
	case status.IsTatkalClosed():
		return subtitleTatkalClosed
	case status.Quota.IsTatkal() && status.Phase == domain.PhasePast:
		return subtitleTatkalPast
	case status.Phase == domain.PhasePresent && status.IsTimeOpen:
		return subtitleLive
	case status.Phase == domain.PhasePresent:
		return "Opens at " + FormatIST(status.OpenInstant)
	case status.Phase == domain.PhasePast:
		ago := -status.DaysRemaining
		return fmt.Sprintf("Opened %d %s ago", ago, pluralDays(ago, "day", "days"))
	default:
		return subtitleUntilOpen
	}
}

// FormatIST форматирует момент как время по IST, например "8:00 AM IST"
func FormatIST(t time.Time) string {
	return t.In(domain.IST).Format("3:04 PM") + " IST"
}

func pluralDays(n int, one, many string) string {
	if n == 1 || n == -1 {
		return one
	}
	return many
}
