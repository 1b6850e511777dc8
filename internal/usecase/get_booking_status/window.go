package get_booking_status

import (
	"time"

	"github.com/m04kA/SMC-BookingWindow/internal/domain"
)

// Evaluate вычисляет статус окна бронирования для даты поездки и квоты в момент now.
//
// Календарные даты (сегодня, дата открытия) считаются в локации now,
// дата поездки берется как календарная дата без учета времени.
// Время открытия и отсечка Tatkal фиксированы по IST и не зависят от локации.
// Функция чистая: повторный вызов с теми же аргументами дает тот же результат.
func Evaluate(journeyDate time.Time, quota domain.Quota, now time.Time) domain.BookingStatus {
	loc := now.Location()

	// 1-2. Дата открытия = дата поездки минус advanceDays
	openDate := dateOnly(journeyDate, loc).AddDate(0, 0, -quota.AdvanceDays())

	// 3-5. Фаза по знаку разницы в календарных днях
	today := dateOnly(now, loc)
	daysRemaining := daysBetween(today, openDate)
	phase := phaseOf(daysRemaining)

	// 6-7. Момент открытия по IST
	openInstant := quota.OpenClock().On(openDate, domain.IST)
	isTimeOpen := !now.Before(openInstant)

	status := domain.BookingStatus{
		Quota:         quota,
		Phase:         phase,
		IsTimeOpen:    isTimeOpen,
		DaysRemaining: daysRemaining,
		OpenDate:      openDate,
		OpenInstant:   openInstant,
	}

	// 8-9. Tatkal закрывается в 11:15 IST дня открытия; general не закрывается никогда
	if quota.IsTatkal() {
		status.CloseInstant = domain.TatkalCloseClock.On(openDate, domain.IST)
		status.IsClosed = phase == domain.PhasePast ||
			(phase == domain.PhasePresent && now.After(status.CloseInstant))
	}

	return status
}

func phaseOf(daysRemaining int) domain.BookingPhase {
	switch {
	case daysRemaining < 0:
		return domain.PhasePast
	case daysRemaining == 0:
		return domain.PhasePresent
	default:
		return domain.PhaseFuture
	}
}

// dateOnly возвращает полночь календарной даты t в локации loc.
// Берется дата из собственной локации t, время суток отбрасывается.
func dateOnly(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// daysBetween возвращает число календарных дней от from до to (со знаком).
// Считается по гражданским датам в UTC, поэтому переходы на летнее время не влияют.
func daysBetween(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	a := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	b := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
