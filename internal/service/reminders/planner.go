package reminders

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BookingWindow/internal/domain"
)

const (
	reminderLocation = "IRCTC"

	prepTitle     = "Prepare for IRCTC Booking Tomorrow"
	lastCallTitle = "IRCTC Booking Opens in 10 Minutes!"

	journeyDateLayout = "January 2, 2006"
	clockLayout       = "3:04 PM"
)

// Plan возвращает напоминания для календаря, пока окно бронирования еще не открыто:
// подготовку за сутки и финальное напоминание за 10 минут до открытия.
// После открытия окна напоминания не нужны, возвращается пустой список.
func Plan(status domain.BookingStatus, journeyDate time.Time) []domain.Reminder {
	if status.IsTimeOpen {
		return []domain.Reminder{}
	}

	open := status.OpenInstant
	openAt := open.In(domain.IST).Format(clockLayout) + " IST"
	journey := journeyDate.Format(journeyDateLayout)

	prepStart := open.Add(-domain.PrepReminderLead)
	prep := domain.Reminder{
		Kind:     domain.ReminderPrep,
		Title:    prepTitle,
		Location: reminderLocation,
		Start:    prepStart,
		End:      prepStart.Add(domain.PrepReminderDuration),
		Details: fmt.Sprintf("Tomorrow at %s, booking opens for your journey on %s.\n\n"+
			"To Do:\n- Update IRCTC wallet\n- Update master list (add passengers)\n- Check train availability\n\n"+
			"Quota: %s", openAt, journey, status.Quota),
	}

	lastCall := domain.Reminder{
		Kind:     domain.ReminderLastCall,
		Title:    lastCallTitle,
		Location: reminderLocation,
		Start:    open.Add(-domain.LastCallReminderLead),
		End:      open,
		Details: fmt.Sprintf("Get ready! Booking opens at %s for journey on %s.\n\nQuota: %s",
			openAt, journey, status.Quota),
	}

	result := []domain.Reminder{prep, lastCall}
	for i := range result {
		r := &result[i]
		r.URL = GoogleCalendarURL(r.Title, r.Details, r.Location, r.Start, r.End)
	}

	return result
}
