package reminders

import (
	"net/url"
	"time"

	"github.com/m04kA/SMC-BookingWindow/internal/domain"
)

const (
	googleCalendarURL  = "https://calendar.google.com/calendar/render"
	calendarDateFormat = "20060102T150405Z"
)

// GoogleCalendarURL строит ссылку на создание события в Google Calendar.
// Нулевой end означает событие длиной в сутки от start.
func GoogleCalendarURL(title, details, location string, start, end time.Time) string {
	if end.IsZero() {
		end = start.Add(domain.DefaultCalendarEvent)
	}

	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", title)
	params.Set("details", details)
	params.Set("location", location)
	params.Set("dates", formatCalendarDate(start)+"/"+formatCalendarDate(end))

	return googleCalendarURL + "?" + params.Encode()
}

func formatCalendarDate(t time.Time) string {
	return t.UTC().Format(calendarDateFormat)
}
