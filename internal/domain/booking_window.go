package domain

import (
	"fmt"
	"strings"
	"time"
)

// Quota is a fare quota with its own booking window
type Quota string

const (
	QuotaGeneral Quota = "general"
	QuotaTatkal  Quota = "tatkal"
)

// ParseQuota parses a quota name, case-insensitive. Empty string means general.
func ParseQuota(s string) (Quota, error) {
	switch Quota(strings.ToLower(strings.TrimSpace(s))) {
	case "", QuotaGeneral:
		return QuotaGeneral, nil
	case QuotaTatkal:
		return QuotaTatkal, nil
	default:
		return "", fmt.Errorf("unknown quota %q", s)
	}
}

// IsTatkal returns true for the Tatkal quota
func (q Quota) IsTatkal() bool {
	return q == QuotaTatkal
}

// AdvanceDays returns how many days before the journey the booking window opens
func (q Quota) AdvanceDays() int {
	if q.IsTatkal() {
		return TatkalAdvanceDays
	}
	return GeneralAdvanceDays
}

// OpenClock returns the IST time of day the booking window opens
func (q Quota) OpenClock() ClockTime {
	if q.IsTatkal() {
		return TatkalOpenClock
	}
	return GeneralOpenClock
}

// String returns a human readable quota name
func (q Quota) String() string {
	if q.IsTatkal() {
		return "Tatkal"
	}
	return "General"
}

// BookingPhase is the position of the booking open date relative to today
type BookingPhase string

const (
	PhasePast    BookingPhase = "past"
	PhasePresent BookingPhase = "present"
	PhaseFuture  BookingPhase = "future"
)

// BookingStatus is the derived state of a booking window at some instant.
// It is never stored, every evaluation recomputes it.
type BookingStatus struct {
	Quota         Quota
	Phase         BookingPhase
	IsTimeOpen    bool
	IsClosed      bool
	DaysRemaining int
	OpenDate      time.Time // midnight in the calendar location
	OpenInstant   time.Time
	CloseInstant  time.Time // zero for the general quota
}

// IsTatkalClosed returns true when today's Tatkal window has passed its cutoff
func (s BookingStatus) IsTatkalClosed() bool {
	return s.Quota.IsTatkal() && s.Phase == PhasePresent && s.IsClosed
}

// HasCloseInstant returns true if the quota has a daily cutoff
func (s BookingStatus) HasCloseInstant() bool {
	return !s.CloseInstant.IsZero()
}

// ClockTime is a wall clock time of day
type ClockTime struct {
	Hour   int
	Minute int
}

// On returns the instant of this clock time on the calendar date of day, in loc
func (c ClockTime) On(day time.Time, loc *time.Location) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, c.Hour, c.Minute, 0, 0, loc)
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}
