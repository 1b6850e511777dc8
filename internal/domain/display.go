package domain

import "time"

// DisplayCategory is one of three mutually exclusive visual states
type DisplayCategory string

const (
	CategoryClosed    DisplayCategory = "closed"
	CategoryOpenNow   DisplayCategory = "open-now"
	CategoryCountdown DisplayCategory = "countdown"
)

// ActionKind is the primary control offered next to the status
type ActionKind string

const (
	ActionBookNow           ActionKind = "book-now"
	ActionCheckStatus       ActionKind = "check-status"
	ActionCheckAvailability ActionKind = "check-availability"
	ActionSetReminder       ActionKind = "set-reminder"
)

// Display is the presentation of a BookingStatus
type Display struct {
	Category    DisplayCategory
	Label       string
	Subtitle    string
	Action      ActionKind
	ActionLabel string
}

// ReminderKind identifies a calendar reminder
type ReminderKind string

const (
	ReminderPrep     ReminderKind = "prep"
	ReminderLastCall ReminderKind = "last-call"
)

// Reminder is a calendar event suggested before the booking window opens
type Reminder struct {
	Kind     ReminderKind
	Title    string
	Details  string
	Location string
	Start    time.Time
	End      time.Time
	URL      string
}
