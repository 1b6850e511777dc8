package domain

import "time"

// Advance booking rules of Indian Railways
const (
	GeneralAdvanceDays = 60 // General quota opens 60 days before the journey date
	TatkalAdvanceDays  = 1  // Tatkal quota opens the day before the journey date
)

// Booking office timings, IST wall clock
var (
	GeneralOpenClock = ClockTime{Hour: 8, Minute: 0}
	TatkalOpenClock  = ClockTime{Hour: 10, Minute: 0}
	TatkalCloseClock = ClockTime{Hour: 11, Minute: 15}
)

// IST is India Standard Time. It has no daylight saving, so a fixed zone is exact
// and does not depend on the tz database of the host.
var IST = time.FixedZone("IST", 5*60*60+30*60)

// Default configuration values
const (
	DefaultRefreshInterval = 60 * time.Second
	DefaultCalendarZone    = "Asia/Kolkata"
	DefaultPNRCacheTTL     = 5 * time.Minute
)

// Business validation constants
const (
	PNRLength         = 10
	RecentPNRLimit    = 5
	TrainNumberLength = 5
	MinStationCodeLen = 2
	MaxStationCodeLen = 5
)

// Reminder offsets relative to the booking open instant
const (
	PrepReminderLead     = 24 * time.Hour
	PrepReminderDuration = 30 * time.Minute
	LastCallReminderLead = 10 * time.Minute
	DefaultCalendarEvent = 24 * time.Hour // event length when no end is given
)

// DateFormat is the wire format of calendar dates (YYYY-MM-DD)
const DateFormat = "2006-01-02"
