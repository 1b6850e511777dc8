package get_booking_status

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/m04kA/SMC-BookingWindow/internal/domain"
	getBookingStatus "github.com/m04kA/SMC-BookingWindow/internal/usecase/get_booking_status"
)

var (
	// ErrMissingJourneyDate дата поездки не передана
	ErrMissingJourneyDate = errors.New("journeyDate is required")

	// ErrInvalidJourneyDate дата поездки не в формате YYYY-MM-DD
	ErrInvalidJourneyDate = errors.New("journeyDate must be YYYY-MM-DD")

	// ErrInvalidQuota квота не general и не tatkal
	ErrInvalidQuota = errors.New("quota must be general or tatkal")
)

// ParseQuery разбирает journeyDate и quota из query параметров
func ParseQuery(q url.Values) (*getBookingStatus.Request, error) {
	rawDate := strings.TrimSpace(q.Get("journeyDate"))
	if rawDate == "" {
		return nil, ErrMissingJourneyDate
	}

	journeyDate, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		return nil, ErrInvalidJourneyDate
	}

	quota, err := domain.ParseQuota(q.Get("quota"))
	if err != nil {
		return nil, ErrInvalidQuota
	}

	return &getBookingStatus.Request{
		JourneyDate: journeyDate,
		Quota:       quota,
	}, nil
}

// BookingWindowResponse модель ответа со статусом окна бронирования
type BookingWindowResponse struct {
	JourneyDate   string             `json:"journeyDate"`
	Quota         string             `json:"quota"`
	QuotaName     string             `json:"quotaName"`
	EvaluatedAt   time.Time          `json:"evaluatedAt"`
	Phase         string             `json:"phase"`
	IsTimeOpen    bool               `json:"isTimeOpen"`
	IsClosed      bool               `json:"isClosed"`
	DaysRemaining int                `json:"daysRemaining"`
	OpenDate      string             `json:"openDate"`
	OpensAt       time.Time          `json:"opensAt"`
	ClosesAt      *time.Time         `json:"closesAt,omitempty"`
	Display       DisplayResponse    `json:"display"`
	Reminders     []ReminderResponse `json:"reminders"`
}

// DisplayResponse представление статуса
type DisplayResponse struct {
	Category    string `json:"category"`
	Label       string `json:"label"`
	Subtitle    string `json:"subtitle"`
	Action      string `json:"action"`
	ActionLabel string `json:"actionLabel"`
}

// ReminderResponse напоминание в календарь
type ReminderResponse struct {
	Kind        string    `json:"kind"`
	Title       string    `json:"title"`
	Details     string    `json:"details"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	CalendarURL string    `json:"calendarUrl"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getBookingStatus.Response) *BookingWindowResponse {
	status := resp.Status

	out := &BookingWindowResponse{
		JourneyDate:   resp.JourneyDate.Format(domain.DateFormat),
		Quota:         string(status.Quota),
		QuotaName:     status.Quota.String(),
		EvaluatedAt:   resp.EvaluatedAt,
		Phase:         string(status.Phase),
		IsTimeOpen:    status.IsTimeOpen,
		IsClosed:      status.IsClosed,
		DaysRemaining: status.DaysRemaining,
		OpenDate:      status.OpenDate.Format(domain.DateFormat),
		OpensAt:       status.OpenInstant,
		Display: DisplayResponse{
			Category:    string(resp.Display.Category),
			Label:       resp.Display.Label,
			Subtitle:    resp.Display.Subtitle,
			Action:      string(resp.Display.Action),
			ActionLabel: resp.Display.ActionLabel,
		},
		Reminders: make([]ReminderResponse, len(resp.Reminders)),
	}

	if status.HasCloseInstant() {
		closesAt := status.CloseInstant
		out.ClosesAt = &closesAt
	}

	for i, r := range resp.Reminders {
		out.Reminders[i] = ReminderResponse{
			Kind:        string(r.Kind),
			Title:       r.Title,
			Details:     r.Details,
			Start:       r.Start,
			End:         r.End,
			CalendarURL: r.URL,
		}
	}

	return out
}
