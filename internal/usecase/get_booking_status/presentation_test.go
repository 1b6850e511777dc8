package get_booking_status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-BookingWindow/internal/domain"
)

func TestPresent(t *testing.T) {
	openGeneral := time.Date(2026, time.October, 16, 8, 0, 0, 0, domain.IST)

	tests := []struct {
		name         string
		status       domain.BookingStatus
		wantCategory domain.DisplayCategory
		wantLabel    string
		wantSubtitle string
		wantAction   domain.ActionKind
	}{
		{
			name: "tatkal closed today",
			status: domain.BookingStatus{
				Quota: domain.QuotaTatkal, Phase: domain.PhasePresent, IsTimeOpen: true, IsClosed: true,
			},
			wantCategory: domain.CategoryClosed,
			wantLabel:    "CLOSED",
			wantSubtitle: "Tatkal quota usually fills within minutes.",
			wantAction:   domain.ActionCheckStatus,
		},
		{
			name: "tatkal past",
			status: domain.BookingStatus{
				Quota: domain.QuotaTatkal, Phase: domain.PhasePast, IsTimeOpen: true, IsClosed: true, DaysRemaining: -1,
			},
			wantCategory: domain.CategoryClosed,
			wantLabel:    "CLOSED",
			wantSubtitle: "Tatkal booking for this journey has already closed.",
			wantAction:   domain.ActionCheckStatus,
		},
		{
			name: "open now",
			status: domain.BookingStatus{
				Quota: domain.QuotaGeneral, Phase: domain.PhasePresent, IsTimeOpen: true,
			},
			wantCategory: domain.CategoryOpenNow,
			wantLabel:    "OPEN NOW",
			wantSubtitle: "Booking is live! Hurry up!",
			wantAction:   domain.ActionBookNow,
		},
		{
			name: "opens soon",
			status: domain.BookingStatus{
				Quota: domain.QuotaGeneral, Phase: domain.PhasePresent, OpenInstant: openGeneral,
			},
			wantCategory: domain.CategoryCountdown,
			wantLabel:    "OPENS SOON",
			wantSubtitle: "Opens at 8:00 AM IST",
			wantAction:   domain.ActionSetReminder,
		},
		{
			name: "late",
			status: domain.BookingStatus{
				Quota: domain.QuotaGeneral, Phase: domain.PhasePast, IsTimeOpen: true, DaysRemaining: -3,
			},
			wantCategory: domain.CategoryClosed,
			wantLabel:    "YOU ARE LATE",
			wantSubtitle: "Opened 3 days ago",
			wantAction:   domain.ActionCheckAvailability,
		},
		{
			name: "late by one day",
			status: domain.BookingStatus{
				Quota: domain.QuotaGeneral, Phase: domain.PhasePast, IsTimeOpen: true, DaysRemaining: -1,
			},
			wantCategory: domain.CategoryClosed,
			wantLabel:    "YOU ARE LATE",
			wantSubtitle: "Opened 1 day ago",
			wantAction:   domain.ActionCheckAvailability,
		},
		{
			name: "days left",
			status: domain.BookingStatus{
				Quota: domain.QuotaGeneral, Phase: domain.PhaseFuture, DaysRemaining: 12,
			},
			wantCategory: domain.CategoryCountdown,
			wantLabel:    "12 DAYS LEFT",
			wantSubtitle: "Until booking opens",
			wantAction:   domain.ActionSetReminder,
		},
		{
			name: "one day left",
			status: domain.BookingStatus{
				Quota: domain.QuotaTatkal, Phase: domain.PhaseFuture, DaysRemaining: 1,
			},
			wantCategory: domain.CategoryCountdown,
			wantLabel:    "1 DAY LEFT",
			wantSubtitle: "Until booking opens",
			wantAction:   domain.ActionSetReminder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Present(tt.status)

			assert.Equal(t, tt.wantCategory, got.Category)
			assert.Equal(t, tt.wantLabel, got.Label)
			assert.Equal(t, tt.wantSubtitle, got.Subtitle)
			assert.Equal(t, tt.wantAction, got.Action)
			assert.NotEmpty(t, got.ActionLabel)
		})
	}
}

func TestPresent_Total(t *testing.T) {
	phases := []domain.BookingPhase{domain.PhasePast, domain.PhasePresent, domain.PhaseFuture}
	quotas := []domain.Quota{domain.QuotaGeneral, domain.QuotaTatkal}

	for _, q := range quotas {
		for _, p := range phases {
			for _, open := range []bool{false, true} {
				for _, closed := range []bool{false, true} {
					got := Present(domain.BookingStatus{Quota: q, Phase: p, IsTimeOpen: open, IsClosed: closed, DaysRemaining: 2})

					assert.Contains(t,
						[]domain.DisplayCategory{domain.CategoryClosed, domain.CategoryOpenNow, domain.CategoryCountdown},
						got.Category)
					assert.NotEmpty(t, got.Label)
					assert.NotEmpty(t, got.Subtitle)
					assert.NotEmpty(t, got.Action)
				}
			}
		}
	}
}

func TestPresent_FromEvaluate(t *testing.T) {
	status := Evaluate(journey(2026, time.October, 17), domain.QuotaTatkal, istAt(16, 9, 0, 0))

	got := Present(status)

	assert.Equal(t, domain.CategoryCountdown, got.Category)
	assert.Equal(t, "OPENS SOON", got.Label)
	assert.Equal(t, "Opens at 10:00 AM IST", got.Subtitle)
}
