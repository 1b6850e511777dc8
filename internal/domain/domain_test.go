package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuota(t *testing.T) {
	tests := []struct {
		in      string
		want    Quota
		wantErr bool
	}{
		{in: "", want: QuotaGeneral},
		{in: "general", want: QuotaGeneral},
		{in: " TATKAL ", want: QuotaTatkal},
		{in: "premium", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseQuota(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuotaRules(t *testing.T) {
	assert.Equal(t, 60, QuotaGeneral.AdvanceDays())
	assert.Equal(t, 1, QuotaTatkal.AdvanceDays())
	assert.Equal(t, "08:00", QuotaGeneral.OpenClock().String())
	assert.Equal(t, "10:00", QuotaTatkal.OpenClock().String())
}

func TestClockTime_On(t *testing.T) {
	day := time.Date(2026, time.March, 5, 23, 59, 0, 0, time.UTC)

	got := TatkalOpenClock.On(day, IST)

	assert.Equal(t, time.Date(2026, time.March, 5, 4, 30, 0, 0, time.UTC), got.UTC())
}

func TestPNRStatus_IsConfirmed(t *testing.T) {
	p := PNRStatus{Passengers: []Passenger{{CurrentStatus: "CNF"}, {CurrentStatus: "WL 3"}}}
	assert.False(t, p.IsConfirmed())

	p.Passengers[1].CurrentStatus = "CNF"
	assert.True(t, p.IsConfirmed())

	assert.False(t, (&PNRStatus{}).IsConfirmed())
}
