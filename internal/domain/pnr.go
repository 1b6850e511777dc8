package domain

import "time"

// PNRStatus is a passenger reservation record returned by the railway data provider
type PNRStatus struct {
	PNR             string      `json:"pnr"`
	TrainNumber     string      `json:"trainNumber"`
	TrainName       string      `json:"trainName"`
	DateOfJourney   string      `json:"dateOfJourney"`
	FromStation     string      `json:"fromStation"`
	ToStation       string      `json:"toStation"`
	BoardingStation string      `json:"boardingStation"`
	ReservationUpto string      `json:"reservationUpto"`
	Class           string      `json:"class"`
	ChartPrepared   bool        `json:"chartPrepared"`
	Passengers      []Passenger `json:"passengers"`
	BookingDate     string      `json:"bookingDate,omitempty"`
	Quota           string      `json:"quota,omitempty"`
	TotalFare       float64     `json:"totalFare,omitempty"`
}

// Passenger is one traveller of a PNR
type Passenger struct {
	Name          string `json:"name"`
	Age           int    `json:"age"`
	Gender        string `json:"gender"`
	Status        string `json:"status"`
	SeatNumber    string `json:"seatNumber,omitempty"`
	Coach         string `json:"coach,omitempty"`
	BookingStatus string `json:"bookingStatus,omitempty"`
	CurrentStatus string `json:"currentStatus,omitempty"`
}

// IsConfirmed returns true if every passenger holds a confirmed berth
func (p *PNRStatus) IsConfirmed() bool {
	if len(p.Passengers) == 0 {
		return false
	}
	for _, passenger := range p.Passengers {
		if passenger.CurrentStatus != "CNF" {
			return false
		}
	}
	return true
}

// RecentPNR is a PNR a user has looked up, newest first in listings
type RecentPNR struct {
	PNR      string    `json:"pnr"`
	ViewedAt time.Time `json:"viewedAt"`
}
