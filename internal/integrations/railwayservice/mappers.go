package railwayservice

import (
	"sort"

	"github.com/m04kA/SMC-BookingWindow/internal/domain"
)

func toDomainPNR(d pnrData) *domain.PNRStatus {
	passengers := make([]domain.Passenger, len(d.PassengerStatus))
	for i, p := range d.PassengerStatus {
		name := p.Name
		if name == "" {
			name = "Passenger"
		}
		gender := p.Gender
		if gender == "" {
			gender = "U"
		}
		passengers[i] = domain.Passenger{
			Name:          name,
			Age:           p.Age,
			Gender:        gender,
			Status:        p.CurrentStatus,
			SeatNumber:    p.Berth,
			Coach:         p.Coach,
			BookingStatus: p.BookingStatus,
			CurrentStatus: p.CurrentStatus,
		}
	}

	return &domain.PNRStatus{
		PNR:             d.Pnr,
		TrainNumber:     d.TrainNo,
		TrainName:       d.TrainName,
		DateOfJourney:   d.Doj,
		FromStation:     d.From,
		ToStation:       d.To,
		BoardingStation: d.BoardingStation,
		ReservationUpto: d.ReservationUpto,
		Class:           d.Class,
		ChartPrepared:   d.ChartPrepared,
		Passengers:      passengers,
		BookingDate:     d.BookingDate,
		Quota:           d.Quota,
		TotalFare:       d.TotalFare,
	}
}

func toDomainTrains(data []trainData) []domain.Train {
	trains := make([]domain.Train, len(data))
	for i, t := range data {
		trains[i] = domain.Train{
			TrainNumber:      t.TrainNumber,
			TrainName:        t.TrainName,
			FromStation:      t.FromStationName,
			ToStation:        t.ToStationName,
			DepartureTime:    t.FromStd,
			ArrivalTime:      t.ToSta,
			Duration:         t.Duration,
			DaysRunning:      t.RunDays,
			AvailableClasses: t.ClassType,
			Type:             t.TrainType,
		}
	}
	return trains
}

// toDomainLive объединяет пройденные и предстоящие станции и сортирует по расстоянию от начальной
func toDomainLive(d liveData) *domain.LiveTrainStatus {
	all := make([]stationData, 0, len(d.PreviousStations)+len(d.UpcomingStations))
	all = append(all, d.PreviousStations...)
	all = append(all, d.UpcomingStations...)

	stations := make([]domain.StationStatus, len(all))
	for i, s := range all {
		stations[i] = domain.StationStatus{
			StationCode:   s.StationCode,
			StationName:   s.StationName,
			ArrivalTime:   s.Eta,
			DepartureTime: s.Etd,
			HaltTime:      s.Halt,
			Distance:      s.DistanceFromSource,
			Day:           s.Day,
			State:         stationState(s),
			DelayMinutes:  s.Delay,
			Platform:      s.PlatformNumber,
		}
	}
	sort.SliceStable(stations, func(i, j int) bool {
		return stations[i].Distance < stations[j].Distance
	})

	return &domain.LiveTrainStatus{
		TrainNumber:    d.TrainNumber,
		TrainName:      d.TrainName,
		StartDate:      d.TrainStartDate,
		CurrentStation: d.CurrentStationName,
		CurrentStatus:  d.Status,
		Stations:       stations,
		LastUpdated:    d.UpdatedTime,
	}
}

func stationState(s stationData) domain.StationState {
	switch {
	case s.HasDeparted:
		return domain.StationPassed
	case s.IsCurrent:
		return domain.StationCurrent
	default:
		return domain.StationUpcoming
	}
}
