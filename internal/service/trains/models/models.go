package models

import "github.com/m04kA/SMC-BookingWindow/internal/domain"

// TrainResponse поезд в результатах поиска
type TrainResponse struct {
	TrainNumber      string   `json:"trainNumber"`
	TrainName        string   `json:"trainName"`
	FromStation      string   `json:"fromStation"`
	ToStation        string   `json:"toStation"`
	DepartureTime    string   `json:"departureTime"`
	ArrivalTime      string   `json:"arrivalTime"`
	Duration         string   `json:"duration"`
	DaysRunning      []string `json:"daysRunning"`
	AvailableClasses []string `json:"availableClasses"`
	Type             string   `json:"type,omitempty"`
}

// SearchResponse результат поиска поездов
type SearchResponse struct {
	From   string          `json:"from"`
	To     string          `json:"to"`
	Date   string          `json:"date"`
	Trains []TrainResponse `json:"trains"`
}

// StationResponse станция маршрута в текущем положении поезда
type StationResponse struct {
	StationCode   string `json:"stationCode"`
	StationName   string `json:"stationName"`
	ArrivalTime   string `json:"arrivalTime,omitempty"`
	DepartureTime string `json:"departureTime,omitempty"`
	HaltTime      string `json:"haltTime,omitempty"`
	Distance      int    `json:"distance"`
	Day           int    `json:"day"`
	State         string `json:"state"`
	DelayMinutes  int    `json:"delayMinutes"`
	Platform      string `json:"platform,omitempty"`
}

// LiveStatusResponse текущее положение поезда
type LiveStatusResponse struct {
	TrainNumber    string            `json:"trainNumber"`
	TrainName      string            `json:"trainName"`
	StartDate      string            `json:"startDate,omitempty"`
	CurrentStation string            `json:"currentStation"`
	CurrentStatus  string            `json:"currentStatus"`
	Delayed        bool              `json:"delayed"`
	LastUpdated    string            `json:"lastUpdated,omitempty"`
	Stations       []StationResponse `json:"stations"`
}

// FromDomainTrains конвертирует domain поезда в ответ
func FromDomainTrains(trains []domain.Train) []TrainResponse {
	result := make([]TrainResponse, len(trains))
	for i, t := range trains {
		result[i] = TrainResponse{
			TrainNumber:      t.TrainNumber,
			TrainName:        t.TrainName,
			FromStation:      t.FromStation,
			ToStation:        t.ToStation,
			DepartureTime:    t.DepartureTime,
			ArrivalTime:      t.ArrivalTime,
			Duration:         t.Duration,
			DaysRunning:      t.DaysRunning,
			AvailableClasses: t.AvailableClasses,
			Type:             t.Type,
		}
	}
	return result
}

// FromDomainLive конвертирует domain статус поезда в ответ
func FromDomainLive(s *domain.LiveTrainStatus) *LiveStatusResponse {
	stations := make([]StationResponse, len(s.Stations))
	for i, st := range s.Stations {
		stations[i] = StationResponse{
			StationCode:   st.StationCode,
			StationName:   st.StationName,
			ArrivalTime:   st.ArrivalTime,
			DepartureTime: st.DepartureTime,
			HaltTime:      st.HaltTime,
			Distance:      st.Distance,
			Day:           st.Day,
			State:         string(st.State),
			DelayMinutes:  st.DelayMinutes,
			Platform:      st.Platform,
		}
	}

	return &LiveStatusResponse{
		TrainNumber:    s.TrainNumber,
		TrainName:      s.TrainName,
		StartDate:      s.StartDate,
		CurrentStation: s.CurrentStation,
		CurrentStatus:  s.CurrentStatus,
		Delayed:        s.IsDelayed(),
		LastUpdated:    s.LastUpdated,
		Stations:       stations,
	}
}
