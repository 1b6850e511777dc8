package railwayservice

import "encoding/json"

// envelope общий формат ответа провайдера
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// pnrData ответ api/v3/getPNRStatus
type pnrData struct {
	Pnr             string          `json:"Pnr"`
	TrainNo         string          `json:"TrainNo"`
	TrainName       string          `json:"TrainName"`
	Doj             string          `json:"Doj"`
	From            string          `json:"From"`
	To              string          `json:"To"`
	BoardingStation string          `json:"BoardingStation"`
	ReservationUpto string          `json:"ReservationUpto"`
	Class           string          `json:"Class"`
	ChartPrepared   bool            `json:"ChartPrepared"`
	BookingDate     string          `json:"BookingDate"`
	Quota           string          `json:"Quota"`
	TotalFare       float64         `json:"TotalFare"`
	PassengerStatus []passengerData `json:"PassengerStatus"`
}

type passengerData struct {
	Name          string `json:"Name"`
	Age           int    `json:"Age"`
	Gender        string `json:"Gender"`
	Berth         string `json:"Berth"`
	Coach         string `json:"Coach"`
	BookingStatus string `json:"BookingStatus"`
	CurrentStatus string `json:"CurrentStatus"`
}

// trainData элемент ответа api/v3/trainBetweenStations
type trainData struct {
	TrainNumber     string   `json:"train_number"`
	TrainName       string   `json:"train_name"`
	FromStationName string   `json:"from_station_name"`
	ToStationName   string   `json:"to_station_name"`
	FromStd         string   `json:"from_std"`
	ToSta           string   `json:"to_sta"`
	Duration        string   `json:"duration"`
	RunDays         []string `json:"run_days"`
	ClassType       []string `json:"class_type"`
	TrainType       string   `json:"train_type"`
}

// liveData ответ api/v1/getLiveTrainStatus
type liveData struct {
	TrainNumber        string        `json:"train_number"`
	TrainName          string        `json:"train_name"`
	TrainStartDate     string        `json:"train_start_date"`
	CurrentStationName string        `json:"current_station_name"`
	Status             string        `json:"status"`
	UpdatedTime        string        `json:"updated_time"`
	PreviousStations   []stationData `json:"previous_stations"`
	UpcomingStations   []stationData `json:"upcoming_stations"`
}

type stationData struct {
	StationCode        string `json:"station_code"`
	StationName        string `json:"station_name"`
	Eta                string `json:"eta"`
	Etd                string `json:"etd"`
	Halt               string `json:"halt"`
	DistanceFromSource int    `json:"distance_from_source"`
	Day                int    `json:"day"`
	HasDeparted        bool   `json:"has_departed"`
	IsCurrent          bool   `json:"is_current"`
	Delay              int    `json:"delay"`
	PlatformNumber     string `json:"platform_number"`
}
