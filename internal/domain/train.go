package domain

// Train is a train running between two stations
type Train struct {
	TrainNumber      string
	TrainName        string
	FromStation      string
	ToStation        string
	DepartureTime    string
	ArrivalTime      string
	Duration         string
	DaysRunning      []string
	AvailableClasses []string
	Type             string
}

// StationState is the progress of a live train relative to a station
type StationState string

const (
	StationPassed   StationState = "passed"
	StationCurrent  StationState = "current"
	StationUpcoming StationState = "upcoming"
)

// StationStatus is one stop in a live running status
type StationStatus struct {
	StationCode   string
	StationName   string
	ArrivalTime   string
	DepartureTime string
	HaltTime      string
	Distance      int
	Day           int
	State         StationState
	DelayMinutes  int
	Platform      string
}

// LiveTrainStatus is the live running status of a train
type LiveTrainStatus struct {
	TrainNumber    string
	TrainName      string
	StartDate      string
	CurrentStation string
	CurrentStatus  string
	Stations       []StationStatus
	LastUpdated    string
}

// IsDelayed returns true if the train is late at its current station
func (s *LiveTrainStatus) IsDelayed() bool {
	for _, st := range s.Stations {
		if st.State == StationCurrent {
			return st.DelayMinutes > 0
		}
	}
	return false
}
