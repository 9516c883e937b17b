package trip

import "time"

// TripData struct that contains one bike-share trip
// + Line: line of the dataset the trip was read from
// + StartTime: moment in which the trip begins
// + Duration: duration of the trip in seconds
// + StartStation: name of the station in which the trip begins
// + EndStation: name of the station in which the trip ends
// + UserType: type of user, empty when the dataset has no record for it
// + Gender: gender of the user, empty when the dataset has no record for it
// + BirthYear: birth year of the user, 0 when the dataset has no record for it
// + Month, Weekday, Hour: derived from StartTime on creation
type TripData struct {
	Line         int          `json:"line"`
	StartTime    time.Time    `json:"start_time"`
	Duration     float64      `json:"duration"`
	StartStation string       `json:"start_station"`
	EndStation   string       `json:"end_station"`
	UserType     string       `json:"user_type,omitempty"`
	Gender       string       `json:"gender,omitempty"`
	BirthYear    int          `json:"birth_year,omitempty"`
	Month        time.Month   `json:"month"`
	Weekday      time.Weekday `json:"weekday"`
	Hour         int          `json:"hour"`
}

// NewTripData builds a TripData and derives its calendar fields from startTime
func NewTripData(line int, startTime time.Time, duration float64, startStation string, endStation string) TripData {
	return TripData{
		Line:         line,
		StartTime:    startTime,
		Duration:     duration,
		StartStation: startStation,
		EndStation:   endStation,
		Month:        startTime.Month(),
		Weekday:      startTime.Weekday(),
		Hour:         startTime.Hour(),
	}
}

// WithUserData returns a copy of the trip with the optional user fields set
func (td TripData) WithUserData(userType string, gender string, birthYear int) TripData {
	td.UserType = userType
	td.Gender = gender
	td.BirthYear = birthYear
	return td
}

// HasBirthYear returns true if the trip has a birth year record
func (td TripData) HasBirthYear() bool {
	return td.BirthYear != 0
}

// GetRoute returns the (start, end) pair of the trip. A->B is different from B->A
func (td TripData) GetRoute() Route {
	return Route{Start: td.StartStation, End: td.EndStation}
}

// Route start and end station of a trip
type Route struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (r Route) String() string {
	return r.Start + " & " + r.End
}
