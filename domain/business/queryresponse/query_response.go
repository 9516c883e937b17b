package queryresponse

import (
	"time"

	"bikeshare/domain/entities"
	"bikeshare/domain/entities/trip"

	"github.com/google/uuid"
)

// NoRecord bucket for trips without a value in an optional field
const NoRecord = "No record"

// QueryResponse contains the statistics computed for one query
type QueryResponse struct {
	Metadata entities.Metadata `json:"metadata"`
	QueryID  string            `json:"query_id"`
	Selector string            `json:"selector"`
	Trips    int               `json:"trips"`
	Time     TimeStats         `json:"time"`
	Stations StationStats      `json:"stations"`
	Duration DurationStats     `json:"duration"`
	Users    UserStats         `json:"users"`
}

func NewQueryResponse(metadata entities.Metadata, selector string, trips int) *QueryResponse {
	return &QueryResponse{
		Metadata: metadata,
		QueryID:  uuid.NewString(),
		Selector: selector,
		Trips:    trips,
	}
}

func (qr *QueryResponse) GetMetadata() entities.Metadata {
	return qr.Metadata
}

func (qr *QueryResponse) GetQueryID() string {
	return qr.QueryID
}

// TimeStats most frequent times of travel
type TimeStats struct {
	Status            Status       `json:"status"`
	MostCommonMonth   time.Month   `json:"most_common_month"`
	MostCommonWeekday time.Weekday `json:"most_common_weekday"`
	MostCommonHour    int          `json:"most_common_hour"`
}

// StationStats most popular stations and trip
// + TripDistance: great-circle distance in km of MostCommonTrip, only set if HasTripDistance is true
type StationStats struct {
	Status                 Status     `json:"status"`
	MostCommonStartStation string     `json:"most_common_start_station,omitempty"`
	MostCommonEndStation   string     `json:"most_common_end_station,omitempty"`
	MostCommonTrip         trip.Route `json:"most_common_trip"`
	MostCommonTripCount    int        `json:"most_common_trip_count,omitempty"`
	HasTripDistance        bool       `json:"has_trip_distance"`
	TripDistance           float64    `json:"trip_distance,omitempty"`
}

// DurationStats total and mean trip duration, in seconds. MeanDuration is only valid when Status is Available
type DurationStats struct {
	Status        Status  `json:"status"`
	Counter       int     `json:"counter"`
	TotalDuration float64 `json:"total_duration"`
	MeanDuration  float64 `json:"mean_duration,omitempty"`
}

// ValueCount amount of trips with a given value
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// CountStats amount of trips per distinct value of a field
type CountStats struct {
	Status Status       `json:"status"`
	Counts []ValueCount `json:"counts,omitempty"`
}

// BirthYearStats earliest, most recent and most common year of birth
type BirthYearStats struct {
	Status     Status `json:"status"`
	Earliest   int    `json:"earliest,omitempty"`
	MostRecent int    `json:"most_recent,omitempty"`
	MostCommon int    `json:"most_common,omitempty"`
}

// UserStats user demographics. Status is NotAvailable when the dataset has no user fields at all
type UserStats struct {
	Status     Status         `json:"status"`
	UserTypes  CountStats     `json:"user_types"`
	Genders    CountStats     `json:"genders"`
	BirthYears BirthYearStats `json:"birth_years"`
}
