package aggregator

import (
	"fmt"
	"time"

	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/entities"
	"bikeshare/domain/entities/selector"
	"bikeshare/domain/entities/station"
	"bikeshare/store"

	log "github.com/sirupsen/logrus"
)

const (
	stage        = "aggregator"
	responseType = "report"
)

// Aggregator computes the statistic groups of a filtered view of trips
// + dataset: file the trips were loaded from, added to the response metadata
// + stations: locations of the stations of the city, may be empty
type Aggregator struct {
	dataset  string
	stations map[string]station.StationData
}

func NewAggregator(dataset string, stations map[string]station.StationData) *Aggregator {
	if stations == nil {
		stations = make(map[string]station.StationData)
	}
	return &Aggregator{
		dataset:  dataset,
		stations: stations,
	}
}

func (a *Aggregator) getLogMessage(method string, city string, message string) string {
	return fmt.Sprintf("[stage: %s][city: %s][method: %s][status: OK] %s", stage, city, method, message)
}

// Aggregate computes the four groups over view. Empty views and missing fields never
// fail, they are reported through the Status of each group.
func (a *Aggregator) Aggregate(view *store.RecordStore, s selector.Selector) *queryresponse.QueryResponse {
	city := view.GetCity()
	metadata := entities.NewMetadata(city, a.dataset, responseType, stage)
	response := queryresponse.NewQueryResponse(metadata, s.String(), view.Len())

	response.Time = timed(a, city, "TimeStats", func() queryresponse.TimeStats {
		return TimeStats(view)
	})
	response.Stations = timed(a, city, "StationStats", func() queryresponse.StationStats {
		return StationStats(view, a.stations)
	})
	response.Duration = timed(a, city, "DurationStats", func() queryresponse.DurationStats {
		return DurationStats(view)
	})
	response.Users = timed(a, city, "UserStats", func() queryresponse.UserStats {
		return UserStats(view)
	})

	return response
}

func timed[T any](a *Aggregator, city string, method string, fn func() T) T {
	start := time.Now()
	result := fn()
	log.Debug(a.getLogMessage(method, city, fmt.Sprintf("took %s", time.Since(start))))
	return result
}
