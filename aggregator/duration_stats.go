package aggregator

import (
	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/entities/trip"
	"bikeshare/store"
)

// DurationStats returns the total and mean trip duration of the view. On an empty view
// the total is 0 and the status is NoData.
func DurationStats(view *store.RecordStore) queryresponse.DurationStats {
	accumulator := durationaccumulator.NewDurationAccumulator()
	view.ForEach(func(tripData trip.TripData) {
		accumulator.UpdateAccumulator(tripData.Duration)
	})

	mean, ok := accumulator.GetAverageDuration()
	if !ok {
		return queryresponse.DurationStats{Status: queryresponse.NoData}
	}

	return queryresponse.DurationStats{
		Status:        queryresponse.Available,
		Counter:       accumulator.Counter,
		TotalDuration: accumulator.TotalDuration,
		MeanDuration:  mean,
	}
}
