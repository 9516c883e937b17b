package aggregator

import (
	"time"

	"bikeshare/domain/business/frequencycounter"
	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/entities/trip"
	"bikeshare/store"
)

// TimeStats returns the most common month, weekday and start hour of the view
func TimeStats(view *store.RecordStore) queryresponse.TimeStats {
	if view.IsEmpty() {
		return queryresponse.TimeStats{Status: queryresponse.NoData}
	}

	months := frequencycounter.NewFrequencyCounter[time.Month]()
	weekdays := frequencycounter.NewFrequencyCounter[time.Weekday]()
	hours := frequencycounter.NewFrequencyCounter[int]()

	view.ForEach(func(tripData trip.TripData) {
		months.UpdateCounter(tripData.Month)
		weekdays.UpdateCounter(tripData.Weekday)
		hours.UpdateCounter(tripData.Hour)
	})

	month, _, _ := months.GetMostFrequent()
	weekday, _, _ := weekdays.GetMostFrequent()
	hour, _, _ := hours.GetMostFrequent()

	return queryresponse.TimeStats{
		Status:            queryresponse.Available,
		MostCommonMonth:   month,
		MostCommonWeekday: weekday,
		MostCommonHour:    hour,
	}
}
