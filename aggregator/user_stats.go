package aggregator

import (
	"bikeshare/domain/business/birthyearaccumulator"
	"bikeshare/domain/business/frequencycounter"
	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/entities/trip"
	"bikeshare/store"
)

// UserStats returns the user demographics of the view. Field presence is checked before
// anything is computed: a field the dataset doesn't have is NotAvailable, an empty view is NoData.
// The group is NotAvailable when the dataset has neither gender nor birth year, user types are
// still counted if the dataset has them.
func UserStats(view *store.RecordStore) queryresponse.UserStats {
	fields := view.GetFields()

	status := queryresponse.Available
	switch {
	case !fields.HasDemographics():
		status = queryresponse.NotAvailable
	case view.IsEmpty():
		status = queryresponse.NoData
	}

	return queryresponse.UserStats{
		Status: status,
		UserTypes: countValues(view, fields.UserType, func(tripData trip.TripData) string {
			return tripData.UserType
		}),
		Genders: countValues(view, fields.Gender, func(tripData trip.TripData) string {
			return tripData.Gender
		}),
		BirthYears: birthYears(view, fields.BirthYear),
	}
}

// countValues counts the trips per value of a field. Trips without value go to the NoRecord bucket
func countValues(view *store.RecordStore, available bool, getValue func(tripData trip.TripData) string) queryresponse.CountStats {
	if !available {
		return queryresponse.CountStats{Status: queryresponse.NotAvailable}
	}
	if view.IsEmpty() {
		return queryresponse.CountStats{Status: queryresponse.NoData}
	}

	counter := frequencycounter.NewFrequencyCounter[string]()
	view.ForEach(func(tripData trip.TripData) {
		value := getValue(tripData)
		if value == "" {
			value = queryresponse.NoRecord
		}
		counter.UpdateCounter(value)
	})

	entries := counter.GetEntries()
	counts := make([]queryresponse.ValueCount, 0, len(entries))
	for _, entry := range entries {
		counts = append(counts, queryresponse.ValueCount{Value: entry.Key, Count: entry.Count})
	}

	return queryresponse.CountStats{
		Status: queryresponse.Available,
		Counts: counts,
	}
}

func birthYears(view *store.RecordStore, available bool) queryresponse.BirthYearStats {
	if !available {
		return queryresponse.BirthYearStats{Status: queryresponse.NotAvailable}
	}

	accumulator := birthyearaccumulator.NewBirthYearAccumulator()
	view.ForEach(func(tripData trip.TripData) {
		accumulator.UpdateAccumulator(tripData.BirthYear)
	})

	mostCommon, ok := accumulator.GetMostCommon()
	if !ok {
		// empty view, or none of its trips has a birth year
		return queryresponse.BirthYearStats{Status: queryresponse.NoData}
	}

	return queryresponse.BirthYearStats{
		Status:     queryresponse.Available,
		Earliest:   accumulator.Earliest,
		MostRecent: accumulator.MostRecent,
		MostCommon: mostCommon,
	}
}
