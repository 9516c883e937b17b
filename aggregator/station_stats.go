package aggregator

import (
	"bikeshare/domain/business/frequencycounter"
	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
	"bikeshare/store"
)

// StationStats returns the most common start station, end station and trip of the view.
// If both stations of the most common trip are in stations, the distance between them is added.
func StationStats(view *store.RecordStore, stations map[string]station.StationData) queryresponse.StationStats {
	if view.IsEmpty() {
		return queryresponse.StationStats{Status: queryresponse.NoData}
	}

	startStations := frequencycounter.NewFrequencyCounter[string]()
	endStations := frequencycounter.NewFrequencyCounter[string]()
	routes := frequencycounter.NewFrequencyCounter[trip.Route]()

	view.ForEach(func(tripData trip.TripData) {
		startStations.UpdateCounter(tripData.StartStation)
		endStations.UpdateCounter(tripData.EndStation)
		routes.UpdateCounter(tripData.GetRoute())
	})

	startStation, _, _ := startStations.GetMostFrequent()
	endStation, _, _ := endStations.GetMostFrequent()
	route, routeCount, _ := routes.GetMostFrequent()

	result := queryresponse.StationStats{
		Status:                 queryresponse.Available,
		MostCommonStartStation: startStation,
		MostCommonEndStation:   endStation,
		MostCommonTrip:         route,
		MostCommonTripCount:    routeCount,
	}

	start, okStart := stations[route.Start]
	end, okEnd := stations[route.End]
	if okStart && okEnd {
		result.HasTripDistance = true
		result.TripDistance = start.DistanceTo(end)
	}

	return result
}
