package station

import "github.com/umahmood/haversine"

// StationData struct that contains the location of a station
type StationData struct {
	City      string  `json:"city"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GetCoordinates returns the station location as a haversine coordinate
func (sd StationData) GetCoordinates() haversine.Coord {
	return haversine.Coord{Lat: sd.Latitude, Lon: sd.Longitude}
}

// DistanceTo returns the great-circle distance in kilometers between both stations
func (sd StationData) DistanceTo(other StationData) float64 {
	_, km := haversine.Distance(sd.GetCoordinates(), other.GetCoordinates())
	return km
}
