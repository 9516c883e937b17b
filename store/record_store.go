package store

import "bikeshare/domain/entities/trip"

// Fields tells which optional fields carry information in a dataset
type Fields struct {
	UserType  bool `json:"user_type"`
	Gender    bool `json:"gender"`
	BirthYear bool `json:"birth_year"`
}

// HasDemographics returns true if the dataset has gender or birth year. User type alone doesn't count
func (f Fields) HasDemographics() bool {
	return f.Gender || f.BirthYear
}

// RecordStore ordered collection of trips of a city. Once built, it's never modified:
// narrowing a store returns a new one.
// + city: city the trips belong to
// + fields: optional fields available in the dataset. Narrowed stores keep the ones of the full dataset
// + trips: trips in ingestion order
type RecordStore struct {
	city   string
	fields Fields
	trips  []trip.TripData
}

// NewRecordStore creates a store with a copy of trips
func NewRecordStore(city string, fields Fields, trips []trip.TripData) *RecordStore {
	tripsCopy := make([]trip.TripData, len(trips))
	copy(tripsCopy, trips)
	return &RecordStore{
		city:   city,
		fields: fields,
		trips:  tripsCopy,
	}
}

func (rs *RecordStore) GetCity() string {
	return rs.city
}

func (rs *RecordStore) GetFields() Fields {
	return rs.fields
}

// Len returns the amount of trips
func (rs *RecordStore) Len() int {
	return len(rs.trips)
}

// IsEmpty returns true if the store has no trips
func (rs *RecordStore) IsEmpty() bool {
	return len(rs.trips) == 0
}

// Get returns the trip at position idx
func (rs *RecordStore) Get(idx int) trip.TripData {
	return rs.trips[idx]
}

// ForEach calls fn with every trip in order
func (rs *RecordStore) ForEach(fn func(tripData trip.TripData)) {
	for idx := range rs.trips {
		fn(rs.trips[idx])
	}
}

// Slice returns a copy of the trips in [from, to). Bounds are clamped to the store size
func (rs *RecordStore) Slice(from int, to int) []trip.TripData {
	if from < 0 {
		from = 0
	}
	if to > len(rs.trips) {
		to = len(rs.trips)
	}
	if from >= to {
		return nil
	}
	result := make([]trip.TripData, to-from)
	copy(result, rs.trips[from:to])
	return result
}

// Narrow returns a new store with the trips that satisfy keep, in the same order
func (rs *RecordStore) Narrow(keep func(tripData trip.TripData) bool) *RecordStore {
	var narrowed []trip.TripData
	for idx := range rs.trips {
		if keep(rs.trips[idx]) {
			narrowed = append(narrowed, rs.trips[idx])
		}
	}
	return &RecordStore{
		city:   rs.city,
		fields: rs.fields,
		trips:  narrowed,
	}
}
