package store

import (
	"testing"
	"time"

	"bikeshare/domain/entities/trip"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTrips(n int) []trip.TripData {
	var trips []trip.TripData
	start := time.Date(2017, time.March, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		trips = append(trips, trip.NewTripData(i+2, start.Add(time.Duration(i)*time.Hour), float64(60*(i+1)), "A", "B"))
	}
	return trips
}

func TestNewRecordStoreCopiesTrips(t *testing.T) {
	trips := newTrips(3)
	rs := NewRecordStore("chicago", Fields{Gender: true}, trips)

	trips[0].StartStation = "changed"
	assert.Equal(t, "A", rs.Get(0).StartStation)
	assert.Equal(t, 3, rs.Len())
	assert.Equal(t, "chicago", rs.GetCity())
	assert.True(t, rs.GetFields().Gender)
	assert.True(t, rs.GetFields().HasDemographics())
}

func TestHasDemographics(t *testing.T) {
	assert.False(t, Fields{}.HasDemographics())
	assert.False(t, Fields{UserType: true}.HasDemographics())
	assert.True(t, Fields{BirthYear: true}.HasDemographics())
	assert.True(t, Fields{UserType: true, Gender: true}.HasDemographics())
}

func TestNarrow(t *testing.T) {
	rs := NewRecordStore("chicago", Fields{UserType: true}, newTrips(6))

	narrowed := rs.Narrow(func(tripData trip.TripData) bool {
		return tripData.Line%2 == 0
	})

	require.Equal(t, 3, narrowed.Len())
	assert.Equal(t, 6, rs.Len())
	assert.Equal(t, []int{2, 4, 6}, []int{narrowed.Get(0).Line, narrowed.Get(1).Line, narrowed.Get(2).Line})
	assert.Equal(t, rs.GetFields(), narrowed.GetFields())

	empty := rs.Narrow(func(trip.TripData) bool { return false })
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, "chicago", empty.GetCity())
}

func TestSlice(t *testing.T) {
	rs := NewRecordStore("washington", Fields{}, newTrips(7))

	assert.Len(t, rs.Slice(0, 5), 5)
	assert.Len(t, rs.Slice(5, 10), 2)
	assert.Nil(t, rs.Slice(7, 12))
	assert.Nil(t, rs.Slice(3, 3))
	assert.Len(t, rs.Slice(-2, 1), 1)

	page := rs.Slice(0, 1)
	page[0].EndStation = "changed"
	assert.Equal(t, "B", rs.Get(0).EndStation)
}

func TestForEachKeepsOrder(t *testing.T) {
	rs := NewRecordStore("chicago", Fields{}, newTrips(4))
	var lines []int
	rs.ForEach(func(tripData trip.TripData) {
		lines = append(lines, tripData.Line)
	})
	assert.Equal(t, []int{2, 3, 4, 5}, lines)
}
