package report

import (
	"bytes"
	"testing"
	"time"

	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/entities"
	"bikeshare/domain/entities/trip"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResponse(city string) *queryresponse.QueryResponse {
	return queryresponse.NewQueryResponse(entities.NewMetadata(city, city+".csv", "report", "aggregator"), "month: June, day: all", 12)
}

func TestEmitReport(t *testing.T) {
	response := newResponse("new york city")
	response.Time = queryresponse.TimeStats{
		Status:            queryresponse.Available,
		MostCommonMonth:   time.June,
		MostCommonWeekday: time.Wednesday,
		MostCommonHour:    17,
	}
	response.Stations = queryresponse.StationStats{
		Status:                 queryresponse.Available,
		MostCommonStartStation: "Pershing Square North",
		MostCommonEndStation:   "Pershing Square North",
		MostCommonTrip:         trip.Route{Start: "E 7 St & Avenue A", End: "Cooper Square & E 7 St"},
		MostCommonTripCount:    4,
		HasTripDistance:        true,
		TripDistance:           0.756,
	}
	response.Duration = queryresponse.DurationStats{
		Status:        queryresponse.Available,
		Counter:       12,
		TotalDuration: 1200,
		MeanDuration:  100,
	}
	response.Users = queryresponse.UserStats{
		Status: queryresponse.Available,
		UserTypes: queryresponse.CountStats{
			Status: queryresponse.Available,
			Counts: []queryresponse.ValueCount{{Value: "Subscriber", Count: 10}, {Value: "Customer", Count: 2}},
		},
		Genders: queryresponse.CountStats{
			Status: queryresponse.Available,
			Counts: []queryresponse.ValueCount{{Value: "Male", Count: 9}, {Value: queryresponse.NoRecord, Count: 3}},
		},
		BirthYears: queryresponse.BirthYearStats{Status: queryresponse.Available, Earliest: 1940, MostRecent: 2001, MostCommon: 1989},
	}

	var buf bytes.Buffer
	require.NoError(t, NewEmitter(&buf).EmitReport(response))

	out := buf.String()
	assert.Contains(t, out, "City: New York City | month: June, day: all | 12 trips")
	assert.Contains(t, out, "The most common month is: June")
	assert.Contains(t, out, "The most common day of week is: Wednesday")
	assert.Contains(t, out, "The most common start hour is: 17")
	assert.Contains(t, out, "The most commonly used start station is: Pershing Square North")
	assert.Contains(t, out, "E 7 St & Avenue A & Cooper Square & E 7 St (4 trips)")
	assert.Contains(t, out, "The distance between both stations is: 0.76 km")
	assert.Contains(t, out, "The total travel time is: 1200.00 seconds")
	assert.Contains(t, out, "The mean travel time is: 100.00 seconds")
	assert.Contains(t, out, "Subscriber")
	assert.Contains(t, out, "No record")
	assert.Contains(t, out, "Most common year of birth: 1989")
	assert.NotContains(t, out, noDataMessage)
	assert.NotContains(t, out, notAvailableMessage)
}

func TestEmitReportNoDataAndNotAvailable(t *testing.T) {
	response := newResponse("washington")
	response.Time.Status = queryresponse.NoData
	response.Stations.Status = queryresponse.NoData
	response.Duration.Status = queryresponse.NoData
	response.Users.Status = queryresponse.NotAvailable

	var buf bytes.Buffer
	require.NoError(t, NewEmitter(&buf).EmitReport(response))

	out := buf.String()
	assert.Equal(t, 3, bytes.Count(buf.Bytes(), []byte(noDataMessage)))
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte(notAvailableMessage)))
	assert.NotContains(t, out, "The mean travel time")
	assert.NotContains(t, out, "Counts of gender")
}

func TestEmitReportPartialUserFields(t *testing.T) {
	response := newResponse("chicago")
	response.Users = queryresponse.UserStats{
		Status: queryresponse.Available,
		UserTypes: queryresponse.CountStats{
			Status: queryresponse.Available,
			Counts: []queryresponse.ValueCount{{Value: "Customer", Count: 1}},
		},
		Genders:    queryresponse.CountStats{Status: queryresponse.NotAvailable},
		BirthYears: queryresponse.BirthYearStats{Status: queryresponse.NoData},
	}

	var buf bytes.Buffer
	require.NoError(t, NewEmitter(&buf).EmitReport(response))

	out := buf.String()
	assert.Contains(t, out, "Counts of gender:\n"+notAvailableMessage)
	assert.Contains(t, out, "Year of birth:\n"+noDataMessage)
}

func TestEmitReportUserTypesWithoutDemographics(t *testing.T) {
	response := newResponse("washington")
	response.Users = queryresponse.UserStats{
		Status: queryresponse.NotAvailable,
		UserTypes: queryresponse.CountStats{
			Status: queryresponse.Available,
			Counts: []queryresponse.ValueCount{{Value: "Subscriber", Count: 2}, {Value: "Customer", Count: 1}},
		},
		Genders:    queryresponse.CountStats{Status: queryresponse.NotAvailable},
		BirthYears: queryresponse.BirthYearStats{Status: queryresponse.NotAvailable},
	}

	var buf bytes.Buffer
	require.NoError(t, NewEmitter(&buf).EmitReport(response))

	out := buf.String()
	assert.Contains(t, out, "Counts of user types:\n")
	assert.Contains(t, out, "Subscriber")
	assert.Contains(t, out, "Customer")
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("Counts of user types")))
	assert.Contains(t, out, "  Customer     1\n"+notAvailableMessage)
	assert.NotContains(t, out, "Counts of gender")
	assert.NotContains(t, out, "Year of birth")
}
