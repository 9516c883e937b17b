package queryresponse

import (
	"encoding/json"
	"testing"

	"bikeshare/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroStatusIsNoData(t *testing.T) {
	var status Status
	assert.Equal(t, NoData, status)
	assert.Equal(t, "no data", status.String())
}

func TestNewQueryResponseGroupsStartWithoutData(t *testing.T) {
	response := NewQueryResponse(entities.NewMetadata("chicago", "chicago.csv", "report", "aggregator"), "month: all, day: all", 0)

	assert.Equal(t, NoData, response.Time.Status)
	assert.Equal(t, NoData, response.Stations.Status)
	assert.Equal(t, NoData, response.Duration.Status)
	assert.Equal(t, NoData, response.Users.Status)
	assert.Equal(t, NoData, response.Users.UserTypes.Status)
	assert.Equal(t, NoData, response.Users.Genders.Status)
	assert.Equal(t, NoData, response.Users.BirthYears.Status)
	assert.NotEmpty(t, response.GetQueryID())
}

func TestStatusText(t *testing.T) {
	for _, status := range []Status{NoData, Available, NotAvailable} {
		text, err := status.MarshalText()
		require.NoError(t, err)

		var decoded Status
		require.NoError(t, decoded.UnmarshalText(text))
		assert.Equal(t, status, decoded)
	}

	_, err := Status(7).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "status(7)", Status(7).String())

	var decoded Status
	assert.Error(t, decoded.UnmarshalText([]byte("unknown")))
}

func TestStatusJSON(t *testing.T) {
	encoded, err := json.Marshal(TimeStats{})
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"status":"no data"`)
}
