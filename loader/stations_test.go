package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stationsCSV = `name,latitude,longitude
Wood St & Hubbard St,41.889899,-87.671473
Damen Ave & Chicago Ave,41.895769,-87.67722
`

func TestReadStations(t *testing.T) {
	stations, err := newLoader().ReadStations("chicago", strings.NewReader(stationsCSV))
	require.NoError(t, err)
	require.Len(t, stations, 2)

	wood := stations["Wood St & Hubbard St"]
	assert.Equal(t, "chicago", wood.City)
	assert.InDelta(t, 41.889899, wood.Latitude, 1e-9)
	assert.InDelta(t, -87.671473, wood.Longitude, 1e-9)
	assert.InDelta(t, 0.81, wood.DistanceTo(stations["Damen Ave & Chicago Ave"]), 0.05)
}

func TestReadStationsErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{name: "empty file", data: "", wantErr: ErrEmptyDataset},
		{name: "missing column", data: "name,latitude\n", wantErr: ErrMissingColumn},
		{name: "bad latitude", data: "name,latitude,longitude\nA,north,1\n", wantErr: ErrInvalidStationData},
		{name: "out of range", data: "name,latitude,longitude\nA,1,181\n", wantErr: ErrInvalidStationData},
		{name: "missing name", data: "name,latitude,longitude\n,1,1\n", wantErr: ErrInvalidStationData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newLoader().ReadStations("chicago", strings.NewReader(tt.data))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadStations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stations.csv")
	require.NoError(t, os.WriteFile(path, []byte(stationsCSV), 0o644))

	stations, err := newLoader().LoadStations("chicago", path)
	require.NoError(t, err)
	assert.Len(t, stations, 2)
}
