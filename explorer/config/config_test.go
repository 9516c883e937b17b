package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigShippedFile(t *testing.T) {
	explorerConfig, err := LoadConfig("config.yaml")
	require.NoError(t, err)

	assert.Equal(t, []string{"chicago", "new york city", "washington"}, explorerConfig.GetCityNames())
	assert.Equal(t, 5, explorerConfig.PageSize)
	assert.Equal(t, "Start Time", explorerConfig.Loader.Columns.StartTime)
	assert.Equal(t, "2006-01-02 15:04:05", explorerConfig.Loader.TimeLayout)
	assert.False(t, explorerConfig.Publisher.Enabled)
	assert.Equal(t, "topic", explorerConfig.Publisher.Exchange.Type)
	assert.Equal(t, "RABBIT_URL", explorerConfig.Publisher.URLEnv)

	washington, ok := explorerConfig.GetCity("washington")
	require.True(t, ok)
	assert.Equal(t, filepath.Join("datasets", "washington.csv"), washington.TripsFile)
	assert.Equal(t, "", washington.StationsFile)

	_, ok = explorerConfig.GetCity("boston")
	assert.False(t, ok)
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
cities:
  chicago:
    trips_file: /data/chicago.csv
loader:
  columns:
    gender: Sex
`)

	explorerConfig, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 5, explorerConfig.PageSize)
	assert.Equal(t, "Sex", explorerConfig.Loader.Columns.Gender)
	assert.Equal(t, "Birth Year", explorerConfig.Loader.Columns.BirthYear)
	assert.Equal(t, "name", explorerConfig.Loader.StationColumns.Name)
	assert.Equal(t, "2006-01-02 15:04:05", explorerConfig.Loader.TimeLayout)

	chicago, ok := explorerConfig.GetCity("chicago")
	require.True(t, ok)
	assert.Equal(t, "/data/chicago.csv", chicago.TripsFile)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "page_size: 5\n"))
	assert.ErrorIs(t, err, ErrNoCities)

	_, err = LoadConfig(writeConfig(t, "cities: [\n"))
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
