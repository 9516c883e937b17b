package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"bikeshare/loader"
	"bikeshare/report"
	"bikeshare/utils"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigFilepath = "./explorer/config/config.yaml"
	defaultPageSize       = 5
)

var ErrNoCities = errors.New("no cities configured")

// CityConfig files of a city. StationsFile is optional
type CityConfig struct {
	TripsFile    string `yaml:"trips_file"`
	StationsFile string `yaml:"stations_file"`
}

type ExplorerConfig struct {
	Cities      map[string]CityConfig  `yaml:"cities"`
	Loader      loader.LoaderConfig    `yaml:"loader"`
	PageSize    int                    `yaml:"page_size"`
	DatasetsDir string                 `yaml:"datasets_dir"`
	Publisher   report.PublisherConfig `yaml:"publisher"`
}

// LoadConfig reads the explorer config from configFilepath. Missing loader values take the defaults
func LoadConfig(configFilepath string) (*ExplorerConfig, error) {
	configFile, err := utils.GetConfigFile(configFilepath)
	if err != nil {
		return nil, err
	}

	var explorerConfig ExplorerConfig
	err = yaml.Unmarshal(configFile, &explorerConfig)
	if err != nil {
		return nil, fmt.Errorf("error parsing explorer config file: %w", err)
	}

	if len(explorerConfig.Cities) == 0 {
		return nil, ErrNoCities
	}

	explorerConfig.applyDefaults()
	return &explorerConfig, nil
}

// applyDefaults fills the values missing in the config file
func (ec *ExplorerConfig) applyDefaults() {
	defaults := loader.DefaultLoaderConfig()
	if ec.PageSize <= 0 {
		ec.PageSize = defaultPageSize
	}
	if ec.Loader.TimeLayout == "" {
		ec.Loader.TimeLayout = defaults.TimeLayout
	}

	setDefault(&ec.Loader.Columns.StartTime, defaults.Columns.StartTime)
	setDefault(&ec.Loader.Columns.Duration, defaults.Columns.Duration)
	setDefault(&ec.Loader.Columns.StartStation, defaults.Columns.StartStation)
	setDefault(&ec.Loader.Columns.EndStation, defaults.Columns.EndStation)
	setDefault(&ec.Loader.Columns.UserType, defaults.Columns.UserType)
	setDefault(&ec.Loader.Columns.Gender, defaults.Columns.Gender)
	setDefault(&ec.Loader.Columns.BirthYear, defaults.Columns.BirthYear)
	setDefault(&ec.Loader.StationColumns.Name, defaults.StationColumns.Name)
	setDefault(&ec.Loader.StationColumns.Latitude, defaults.StationColumns.Latitude)
	setDefault(&ec.Loader.StationColumns.Longitude, defaults.StationColumns.Longitude)
}

func setDefault(value *string, defaultValue string) {
	if *value == "" {
		*value = defaultValue
	}
}

// GetCity returns the config of a city with its files resolved against DatasetsDir
func (ec *ExplorerConfig) GetCity(city string) (CityConfig, bool) {
	cityConfig, ok := ec.Cities[city]
	if !ok {
		return CityConfig{}, false
	}

	cityConfig.TripsFile = ec.resolve(cityConfig.TripsFile)
	cityConfig.StationsFile = ec.resolve(cityConfig.StationsFile)
	return cityConfig, true
}

// GetCityNames returns the configured cities sorted by name
func (ec *ExplorerConfig) GetCityNames() []string {
	names := make([]string, 0, len(ec.Cities))
	for name := range ec.Cities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (ec *ExplorerConfig) resolve(file string) string {
	if file == "" || filepath.IsAbs(file) || ec.DatasetsDir == "" {
		return file
	}
	return filepath.Join(ec.DatasetsDir, file)
}
