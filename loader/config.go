package loader

// Columns header names of the fields to read from a trips dataset
type Columns struct {
	StartTime    string `yaml:"start_time"`
	Duration     string `yaml:"duration"`
	StartStation string `yaml:"start_station"`
	EndStation   string `yaml:"end_station"`
	UserType     string `yaml:"user_type"`
	Gender       string `yaml:"gender"`
	BirthYear    string `yaml:"birth_year"`
}

// StationColumns header names of the fields to read from a stations dataset
type StationColumns struct {
	Name      string `yaml:"name"`
	Latitude  string `yaml:"latitude"`
	Longitude string `yaml:"longitude"`
}

// LoaderConfig
// + Columns: trips dataset header names
// + StationColumns: stations dataset header names
// + TimeLayout: layout of the start time values
type LoaderConfig struct {
	Columns        Columns        `yaml:"columns"`
	StationColumns StationColumns `yaml:"station_columns"`
	TimeLayout     string         `yaml:"time_layout"`
}

// DefaultLoaderConfig returns the config that matches the chicago, new york city and washington datasets
func DefaultLoaderConfig() LoaderConfig {
	return LoaderConfig{
		Columns: Columns{
			StartTime:    "Start Time",
			Duration:     "Trip Duration",
			StartStation: "Start Station",
			EndStation:   "End Station",
			UserType:     "User Type",
			Gender:       "Gender",
			BirthYear:    "Birth Year",
		},
		StationColumns: StationColumns{
			Name:      "name",
			Latitude:  "latitude",
			Longitude: "longitude",
		},
		TimeLayout: "2006-01-02 15:04:05",
	}
}
