package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"bikeshare/domain/entities/station"

	log "github.com/sirupsen/logrus"
)

// LoadStations reads the station locations of a city from filepath
func (l *Loader) LoadStations(city string, filepath string) (map[string]station.StationData, error) {
	dataFile, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("[city: %s] error opening %s: %w", city, filepath, err)
	}

	defer func(dataFile *os.File) {
		err := dataFile.Close()
		if err != nil {
			log.Errorf("[stage: %s][city: %s] error closing %s: %s", stage, city, filepath, err.Error())
		}
	}(dataFile)

	stations, err := l.ReadStations(city, dataFile)
	if err != nil {
		return nil, fmt.Errorf("[city: %s] error reading %s: %w", city, filepath, err)
	}

	log.Infof("[stage: %s][city: %s][status: OK] %v stations loaded from %s", stage, city, len(stations), filepath)
	return stations, nil
}

// ReadStations parses a stations dataset into a map by station name
func (l *Loader) ReadStations(city string, reader io.Reader) (map[string]station.StationData, error) {
	csvReader := csv.NewReader(reader)
	header, err := csvReader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyDataset
	}
	if err != nil {
		return nil, fmt.Errorf("error reading header: %w", err)
	}

	index := makeIndex(header)
	columns := l.config.StationColumns
	var missing []string
	for _, name := range []string{columns.Name, columns.Latitude, columns.Longitude} {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}

	stations := make(map[string]station.StationData)
	for {
		row, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", err.Error(), ErrInvalidStationData)
		}

		line, _ := csvReader.FieldPos(0)
		name := strings.TrimSpace(row[index[columns.Name]])
		if name == "" {
			return nil, fmt.Errorf("line %v: %s: %w", line, ErrInvalidStationName, ErrInvalidStationData)
		}

		latitude, err := parseCoordinate(row[index[columns.Latitude]], 90)
		if err != nil {
			return nil, fmt.Errorf("line %v: %s: %w", line, err.Error(), ErrInvalidStationData)
		}

		longitude, err := parseCoordinate(row[index[columns.Longitude]], 180)
		if err != nil {
			return nil, fmt.Errorf("line %v: %s: %w", line, err.Error(), ErrInvalidStationData)
		}

		stations[name] = station.StationData{
			City:      city,
			Name:      name,
			Latitude:  latitude,
			Longitude: longitude,
		}
	}

	return stations, nil
}

func parseCoordinate(value string, limit float64) (float64, error) {
	value = strings.TrimSpace(value)
	coordinate, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(coordinate) || coordinate < -limit || coordinate > limit {
		return 0, fmt.Errorf("%s %q", ErrInvalidCoordinate, value)
	}
	return coordinate, nil
}
