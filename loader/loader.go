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
	"time"

	"bikeshare/domain/entities/trip"
	"bikeshare/store"

	log "github.com/sirupsen/logrus"
)

const (
	stage       = "loader"
	notInHeader = -1
	utf8BOM     = "\ufeff"
)

// tripColumnIndexes position of each field in a row. Optional fields not present in the header are notInHeader
type tripColumnIndexes struct {
	startTime    int
	duration     int
	startStation int
	endStation   int
	userType     int
	gender       int
	birthYear    int
}

type Loader struct {
	config LoaderConfig
}

func NewLoader(loaderConfig LoaderConfig) *Loader {
	return &Loader{
		config: loaderConfig,
	}
}

// LoadTrips reads the trips dataset of a city from filepath
func (l *Loader) LoadTrips(city string, filepath string) (*store.RecordStore, error) {
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

	recordStore, err := l.ReadTrips(city, dataFile)
	if err != nil {
		return nil, fmt.Errorf("[city: %s] error reading %s: %w", city, filepath, err)
	}

	log.Infof("[stage: %s][city: %s][status: OK] %v trips loaded from %s", stage, city, recordStore.Len(), filepath)
	return recordStore, nil
}

// ReadTrips parses a trips dataset. The first row must be the header. Any malformed
// row makes the whole load fail; blank optional fields are valid.
func (l *Loader) ReadTrips(city string, reader io.Reader) (*store.RecordStore, error) {
	csvReader := csv.NewReader(reader)
	header, err := csvReader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyDataset
	}
	if err != nil {
		return nil, fmt.Errorf("error reading header: %w", err)
	}

	indexes, err := l.getTripColumnIndexes(makeIndex(header))
	if err != nil {
		return nil, err
	}

	var trips []trip.TripData
	var fields store.Fields
	for {
		row, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			// csv errors carry the line number
			return nil, fmt.Errorf("%s: %w", err.Error(), ErrInvalidTripData)
		}

		line, _ := csvReader.FieldPos(0)

		tripData, err := l.getTripData(line, row, indexes)
		if err != nil {
			log.Debugf("[stage: %s][city: %s][status: ERROR] invalid row at line %v: %v", stage, city, line, row)
			return nil, fmt.Errorf("line %v: %w", line, err)
		}

		fields.UserType = fields.UserType || tripData.UserType != ""
		fields.Gender = fields.Gender || tripData.Gender != ""
		fields.BirthYear = fields.BirthYear || tripData.HasBirthYear()
		trips = append(trips, tripData)
	}

	log.Debugf("[stage: %s][city: %s] optional fields available: %+v", stage, city, fields)
	return store.NewRecordStore(city, fields, trips), nil
}

func (l *Loader) getTripColumnIndexes(header map[string]int) (tripColumnIndexes, error) {
	columns := l.config.Columns
	var missing []string
	getRequiredIndex := func(name string) int {
		idx, ok := header[name]
		if !ok {
			missing = append(missing, name)
		}
		return idx
	}

	indexes := tripColumnIndexes{
		startTime:    getRequiredIndex(columns.StartTime),
		duration:     getRequiredIndex(columns.Duration),
		startStation: getRequiredIndex(columns.StartStation),
		endStation:   getRequiredIndex(columns.EndStation),
		userType:     getOptionalIndex(header, columns.UserType),
		gender:       getOptionalIndex(header, columns.Gender),
		birthYear:    getOptionalIndex(header, columns.BirthYear),
	}
	if len(missing) > 0 {
		return tripColumnIndexes{}, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return indexes, nil
}

func (l *Loader) getTripData(line int, row []string, indexes tripColumnIndexes) (trip.TripData, error) {
	startTimeStr := strings.TrimSpace(row[indexes.startTime])
	startTime, err := time.Parse(l.config.TimeLayout, startTimeStr)
	if err != nil {
		return trip.TripData{}, fmt.Errorf("%s %q: %w", ErrInvalidDate, startTimeStr, ErrInvalidTripData)
	}

	durationStr := strings.TrimSpace(row[indexes.duration])
	duration, err := strconv.ParseFloat(durationStr, 64)
	if err != nil || duration < 0 || math.IsNaN(duration) || math.IsInf(duration, 0) {
		return trip.TripData{}, fmt.Errorf("%s %q: %w", ErrInvalidDurationType, durationStr, ErrInvalidTripData)
	}

	startStation := strings.TrimSpace(row[indexes.startStation])
	endStation := strings.TrimSpace(row[indexes.endStation])
	if startStation == "" || endStation == "" {
		return trip.TripData{}, fmt.Errorf("%s: %w", ErrInvalidStationName, ErrInvalidTripData)
	}

	birthYearStr := getOptionalValue(row, indexes.birthYear)
	birthYear, err := parseBirthYear(birthYearStr)
	if err != nil {
		return trip.TripData{}, fmt.Errorf("%s %q: %w", ErrInvalidBirthYearType, birthYearStr, ErrInvalidTripData)
	}

	tripData := trip.NewTripData(line, startTime, duration, startStation, endStation)
	return tripData.WithUserData(
		getOptionalValue(row, indexes.userType),
		getOptionalValue(row, indexes.gender),
		birthYear,
	), nil
}

// parseBirthYear birth years come as integers or floats, e.g. 1992.0. Blank means no record and returns 0
func parseBirthYear(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	year, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	if year <= 0 || year != math.Trunc(year) {
		return 0, fmt.Errorf("%v is not a year", year)
	}
	return int(year), nil
}

// makeIndex maps each header name to its position
func makeIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		index[strings.TrimSpace(name)] = i
	}
	return index
}

func getOptionalIndex(header map[string]int, name string) int {
	if name == "" {
		return notInHeader
	}
	idx, ok := header[name]
	if !ok {
		return notInHeader
	}
	return idx
}

func getOptionalValue(row []string, idx int) string {
	if idx == notInHeader || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
