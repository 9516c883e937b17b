package loader

import "errors"

var (
	ErrUnknownCity          = errors.New("unknown city")
	ErrEmptyDataset         = errors.New("empty dataset")
	ErrMissingColumn        = errors.New("missing column")
	ErrInvalidTripData      = errors.New("invalid trip data")
	ErrInvalidStationData   = errors.New("invalid station data")
	ErrInvalidDate          = errors.New("invalid date")
	ErrInvalidDurationType  = errors.New("invalid duration type")
	ErrInvalidBirthYearType = errors.New("invalid birth year type")
	ErrInvalidStationName   = errors.New("invalid station name")
	ErrInvalidCoordinate    = errors.New("invalid coordinate")
)
