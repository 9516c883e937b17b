package durationaccumulator

// DurationAccumulator struct that collects the duration of trips
// + Counter: amount of trips collected
// + TotalDuration: sum of the durations, in seconds
type DurationAccumulator struct {
	Counter       int     `json:"counter"`
	TotalDuration float64 `json:"total_duration"`
}

func NewDurationAccumulator() *DurationAccumulator {
	return &DurationAccumulator{}
}

func (da *DurationAccumulator) UpdateAccumulator(duration float64) {
	da.Counter += 1
	da.TotalDuration += duration
}

// GetAverageDuration returns the mean duration. ok is false when nothing was collected
func (da *DurationAccumulator) GetAverageDuration() (average float64, ok bool) {
	if da.Counter == 0 {
		return 0, false
	}
	return da.TotalDuration / float64(da.Counter), true
}
