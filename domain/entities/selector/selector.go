package selector

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// All selects every month or every day
const All = "all"

var (
	ErrInvalidMonth = errors.New("invalid month")
	ErrInvalidDay   = errors.New("invalid day")
)

// months the datasets cover
var months = []time.Month{
	time.January,
	time.February,
	time.March,
	time.April,
	time.May,
	time.June,
}

// Selector (month, day) pair that restricts the trips to analyze. The zero value selects everything.
type Selector struct {
	month     time.Month
	day       time.Weekday
	filterDay bool
}

// NewSelector parses month and day names. Both are case-insensitive and accept "all".
// + Month possible values: all, january, ..., june
// + Day possible values: all, monday, ..., sunday
func NewSelector(month string, day string) (Selector, error) {
	var s Selector

	m, err := ParseMonth(month)
	if err != nil {
		return Selector{}, err
	}
	s.month = m

	if strings.ToLower(strings.TrimSpace(day)) != All {
		weekday, err := ParseDay(day)
		if err != nil {
			return Selector{}, err
		}
		s.day = weekday
		s.filterDay = true
	}

	return s, nil
}

// ParseMonth returns the month for the given name. "all" returns 0
func ParseMonth(name string) (time.Month, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == All {
		return 0, nil
	}
	for _, m := range months {
		if strings.ToLower(m.String()) == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMonth, name)
}

// ParseDay returns the weekday for the given name
func ParseDay(name string) (time.Weekday, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == name {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDay, name)
}

// GetMonthNames returns the selectable month names in lower case
func GetMonthNames() []string {
	names := make([]string, 0, len(months))
	for _, m := range months {
		names = append(names, strings.ToLower(m.String()))
	}
	return names
}

// GetDayNames returns the selectable day names in lower case, starting on monday
func GetDayNames() []string {
	names := make([]string, 0, 7)
	for i := 1; i <= 7; i++ {
		names = append(names, strings.ToLower(time.Weekday(i%7).String()))
	}
	return names
}

// Month returns the selected month. ok is false when every month is selected
func (s Selector) Month() (month time.Month, ok bool) {
	return s.month, s.month != 0
}

// Day returns the selected weekday. ok is false when every day is selected
func (s Selector) Day() (day time.Weekday, ok bool) {
	return s.day, s.filterDay
}

// IsAll returns true if the selector doesn't restrict anything
func (s Selector) IsAll() bool {
	return s.month == 0 && !s.filterDay
}

func (s Selector) String() string {
	month, day := All, All
	if m, ok := s.Month(); ok {
		month = m.String()
	}
	if d, ok := s.Day(); ok {
		day = d.String()
	}
	return fmt.Sprintf("month: %s, day: %s", month, day)
}
