package queryresponse

import "fmt"

// Status tells if a result group holds data. The zero value is NoData, so a group that was
// never computed doesn't claim to have data
type Status int

const (
	// NoData the fields exist but there are no trips to compute the group
	NoData Status = iota
	// Available the group was computed
	Available
	// NotAvailable the dataset doesn't have the fields the group needs
	NotAvailable
)

var statusNames = map[Status]string{
	Available:    "available",
	NoData:       "no data",
	NotAvailable: "not available",
}

func (s Status) String() string {
	name, ok := statusNames[s]
	if !ok {
		return fmt.Sprintf("status(%d)", int(s))
	}
	return name
}

func (s Status) MarshalText() ([]byte, error) {
	name, ok := statusNames[s]
	if !ok {
		return nil, fmt.Errorf("unknown status %d", int(s))
	}
	return []byte(name), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	for status, name := range statusNames {
		if name == string(text) {
			*s = status
			return nil
		}
	}
	return fmt.Errorf("unknown status %q", string(text))
}
