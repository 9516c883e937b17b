package entities

import "time"

// Metadata extra information attached to the data produced by the explorer
// + City: city the data belongs to
// + Dataset: file the trips were loaded from
// + Type: type of the data, e.g. report
// + Stage: stage that built the data
// + CreatedAt: moment the data was built
type Metadata struct {
	City      string    `json:"city"`
	Dataset   string    `json:"dataset"`
	Type      string    `json:"type"`
	Stage     string    `json:"stage"`
	CreatedAt time.Time `json:"created_at"`
}

func NewMetadata(city string, dataset string, dataType string, stage string) Metadata {
	return Metadata{
		City:      city,
		Dataset:   dataset,
		Type:      dataType,
		Stage:     stage,
		CreatedAt: time.Now().UTC(),
	}
}

func (m Metadata) GetCity() string {
	return m.City
}
