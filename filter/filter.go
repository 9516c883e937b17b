package filter

import (
	"bikeshare/domain/entities/selector"
	"bikeshare/domain/entities/trip"
	"bikeshare/store"

	log "github.com/sirupsen/logrus"
)

const stage = "filter"

// Apply returns the trips of recordStore whose month and weekday match the selector.
// A selector with nothing selected returns recordStore itself, stores are never modified.
// The result may be empty.
func Apply(recordStore *store.RecordStore, s selector.Selector) *store.RecordStore {
	if s.IsAll() {
		log.Debugf("[stage: %s][city: %s][status: OK] %s: all %v trips selected", stage, recordStore.GetCity(), s, recordStore.Len())
		return recordStore
	}

	month, filterMonth := s.Month()
	day, filterDay := s.Day()

	view := recordStore.Narrow(func(tripData trip.TripData) bool {
		if filterMonth && tripData.Month != month {
			return false
		}
		if filterDay && tripData.Weekday != day {
			return false
		}
		return true
	})

	log.Debugf("[stage: %s][city: %s][status: OK] %s: %v of %v trips selected", stage, recordStore.GetCity(), s, view.Len(), recordStore.Len())
	return view
}
