package birthyearaccumulator

import "bikeshare/domain/business/frequencycounter"

// BirthYearAccumulator struct that collects the birth years of the users
// + Earliest: lowest birth year collected
// + MostRecent: highest birth year collected
// + years: appearances of each birth year, used to get the most common one
type BirthYearAccumulator struct {
	Earliest   int
	MostRecent int
	years      *frequencycounter.FrequencyCounter[int]
}

func NewBirthYearAccumulator() *BirthYearAccumulator {
	return &BirthYearAccumulator{
		years: frequencycounter.NewFrequencyCounter[int](),
	}
}

// UpdateAccumulator adds a birth year. Zero means there is no record and is ignored
func (ba *BirthYearAccumulator) UpdateAccumulator(birthYear int) {
	if birthYear == 0 {
		return
	}

	if ba.years.Len() == 0 || birthYear < ba.Earliest {
		ba.Earliest = birthYear
	}
	if ba.years.Len() == 0 || birthYear > ba.MostRecent {
		ba.MostRecent = birthYear
	}
	ba.years.UpdateCounter(birthYear)
}

// GetMostCommon returns the birth year that appears the most. ok is false when nothing was collected
func (ba *BirthYearAccumulator) GetMostCommon() (year int, ok bool) {
	year, _, ok = ba.years.GetMostFrequent()
	return year, ok
}
