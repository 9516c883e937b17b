package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"bikeshare/store"
)

const timeLayout = "2006-01-02 15:04:05"

// RawDataPager writes the trips of a view in pages of pageSize rows
type RawDataPager struct {
	writer   io.Writer
	view     *store.RecordStore
	pageSize int
	offset   int
}

func NewRawDataPager(writer io.Writer, view *store.RecordStore, pageSize int) *RawDataPager {
	if pageSize <= 0 {
		pageSize = 5
	}
	return &RawDataPager{
		writer:   writer,
		view:     view,
		pageSize: pageSize,
	}
}

// HasNext returns true if there are trips left to show
func (p *RawDataPager) HasNext() bool {
	return p.offset < p.view.Len()
}

// Next writes the next page of trips
func (p *RawDataPager) Next() error {
	trips := p.view.Slice(p.offset, p.offset+p.pageSize)
	if len(trips) == 0 {
		_, err := fmt.Fprintln(p.writer, "No more trips to show.")
		return err
	}

	tw := tabwriter.NewWriter(p.writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Line\tStart Time\tTrip Duration\tStart Station\tEnd Station\tUser Type\tGender\tBirth Year")
	for _, tripData := range trips {
		birthYear := ""
		if tripData.HasBirthYear() {
			birthYear = fmt.Sprintf("%v", tripData.BirthYear)
		}
		fmt.Fprintf(tw, "%v\t%s\t%v\t%s\t%s\t%s\t%s\t%s\n",
			tripData.Line,
			tripData.StartTime.Format(timeLayout),
			tripData.Duration,
			tripData.StartStation,
			tripData.EndStation,
			tripData.UserType,
			tripData.Gender,
			birthYear,
		)
	}

	p.offset += len(trips)
	return tw.Flush()
}
