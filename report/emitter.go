package report

import (
	"fmt"
	"io"
	"strings"

	"bikeshare/domain/business/queryresponse"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	noDataMessage       = "No data available for the selected filters."
	notAvailableMessage = "Not available for this dataset."
)

var separator = strings.Repeat("-", 40)

// Emitter renders query responses as human-readable text
type Emitter struct {
	writer io.Writer
}

func NewEmitter(writer io.Writer) *Emitter {
	return &Emitter{
		writer: writer,
	}
}

// EmitReport writes the four statistic groups of response
func (e *Emitter) EmitReport(response *queryresponse.QueryResponse) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\nCity: %s | %s | %v trips\n", cases.Title(language.English).String(response.GetMetadata().GetCity()), response.Selector, response.Trips)
	sb.WriteString(separator + "\n")

	writeTimeStats(&sb, response.Time)
	writeStationStats(&sb, response.Stations)
	writeDurationStats(&sb, response.Duration)
	writeUserStats(&sb, response.Users)

	_, err := io.WriteString(e.writer, sb.String())
	if err != nil {
		return fmt.Errorf("error writing report %s: %w", response.QueryID, err)
	}
	return nil
}

func writeTimeStats(sb *strings.Builder, stats queryresponse.TimeStats) {
	sb.WriteString("\nThe Most Frequent Times of Travel\n\n")
	if writeStatus(sb, stats.Status) {
		fmt.Fprintf(sb, "The most common month is: %s\n", stats.MostCommonMonth)
		fmt.Fprintf(sb, "The most common day of week is: %s\n", stats.MostCommonWeekday)
		fmt.Fprintf(sb, "The most common start hour is: %v\n", stats.MostCommonHour)
	}
	sb.WriteString(separator + "\n")
}

func writeStationStats(sb *strings.Builder, stats queryresponse.StationStats) {
	sb.WriteString("\nThe Most Popular Stations and Trip\n\n")
	if writeStatus(sb, stats.Status) {
		fmt.Fprintf(sb, "The most commonly used start station is: %s\n", stats.MostCommonStartStation)
		fmt.Fprintf(sb, "The most commonly used end station is: %s\n", stats.MostCommonEndStation)
		fmt.Fprintf(sb, "The most frequent combination of start station and end station trip is: %s (%v trips)\n", stats.MostCommonTrip, stats.MostCommonTripCount)
		if stats.HasTripDistance {
			fmt.Fprintf(sb, "The distance between both stations is: %.2f km\n", stats.TripDistance)
		}
	}
	sb.WriteString(separator + "\n")
}

func writeDurationStats(sb *strings.Builder, stats queryresponse.DurationStats) {
	sb.WriteString("\nTrip Duration\n\n")
	if writeStatus(sb, stats.Status) {
		fmt.Fprintf(sb, "The total travel time is: %.2f seconds\n", stats.TotalDuration)
		fmt.Fprintf(sb, "The mean travel time is: %.2f seconds\n", stats.MeanDuration)
	}
	sb.WriteString(separator + "\n")
}

func writeUserStats(sb *strings.Builder, stats queryresponse.UserStats) {
	sb.WriteString("\nUser Stats\n\n")
	// user types are reported even when the dataset has no demographics
	userTypesWritten := stats.UserTypes.Status == queryresponse.Available
	if userTypesWritten {
		sb.WriteString("Counts of user types:\n")
		writeCounts(sb, stats.UserTypes)
	}

	if writeStatus(sb, stats.Status) {
		if !userTypesWritten {
			sb.WriteString("Counts of user types:\n")
			writeCounts(sb, stats.UserTypes)
		}

		sb.WriteString("Counts of gender:\n")
		writeCounts(sb, stats.Genders)

		sb.WriteString("Year of birth:\n")
		if writeStatus(sb, stats.BirthYears.Status) {
			fmt.Fprintf(sb, "Earliest year of birth: %v\n", stats.BirthYears.Earliest)
			fmt.Fprintf(sb, "Most recent year of birth: %v\n", stats.BirthYears.MostRecent)
			fmt.Fprintf(sb, "Most common year of birth: %v\n", stats.BirthYears.MostCommon)
		}
	}
	sb.WriteString(separator + "\n")
}

func writeCounts(sb *strings.Builder, stats queryresponse.CountStats) {
	if !writeStatus(sb, stats.Status) {
		return
	}
	for _, valueCount := range stats.Counts {
		fmt.Fprintf(sb, "  %-12s %v\n", valueCount.Value, valueCount.Count)
	}
}

// writeStatus writes the message of a NoData or NotAvailable status. Returns true if the group has data to write
func writeStatus(sb *strings.Builder, status queryresponse.Status) bool {
	switch status {
	case queryresponse.NoData:
		sb.WriteString(noDataMessage + "\n")
		return false
	case queryresponse.NotAvailable:
		sb.WriteString(notAvailableMessage + "\n")
		return false
	}
	return true
}
