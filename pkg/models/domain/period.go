package domain

import (
	"fmt"
	"time"
)

// Granularity is the interval size a report is broken into.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// ParseGranularity validates a user-supplied granularity string.
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case GranularityDay, GranularityWeek, GranularityMonth:
		return Granularity(s), nil
	}
	return "", fmt.Errorf("unknown granularity %q, expected day, week or month", s)
}

// DateRange is an inclusive [Start, End] range of calendar days.
// Start is never after End once constructed via NewDateRange.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	if end.Before(start) {
		return DateRange{}, fmt.Errorf("end date %s is before start date %s",
			end.Format(DateFormat), start.Format(DateFormat))
	}
	return DateRange{Start: start, End: end}, nil
}

// Days returns the number of calendar days the range covers, inclusive.
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s,%s", r.Start.Format(DateFormat), r.End.Format(DateFormat))
}

// Interval is one sub-range of a partitioned DateRange. Intervals produced
// for a range are contiguous and exhaustive: the first starts at the range
// start, the last ends at the range end, with no gaps between them.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Window returns the interval as a queryable DateRange.
func (i Interval) Window() DateRange {
	return DateRange{Start: i.Start, End: i.End}
}

// DateFormat is the wire and display format for all report dates.
const DateFormat = "2006-01-02"
