package period

import (
	"fmt"
	"time"

	"github.com/growth-tools/goal-report/pkg/models/domain"
)

// AlignmentError reports a date range whose boundaries do not line up with
// the requested granularity. It is fatal: no queries run after it.
type AlignmentError struct {
	Granularity domain.Granularity
	Range       domain.DateRange
	Reason      string
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("range %s is not aligned to %s intervals: %s",
		e.Range, e.Granularity, e.Reason)
}

// ValidateAlignment checks that the range can be partitioned into whole
// intervals of the given granularity.
//
// week requires the range to start on a Sunday and end on a Saturday.
// month requires the range to be an exact sequence of whole calendar months:
// walking AddOneMonth from the start must land exactly one day past the end.
// day has no alignment constraint.
func ValidateAlignment(g domain.Granularity, r domain.DateRange) error {
	switch g {
	case domain.GranularityWeek:
		if r.Start.Weekday() != time.Sunday {
			return &AlignmentError{Granularity: g, Range: r, Reason: "start date must be a Sunday"}
		}
		if r.End.Weekday() != time.Saturday {
			return &AlignmentError{Granularity: g, Range: r, Reason: "end date must be a Saturday"}
		}
	case domain.GranularityMonth:
		current := r.Start
		for current.Before(r.End) {
			current = AddOneMonth(current)
		}
		if !current.Equal(r.End.AddDate(0, 0, 1)) {
			return &AlignmentError{
				Granularity: g,
				Range:       r,
				Reason:      "range must cover full calendar months, first day to last day",
			}
		}
	}
	return nil
}
