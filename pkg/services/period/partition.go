package period

import (
	"github.com/growth-tools/goal-report/pkg/models/domain"
)

// Partition splits a date range into an ordered slice of contiguous,
// non-overlapping intervals at the given granularity. The range must have
// passed ValidateAlignment first; partitioning an unaligned range is
// undefined.
//
// The slice is computed eagerly because both per-interval sections of a
// report walk the same boundaries.
func Partition(g domain.Granularity, r domain.DateRange) []domain.Interval {
	var intervals []domain.Interval
	current := r.Start

	switch g {
	case domain.GranularityDay:
		for !current.After(r.End) {
			intervals = append(intervals, domain.Interval{Start: current, End: current})
			current = current.AddDate(0, 0, 1)
		}
	case domain.GranularityWeek:
		for !current.After(r.End) {
			intervals = append(intervals, domain.Interval{
				Start: current,
				End:   current.AddDate(0, 0, 6),
			})
			current = current.AddDate(0, 0, 7)
		}
	case domain.GranularityMonth:
		for !current.After(r.End) {
			next := AddOneMonth(current)
			intervals = append(intervals, domain.Interval{
				Start: current,
				End:   next.AddDate(0, 0, -1),
			})
			current = next
		}
	}

	return intervals
}
