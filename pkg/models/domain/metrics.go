package domain

// GoalMetrics is one row of a breakdown query response: the metric values
// observed for a single goal within the queried window.
type GoalMetrics struct {
	Goal     string
	Visitors int
	Events   int
}

// GoalShare is a goal's slice of the reconciled visitor total, used by the
// percentage breakdown section. Percent is 0 when the total is 0.
type GoalShare struct {
	Goal     string
	Visitors int
	Percent  float64
}

// IntervalStats holds the reconciled per-interval figures for the
// events/visitors section.
type IntervalStats struct {
	Interval Interval
	Visitors int
	Events   int
}

// IntervalRate holds the page-filtered conversion rate for one interval.
type IntervalRate struct {
	Interval     Interval
	PageVisitors int
	Conversions  int
	Rate         float64
}
