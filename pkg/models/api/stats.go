package api

// Response models for the stats backend. The aggregate endpoint nests each
// metric under results.<metric>.value; the breakdown endpoint returns one
// row per goal. Older backend versions name the goal column differently
// ("goal", "event:goal" or "name"), so all three are accepted.

type MetricValue struct {
	Value float64 `json:"value"`
}

type AggregateResponse struct {
	Results map[string]MetricValue `json:"results"`
}

type BreakdownRow struct {
	Goal     string `json:"goal"`
	Property string `json:"event:goal"`
	Name     string `json:"name"`
	Visitors int    `json:"visitors"`
	Events   int    `json:"events"`
}

// GoalName returns the goal identifier regardless of which key the backend
// used for it.
func (r BreakdownRow) GoalName() string {
	if r.Goal != "" {
		return r.Goal
	}
	if r.Property != "" {
		return r.Property
	}
	return r.Name
}

type BreakdownResponse struct {
	Results []BreakdownRow `json:"results"`
}
