package report

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/growth-tools/goal-report/pkg/models/domain"
	"github.com/growth-tools/goal-report/pkg/services/period"
	"github.com/growth-tools/goal-report/pkg/services/stats"
)

const (
	metricVisitors = "visitors"
	metricEvents   = "events"
)

// Client is the slice of the stats API the engine consumes.
type Client interface {
	Aggregate(ctx context.Context, window domain.DateRange, metrics []string, filters string) (map[string]int, error)
	Breakdown(ctx context.Context, window domain.DateRange, metrics []string, filters string) ([]domain.GoalMetrics, error)
}

// Engine turns raw stats queries into the reconciled figures of a report.
//
// Visitor counts summed across goals (or across a breakdown dimension) can
// double-count a visitor who triggered several goals. Wherever a broader
// non-breakdown aggregate for the same window and filter exists, the
// reported count is capped at that ceiling. Event totals are plain sums:
// events are not unique-visitor counts, so double counting does not apply.
type Engine struct {
	client Client
}

func NewEngine(client Client) *Engine {
	return &Engine{client: client}
}

// Generate runs the full report: alignment validation, partitioning, then
// the six sections in order. Each section issues its own queries; the first
// query failure aborts the run, no partial report is produced.
func (e *Engine) Generate(ctx context.Context, req Request) (*domain.Report, error) {
	logger := zerolog.Ctx(ctx)

	if err := period.ValidateAlignment(req.Granularity, req.Range); err != nil {
		return nil, err
	}
	intervals := period.Partition(req.Granularity, req.Range)
	logger.Debug().
		Str("granularity", string(req.Granularity)).
		Int("intervals", len(intervals)).
		Msg("partitioned report range")

	totalVisitors, perGoal, err := e.totalUniqueVisitors(ctx, req)
	if err != nil {
		return nil, err
	}

	totalEvents, err := e.totalEvents(ctx, req)
	if err != nil {
		return nil, err
	}

	intervalStats, err := e.intervalStats(ctx, req, intervals, totalVisitors)
	if err != nil {
		return nil, err
	}

	shares := goalShares(req.Goals, perGoal, totalVisitors)

	pageVisitors, conversions, rate, err := e.aggregateConversion(ctx, req)
	if err != nil {
		return nil, err
	}

	intervalRates, err := e.intervalRates(ctx, req, intervals)
	if err != nil {
		return nil, err
	}

	return &domain.Report{
		Title:       "Goal Conversion Report",
		Page:        req.Page,
		Goals:       req.Goals,
		Granularity: req.Granularity,
		Period: domain.TimePeriod{
			Start:    req.Range.Start,
			End:      req.Range.End,
			Duration: req.Range.Days(),
		},
		Sections: []domain.ReportSection{
			sectionUniqueVisitors(req.Range, totalVisitors),
			sectionEvents(totalEvents, totalVisitors),
			sectionPerInterval(req.Granularity, intervalStats),
			sectionGoalBreakdown(shares),
			sectionConversionRate(req.Page, pageVisitors, conversions, rate),
			sectionIntervalRates(req.Granularity, intervalRates),
		},
	}, nil
}

// totalUniqueVisitors sums per-goal visitors over the whole range and caps
// the sum at the site-wide aggregate for the same range. The per-goal map
// keeps the uncapped figures for the percentage breakdown.
func (e *Engine) totalUniqueVisitors(ctx context.Context, req Request) (int, map[string]int, error) {
	rows, err := e.client.Breakdown(ctx, req.Range, []string{metricVisitors}, "")
	if err != nil {
		return 0, nil, err
	}

	wanted := goalSet(req.Goals)
	perGoal := make(map[string]int)
	sum := 0
	for _, row := range rows {
		if _, ok := wanted[row.Goal]; !ok {
			continue
		}
		perGoal[row.Goal] = row.Visitors
		sum += row.Visitors
	}

	agg, err := e.client.Aggregate(ctx, req.Range, []string{metricVisitors}, "")
	if err != nil {
		return 0, nil, err
	}

	return capVisitors(sum, agg[metricVisitors]), perGoal, nil
}

// totalEvents sums per-goal events over the whole range. No cap.
func (e *Engine) totalEvents(ctx context.Context, req Request) (int, error) {
	rows, err := e.client.Breakdown(ctx, req.Range, []string{metricEvents}, "")
	if err != nil {
		return 0, err
	}

	wanted := goalSet(req.Goals)
	total := 0
	for _, row := range rows {
		if _, ok := wanted[row.Goal]; ok {
			total += row.Events
		}
	}
	return total, nil
}

// intervalStats queries each interval independently. Interval visitor sums
// are bounded by the already-reconciled whole-range total rather than a
// fresh per-interval site aggregate.
func (e *Engine) intervalStats(
	ctx context.Context,
	req Request,
	intervals []domain.Interval,
	ceiling int,
) ([]domain.IntervalStats, error) {
	wanted := goalSet(req.Goals)
	out := make([]domain.IntervalStats, 0, len(intervals))

	for _, iv := range intervals {
		rows, err := e.client.Breakdown(ctx, iv.Window(), []string{metricVisitors, metricEvents}, "")
		if err != nil {
			return nil, err
		}

		visitors, events := 0, 0
		for _, row := range rows {
			if _, ok := wanted[row.Goal]; !ok {
				continue
			}
			visitors += row.Visitors
			events += row.Events
		}

		out = append(out, domain.IntervalStats{
			Interval: iv,
			Visitors: capVisitors(visitors, ceiling),
			Events:   events,
		})
	}
	return out, nil
}

// aggregateConversion measures whole-range conversion on the report page.
// Each goal is queried separately with a goal+page filter (a single
// page-filtered breakdown undercounts goals completed after leaving the
// page); the sum is capped at the page-wide visitor aggregate.
func (e *Engine) aggregateConversion(ctx context.Context, req Request) (int, int, float64, error) {
	agg, err := e.client.Aggregate(ctx, req.Range, []string{metricVisitors}, stats.PageIs(req.Page))
	if err != nil {
		return 0, 0, 0, err
	}
	pageVisitors := agg[metricVisitors]

	conversions := 0
	for _, goal := range req.Goals {
		filter := stats.And(stats.GoalIs(goal), stats.PageIs(req.Page))
		goalAgg, err := e.client.Aggregate(ctx, req.Range, []string{metricVisitors}, filter)
		if err != nil {
			return 0, 0, 0, err
		}
		conversions += goalAgg[metricVisitors]
	}

	conversions = capVisitors(conversions, pageVisitors)
	return pageVisitors, conversions, percent(conversions, pageVisitors), nil
}

// intervalRates computes the page conversion rate per interval, each capped
// at that interval's own page-wide visitor aggregate.
func (e *Engine) intervalRates(
	ctx context.Context,
	req Request,
	intervals []domain.Interval,
) ([]domain.IntervalRate, error) {
	wanted := goalSet(req.Goals)
	out := make([]domain.IntervalRate, 0, len(intervals))

	for _, iv := range intervals {
		agg, err := e.client.Aggregate(ctx, iv.Window(), []string{metricVisitors}, stats.PageIs(req.Page))
		if err != nil {
			return nil, err
		}
		pageVisitors := agg[metricVisitors]

		rows, err := e.client.Breakdown(ctx, iv.Window(), []string{metricVisitors}, stats.PageIs(req.Page))
		if err != nil {
			return nil, err
		}

		conversions := 0
		for _, row := range rows {
			if _, ok := wanted[row.Goal]; ok {
				conversions += row.Visitors
			}
		}
		conversions = capVisitors(conversions, pageVisitors)

		out = append(out, domain.IntervalRate{
			Interval:     iv,
			PageVisitors: pageVisitors,
			Conversions:  conversions,
			Rate:         percent(conversions, pageVisitors),
		})
	}
	return out, nil
}

// goalShares orders goals by descending visitor count. Goals tied on count
// keep their original input order; goals absent from the breakdown are
// omitted.
func goalShares(goals []string, perGoal map[string]int, total int) []domain.GoalShare {
	shares := make([]domain.GoalShare, 0, len(perGoal))
	for _, goal := range goals {
		count, ok := perGoal[goal]
		if !ok {
			continue
		}
		shares = append(shares, domain.GoalShare{
			Goal:     goal,
			Visitors: count,
			Percent:  percent(count, total),
		})
	}
	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Visitors > shares[j].Visitors
	})
	return shares
}

func goalSet(goals []string) map[string]struct{} {
	set := make(map[string]struct{}, len(goals))
	for _, g := range goals {
		set[g] = struct{}{}
	}
	return set
}

func capVisitors(sum, ceiling int) int {
	if sum > ceiling {
		return ceiling
	}
	return sum
}

func percent(count, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}
