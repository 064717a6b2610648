package report

import (
	"fmt"

	"github.com/growth-tools/goal-report/pkg/models/domain"
)

// Section builders. Each is a pure function of engine outputs; no builder
// re-derives or re-caps a figure.

func sectionUniqueVisitors(r domain.DateRange, total int) domain.ReportSection {
	return domain.ReportSection{
		Title:   "Aggregate Unique Visitors",
		Summary: map[string]interface{}{"visitors": total},
		Details: []domain.ReportDetail{
			{
				Name:  "Aggregate Unique Visitors",
				Value: total,
				Description: fmt.Sprintf("%s to %s",
					r.Start.Format(domain.DateFormat), r.End.Format(domain.DateFormat)),
			},
		},
	}
}

func sectionEvents(events, visitors int) domain.ReportSection {
	return domain.ReportSection{
		Title: "Aggregate Events",
		Details: []domain.ReportDetail{
			{Name: "Aggregate Events", Value: events},
			{Name: "Aggregate Unique Visitors", Value: visitors},
		},
	}
}

func sectionPerInterval(g domain.Granularity, stats []domain.IntervalStats) domain.ReportSection {
	details := make([]domain.ReportDetail, 0, len(stats))
	for _, s := range stats {
		details = append(details, domain.ReportDetail{
			Name:        s.Interval.Start.Format(domain.DateFormat),
			Value:       s.Visitors,
			Unit:        "visitors",
			Description: fmt.Sprintf("%d / %d", s.Events, s.Visitors),
		})
	}
	return domain.ReportSection{
		Title:   "Aggregate Total Events / Aggregate Unique Visitors",
		Summary: map[string]interface{}{"per": string(g)},
		Details: details,
	}
}

func sectionGoalBreakdown(shares []domain.GoalShare) domain.ReportSection {
	details := make([]domain.ReportDetail, 0, len(shares))
	for _, s := range shares {
		details = append(details, domain.ReportDetail{
			Name:        s.Goal,
			Value:       s.Percent,
			Unit:        "%",
			Description: fmt.Sprintf("%.2f%% (%d)", s.Percent, s.Visitors),
		})
	}
	return domain.ReportSection{
		Title:   "Percent Unique Visitors (Total Unique Visitors) by Goal",
		Details: details,
	}
}

func sectionConversionRate(page string, pageVisitors, conversions int, rate float64) domain.ReportSection {
	return domain.ReportSection{
		Title:   "Aggregate Conversion Rate",
		Summary: map[string]interface{}{"page": page},
		Details: []domain.ReportDetail{
			{
				Name:        "Aggregate Conversion Rate",
				Value:       rate,
				Unit:        "%",
				Description: fmt.Sprintf("%.2f%% = Unique Visitor Events / Unique Visitors to Page (feature on page = %s)", rate, page),
			},
			{Name: "Unique Visitors to Page", Value: pageVisitors},
			{Name: "Converted Unique Visitors", Value: conversions},
		},
	}
}

func sectionIntervalRates(g domain.Granularity, rates []domain.IntervalRate) domain.ReportSection {
	details := make([]domain.ReportDetail, 0, len(rates))
	for _, r := range rates {
		details = append(details, domain.ReportDetail{
			Name:        r.Interval.Start.Format(domain.DateFormat),
			Value:       r.Rate,
			Unit:        "%",
			Description: fmt.Sprintf("%.2f%%", r.Rate),
		})
	}
	return domain.ReportSection{
		Title:   "Aggregate Conversion Rate per " + string(g),
		Summary: map[string]interface{}{"per": string(g)},
		Details: details,
	}
}
