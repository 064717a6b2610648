package report

import (
	"fmt"
	"time"

	"github.com/growth-tools/goal-report/pkg/models/domain"
)

// InputError is a malformed report request: bad dates, end before start,
// unknown granularity or an empty goal list. Raised before any query runs.
type InputError struct {
	Msg string
}

func (e *InputError) Error() string {
	return e.Msg
}

// Request is one validated report run. Immutable once parsed.
type Request struct {
	Granularity domain.Granularity
	Range       domain.DateRange
	Page        string
	Goals       []string
}

// ParseRequest validates the raw command inputs shared by the CLI and the
// web handler. Dates must be YYYY-MM-DD.
func ParseRequest(granularity, start, end, page string, goals []string) (Request, error) {
	g, err := domain.ParseGranularity(granularity)
	if err != nil {
		return Request{}, &InputError{Msg: err.Error()}
	}

	startDate, err := time.Parse(domain.DateFormat, start)
	if err != nil {
		return Request{}, &InputError{Msg: fmt.Sprintf("invalid start date %q, expected YYYY-MM-DD", start)}
	}
	endDate, err := time.Parse(domain.DateFormat, end)
	if err != nil {
		return Request{}, &InputError{Msg: fmt.Sprintf("invalid end date %q, expected YYYY-MM-DD", end)}
	}

	r, err := domain.NewDateRange(startDate, endDate)
	if err != nil {
		return Request{}, &InputError{Msg: err.Error()}
	}

	if page == "" {
		return Request{}, &InputError{Msg: "page path must not be empty"}
	}
	if len(goals) == 0 {
		return Request{}, &InputError{Msg: "at least one goal is required"}
	}

	return Request{Granularity: g, Range: r, Page: page, Goals: goals}, nil
}
