package report

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/growth-tools/goal-report/pkg/models/domain"
)

func TestParseRequest_Valid(t *testing.T) {
	req, err := ParseRequest("month", "2024-01-01", "2024-03-31", "/pricing", []string{"signup", "trial"})

	require.NoError(t, err)
	assert.Equal(t, domain.GranularityMonth, req.Granularity)
	assert.Equal(t, "/pricing", req.Page)
	assert.Equal(t, []string{"signup", "trial"}, req.Goals)
	assert.Equal(t, 91, req.Range.Days())
}

func TestParseRequest_Errors(t *testing.T) {
	cases := []struct {
		name        string
		granularity string
		start, end  string
		page        string
		goals       []string
	}{
		{"unknown granularity", "hour", "2024-06-01", "2024-06-02", "/", []string{"signup"}},
		{"malformed start date", "day", "06/01/2024", "2024-06-02", "/", []string{"signup"}},
		{"malformed end date", "day", "2024-06-01", "yesterday", "/", []string{"signup"}},
		{"end before start", "day", "2024-06-02", "2024-06-01", "/", []string{"signup"}},
		{"empty page path", "day", "2024-06-01", "2024-06-02", "", []string{"signup"}},
		{"empty goal list", "day", "2024-06-01", "2024-06-02", "/", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseRequest(tc.granularity, tc.start, tc.end, tc.page, tc.goals)

			var inputErr *InputError
			require.True(t, errors.As(err, &inputErr), "expected InputError, got %v", err)
		})
	}
}
