package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/growth-tools/goal-report/pkg/models/domain"
)

func TestReporter_Handle(t *testing.T) {
	rep := &domain.Report{
		Title:       "Goal Conversion Report",
		Site:        "example.com",
		Page:        "/",
		Goals:       []string{"signup", "trial"},
		Granularity: domain.GranularityDay,
		Period: domain.TimePeriod{
			Start:    time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
			End:      time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC),
			Duration: 2,
		},
		Sections: []domain.ReportSection{
			{
				Title: "Aggregate Unique Visitors",
				Details: []domain.ReportDetail{
					{Name: "Aggregate Unique Visitors", Value: 9, Description: "2024-06-01 to 2024-06-02"},
				},
			},
			{
				Title: "Aggregate Conversion Rate per day",
				Details: []domain.ReportDetail{
					{Name: "2024-06-01", Value: 40.0, Unit: "%", Description: "40.00%"},
					{Name: "2024-06-02", Value: 0.0, Unit: "%", Description: "0.00%"},
				},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf).Handle(rep))
	out := buf.String()

	assert.Contains(t, out, "Goal Conversion Report")
	assert.Contains(t, out, "Site: example.com")
	assert.Contains(t, out, "2024-06-01 to 2024-06-02 (2 days, per day)")
	assert.Contains(t, out, "Goals: signup, trial")
	assert.Contains(t, out, "Aggregate Unique Visitors")
	assert.Contains(t, out, "40.00%")
	assert.Contains(t, out, "---")
}

func TestReporter_NilWriterDefaultsToStdout(t *testing.T) {
	r := NewReporter(nil)
	assert.NotNil(t, r)
}
