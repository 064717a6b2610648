package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateRange(t *testing.T) {
	start := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)

	r, err := NewDateRange(start, end)
	require.NoError(t, err)
	assert.Equal(t, 30, r.Days())
	assert.Equal(t, "2024-06-01,2024-06-30", r.String())

	_, err = NewDateRange(end, start)
	assert.Error(t, err)

	single, err := NewDateRange(start, start)
	require.NoError(t, err)
	assert.Equal(t, 1, single.Days())
}

func TestParseGranularity(t *testing.T) {
	for _, valid := range []string{"day", "week", "month"} {
		g, err := ParseGranularity(valid)
		require.NoError(t, err)
		assert.Equal(t, Granularity(valid), g)
	}

	_, err := ParseGranularity("year")
	assert.Error(t, err)
}
