package cron

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurrentWeekStart(t *testing.T) {
	sunday := time.Date(2026, time.January, 4, 0, 0, 0, 0, time.UTC)

	// A Sunday maps to itself.
	assert.Equal(t, sunday, CurrentWeekStart(sunday))
	// Mid-week and late-week times map back to the same Sunday.
	assert.Equal(t, sunday, CurrentWeekStart(sunday.Add(49*time.Hour)))
	assert.Equal(t, sunday, CurrentWeekStart(time.Date(2026, time.January, 10, 23, 59, 0, 0, time.UTC)))
	// The next Sunday starts a new week.
	assert.Equal(t, sunday.AddDate(0, 0, 7), CurrentWeekStart(time.Date(2026, time.January, 11, 0, 0, 0, 0, time.UTC)))
}
