package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduleStatus(t *testing.T) {
	start := time.Date(2025, 7, 10, 9, 0, 0, 0, time.UTC)
	end := time.Date(2025, 7, 11, 18, 0, 0, 0, time.UTC)

	assert.Equal(t, "upcoming", scheduleStatus(start, end, start.Add(-time.Hour)))
	assert.Equal(t, "ongoing", scheduleStatus(start, end, start.Add(time.Hour)))
	assert.Equal(t, "completed", scheduleStatus(start, end, end.Add(time.Minute)))
}
