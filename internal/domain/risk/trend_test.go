package risk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowDays(t *testing.T) {
	assert.Equal(t, 7, WindowDays("7d"))
	assert.Equal(t, 30, WindowDays("30d"))
	assert.Equal(t, 90, WindowDays("90d"))
	assert.Equal(t, 365, WindowDays("1y"))
	assert.Equal(t, 0, WindowDays("2w"))
	assert.Equal(t, 0, WindowDays(""))
}

func TestTrendDailyWindow(t *testing.T) {
	asOf := date(2026, 8, 31)
	history := []Snapshot{
		{Date: date(2026, 8, 30), Critical: 2, Legal: 1},
		{Date: date(2026, 8, 31), Critical: 3, Legal: 1},
	}

	points := Trend(history, 7, asOf)
	require.Len(t, points, 7)

	// Oldest first, gaps filled with zeros
	assert.Equal(t, date(2026, 8, 25), points[0].Date)
	assert.Equal(t, 0, points[0].Critical)
	assert.Equal(t, 2, points[5].Critical)
	assert.Equal(t, 1, points[5].Legal)
	assert.Equal(t, 3, points[6].Critical)
}

func TestTrendWeeklyBuckets(t *testing.T) {
	asOf := date(2026, 8, 31)

	// 90 days produce 12 full weeks plus a six day trailing bucket
	points := Trend(nil, 90, asOf)
	require.Len(t, points, 13)

	// Buckets are seven days apart, the last one starting after 84 days
	start := date(2026, 8, 31).AddDate(0, 0, -89)
	for i := 0; i < 13; i++ {
		assert.Equal(t, start.AddDate(0, 0, i*7), points[i].Date)
	}
}

func TestTrendWeeklyAverageRounds(t *testing.T) {
	asOf := date(2026, 8, 31)
	start := truncateDay(asOf).AddDate(0, 0, -89)

	// First bucket: 4 critical on three days out of seven, avg 12/7 -> 2
	history := []Snapshot{
		{Date: start, Critical: 4},
		{Date: start.AddDate(0, 0, 1), Critical: 4},
		{Date: start.AddDate(0, 0, 2), Critical: 4},
	}

	points := Trend(history, 90, asOf)
	require.Len(t, points, 13)
	assert.Equal(t, 2, points[0].Critical)
	assert.Equal(t, 0, points[1].Critical)
}

func TestTrendIgnoresSnapshotsOutsideWindow(t *testing.T) {
	asOf := date(2026, 8, 31)
	history := []Snapshot{
		{Date: date(2020, 1, 1), Critical: 99, Legal: 99},
	}

	points := Trend(history, 7, asOf)
	for _, p := range points {
		assert.Equal(t, 0, p.Critical)
		assert.Equal(t, 0, p.Legal)
	}
}

func TestTrendYearWindow(t *testing.T) {
	asOf := date(2026, 8, 31)
	points := Trend(nil, 365, asOf)
	// 52 full weeks plus a one day trailing bucket
	require.Len(t, points, 53)
}

func TestTrendSnapshotTimeOfDayIrrelevant(t *testing.T) {
	asOf := date(2026, 8, 31)
	history := []Snapshot{
		{Date: time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC), Critical: 5},
	}

	points := Trend(history, 7, asOf)
	assert.Equal(t, 5, points[6].Critical)
}
