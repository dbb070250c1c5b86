package risk

import (
	"math"
	"time"
)

// Snapshot is one day's worth of alert counts, as recorded by the daily
// snapshot job.
type Snapshot struct {
	Date     time.Time `json:"date"`
	Critical int       `json:"critical"`
	Legal    int       `json:"legal"`
}

// TrendPoint is one point of the dashboard trend series. For daily
// windows a point covers one day; for bucketed windows it covers up to
// seven days starting at Date.
type TrendPoint struct {
	Date     time.Time `json:"date"`
	Critical int       `json:"critical"`
	Legal    int       `json:"legal"`
}

// weeklyBucketMinDays is the window size from which daily points are
// collapsed into weekly buckets.
const weeklyBucketMinDays = 90

// Trend produces the time series for a requested window ending at asOf.
// Windows below 90 days yield one point per day. From 90 days on, daily
// points are collapsed into weekly buckets whose metrics are the rounded
// average of the constituent days; a partial trailing bucket is emitted
// from the remaining days. Days without a snapshot count as zero, so the
// output is fully determined by history and asOf.
func Trend(history []Snapshot, windowDays int, asOf time.Time) []TrendPoint {
	daily := dailySeries(history, windowDays, asOf)
	if windowDays < weeklyBucketMinDays {
		return daily
	}
	return bucketWeekly(daily)
}

// dailySeries builds one point per day over the window, oldest first
func dailySeries(history []Snapshot, windowDays int, asOf time.Time) []TrendPoint {
	byDay := make(map[time.Time]Snapshot, len(history))
	for _, s := range history {
		byDay[truncateDay(s.Date)] = s
	}

	start := truncateDay(asOf).AddDate(0, 0, -(windowDays - 1))
	points := make([]TrendPoint, 0, windowDays)
	for i := 0; i < windowDays; i++ {
		day := start.AddDate(0, 0, i)
		point := TrendPoint{Date: day}
		if s, ok := byDay[day]; ok {
			point.Critical = s.Critical
			point.Legal = s.Legal
		}
		points = append(points, point)
	}
	return points
}

// bucketWeekly collapses daily points into 7-day buckets, averaging each
// metric and rounding to the nearest integer. The final bucket may cover
// fewer than seven days and is still emitted.
func bucketWeekly(daily []TrendPoint) []TrendPoint {
	buckets := make([]TrendPoint, 0, (len(daily)+6)/7)
	for start := 0; start < len(daily); start += 7 {
		end := start + 7
		if end > len(daily) {
			end = len(daily)
		}
		chunk := daily[start:end]

		var criticalSum, legalSum int
		for _, p := range chunk {
			criticalSum += p.Critical
			legalSum += p.Legal
		}
		n := float64(len(chunk))
		buckets = append(buckets, TrendPoint{
			Date:     chunk[0].Date,
			Critical: int(math.Round(float64(criticalSum) / n)),
			Legal:    int(math.Round(float64(legalSum) / n)),
		})
	}
	return buckets
}

// WindowDays maps an API timeframe onto its window length in days.
// Returns 0 for unsupported timeframes.
func WindowDays(timeframe string) int {
	switch timeframe {
	case "7d":
		return 7
	case "30d":
		return 30
	case "90d":
		return 90
	case "1y":
		return 365
	default:
		return 0
	}
}
