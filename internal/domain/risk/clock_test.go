package risk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextMaintenance(t *testing.T) {
	next := NextMaintenance(date(2023, 1, 1), 365)
	assert.Equal(t, date(2024, 1, 1), next)
}

func TestDaysOverdue(t *testing.T) {
	tests := []struct {
		name         string
		last         time.Time
		intervalDays int
		asOf         time.Time
		want         int
	}{
		{
			name:         "one day past due",
			last:         date(2023, 1, 1),
			intervalDays: 365,
			asOf:         date(2024, 1, 2),
			want:         1,
		},
		{
			name:         "due today",
			last:         date(2023, 1, 1),
			intervalDays: 365,
			asOf:         date(2024, 1, 1),
			want:         0,
		},
		{
			name:         "not yet due",
			last:         date(2023, 1, 1),
			intervalDays: 365,
			asOf:         date(2023, 12, 1),
			want:         -31,
		},
		{
			name:         "far overdue",
			last:         date(2020, 1, 1),
			intervalDays: 365,
			asOf:         date(2022, 1, 1),
			want:         366,
		},
		{
			// A 365 day interval across leap year 2024 puts the due
			// date at 2024-12-31, not at the calendar anniversary
			name:         "interval spans a leap year",
			last:         date(2024, 1, 1),
			intervalDays: 365,
			asOf:         date(2025, 1, 2),
			want:         2,
		},
		{
			name:         "due date lands on leap day",
			last:         date(2023, 3, 1),
			intervalDays: 365,
			asOf:         date(2024, 2, 29),
			want:         0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DaysOverdue(tt.last, tt.intervalDays, tt.asOf)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDaysOverdueIgnoresTimeOfDay(t *testing.T) {
	last := time.Date(2023, 1, 1, 23, 59, 0, 0, time.UTC)
	asOf := time.Date(2024, 1, 2, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysOverdue(last, 365, asOf))
}

func TestDaysOverdueDeterministic(t *testing.T) {
	last := date(2022, 6, 15)
	asOf := date(2024, 3, 1)
	first := DaysOverdue(last, 365, asOf)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, DaysOverdue(last, 365, asOf))
	}
}
