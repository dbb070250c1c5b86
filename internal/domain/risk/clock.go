package risk

import "time"

// NextMaintenance returns the due date: last maintenance plus the
// regulatory interval.
func NextMaintenance(lastMaintenance time.Time, intervalDays int) time.Time {
	return lastMaintenance.AddDate(0, 0, intervalDays)
}

// DaysOverdue returns asOf minus the due date in whole days. Positive means
// overdue, zero means due today, negative means not yet due. Timestamps are
// truncated to calendar days so intraday times never shift the result.
func DaysOverdue(lastMaintenance time.Time, intervalDays int, asOf time.Time) int {
	due := NextMaintenance(lastMaintenance, intervalDays)
	return daysBetween(due, asOf)
}

// daysBetween returns b - a in whole calendar days (UTC)
func daysBetween(a, b time.Time) int {
	a = truncateDay(a)
	b = truncateDay(b)
	return int(b.Sub(a) / (24 * time.Hour))
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
