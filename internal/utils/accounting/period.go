package accounting

import (
	"fmt"
	"time"

	"github.com/officebooks/officeledger/internal/apperrors"
	"github.com/officebooks/officeledger/internal/core/domain"
)

// startOfDay truncates t to midnight in its own location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfDay returns the last representable instant of t's calendar day.
func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// startOfWeek returns the most recent Sunday midnight at or before t.
// Weeks start on Sunday.
func startOfWeek(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, -int(t.Weekday()))
}

// ResolvePeriod turns a period specifier into a concrete inclusive
// date window, computed relative to now. For PeriodCustom the caller
// supplies start and end dates (inclusive both ends); for every other
// specifier they are ignored.
func ResolvePeriod(pt domain.PeriodType, start, end time.Time, now time.Time) (domain.ReportPeriod, error) {
	period := domain.ReportPeriod{Type: pt}

	switch pt {
	case domain.PeriodCurrentWeek:
		period.Start = startOfWeek(now)
		period.End = now
		period.Label = "Current Week"
	case domain.PeriodCurrentMonth:
		period.Start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		period.End = now
		period.Label = "Current Month"
	case domain.PeriodCurrentYear:
		period.Start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		period.End = now
		period.Label = "Current Year"
	case domain.PeriodWeekly:
		thisWeek := startOfWeek(now)
		period.Start = thisWeek.AddDate(0, 0, -7)
		period.End = thisWeek.Add(-time.Nanosecond)
		period.Label = "Previous Week"
	case domain.PeriodMonthly:
		firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		period.Start = firstOfMonth.AddDate(0, -1, 0)
		period.End = firstOfMonth.Add(-time.Nanosecond)
		period.Label = "Previous Month"
	case domain.PeriodYearly:
		firstOfYear := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		period.Start = firstOfYear.AddDate(-1, 0, 0)
		period.End = firstOfYear.Add(-time.Nanosecond)
		period.Label = "Previous Year"
	case domain.PeriodCustom:
		if start.IsZero() || end.IsZero() {
			return domain.ReportPeriod{}, fmt.Errorf("%w: custom period requires start and end dates", apperrors.ErrValidation)
		}
		if end.Before(start) {
			return domain.ReportPeriod{}, fmt.Errorf("%w: custom period end %s precedes start %s",
				apperrors.ErrValidation, end.Format("2006-01-02"), start.Format("2006-01-02"))
		}
		period.Start = startOfDay(start)
		period.End = endOfDay(end)
		period.Label = fmt.Sprintf("%s to %s", period.Start.Format("2006-01-02"), end.Format("2006-01-02"))
	default:
		return domain.ReportPeriod{}, fmt.Errorf("%w: unknown period specifier %q", apperrors.ErrValidation, pt)
	}

	return period, nil
}

// FilterByPeriod returns the entries dated inside the window,
// inclusive on both ends. Entries with a zero date cannot be placed in
// any window and are excluded rather than failing the whole report.
func FilterByPeriod(entries []domain.JournalEntry, period domain.ReportPeriod) []domain.JournalEntry {
	filtered := make([]domain.JournalEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.EntryDate.IsZero() {
			continue
		}
		if period.Contains(entry.EntryDate) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}
