package accounting_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officebooks/officeledger/internal/apperrors"
	"github.com/officebooks/officeledger/internal/core/domain"
	"github.com/officebooks/officeledger/internal/utils/accounting"
)

// Wednesday, 2024-03-13 15:30 UTC.
var fixedNow = time.Date(2024, 3, 13, 15, 30, 0, 0, time.UTC)

func TestResolvePeriod_Presets(t *testing.T) {
	tests := []struct {
		name      string
		period    domain.PeriodType
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "current week starts Sunday",
			period:    domain.PeriodCurrentWeek,
			wantStart: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			wantEnd:   fixedNow,
		},
		{
			name:      "current month starts on the first",
			period:    domain.PeriodCurrentMonth,
			wantStart: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   fixedNow,
		},
		{
			name:      "current year starts January first",
			period:    domain.PeriodCurrentYear,
			wantStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   fixedNow,
		},
		{
			name:      "weekly is the full previous Sunday to Saturday week",
			period:    domain.PeriodWeekly,
			wantStart: time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond),
		},
		{
			name:      "monthly is the full previous calendar month",
			period:    domain.PeriodMonthly,
			wantStart: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond),
		},
		{
			name:      "yearly is the full previous calendar year",
			period:    domain.PeriodYearly,
			wantStart: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period, err := accounting.ResolvePeriod(tt.period, time.Time{}, time.Time{}, fixedNow)
			require.NoError(t, err)
			assert.True(t, period.Start.Equal(tt.wantStart), "start: got %s want %s", period.Start, tt.wantStart)
			assert.True(t, period.End.Equal(tt.wantEnd), "end: got %s want %s", period.End, tt.wantEnd)
			assert.Equal(t, tt.period, period.Type)
			assert.NotEmpty(t, period.Label)
		})
	}
}

func TestResolvePeriod_SundayNow(t *testing.T) {
	// When now is already a Sunday the current week starts today.
	sunday := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	period, err := accounting.ResolvePeriod(domain.PeriodCurrentWeek, time.Time{}, time.Time{}, sunday)
	require.NoError(t, err)
	assert.True(t, period.Start.Equal(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)))
}

func TestResolvePeriod_Custom(t *testing.T) {
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

	period, err := accounting.ResolvePeriod(domain.PeriodCustom, start, end, fixedNow)
	require.NoError(t, err)
	assert.True(t, period.Start.Equal(start))
	// End is inclusive through the whole end day.
	assert.True(t, period.Contains(time.Date(2024, 1, 20, 23, 59, 59, 0, time.UTC)))
	assert.False(t, period.Contains(time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC)))
}

func TestResolvePeriod_CustomValidation(t *testing.T) {
	start := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	_, err := accounting.ResolvePeriod(domain.PeriodCustom, start, end, fixedNow)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = accounting.ResolvePeriod(domain.PeriodCustom, time.Time{}, end, fixedNow)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestResolvePeriod_UnknownSpecifier(t *testing.T) {
	_, err := accounting.ResolvePeriod(domain.PeriodType("quarterly"), time.Time{}, time.Time{}, fixedNow)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestFilterByPeriod(t *testing.T) {
	period := domain.ReportPeriod{
		Type:  domain.PeriodCustom,
		Start: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 2, 29, 23, 59, 59, 999999999, time.UTC),
	}

	inside := testEntry("in", "a", "b", 10, time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC))
	onStart := testEntry("start", "a", "b", 10, period.Start)
	onEnd := testEntry("end", "a", "b", 10, time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC))
	before := testEntry("before", "a", "b", 10, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC))
	after := testEntry("after", "a", "b", 10, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	undated := testEntry("undated", "a", "b", 10, time.Time{})

	filtered := accounting.FilterByPeriod([]domain.JournalEntry{inside, onStart, onEnd, before, after, undated}, period)

	ids := make([]string, 0, len(filtered))
	for _, entry := range filtered {
		ids = append(ids, entry.EntryID)
	}
	assert.Equal(t, []string{"in", "start", "end"}, ids)
}

// An entry outside a monthly window still lands in a custom range
// spanning its date.
func TestFilterByPeriod_MonthlyVersusCustomSpan(t *testing.T) {
	entry := testEntry("e1", "a", "b", 10, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))

	monthly, err := accounting.ResolvePeriod(domain.PeriodMonthly, time.Time{}, time.Time{}, fixedNow)
	require.NoError(t, err)
	assert.Empty(t, accounting.FilterByPeriod([]domain.JournalEntry{entry}, monthly))

	custom, err := accounting.ResolvePeriod(domain.PeriodCustom,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), fixedNow)
	require.NoError(t, err)
	assert.Len(t, accounting.FilterByPeriod([]domain.JournalEntry{entry}, custom), 1)
}
