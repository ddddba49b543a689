package absence_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fehlzeit/absence-board/absence"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func record(id, name string, start, end time.Time, reason string) absence.Record {
	return absence.Record{EmployeeID: id, Name: name, Start: start, End: end, Reason: reason}
}

// =============================================================================
// RECORD
// =============================================================================

func TestRecord_Days_Inclusive(t *testing.T) {
	r := record("EMP-1", "Anna", date(2024, 3, 10), date(2024, 3, 10), absence.ReasonSick)
	assert.Equal(t, 1, r.Days(), "a same-day absence counts as one day")

	r.End = date(2024, 3, 14)
	assert.Equal(t, 5, r.Days())
}

func TestRecord_Days_ZeroDates(t *testing.T) {
	assert.Equal(t, 0, absence.Record{}.Days())
}

func TestRecord_Validate(t *testing.T) {
	valid := record("EMP-1", "Anna", date(2024, 3, 10), date(2024, 3, 12), absence.ReasonVacation)
	require.NoError(t, valid.Validate())

	missing := valid
	missing.Name = ""
	assert.ErrorIs(t, missing.Validate(), absence.ErrMissingFields)

	inverted := valid
	inverted.Start, inverted.End = inverted.End, inverted.Start
	assert.ErrorIs(t, inverted.Validate(), absence.ErrStartAfterEnd)
}

func TestCalendarLabels(t *testing.T) {
	// 2024-01-01 was a Monday.
	assert.Equal(t, "Montag", absence.WeekdayLabel(date(2024, 1, 1)))
	assert.Equal(t, "Sonntag", absence.WeekdayLabel(date(2024, 1, 7)))
	assert.Equal(t, "Januar", absence.MonthLabel(date(2024, 1, 15)))
	assert.Equal(t, "Dezember", absence.MonthLabel(date(2024, 12, 1)))

	assert.Equal(t, 0, absence.WeekdayIndex("Montag"))
	assert.Equal(t, 6, absence.WeekdayIndex("Sonntag"))
	assert.Equal(t, -1, absence.WeekdayIndex("Monday"))
	assert.Equal(t, 2, absence.MonthIndex("März"))
}

func TestLookupEmployeeID(t *testing.T) {
	records := []absence.Record{
		record("EMP-1", "Anna Bauer", date(2024, 1, 1), date(2024, 1, 2), absence.ReasonSick),
	}

	id, ok := absence.LookupEmployeeID(records, "Anna Bauer")
	require.True(t, ok)
	assert.Equal(t, "EMP-1", id)

	_, ok = absence.LookupEmployeeID(records, "anna bauer")
	assert.False(t, ok, "lookup matches exact names only")
}

// =============================================================================
// EXPANSION
// =============================================================================

func TestExpand_OneRowPerDay(t *testing.T) {
	records := []absence.Record{
		record("EMP-1", "Anna", date(2024, 3, 10), date(2024, 3, 12), absence.ReasonSick),
	}

	rows := absence.Expand(records)
	require.Len(t, rows, 3)

	assert.Equal(t, date(2024, 3, 10), rows[0].Date)
	assert.Equal(t, "Sonntag", rows[0].Weekday)
	assert.Equal(t, "Montag", rows[1].Weekday)
	assert.Equal(t, "Dienstag", rows[2].Weekday)
	for _, row := range rows {
		assert.Equal(t, "März", row.Month)
		assert.Equal(t, absence.ReasonSick, row.Reason)
		assert.Equal(t, "EMP-1", row.EmployeeID)
	}
}

func TestExpand_AcrossMonthBoundary(t *testing.T) {
	records := []absence.Record{
		record("EMP-1", "Anna", date(2024, 2, 28), date(2024, 3, 1), absence.ReasonVacation),
	}

	rows := absence.Expand(records)
	require.Len(t, rows, 3, "2024 is a leap year")
	assert.Equal(t, "Februar", rows[0].Month)
	assert.Equal(t, "Februar", rows[1].Month)
	assert.Equal(t, "März", rows[2].Month)
}

func TestExpand_SkipsZeroDates(t *testing.T) {
	rows := absence.Expand([]absence.Record{{Name: "Anna", Reason: absence.ReasonSick}})
	assert.Empty(t, rows)
}

func TestCountByReason(t *testing.T) {
	records := []absence.Record{
		record("EMP-1", "Anna", date(2024, 3, 10), date(2024, 3, 12), absence.ReasonSick),
		record("EMP-2", "Ben", date(2024, 3, 11), date(2024, 3, 11), absence.ReasonVacation),
	}

	counts := absence.CountByReason(absence.Expand(records))
	require.Len(t, counts, 2)
	assert.Equal(t, absence.ReasonCount{Reason: absence.ReasonSick, Days: 3}, counts[0])
	assert.Equal(t, absence.ReasonCount{Reason: absence.ReasonVacation, Days: 1}, counts[1])
}

func TestCountByWeekdayAndReason_Ordering(t *testing.T) {
	// Mon 2024-03-11 sick, Sun 2024-03-10 sick, Mon 2024-03-11 vacation.
	records := []absence.Record{
		record("EMP-1", "Anna", date(2024, 3, 10), date(2024, 3, 11), absence.ReasonSick),
		record("EMP-2", "Ben", date(2024, 3, 11), date(2024, 3, 11), absence.ReasonVacation),
	}

	counts := absence.CountByWeekdayAndReason(absence.Expand(records))
	require.Len(t, counts, 3)

	// Monday buckets first (reason-sorted), Sunday last.
	assert.Equal(t, absence.GroupCount{Group: "Montag", Reason: absence.ReasonSick, Days: 1}, counts[0])
	assert.Equal(t, absence.GroupCount{Group: "Montag", Reason: absence.ReasonVacation, Days: 1}, counts[1])
	assert.Equal(t, absence.GroupCount{Group: "Sonntag", Reason: absence.ReasonSick, Days: 1}, counts[2])
}

func TestCountByMonthAndReason_MergesYears(t *testing.T) {
	records := []absence.Record{
		record("EMP-1", "Anna", date(2023, 5, 1), date(2023, 5, 2), absence.ReasonSick),
		record("EMP-1", "Anna", date(2024, 5, 10), date(2024, 5, 10), absence.ReasonSick),
	}

	counts := absence.CountByMonthAndReason(absence.Expand(records))
	require.Len(t, counts, 1, "May of different years shares one bucket")
	assert.Equal(t, absence.GroupCount{Group: "Mai", Reason: absence.ReasonSick, Days: 3}, counts[0])
}

// =============================================================================
// SICK SUMMARY
// =============================================================================

func TestSickSummary_GroupsAndClassifies(t *testing.T) {
	records := []absence.Record{
		// Anna: 3 + 7 = 10 sick days, vacation ignored.
		record("EMP-1", "Anna", date(2024, 1, 1), date(2024, 1, 3), absence.ReasonSick),
		record("EMP-1", "Anna", date(2024, 2, 1), date(2024, 2, 7), absence.ReasonSick),
		record("EMP-1", "Anna", date(2024, 7, 1), date(2024, 7, 21), absence.ReasonVacation),
		// Ben: 31 sick days.
		record("EMP-2", "Ben", date(2024, 3, 1), date(2024, 3, 31), absence.ReasonSick),
	}

	rows := absence.SickSummary(records)
	require.Len(t, rows, 2)

	assert.Equal(t, absence.SickSummaryRow{EmployeeID: "EMP-1", Name: "Anna", SickDays: 10, Smiley: "😄"}, rows[0])
	assert.Equal(t, absence.SickSummaryRow{EmployeeID: "EMP-2", Name: "Ben", SickDays: 31, Smiley: "😢"}, rows[1])
}

func TestSickSummary_NoSickRecords(t *testing.T) {
	records := []absence.Record{
		record("EMP-1", "Anna", date(2024, 7, 1), date(2024, 7, 5), absence.ReasonVacation),
	}
	assert.Empty(t, absence.SickSummary(records))
	assert.Empty(t, absence.SickSummary(nil))
}

func TestSmiley_Thresholds(t *testing.T) {
	cases := map[int]string{
		0:  "😄",
		10: "😄",
		11: "😐",
		20: "😐",
		21: "😕",
		30: "😕",
		31: "😢",
	}
	for days, want := range cases {
		assert.Equal(t, want, absence.Smiley(days), "sick days: %d", days)
	}
}

// =============================================================================
// RANGE FILTER
// =============================================================================

func TestFilterRange(t *testing.T) {
	records := []absence.Record{
		record("EMP-1", "Anna", date(2024, 1, 10), date(2024, 1, 12), absence.ReasonSick),
		record("EMP-2", "Ben", date(2024, 1, 20), date(2024, 2, 5), absence.ReasonVacation),
	}

	// Only records fully inside the range qualify; Ben straddles the end.
	got, err := absence.FilterRange(records, date(2024, 1, 1), date(2024, 1, 31))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "EMP-1", got[0].EmployeeID)
}

func TestFilterRange_Errors(t *testing.T) {
	records := []absence.Record{
		record("EMP-1", "Anna", date(2024, 1, 10), date(2024, 1, 12), absence.ReasonSick),
	}

	_, err := absence.FilterRange(records, time.Time{}, date(2024, 1, 31))
	assert.ErrorIs(t, err, absence.ErrRangeIncomplete)

	_, err = absence.FilterRange(records, date(2024, 2, 1), date(2024, 1, 1))
	assert.ErrorIs(t, err, absence.ErrRangeInverted)

	_, err = absence.FilterRange(records, date(2025, 1, 1), date(2025, 12, 31))
	assert.ErrorIs(t, err, absence.ErrRangeEmpty)
}
