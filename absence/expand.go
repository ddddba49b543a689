/*
expand.go - Date-range expansion into daily rows

PURPOSE:
  Turns absence records (one row per start/end interval) into the expanded
  table (one row per covered calendar day). Every chart query groups over
  the expanded table, never over raw records, so a five-day absence weighs
  five times as much as a one-day absence in every view.

SEE ALSO:
  - stats.go: builds the continuous calendar on top of expanded rows
  - charts: consumes the aggregations defined here
*/
package absence

import (
	"sort"
	"time"
)

// DayRow is one day of one absence in the expanded table.
type DayRow struct {
	EmployeeID string
	Name       string
	Date       time.Time
	Reason     string
	Weekday    string
	Month      string
}

// Expand produces one DayRow per calendar day covered by each record.
// Records with a zero start or end date are skipped. Row order is record
// order, days ascending within a record.
func Expand(records []Record) []DayRow {
	var rows []DayRow
	for _, r := range records {
		if r.Start.IsZero() || r.End.IsZero() {
			continue
		}
		for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
			rows = append(rows, DayRow{
				EmployeeID: r.EmployeeID,
				Name:       r.Name,
				Date:       d,
				Reason:     r.Reason,
				Weekday:    WeekdayLabel(d),
				Month:      MonthLabel(d),
			})
		}
	}
	return rows
}

// ReasonCount is an aggregated day count for one reason.
type ReasonCount struct {
	Reason string
	Days   int
}

// CountByReason sums expanded days per reason, sorted alphabetically by
// reason so chart output is deterministic.
func CountByReason(rows []DayRow) []ReasonCount {
	return countGrouped(rows, func(r DayRow) string { return r.Reason })
}

// GroupCount is an aggregated day count for one (group, reason) pair, used
// by the weekday and month charts.
type GroupCount struct {
	Group  string
	Reason string
	Days   int
}

// CountByWeekdayAndReason sums expanded days per (weekday, reason), sorted
// by weekday order (Monday first), then reason.
func CountByWeekdayAndReason(rows []DayRow) []GroupCount {
	return countPairs(rows, func(r DayRow) string { return r.Weekday }, WeekdayIndex)
}

// CountByMonthAndReason sums expanded days per (month, reason), sorted in
// calendar month order, then reason. Months are grouped by label, so the
// same month of different years lands in one bucket.
func CountByMonthAndReason(rows []DayRow) []GroupCount {
	return countPairs(rows, func(r DayRow) string { return r.Month }, MonthIndex)
}

func countGrouped(rows []DayRow, key func(DayRow) string) []ReasonCount {
	counts := make(map[string]int)
	for _, r := range rows {
		counts[key(r)]++
	}
	out := make([]ReasonCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, ReasonCount{Reason: k, Days: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Reason < out[j].Reason })
	return out
}

func countPairs(rows []DayRow, group func(DayRow) string, order func(string) int) []GroupCount {
	type key struct{ group, reason string }
	counts := make(map[key]int)
	for _, r := range rows {
		counts[key{group(r), r.Reason}]++
	}
	out := make([]GroupCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, GroupCount{Group: k.group, Reason: k.reason, Days: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if oa, ob := order(out[i].Group), order(out[j].Group); oa != ob {
			return oa < ob
		}
		return out[i].Reason < out[j].Reason
	})
	return out
}
