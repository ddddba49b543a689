/*
summary.go - Sick-day summary with smiley classification

PURPOSE:
  Derives the per-employee sick-day overview table: records with reason
  "Krank" grouped by employee, day counts summed, and a smiley assigned by
  fixed thresholds. The smiley is the dashboard's at-a-glance indicator for
  accumulated sick days per employee.

THRESHOLDS:
  sum <= 10  😄
  sum <= 20  😐
  sum <= 30  😕
  else       😢
*/
package absence

import "sort"

// SickSummaryRow is one employee's summed sick days plus classification.
type SickSummaryRow struct {
	EmployeeID string
	Name       string
	SickDays   int
	Smiley     string
}

// Smiley classifies a summed sick-day count.
func Smiley(sickDays int) string {
	switch {
	case sickDays <= 10:
		return "😄"
	case sickDays <= 20:
		return "😐"
	case sickDays <= 30:
		return "😕"
	default:
		return "😢"
	}
}

// SickSummary filters records to reason "Krank", groups by (employee id,
// name) and sums the inclusive day counts. Rows are sorted by employee id.
// An empty input or an input without sick records yields an empty slice.
func SickSummary(records []Record) []SickSummaryRow {
	type key struct{ id, name string }
	sums := make(map[key]int)
	for _, r := range records {
		if r.Reason != ReasonSick {
			continue
		}
		sums[key{r.EmployeeID, r.Name}] += r.Days()
	}

	rows := make([]SickSummaryRow, 0, len(sums))
	for k, days := range sums {
		rows = append(rows, SickSummaryRow{
			EmployeeID: k.id,
			Name:       k.name,
			SickDays:   days,
			Smiley:     Smiley(days),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].EmployeeID < rows[j].EmployeeID })
	return rows
}
