/*
stats.go - Monthly statistics over the absence calendar

PURPOSE:
  Computes the statistical trend view: absences per calendar day, aggregated
  per month. Unlike the chart group-bys, this works on a CONTINUOUS calendar
  from the first to the last expanded day, so days without any absence enter
  the statistics as zero instead of being invisible.

PER-MONTH METRICS:
  Mean             average absences per day, rounded to 2 decimals
  Std              sample standard deviation (n-1), 0 when undefined
  Max, Min         extremes of the daily count
  DaysWithAbsence  days with at least one absence
  TotalDays        calendar days of the month inside the data range
  Quota            DaysWithAbsence / TotalDays * 100, rounded to 1 decimal

  Months are grouped by German label, so the same month of different years
  shares a bucket. Mean and Quota are computed with decimal division so the
  displayed values are exact, not float-formatted.

SEE ALSO:
  - expand.go: the daily rows this consumes
  - charts: renders Mean/Std/Max/Min as the statistics figure
*/
package absence

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// MonthStats holds the per-month statistics of daily absence counts.
type MonthStats struct {
	Month           string
	Mean            decimal.Decimal
	Std             float64
	Max             int
	Min             int
	DaysWithAbsence int
	TotalDays       int
	Quota           decimal.Decimal
}

// DurationCount is the number of absence records lasting a given number of days.
type DurationCount struct {
	Days  int
	Count int
}

// MonthlyStatistics aggregates daily absence counts per month label. Returns
// nil for an empty expanded table. Months appear in calendar order; months
// outside the data range are omitted.
func MonthlyStatistics(rows []DayRow) []MonthStats {
	if len(rows) == 0 {
		return nil
	}

	perDay := make(map[time.Time]int)
	minDate, maxDate := rows[0].Date, rows[0].Date
	for _, r := range rows {
		perDay[r.Date]++
		if r.Date.Before(minDate) {
			minDate = r.Date
		}
		if r.Date.After(maxDate) {
			maxDate = r.Date
		}
	}

	// Walk the continuous calendar so absence-free days count as zero.
	counts := make(map[string][]int)
	for d := minDate; !d.After(maxDate); d = d.AddDate(0, 0, 1) {
		label := MonthLabel(d)
		counts[label] = append(counts[label], perDay[d])
	}

	out := make([]MonthStats, 0, len(counts))
	for label, daily := range counts {
		out = append(out, monthStats(label, daily))
	}
	sort.Slice(out, func(i, j int) bool { return MonthIndex(out[i].Month) < MonthIndex(out[j].Month) })
	return out
}

func monthStats(label string, daily []int) MonthStats {
	sum, max, min, withAbsence := 0, daily[0], daily[0], 0
	for _, n := range daily {
		sum += n
		if n > max {
			max = n
		}
		if n < min {
			min = n
		}
		if n > 0 {
			withAbsence++
		}
	}

	total := len(daily)
	mean := decimal.NewFromInt(int64(sum)).
		Div(decimal.NewFromInt(int64(total))).
		Round(2)
	quota := decimal.NewFromInt(int64(withAbsence)).
		Div(decimal.NewFromInt(int64(total))).
		Mul(decimal.NewFromInt(100)).
		Round(1)

	return MonthStats{
		Month:           label,
		Mean:            mean,
		Std:             sampleStd(daily, float64(sum)/float64(total)),
		Max:             max,
		Min:             min,
		DaysWithAbsence: withAbsence,
		TotalDays:       total,
		Quota:           quota,
	}
}

// sampleStd is the n-1 standard deviation, 0 when fewer than two samples.
func sampleStd(daily []int, mean float64) float64 {
	if len(daily) < 2 {
		return 0
	}
	var sq float64
	for _, n := range daily {
		d := float64(n) - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(daily)-1))
}

// DurationHistogram counts records per absence duration, shortest first.
// Records with zero dates are skipped.
func DurationHistogram(records []Record) []DurationCount {
	counts := make(map[int]int)
	for _, r := range records {
		if d := r.Days(); d > 0 {
			counts[d]++
		}
	}
	out := make([]DurationCount, 0, len(counts))
	for d, n := range counts {
		out = append(out, DurationCount{Days: d, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Days < out[j].Days })
	return out
}
