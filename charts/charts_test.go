package charts_test

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fehlzeit/absence-board/absence"
	"github.com/fehlzeit/absence-board/charts"
)

var pngMagic = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}

func renderPNG(t *testing.T, c charts.Renderable) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, charts.Render(c, &buf))
	require.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic), "output is not a PNG")
	return buf.Bytes()
}

func TestReasons_RendersPNG(t *testing.T) {
	renderPNG(t, charts.Reasons([]absence.ReasonCount{
		{Reason: absence.ReasonSick, Days: 12},
		{Reason: absence.ReasonVacation, Days: 30},
	}))
}

func TestGroupedCharts_RenderPNG(t *testing.T) {
	counts := []absence.GroupCount{
		{Group: "Montag", Reason: absence.ReasonSick, Days: 4},
		{Group: "Dienstag", Reason: absence.ReasonVacation, Days: 2},
	}
	renderPNG(t, charts.Weekdays(counts))

	months := []absence.GroupCount{
		{Group: "Januar", Reason: absence.ReasonSick, Days: 8},
		{Group: "Februar", Reason: absence.ReasonTraining, Days: 3},
	}
	renderPNG(t, charts.Months(months))
}

func TestDurations_RendersPNG(t *testing.T) {
	renderPNG(t, charts.Durations([]absence.DurationCount{
		{Days: 1, Count: 5},
		{Days: 3, Count: 2},
	}))
}

func TestStatistics_RendersPNG(t *testing.T) {
	stats := []absence.MonthStats{
		{Month: "Januar", Mean: decimal.NewFromFloat(1.5), Std: 0.7, Max: 3, Min: 0, DaysWithAbsence: 20, TotalDays: 31},
		{Month: "Februar", Mean: decimal.NewFromFloat(0.8), Std: 0.4, Max: 2, Min: 0, DaysWithAbsence: 12, TotalDays: 29},
	}
	renderPNG(t, charts.Statistics(stats))
}

func TestStatistics_SingleMonth(t *testing.T) {
	// go-chart needs at least two x values; a single month must still render.
	stats := []absence.MonthStats{
		{Month: "Juni", Mean: decimal.NewFromFloat(1.0), Std: 0, Max: 1, Min: 1, DaysWithAbsence: 30, TotalDays: 30},
	}
	renderPNG(t, charts.Statistics(stats))
}

func TestEmptyData_RendersPlaceholder(t *testing.T) {
	assert.NotPanics(t, func() {
		renderPNG(t, charts.Reasons(nil))
		renderPNG(t, charts.Weekdays(nil))
		renderPNG(t, charts.Months(nil))
		renderPNG(t, charts.Durations(nil))
		renderPNG(t, charts.Statistics(nil))
	})
}
