/*
Package charts renders the dashboard figures as PNG images.

PURPOSE:
  Server-side chart rendering with go-chart. Each builder takes aggregated
  absence data and returns a renderable figure; handlers stream the PNG
  straight into the HTTP response.

FIGURES:
  Reasons     bar chart, absence days per reason
  Weekdays    grouped bars, days per weekday and reason, Monday first
  Months      grouped bars, days per month and reason, calendar order
  Statistics  line view of the monthly daily-count statistics:
              mean (solid, markers), max/min (dashed), ±1σ (thin)
  Durations   histogram of absence durations

EMPTY DATA:
  An empty table renders a neutral "Keine Daten verfügbar" placeholder
  instead of failing; go-chart cannot render zero-series figures.

SEE ALSO:
  - absence: the aggregation functions feeding these builders
*/
package charts

import (
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/fehlzeit/absence-board/absence"
)

const (
	chartWidth  = 1024
	chartHeight = 420
	barWidth    = 42
)

// reasonPalette fixes a color per catalog reason so a reason keeps its color
// across all figures. Unknown (free-text) reasons share a gray.
var reasonPalette = map[string]drawing.Color{
	absence.ReasonSick:     chart.ColorRed,
	absence.ReasonVacation: chart.ColorBlue,
	absence.ReasonPersonal: chart.ColorOrange,
	absence.ReasonTraining: chart.ColorGreen,
}

func reasonColor(reason string) drawing.Color {
	if c, ok := reasonPalette[reason]; ok {
		return c
	}
	return chart.ColorAlternateGray
}

// Renderable is the common rendering surface of chart.Chart and
// chart.BarChart.
type Renderable interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

// Render writes the figure as PNG.
func Render(c Renderable, w io.Writer) error {
	return c.Render(chart.PNG, w)
}

// Placeholder is the figure shown when the table is empty.
func Placeholder() *chart.BarChart {
	return &chart.BarChart{
		Title:    "Keine Daten verfügbar",
		Width:    chartWidth,
		Height:   chartHeight,
		BarWidth: barWidth,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Bars: []chart.Value{
			{
				Value: 1,
				Label: "Keine Daten verfügbar",
				Style: chart.Style{FillColor: chart.ColorAlternateLightGray, StrokeColor: chart.ColorAlternateGray},
			},
		},
		YAxis: chart.YAxis{Range: &chart.ContinuousRange{Min: 0, Max: 1.2}},
	}
}

// Reasons builds the days-per-reason bar chart.
func Reasons(counts []absence.ReasonCount) *chart.BarChart {
	if len(counts) == 0 {
		return Placeholder()
	}

	bars := make([]chart.Value, len(counts))
	for i, c := range counts {
		col := reasonColor(c.Reason)
		bars[i] = chart.Value{
			Value: float64(c.Days),
			Label: c.Reason,
			Style: chart.Style{FillColor: col.WithAlpha(200), StrokeColor: col},
		}
	}
	return &chart.BarChart{
		Title:      "Abwesenheitstrends nach Grund (Tage)",
		Width:      chartWidth,
		Height:     chartHeight,
		BarWidth:   2 * barWidth,
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		Bars:       bars,
		YAxis:      chart.YAxis{Range: &chart.ContinuousRange{Min: 0, Max: axisMaxValues(bars)}},
	}
}

// Weekdays builds the grouped days-per-weekday-and-reason bar chart. Each
// (weekday, reason) pair gets its own bar, labeled "Weekday\nReason", in
// weekday order.
func Weekdays(counts []absence.GroupCount) *chart.BarChart {
	return groupedBars("Abwesenheitstrends nach Wochentag und Grund", counts)
}

// Months builds the grouped days-per-month-and-reason bar chart in calendar
// order.
func Months(counts []absence.GroupCount) *chart.BarChart {
	return groupedBars("Abwesenheitstrends nach Monat und Grund", counts)
}

func groupedBars(title string, counts []absence.GroupCount) *chart.BarChart {
	if len(counts) == 0 {
		return Placeholder()
	}

	bars := make([]chart.Value, len(counts))
	for i, c := range counts {
		col := reasonColor(c.Reason)
		bars[i] = chart.Value{
			Value: float64(c.Days),
			Label: fmt.Sprintf("%s/%s", abbreviate(c.Group, 3), abbreviate(c.Reason, 5)),
			Style: chart.Style{FillColor: col.WithAlpha(200), StrokeColor: col},
		}
	}
	return &chart.BarChart{
		Title:      title,
		Width:      chartWidth,
		Height:     chartHeight,
		BarWidth:   barWidth,
		BarSpacing: 12,
		Background: chart.Style{Padding: chart.Box{Top: 40, Bottom: 20}},
		Bars:       bars,
		YAxis:      chart.YAxis{Range: &chart.ContinuousRange{Min: 0, Max: axisMaxValues(bars)}},
	}
}

// Durations builds the histogram of absence durations.
func Durations(counts []absence.DurationCount) *chart.BarChart {
	if len(counts) == 0 {
		return Placeholder()
	}

	bars := make([]chart.Value, len(counts))
	for i, c := range counts {
		bars[i] = chart.Value{
			Value: float64(c.Count),
			Label: durationLabel(c.Days),
			Style: chart.Style{FillColor: chart.ColorBlue.WithAlpha(200), StrokeColor: chart.ColorBlue},
		}
	}
	return &chart.BarChart{
		Title:      "Verteilung der Abwesenheitsdauer",
		Width:      chartWidth,
		Height:     chartHeight,
		BarWidth:   barWidth,
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		Bars:       bars,
		YAxis:      chart.YAxis{Range: &chart.ContinuousRange{Min: 0, Max: axisMaxValues(bars)}},
	}
}

func durationLabel(days int) string {
	if days == 1 {
		return "1 Tag"
	}
	return fmt.Sprintf("%d Tage", days)
}

// Statistics builds the monthly statistics line view: mean absences per day
// with markers, max and min dashed, and the ±1σ corridor as thin lines.
func Statistics(stats []absence.MonthStats) *chart.Chart {
	if len(stats) == 0 {
		return statisticsPlaceholder()
	}

	xs := make([]float64, len(stats))
	ticks := make([]chart.Tick, len(stats))
	mean := make([]float64, len(stats))
	maxs := make([]float64, len(stats))
	mins := make([]float64, len(stats))
	upper := make([]float64, len(stats))
	lower := make([]float64, len(stats))
	for i, s := range stats {
		xs[i] = float64(i)
		ticks[i] = chart.Tick{Value: float64(i), Label: s.Month}
		mean[i] = s.Mean.InexactFloat64()
		maxs[i] = float64(s.Max)
		mins[i] = float64(s.Min)
		upper[i] = mean[i] + s.Std
		lower[i] = mean[i] - s.Std
	}

	// A single month still needs two x values for go-chart to find a range.
	if len(xs) == 1 {
		xs = append(xs, 1)
		ticks = append(ticks, chart.Tick{Value: 1, Label: ""})
		mean = append(mean, mean[0])
		maxs = append(maxs, maxs[0])
		mins = append(mins, mins[0])
		upper = append(upper, upper[0])
		lower = append(lower, lower[0])
	}

	band := chart.Style{StrokeColor: chart.ColorBlue.WithAlpha(90), StrokeWidth: 1}
	c := &chart.Chart{
		Title:      "Statistische Analyse der Abwesenheiten pro Tag und Monat",
		Width:      chartWidth,
		Height:     chartHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 24}},
		XAxis:      chart.XAxis{Ticks: ticks},
		YAxis:      chart.YAxis{Name: "Anzahl Abwesenheiten pro Tag"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Maximum pro Tag",
				XValues: xs,
				YValues: maxs,
				Style:   chart.Style{StrokeColor: chart.ColorRed.WithAlpha(128), StrokeDashArray: []float64{5, 5}},
			},
			chart.ContinuousSeries{
				Name:    "Minimum pro Tag",
				XValues: xs,
				YValues: mins,
				Style:   chart.Style{StrokeColor: chart.ColorGreen.WithAlpha(128), StrokeDashArray: []float64{5, 5}},
			},
			chart.ContinuousSeries{Name: "+1 Standardabweichung", XValues: xs, YValues: upper, Style: band},
			chart.ContinuousSeries{Name: "-1 Standardabweichung", XValues: xs, YValues: lower, Style: band},
			chart.ContinuousSeries{
				Name:    "Durchschnittliche Abwesenheiten pro Tag",
				XValues: xs,
				YValues: mean,
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					StrokeWidth: 2,
					DotColor:    chart.ColorBlue,
					DotWidth:    4,
				},
			},
		},
	}
	c.Elements = []chart.Renderable{chart.Legend(c)}
	return c
}

func statisticsPlaceholder() *chart.Chart {
	return &chart.Chart{
		Title:  "Keine Daten verfügbar",
		Width:  chartWidth,
		Height: chartHeight,
		XAxis:  chart.XAxis{Ticks: []chart.Tick{{Value: 0, Label: ""}, {Value: 1, Label: ""}}},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: []float64{0, 1},
				YValues: []float64{0, 0},
				Style:   chart.Style{StrokeColor: chart.ColorAlternateGray},
			},
		},
		YAxis: chart.YAxis{Range: &chart.ContinuousRange{Min: 0, Max: 1}},
	}
}

// abbreviate cuts a label to n runes so grouped bar labels stay readable
// ("Mon/Krank", "Jan/Urlau").
func abbreviate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func axisMaxValues(bars []chart.Value) float64 {
	max := 1.0
	for _, b := range bars {
		if b.Value > max {
			max = b.Value
		}
	}
	// Headroom above the tallest bar.
	return max * 1.1
}
