package report

import (
	"bytes"
	"fmt"
	"image/png"
	"math"
	"os"
	"path/filepath"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/lukasrosario/zk-snark-ecdsa-benchmarks/src/analysis"
	"github.com/lukasrosario/zk-snark-ecdsa-benchmarks/src/benchdata"
)

// Fixed chart output names, one per metric.
const (
	ProvingChartFileName = "proving_times.png"
	GasChartFileName     = "gas_consumption.png"
)

const (
	chartWidth  = 1200
	chartHeight = 700
)

// One fixed color per statistic, shared by both charts.
var (
	minColor = drawing.Color{R: 0x2c, G: 0xa0, B: 0x2c, A: 255}
	avgColor = drawing.Color{R: 0x1f, G: 0x77, B: 0xb4, A: 255}
	maxColor = drawing.Color{R: 0xd6, G: 0x27, B: 0x28, A: 255}
)

// pointStyle returns a style that renders markers only (no connecting line).
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		DotWidth:    6,
		DotColor:    col,
	}
}

// suiteAxis lays the suites out on a categorical x-axis at positions 1..n.
// The range is padded so a single suite still spans a non-zero domain.
func suiteAxis(suites []string) ([]float64, chart.XAxis) {
	n := len(suites)
	xs := make([]float64, n)
	ticks := make([]chart.Tick, 0, n+1)
	for i, s := range suites {
		x := float64(i + 1)
		xs[i] = x
		ticks = append(ticks, chart.Tick{Value: x, Label: s})
	}
	maxR := float64(n) + 0.5
	if n == 1 {
		maxR = 2.0
		ticks = append(ticks, chart.Tick{Value: 2, Label: ""})
	}
	return xs, chart.XAxis{
		Name:  "ZK-SNARK Suite",
		Ticks: ticks,
		Range: &chart.ContinuousRange{Min: 0.5, Max: maxR},
	}
}

// markerSeries builds one marker-only series, duplicating a lone point one
// slot to the right so the renderer always sees at least two values.
func markerSeries(name string, col drawing.Color, xs, ys []float64) chart.ContinuousSeries {
	if len(xs) == 1 {
		xs = []float64{xs[0], xs[0] + 1}
		ys = []float64{ys[0], ys[0]}
	}
	return chart.ContinuousSeries{Name: name, XValues: xs, YValues: ys, Style: pointStyle(col)}
}

// deviationLines builds the text panel content: the per-suite sample standard
// deviation, or the degenerate label when there was no spread to report.
func deviationLines(metric analysis.Metric, suites []string, stats []analysis.SuiteStats) []string {
	lines := make([]string, 0, len(suites)+1)
	lines = append(lines, "Standard Deviations:")
	for i, suite := range suites {
		st := stats[i]
		switch {
		case metric == analysis.MetricGasCost && !st.Degenerate():
			lines = append(lines, fmt.Sprintf("%s: σ=%.0f", suite, st.StdDev))
		case metric == analysis.MetricGasCost:
			lines = append(lines, fmt.Sprintf("%s: deterministic", suite))
		case !st.Degenerate():
			lines = append(lines, fmt.Sprintf("%s: σ=%.3fs", suite, st.StdDev))
		default:
			lines = append(lines, fmt.Sprintf("%s: single measurement", suite))
		}
	}
	return lines
}

// RenderStatsChart renders one metric's chart: per suite three markers
// (minimum green, average blue, maximum red), a series legend, and the
// deviation text panel. Returns the encoded PNG.
func RenderStatsChart(metric analysis.Metric, title, yAxisName string, suites []string, stats []analysis.SuiteStats) ([]byte, error) {
	if len(suites) == 0 {
		return nil, fmt.Errorf("render %q: no suites", title)
	}
	xs, xAxis := suiteAxis(suites)

	mins := make([]float64, len(stats))
	avgs := make([]float64, len(stats))
	maxs := make([]float64, len(stats))
	maxY := -math.MaxFloat64
	for i, st := range stats {
		mins[i] = st.Min
		avgs[i] = st.Average
		maxs[i] = st.Max
		for _, v := range []float64{st.Min, st.Average, st.Max} {
			if v > maxY {
				maxY = v
			}
		}
	}
	if maxY <= 0 {
		maxY = 1
	}
	_, yMax := niceAxisBounds(0, maxY)

	tickFormat := secondsTick
	if metric == analysis.MetricGasCost {
		tickFormat = scientificTick
	}

	ch := chart.Chart{
		Title:      title,
		Width:      chartWidth,
		Height:     chartHeight,
		Background: chart.Style{Padding: chart.Box{Top: 24, Left: 16, Right: 250, Bottom: 40}},
		XAxis:      xAxis,
		YAxis: chart.YAxis{
			Name:  yAxisName,
			Range: &chart.ContinuousRange{Min: 0, Max: yMax},
			Ticks: niceTicks(0, yMax, 6, tickFormat),
		},
		Series: []chart.Series{
			markerSeries("Minimum", minColor, xs, mins),
			markerSeries("Average", avgColor, xs, avgs),
			markerSeries("Maximum", maxColor, xs, maxs),
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render %q: %w", title, err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", title, err)
	}
	annotated := drawTextPanel(img, deviationLines(metric, suites, stats))
	var out bytes.Buffer
	if err := png.Encode(&out, annotated); err != nil {
		return nil, fmt.Errorf("encode %q: %w", title, err)
	}
	return out.Bytes(), nil
}

// WriteCharts renders and writes the proving-time and gas charts for the
// record into outputDir. A metric whose top-level mapping is empty is skipped
// without error; render and write failures propagate.
func WriteCharts(rec *benchdata.BenchmarkRecord, outputDir string) error {
	if len(rec.ProvingTimes) > 0 {
		suites, stats := analysis.MetricStats(analysis.MetricProvingTime, rec.ProvingTimes, rec.RawData)
		title := fmt.Sprintf("ZK-SNARK Proving Times - %s", rec.InstanceType)
		b, err := RenderStatsChart(analysis.MetricProvingTime, title, "Proving Time (seconds)", suites, stats)
		if err != nil {
			return err
		}
		path := filepath.Join(outputDir, ProvingChartFileName)
		if err := os.WriteFile(path, b, 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Printf("Generated %s\n", ProvingChartFileName)
	} else {
		benchdata.Debugf("no proving times in record; skipping %s", ProvingChartFileName)
	}

	if len(rec.GasCosts) > 0 {
		suites, stats := analysis.MetricStats(analysis.MetricGasCost, rec.GasCosts, rec.RawData)
		title := fmt.Sprintf("ZK-SNARK Gas Consumption - %s", rec.InstanceType)
		b, err := RenderStatsChart(analysis.MetricGasCost, title, "Gas Consumption", suites, stats)
		if err != nil {
			return err
		}
		path := filepath.Join(outputDir, GasChartFileName)
		if err := os.WriteFile(path, b, 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Printf("Generated %s\n", GasChartFileName)
	} else {
		benchdata.Debugf("no gas costs in record; skipping %s", GasChartFileName)
	}
	return nil
}
