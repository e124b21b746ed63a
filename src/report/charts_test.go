package report

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/lukasrosario/zk-snark-ecdsa-benchmarks/src/analysis"
	"github.com/lukasrosario/zk-snark-ecdsa-benchmarks/src/benchdata"
)

func TestDeviationLines(t *testing.T) {
	suites := []string{"groth16", "plonk"}
	stats := []analysis.SuiteStats{
		{Min: 1.234, Average: 1.234, Max: 1.234},
		{Min: 1, Average: 2, Max: 3, StdDev: 1, SampleCount: 3},
	}
	got := deviationLines(analysis.MetricProvingTime, suites, stats)
	want := []string{"Standard Deviations:", "groth16: single measurement", "plonk: σ=1.000s"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("proving lines: %v", got)
	}

	gasStats := []analysis.SuiteStats{
		{Min: 210000, Average: 210000, Max: 210000},
		{Min: 89000, Average: 90000, Max: 91000, StdDev: 1000, SampleCount: 2},
	}
	got = deviationLines(analysis.MetricGasCost, suites, gasStats)
	want = []string{"Standard Deviations:", "groth16: deterministic", "plonk: σ=1000"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("gas lines: %v", got)
	}
}

func TestSuiteAxis(t *testing.T) {
	xs, axis := suiteAxis([]string{"groth16", "plonk"})
	if !reflect.DeepEqual(xs, []float64{1, 2}) {
		t.Fatalf("positions: %v", xs)
	}
	if axis.Range.GetMin() != 0.5 || axis.Range.GetMax() != 2.5 {
		t.Fatalf("range: [%v, %v]", axis.Range.GetMin(), axis.Range.GetMax())
	}
	if len(axis.Ticks) != 2 || axis.Ticks[0].Label != "groth16" {
		t.Fatalf("ticks: %v", axis.Ticks)
	}

	// single suite pads the domain so rendering still has width
	xs, axis = suiteAxis([]string{"groth16"})
	if len(xs) != 1 {
		t.Fatalf("single suite positions: %v", xs)
	}
	if axis.Range.GetMax() != 2.0 {
		t.Fatalf("single suite max: %v", axis.Range.GetMax())
	}
	if len(axis.Ticks) != 2 || axis.Ticks[1].Label != "" {
		t.Fatalf("single suite ticks: %v", axis.Ticks)
	}
}

func TestMarkerSeriesPadsSinglePoint(t *testing.T) {
	s := markerSeries("Average", avgColor, []float64{1}, []float64{2.5})
	if len(s.XValues) != 2 || len(s.YValues) != 2 {
		t.Fatalf("series not padded: %v %v", s.XValues, s.YValues)
	}
	if s.YValues[0] != s.YValues[1] {
		t.Fatalf("padded y mismatch: %v", s.YValues)
	}
}

func TestRenderStatsChartProducesPNG(t *testing.T) {
	suites := []string{"groth16", "plonk"}
	stats := []analysis.SuiteStats{
		{Min: 1.1, Average: 1.234, Max: 1.4, StdDev: 0.1, SampleCount: 5},
		{Min: 1, Average: 2, Max: 3, StdDev: 1, SampleCount: 3},
	}
	b, err := RenderStatsChart(analysis.MetricProvingTime, "ZK-SNARK Proving Times - c5.xlarge", "Proving Time (seconds)", suites, stats)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("output is not a decodable PNG: %v", err)
	}
	if img.Bounds().Dx() != chartWidth || img.Bounds().Dy() != chartHeight {
		t.Fatalf("unexpected dimensions: %v", img.Bounds())
	}
}

func TestRenderStatsChartSingleDegenerateSuite(t *testing.T) {
	stats := []analysis.SuiteStats{{Min: 1.234, Average: 1.234, Max: 1.234}}
	b, err := RenderStatsChart(analysis.MetricGasCost, "ZK-SNARK Gas Consumption - c5.xlarge", "Gas Consumption", []string{"groth16"}, stats)
	if err != nil {
		t.Fatalf("render degenerate: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(b)); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

func TestWriteChartsBothMetrics(t *testing.T) {
	dir := t.TempDir()
	rec := sampleRecord()
	rec.RawData = map[string]benchdata.SuiteRawData{
		"groth16": {ProvingTimes: []float64{1.1, 1.234, 1.4}},
	}
	if err := WriteCharts(rec, dir); err != nil {
		t.Fatalf("write charts: %v", err)
	}
	for _, name := range []string{ProvingChartFileName, GasChartFileName} {
		b, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("missing %s: %v", name, err)
		}
		if _, err := png.Decode(bytes.NewReader(b)); err != nil {
			t.Fatalf("%s not a PNG: %v", name, err)
		}
	}
}

func TestWriteChartsSkipsEmptyMetric(t *testing.T) {
	dir := t.TempDir()
	rec := sampleRecord()
	rec.ProvingTimes = map[string]float64{}
	if err := WriteCharts(rec, dir); err != nil {
		t.Fatalf("write charts: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ProvingChartFileName)); !os.IsNotExist(err) {
		t.Fatalf("proving chart should be skipped, stat err: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, GasChartFileName)); err != nil {
		t.Fatalf("gas chart missing: %v", err)
	}
}

func TestNiceTicksSpanAndFormat(t *testing.T) {
	ticks := niceTicks(0, 3.3, 6, secondsTick)
	if len(ticks) < 2 {
		t.Fatalf("too few ticks: %v", ticks)
	}
	if ticks[0].Value > 0 {
		t.Fatalf("ticks must start at or below 0: %v", ticks[0])
	}
	if last := ticks[len(ticks)-1]; last.Value < 3.3 {
		t.Fatalf("ticks must cover the max: %v", last)
	}
}

func TestScientificTick(t *testing.T) {
	if got := scientificTick(210000); got != "2.1e+05" {
		t.Fatalf("scientific: %q", got)
	}
	if got := scientificTick(0); got != "0" {
		t.Fatalf("zero: %q", got)
	}
}
