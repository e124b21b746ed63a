// Package analysis derives per-suite descriptive statistics from a parsed
// benchmark record. All functions are pure: they take the reported averages
// plus the optional raw per-trial sequences and return immutable results, so
// the renderers never share mutable state.
package analysis

import (
	"math"
	"sort"

	"github.com/samber/lo"

	"github.com/lukasrosario/zk-snark-ecdsa-benchmarks/src/benchdata"
)

// SuiteStats summarizes one suite for one metric. When no raw trials exist
// the stats degenerate to the reported average with zero deviation.
type SuiteStats struct {
	Min         float64
	Average     float64
	Max         float64
	StdDev      float64
	SampleCount int
}

// Degenerate reports whether the stats collapsed to a single value, either
// because no raw trials were recorded or because every trial was identical.
func (s SuiteStats) Degenerate() bool { return s.StdDev == 0 }

// ComputeSuiteStats builds SuiteStats from a metric's reported average and the
// raw per-trial sequence for that suite. Total over its inputs: an absent or
// empty sequence yields min = max = average and a zero deviation.
func ComputeSuiteStats(average float64, trials []float64) SuiteStats {
	if len(trials) == 0 {
		return SuiteStats{Min: average, Average: average, Max: average}
	}
	min, max := trials[0], trials[0]
	for _, v := range trials[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return SuiteStats{
		Min:         min,
		Average:     average,
		Max:         max,
		StdDev:      sampleStdDev(trials),
		SampleCount: len(trials),
	}
}

// sampleStdDev is the textbook sample standard deviation (n-1 denominator).
// Sequences shorter than two elements have no spread to estimate.
func sampleStdDev(xs []float64) float64 {
	n := len(xs)
	if n < 2 {
		return 0
	}
	var sum float64
	for _, v := range xs {
		sum += v
	}
	mean := sum / float64(n)
	var ss float64
	for _, v := range xs {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(n-1))
}

// SuiteNames returns the deduplicated, lexicographically sorted union of the
// suite names keyed in the given metric maps. Passing one map yields the
// chart ordering for that metric; passing both yields the markdown ordering.
func SuiteNames(metrics ...map[string]float64) []string {
	var names []string
	for _, m := range metrics {
		names = append(names, lo.Keys(m)...)
	}
	names = lo.Uniq(names)
	sort.Strings(names)
	return names
}

// Metric selects which raw-data sequence backs a suite's averages.
type Metric int

const (
	MetricProvingTime Metric = iota
	MetricGasCost
)

func (m Metric) trials(rd benchdata.SuiteRawData) []float64 {
	if m == MetricGasCost {
		return rd.GasCosts
	}
	return rd.ProvingTimes
}

// MetricStats derives the per-suite stats for one metric of a record. The
// returned slices are index-aligned with the sorted suite names; raw_data
// only refines min/max/stddev and never adds or removes a suite.
func MetricStats(m Metric, averages map[string]float64, raw map[string]benchdata.SuiteRawData) ([]string, []SuiteStats) {
	suites := SuiteNames(averages)
	stats := make([]SuiteStats, len(suites))
	for i, suite := range suites {
		stats[i] = ComputeSuiteStats(averages[suite], m.trials(raw[suite]))
	}
	return suites, stats
}
