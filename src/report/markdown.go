// Package report renders a parsed benchmark record into a markdown summary
// and per-metric PNG charts, written next to the input file.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lukasrosario/zk-snark-ecdsa-benchmarks/src/analysis"
	"github.com/lukasrosario/zk-snark-ecdsa-benchmarks/src/benchdata"
)

// SummaryFileName is the fixed markdown output name.
const SummaryFileName = "performance_summary.md"

// Grouping printer for gas integers ("210,000").
var gasPrinter = message.NewPrinter(language.English)

// FormatGas renders a gas value as a thousands-grouped integer, truncating
// any fractional part the JSON carried.
func FormatGas(v float64) string {
	return gasPrinter.Sprintf("%d", int64(v))
}

// formatMeta renders optional numeric metadata; whole values print without a
// decimal point ("4", not "4.0").
func formatMeta(v *float64) string {
	if v == nil {
		return benchdata.MetaNA
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}

// RenderMarkdown formats the record into the summary document. The metadata
// lines end with two spaces (markdown hard line breaks); the suite list is
// the sorted union of proving-time and gas-cost suite names, and a suite
// present in only one metric simply omits the other line.
func RenderMarkdown(rec *benchdata.BenchmarkRecord) string {
	var b strings.Builder
	b.WriteString("# ZK-SNARK ECDSA Benchmark Results\n\n")
	fmt.Fprintf(&b, "**Instance:** %s  \n", rec.InstanceType)
	fmt.Fprintf(&b, "**CPU Cores:** %s  \n", formatMeta(rec.CPUCores))
	fmt.Fprintf(&b, "**Memory:** %sGB  \n", formatMeta(rec.MemoryGB))
	fmt.Fprintf(&b, "**Date:** %s\n\n", rec.Timestamp)
	b.WriteString("## Performance Summary\n")
	for _, suite := range analysis.SuiteNames(rec.ProvingTimes, rec.GasCosts) {
		fmt.Fprintf(&b, "\n### %s\n\n", suite)
		if v, ok := rec.ProvingTimes[suite]; ok {
			fmt.Fprintf(&b, "- **Proving Time:** %.3fs\n", v)
		}
		if v, ok := rec.GasCosts[suite]; ok {
			fmt.Fprintf(&b, "- **Gas Cost:** %s gas\n", FormatGas(v))
		}
	}
	return b.String()
}

// WriteMarkdownSummary renders the record and overwrites
// <outputDir>/performance_summary.md, confirming the resolved path on stdout.
func WriteMarkdownSummary(rec *benchdata.BenchmarkRecord, outputDir string) (string, error) {
	path := filepath.Join(outputDir, SummaryFileName)
	if err := os.WriteFile(path, []byte(RenderMarkdown(rec)), 0644); err != nil {
		return "", fmt.Errorf("write markdown summary: %w", err)
	}
	fmt.Printf("Generated markdown summary: %s\n", path)
	return path, nil
}
