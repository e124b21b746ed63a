// zkreport turns one benchmark JSON file into a markdown summary plus
// proving-time and gas-consumption charts, written next to the input.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lukasrosario/zk-snark-ecdsa-benchmarks/src/benchdata"
	"github.com/lukasrosario/zk-snark-ecdsa-benchmarks/src/report"
)

func usage() {
	fmt.Println("Usage: zkreport <performance_data.json>")
}

func main() {
	benchdata.SetLogLevel(os.Getenv("ZKREPORT_LOG"))
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}
	if err := run(flag.Arg(0)); err != nil {
		os.Exit(1)
	}
	fmt.Println("Plot generation completed!")
}

// run drives the pipeline: load, markdown, then one chart per non-empty
// metric. Errors are reported here so main only maps them to the exit code.
func run(path string) error {
	defer benchdata.TimeTrack(time.Now(), "report generation")

	rec, err := benchdata.Load(path)
	if err != nil {
		switch {
		case errors.Is(err, benchdata.ErrNotFound):
			fmt.Printf("Error: JSON file %s not found\n", path)
		case errors.Is(err, benchdata.ErrInvalidFormat):
			fmt.Printf("Error: Invalid JSON in %s\n", path)
		default:
			fmt.Printf("Error: %v\n", err)
		}
		return err
	}

	outputDir := filepath.Dir(path)
	if _, err := report.WriteMarkdownSummary(rec, outputDir); err != nil {
		fmt.Printf("Error: %v\n", err)
		return err
	}
	if err := report.WriteCharts(rec, outputDir); err != nil {
		fmt.Printf("Error: %v\n", err)
		return err
	}
	return nil
}
