package benchdata

import (
	"encoding/json"
	"fmt"
	"os"
)

// SuiteRawData carries the optional per-trial sequences backing a suite's
// reported averages. Either slice may be absent or empty.
type SuiteRawData struct {
	ProvingTimes []float64 `json:"proving_times,omitempty"`
	GasCosts     []float64 `json:"gas_costs,omitempty"`
}

// BenchmarkRecord is one parsed performance_data.json produced by a benchmark
// run. Every field is optional in the input; Load resolves absent fields to
// defaults so renderers never have to deal with nil maps or empty metadata.
type BenchmarkRecord struct {
	InstanceType string   `json:"instance_type"`
	CPUCores     *float64 `json:"cpu_cores,omitempty"`
	MemoryGB     *float64 `json:"memory_gb,omitempty"`
	Timestamp    string   `json:"timestamp"`
	// Per-suite averages. Keys are suite names ("groth16", "plonk", ...).
	ProvingTimes map[string]float64 `json:"proving_times"`
	// Parsed and retained, not rendered anywhere yet.
	VerificationTimes map[string]float64      `json:"verification_times"`
	GasCosts          map[string]float64      `json:"gas_costs"`
	RawData           map[string]SuiteRawData `json:"raw_data"`
}

// Defaults shown when metadata is absent from the input.
const (
	UnknownInstance = "Unknown"
	MetaNA          = "N/A"
)

// Load reads and parses a benchmark JSON file. Unknown keys are ignored.
// Failures are classified with ErrNotFound / ErrInvalidFormat so the caller
// can report them distinctly; anything else would be an I/O error surfaced
// as ErrNotFound since the path was not readable.
func Load(path string) (*BenchmarkRecord, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		Debugf("read %s: %v", path, err)
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	rec := &BenchmarkRecord{}
	if err := json.Unmarshal(b, rec); err != nil {
		Debugf("parse %s: %v", path, err)
		return nil, fmt.Errorf("%w: %s", ErrInvalidFormat, path)
	}
	rec.applyDefaults()
	Debugf("loaded %s: %d proving suites, %d gas suites", path, len(rec.ProvingTimes), len(rec.GasCosts))
	return rec, nil
}

func (r *BenchmarkRecord) applyDefaults() {
	if r.InstanceType == "" {
		r.InstanceType = UnknownInstance
	}
	if r.Timestamp == "" {
		r.Timestamp = MetaNA
	}
	if r.ProvingTimes == nil {
		r.ProvingTimes = map[string]float64{}
	}
	if r.VerificationTimes == nil {
		r.VerificationTimes = map[string]float64{}
	}
	if r.GasCosts == nil {
		r.GasCosts = map[string]float64{}
	}
	if r.RawData == nil {
		r.RawData = map[string]SuiteRawData{}
	}
}
