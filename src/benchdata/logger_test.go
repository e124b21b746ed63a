package benchdata

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestInfofNoDoubleFormattingWithPercent(t *testing.T) {
	// Swap the base logger to capture output
	var buf bytes.Buffer
	saved := baseLogger
	baseLogger = log.New(&buf, "", 0)
	defer func() { baseLogger = saved }()

	SetLogLevel("info")

	msg := "groth16 raw trials cover 100% of reported averages"
	Infof(msg)

	out := buf.String()
	if !strings.Contains(out, "100% of reported averages") {
		t.Fatalf("log output missing percent segment: %s", out)
	}
	if strings.Contains(out, "(MISSING)") {
		t.Fatalf("log output shows fmt artifact: %s", out)
	}
}

func TestLogLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	saved := baseLogger
	baseLogger = log.New(&buf, "", 0)
	defer func() {
		baseLogger = saved
		SetLogLevel("info")
	}()

	SetLogLevel("warn")
	Infof("hidden")
	Warnf("visible")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, "[WARN] visible") {
		t.Fatalf("warn line missing: %s", out)
	}

	// unknown strings leave the level untouched
	SetLogLevel("bogus")
	Warnf("still visible")
	if !strings.Contains(buf.String(), "still visible") {
		t.Fatalf("level changed unexpectedly: %s", buf.String())
	}
}
