package benchmark

import (
	"fmt"
	"os"
	"strings"
)

// Report holds the averaged metrics of every kernel in a run, in the
// order they were benchmarked.
type Report struct {
	Results []Metrics
}

// reportRows fixes the line order and labels of the report file. Labels,
// including the '=' on the two ratio lines, are kept verbatim from the
// format earlier result files use, so reports stay diffable against them.
var reportRows = []struct {
	label string
	value func(m Metrics) float64
}{
	{"nbc:", func(m Metrics) float64 { return m.Cycles }},
	{"nbs:", func(m Metrics) float64 { return m.Seconds }},
	{"nbms:", func(m Metrics) float64 { return m.Millis }},
	{"CPI=", func(m Metrics) float64 { return m.CPI }},
	{"IPC=", func(m Metrics) float64 { return m.IPC }},
}

// columnSeparator splits per-kernel columns when a run compares two
// kernels on the same input.
const columnSeparator = "   |"

// Format renders the report as five labeled lines, one column per kernel.
func (r Report) Format() string {
	var b strings.Builder
	for _, row := range reportRows {
		b.WriteString(row.label)
		for i, m := range r.Results {
			if i > 0 {
				b.WriteString(columnSeparator)
			}
			fmt.Fprintf(&b, "%v", row.value(m))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Write stores the formatted report at path, failing loudly if the file
// cannot be created or written.
func (r Report) Write(path string) error {
	if path == "" {
		return ErrNoOutputPath
	}
	if err := os.WriteFile(path, []byte(r.Format()), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
