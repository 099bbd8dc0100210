package benchmark

import (
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func polynomialConfig(output string) Config {
	return Config{
		Kernels: []KernelConfig{
			{Type: KernelNaivePolynomial, Alpha: 6},
			{Type: KernelHornerPolynomial, Alpha: 6},
		},
		Min:        1,
		Max:        30,
		ArraySize:  20,
		Trials:     10,
		Seed:       42,
		OutputPath: output,
	}
}

func TestRunPolynomialEndToEnd(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.txt")

	report, err := Run(polynomialConfig(out))
	require.NoError(t, err)
	require.Len(t, report.Results, 2)
	assert.Equal(t, string(KernelNaivePolynomial), report.Results[0].Kernel)
	assert.Equal(t, string(KernelHornerPolynomial), report.Results[1].Kernel)

	raw, err := os.ReadFile(out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	require.Len(t, lines, 5)

	labels := []string{"nbc:", "nbs:", "nbms:", "CPI=", "IPC="}
	for i, line := range lines {
		require.True(t, strings.HasPrefix(line, labels[i]), "line %d: %q", i, line)

		fields := strings.Split(strings.TrimPrefix(line, labels[i]), "   |")
		require.Len(t, fields, 2, "line %d: %q", i, line)

		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			require.NoError(t, err, "line %d field %q", i, f)
			assert.False(t, math.IsInf(v, 0) || math.IsNaN(v), "line %d field %q", i, f)
		}
	}
}

func TestRunSingleKernelReportHasOneColumn(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.txt")

	_, err := Run(Config{
		Kernels:    []KernelConfig{{Type: KernelPrefixSum}},
		Min:        0,
		Max:        1000,
		ArraySize:  500,
		Trials:     5,
		Seed:       1,
		OutputPath: out,
	})
	require.NoError(t, err)

	raw, err := os.ReadFile(out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	require.Len(t, lines, 5)
	for _, line := range lines {
		assert.NotContains(t, line, "|")
	}
}

func TestRunWithoutOutputPathSkipsReportFile(t *testing.T) {
	report, err := Run(Config{
		Kernels:   []KernelConfig{{Type: KernelAccumulate}},
		Min:       0,
		Max:       0,
		ArraySize: 1000,
		Trials:    1,
		Seed:      1,
	})
	require.NoError(t, err)
	require.Len(t, report.Results, 1)
	assert.Greater(t, report.Results[0].Seconds, 0.0)
}

func TestConfigValidate(t *testing.T) {
	base := polynomialConfig("out.txt")

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"min above max", func(c *Config) { c.Min = 31 }, ErrInvalidRange},
		{"zero size", func(c *Config) { c.ArraySize = 0 }, ErrNonPositiveSize},
		{"negative size", func(c *Config) { c.ArraySize = -4 }, ErrNonPositiveSize},
		{"zero trials", func(c *Config) { c.Trials = 0 }, ErrNonPositiveTrials},
		{"no kernels", func(c *Config) { c.Kernels = nil }, ErrNoKernels},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			_, err := Run(cfg)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRunRejectsUnknownKernel(t *testing.T) {
	cfg := polynomialConfig("out.txt")
	cfg.Kernels = []KernelConfig{{Type: "quicksort"}}

	_, err := Run(cfg)
	require.ErrorIs(t, err, ErrUnknownKernel)
}

func TestRunUnwritableOutputPath(t *testing.T) {
	cfg := polynomialConfig(filepath.Join(t.TempDir(), "no", "such", "dir", "out.txt"))

	_, err := Run(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write report")
}
