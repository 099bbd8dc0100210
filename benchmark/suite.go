package benchmark

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v2"
)

// SuiteEntry describes one benchmark run inside a suite file.
type SuiteEntry struct {
	Kernel string `yaml:"kernel"` // "polynomial", "prefixsum" or "accumulate"
	Min    int    `yaml:"min"`
	Max    int    `yaml:"max"`
	Size   int    `yaml:"size"`
	Trials int    `yaml:"trials"`
	Alpha  int    `yaml:"alpha"`
	Seed   int64  `yaml:"seed"`
	Output string `yaml:"output"`
}

// Suite is a list of benchmark runs executed in order.
type Suite struct {
	Runs []SuiteEntry `yaml:"runs"`
}

// LoadSuite parses a YAML suite file.
func LoadSuite(path string) (Suite, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Suite{}, fmt.Errorf("failed to read suite file: %w", err)
	}

	var s Suite
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return Suite{}, fmt.Errorf("failed to parse suite file: %w", err)
	}
	return s, nil
}

// Config maps a suite entry onto a runner configuration. "polynomial"
// expands to the naive/Horner pair the way the polynomial command does.
func (e SuiteEntry) Config(logFormat string) (Config, error) {
	cfg := Config{
		Min:        e.Min,
		Max:        e.Max,
		ArraySize:  e.Size,
		Trials:     e.Trials,
		Seed:       e.Seed,
		OutputPath: e.Output,
		LogFormat:  logFormat,
	}

	switch e.Kernel {
	case "polynomial":
		cfg.Kernels = []KernelConfig{
			{Type: KernelNaivePolynomial, Alpha: e.Alpha},
			{Type: KernelHornerPolynomial, Alpha: e.Alpha},
		}
	case "prefixsum":
		cfg.Kernels = []KernelConfig{{Type: KernelPrefixSum}}
	case "accumulate":
		cfg.Kernels = []KernelConfig{{Type: KernelAccumulate}}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownKernel, e.Kernel)
	}
	return cfg, nil
}

// RunSuite executes every entry in order, stopping at the first failure.
func RunSuite(s Suite, logFormat string) error {
	for i, entry := range s.Runs {
		cfg, err := entry.Config(logFormat)
		if err != nil {
			return fmt.Errorf("suite entry %d: %w", i, err)
		}

		log.Info().Int("entry", i).Str("kernel", entry.Kernel).Msg("Running suite entry")
		if _, err := Run(cfg); err != nil {
			return fmt.Errorf("suite entry %d: %w", i, err)
		}
	}
	return nil
}
