package benchmark

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config defines the benchmark parameters passed from CLI
type Config struct {
	Kernels    []KernelConfig // routines to bracket, measured per trial in order
	Min        int            // inclusive lower bound of generated values
	Max        int            // inclusive upper bound of generated values
	ArraySize  int            // length of the random input array
	Trials     int            // number of measured loops
	Seed       int64          // RNG seed for deterministic input generation
	OutputPath string         // report destination, empty to skip the file
	LogFormat  string         // "json" or "console", default is "console"
}

// Validate rejects parameter combinations the measurement loop cannot
// run with.
func (cfg Config) Validate() error {
	if len(cfg.Kernels) == 0 {
		return ErrNoKernels
	}
	if cfg.Min > cfg.Max {
		return fmt.Errorf("%w: min=%d max=%d", ErrInvalidRange, cfg.Min, cfg.Max)
	}
	if cfg.ArraySize <= 0 {
		return fmt.Errorf("%w: got %d", ErrNonPositiveSize, cfg.ArraySize)
	}
	if cfg.Trials <= 0 {
		return fmt.Errorf("%w: got %d", ErrNonPositiveTrials, cfg.Trials)
	}
	return nil
}

// Run orchestrates the full benchmark lifecycle: validation, per-trial
// input generation, probe bracketing of every kernel and report writing.
// Each kernel sees its own copy of the trial input, so in-place kernels
// do not disturb the comparison.
func Run(cfg Config) (Report, error) {
	setupLog(cfg)

	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}

	kernels := make([]Kernel, len(cfg.Kernels))
	for i, kc := range cfg.Kernels {
		k, err := NewKernel(kc)
		if err != nil {
			return Report{}, err
		}
		kernels[i] = k
	}

	source := DefaultCycleSource()
	initialLog(cfg, kernels, source)

	probe := NewProbeWithSource(source)
	rng := rand.New(rand.NewSource(cfg.Seed))
	totals := make([]Totals, len(kernels))
	scratch := make([]int, cfg.ArraySize)

	for input := range TrialInputs(rng, cfg.Trials, cfg.ArraySize, cfg.Min, cfg.Max) {
		for i, k := range kernels {
			copy(scratch, input)

			probe.Start()
			k.Run(scratch)
			probe.Stop()

			totals[i].Add(probe, k.Ops(cfg.ArraySize))
		}
	}

	report := Report{Results: make([]Metrics, len(kernels))}
	for i, k := range kernels {
		m := totals[i].Average()
		m.Kernel = k.Name()
		report.Results[i] = m

		log.Info().
			Str("kernel", k.Name()).
			Float64("avg_cycles", m.Cycles).
			Float64("avg_seconds", m.Seconds).
			Float64("avg_ms", m.Millis).
			Float64("cpi", m.CPI).
			Float64("ipc", m.IPC).
			Msg("Kernel benchmark complete")
	}

	if cfg.OutputPath != "" {
		if err := report.Write(cfg.OutputPath); err != nil {
			return Report{}, err
		}
	}

	log.Info().Str("output", cfg.OutputPath).Int("trials", cfg.Trials).Msg("Benchmark complete")
	return report, nil
}

func setupLog(cfg Config) {
	if strings.ToLower(cfg.LogFormat) == "json" {
		zerolog.TimeFieldFormat = time.RFC3339Nano
		log.Logger = log.Output(os.Stdout)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"})
	}
}

func initialLog(cfg Config, kernels []Kernel, source CycleSource) {
	names := make([]string, len(kernels))
	for i, k := range kernels {
		names[i] = k.Name()
	}

	log.Info().
		Strs("kernels", names).
		Str("cycle_source", source.Name()).
		Int("min", cfg.Min).
		Int("max", cfg.Max).
		Int("array_size", cfg.ArraySize).
		Int("trials", cfg.Trials).
		Int64("seed", cfg.Seed).
		Str("output", cfg.OutputPath).
		Msg("Starting benchmark")
}
