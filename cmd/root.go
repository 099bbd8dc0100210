package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	seed      int64
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "kernbench",
	Short: "Cycle-level benchmarks for small numeric kernels",
	Long: `kernbench times small numeric routines (polynomial evaluation,
prefix sums, a running accumulator) with the CPU cycle counter and a
monotonic clock, and writes trial-averaged cycle/second/CPI/IPC
statistics to a report file.`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 42, "Seed for deterministic input generation")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "Log format: 'json' or 'console'")
}
