package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ljoubert/kernbench/benchmark"
)

// accumulateCmd runs the add-then-multiply accumulator once over n
// iterations. Metrics go to the log; the report file is optional.
var accumulateCmd = &cobra.Command{
	Use:   "accumulate n [output_file]",
	Short: "Benchmark the add-then-multiply running accumulator",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseInt("n", args[0])
		if err != nil {
			return err
		}

		output := ""
		if len(args) == 2 {
			output = args[1]
		}

		cfg := benchmark.Config{
			Kernels:    []benchmark.KernelConfig{{Type: benchmark.KernelAccumulate}},
			Min:        0,
			Max:        0,
			ArraySize:  n,
			Trials:     1,
			Seed:       seed,
			OutputPath: output,
			LogFormat:  logFormat,
		}

		_, err = benchmark.Run(cfg)
		return err
	},
}

func init() {
	rootCmd.AddCommand(accumulateCmd)
}
