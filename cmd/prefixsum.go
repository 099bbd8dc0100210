package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ljoubert/kernbench/benchmark"
)

// prefixsumCmd benchmarks the in-place inclusive scan. There is no
// algorithmic variant; runs are compared against each other across
// machines or build settings.
var prefixsumCmd = &cobra.Command{
	Use:   "prefixsum min max array_size number_of_loops output_file",
	Short: "Benchmark the in-place prefix sum",
	Args:  cobra.ExactArgs(5),
	RunE: func(cmd *cobra.Command, args []string) error {
		min, err := parseInt("min", args[0])
		if err != nil {
			return err
		}
		max, err := parseInt("max", args[1])
		if err != nil {
			return err
		}
		size, err := parseInt("array_size", args[2])
		if err != nil {
			return err
		}
		trials, err := parseInt("number_of_loops", args[3])
		if err != nil {
			return err
		}

		cfg := benchmark.Config{
			Kernels:    []benchmark.KernelConfig{{Type: benchmark.KernelPrefixSum}},
			Min:        min,
			Max:        max,
			ArraySize:  size,
			Trials:     trials,
			Seed:       seed,
			OutputPath: args[4],
			LogFormat:  logFormat,
		}

		_, err = benchmark.Run(cfg)
		return err
	},
}

func init() {
	rootCmd.AddCommand(prefixsumCmd)
}
