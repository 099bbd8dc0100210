package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ljoubert/kernbench/benchmark"
)

// polynomialCmd benchmarks naive evaluation against Horner's scheme on
// the same random inputs and writes a two-column report.
var polynomialCmd = &cobra.Command{
	Use:   "polynomial min max array_size number_of_loops alpha output_file",
	Short: "Benchmark naive polynomial evaluation against Horner's scheme",
	Args:  cobra.ExactArgs(6),
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
		alpha, err := parseInt("alpha", args[4])
		if err != nil {
			return err
		}

		cfg := benchmark.Config{
			Kernels: []benchmark.KernelConfig{
				{Type: benchmark.KernelNaivePolynomial, Alpha: alpha},
				{Type: benchmark.KernelHornerPolynomial, Alpha: alpha},
			},
			Min:        min,
			Max:        max,
			ArraySize:  size,
			Trials:     trials,
			Seed:       seed,
			OutputPath: args[5],
			LogFormat:  logFormat,
		}

		_, err = benchmark.Run(cfg)
		return err
	},
}

func init() {
	rootCmd.AddCommand(polynomialCmd)
}
