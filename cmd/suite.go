package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ljoubert/kernbench/benchmark"
)

// suiteCmd runs every benchmark described in a YAML suite file, in order,
// stopping at the first failure.
var suiteCmd = &cobra.Command{
	Use:   "suite suite_file",
	Short: "Run every benchmark described in a YAML suite file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := benchmark.LoadSuite(args[0])
		if err != nil {
			return err
		}
		return benchmark.RunSuite(s, logFormat)
	},
}

func init() {
	rootCmd.AddCommand(suiteCmd)
}
