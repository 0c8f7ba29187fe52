package main

import (
	"context"

	"github.com/aretw0/modthree/internal/cli"
	"github.com/spf13/cobra"
)

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Run the reference mod-3 cases against the machine",
	Long: `Evaluates the reference binary mod-3 cases (110, 1010, 1011, ...) and reports
PASS/FAIL per case. Only machines with the mod-3 transition table ("mod3",
"mod3-strict" or an equivalent definition) are accepted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := optionsFromFlags(cmd)
		if err != nil {
			return err
		}
		showMetrics, err := cmd.Flags().GetBool("metrics")
		if err != nil {
			return err
		}
		return cli.SelfTest(context.Background(), opts, showMetrics, cli.StdStreams())
	},
}

func init() {
	rootCmd.AddCommand(selftestCmd)

	selftestCmd.Flags().Bool("metrics", false, "Print the evaluation counters after the run")
}
