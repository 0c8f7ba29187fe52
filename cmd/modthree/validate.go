package main

import (
	"github.com/aretw0/modthree/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the machine for completeness",
	Long: `Crawls the machine from its initial state and reports missing transitions
and outputs on reachable states (errors) and unreachable states (warnings).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := optionsFromFlags(cmd)
		if err != nil {
			return err
		}
		return cli.Validate(opts, cli.StdStreams())
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
