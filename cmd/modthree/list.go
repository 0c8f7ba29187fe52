package main

import (
	"github.com/aretw0/modthree/internal/cli"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available machines",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := optionsFromFlags(cmd)
		if err != nil {
			return err
		}
		return cli.List(opts, cli.StdStreams())
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
