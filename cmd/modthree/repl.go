package main

import (
	"context"

	"github.com/aretw0/modthree/internal/cli"
	"github.com/spf13/cobra"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Evaluate lines interactively",
	Long:  `Reads one input per line and prints its result until EOF, "exit" or "quit".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := optionsFromFlags(cmd)
		if err != nil {
			return err
		}
		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()
		return cli.Repl(ctx, opts, cli.StdStreams())
	},
}

func init() {
	rootCmd.AddCommand(replCmd)

	// Make 'repl' the default if no command is provided
	rootCmd.RunE = replCmd.RunE
}
