package main

import (
	"context"

	"github.com/aretw0/modthree/internal/cli"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval [input...]",
	Short: "Evaluate inputs and print their results",
	Long: `Evaluates each argument with the selected machine and prints "Result: <n>".
Without arguments, one input per line is read from stdin.`,
	Example: `  modthree eval 1010 1011
  printf '110\n1111\n' | modthree eval -o json
  modthree eval --machine mod3-strict ""`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := optionsFromFlags(cmd)
		if err != nil {
			return err
		}
		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()
		return cli.Eval(ctx, opts, args, cli.StdStreams())
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
