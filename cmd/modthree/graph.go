package main

import (
	"context"

	"github.com/aretw0/modthree/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [input]",
	Short: "Export the machine as a Mermaid diagram",
	Long: `Outputs a Mermaid flowchart (graph LR) of the machine. When an input is given,
the states it visits are highlighted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := optionsFromFlags(cmd)
		if err != nil {
			return err
		}
		var input *string
		if len(args) == 1 {
			input = &args[0]
		}
		return cli.Graph(context.Background(), opts, input, cli.StdStreams())
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
