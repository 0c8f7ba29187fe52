package main

import (
	"github.com/aretw0/modthree/internal/cli"
	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Print the machine definition",
	Long: `Prints the machine as a markdown transition table (rendered on terminals),
or exports it as a YAML/JSON definition file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := optionsFromFlags(cmd)
		if err != nil {
			return err
		}
		format, err := cmd.Flags().GetString("format")
		if err != nil {
			return err
		}
		raw, err := cmd.Flags().GetBool("raw")
		if err != nil {
			return err
		}
		return cli.Describe(opts, format, raw, cli.StdStreams())
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)

	describeCmd.Flags().String("format", cli.DescribeMarkdown, `"markdown", "yaml" or "json"`)
	describeCmd.Flags().Bool("raw", false, "Print markdown without terminal rendering")
}
