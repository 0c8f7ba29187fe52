package main

import (
	"fmt"
	"os"

	"github.com/aretw0/modthree/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "modthree",
	Short: "modthree evaluates inputs with table-driven finite-state machines",
	Long: `modthree runs deterministic finite automata with outputs. The built-in "mod3"
machine computes the remainder of a binary number divided by three; other machines
can be loaded from YAML/JSON files or a Loam repository of machine documents.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	flags := rootCmd.PersistentFlags()
	flags.StringP("machine", "m", "", `Machine ID: a preset ("mod3", "mod3-strict") or a document ID in --dir (default "mod3")`)
	flags.StringP("file", "f", "", "YAML or JSON machine definition file")
	flags.String("dir", "", "Directory of machine documents")
	flags.String("backend", cli.BackendLoam, `How --dir is read: "loam" or "files"`)
	flags.Bool("debug", false, "Log every transition to stderr")
	flags.StringP("output", "o", cli.FormatText, `Output format: "text" or "json"`)
}

// optionsFromFlags collects the persistent flags. Cobra merges them into
// cmd.Flags() while parsing, so cmd must have been parsed already.
func optionsFromFlags(cmd *cobra.Command) (cli.Options, error) {
	var opts cli.Options
	flags := cmd.Flags()

	var err error
	if opts.Machine, err = flags.GetString("machine"); err != nil {
		return opts, err
	}
	if opts.File, err = flags.GetString("file"); err != nil {
		return opts, err
	}
	if opts.Dir, err = flags.GetString("dir"); err != nil {
		return opts, err
	}
	if opts.Backend, err = flags.GetString("backend"); err != nil {
		return opts, err
	}
	if opts.Debug, err = flags.GetBool("debug"); err != nil {
		return opts, err
	}
	if opts.Format, err = flags.GetString("output"); err != nil {
		return opts, err
	}
	return opts, nil
}
