package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/modthree"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of modthree",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("modthree version %s\n", strings.TrimSpace(modthree.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
