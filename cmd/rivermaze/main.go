// Command rivermaze generates river-maze terrain: a height file and a
// drainage file for a random river network.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "rivermaze",
		Short:        "River-maze terrain generator",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(slopesCmd())
	return rootCmd
}
