package main

import (
	"github.com/spf13/cobra"
	"github.com/theoparis/luau/cmd"
	"os"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "luau [subcommand]",
	Short:        "tools for the shared type graph and its transaction log",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.BenchCmd)
	rootCmd.AddCommand(cmd.DumpCmd)
}
