package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bracketctl",
	Short: "Operator tools for the tournament engine",
	Long: `bracketctl previews brackets from a YAML roster without touching the
database, and applies schema migrations to the configured database.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "bracketctl: %s\n", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
