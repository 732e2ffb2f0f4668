package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "splint",
	Short: "Splint is a runtime compatibility shim for drifted inference libraries",
	Long:  `Splint installs guard, fallback, retry and trust patches over a library's capability bindings so configs written for one version keep loading under another.`,
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
}
