package main

import (
	"fmt"

	"github.com/aretw0/splint"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the splint version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("splint version %s\n", splint.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
