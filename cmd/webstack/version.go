package main

import (
	"fmt"

	"github.com/bitwild/webstack/internal/version"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("webstack %s\n", version.Info())
	},
}
