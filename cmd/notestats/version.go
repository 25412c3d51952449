package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/notestats"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of notestats",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("notestats version %s\n", strings.TrimSpace(notestats.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
