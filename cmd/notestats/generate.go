package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/aretw0/notestats/pkg/core"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Scan the notes and render the report",
	Args:  cobra.NoArgs,
	Run:   runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) {
	p, err := newPipeline()
	if err != nil {
		fatal("Failed to initialize", err)
	}

	rep, err := p.Generate(commandContext(cmd))
	if errors.Is(err, core.ErrNoNotes) {
		fmt.Fprintln(os.Stderr, "No markdown files found")
		os.Exit(1)
	}
	if err != nil {
		fatal("Failed to generate report", err)
	}

	fmt.Printf("Report written to %s (%d notes, %d words)\n", cfg.OutputPath, rep.Basic.TotalNotes, rep.Basic.TotalWords)
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
