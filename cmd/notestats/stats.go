package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/aretw0/notestats/pkg/core"
	"github.com/aretw0/notestats/pkg/report"
	"github.com/spf13/cobra"
)

var statsFormat string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the statistics without rendering a template",
	Long: `Print every metric grouped by section (basic, content, markdown, tasks,
temporal, length) as JSON, YAML or CSV. Nothing is written to disk.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		p, err := newPipeline()
		if err != nil {
			fatal("Failed to initialize", err)
		}

		rep, err := p.Collect(commandContext(cmd))
		if errors.Is(err, core.ErrNoNotes) {
			fmt.Fprintln(os.Stderr, "No markdown files found")
			os.Exit(1)
		}
		if err != nil {
			fatal("Failed to collect statistics", err)
		}

		exporter, err := report.ExporterFor(statsFormat)
		if err != nil {
			fatal("Invalid format", err)
		}
		if err := exporter.Export(os.Stdout, rep.Sections()); err != nil {
			fatal("Error exporting statistics", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().StringVarP(&statsFormat, "format", "f", "json", "Output format: json, yaml or csv")
}
