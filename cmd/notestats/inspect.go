package main

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/aretw0/introspection"
	"github.com/aretw0/notestats/pkg/core"
	"github.com/spf13/cobra"
)

var inspectGenerate bool

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Run one scan and print the pipeline state as JSON",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		p, err := newPipeline()
		if err != nil {
			fatal("Failed to initialize", err)
		}

		ctx := commandContext(cmd)
		if inspectGenerate {
			_, err = p.Generate(ctx)
		} else {
			_, err = p.Collect(ctx)
		}
		if err != nil && !errors.Is(err, core.ErrNoNotes) {
			fatal("Scan failed", err)
		}

		var component introspection.Introspectable = p
		state := map[string]any{
			"type":  p.ComponentType(),
			"state": component.State(),
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(state); err != nil {
			fatal("Error encoding JSON", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().BoolVar(&inspectGenerate, "generate", false, "Also render the report before inspecting")
}
