package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate the report whenever a note changes",
	Long: `Render the report once, then watch the notes tree and render it again
after every burst of changes. Stops on Ctrl+C.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		p, err := newPipeline()
		if err != nil {
			fatal("Failed to initialize", err)
		}

		ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Printf("Watching %s (writing %s). Press Ctrl+C to stop.\n", cfg.NotesDir, cfg.OutputPath)
		if err := p.Watch(ctx, cfg.Debounce); err != nil {
			fatal("Watch failed", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
