package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/notestats"
	"github.com/aretw0/notestats/internal/config"
	"github.com/aretw0/notestats/internal/platform"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string

	notesDir     string
	templatePath string
	outputPath   string
	extensions   []string
	exclude      []string

	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notestats",
	Short: "Generate a statistics report for a tree of Markdown notes",
	Long: `notestats scans a directory of Markdown notes, counts words, links, tasks,
headings and edit activity, and renders the figures into an HTML template.

Running it without a subcommand is the same as "notestats generate".`,
	Args: cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		loaded, err := resolveConfig(cmd)
		if err != nil {
			fatal("Failed to load config", err)
		}
		cfg = loaded

		level, _ := config.ParseLevel(cfg.LogLevel) // validated by config.Load
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
	Run: runGenerate,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	flags.StringVarP(&configPath, "config", "c", "", "Config file (default: .notestats.yaml found upwards from the working directory)")
	flags.StringVarP(&notesDir, "notes", "n", "", "Root directory of the notes tree")
	flags.StringVarP(&templatePath, "template", "t", "", "HTML template (default: built-in)")
	flags.StringVarP(&outputPath, "output", "o", "", "Where the rendered report is written")
	flags.StringSliceVar(&extensions, "ext", nil, "Note file extensions (default .md)")
	flags.StringSliceVar(&exclude, "exclude", nil, "Doublestar globs, relative to the notes root, to skip")
}

// resolveConfig layers the config file, env vars and finally the flags that were set.
// The file is --config, else $NOTESTATS_CONFIG, else the first one found upwards from the CWD.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	path := configPath
	if path == "" && os.Getenv(config.EnvConfigPath) == "" {
		if wd, err := os.Getwd(); err == nil {
			if found, err := platform.FindConfig(wd); err == nil {
				path = found
			}
		}
	}

	c, err := config.Load(commandContext(cmd), path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("notes") {
		c.NotesDir = notesDir
	}
	if flags.Changed("template") {
		c.TemplatePath = templatePath
	}
	if flags.Changed("output") {
		c.OutputPath = outputPath
	}
	if flags.Changed("ext") {
		c.Extensions = extensions
	}
	if flags.Changed("exclude") {
		c.Exclude = exclude
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// newPipeline builds a pipeline from the resolved config.
func newPipeline() (*notestats.Pipeline, error) {
	return notestats.New(
		notestats.WithNotesDir(cfg.NotesDir),
		notestats.WithTemplate(cfg.TemplatePath),
		notestats.WithOutput(cfg.OutputPath),
		notestats.WithExtensions(cfg.Extensions...),
		notestats.WithExclude(cfg.Exclude...),
		notestats.WithLogger(slog.Default()),
	)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
