// Package config defines the generator configuration and how it is loaded.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Config contains process configuration.
type Config struct {
	// NotesDir is the root of the notes tree.
	NotesDir string `koanf:"notes_dir"`

	// TemplatePath is the report template; empty selects the built-in one.
	TemplatePath string `koanf:"template_path"`

	// OutputPath is where the rendered report is written.
	OutputPath string `koanf:"output_path"`

	// Extensions selects which files are notes, e.g. [".md"].
	Extensions []string `koanf:"extensions"`

	// Exclude lists doublestar globs, relative to NotesDir, that are skipped.
	Exclude []string `koanf:"exclude"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Debounce is the quiet period watch mode waits for before regenerating.
	Debounce time.Duration `koanf:"debounce"`
}

// New returns a Config holding the defaults.
func New() *Config {
	return &Config{
		NotesDir:   ".",
		OutputPath: "notes.html",
		Extensions: []string{".md"},
		LogLevel:   "info",
		Debounce:   500 * time.Millisecond,
	}
}

// Validate checks the invariants the pipeline relies on.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.NotesDir) == "" {
		return fmt.Errorf("%w: notes_dir must not be empty", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.OutputPath) == "" {
		return fmt.Errorf("%w: output_path must not be empty", ErrInvalidConfig)
	}
	if len(c.Extensions) == 0 {
		return fmt.Errorf("%w: extensions must not be empty", ErrInvalidConfig)
	}
	for _, ext := range c.Extensions {
		if ext == "" {
			return fmt.Errorf("%w: extensions must not contain empty entries", ErrInvalidConfig)
		}
	}
	if c.Debounce < 0 {
		return fmt.Errorf("%w: debounce must not be negative", ErrInvalidConfig)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// ParseLevel parses a log level name.
// Accepts: debug, info, warn/warning, error (case-insensitive).
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s", level)
	}
}
