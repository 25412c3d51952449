package fs

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/notestats/pkg/core"
)

// DefaultExtensions lists the file extensions treated as notes when none are configured.
var DefaultExtensions = []string{".md"}

// Config holds the configuration for the filesystem enumerator.
type Config struct {
	Root       string
	Extensions []string     // e.g. ".md"; matched case-sensitively against the file name
	Exclude    []string     // doublestar globs relative to Root (e.g. "archive/**")
	Logger     *slog.Logger // Optional
}

// Enumerator lists and loads the notes under a root directory.
type Enumerator struct {
	config Config

	mu         sync.RWMutex
	lastScan   *time.Time
	notesFound int
}

// NewEnumerator creates a new filesystem enumerator.
// Exclude patterns are validated up front so a typo fails fast instead of matching nothing.
func NewEnumerator(config Config) (*Enumerator, error) {
	if config.Root == "" {
		return nil, fmt.Errorf("notes root is not configured")
	}
	if len(config.Extensions) == 0 {
		config.Extensions = DefaultExtensions
	}
	for _, p := range config.Exclude {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid exclude pattern: %q", p)
		}
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Enumerator{config: config}, nil
}

// Root returns the directory being scanned.
func (e *Enumerator) Root() string {
	return e.config.Root
}

// List walks the root and returns the paths of all qualifying note files.
// Paths are returned in walk order (lexical within each directory).
// Unreadable subdirectories are logged and skipped; a missing root is an error.
func (e *Enumerator) List(ctx context.Context) ([]string, error) {
	if _, err := os.Stat(e.config.Root); err != nil {
		return nil, fmt.Errorf("failed to open notes root %s: %w", e.config.Root, err)
	}

	var paths []string
	err := filepath.WalkDir(e.config.Root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if path == e.config.Root {
				return err
			}
			e.config.Logger.Warn("skipping unreadable path", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := e.rel(path)
		if err != nil {
			return err
		}

		if d.IsDir() {
			if rel != "." && e.excluded(rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || !e.matchesExtension(d.Name()) || e.excluded(rel) {
			return nil
		}

		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk notes dir: %w", err)
	}

	return paths, nil
}

// Load enumerates the notes and reads each one exactly once into a Snapshot.
//
// A note whose content cannot be read is kept with zero words and lines so it still
// counts towards the total; a note that vanished before it could be stat'ed is dropped.
func (e *Enumerator) Load(ctx context.Context) (*Snapshot, error) {
	paths, err := e.List(ctx)
	if err != nil {
		return nil, err
	}

	notes := make([]core.Note, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(path)
		if err != nil {
			e.config.Logger.Warn("note disappeared during scan", "path", path, "error", err)
			continue
		}

		rel, _ := e.rel(path)
		note := core.Note{
			Path:    path,
			RelPath: rel,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		}

		data, err := os.ReadFile(path)
		if err != nil {
			e.config.Logger.Warn("failed to read note", "path", path, "error", err)
		} else {
			note.Content = string(data)
			note.Words = CountWords(note.Content)
			note.Lines = CountLines(note.Content)
		}

		notes = append(notes, note)
	}

	usage, err := e.diskUsage(ctx)
	if err != nil {
		return nil, err
	}

	e.config.Logger.Debug("scan complete", "root", e.config.Root, "notes", len(notes), "bytes", usage)
	e.recordScan(len(notes))

	return NewSnapshot(notes, usage, e.vaults()), nil
}

// diskUsage sums the apparent size of every regular file under the root,
// notes or not, the way `du -s` sees the tree.
func (e *Enumerator) diskUsage(ctx context.Context) (int64, error) {
	var total int64
	err := filepath.WalkDir(e.config.Root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if d != nil && d.IsDir() && path != e.config.Root {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		total += info.Size()
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to compute disk usage: %w", err)
	}
	return total, nil
}

// vaults counts the top-level, non-hidden directories under the root.
func (e *Enumerator) vaults() int {
	entries, err := os.ReadDir(e.config.Root)
	if err != nil {
		e.config.Logger.Warn("failed to list vaults", "root", e.config.Root, "error", err)
		return 0
	}
	n := 0
	for _, entry := range entries {
		if entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			n++
		}
	}
	return n
}

func (e *Enumerator) rel(path string) (string, error) {
	rel, err := filepath.Rel(e.config.Root, path)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

// matchesExtension reports whether name ends with one of the configured extensions.
func (e *Enumerator) matchesExtension(name string) bool {
	for _, ext := range e.config.Extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// excluded reports whether a slash separated relative path matches an exclude glob.
func (e *Enumerator) excluded(rel string) bool {
	for _, p := range e.config.Exclude {
		// Patterns were validated in NewEnumerator.
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}
	return false
}

// IsNote reports whether an absolute path would be picked up by List.
func (e *Enumerator) IsNote(path string) bool {
	rel, err := e.rel(path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return false
	}
	return e.matchesExtension(filepath.Base(path)) && !e.excluded(rel)
}

// CountWords counts whitespace separated tokens.
func CountWords(s string) int {
	return len(strings.Fields(s))
}

// CountLines counts newline bytes; a final line without a trailing newline is not counted.
func CountLines(s string) int {
	return strings.Count(s, "\n")
}
