package report

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	iofs "io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/aretw0/notestats/pkg/adapters/fs"
	"github.com/aretw0/notestats/pkg/core"
	"github.com/aretw0/notestats/pkg/stats"
)

// DefaultTemplate is used when no template path is configured.
//
//go:embed template.html
var DefaultTemplate string

var reToken = regexp.MustCompile(`\{\{[A-Z0-9_]+\}\}`)

// Config holds the renderer paths.
type Config struct {
	TemplatePath string // Empty means DefaultTemplate
	OutputPath   string
	Logger       *slog.Logger // Optional
}

// Renderer substitutes report values into a template and writes the result.
type Renderer struct {
	config Config
}

// NewRenderer creates a Renderer.
func NewRenderer(config Config) *Renderer {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Renderer{config: config}
}

// OutputPath returns where the report is written.
func (r *Renderer) OutputPath() string {
	return r.config.OutputPath
}

// Render writes the report in two phases: the template with every statistic
// substituted, then Finalize to fill in the size of the written file.
func (r *Renderer) Render(ctx context.Context, rep *stats.Report) error {
	if r.config.OutputPath == "" {
		return fmt.Errorf("output path is not configured")
	}

	tmpl, err := r.loadTemplate()
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	out := Substitute(tmpl, Values(rep))

	if err := os.MkdirAll(filepath.Dir(r.config.OutputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := fs.WriteFileAtomic(r.config.OutputPath, []byte(out), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	r.config.Logger.Debug("report written", "path", r.config.OutputPath, "bytes", len(out))

	return r.Finalize(ctx)
}

// Finalize replaces {{FILE_SIZE}} in the written report with its size on disk.
// The size measured is that of the first-phase file, token included.
func (r *Renderer) Finalize(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	info, err := os.Stat(r.config.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to stat report: %w", err)
	}

	data, err := os.ReadFile(r.config.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to read report: %w", err)
	}

	patched := strings.ReplaceAll(string(data), Token(FileSize), stats.HumanSize(info.Size()))
	if err := fs.WriteFileAtomic(r.config.OutputPath, []byte(patched), info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to finalize report: %w", err)
	}

	if left := Unresolved(patched); len(left) > 0 {
		r.config.Logger.Warn("template has unknown placeholders", "placeholders", left)
	}

	return nil
}

func (r *Renderer) loadTemplate() (string, error) {
	if r.config.TemplatePath == "" {
		return DefaultTemplate, nil
	}

	data, err := os.ReadFile(r.config.TemplatePath)
	if errors.Is(err, iofs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", core.ErrTemplateMissing, r.config.TemplatePath)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read template: %w", err)
	}
	return string(data), nil
}

// Substitute replaces every {{NAME}} token in tmpl whose name is in values.
// Replacement is a single pass, so the order of values does not matter and
// substituted text is never rescanned.
func Substitute(tmpl string, values map[string]string) string {
	pairs := make([]string, 0, len(values)*2)
	for name, val := range values {
		pairs = append(pairs, Token(name), val)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// Unresolved returns the distinct placeholder names still present in s, sorted.
func Unresolved(s string) []string {
	seen := make(map[string]struct{})
	for _, tok := range reToken.FindAllString(s, -1) {
		seen[strings.Trim(tok, "{}")] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
