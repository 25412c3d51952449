package platform_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/notestats/internal/platform"
	"github.com/aretw0/notestats/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.April, 20, 12, 0, 0, 0, time.Local)

func setupNotes(t *testing.T, files map[string]string, mtime time.Time) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		require.NoError(t, os.Chtimes(path, mtime, mtime))
	}
	return root
}

func writeTemplate(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "template.html")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestPipeline_Generate(t *testing.T) {
	lastEdit := fixedNow.Add(-50 * time.Hour)
	root := setupNotes(t, map[string]string{
		"work/todo.md":  "# Todo\n- [x] ship\n- [ ] test\n- [ ] docs\n- [ ] review\n",
		"home/links.md": "See [[todo]] and https://example.com\n",
		"readme.md":     strings.Repeat("word ", 600),
	}, lastEdit)

	tmpl := writeTemplate(t, "notes={{TOTAL_NOTES}} vaults={{TOTAL_VAULTS}} tasks={{TASKS_COMPLETED}}/{{TOTAL_TASKS}} "+
		"bar=[{{TASK_PROGRESS_BAR}}] links={{INTERNAL_LINKS}} age={{DAYS_SINCE_LAST_EDIT}} "+
		"common={{MOST_COMMON_BRACKET}} longest={{LONGEST_BRACKET}} updated={{LAST_UPDATED}} size={{FILE_SIZE}}")
	out := filepath.Join(t.TempDir(), "site", "notes.html")

	p, err := platform.New(
		platform.WithNotesDir(root),
		platform.WithTemplate(tmpl),
		platform.WithOutput(out),
		platform.WithClock(func() time.Time { return fixedNow }),
	)
	require.NoError(t, err)

	rep, err := p.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, rep.Basic.TotalNotes)

	got, err := os.ReadFile(out)
	require.NoError(t, err)

	s := string(got)
	assert.Contains(t, s, "notes=3 vaults=2 tasks=1/4 ")
	assert.Contains(t, s, "bar=[=====---------------]")
	assert.Contains(t, s, "links=1 age=2 ")
	assert.Contains(t, s, "common=0-100 longest=500-1k ")
	assert.Contains(t, s, "updated=20/04/2025 ")
	assert.NotContains(t, s, "{{")

	state, ok := p.State().(platform.PipelineState)
	require.True(t, ok)
	assert.Equal(t, 1, state.Runs)
	assert.Empty(t, state.LastError)
	assert.Equal(t, out, state.OutputPath)
	assert.Equal(t, "pipeline", p.ComponentType())
}

func TestPipeline_Generate_EmptyTree(t *testing.T) {
	out := filepath.Join(t.TempDir(), "notes.html")
	p, err := platform.New(
		platform.WithNotesDir(t.TempDir()),
		platform.WithOutput(out),
	)
	require.NoError(t, err)

	_, err = p.Generate(context.Background())
	assert.ErrorIs(t, err, core.ErrNoNotes)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "no output is written for an empty tree")

	state := p.State().(platform.PipelineState)
	assert.Equal(t, core.ErrNoNotes.Error(), state.LastError)
}

func TestPipeline_Collect_Exclude(t *testing.T) {
	root := setupNotes(t, map[string]string{
		"keep.md":        "a b c",
		"archive/old.md": "x",
	}, fixedNow)

	p, err := platform.New(
		platform.WithNotesDir(root),
		platform.WithExclude("archive/**"),
		platform.WithClock(func() time.Time { return fixedNow }),
	)
	require.NoError(t, err)

	rep, err := p.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Basic.TotalNotes)
	assert.Equal(t, 3, rep.Basic.TotalWords)
}

func TestNew_Validation(t *testing.T) {
	_, err := platform.New()
	assert.Error(t, err, "notes dir is required")

	_, err = platform.New(platform.WithNotesDir(t.TempDir()), platform.WithClock(nil))
	assert.Error(t, err)
}

func TestPipeline_Watch(t *testing.T) {
	root := setupNotes(t, map[string]string{"first.md": "one"}, fixedNow)
	tmpl := writeTemplate(t, "notes={{TOTAL_NOTES}}")
	out := filepath.Join(t.TempDir(), "notes.html")

	p, err := platform.New(
		platform.WithNotesDir(root),
		platform.WithTemplate(tmpl),
		platform.WithOutput(out),
	)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- p.Watch(ctx, 50*time.Millisecond) }()

	readOut := func() string {
		data, _ := os.ReadFile(out)
		return string(data)
	}

	require.Eventually(t, func() bool { return readOut() == "notes=1" }, 5*time.Second, 20*time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(root, "second.md"), []byte("two"), 0644))

	require.Eventually(t, func() bool { return readOut() == "notes=2" }, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}
