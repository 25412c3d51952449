package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumerator_Watch(t *testing.T) {
	root := t.TempDir()
	e, err := NewEnumerator(Config{Root: root})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	changes, err := e.Watch(ctx, 50*time.Millisecond)
	require.NoError(t, err)

	// Give the watcher goroutine a moment to enter its loop.
	time.Sleep(100 * time.Millisecond)

	notePath := filepath.Join(root, "fresh.md")
	require.NoError(t, os.WriteFile(filepath.Join(root, "ignored.html"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(notePath, []byte("first"), 0644))
	require.NoError(t, os.WriteFile(notePath, []byte("first second"), 0644))

	select {
	case batch := <-changes:
		assert.Equal(t, []string{notePath}, batch, "burst collapses into one batch of notes only")
	case <-ctx.Done():
		t.Fatal("Timed out waiting for change batch")
	}
}

func TestEnumerator_Watch_NewDirectory(t *testing.T) {
	root := t.TempDir()
	e, err := NewEnumerator(Config{Root: root})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	changes, err := e.Watch(ctx, 50*time.Millisecond)
	require.NoError(t, err)
	time.Sleep(100 * time.Millisecond)

	dir := filepath.Join(root, "vault")
	require.NoError(t, os.Mkdir(dir, 0755))

	select {
	case batch := <-changes:
		assert.Contains(t, batch, dir)
	case <-ctx.Done():
		t.Fatal("Timed out waiting for directory batch")
	}

	// Files inside the new directory are watched too.
	nested := filepath.Join(dir, "inner.md")
	require.NoError(t, os.WriteFile(nested, []byte("hi"), 0644))

	select {
	case batch := <-changes:
		assert.Contains(t, batch, nested)
	case <-ctx.Done():
		t.Fatal("Timed out waiting for nested note batch")
	}
}

func TestEnumerator_Watch_ClosesOnCancel(t *testing.T) {
	e, err := NewEnumerator(Config{Root: t.TempDir()})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	changes, err := e.Watch(ctx, 0)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-changes:
		assert.False(t, ok, "channel should be closed after cancel")
	case <-time.After(5 * time.Second):
		t.Fatal("watch channel not closed")
	}
}
