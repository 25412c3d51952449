package fs

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after the last change before a batch is emitted.
const DefaultDebounce = 500 * time.Millisecond

// Watch observes the notes tree and emits the sorted set of changed note paths once
// the tree has been quiet for delay. Bursts of writes (editors saving, syncs) collapse
// into a single batch. The channel is closed when ctx is done or the watcher fails.
func (e *Enumerator) Watch(ctx context.Context, delay time.Duration) (<-chan []string, error) {
	if delay <= 0 {
		delay = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := e.addRecursive(watcher, e.config.Root); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	out := make(chan []string, 1)
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(out)
		defer watcher.Close()
		return e.watchLoop(ctx, watcher, delay, out)
	}, lifecycle.WithErrorHandler(func(err error) {
		e.config.Logger.Error("watcher failed", "error", err)
	}))

	return out, nil
}

func (e *Enumerator) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, delay time.Duration, out chan<- []string) error {
	pending := make(map[string]struct{})

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			if !e.relevant(watcher, event) {
				continue
			}
			e.config.Logger.Debug("change detected", "path", event.Name, "op", event.Op.String())

			pending[event.Name] = struct{}{}
			if timer == nil {
				timer = time.NewTimer(delay)
			} else {
				timer.Reset(delay)
			}
			fire = timer.C

		case err, ok := <-watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			e.config.Logger.Error("fsnotify error", "error", err)

		case <-fire:
			fire = nil
			changed := make([]string, 0, len(pending))
			for p := range pending {
				changed = append(changed, p)
			}
			sort.Strings(changed)
			clear(pending)

			select {
			case out <- changed:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

// relevant decides whether an event can change the statistics.
// New directories are added to the watch set as a side effect.
func (e *Enumerator) relevant(watcher *fsnotify.Watcher, event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			rel, err := e.rel(event.Name)
			if err != nil || e.excluded(rel) {
				return false
			}
			if err := e.addRecursive(watcher, event.Name); err != nil {
				e.config.Logger.Warn("failed to watch new directory", "path", event.Name, "error", err)
			}
			// A directory moved into the tree may already hold notes.
			return true
		}
	}

	if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		if slices.Contains(watcher.WatchList(), event.Name) {
			return true
		}
	}

	return e.IsNote(event.Name)
}

// addRecursive adds dir and every non-excluded directory below it to the watcher.
func (e *Enumerator) addRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return fmt.Errorf("failed to watch %s: %w", path, err)
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if rel, err := e.rel(path); err == nil && rel != "." && e.excluded(rel) {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}
