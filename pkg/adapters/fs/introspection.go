package fs

import (
	"time"

	"github.com/aretw0/introspection"
)

// EnumeratorState exposes internal state for observability.
type EnumeratorState struct {
	Root       string     `json:"root"`
	Extensions []string   `json:"extensions"`
	Exclude    []string   `json:"exclude,omitempty"`
	NotesFound int        `json:"notes_found"`
	LastScan   *time.Time `json:"last_scan,omitempty"`
}

// State implements introspection.Introspectable.
func (e *Enumerator) State() any {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return EnumeratorState{
		Root:       e.config.Root,
		Extensions: e.config.Extensions,
		Exclude:    e.config.Exclude,
		NotesFound: e.notesFound,
		LastScan:   e.lastScan,
	}
}

// ComponentType implements introspection.Component.
func (e *Enumerator) ComponentType() string {
	return "enumerator"
}

var _ introspection.Introspectable = (*Enumerator)(nil)
var _ introspection.Component = (*Enumerator)(nil)

func (e *Enumerator) recordScan(found int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := time.Now()
	e.lastScan = &now
	e.notesFound = found
}
