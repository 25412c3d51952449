package core

import "time"

// Note is a single Markdown file read from the notes tree.
// It is read once per run and never mutated afterwards.
type Note struct {
	Path    string // Absolute path on disk
	RelPath string // Slash separated, relative to the notes root
	Content string
	Words   int // Whitespace separated tokens, as wc -w counts them
	Lines   int // Newline bytes, as wc -l counts them
	Size    int64
	ModTime time.Time
}
