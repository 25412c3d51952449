package fs

import (
	"regexp"
	"strings"

	"github.com/aretw0/notestats/pkg/core"
)

// Snapshot is the result of a single scan: the notes as read from disk plus the
// tree-level figures. It implements core.Corpus.
type Snapshot struct {
	notes     []core.Note
	lines     [][]string // notes[i] split on "\n", computed once
	diskUsage int64
	vaults    int
}

// NewSnapshot builds a Snapshot from already loaded notes.
func NewSnapshot(notes []core.Note, diskUsage int64, vaults int) *Snapshot {
	lines := make([][]string, len(notes))
	for i, n := range notes {
		// Split on "\n" only: a trailing "\r" stays part of the line, so "---\r"
		// does not satisfy "^---$".
		lines[i] = strings.Split(n.Content, "\n")
	}
	return &Snapshot{
		notes:     notes,
		lines:     lines,
		diskUsage: diskUsage,
		vaults:    vaults,
	}
}

// Notes implements core.Corpus.
func (s *Snapshot) Notes() []core.Note {
	return s.notes
}

// Count implements core.Corpus.
// Matches are found per line and never overlap; empty matches are not counted.
func (s *Snapshot) Count(re *regexp.Regexp) int {
	total := 0
	for _, lines := range s.lines {
		for _, line := range lines {
			for _, loc := range re.FindAllStringIndex(line, -1) {
				if loc[1] > loc[0] {
					total++
				}
			}
		}
	}
	return total
}

// CountLiteral implements core.Corpus.
func (s *Snapshot) CountLiteral(sub string) int {
	if sub == "" {
		return 0
	}
	total := 0
	for _, lines := range s.lines {
		for _, line := range lines {
			total += strings.Count(line, sub)
		}
	}
	return total
}

// DiskUsage implements core.Corpus.
func (s *Snapshot) DiskUsage() int64 {
	return s.diskUsage
}

// Vaults implements core.Corpus.
func (s *Snapshot) Vaults() int {
	return s.vaults
}

var _ core.Corpus = (*Snapshot)(nil)
