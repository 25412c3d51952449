package stats_test

import (
	"time"

	"github.com/aretw0/notestats/pkg/adapters/fs"
	"github.com/aretw0/notestats/pkg/core"
)

// corpusOf builds an in-memory corpus where each content string is one note.
func corpusOf(contents ...string) core.Corpus {
	notes := make([]core.Note, len(contents))
	for i, c := range contents {
		notes[i] = core.Note{
			RelPath: "note.md",
			Content: c,
			Words:   fs.CountWords(c),
			Lines:   fs.CountLines(c),
		}
	}
	return fs.NewSnapshot(notes, 0, 0)
}

// corpusWithTimes builds a corpus of empty notes with the given modification times.
func corpusWithTimes(times ...time.Time) core.Corpus {
	notes := make([]core.Note, len(times))
	for i, ts := range times {
		notes[i] = core.Note{ModTime: ts}
	}
	return fs.NewSnapshot(notes, 0, 0)
}

// corpusWithWords builds a corpus of notes with the given word counts.
func corpusWithWords(words ...int) core.Corpus {
	notes := make([]core.Note, len(words))
	for i, w := range words {
		notes[i] = core.Note{Words: w}
	}
	return fs.NewSnapshot(notes, 0, 0)
}
