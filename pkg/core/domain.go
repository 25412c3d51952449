// Package core holds the domain types shared by the scanner, the aggregators and the renderer.
package core

import (
	"regexp"
	"sort"
)

// MetricSet maps a metric name to its value.
// Every aggregator returns its own set; sets are never shared or merged in place.
type MetricSet map[string]any

// Keys returns the metric names in lexical order.
func (m MetricSet) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Merge returns a new set holding the entries of all given sets.
// Later sets win on duplicate names.
func Merge(sets ...MetricSet) MetricSet {
	out := make(MetricSet)
	for _, s := range sets {
		for k, v := range s {
			out[k] = v
		}
	}
	return out
}

// Corpus defines the read-only view of a scanned notes tree that aggregators consume.
// Keeping aggregators behind this contract lets them run against an in-memory
// fixture as easily as against the filesystem.
type Corpus interface {
	// Notes returns every note in enumeration order.
	Notes() []Note

	// Count returns the number of non-overlapping matches of re, evaluated line by line
	// across all notes.
	Count(re *regexp.Regexp) int

	// CountLiteral is Count for a plain substring.
	CountLiteral(s string) int

	// DiskUsage returns the apparent size in bytes of every regular file under the root.
	DiskUsage() int64

	// Vaults returns the number of top-level, non-hidden directories under the root.
	Vaults() int
}
