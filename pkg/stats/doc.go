// Package stats holds the aggregators that turn a scanned notes tree into figures.
//
// Each aggregator is a pure function over a core.Corpus and returns its own typed
// result; nothing is shared between them, so they can run in any order. Collect
// runs all of them in sequence and bundles the results into a Report.
//
// Pattern based counts follow grep semantics: matches are found line by line,
// anchors bind to line boundaries and a line with three matches contributes three.
package stats
