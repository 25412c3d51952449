// Package notestats is the Composition Root for the notes statistics generator.
//
// It connects the aggregators (pkg/stats) with the filesystem scanner
// (pkg/adapters/fs) and the template renderer (pkg/report).
//
// Philosophy:
//
// A notes tree is just files. Every run rescans it from scratch, computes a fixed set
// of figures in independent passes and substitutes them into a template. Nothing is
// cached and nothing is persisted except the rendered report.
//
// Features:
//
//   - **grep semantics**: pattern counts are per line and non-overlapping, anchors bind to lines.
//   - **Two-phase render**: the report's own size is patched in after it is written.
//   - **Watch mode**: regenerate the report whenever a note changes.
//
// Usage:
//
//	p, err := notestats.New(
//		notestats.WithNotesDir("./notes"),
//		notestats.WithTemplate("./notes-template.html"),
//		notestats.WithOutput("./public/notes.html"),
//	)
//
//	rep, err := p.Generate(ctx)
package notestats
