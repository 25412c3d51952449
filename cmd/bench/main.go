package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/notestats"
)

func main() {
	count := flag.Int("count", 1000, "Number of notes to generate")
	vaults := flag.Int("vaults", 10, "Number of top-level folders to spread the notes over")
	keep := flag.Bool("keep", false, "Keep the benchmark tree after running")
	flag.Parse()

	benchDir, err := os.MkdirTemp("", "notestats_bench_")
	if err != nil {
		panic(err)
	}
	defer func() {
		if !*keep {
			os.RemoveAll(benchDir)
		} else {
			fmt.Printf("Keeping bench dir: %s\n", benchDir)
		}
	}()

	fmt.Printf("Generating %d notes in %s...\n", *count, benchDir)
	startGen := time.Now()

	// Direct writes; mtimes are spread over the last 200 days so every month window gets hits.
	for i := 0; i < *count; i++ {
		dir := filepath.Join(benchDir, fmt.Sprintf("vault_%d", i%max(*vaults, 1)))
		if err := os.MkdirAll(dir, 0755); err != nil {
			panic(err)
		}
		content := fmt.Sprintf("# Benchmark Note %d\n\nLinks to [[note_%d]] and https://example.com/%d.\n\n"+
			"## Tasks\n- [x] write\n- [ ] review\n\n| a | b |\n|---|---|\n| %d | %d |\n\n> quoted\n---\n",
			i, i+1, i, i, i*i)
		filename := filepath.Join(dir, fmt.Sprintf("note_%d.md", i))
		if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
			panic(err)
		}
		mtime := time.Now().Add(-time.Duration(i%200) * 24 * time.Hour)
		if err := os.Chtimes(filename, mtime, mtime); err != nil {
			panic(err)
		}
	}
	fmt.Printf("Generation took: %v\n", time.Since(startGen))

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))
	pipeline, err := notestats.New(
		notestats.WithNotesDir(benchDir),
		notestats.WithOutput(filepath.Join(benchDir, "notes.html")),
		notestats.WithLogger(logger),
	)
	if err != nil {
		panic(err)
	}

	ctx := context.TODO()

	fmt.Println("Running Collect...")
	startCollect := time.Now()
	rep, err := pipeline.Collect(ctx)
	if err != nil {
		panic(err)
	}
	collect := time.Since(startCollect)
	fmt.Printf("Collect Result: %v (Notes: %d, Words: %d)\n", collect, rep.Basic.TotalNotes, rep.Basic.TotalWords)

	fmt.Println("Running Generate...")
	startGenerate := time.Now()
	if _, err := pipeline.Generate(ctx); err != nil {
		panic(err)
	}
	generate := time.Since(startGenerate)

	fmt.Printf("--------------------------------------------------\n")
	fmt.Printf("Benchmark Result (%d notes):\n", *count)
	fmt.Printf("  Collect:  %v\n", collect)
	fmt.Printf("  Generate: %v\n", generate)
	fmt.Printf("--------------------------------------------------\n")
}
