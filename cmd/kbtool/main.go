package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"mathagent/internal/config"
	"mathagent/internal/kb"
	"mathagent/internal/provenance"
)

// Maintenance CLI for the knowledge base: seed the curated problem set,
// run ad-hoc similarity searches, and inspect the routing decision log.

// #region main

func main() {
	dbPath := flag.String("db", "", "path to math_knowledge.db")
	seed := flag.Bool("seed", false, "seed the curated problem set")
	query := flag.String("search", "", "run a similarity search")
	limit := flag.Int("limit", 5, "max search results")
	threshold := flag.Float64("threshold", 0.0, "minimum similarity score")
	decisions := flag.Int("decisions", 0, "show N most recent routing decisions")
	jsonOut := flag.Bool("json", false, "output as JSON instead of text")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: kbtool --db path/to/math_knowledge.db [--seed] [--search query] [--decisions N] [--json]")
		os.Exit(2)
	}

	cfg := config.DefaultConfig()
	ctx := context.Background()

	var embedder kb.Embedder
	if *seed || *query != "" {
		if cfg.GeminiAPIKey == "" {
			fmt.Fprintln(os.Stderr, "GEMINI_API_KEY is required for seeding and search")
			os.Exit(2)
		}
		var err error
		embedder, err = kb.NewGenAIEmbedder(ctx, cfg.GeminiAPIKey, cfg.EmbeddingModel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "create embedder: %v\n", err)
			os.Exit(1)
		}
	}

	store, err := kb.NewStore(*dbPath, embedder)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case *seed:
		err = runSeed(ctx, store)
	case *query != "":
		err = runSearch(ctx, store, *query, *limit, *threshold, *jsonOut)
	case *decisions > 0:
		err = runDecisions(store, *decisions, *jsonOut)
	default:
		err = runInfo(ctx, store)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region modes

func runSeed(ctx context.Context, store *kb.Store) error {
	problems := kb.SeedProblems()
	if err := store.Seed(ctx, problems); err != nil {
		return err
	}
	fmt.Printf("Seeded %d problems.\n", len(problems))
	return nil
}

func runSearch(ctx context.Context, store *kb.Store, query string, limit int, threshold float64, jsonOut bool) error {
	matches, err := store.Search(ctx, query, limit, threshold)
	if err != nil {
		return err
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(matches)
	}

	if len(matches) == 0 {
		fmt.Println("No matches.")
		return nil
	}
	for _, m := range matches {
		fmt.Printf("%.4f  %-10s  %s\n", m.Score, m.ID, m.Problem.Question)
	}
	return nil
}

func runDecisions(store *kb.Store, n int, jsonOut bool) error {
	entries, err := provenance.Recent(store.DB(), n)
	if err != nil {
		return err
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No decisions logged.")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("%s  %-14s  conf=%.2f  %s\n",
			e.CreatedAt.Format("2006-01-02 15:04:05"), e.Decision, e.Confidence, e.Question)
	}
	return nil
}

func runInfo(ctx context.Context, store *kb.Store) error {
	count, err := store.Count(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Problems: %d\n", count)
	return nil
}

// #endregion modes
