package kb

import (
	"context"
	"hash/fnv"
	"path/filepath"
	"strings"
	"testing"
)

// wordHashEmbedder is a deterministic bag-of-words embedder for tests.
type wordHashEmbedder struct{}

func (wordHashEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	vec := make([]float32, 32)
	for _, w := range strings.Fields(strings.ToLower(text)) {
		h := fnv.New32a()
		h.Write([]byte(w))
		vec[h.Sum32()%32]++
	}
	return vec, nil
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "kb.db"), wordHashEmbedder{})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_SeedAndCount(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Seed(ctx, SeedProblems()); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != len(SeedProblems()) {
		t.Errorf("expected %d problems, got %d", len(SeedProblems()), n)
	}

	// Seeding twice must upsert, not duplicate.
	if err := store.Seed(ctx, SeedProblems()); err != nil {
		t.Fatalf("second Seed: %v", err)
	}
	n, _ = store.Count(ctx)
	if n != len(SeedProblems()) {
		t.Errorf("seed is not idempotent: got %d problems", n)
	}
}

func TestStore_SearchRanksExactQuestionFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	if err := store.Seed(ctx, SeedProblems()); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	matches, err := store.Search(ctx, "Solve the equation: 2x + 5 = 13", 3, 0.1)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(matches) == 0 {
		t.Fatal("expected matches for a seeded question")
	}
	if matches[0].ID != "alg_001" {
		t.Errorf("expected alg_001 ranked first, got %s (score %.3f)", matches[0].ID, matches[0].Score)
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Score > matches[i-1].Score {
			t.Errorf("matches not in descending score order at %d", i)
		}
	}
	if matches[0].Problem.FinalAnswer != "x = 4" {
		t.Errorf("payload not round-tripped: %q", matches[0].Problem.FinalAnswer)
	}
}

func TestStore_SearchThresholdFilters(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	if err := store.Seed(ctx, SeedProblems()); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	matches, err := store.Search(ctx, "Solve the equation: 2x + 5 = 13", 10, 0.999)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	for _, m := range matches {
		if m.Score < 0.999 {
			t.Errorf("match %s below threshold: %.4f", m.ID, m.Score)
		}
	}
}

func TestStore_SearchLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	if err := store.Seed(ctx, SeedProblems()); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	matches, err := store.Search(ctx, "find the answer", 2, 0.0)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(matches) > 2 {
		t.Errorf("limit not applied: got %d matches", len(matches))
	}
}

func TestVectorEncoding_RoundTrip(t *testing.T) {
	in := []float32{0.25, -1.5, 3.0, 0}
	out := decodeVector(encodeVector(in))
	if len(out) != len(in) {
		t.Fatalf("length mismatch: %d vs %d", len(out), len(in))
	}
	for i := range in {
		if in[i] != out[i] {
			t.Errorf("element %d: %f != %f", i, in[i], out[i])
		}
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"zero-vector", []float32{0, 0}, []float32{1, 1}, 0},
		{"length-mismatch", []float32{1}, []float32{1, 2}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cosineSimilarity(tt.a, tt.b)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("cosineSimilarity = %.6f, want %.6f", got, tt.want)
			}
		})
	}
}
