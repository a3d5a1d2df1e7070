package websearch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// #region fakes

type stubSearcher struct {
	results []Result
	err     error
	queries []string
}

func (s *stubSearcher) Search(_ context.Context, query string, _ int) ([]Result, error) {
	s.queries = append(s.queries, query)
	return s.results, s.err
}

// #endregion fakes

// #region query_tests

func TestEnhanceQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"plain", "what is 17 times 19", "what is 17 times 19 mathematics step by step solution"},
		{"already-math", "solve this algebra problem", "solve this algebra problem"},
		{"has-solution", "quadratic solution", "quadratic solution"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EnhanceQuery(tt.query); got != tt.want {
				t.Errorf("EnhanceQuery(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestFilterMathResults(t *testing.T) {
	in := []Result{
		{Title: "A", Content: "solve the equation step by step"},
		{Title: "B", Content: "celebrity gossip of the week"},
		{Title: "C", Content: "the integral of 2x is x squared"},
	}
	out := filterMathResults(in)
	if len(out) != 2 {
		t.Fatalf("expected 2 math results, got %d", len(out))
	}
	if out[0].Title != "A" || out[1].Title != "C" {
		t.Errorf("wrong results kept: %+v", out)
	}
}

func TestCombineContent(t *testing.T) {
	in := []Result{{Content: "first snippet"}, {Content: ""}, {Content: "second snippet"}}
	got := CombineContent(in)
	if got != "first snippet second snippet" {
		t.Errorf("CombineContent = %q", got)
	}
}

// #endregion query_tests

// #region chain_tests

func TestChain_PrimarySuccess(t *testing.T) {
	primary := &stubSearcher{results: []Result{{Title: "p", Content: "solve x"}}}
	fallback := &stubSearcher{results: []Result{{Title: "f", Content: "math"}}}
	chain := NewChain(primary, fallback)

	results, err := chain.Search(context.Background(), "what is 2 plus 2", 3)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].Title != "p" {
		t.Errorf("expected primary result, got %+v", results)
	}
	if len(fallback.queries) != 0 {
		t.Error("fallback should not be queried when primary succeeds")
	}
	if !strings.Contains(primary.queries[0], "step by step") {
		t.Errorf("query not enhanced: %q", primary.queries[0])
	}
}

func TestChain_FallbackOnPrimaryError(t *testing.T) {
	primary := &stubSearcher{err: errors.New("boom")}
	fallback := &stubSearcher{results: []Result{{Title: "f", Content: "anything"}}}
	chain := NewChain(primary, fallback)

	results, err := chain.Search(context.Background(), "solve x", 3)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].Title != "f" {
		t.Errorf("expected fallback result, got %+v", results)
	}
	if !strings.Contains(primary.queries[0], "step by step") {
		t.Errorf("primary query not enhanced: %q", primary.queries[0])
	}
	if fallback.queries[0] != "solve x" {
		t.Errorf("fallback must receive the raw query, got %q", fallback.queries[0])
	}
}

func TestChain_NilPrimaryUsesFallback(t *testing.T) {
	fallback := &stubSearcher{results: []Result{{Title: "f"}}}
	chain := NewChain(nil, fallback)

	results, err := chain.Search(context.Background(), "solve x", 3)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 {
		t.Errorf("expected fallback result, got %+v", results)
	}
}

func TestChain_AllBackendsFailReturnsEmpty(t *testing.T) {
	primary := &stubSearcher{err: errors.New("down")}
	fallback := &stubSearcher{err: errors.New("also down")}
	chain := NewChain(primary, fallback)

	results, err := chain.Search(context.Background(), "solve x", 3)
	if err != nil {
		t.Fatalf("backend failure must not surface: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected empty results, got %+v", results)
	}
}

// #endregion chain_tests

// #region mcp_tests

func TestMCPClient_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{"title":"T","url":"https://t","content":"solve","score":0.9}]}`))
	}))
	defer srv.Close()

	client := NewMCPClient(srv.URL, 5*time.Second)
	results, err := client.Search(context.Background(), "solve x", 3)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].Title != "T" || results[0].Score != 0.9 {
		t.Errorf("unexpected results: %+v", results)
	}
}

func TestMCPClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewMCPClient(srv.URL, 5*time.Second)
	if _, err := client.Search(context.Background(), "solve x", 3); err == nil {
		t.Fatal("expected error on server failure")
	}
}

// #endregion mcp_tests

// #region config_tests

func TestDefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MaxResults != 3 {
		t.Errorf("expected MaxResults=3, got %d", cfg.MaxResults)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", cfg.Timeout)
	}
}

// #endregion config_tests
