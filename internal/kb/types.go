package kb

import (
	"context"
	"strings"
)

// #region problem

// Problem is one curated worked problem in the knowledge base.
type Problem struct {
	ID              string   `json:"id"`
	Question        string   `json:"question"`
	Topic           string   `json:"topic"`
	Difficulty      string   `json:"difficulty"`
	SolutionSteps   []string `json:"solution_steps"`
	FinalAnswer     string   `json:"final_answer"`
	Explanation     string   `json:"explanation"`
	RelatedConcepts []string `json:"related_concepts"`
}

// Content returns the text that gets embedded for similarity search.
func (p Problem) Content() string {
	return p.Question + " " + p.Explanation + " " + strings.Join(p.SolutionSteps, " ")
}

// #endregion problem

// #region match

// Match is one ranked similarity-search hit.
type Match struct {
	ID      string  `json:"id"`
	Score   float64 `json:"score"`
	Problem Problem `json:"problem"`
}

// #endregion match

// #region embedder

// Embedder turns text into a dense vector. Implemented by the Gemini
// embedding backend; tests inject deterministic fakes.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// #endregion embedder
