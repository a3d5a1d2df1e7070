package agent

import (
	"context"
	"fmt"
	"regexp"

	"mathagent/internal/kb"
)

// #region knowledge-base

// KnowledgeBase is the similarity-search surface the router consults.
// Implemented by kb.Store; tests inject fakes.
type KnowledgeBase interface {
	Search(ctx context.Context, query string, limit int, threshold float64) ([]kb.Match, error)
}

const (
	kbSearchLimit     = 3
	kbScoreThreshold  = 0.7
	highConfidenceBar = 0.8
	moderateBar       = 0.5
	complexityBar     = 0.6
	webConfidence     = 0.7
)

// #endregion knowledge-base

// #region routing

// route decides between the knowledge base and web search. A strong match
// always wins; a moderate match wins only for simple questions.
func route(ctx context.Context, store KnowledgeBase, question string) (RoutingResult, error) {
	matches, err := store.Search(ctx, question, kbSearchLimit, kbScoreThreshold)
	if err != nil {
		return RoutingResult{}, fmt.Errorf("knowledge base search: %w", err)
	}

	if len(matches) > 0 && matches[0].Score > highConfidenceBar {
		return RoutingResult{
			Decision:   DecisionKnowledgeBase,
			Confidence: matches[0].Score,
			Reasoning:  "High confidence match found in knowledge base",
			Source:     "knowledge_base",
			Matches:    matches,
		}, nil
	}

	if len(matches) > 0 && matches[0].Score > moderateBar {
		if ComplexityScore(question) < complexityBar {
			return RoutingResult{
				Decision:   DecisionKnowledgeBase,
				Confidence: matches[0].Score,
				Reasoning:  "Moderate match in knowledge base for simple question",
				Source:     "knowledge_base",
				Matches:    matches,
			}, nil
		}
	}

	return RoutingResult{
		Decision:   DecisionWebSearch,
		Confidence: webConfidence,
		Reasoning:  "Question requires web search for comprehensive answer",
		Source:     "web_search",
	}, nil
}

// #endregion routing

// #region complexity

var complexityIndicators = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(prove|derive|show that|demonstrate)\b`),
	regexp.MustCompile(`(?i)\b(integral|derivative|limit|series|convergence)\b`),
	regexp.MustCompile(`(?i)\b(matrix|vector|eigenvalue|determinant)\b`),
	regexp.MustCompile(`(?i)\b(probability|distribution|hypothesis|statistical)\b`),
	regexp.MustCompile(`(?i)\b(optimization|constraint|lagrange|calculus of variations)\b`),
	regexp.MustCompile(`(?i)\b(complex|imaginary|real analysis|topology)\b`),
}

var mathConceptRe = regexp.MustCompile(`(?i)\b(equation|function|formula|theorem|lemma)\b`)

// ComplexityScore rates a question in [0,1]. Each indicator family present
// adds 0.2; named math concepts add 0.1 each up to 0.3.
func ComplexityScore(question string) float64 {
	score := 0.0
	for _, re := range complexityIndicators {
		if re.MatchString(question) {
			score += 0.2
		}
	}

	concepts := float64(len(mathConceptRe.FindAllString(question, -1))) * 0.1
	if concepts > 0.3 {
		concepts = 0.3
	}
	score += concepts

	if score > 1 {
		score = 1
	}
	return score
}

// #endregion complexity
