package websearch

import (
	"context"
	"log"
	"strings"
)

// #region query-enhancement

var mathQueryKeywords = []string{
	"mathematics", "math", "algebra", "calculus", "geometry",
	"trigonometry", "statistics", "step by step", "solution",
}

// EnhanceQuery appends math search terms to queries that lack them.
func EnhanceQuery(query string) string {
	lower := strings.ToLower(query)
	for _, kw := range mathQueryKeywords {
		if strings.Contains(lower, kw) {
			return query
		}
	}
	return query + " mathematics step by step solution"
}

// #endregion query-enhancement

// #region math-filter

var mathIndicators = []string{
	"equation", "formula", "solve", "calculate", "derivative",
	"integral", "algebra", "geometry", "trigonometry", "statistics",
	"step", "solution", "answer", "mathematical", "math",
}

// isMathRelated reports whether content mentions any math indicator.
func isMathRelated(content string) bool {
	lower := strings.ToLower(content)
	for _, ind := range mathIndicators {
		if strings.Contains(lower, ind) {
			return true
		}
	}
	return false
}

// filterMathResults drops results whose content has no math indicators.
func filterMathResults(results []Result) []Result {
	filtered := make([]Result, 0, len(results))
	for _, r := range results {
		if isMathRelated(r.Content) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// #endregion math-filter

// #region chain

// Chain tries the primary backend first and falls back to the MCP backend on
// failure. Primary may be nil when no API key is configured.
type Chain struct {
	primary  Searcher
	fallback Searcher
}

// NewChain builds the try-primary-then-fallback search chain.
func NewChain(primary, fallback Searcher) *Chain {
	return &Chain{primary: primary, fallback: fallback}
}

// Search enhances the query, queries the primary backend, and filters the
// results to mathematical content. Primary errors route to the fallback;
// fallback results are returned unfiltered. A fallback error degrades to an
// empty result set rather than surfacing.
func (c *Chain) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	enhanced := EnhanceQuery(query)

	if c.primary != nil {
		results, err := c.primary.Search(ctx, enhanced, maxResults)
		if err == nil {
			return filterMathResults(results), nil
		}
		log.Printf("[WEBSEARCH] primary search failed, trying fallback: %v", err)
	}

	if c.fallback == nil {
		return nil, nil
	}
	// The fallback gets the raw query; enhancement is a primary-only tweak.
	results, err := c.fallback.Search(ctx, query, maxResults)
	if err != nil {
		log.Printf("[WEBSEARCH] fallback search failed: %v", err)
		return nil, nil
	}
	return results, nil
}

// #endregion chain

// #region combine

// CombineContent concatenates result snippets into one context string for
// the generative model.
func CombineContent(results []Result) string {
	parts := make([]string, 0, len(results))
	for _, r := range results {
		if r.Content != "" {
			parts = append(parts, r.Content)
		}
	}
	return strings.Join(parts, " ")
}

// #endregion combine
