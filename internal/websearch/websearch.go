package websearch

import (
	"context"
	"os"
	"strconv"
	"time"
)

// #region types

// Result holds a single web search result.
type Result struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

// Searcher is the web-search capability. The primary API client and the MCP
// fallback both implement it.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]Result, error)
}

// Config holds web search parameters.
type Config struct {
	MaxResults int
	Timeout    time.Duration
}

// #endregion types

// #region config

// DefaultConfig returns default web search configuration. Reads env vars:
// WEB_SEARCH_MAX_RESULTS, WEB_SEARCH_TIMEOUT (seconds).
func DefaultConfig() Config {
	cfg := Config{
		MaxResults: 3,
		Timeout:    30 * time.Second,
	}
	if v := os.Getenv("WEB_SEARCH_MAX_RESULTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxResults = n
		}
	}
	if v := os.Getenv("WEB_SEARCH_TIMEOUT"); v != "" {
		if sec, err := strconv.Atoi(v); err == nil && sec > 0 {
			cfg.Timeout = time.Duration(sec) * time.Second
		}
	}
	return cfg
}

// #endregion config
