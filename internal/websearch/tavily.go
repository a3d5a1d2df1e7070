package websearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// #region tavily-client

const tavilyEndpoint = "https://api.tavily.com/search"

// mathDomains are preferred sources for mathematical content.
var mathDomains = []string{
	"khanacademy.org", "mathworld.wolfram.com", "brilliant.org",
	"math.stackexchange.com", "purplemath.com", "mathisfun.com",
}

// TavilyClient is the primary web-search backend.
type TavilyClient struct {
	apiKey   string
	endpoint string
	http     *http.Client
}

// NewTavilyClient creates a Tavily API client.
func NewTavilyClient(apiKey string, timeout time.Duration) *TavilyClient {
	return &TavilyClient{
		apiKey:   apiKey,
		endpoint: tavilyEndpoint,
		http:     &http.Client{Timeout: timeout},
	}
}

// #endregion tavily-client

// #region search

type tavilyRequest struct {
	APIKey         string   `json:"api_key"`
	Query          string   `json:"query"`
	SearchDepth    string   `json:"search_depth"`
	MaxResults     int      `json:"max_results"`
	IncludeDomains []string `json:"include_domains,omitempty"`
}

type tavilyResponse struct {
	Results []Result `json:"results"`
}

// Search queries the Tavily API.
func (c *TavilyClient) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	body, err := json.Marshal(tavilyRequest{
		APIKey:         c.apiKey,
		Query:          query,
		SearchDepth:    "advanced",
		MaxResults:     maxResults,
		IncludeDomains: mathDomains,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal tavily request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build tavily request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tavily search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tavily search: status %d", resp.StatusCode)
	}

	var parsed tavilyResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode tavily response: %w", err)
	}
	return parsed.Results, nil
}

// #endregion search
