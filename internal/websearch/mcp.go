package websearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// #region mcp-client

// MCPClient is the Model Context Protocol fallback backend. It speaks the
// same search shape as the primary over plain HTTP.
type MCPClient struct {
	baseURL string
	http    *http.Client
}

// NewMCPClient creates a client for the MCP server at baseURL.
func NewMCPClient(baseURL string, timeout time.Duration) *MCPClient {
	return &MCPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// #endregion mcp-client

// #region search

type mcpRequest struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

type mcpResponse struct {
	Results []Result `json:"results"`
}

// Search posts the query to the MCP server's /search endpoint.
func (c *MCPClient) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	body, err := json.Marshal(mcpRequest{Query: query, MaxResults: maxResults})
	if err != nil {
		return nil, fmt.Errorf("marshal mcp request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build mcp request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mcp search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("mcp search: status %d", resp.StatusCode)
	}

	var parsed mcpResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode mcp response: %w", err)
	}
	return parsed.Results, nil
}

// #endregion search
