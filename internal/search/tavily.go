// Package search wraps the Tavily web search API used by the enrichment
// stage for location context.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"listmate/internal/config"
)

// Searcher runs a web search and returns text results. The enrichment
// stage depends on this interface, not the Tavily client, so tests can
// substitute canned results.
type Searcher interface {
	Search(ctx context.Context, query string) ([]Result, error)
	IsEnabled() bool
}

// Result is one search hit.
type Result struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

// TavilyClient calls the Tavily search API over HTTP.
type TavilyClient struct {
	config     *config.SearchConfig
	httpClient *http.Client
}

var _ Searcher = (*TavilyClient)(nil)

// NewTavilyClient creates a client from the search configuration.
func NewTavilyClient(cfg *config.SearchConfig) *TavilyClient {
	return &TavilyClient{
		config: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

// IsEnabled returns whether the client is configured and ready
func (c *TavilyClient) IsEnabled() bool {
	return c.config.Enabled
}

type searchRequest struct {
	APIKey      string `json:"api_key"`
	Query       string `json:"query"`
	MaxResults  int    `json:"max_results,omitempty"`
	SearchDepth string `json:"search_depth,omitempty"`
}

type searchResponse struct {
	Query   string   `json:"query"`
	Results []Result `json:"results"`
}

// Search performs a web search request
func (c *TavilyClient) Search(ctx context.Context, query string) ([]Result, error) {
	if !c.config.Enabled {
		return nil, fmt.Errorf("search API is not enabled (missing API key)")
	}

	reqBody, err := json.Marshal(searchRequest{
		APIKey:      c.config.APIKey,
		Query:       query,
		MaxResults:  c.config.MaxResults,
		SearchDepth: c.config.SearchDepth,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/search", c.config.APIBase)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result searchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return result.Results, nil
}
