// Package client provides an HTTP client for the storefront recommendations API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Product represents a recommended product.
type Product struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	Category   string    `json:"category"`
	Material   string    `json:"material"`
	Price      float64   `json:"price"`
	IsFeatured bool      `json:"is_featured"`
	Images     []string  `json:"images,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ProductsResponse represents the response for product lists.
type ProductsResponse struct {
	Data     []Product `json:"data"`
	Metadata struct{}  `json:"metadata"`
}

// UpdateResult summarises a similarity recomputation run.
type UpdateResult struct {
	RunID              string `json:"run_id"`
	CollaborativeEdges int    `json:"collaborative_edges"`
	ContentEdges       int    `json:"content_edges"`
}

// BehaviorEvent is a recorded shopper interaction.
type BehaviorEvent struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id,omitempty"`
	ProductID    string    `json:"product_id"`
	BehaviorType string    `json:"behavior_type"`
	CreatedAt    time.Time `json:"created_at"`
}

// Client is an HTTP client for the storefront recommendations API.
type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
}

// NewClient creates a new API client. An empty token makes anonymous requests.
func NewClient(baseURL, apiToken string) *Client {
	return &Client{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		apiToken: apiToken,
		httpClient: &http.Client{
			// Recomputation can take a while on a large catalog.
			Timeout: 5 * time.Minute,
		},
	}
}

func (c *Client) doRequest(ctx context.Context, method, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	return resp, nil
}

func (c *Client) handleResponse(resp *http.Response, result interface{}) error {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

// GetRecommendations retrieves recommendations for the authenticated shopper, if any,
// and the given product, if any.
func (c *Client) GetRecommendations(ctx context.Context, productID string, limit int) ([]Product, error) {
	params := url.Values{}
	if productID != "" {
		params.Set("product_id", productID)
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	path := "/v1/recommendations"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	resp, err := c.doRequest(ctx, http.MethodGet, path)
	if err != nil {
		return nil, err
	}

	var result ProductsResponse
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, err
	}

	return result.Data, nil
}

// RecordBehavior records an interaction of the authenticated shopper with a product.
func (c *Client) RecordBehavior(ctx context.Context, productID, behaviorType string) (*BehaviorEvent, error) {
	path := fmt.Sprintf("/v1/products/%s/behaviors/%s", url.PathEscape(productID), url.PathEscape(behaviorType))
	resp, err := c.doRequest(ctx, http.MethodPost, path)
	if err != nil {
		return nil, err
	}

	var event BehaviorEvent
	if err := c.handleResponse(resp, &event); err != nil {
		return nil, err
	}

	return &event, nil
}

// UpdateRecommendations triggers a recomputation of the product similarity table.
// Requires an admin credential.
func (c *Client) UpdateRecommendations(ctx context.Context) (*UpdateResult, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/recommendations/update")
	if err != nil {
		return nil, err
	}

	var result UpdateResult
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
