// Package storefront implements the client for the public predictive-search
// suggestion endpoint that backs the search drawer widget.
package storefront

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/zonelens/backend/internal/domain"
)

// suggestLimit is the fixed number of suggestions requested per resource type.
const suggestLimit = 8

// Client fetches predictive-search suggestions from the storefront.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a suggestion client for the given storefront base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
	}
}

// suggestResponse mirrors the platform's suggest.json shape.
type suggestResponse struct {
	Resources struct {
		Results struct {
			Products []struct {
				Title string `json:"title"`
				URL   string `json:"url"`
				Image string `json:"image"`
				Price string `json:"price"`
			} `json:"products"`
			Collections []struct {
				Title string `json:"title"`
				URL   string `json:"url"`
			} `json:"collections"`
		} `json:"results"`
	} `json:"resources"`
}

// Suggest queries the suggestion endpoint for products and collections.
func (c *Client) Suggest(ctx context.Context, query string) (*domain.SuggestResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("resources[type]", "product,collection")
	params.Set("resources[limit]", fmt.Sprintf("%d", suggestLimit))

	reqURL := fmt.Sprintf("%s/search/suggest.json?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSuggestFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d: %s", domain.ErrSuggestFailure, resp.StatusCode, string(body))
	}

	var payload suggestResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", domain.ErrSuggestFailure, err)
	}

	result := &domain.SuggestResult{Query: query}
	for _, p := range payload.Resources.Results.Products {
		result.Products = append(result.Products, domain.Suggestion{
			Title: p.Title,
			URL:   p.URL,
			Image: p.Image,
			Price: p.Price,
		})
	}
	for _, col := range payload.Resources.Results.Collections {
		result.Collections = append(result.Collections, domain.Suggestion{
			Title: col.Title,
			URL:   col.URL,
		})
	}
	return result, nil
}
