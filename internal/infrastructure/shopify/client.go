// Package shopify implements the commerce admin API client: cursor-based
// product pagination and hardiness-zone metafield writes over the admin
// GraphQL endpoint.
package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/zonelens/backend/internal/domain"
)

// pageSize is fixed by the sync design: one 50-product page in flight at a time.
const pageSize = 50

// metafieldType is the platform field type for a list of zone code strings.
const metafieldType = "list.single_line_text_field"

const productsQuery = `
query ListProducts($first: Int!, $cursor: String, $namespace: String!, $key: String!) {
  products(first: $first, after: $cursor) {
    pageInfo { hasNextPage endCursor }
    edges {
      node {
        id
        title
        metafield(namespace: $namespace, key: $key) { id value }
      }
    }
  }
}`

const metafieldsSetMutation = `
mutation SetZoneMetafield($metafields: [MetafieldsSetInput!]!) {
  metafieldsSet(metafields: $metafields) {
    metafields { id }
    userErrors { field message }
  }
}`

// Client talks to the admin GraphQL API. Mutations are paced by the injected
// limiter so a sync pass never exceeds the platform's mutation ceiling.
type Client struct {
	httpClient *http.Client
	endpoint   string
	token      string
	namespace  string
	key        string
	limiter    *rate.Limiter
	logger     zerolog.Logger
}

// Config holds the client's connection settings.
type Config struct {
	StoreDomain string // e.g. "example.myshopify.com"
	AdminToken  string
	APIVersion  string // e.g. "2024-07"
	Namespace   string // metafield namespace, e.g. "custom"
	Key         string // metafield key, e.g. "hardiness_zones"
}

// NewClient creates an admin API client. The limiter is the write pacing
// policy; pass rate.NewLimiter(rate.Inf, 1) in tests.
func NewClient(cfg Config, limiter *rate.Limiter, logger zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		endpoint:   fmt.Sprintf("https://%s/admin/api/%s/graphql.json", cfg.StoreDomain, cfg.APIVersion),
		token:      cfg.AdminToken,
		namespace:  cfg.Namespace,
		key:        cfg.Key,
		limiter:    limiter,
		logger:     logger,
	}
}

// NewClientWithEndpoint is a test hook that targets an explicit endpoint URL.
func NewClientWithEndpoint(endpoint string, cfg Config, limiter *rate.Limiter, logger zerolog.Logger) *Client {
	c := NewClient(cfg, limiter, logger)
	c.endpoint = endpoint
	return c
}

// graphQLRequest is the admin API request envelope.
type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors,omitempty"`
}

// do posts one GraphQL request and decodes the data payload into out.
// A non-2xx status or an errors payload both surface as ErrAPIFailure.
func (c *Client) do(ctx context.Context, reqBody graphQLRequest, out any) error {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrAPIFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", domain.ErrAPIFailure, err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d: %s", domain.ErrAPIFailure, resp.StatusCode, string(body))
	}

	var envelope graphQLResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("%w: decoding response: %v", domain.ErrAPIFailure, err)
	}
	if len(envelope.Errors) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrAPIFailure, envelope.Errors[0].Message)
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("%w: decoding data: %v", domain.ErrAPIFailure, err)
	}
	return nil
}

// productsPayload mirrors the pagination query response.
type productsPayload struct {
	Products struct {
		PageInfo struct {
			HasNextPage bool   `json:"hasNextPage"`
			EndCursor   string `json:"endCursor"`
		} `json:"pageInfo"`
		Edges []struct {
			Node struct {
				ID        string `json:"id"`
				Title     string `json:"title"`
				Metafield *struct {
					ID    string `json:"id"`
					Value string `json:"value"`
				} `json:"metafield"`
			} `json:"node"`
		} `json:"edges"`
	} `json:"products"`
}

// ListProducts fetches one page of products. Transient failures are retried
// up to 3 times with linear backoff; a final failure is fatal to the caller.
func (c *Client) ListProducts(ctx context.Context, cursor string) (*domain.ProductPage, error) {
	variables := map[string]any{
		"first":     pageSize,
		"namespace": c.namespace,
		"key":       c.key,
	}
	if cursor != "" {
		variables["cursor"] = cursor
	}
	reqBody := graphQLRequest{Query: productsQuery, Variables: variables}

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		var payload productsPayload
		if err := c.do(ctx, reqBody, &payload); err != nil {
			c.logger.Warn().Err(err).Int("attempt", attempt).Msg("product page fetch failed")
			lastErr = err
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * 500 * time.Millisecond):
			}
			continue
		}

		page := &domain.ProductPage{
			EndCursor:   payload.Products.PageInfo.EndCursor,
			HasNextPage: payload.Products.PageInfo.HasNextPage,
		}
		for _, edge := range payload.Products.Edges {
			product := domain.Product{
				ID:    edge.Node.ID,
				Title: edge.Node.Title,
			}
			if edge.Node.Metafield != nil {
				product.MetafieldID = edge.Node.Metafield.ID
				product.ExistingZones = parseZoneValue(edge.Node.Metafield.Value)
			}
			page.Products = append(page.Products, product)
		}
		return page, nil
	}

	return nil, lastErr
}

// metafieldsSetPayload mirrors the mutation response.
type metafieldsSetPayload struct {
	MetafieldsSet struct {
		UserErrors []struct {
			Message string `json:"message"`
		} `json:"userErrors"`
	} `json:"metafieldsSet"`
}

// SetZoneMetafield writes the zone list to the product's metafield. The
// value is a JSON-encoded list of zone code strings. No retry here: a failed
// write is a recorded per-product outcome, not a fatal error.
func (c *Client) SetZoneMetafield(ctx context.Context, product domain.Product, zones []string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	value, err := json.Marshal(zones)
	if err != nil {
		return fmt.Errorf("encoding zone list: %w", err)
	}

	reqBody := graphQLRequest{
		Query: metafieldsSetMutation,
		Variables: map[string]any{
			"metafields": []map[string]any{{
				"ownerId":   product.ID,
				"namespace": c.namespace,
				"key":       c.key,
				"type":      metafieldType,
				"value":     string(value),
			}},
		},
	}

	var payload metafieldsSetPayload
	if err := c.do(ctx, reqBody, &payload); err != nil {
		return err
	}
	if errs := payload.MetafieldsSet.UserErrors; len(errs) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrAPIFailure, errs[0].Message)
	}
	return nil
}

// parseZoneValue decodes a stored metafield value. Values are JSON lists,
// but a bare string (hand-entered data) is tolerated as a single-element list.
func parseZoneValue(value string) []string {
	if value == "" {
		return nil
	}
	var zones []string
	if err := json.Unmarshal([]byte(value), &zones); err != nil {
		return []string{value}
	}
	return zones
}
