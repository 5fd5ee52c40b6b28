package domain

import (
	"context"
	"time"
)

// ProductCatalog defines the interface for the commerce platform's admin API.
// Listing is cursor-based; pass "" for the first page.
type ProductCatalog interface {
	ListProducts(ctx context.Context, cursor string) (*ProductPage, error)
	SetZoneMetafield(ctx context.Context, product Product, zones []string) error
}

// SuggestionSource defines the interface for the storefront's predictive
// search suggestion endpoint.
type SuggestionSource interface {
	Suggest(ctx context.Context, query string) (*SuggestResult, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
