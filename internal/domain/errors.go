package domain

import "errors"

var (
	// ErrConfig is returned for invalid or incomplete configuration; always
	// fatal, checked before any network call is made
	ErrConfig = errors.New("invalid configuration")

	// ErrParse is returned when an embedded data asset is malformed at load
	ErrParse = errors.New("malformed data asset")

	// ErrAPIFailure is returned when an admin API request fails (non-2xx
	// status or a GraphQL error payload)
	ErrAPIFailure = errors.New("admin API request failed")

	// ErrSuggestFailure is returned when the storefront suggestion endpoint fails
	ErrSuggestFailure = errors.New("suggestion request failed")

	// ErrInvalidZIP is returned for input that is not a 5-digit numeric ZIP
	ErrInvalidZIP = errors.New("invalid ZIP code")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
