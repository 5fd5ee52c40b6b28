package domain

// Product is the slice of a commerce-platform product the sync and audit
// drivers care about. The platform owns the record; we read the title and
// the hardiness-zone metafield and conditionally rewrite the latter.
type Product struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	ExistingZones []string `json:"existingZones,omitempty"`
	MetafieldID   string   `json:"metafieldId,omitempty"`
}

// ProductPage is one page of a cursor-based product listing.
type ProductPage struct {
	Products    []Product `json:"products"`
	EndCursor   string    `json:"endCursor"`
	HasNextPage bool      `json:"hasNextPage"`
}

// Suggestion is a single predictive-search hit from the storefront
// suggestion endpoint.
type Suggestion struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Image string `json:"image,omitempty"`
	Price string `json:"price,omitempty"`
}

// SuggestResult groups product and collection suggestions for a query.
type SuggestResult struct {
	Query       string       `json:"query"`
	Products    []Suggestion `json:"products"`
	Collections []Suggestion `json:"collections"`
}
