package domain

import (
	"fmt"
	"sort"
	"strings"
)

// MatchType identifies which matching tier produced a MatchResult.
type MatchType string

const (
	MatchExact     MatchType = "exact"
	MatchContains  MatchType = "contains"
	MatchPartial   MatchType = "partial"
	MatchBotanical MatchType = "botanical"
)

// MatchResult is the outcome of matching a product title against the plant
// database. Ephemeral; never persisted.
type MatchResult struct {
	Zones       []string  `json:"zones"`
	MatchType   MatchType `json:"matchType"`
	MatchedKey  string    `json:"matchedKey,omitempty"`
	MatchedWord string    `json:"matchedWord,omitempty"`
}

// PlantDatabase maps lowercased canonical plant names to the hardiness zones
// the plant tolerates. Immutable after construction; key orderings the
// matcher depends on are precomputed here so matching stays deterministic.
type PlantDatabase struct {
	zones map[string][]string

	// keys sorted lexicographically; the stable "natural" scan order.
	keys []string
	// keys sorted by descending length, lexicographic within a length.
	keysByLength []string
}

// NewPlantDatabase builds a plant database from a name->zones mapping.
// Names are lowercased; two names that collide after case folding are a
// data defect and rejected.
func NewPlantDatabase(plants map[string][]string) (*PlantDatabase, error) {
	zones := make(map[string][]string, len(plants))
	for name, z := range plants {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			return nil, fmt.Errorf("%w: empty plant name", ErrParse)
		}
		if _, exists := zones[key]; exists {
			return nil, fmt.Errorf("%w: duplicate plant name %q after case folding", ErrParse, key)
		}
		zones[key] = z
	}

	keys := make([]string, 0, len(zones))
	for k := range zones {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	byLength := make([]string, len(keys))
	copy(byLength, keys)
	sort.SliceStable(byLength, func(i, j int) bool {
		return len(byLength[i]) > len(byLength[j])
	})

	return &PlantDatabase{zones: zones, keys: keys, keysByLength: byLength}, nil
}

// Zones returns the zone list for a canonical name.
func (db *PlantDatabase) Zones(name string) ([]string, bool) {
	z, ok := db.zones[name]
	return z, ok
}

// Keys returns all canonical names in lexicographic order.
func (db *PlantDatabase) Keys() []string {
	return db.keys
}

// KeysByLength returns all canonical names longest-first.
func (db *PlantDatabase) KeysByLength() []string {
	return db.keysByLength
}

// Len returns the number of plants in the database.
func (db *PlantDatabase) Len() int {
	return len(db.zones)
}
