package domain

import "fmt"

// TempRange is the average annual minimum temperature band for a hardiness
// zone, in degrees Fahrenheit.
type TempRange struct {
	MinF int `json:"minF"`
	MaxF int `json:"maxF"`
}

// ZoneInfo is the result of resolving a ZIP code to a hardiness zone.
type ZoneInfo struct {
	Code string `json:"zone"` // e.g. "6a"
	MinF int    `json:"minF"`
	MaxF int    `json:"maxF"`
}

// ZoneTable maps 3-digit ZIP prefixes to USDA hardiness zone codes, plus
// zone codes to their temperature ranges. Built once at load time and never
// mutated; callers hold a reference instead of reaching for a global.
type ZoneTable struct {
	prefixes map[string]string
	ranges   map[string]TempRange
}

// NewZoneTable builds a zone table from a prefix->zone mapping and a
// zone->range mapping. Every zone code referenced by a prefix must have a
// temperature range, otherwise the table is rejected.
func NewZoneTable(prefixes map[string]string, ranges map[string]TempRange) (*ZoneTable, error) {
	for prefix, zone := range prefixes {
		if len(prefix) != 3 {
			return nil, fmt.Errorf("%w: prefix %q is not 3 digits", ErrParse, prefix)
		}
		if _, ok := ranges[zone]; !ok {
			return nil, fmt.Errorf("%w: prefix %q maps to zone %q with no temperature range", ErrParse, prefix, zone)
		}
	}
	return &ZoneTable{prefixes: prefixes, ranges: ranges}, nil
}

// ZoneForPrefix returns the zone code for a 3-digit ZIP prefix, or "" when
// the prefix is not covered.
func (t *ZoneTable) ZoneForPrefix(prefix string) string {
	return t.prefixes[prefix]
}

// RangeForZone returns the temperature range for a zone code.
func (t *ZoneTable) RangeForZone(zone string) (TempRange, bool) {
	r, ok := t.ranges[zone]
	return r, ok
}

// Len returns the number of covered prefixes.
func (t *ZoneTable) Len() int {
	return len(t.prefixes)
}
