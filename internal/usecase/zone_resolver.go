package usecase

import "github.com/zonelens/backend/internal/domain"

// ZoneResolver resolves 5-digit ZIP codes to hardiness zones using the
// 3-digit prefix table. Resolution is deliberately prefix-granular: two ZIPs
// sharing a prefix always resolve identically, trading accuracy inside a
// prefix for a table small enough to ship to the browser as well.
type ZoneResolver struct {
	table *domain.ZoneTable
}

// NewZoneResolver creates a resolver over an immutable zone table.
func NewZoneResolver(table *domain.ZoneTable) *ZoneResolver {
	return &ZoneResolver{table: table}
}

// Resolve returns the zone and temperature range for a ZIP code, or nil when
// the input is not a 5-digit numeric string or the prefix is not covered.
// An uncovered prefix is an expected outcome (unassigned or newly issued
// prefixes), not an error.
func (r *ZoneResolver) Resolve(zip string) *domain.ZoneInfo {
	if !IsValidZIP(zip) {
		return nil
	}

	zone := r.table.ZoneForPrefix(zip[:3])
	if zone == "" {
		return nil
	}

	rng, ok := r.table.RangeForZone(zone)
	if !ok {
		// NewZoneTable guarantees a range for every mapped zone.
		return nil
	}

	return &domain.ZoneInfo{Code: zone, MinF: rng.MinF, MaxF: rng.MaxF}
}

// IsValidZIP reports whether s is exactly 5 ASCII digits.
func IsValidZIP(s string) bool {
	if len(s) != 5 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
