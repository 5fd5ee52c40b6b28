package usecase

import (
	"regexp"
	"strings"

	"github.com/zonelens/backend/internal/domain"
)

// Minimum lengths that gate the fuzzier matching tiers, to keep short
// generic strings from producing false positives.
const (
	minContainsKeyLen   = 5 // database key must be at least this long for a contains match
	minPartialTitleLen  = 6 // normalized title must be at least this long for a partial match
	minBotanicalWordLen = 5 // title words shorter than this never reach the botanical fallback
)

// trademarkReplacer strips trademark glyphs that show up in product titles.
var trademarkReplacer = strings.NewReplacer("™", "", "®", "", "©", "")

// suffixPatterns strip size, packaging, and generic form suffixes from a
// normalized title. The list is ordered: later patterns assume the earlier
// ones already ran (a container size must go before the generic form word it
// may expose). The whole list is re-applied until the title stops changing,
// which also makes ExtractPlantName idempotent.
var suffixPatterns = []*regexp.Regexp{
	// "#3 container", "#1 pot", bare "#5"
	regexp.MustCompile(`\s*#\d+\s*(container|pot)?\s*$`),
	// "3 gallon", "2.5 gal container", "1 quart pot", "5 qt"
	regexp.MustCompile(`\s*\d+(\.\d+)?\s*[-\s]?\s*(gallon|gal|quart|qt)s?\.?\s*(container|pot)?\s*$`),
	// "4 inch pot", "6 in pot"
	regexp.MustCompile(`\s*\d+(\.\d+)?\s*(inch|in)\.?\s*pot\s*$`),
	// packaging and delivery form
	regexp.MustCompile(`\s*bare[-\s]?root\s*$`),
	regexp.MustCompile(`\s*potted\s*$`),
	// generic form words that titles append after the actual plant name
	regexp.MustCompile(`\s*(tree|shrub|bush|plant)s?\s*$`),
	// separators left dangling after a suffix was removed
	regexp.MustCompile(`[\s,|–-]+$`),
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// botanicalTerms is the fixed allow-list for the last-resort word match.
// Only taxonomically meaningful words belong here; generic descriptive words
// ("red", "little", "star") would match half the catalog.
var botanicalTerms = map[string]bool{
	"maple": true, "birch": true, "spruce": true, "cedar": true,
	"cypress": true, "arborvitae": true, "juniper": true, "dogwood": true,
	"redbud": true, "magnolia": true, "cherry": true, "hydrangea": true,
	"azalea": true, "rhododendron": true, "lilac": true, "hibiscus": true,
	"boxwood": true, "holly": true, "lavender": true, "wisteria": true,
	"clematis": true, "honeysuckle": true, "camellia": true, "gardenia": true,
	"forsythia": true, "viburnum": true, "elderberry": true,
	"serviceberry": true, "hosta": true, "peony": true, "willow": true,
	"ginkgo": true, "sycamore": true, "sweetgum": true, "poplar": true,
	"peach": true, "apple": true, "lemon": true, "orange": true,
	"blueberry": true, "blackberry": true, "grape": true,
	"pomegranate": true, "myrtle": true,
}

// PlantMatcher resolves free-text product titles against the plant database
// using tiered heuristics, strictest first. Matching is a pure function of
// the title and the immutable database snapshot.
type PlantMatcher struct {
	db *domain.PlantDatabase
}

// NewPlantMatcher creates a matcher over an immutable plant database.
func NewPlantMatcher(db *domain.PlantDatabase) *PlantMatcher {
	return &PlantMatcher{db: db}
}

// Match resolves a product title to hardiness zones, or nil when no tier
// produces a hit. Tiers, in order: exact key, key-inside-title (contains),
// title-inside-key (partial), allow-listed botanical word.
func (m *PlantMatcher) Match(title string) *domain.MatchResult {
	name := ExtractPlantName(title)
	if name == "" {
		return nil
	}

	// Tier 1: exact. An exact key wins even when a longer key would also
	// satisfy a contains match.
	if zones, ok := m.db.Zones(name); ok {
		return &domain.MatchResult{
			Zones:      zones,
			MatchType:  domain.MatchExact,
			MatchedKey: name,
		}
	}

	// Tier 2: contains, longest key first so a short generic key never
	// shadows a longer, more specific one ("maple" vs "japanese maple").
	for _, key := range m.db.KeysByLength() {
		if len(key) < minContainsKeyLen {
			continue
		}
		if strings.Contains(name, key) {
			zones, _ := m.db.Zones(key)
			return &domain.MatchResult{
				Zones:      zones,
				MatchType:  domain.MatchContains,
				MatchedKey: key,
			}
		}
	}

	// Tier 3: partial, the reverse direction of tier 2 — the whole title
	// inside a key — to catch shortened product titles.
	if len(name) >= minPartialTitleLen {
		for _, key := range m.db.Keys() {
			if strings.Contains(key, name) {
				zones, _ := m.db.Zones(key)
				return &domain.MatchResult{
					Zones:      zones,
					MatchType:  domain.MatchPartial,
					MatchedKey: key,
				}
			}
		}
	}

	// Tier 4: botanical-term fallback over allow-listed title words.
	for _, word := range strings.Fields(name) {
		if len(word) < minBotanicalWordLen || !botanicalTerms[word] {
			continue
		}
		for _, key := range m.db.KeysByLength() {
			if strings.Contains(key, word) {
				zones, _ := m.db.Zones(key)
				return &domain.MatchResult{
					Zones:       zones,
					MatchType:   domain.MatchBotanical,
					MatchedKey:  key,
					MatchedWord: word,
				}
			}
		}
	}

	return nil
}

// ExtractPlantName normalizes a product title down to a candidate plant
// name: lowercase, trademark glyphs stripped, whitespace collapsed, then the
// ordered suffix patterns applied until the string stops changing.
// Idempotent: extracting an already extracted name is a no-op.
func ExtractPlantName(title string) string {
	name := strings.ToLower(trademarkReplacer.Replace(title))
	name = strings.TrimSpace(whitespaceRun.ReplaceAllString(name, " "))

	for {
		before := name
		for _, pattern := range suffixPatterns {
			name = pattern.ReplaceAllString(name, "")
		}
		name = strings.TrimSpace(name)
		if name == before {
			break
		}
	}

	return name
}
