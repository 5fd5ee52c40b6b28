package usecase

import (
	"testing"

	"github.com/zonelens/backend/internal/domain"
)

func fixturePlantDB(t *testing.T) *domain.PlantDatabase {
	t.Helper()
	db, err := domain.NewPlantDatabase(map[string][]string{
		"maple":                    {"4", "5", "6"},
		"japanese maple":           {"5", "6", "7", "8"},
		"colorado blue spruce":     {"2", "3", "4", "5", "6", "7"},
		"star magnolia":            {"4", "5", "6", "7", "8"},
		"endless summer hydrangea": {"4", "5", "6", "7", "8", "9"},
		"rose":                     {"5", "6", "7"},
	})
	if err != nil {
		t.Fatalf("NewPlantDatabase() error = %v", err)
	}
	return db
}

func TestExtractPlantName(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"lowercases and collapses whitespace", "Japanese   MAPLE", "japanese maple"},
		{"strips trademark glyphs", "Endless Summer® Hydrangea", "endless summer hydrangea"},
		{"strips gallon size", "Japanese Maple Tree - 3 Gallon", "japanese maple"},
		{"strips numbered container", "Colorado Blue Spruce #3 Container", "colorado blue spruce"},
		{"strips quart size", "Star Magnolia 1 Quart Pot", "star magnolia"},
		{"strips bare root", "Japanese Maple Bare Root", "japanese maple"},
		{"strips potted with separator", "Endless Summer Hydrangea - Potted", "endless summer hydrangea"},
		{"strips generic form word", "Star Magnolia Tree", "star magnolia"},
		{"strips stacked suffixes", "Japanese Maple Shrub 2.5 Gal", "japanese maple"},
		{"leaves plain names alone", "star magnolia", "star magnolia"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractPlantName(tt.title); got != tt.want {
				t.Errorf("ExtractPlantName(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestExtractPlantNameIdempotent(t *testing.T) {
	titles := []string{
		"Japanese Maple Tree - 3 Gallon",
		"Colorado Blue Spruce™ #3 Container",
		"Endless Summer® Hydrangea - Potted",
		"3 gallon potted plant",
		"Star Magnolia",
	}

	for _, title := range titles {
		once := ExtractPlantName(title)
		twice := ExtractPlantName(once)
		if once != twice {
			t.Errorf("ExtractPlantName not idempotent for %q: once=%q twice=%q", title, once, twice)
		}
	}
}

func TestMatch(t *testing.T) {
	matcher := NewPlantMatcher(fixturePlantDB(t))

	t.Run("exact match wins over contains", func(t *testing.T) {
		// "maple" is a literal key; exact must be reported even though the
		// contains tier would also hit it
		result := matcher.Match("Maple Tree")
		if result == nil {
			t.Fatal("Match() = nil, want exact match")
		}
		if result.MatchType != domain.MatchExact {
			t.Errorf("MatchType = %q, want exact", result.MatchType)
		}
		if result.MatchedKey != "maple" {
			t.Errorf("MatchedKey = %q, want maple", result.MatchedKey)
		}
	})

	t.Run("contains prefers the longest key", func(t *testing.T) {
		// Both "maple" and "japanese maple" are inside the title; the longer
		// key must win the tie
		result := matcher.Match("Emperor Japanese Maple - 3 Gallon")
		if result == nil {
			t.Fatal("Match() = nil, want contains match")
		}
		if result.MatchType != domain.MatchContains {
			t.Errorf("MatchType = %q, want contains", result.MatchType)
		}
		if result.MatchedKey != "japanese maple" {
			t.Errorf("MatchedKey = %q, want japanese maple", result.MatchedKey)
		}
		if len(result.Zones) != 4 || result.Zones[0] != "5" {
			t.Errorf("Zones = %v, want zones of japanese maple", result.Zones)
		}
	})

	t.Run("short keys never contains-match", func(t *testing.T) {
		// "rose" is only 4 characters, below the contains threshold
		if result := matcher.Match("Rose Garden Collection"); result != nil {
			t.Errorf("Match() = %+v, want nil", result)
		}
	})

	t.Run("partial matches a shortened title inside a key", func(t *testing.T) {
		result := matcher.Match("Japanese Map")
		if result == nil {
			t.Fatal("Match() = nil, want partial match")
		}
		if result.MatchType != domain.MatchPartial {
			t.Errorf("MatchType = %q, want partial", result.MatchType)
		}
		if result.MatchedKey != "japanese maple" {
			t.Errorf("MatchedKey = %q, want japanese maple", result.MatchedKey)
		}
	})

	t.Run("botanical fallback on allow-listed word", func(t *testing.T) {
		result := matcher.Match("Fat Albert Spruce")
		if result == nil {
			t.Fatal("Match() = nil, want botanical match")
		}
		if result.MatchType != domain.MatchBotanical {
			t.Errorf("MatchType = %q, want botanical", result.MatchType)
		}
		if result.MatchedWord != "spruce" {
			t.Errorf("MatchedWord = %q, want spruce", result.MatchedWord)
		}
		if result.MatchedKey != "colorado blue spruce" {
			t.Errorf("MatchedKey = %q, want colorado blue spruce", result.MatchedKey)
		}
	})

	t.Run("botanical fallback rejects generic words", func(t *testing.T) {
		// "little" is long enough but not taxonomically meaningful
		if result := matcher.Match("Little Red Shrub"); result != nil {
			t.Errorf("Match() = %+v, want nil", result)
		}
	})

	t.Run("no match returns nil", func(t *testing.T) {
		if result := matcher.Match("Garden Gnome Statue"); result != nil {
			t.Errorf("Match() = %+v, want nil", result)
		}
	})

	t.Run("empty title returns nil", func(t *testing.T) {
		if result := matcher.Match("   "); result != nil {
			t.Errorf("Match() = %+v, want nil", result)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		first := matcher.Match("Emperor Japanese Maple")
		second := matcher.Match("Emperor Japanese Maple")
		if first == nil || second == nil || first.MatchedKey != second.MatchedKey {
			t.Errorf("repeated Match differs: %+v vs %+v", first, second)
		}
	})
}
