package usecase

import (
	"testing"

	"github.com/zonelens/backend/internal/domain"
)

func fixtureZoneTable(t *testing.T) *domain.ZoneTable {
	t.Helper()
	table, err := domain.NewZoneTable(
		map[string]string{
			"010": "6a",
			"331": "10b",
			"841": "7a",
		},
		map[string]domain.TempRange{
			"6a":  {MinF: -10, MaxF: -5},
			"10b": {MinF: 35, MaxF: 40},
			"7a":  {MinF: 0, MaxF: 5},
		},
	)
	if err != nil {
		t.Fatalf("NewZoneTable() error = %v", err)
	}
	return table
}

func TestResolve(t *testing.T) {
	resolver := NewZoneResolver(fixtureZoneTable(t))

	t.Run("resolves a covered prefix", func(t *testing.T) {
		info := resolver.Resolve("01001")
		if info == nil {
			t.Fatal("Resolve() = nil, want zone 6a")
		}
		if info.Code != "6a" {
			t.Errorf("Code = %q, want 6a", info.Code)
		}
		if info.MinF != -10 || info.MaxF != -5 {
			t.Errorf("range = [%d, %d], want [-10, -5]", info.MinF, info.MaxF)
		}
	})

	t.Run("prefix-only sensitivity", func(t *testing.T) {
		// Two ZIPs sharing a prefix always resolve identically
		first := resolver.Resolve("01001")
		second := resolver.Resolve("01099")
		if first == nil || second == nil {
			t.Fatal("expected both ZIPs to resolve")
		}
		if first.Code != second.Code || first.MinF != second.MinF || first.MaxF != second.MaxF {
			t.Errorf("01001 -> %+v, 01099 -> %+v, want identical", first, second)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		a := resolver.Resolve("33101")
		b := resolver.Resolve("33101")
		if a == nil || b == nil || *a != *b {
			t.Errorf("repeated Resolve differs: %+v vs %+v", a, b)
		}
	})

	t.Run("absent prefix returns nil", func(t *testing.T) {
		if info := resolver.Resolve("99901"); info != nil {
			t.Errorf("Resolve(99901) = %+v, want nil", info)
		}
	})

	t.Run("malformed input returns nil", func(t *testing.T) {
		for _, zip := range []string{"", "0100", "010011", "0100a", "01 01", "zipcd"} {
			if info := resolver.Resolve(zip); info != nil {
				t.Errorf("Resolve(%q) = %+v, want nil", zip, info)
			}
		}
	})
}

func TestIsValidZIP(t *testing.T) {
	tests := []struct {
		zip  string
		want bool
	}{
		{"01001", true},
		{"99999", true},
		{"00000", true},
		{"0100", false},
		{"010011", false},
		{"0100a", false},
		{"", false},
		{"-1234", false},
	}

	for _, tt := range tests {
		if got := IsValidZIP(tt.zip); got != tt.want {
			t.Errorf("IsValidZIP(%q) = %v, want %v", tt.zip, got, tt.want)
		}
	}
}

func TestZoneTableInvariant(t *testing.T) {
	t.Run("rejects zone without a temperature range", func(t *testing.T) {
		_, err := domain.NewZoneTable(
			map[string]string{"010": "6a"},
			map[string]domain.TempRange{},
		)
		if err == nil {
			t.Fatal("NewZoneTable() accepted a prefix mapping to an unknown zone")
		}
	})

	t.Run("rejects non-3-digit prefix", func(t *testing.T) {
		_, err := domain.NewZoneTable(
			map[string]string{"01": "6a"},
			map[string]domain.TempRange{"6a": {MinF: -10, MaxF: -5}},
		)
		if err == nil {
			t.Fatal("NewZoneTable() accepted a 2-character prefix")
		}
	})
}
