package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/zonelens/backend/internal/domain"
	"github.com/zonelens/backend/internal/report"
)

func TestClassifyZoneFormat(t *testing.T) {
	tests := []struct {
		name  string
		zones []string
		want  report.Format
	}{
		{"no metafield", nil, report.FormatNone},
		{"empty list", []string{}, report.FormatNone},
		{"legacy form", []string{"zone-7"}, report.FormatOld},
		{"legacy with space", []string{"Zone 7"}, report.FormatOld},
		{"bare form", []string{"7"}, report.FormatNew},
		{"multiple bare", []string{"7", "8", "9"}, report.FormatNew},
		{"mixed forms", []string{"zone-7", "7"}, report.FormatMixed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyZoneFormat(tt.zones); got != tt.want {
				t.Errorf("ClassifyZoneFormat(%v) = %q, want %q", tt.zones, got, tt.want)
			}
		})
	}
}

func TestAuditRun(t *testing.T) {
	ctx := context.Background()

	t.Run("classifies every product without writing", func(t *testing.T) {
		catalog := &fakeCatalog{
			pages: []domain.ProductPage{{
				Products: []domain.Product{
					{ID: "1", Title: "A"},
					{ID: "2", Title: "B", ExistingZones: []string{"zone-7"}},
					{ID: "3", Title: "C", ExistingZones: []string{"7"}},
					{ID: "4", Title: "D", ExistingZones: []string{"zone-7", "7"}},
				},
			}},
		}

		rep, err := NewAuditService(catalog, zerolog.Nop()).Run(ctx)
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}

		want := map[report.Format]int{
			report.FormatNone:  1,
			report.FormatOld:   1,
			report.FormatNew:   1,
			report.FormatMixed: 1,
		}
		for format, count := range want {
			if rep.Counts[format] != count {
				t.Errorf("%s = %d, want %d", format, rep.Counts[format], count)
			}
		}
		if len(catalog.writes) != 0 {
			t.Fatalf("audit performed %d writes", len(catalog.writes))
		}
	})

	t.Run("pagination failure aborts", func(t *testing.T) {
		catalog := &fakeCatalog{listErr: errors.New("boom")}
		if _, err := NewAuditService(catalog, zerolog.Nop()).Run(ctx); err == nil {
			t.Fatal("Run() error = nil, want pagination failure")
		}
	})
}
