package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/zonelens/backend/internal/domain"
	"github.com/zonelens/backend/internal/report"
)

// AuditService is the read-only companion to SyncService: it walks the
// catalog and classifies the current format of every product's zone
// metafield. It never writes.
type AuditService struct {
	catalog domain.ProductCatalog
	logger  zerolog.Logger
}

// NewAuditService creates an audit service.
func NewAuditService(catalog domain.ProductCatalog, logger zerolog.Logger) *AuditService {
	return &AuditService{catalog: catalog, logger: logger}
}

// Run classifies every product and returns the audit report. Pagination
// failures abort the run, same as the sync driver.
func (s *AuditService) Run(ctx context.Context) (*report.AuditReport, error) {
	rep := report.NewAuditReport()

	cursor := ""
	page := 0
	for {
		productPage, err := s.catalog.ListProducts(ctx, cursor)
		if err != nil {
			return nil, fmt.Errorf("listing products (page %d): %w", page+1, err)
		}
		page++
		s.logger.Debug().Int("page", page).Int("products", len(productPage.Products)).Msg("fetched product page")

		for _, product := range productPage.Products {
			format := ClassifyZoneFormat(product.ExistingZones)
			s.logger.Debug().Str("id", product.ID).Str("title", product.Title).Str("format", string(format)).Msg("classified")
			rep.Add(format, report.ProductDetail{
				ID:    product.ID,
				Title: product.Title,
				Zones: product.ExistingZones,
			})
		}

		if !productPage.HasNextPage {
			break
		}
		cursor = productPage.EndCursor
	}

	return rep, nil
}

// ClassifyZoneFormat buckets a product's existing zone values into exactly
// one of none, old, new, or mixed, keyed on the case-insensitive substring
// "zone". Mixed requires at least one element with and one without it.
func ClassifyZoneFormat(zones []string) report.Format {
	if len(zones) == 0 {
		return report.FormatNone
	}

	legacy, bare := 0, 0
	for _, z := range zones {
		if strings.Contains(strings.ToLower(z), "zone") {
			legacy++
		} else {
			bare++
		}
	}

	switch {
	case legacy > 0 && bare > 0:
		return report.FormatMixed
	case legacy > 0:
		return report.FormatOld
	default:
		return report.FormatNew
	}
}
