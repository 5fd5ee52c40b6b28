package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/zonelens/backend/internal/domain"
	"github.com/zonelens/backend/internal/report"
)

// SyncOptions control one sync pass.
type SyncOptions struct {
	// DryRun computes every outcome but performs no writes.
	DryRun bool
	// Normalize rewrites legacy "zone-N" metafield values to the bare form.
	Normalize bool
}

// SyncService walks every product in the catalog and fills in missing
// hardiness-zone metafields from the plant matcher. Fetching and writing are
// strictly sequential: one page in flight, one mutation in flight, with the
// limiter pacing writes to stay under the platform's mutation ceiling.
type SyncService struct {
	catalog domain.ProductCatalog
	matcher *PlantMatcher
	logger  zerolog.Logger
}

// NewSyncService creates a sync service. Write pacing lives in the catalog
// client, so a dry run (which never writes) runs at full speed.
func NewSyncService(catalog domain.ProductCatalog, matcher *PlantMatcher, logger zerolog.Logger) *SyncService {
	return &SyncService{
		catalog: catalog,
		matcher: matcher,
		logger:  logger,
	}
}

// Run executes one sync pass and returns the run report. A pagination
// failure aborts the whole run and the partial report is discarded;
// per-product write failures are recorded and the pass continues.
func (s *SyncService) Run(ctx context.Context, opts SyncOptions) (*report.SyncReport, error) {
	rep := report.NewSyncReport(opts.DryRun)

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
			s.processProduct(ctx, product, opts, rep)
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		if !productPage.HasNextPage {
			break
		}
		cursor = productPage.EndCursor
	}

	return rep, nil
}

// processProduct runs the per-product state machine:
// fetched -> skippedHasZones | normalized | updated | notFound | errored.
func (s *SyncService) processProduct(ctx context.Context, product domain.Product, opts SyncOptions, rep *report.SyncReport) {
	if len(product.ExistingZones) > 0 {
		if opts.Normalize && hasLegacyZoneFormat(product.ExistingZones) {
			zones := NormalizeZones(product.ExistingZones)
			s.write(ctx, product, zones, opts.DryRun, rep, report.OutcomeNormalized, "")
			return
		}
		s.logger.Debug().Str("id", product.ID).Str("title", product.Title).Msg("skipped, already has zones")
		rep.Add(report.OutcomeSkipped, report.ProductDetail{
			ID:    product.ID,
			Title: product.Title,
			Zones: product.ExistingZones,
		})
		return
	}

	match := s.matcher.Match(product.Title)
	if match == nil {
		s.logger.Debug().Str("id", product.ID).Str("title", product.Title).Msg("no plant match")
		rep.Add(report.OutcomeNotFound, report.ProductDetail{
			ID:    product.ID,
			Title: product.Title,
		})
		return
	}

	s.write(ctx, product, match.Zones, opts.DryRun, rep, report.OutcomeUpdated, string(match.MatchType))
}

// write performs (or, under dry-run, skips) one metafield mutation and
// records the outcome. A failed write becomes errored and never aborts the
// pass; there is no retry inside a pass.
func (s *SyncService) write(ctx context.Context, product domain.Product, zones []string, dryRun bool, rep *report.SyncReport, outcome report.Outcome, matchType string) {
	detail := report.ProductDetail{
		ID:        product.ID,
		Title:     product.Title,
		Zones:     zones,
		MatchType: matchType,
		Applied:   !dryRun,
	}

	if dryRun {
		s.logger.Info().Str("id", product.ID).Str("title", product.Title).Strs("zones", zones).Str("outcome", string(outcome)).Msg("dry run, write skipped")
		rep.Add(outcome, detail)
		return
	}

	if err := s.catalog.SetZoneMetafield(ctx, product, zones); err != nil {
		s.logger.Warn().Err(err).Str("id", product.ID).Str("title", product.Title).Msg("metafield write failed")
		rep.Add(report.OutcomeErrored, report.ProductDetail{
			ID:    product.ID,
			Title: product.Title,
			Zones: zones,
			Error: err.Error(),
		})
		return
	}

	s.logger.Info().Str("id", product.ID).Str("title", product.Title).Strs("zones", zones).Str("outcome", string(outcome)).Msg("metafield written")
	rep.Add(outcome, detail)
}

// hasLegacyZoneFormat reports whether any element still uses the legacy
// "zone-N" string form.
func hasLegacyZoneFormat(zones []string) bool {
	for _, z := range zones {
		if strings.Contains(strings.ToLower(z), "zone") {
			return true
		}
	}
	return false
}

// NormalizeZones converts legacy "zone-N" values to the bare zone code by
// stripping the word "zone", hyphens, and spaces. Already-normalized values
// pass through unchanged.
func NormalizeZones(zones []string) []string {
	normalized := make([]string, 0, len(zones))
	for _, z := range zones {
		v := strings.ToLower(z)
		v = strings.ReplaceAll(v, "zone", "")
		v = strings.ReplaceAll(v, "-", "")
		v = strings.ReplaceAll(v, " ", "")
		normalized = append(normalized, v)
	}
	return normalized
}
