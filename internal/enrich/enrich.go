// Package enrich derives location context (postal code, neighborhood,
// amenities, landmarks) from web search. Enrichment is strictly best
// effort: a failed or empty search degrades to empty fields and never
// surfaces an error to the caller.
package enrich

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"listmate/internal/logger"
	"listmate/internal/model"
	"listmate/internal/search"
)

// Strategy names for EnrichmentConfig.Strategy.
const (
	StrategyMinimal       = "minimal"
	StrategyComprehensive = "comprehensive"
)

// Enricher runs the enrichment stage.
type Enricher struct {
	searcher search.Searcher
	log      *logger.Logger
	strategy string
}

// New builds an enricher. Unknown strategy names fall back to minimal.
func New(searcher search.Searcher, log *logger.Logger, strategy string) *Enricher {
	if strategy != StrategyComprehensive {
		strategy = StrategyMinimal
	}
	return &Enricher{searcher: searcher, log: log, strategy: strategy}
}

// Enrich returns location context for the record's address. The result is
// never nil and always carries the schools and transportation keys so that
// downstream consumers can index without checking.
func (e *Enricher) Enrich(ctx context.Context, rec *model.Record) *model.Enrichment {
	enrichment := &model.Enrichment{
		KeyAmenities: map[string][]string{
			model.AmenitySchools:        {},
			model.AmenityTransportation: {},
		},
	}

	address := rec.NormalizedAddress
	if address == "" {
		address = rec.Address
	}

	// The address itself is the most reliable postal code source; search
	// text is only a fallback.
	enrichment.ZipCode = extractPostalCode(address, rec.Region)

	if e.searcher == nil || !e.searcher.IsEnabled() {
		e.log.Debug("search disabled, skipping enrichment", "request_id", rec.RequestID)
		return enrichment
	}

	if e.strategy == StrategyComprehensive {
		e.comprehensive(ctx, rec, address, enrichment)
	} else {
		e.minimal(ctx, rec, address, enrichment)
	}

	return enrichment
}

// minimal runs exactly two searches concurrently and joins on both before
// extraction. Each search fails independently; a failure only costs the
// fields it would have filled.
func (e *Enricher) minimal(ctx context.Context, rec *model.Record, address string, enrichment *model.Enrichment) {
	var amenitiesText, qualityText string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		text, err := e.searchText(gctx, amenitiesQuery(address, rec.ListingType))
		if err != nil {
			e.log.Warn("amenities search failed", "request_id", rec.RequestID, "error", err)
			return nil
		}
		amenitiesText = text
		return nil
	})
	g.Go(func() error {
		text, err := e.searchText(gctx, qualityQuery(address))
		if err != nil {
			e.log.Warn("quality search failed", "request_id", rec.RequestID, "error", err)
			return nil
		}
		qualityText = text
		return nil
	})
	// Goroutines swallow their own errors, so the only wait outcome is
	// both slots settled.
	_ = g.Wait()

	combined := amenitiesText + "\n" + qualityText

	if enrichment.ZipCode == "" {
		enrichment.ZipCode = extractPostalCode(combined, rec.Region)
	}
	enrichment.Neighborhood = extractNeighborhood(combined)
	enrichment.KeyAmenities[model.AmenitySchools] = extractAmenities(amenitiesText, model.AmenitySchools)
	enrichment.KeyAmenities[model.AmenityTransportation] = extractAmenities(amenitiesText, model.AmenityTransportation)
	enrichment.Landmarks = extractLandmarks(combined)
}

// comprehensive is the high-coverage fallback mode: six sequential
// searches, two extra amenity categories, and a dedicated landmarks query.
// Rentals query transportation before schools; sales the reverse.
func (e *Enricher) comprehensive(ctx context.Context, rec *model.Record, address string, enrichment *model.Enrichment) {
	categories := []string{
		model.AmenitySchools,
		model.AmenityTransportation,
		model.AmenityParks,
		model.AmenityShopping,
	}
	if rec.ListingType == model.ListingTypeRent {
		categories[0], categories[1] = categories[1], categories[0]
	}

	var allText strings.Builder
	for _, category := range categories {
		text, err := e.searchText(ctx, categoryQuery(address, category))
		if err != nil {
			e.log.Warn("category search failed", "request_id", rec.RequestID, "category", category, "error", err)
			enrichment.KeyAmenities[category] = []string{}
			continue
		}
		allText.WriteString(text)
		allText.WriteString("\n")
		enrichment.KeyAmenities[category] = extractAmenities(text, category)
	}

	if text, err := e.searchText(ctx, neighborhoodQuery(address)); err != nil {
		e.log.Warn("neighborhood search failed", "request_id", rec.RequestID, "error", err)
	} else {
		enrichment.Neighborhood = extractNeighborhood(text)
		allText.WriteString(text)
		allText.WriteString("\n")
	}

	if text, err := e.searchText(ctx, landmarksQuery(address)); err != nil {
		e.log.Warn("landmarks search failed", "request_id", rec.RequestID, "error", err)
	} else {
		enrichment.Landmarks = extractLandmarks(text)
	}

	if enrichment.ZipCode == "" {
		enrichment.ZipCode = extractPostalCode(allText.String(), rec.Region)
	}
}

// searchText flattens search results into one text blob for extraction.
func (e *Enricher) searchText(ctx context.Context, query string) (string, error) {
	results, err := e.searcher.Search(ctx, query)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, r := range results {
		b.WriteString(r.Title)
		b.WriteString("\n")
		b.WriteString(r.Content)
		b.WriteString("\n")
	}
	return b.String(), nil
}
