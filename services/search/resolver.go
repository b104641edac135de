package search

import (
	"context"
	"fmt"
	"strconv"

	listingRepo "wanderstay/database/repository/listing"
	"wanderstay/models"

	"go.uber.org/zap"
)

// textProbes is the fixed precedence order of the cascade. The first probe
// returning listings wins; later fields are never queried. Title keeps the
// collection's natural order, the rest are served newest first.
var textProbes = []struct {
	field       models.SearchField
	newestFirst bool
}{
	{models.SearchFieldTitle, false},
	{models.SearchFieldCategory, true},
	{models.SearchFieldCountry, true},
	{models.SearchFieldLocation, true},
}

// DefaultSearchResolver is the production SearchService implementation.
type DefaultSearchResolver struct {
	Repo   listingRepo.ListingRepository
	Logger *zap.Logger
}

func (s *DefaultSearchResolver) Resolve(ctx context.Context, rawQuery string) (*models.SearchResult, error) {
	term, err := Normalize(rawQuery)
	if err != nil {
		return nil, err
	}

	for _, probe := range textProbes {
		listings, err := s.Repo.FindBySubstring(probe.field, term, probe.newestFirst)
		if err != nil {
			return nil, fmt.Errorf("search probe on %s failed: %w", probe.field, err)
		}
		if len(listings) > 0 {
			s.Logger.Debug("search resolved",
				zap.String("term", term),
				zap.String("field", string(probe.field)),
				zap.Int("matches", len(listings)))
			return &models.SearchResult{Term: term, Field: probe.field, Listings: listings}, nil
		}
	}

	// Price ceiling fallback, only for terms that parse fully as an integer.
	if ceiling, convErr := strconv.ParseInt(term, 10, 64); convErr == nil {
		listings, err := s.Repo.FindByMaxPrice(ceiling)
		if err != nil {
			return nil, fmt.Errorf("price ceiling probe failed: %w", err)
		}
		if len(listings) > 0 {
			s.Logger.Debug("search resolved by price ceiling",
				zap.Int64("ceiling", ceiling),
				zap.Int("matches", len(listings)))
			return &models.SearchResult{Term: term, Field: models.SearchFieldPrice, Listings: listings}, nil
		}
	}

	return nil, &NoMatchError{Term: term}
}
