package search

import (
	"context"

	"wanderstay/models"
)

// SearchService resolves a free-text query into listings matched on a single field.
type SearchService interface {
	// Resolve normalizes rawQuery and probes the listing fields in precedence
	// order, returning the first field that matched together with its listings.
	// Expected result variants are returned as *EmptyQueryError and
	// *NoMatchError; any other error is a store failure.
	Resolve(ctx context.Context, rawQuery string) (*models.SearchResult, error)
}
