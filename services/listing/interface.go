package listing

import (
	"context"

	"wanderstay/models"
)

// ListingService covers the listing CRUD and category filter operations.
type ListingService interface {
	GetAll(ctx context.Context) ([]models.Listing, error)
	GetByID(ctx context.Context, id string) (*models.Listing, error)
	// Create geocodes the listing's location, assigns an ID and creation time,
	// and stores the record.
	Create(ctx context.Context, l *models.Listing) error
	// Update re-geocodes from "location,country" and replaces the stored fields.
	Update(ctx context.Context, id string, l models.Listing) (*models.Listing, error)
	Delete(ctx context.Context, id string) error
	FilterByCategory(ctx context.Context, category string) ([]models.Listing, error)
}
