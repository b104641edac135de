package listingRepo

import (
	"wanderstay/models"
)

// ListingRepository defines methods for listing data access.
type ListingRepository interface {
	// GetByID retrieves a listing by its unique ID.
	GetByID(id string) (*models.Listing, error)
	// GetAll retrieves all listings.
	GetAll() ([]models.Listing, error)
	// Create inserts a new listing record.
	Create(listing *models.Listing) error
	// Update modifies an existing listing record.
	Update(listing *models.Listing) error
	// Delete removes a listing record by its ID.
	Delete(id string) error
	// FindByCategory returns listings assigned to the given category.
	FindByCategory(category string) ([]models.Listing, error)
	// FindBySubstring returns listings whose named field contains term,
	// matched case-insensitively. With newestFirst the result is ordered by
	// descending record identity; otherwise the collection's natural order.
	FindBySubstring(field models.SearchField, term string, newestFirst bool) ([]models.Listing, error)
	// FindByMaxPrice returns listings priced at or below ceiling, cheapest first.
	FindByMaxPrice(ceiling int64) ([]models.Listing, error)
}
