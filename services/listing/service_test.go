package listing

import (
	"context"
	"fmt"
	"testing"

	listingRepo "wanderstay/database/repository/listing"
	"wanderstay/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRepo struct {
	listings map[string]*models.Listing
	created  []*models.Listing
	updated  []*models.Listing
}

func (f *fakeRepo) GetByID(id string) (*models.Listing, error) {
	if l, ok := f.listings[id]; ok {
		return l, nil
	}
	return nil, fmt.Errorf("listing %s: %w", id, listingRepo.ErrNotFound)
}

func (f *fakeRepo) GetAll() ([]models.Listing, error) { return nil, nil }

func (f *fakeRepo) Create(l *models.Listing) error {
	f.created = append(f.created, l)
	return nil
}

func (f *fakeRepo) Update(l *models.Listing) error {
	f.updated = append(f.updated, l)
	return nil
}

func (f *fakeRepo) Delete(id string) error                                   { return nil }
func (f *fakeRepo) FindByCategory(category string) ([]models.Listing, error) { return nil, nil }
func (f *fakeRepo) FindBySubstring(field models.SearchField, term string, newestFirst bool) ([]models.Listing, error) {
	return nil, nil
}
func (f *fakeRepo) FindByMaxPrice(ceiling int64) ([]models.Listing, error) { return nil, nil }

type fakeGeocoder struct {
	queries []string
	point   models.GeoPoint
}

func (f *fakeGeocoder) Forward(ctx context.Context, query string) (*models.GeoPoint, error) {
	f.queries = append(f.queries, query)
	p := f.point
	return &p, nil
}

func TestCreateGeocodesAndAssignsID(t *testing.T) {
	repo := &fakeRepo{}
	geo := &fakeGeocoder{point: models.GeoPoint{Type: "Point", Coordinates: []float64{-73.98, 40.75}}}
	svc := &DefaultListingService{Repo: repo, Geocoder: geo, Logger: zap.NewNop()}

	l := &models.Listing{Title: "New York Loft", Location: "New York", Country: "United States"}
	require.NoError(t, svc.Create(context.Background(), l))

	assert.NotEmpty(t, l.ID)
	assert.False(t, l.CreatedAt.IsZero())
	assert.Equal(t, []float64{-73.98, 40.75}, l.Geometry.Coordinates)
	assert.Equal(t, []string{"New York"}, geo.queries)
	require.Len(t, repo.created, 1)
}

func TestUpdateGeocodesLocationAndCountry(t *testing.T) {
	existing := &models.Listing{
		ID:       "l1",
		Title:    "Old Title",
		Image:    models.ListingImage{URL: "https://img/old.jpg", Filename: "old"},
		Owner:    models.Owner{Name: "Ada", Email: "ada@example.com"},
		Location: "Paris",
		Country:  "France",
	}
	repo := &fakeRepo{listings: map[string]*models.Listing{"l1": existing}}
	geo := &fakeGeocoder{point: models.GeoPoint{Type: "Point", Coordinates: []float64{2.35, 48.85}}}
	svc := &DefaultListingService{Repo: repo, Geocoder: geo, Logger: zap.NewNop()}

	updated, err := svc.Update(context.Background(), "l1", models.Listing{
		Title:    "New Title",
		Location: "Lyon",
		Country:  "France",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Lyon,France"}, geo.queries)
	assert.Equal(t, "l1", updated.ID)
	assert.Equal(t, "New Title", updated.Title)
	// Image and owner carry over when the update omits them.
	assert.Equal(t, "https://img/old.jpg", updated.Image.URL)
	assert.Equal(t, "ada@example.com", updated.Owner.Email)
	require.Len(t, repo.updated, 1)
}

func TestUpdateMissingListing(t *testing.T) {
	repo := &fakeRepo{}
	svc := &DefaultListingService{Repo: repo, Geocoder: &fakeGeocoder{}, Logger: zap.NewNop()}

	_, err := svc.Update(context.Background(), "nope", models.Listing{})
	assert.ErrorIs(t, err, listingRepo.ErrNotFound)
	assert.Empty(t, repo.updated)
}
