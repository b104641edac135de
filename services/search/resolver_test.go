package search

import (
	"context"
	"testing"

	"wanderstay/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeListingRepo serves canned results per field and records which probes ran.
type fakeListingRepo struct {
	byField    map[models.SearchField][]models.Listing
	underPrice []models.Listing

	probedFields []models.SearchField
	priceProbed  bool
}

func (f *fakeListingRepo) FindBySubstring(field models.SearchField, term string, newestFirst bool) ([]models.Listing, error) {
	f.probedFields = append(f.probedFields, field)
	return f.byField[field], nil
}

func (f *fakeListingRepo) FindByMaxPrice(ceiling int64) ([]models.Listing, error) {
	f.priceProbed = true
	var out []models.Listing
	for _, l := range f.underPrice {
		if l.Price <= ceiling {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeListingRepo) GetByID(id string) (*models.Listing, error)               { return nil, nil }
func (f *fakeListingRepo) GetAll() ([]models.Listing, error)                        { return nil, nil }
func (f *fakeListingRepo) Create(l *models.Listing) error                           { return nil }
func (f *fakeListingRepo) Update(l *models.Listing) error                           { return nil }
func (f *fakeListingRepo) Delete(id string) error                                   { return nil }
func (f *fakeListingRepo) FindByCategory(category string) ([]models.Listing, error) { return nil, nil }

func newResolver(repo *fakeListingRepo) *DefaultSearchResolver {
	return &DefaultSearchResolver{Repo: repo, Logger: zap.NewNop()}
}

func TestResolveTitleMatch(t *testing.T) {
	loft := models.Listing{ID: "1", Title: "New York Loft"}
	repo := &fakeListingRepo{byField: map[models.SearchField][]models.Listing{
		models.SearchFieldTitle: {loft},
	}}

	result, err := newResolver(repo).Resolve(context.Background(), "  new york  ")
	require.NoError(t, err)

	assert.Equal(t, "New York", result.Term)
	assert.Equal(t, models.SearchFieldTitle, result.Field)
	assert.Equal(t, []models.Listing{loft}, result.Listings)
	assert.Equal(t, []models.SearchField{models.SearchFieldTitle}, repo.probedFields)
}

func TestResolveCascadePrecedence(t *testing.T) {
	// The term matches both Title and Category; Title wins and Category is
	// never probed.
	repo := &fakeListingRepo{byField: map[models.SearchField][]models.Listing{
		models.SearchFieldTitle:    {{ID: "1", Title: "Cabin Retreat"}},
		models.SearchFieldCategory: {{ID: "2", Category: "Cabin"}},
	}}

	result, err := newResolver(repo).Resolve(context.Background(), "cabin")
	require.NoError(t, err)

	assert.Equal(t, models.SearchFieldTitle, result.Field)
	assert.Equal(t, []models.SearchField{models.SearchFieldTitle}, repo.probedFields)
}

func TestResolveFallsThroughToLaterField(t *testing.T) {
	repo := &fakeListingRepo{byField: map[models.SearchField][]models.Listing{
		models.SearchFieldLocation: {{ID: "3", Location: "Cape Town"}},
	}}

	result, err := newResolver(repo).Resolve(context.Background(), "cape town")
	require.NoError(t, err)

	assert.Equal(t, models.SearchFieldLocation, result.Field)
	assert.Equal(t, []models.SearchField{
		models.SearchFieldTitle,
		models.SearchFieldCategory,
		models.SearchFieldCountry,
		models.SearchFieldLocation,
	}, repo.probedFields)
	assert.False(t, repo.priceProbed)
}

func TestResolveNumericTermPrefersTextualMatch(t *testing.T) {
	// An all-digit term that exists as a substring of a Country resolves
	// textually and never reaches the price probe.
	repo := &fakeListingRepo{byField: map[models.SearchField][]models.Listing{
		models.SearchFieldCountry: {{ID: "4", Country: "Area 51"}},
	}}

	result, err := newResolver(repo).Resolve(context.Background(), "51")
	require.NoError(t, err)

	assert.Equal(t, models.SearchFieldCountry, result.Field)
	assert.False(t, repo.priceProbed)
}

func TestResolvePriceCeilingFallback(t *testing.T) {
	repo := &fakeListingRepo{underPrice: []models.Listing{
		{ID: "a", Price: 150},
		{ID: "b", Price: 180},
		{ID: "c", Price: 300},
	}}

	result, err := newResolver(repo).Resolve(context.Background(), "200")
	require.NoError(t, err)

	assert.Equal(t, models.SearchFieldPrice, result.Field)
	require.Len(t, result.Listings, 2)
	assert.Equal(t, int64(150), result.Listings[0].Price)
	assert.Equal(t, int64(180), result.Listings[1].Price)
}

func TestResolveNonNumericTermSkipsPriceProbe(t *testing.T) {
	repo := &fakeListingRepo{underPrice: []models.Listing{{ID: "a", Price: 150}}}

	_, err := newResolver(repo).Resolve(context.Background(), "chalet")

	var noMatchErr *NoMatchError
	assert.ErrorAs(t, err, &noMatchErr)
	assert.False(t, repo.priceProbed)
}

func TestResolvePartialNumericTermSkipsPriceProbe(t *testing.T) {
	repo := &fakeListingRepo{underPrice: []models.Listing{{ID: "a", Price: 150}}}

	_, err := newResolver(repo).Resolve(context.Background(), "123abc")

	var noMatchErr *NoMatchError
	assert.ErrorAs(t, err, &noMatchErr)
	assert.False(t, repo.priceProbed)
}

func TestResolveEmptyQueryProbesNothing(t *testing.T) {
	repo := &fakeListingRepo{}

	_, err := newResolver(repo).Resolve(context.Background(), "   ")

	var emptyErr *EmptyQueryError
	assert.ErrorAs(t, err, &emptyErr)
	assert.Empty(t, repo.probedFields)
	assert.False(t, repo.priceProbed)
}

func TestResolveNoMatchAnywhere(t *testing.T) {
	repo := &fakeListingRepo{}

	_, err := newResolver(repo).Resolve(context.Background(), "400")

	var noMatchErr *NoMatchError
	assert.ErrorAs(t, err, &noMatchErr)
	assert.True(t, repo.priceProbed)
}
