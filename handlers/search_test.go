package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"wanderstay/models"
	"wanderstay/services/search"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubResolver struct {
	result *models.SearchResult
	err    error
	gotQ   string
}

func (s *stubResolver) Resolve(ctx context.Context, rawQuery string) (*models.SearchResult, error) {
	s.gotQ = rawQuery
	return s.result, s.err
}

func performSearch(t *testing.T, resolver search.SearchService, url string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/listings/search", NewSearchHandler(resolver).SearchListingsHandler)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestSearchListingsHandlerOK(t *testing.T) {
	resolver := &stubResolver{result: &models.SearchResult{
		Term:     "New York",
		Field:    models.SearchFieldTitle,
		Listings: []models.Listing{{ID: "1", Title: "New York Loft"}},
	}}

	w := performSearch(t, resolver, "/api/listings/search?q=new+york")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "new york", resolver.gotQ)
	assert.Contains(t, w.Body.String(), "Listings searched by Title!")
	assert.Contains(t, w.Body.String(), "New York Loft")
}

func TestSearchListingsHandlerPriceMessage(t *testing.T) {
	resolver := &stubResolver{result: &models.SearchResult{
		Term:     "200",
		Field:    models.SearchFieldPrice,
		Listings: []models.Listing{{ID: "a", Price: 150}},
	}}

	w := performSearch(t, resolver, "/api/listings/search?q=200")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Listings searched by price less than Rs 200!")
}

func TestSearchListingsHandlerEmptyQuery(t *testing.T) {
	resolver := &stubResolver{err: &search.EmptyQueryError{}}

	w := performSearch(t, resolver, "/api/listings/search?q=")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please enter search query!")
}

func TestSearchListingsHandlerNoMatch(t *testing.T) {
	resolver := &stubResolver{err: &search.NoMatchError{Term: "Atlantis"}}

	w := performSearch(t, resolver, "/api/listings/search?q=atlantis")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No listings found based on your search!")
}
