package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"wanderstay/models"
	"wanderstay/services/search"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SearchHandler handles the free-text listing search endpoint.
type SearchHandler struct {
	Resolver search.SearchService
}

func NewSearchHandler(resolver search.SearchService) *SearchHandler {
	return &SearchHandler{Resolver: resolver}
}

// SearchListingsHandler resolves the q parameter through the field cascade and reports
// which field explained the result set.
func (h *SearchHandler) SearchListingsHandler(c *gin.Context) {
	logger := getLogger(c)
	result, err := h.Resolver.Resolve(c.Request.Context(), c.Query("q"))
	if err != nil {
		var emptyErr *search.EmptyQueryError
		var noMatchErr *search.NoMatchError
		switch {
		case errors.As(err, &emptyErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter search query!"})
		case errors.As(err, &noMatchErr):
			c.JSON(http.StatusNotFound, gin.H{"error": "No listings found based on your search!"})
		default:
			logger.Error("Search failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed. Please try again later."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  searchMessage(result),
		"field":    result.Field,
		"listings": result.Listings,
	})
}

func searchMessage(result *models.SearchResult) string {
	if result.Field == models.SearchFieldPrice {
		return fmt.Sprintf("Listings searched by price less than Rs %s!", result.Term)
	}
	return fmt.Sprintf("Listings searched by %s!", result.Field.Label())
}
