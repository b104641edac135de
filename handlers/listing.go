package handlers

import (
	"errors"
	"net/http"

	listingRepo "wanderstay/database/repository/listing"
	"wanderstay/models"
	"wanderstay/services/listing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListingHandler handles the listing CRUD and category filter endpoints.
type ListingHandler struct {
	Svc listing.ListingService
}

func NewListingHandler(svc listing.ListingService) *ListingHandler {
	return &ListingHandler{Svc: svc}
}

// IndexHandler returns all listings.
func (h *ListingHandler) IndexHandler(c *gin.Context) {
	logger := getLogger(c)
	listings, err := h.Svc.GetAll(c.Request.Context())
	if err != nil {
		logger.Error("Failed to retrieve listings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get listings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"listings": listings})
}

// ShowHandler returns one listing by ID.
func (h *ListingHandler) ShowHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	l, err := h.Svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, listingRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Listing you requested for does not exist!"})
			return
		}
		logger.Error("Failed to retrieve listing", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get listing"})
		return
	}
	c.JSON(http.StatusOK, l)
}

// CreateHandler creates a new listing.
func (h *ListingHandler) CreateHandler(c *gin.Context) {
	logger := getLogger(c)
	var l models.Listing
	if err := c.ShouldBindJSON(&l); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Svc.Create(c.Request.Context(), &l); err != nil {
		logger.Error("Failed to create listing", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create listing"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "New listing created!", "listing": l})
}

// UpdateHandler updates an existing listing.
func (h *ListingHandler) UpdateHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	var l models.Listing
	if err := c.ShouldBindJSON(&l); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	updated, err := h.Svc.Update(c.Request.Context(), id, l)
	if err != nil {
		if errors.Is(err, listingRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Listing you trying to edit for does not exist!"})
			return
		}
		logger.Error("Failed to update listing", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update listing"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Listing updated!", "listing": updated})
}

// DestroyHandler deletes a listing.
func (h *ListingHandler) DestroyHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, listingRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Listing you requested for does not exist!"})
			return
		}
		logger.Error("Failed to delete listing", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete listing"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Listing deleted!"})
}

// FilterHandler returns listings for one category.
func (h *ListingHandler) FilterHandler(c *gin.Context) {
	logger := getLogger(c)
	category := c.Param("category")
	listings, err := h.Svc.FilterByCategory(c.Request.Context(), category)
	if err != nil {
		logger.Error("Failed to filter listings", zap.String("category", category), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to filter listings"})
		return
	}
	if len(listings) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "There is no any Listing for " + category + "!"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Listings Filtered by " + category + "!",
		"listings": listings,
	})
}
