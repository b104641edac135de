package handlers

import (
	"errors"
	"net/http"

	"wanderstay/models"
	"wanderstay/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler handles the booking endpoint for a listing.
type BookingHandler struct {
	Notifier booking.BookingNotifier
}

func NewBookingHandler(notifier booking.BookingNotifier) *BookingHandler {
	return &BookingHandler{Notifier: notifier}
}

// BookListingHandler confirms a booking and dispatches the two notification
// emails. Send failures are reported per recipient; the booking itself stays
// successful as long as the listing exists and the details are renderable.
func (h *BookingHandler) BookListingHandler(c *gin.Context) {
	logger := getLogger(c)
	listingID := c.Param("id")

	var input struct {
		UserEmail      string                `json:"userEmail" binding:"required,email"`
		BookingDetails models.BookingDetails `json:"bookingDetails" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	receipt, err := h.Notifier.Notify(c.Request.Context(), listingID, input.UserEmail, input.BookingDetails)
	if err != nil {
		var notFoundErr *booking.ListingNotFoundError
		var invalidErr *booking.InvalidBookingError
		switch {
		case errors.As(err, &notFoundErr):
			c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found!"})
		case errors.As(err, &invalidErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": invalidErr.Reason})
		default:
			logger.Error("Booking failed", zap.String("listingID", listingID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking successful! Confirmation email has been sent.",
		"receipt": receipt,
	})
}
