package routes

import (
	"net/http"
	"time"

	"wanderstay/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers the router wires up.
type HandlerBundle struct {
	Listing *handlers.ListingHandler
	Search  *handlers.SearchHandler
	Booking *handlers.BookingHandler
	Storage *handlers.StorageHandler
}

// RegisterListingRoutes registers listing CRUD, filter, search and booking endpoints.
func RegisterListingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/listings")
	{
		api.GET("", hb.Listing.IndexHandler)
		// Search is registered before /:id so "search" is never read as an ID.
		api.GET("/search", hb.Search.SearchListingsHandler)
		api.GET("/category/:category", hb.Listing.FilterHandler)
		api.GET("/:id", hb.Listing.ShowHandler)
		api.POST("", hb.Listing.CreateHandler)
		api.PATCH("/:id", hb.Listing.UpdateHandler)
		api.DELETE("/:id", hb.Listing.DestroyHandler)
		api.POST("/:id/book", hb.Booking.BookListingHandler)
	}
}

// RegisterStorageRoutes registers the image upload endpoint.
func RegisterStorageRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/storage")
	{
		api.POST("/upload/:bucket", hb.Storage.UploadFileHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Wanderstay"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterListingRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
}
