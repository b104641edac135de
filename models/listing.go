package models

import "time"

// GeoPoint is a GeoJSON point as stored in MongoDB.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`               // Always "Point"
	Coordinates []float64 `bson:"coordinates" json:"coordinates"` // [longitude, latitude]
}

// ListingImage holds the hosted image reference for a listing.
type ListingImage struct {
	URL      string `bson:"url" json:"url"`
	Filename string `bson:"filename" json:"filename"`
}

// Owner identifies the person a booking notification is addressed to.
type Owner struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
}

// Listing represents a lodging listing document.
type Listing struct {
	ID          string       `bson:"id" json:"id"`
	Title       string       `bson:"title" json:"title"`
	Description string       `bson:"description" json:"description"`
	Image       ListingImage `bson:"image" json:"image"`
	Price       int64        `bson:"price" json:"price"`
	Category    string       `bson:"category" json:"category"`
	Country     string       `bson:"country" json:"country"`
	Location    string       `bson:"location" json:"location"`
	Geometry    GeoPoint     `bson:"geometry" json:"geometry"`
	Owner       Owner        `bson:"owner" json:"owner"`
	CreatedAt   time.Time    `bson:"created_at" json:"created_at"`
}
