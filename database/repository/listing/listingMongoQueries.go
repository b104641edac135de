package listingRepo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"wanderstay/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindByCategory returns all listings assigned to the given category.
func (r *MongoListingRepo) FindByCategory(category string) ([]models.Listing, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{"category": category}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to filter listings by category %s: %w", category, err)
	}
	defer cursor.Close(ctx)

	var listings []models.Listing
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, fmt.Errorf("failed to decode listings: %w", err)
	}
	return listings, nil
}

// FindBySubstring matches term as a case-insensitive substring of the named
// field. The term is quoted so regex metacharacters in user input are literal.
func (r *MongoListingRepo) FindBySubstring(field models.SearchField, term string, newestFirst bool) ([]models.Listing, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{
		string(field): bson.M{"$regex": regexp.QuoteMeta(term), "$options": "i"},
	}
	opts := options.Find()
	if newestFirst {
		opts.SetSort(bson.D{{Key: "_id", Value: -1}})
	}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search listings by %s: %w", field, err)
	}
	defer cursor.Close(ctx)

	var listings []models.Listing
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, fmt.Errorf("failed to decode listings: %w", err)
	}
	return listings, nil
}

// FindByMaxPrice returns listings priced at or below ceiling, cheapest first.
func (r *MongoListingRepo) FindByMaxPrice(ceiling int64) ([]models.Listing, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{"price": bson.M{"$lte": ceiling}}
	opts := options.Find().SetSort(bson.D{{Key: "price", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search listings by max price %d: %w", ceiling, err)
	}
	defer cursor.Close(ctx)

	var listings []models.Listing
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, fmt.Errorf("failed to decode listings: %w", err)
	}
	return listings, nil
}
