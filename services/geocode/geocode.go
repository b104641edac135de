package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"wanderstay/models"
	"wanderstay/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Geocoder resolves a free-form place query to a GeoJSON point.
type Geocoder interface {
	Forward(ctx context.Context, query string) (*models.GeoPoint, error)
}

// mapboxResponse mirrors the part of the Mapbox forward-geocoding payload we read.
type mapboxResponse struct {
	Features []struct {
		Geometry models.GeoPoint `json:"geometry"`
	} `json:"features"`
}

// MapboxGeocoder implements Geocoder against the Mapbox Geocoding API, with a
// Redis cache so repeated lookups of the same place skip the API round trip.
type MapboxGeocoder struct {
	Token  string
	Client *http.Client
	Cache  *redis.Client
	Logger *zap.Logger
}

func NewMapboxGeocoder(token string, cache *redis.Client, logger *zap.Logger) *MapboxGeocoder {
	return &MapboxGeocoder{
		Token:  token,
		Client: &http.Client{Timeout: 10 * time.Second},
		Cache:  cache,
		Logger: logger,
	}
}

func (g *MapboxGeocoder) Forward(ctx context.Context, query string) (*models.GeoPoint, error) {
	cacheKey := utils.GeocodeCachePrefix + query
	if g.Cache != nil {
		if cached, err := g.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var point models.GeoPoint
			if err := json.Unmarshal([]byte(cached), &point); err == nil {
				return &point, nil
			}
		}
	}

	endpoint := fmt.Sprintf(
		"https://api.mapbox.com/geocoding/v5/mapbox.places/%s.json?access_token=%s&limit=1",
		url.PathEscape(query), url.QueryEscape(g.Token),
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("geocode request: %w", err)
	}

	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode request failed with status %d", resp.StatusCode)
	}

	var decoded mapboxResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("geocode response decode: %w", err)
	}
	if len(decoded.Features) == 0 {
		return nil, fmt.Errorf("no geocoding result for %q", query)
	}
	point := decoded.Features[0].Geometry

	if g.Cache != nil {
		data, _ := json.Marshal(point)
		if err := g.Cache.Set(ctx, cacheKey, data, utils.GeocodeCacheTTL).Err(); err != nil {
			g.Logger.Debug("failed to cache geocode result", zap.String("query", query), zap.Error(err))
		}
	}
	return &point, nil
}
