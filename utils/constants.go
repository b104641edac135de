// File: utils/constants.go
package utils

import "time"

// GeocodeCachePrefix is the prefix used for Redis geocode cache keys.
const GeocodeCachePrefix = "geocode:"

// GeocodeCacheTTL is the time-to-live for cached geocoding results.
const GeocodeCacheTTL = 24 * time.Hour
