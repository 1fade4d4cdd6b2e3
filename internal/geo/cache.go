package geo

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Nominatim allows roughly one request per second. Failures back off for a
// shorter time since no result was served.
const (
	successDelay = 1100 * time.Millisecond
	failureDelay = 500 * time.Millisecond
)

type cacheEntry struct {
	point Point
	ok    bool
}

// CachedGeocoder memoizes lookups by address string for the lifetime of the
// process, failures included so a failing address is not retried within one
// run, and pauses after every uncached network call to respect the service
// rate limit. Transport errors are logged and degrade to "not resolved".
type CachedGeocoder struct {
	inner   Geocoder
	logger  *zap.Logger
	entries map[string]cacheEntry
	wait    func(context.Context, time.Duration) error

	hits   int
	misses int
}

// NewCachedGeocoder wraps a geocoder with the process-lifetime cache.
func NewCachedGeocoder(inner Geocoder, logger *zap.Logger) *CachedGeocoder {
	return &CachedGeocoder{
		inner:   inner,
		logger:  logger,
		entries: make(map[string]cacheEntry),
		wait:    waitFor,
	}
}

func (c *CachedGeocoder) Geocode(ctx context.Context, address string) (Point, bool, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return Point{}, false, nil
	}

	if entry, cached := c.entries[address]; cached {
		c.hits++
		return entry.point, entry.ok, nil
	}
	c.misses++

	point, ok, err := c.inner.Geocode(ctx, address)
	if err != nil {
		c.logger.Warn("geocoding failed",
			zap.String("address", address),
			zap.Error(err),
		)
		c.entries[address] = cacheEntry{}
		if err := c.wait(ctx, successDelay); err != nil {
			return Point{}, false, err
		}
		return Point{}, false, nil
	}
	if !ok {
		c.logger.Debug("address not resolved", zap.String("address", address))
		c.entries[address] = cacheEntry{}
		if err := c.wait(ctx, failureDelay); err != nil {
			return Point{}, false, err
		}
		return Point{}, false, nil
	}

	c.entries[address] = cacheEntry{point: point, ok: true}
	if err := c.wait(ctx, successDelay); err != nil {
		return point, true, err
	}
	return point, true, nil
}

// Stats reports cache hits and misses accumulated so far.
func (c *CachedGeocoder) Stats() (hits, misses int) {
	return c.hits, c.misses
}
