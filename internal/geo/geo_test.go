package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	milano := Point{Lat: 45.4642, Lon: 9.19}
	roma := Point{Lat: 41.9028, Lon: 12.4964}

	assert.InDelta(t, 0.0, Distance(milano, milano), 1e-9)

	km := Distance(milano, roma)
	assert.Greater(t, km, 400.0)
	assert.Less(t, km, 600.0)
}

func TestProximity(t *testing.T) {
	assert.InDelta(t, 1.0, Proximity(0), 1e-9)
	assert.InDelta(t, 0.5, Proximity(1), 1e-9)
	assert.InDelta(t, 1.0/11.0, Proximity(10), 1e-9)

	// Negative distances cannot happen, but never score above perfect.
	assert.Equal(t, 1.0, Proximity(-3))
}
