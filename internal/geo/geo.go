// Package geo resolves candidate residence addresses into coordinates and
// turns distance from the hiring location into a proximity feature.
package geo

import (
	"context"

	"github.com/umahmood/haversine"
)

// Point is a latitude/longitude pair in degrees.
type Point struct {
	Lat float64
	Lon float64
}

// Geocoder resolves a free-form address into coordinates. ok is false when
// the address could not be resolved; err is reserved for transport failures.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (p Point, ok bool, err error)
}

// Distance returns the great-circle distance between two points in
// kilometers.
func Distance(a, b Point) float64 {
	_, km := haversine.Distance(
		haversine.Coord{Lat: a.Lat, Lon: a.Lon},
		haversine.Coord{Lat: b.Lat, Lon: b.Lon},
	)
	return km
}

// Proximity maps a distance in kilometers onto (0, 1]: 1 at zero distance,
// falling off hyperbolically. Negative distances clamp to 1.
func Proximity(distanceKm float64) float64 {
	if distanceKm < 0 {
		return 1.0
	}
	return 1.0 / (distanceKm + 1.0)
}
