package geo

import (
	"context"

	geoapi "github.com/codingsince1985/geo-golang"
	"github.com/codingsince1985/geo-golang/openstreetmap"
)

// Nominatim geocodes through the OpenStreetMap Nominatim service.
type Nominatim struct {
	geocoder geoapi.Geocoder
}

// NewNominatim creates a Nominatim-backed geocoder.
func NewNominatim() *Nominatim {
	return &Nominatim{geocoder: openstreetmap.Geocoder()}
}

func (n *Nominatim) Geocode(ctx context.Context, address string) (Point, bool, error) {
	select {
	case <-ctx.Done():
		return Point{}, false, ctx.Err()
	default:
	}

	location, err := n.geocoder.Geocode(address)
	if err != nil {
		return Point{}, false, err
	}
	if location == nil {
		return Point{}, false, nil
	}
	return Point{Lat: location.Lat, Lon: location.Lng}, true, nil
}
