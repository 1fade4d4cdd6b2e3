package scoring

import (
	"context"

	"go.uber.org/zap"

	"github.com/recmetrics/fairprep/internal/geo"
	"github.com/recmetrics/fairprep/internal/table"
)

// ResidenceAddress composes a candidate's residence into one geocodable
// address string, skipping absent parts.
func ResidenceAddress(row table.Row) string {
	return joinPresent(", ",
		row.Get(ColResidenceCity),
		row.Get(ColResidenceProvince),
		row.Get(ColResidenceRegion),
		row.Get(ColResidenceCountry),
	)
}

// DistinctAddresses returns the distinct non-empty residence addresses of
// the table, in row order. Used to estimate geocoding time up front.
func DistinctAddresses(t *table.Table) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, row := range t.Rows {
		addr := ResidenceAddress(row)
		if addr != "" && !seen[addr] {
			out = append(out, addr)
			seen[addr] = true
		}
	}
	return out
}

// GeoScores resolves the reference address once and every candidate's
// residence address through the injected geocoder, and derives the distance
// in kilometers plus a 1/(d+1) proximity score. Unresolvable addresses give
// no score; an unresolvable reference address gives no score to every row.
func (c *Calculator) GeoScores(ctx context.Context, t *table.Table) (distances, proximities []Score) {
	distances = make([]Score, t.Len())
	proximities = make([]Score, t.Len())

	hq, ok, err := c.geocoder.Geocode(ctx, c.policy.HQAddress)
	if err != nil || !ok {
		c.logger.Warn("could not geocode reference address, skipping geographic features",
			zap.String("address", c.policy.HQAddress),
			zap.Error(err),
		)
		return distances, proximities
	}

	for i, row := range t.Rows {
		addr := ResidenceAddress(row)
		if addr == "" {
			continue
		}
		point, ok, err := c.geocoder.Geocode(ctx, addr)
		if err != nil || !ok {
			continue
		}
		km := geo.Distance(point, hq)
		distances[i] = Valid(km)
		proximities[i] = Valid(geo.Proximity(km))
	}
	return distances, proximities
}
