package scoring

import (
	"github.com/recmetrics/fairprep/internal/table"
)

const overallRatingMax = 5.0

// OverallScores averages the named score columns per row, skipping columns
// that are absent or hold no value. A row with no usable column gets no
// score. When the scaled overall rating is requested but the table only
// carries the raw rating, the scaled value is derived from it on the fly.
func OverallScores(t *table.Table, scoreColumns []string) []Score {
	scores := make([]Score, t.Len())
	deriveScaled := false
	for _, col := range scoreColumns {
		if col == ColOverallScaled && !t.HasColumn(ColOverallScaled) && t.HasColumn(ColOverall) {
			deriveScaled = true
		}
	}

	for i, row := range t.Rows {
		sum := 0.0
		count := 0
		for _, col := range scoreColumns {
			v := row.Get(col)
			if col == ColOverallScaled && deriveScaled {
				raw, ok := row.Get(ColOverall).Float()
				if !ok {
					continue
				}
				sum += raw / overallRatingMax
				count++
				continue
			}
			f, ok := v.Float()
			if !ok {
				continue
			}
			sum += f
			count++
		}
		if count > 0 {
			scores[i] = Valid(sum / float64(count))
		}
	}
	return scores
}
