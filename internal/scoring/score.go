// Package scoring computes per-candidate match-quality features against the
// job posting attributes carried on each row.
package scoring

import (
	"strconv"

	"github.com/recmetrics/fairprep/internal/table"
)

// Score is one computed feature value. An invalid Score means "no score":
// the inputs were missing or unusable and the feature is absent for that
// row, which is different from scoring zero.
type Score struct {
	Value float64
	Valid bool
}

// NoScore is the no-score sentinel.
var NoScore = Score{}

// Valid wraps a computed value.
func Valid(v float64) Score {
	return Score{Value: v, Valid: true}
}

// Attach writes a score column onto the table. No-score entries stay
// missing.
func Attach(t *table.Table, column string, scores []Score) {
	t.AddColumn(column)
	for i, s := range scores {
		if i >= t.Len() {
			break
		}
		if s.Valid {
			t.Rows[i].Set(column, table.NewValue(strconv.FormatFloat(s.Value, 'f', -1, 64)))
		}
	}
}
