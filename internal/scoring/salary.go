package scoring

import "github.com/recmetrics/fairprep/internal/table"

// defaultSalaryScale stands in when the posting's salary range is degenerate
// and its minimum bound is unusable as a scale.
const defaultSalaryScale = 1000.0

// SalaryFitScore scores how a salary fits the posting's range: 1.0 anywhere
// inside [minimum, maximum] inclusive, otherwise the signed distance from
// the nearest bound scaled by the range size (falling back to the minimum
// bound, then defaultSalaryScale, when the range is degenerate). Any missing
// input gives no score.
func SalaryFitScore(salary, minimum, maximum table.Value) Score {
	s, ok := salary.Float()
	if !ok {
		return NoScore
	}
	lo, ok := minimum.Float()
	if !ok {
		return NoScore
	}
	hi, ok := maximum.Float()
	if !ok {
		return NoScore
	}

	if s >= lo && s <= hi {
		return Valid(1.0)
	}

	var distance float64
	if s < lo {
		distance = s - lo
	} else {
		distance = s - hi
	}

	scale := hi - lo
	if scale <= 0 {
		scale = lo
	}
	if scale <= 0 {
		scale = defaultSalaryScale
	}
	return Valid(distance / scale)
}

// SalaryScores maps SalaryFitScore over the table, using the expected or
// the current salary per policy.
func (c *Calculator) SalaryScores(t *table.Table) []Score {
	column := ColExpectedRal
	if c.policy.UseCurrentSalary {
		column = ColCurrentRal
	}

	scores := make([]Score, t.Len())
	for i, row := range t.Rows {
		scores[i] = SalaryFitScore(row.Get(column), row.Get(ColMinimumRal), row.Get(ColMaximumRal))
	}
	return scores
}
