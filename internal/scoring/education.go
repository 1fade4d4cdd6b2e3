package scoring

import "github.com/recmetrics/fairprep/internal/table"

// educationLevels is the fixed ladder of attainable education levels, lowest
// first. Values are matched verbatim against the export's vocabulary.
var educationLevels = []string{
	"Middle school diploma",
	"High school graduation",
	"Professional qualification",
	"Three-year degree",
	"Five-year degree",
	"master's degree",
	"Doctorate",
}

var educationRank = func() map[string]int {
	ranks := make(map[string]int, len(educationLevels))
	for i, level := range educationLevels {
		ranks[level] = i
	}
	return ranks
}()

// EducationScore compares the candidate's attained level with the job's
// required level on the fixed ladder. The score is the signed rank distance
// normalized by the ladder span, so overqualification scores positive.
// Missing or unrecognized levels give no score.
func EducationScore(candidate, required table.Value) Score {
	if candidate.IsMissing() || required.IsMissing() {
		return NoScore
	}
	cr, ok := educationRank[candidate.Raw]
	if !ok {
		return NoScore
	}
	rr, ok := educationRank[required.Raw]
	if !ok {
		return NoScore
	}
	span := float64(len(educationLevels) - 1)
	return Valid(float64(cr-rr) / span)
}

// EducationScores maps EducationScore over the table.
func (c *Calculator) EducationScores(t *table.Table) []Score {
	scores := make([]Score, t.Len())
	for i, row := range t.Rows {
		scores[i] = EducationScore(row.Get(ColStudyTitle), row.Get(ColStudyLevel))
	}
	return scores
}
