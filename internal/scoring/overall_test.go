package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverallScores(t *testing.T) {
	tbl := newRows(t, []string{ColStudyTitleScore, ColSalaryFitScore}, []map[string]string{
		{ColStudyTitleScore: "0.5", ColSalaryFitScore: "1"},
		{ColStudyTitleScore: "0.5"},
		{},
	})

	scores := OverallScores(tbl, []string{ColStudyTitleScore, ColSalaryFitScore})

	require.Len(t, scores, 3)
	assert.Equal(t, Valid(0.75), scores[0])
	assert.Equal(t, Valid(0.5), scores[1])
	assert.Equal(t, NoScore, scores[2])
}

func TestOverallScoresDerivesScaledRating(t *testing.T) {
	tbl := newRows(t, []string{ColStudyTitleScore, ColOverall}, []map[string]string{
		{ColStudyTitleScore: "0.5", ColOverall: "4"},
		{ColStudyTitleScore: "0.5"},
	})

	scores := OverallScores(tbl, []string{ColStudyTitleScore, ColOverallScaled})

	// 4 out of 5 scales to 0.8; the mean with 0.5 is 0.65.
	assert.Equal(t, Valid(0.65), scores[0])
	assert.Equal(t, Valid(0.5), scores[1])
}

func TestOverallScoresPrefersExistingScaledColumn(t *testing.T) {
	tbl := newRows(t, []string{ColOverallScaled, ColOverall}, []map[string]string{
		{ColOverallScaled: "0.6", ColOverall: "5"},
	})

	scores := OverallScores(tbl, []string{ColOverallScaled})

	assert.Equal(t, Valid(0.6), scores[0])
}

func TestAttach(t *testing.T) {
	tbl := newRows(t, []string{"ID"}, []map[string]string{
		{"ID": "1"},
		{"ID": "2"},
	})

	Attach(tbl, ColStudyTitleScore, []Score{Valid(0.25), NoScore})

	require.True(t, tbl.HasColumn(ColStudyTitleScore))
	assert.Equal(t, "0.25", tbl.Rows[0].Get(ColStudyTitleScore).String())
	assert.True(t, tbl.Rows[1].Get(ColStudyTitleScore).IsMissing())
}
