package scoring

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/recmetrics/fairprep/internal/embedding"
	"github.com/recmetrics/fairprep/internal/table"
)

// StudyAreaScores scores the semantic similarity between the candidate's
// field of study and the posting's required field.
func (c *Calculator) StudyAreaScores(ctx context.Context, t *table.Table) []Score {
	cand := make([]string, t.Len())
	job := make([]string, t.Len())
	for i, row := range t.Rows {
		cand[i] = strings.TrimSpace(row.Get(ColStudyArea).String())
		job[i] = strings.TrimSpace(row.Get(ColJobStudyArea).String())
	}
	return c.similarityScores(ctx, "study_area", cand, job)
}

// ProfessionalScores scores the candidate's sector and last role against the
// posting's family and title.
func (c *Calculator) ProfessionalScores(ctx context.Context, t *table.Table) []Score {
	cand := make([]string, t.Len())
	job := make([]string, t.Len())
	for i, row := range t.Rows {
		cand[i] = joinPresent(" | ", row.Get(ColSector), row.Get(ColLastRole))
		job[i] = joinPresent(" | ", row.Get(ColJobFamily), row.Get(ColJobTitle))
	}
	return c.similarityScores(ctx, "professional", cand, job)
}

// ProfileSimilarityScores scores the full candidate description against the
// full posting description.
func (c *Calculator) ProfileSimilarityScores(ctx context.Context, t *table.Table) []Score {
	cand := make([]string, t.Len())
	job := make([]string, t.Len())
	for i, row := range t.Rows {
		cand[i] = CandidateText(row)
		job[i] = JobText(row)
	}
	return c.similarityScores(ctx, "profile", cand, job)
}

// similarityScores encodes the distinct texts of both sides in one batch and
// scores each row pair by cosine similarity. Rows with an empty side get no
// score; an encoding failure degrades the whole feature to no score instead
// of aborting the batch.
func (c *Calculator) similarityScores(ctx context.Context, feature string, cand, job []string) []Score {
	scores := make([]Score, len(cand))

	distinct := make([]string, 0)
	seen := make(map[string]bool)
	for _, side := range [][]string{cand, job} {
		for _, text := range side {
			if text != "" && !seen[text] {
				distinct = append(distinct, text)
				seen[text] = true
			}
		}
	}
	if len(distinct) == 0 {
		return scores
	}

	vectors, err := c.embeddings.Embed(ctx, distinct)
	if err != nil {
		c.logger.Warn("embedding failed, feature left unscored",
			zap.String("feature", feature),
			zap.Int("texts", len(distinct)),
			zap.Error(err),
		)
		return scores
	}

	byText := make(map[string][]float32, len(distinct))
	for i, text := range distinct {
		byText[text] = vectors[i]
	}

	for i := range cand {
		if cand[i] == "" || job[i] == "" {
			continue
		}
		scores[i] = Valid(embedding.Cosine(byText[cand[i]], byText[job[i]]))
	}
	return scores
}
