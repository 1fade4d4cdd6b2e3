package scoring

import (
	"strconv"
	"strings"

	"github.com/recmetrics/fairprep/internal/table"
)

// ExperiencePolicy selects the score emitted when a job's required
// experience is missing. The two historical variants of this feature
// disagreed, so the choice is explicit.
type ExperiencePolicy string

const (
	// ExperienceMissingZero scores 0 when the requirement is missing.
	ExperienceMissingZero ExperiencePolicy = "zero"
	// ExperienceMissingNoScore emits the no-score sentinel instead.
	ExperienceMissingNoScore ExperiencePolicy = "noscore"
)

// ParseExperience turns an experience cell like "[0-1]", "[+10]" or
// "[3-5] | [1-3]" into years: midpoint of a range, the bare number of a
// "+N", and the maximum over |-separated alternatives. Unparseable cells
// report false.
func ParseExperience(v table.Value) (float64, bool) {
	if v.IsMissing() {
		return 0, false
	}

	var best float64
	found := false
	for _, part := range strings.Split(v.Raw, "|") {
		part = strings.TrimSpace(part)
		part = strings.ReplaceAll(part, "[", "")
		part = strings.ReplaceAll(part, "]", "")
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		var value float64
		if strings.Contains(part, "-") && !strings.HasPrefix(part, "+") {
			bounds := strings.SplitN(part, "-", 2)
			low, errLow := strconv.ParseFloat(strings.TrimSpace(bounds[0]), 64)
			high, errHigh := strconv.ParseFloat(strings.TrimSpace(bounds[1]), 64)
			if errLow != nil || errHigh != nil {
				continue
			}
			value = (low + high) / 2
		} else {
			n, err := strconv.ParseFloat(strings.TrimPrefix(part, "+"), 64)
			if err != nil {
				continue
			}
			value = n
		}

		if !found || value > best {
			best = value
		}
		found = true
	}
	return best, found
}

// ExperienceScores scores the gap between candidate and required years of
// experience, scaled by the observed global range across both columns so
// the score is relative to the dataset. A degenerate range counts as 1.
func (c *Calculator) ExperienceScores(t *table.Table) []Score {
	candidate := make([]float64, t.Len())
	candidateOK := make([]bool, t.Len())
	required := make([]float64, t.Len())
	requiredOK := make([]bool, t.Len())

	var min, max float64
	any := false
	observe := func(v float64) {
		if !any {
			min, max = v, v
			any = true
			return
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	for i, row := range t.Rows {
		if v, ok := ParseExperience(row.Get(ColYearsExperience)); ok {
			candidate[i], candidateOK[i] = v, true
			observe(v)
		}
		if v, ok := ParseExperience(row.Get(ColJobYearsExperience)); ok {
			required[i], requiredOK[i] = v, true
			observe(v)
		}
	}

	span := max - min
	if span == 0 {
		span = 1
	}

	scores := make([]Score, t.Len())
	for i := range t.Rows {
		switch {
		case !requiredOK[i]:
			if c.policy.ExperienceMissing == ExperienceMissingNoScore {
				scores[i] = NoScore
			} else {
				scores[i] = Valid(0)
			}
		case !candidateOK[i]:
			scores[i] = NoScore
		default:
			scores[i] = Valid((candidate[i] - required[i]) / span)
		}
	}
	return scores
}
