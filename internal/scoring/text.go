package scoring

import (
	"fmt"
	"strings"

	"github.com/recmetrics/fairprep/internal/table"
)

// CandidateText renders a candidate's background as one natural-language
// description, concatenating only the fields present in a fixed order.
// Returns "" when nothing is known about the candidate.
func CandidateText(row table.Row) string {
	var parts []string

	title := row.Get(ColStudyTitle)
	area := row.Get(ColStudyArea)
	switch {
	case !title.IsMissing() && !area.IsMissing():
		parts = append(parts, fmt.Sprintf("%s in %s", title.Raw, area.Raw))
	case !title.IsMissing():
		parts = append(parts, "Studied "+title.Raw)
	case !area.IsMissing():
		parts = append(parts, "Studied in "+area.Raw)
	}

	if v := row.Get(ColSector); !v.IsMissing() {
		parts = append(parts, fmt.Sprintf("Worked in the %s sector", v.Raw))
	}
	if v := row.Get(ColLastRole); !v.IsMissing() {
		parts = append(parts, "Last held the role of "+v.Raw)
	}
	if v := row.Get(ColYearsExperience); !v.IsMissing() {
		parts = append(parts, fmt.Sprintf("with %s years of experience", v.Raw))
	}
	if v := row.Get(ColTag); !v.IsMissing() {
		parts = append(parts, "Key skills include: "+v.Raw)
	}

	return sentence(parts)
}

// JobText renders the posting's requirements the same way.
func JobText(row table.Row) string {
	var parts []string

	if v := row.Get(ColJobTitle); !v.IsMissing() {
		parts = append(parts, "Job title: "+v.Raw)
	}
	if v := row.Get(ColJobFamily); !v.IsMissing() {
		parts = append(parts, "Department: "+v.Raw)
	}
	if v := row.Get(ColRecruitmentRequest); !v.IsMissing() {
		parts = append(parts, "Recruitment context: "+v.Raw)
	}
	if v := row.Get(ColJobDescription); !v.IsMissing() {
		parts = append(parts, "Job description: "+v.Raw)
	}
	if v := row.Get(ColCandidateProfile); !v.IsMissing() {
		parts = append(parts, "Ideal candidate profile: "+v.Raw)
	}

	level := row.Get(ColStudyLevel)
	area := row.Get(ColJobStudyArea)
	switch {
	case !level.IsMissing() && !area.IsMissing():
		parts = append(parts, fmt.Sprintf("Educational requirement: %s in %s", level.Raw, area.Raw))
	case !level.IsMissing():
		parts = append(parts, "Educational requirement: "+level.Raw)
	case !area.IsMissing():
		parts = append(parts, "Field of study required: "+area.Raw)
	}

	if v := row.Get(ColJobYearsExperience); !v.IsMissing() {
		parts = append(parts, fmt.Sprintf("Requires %s years of experience", v.Raw))
	}

	return sentence(parts)
}

func sentence(parts []string) string {
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, ". ") + "."
}
