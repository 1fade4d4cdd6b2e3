package table

import (
	"strings"
	"unicode"
)

// SanitizeHeaders trims each column name and strips non-ASCII runes from it.
// Export files produced upstream carry BOMs, non-breaking spaces and stray
// accents in their headers; downstream stages match column names verbatim,
// so they are cleaned once on load.
func SanitizeHeaders(columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = sanitizeHeader(c)
	}
	return out
}

func sanitizeHeader(s string) string {
	s = strings.TrimSpace(s)
	var b strings.Builder
	for _, r := range s {
		if r <= unicode.MaxASCII {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
