package table

import (
	"strconv"
	"strings"
)

// Value is a nullable table cell. A cell is either present with a raw string
// payload or missing; arithmetic helpers report absence instead of guessing.
type Value struct {
	Raw   string
	Valid bool
}

// Missing is the designated missing-value constant used across the pipeline.
var Missing = Value{}

// NewValue builds a Value from a raw cell. Blank and whitespace-only cells
// are treated as missing.
func NewValue(raw string) Value {
	if strings.TrimSpace(raw) == "" {
		return Missing
	}
	return Value{Raw: raw, Valid: true}
}

// String returns the raw payload, or the empty string when missing.
func (v Value) String() string {
	if !v.Valid {
		return ""
	}
	return v.Raw
}

// IsMissing reports whether the cell holds no value.
func (v Value) IsMissing() bool {
	return !v.Valid
}

// Float parses the cell as a number. The second return is false when the
// cell is missing or not numeric.
func (v Value) Float() (float64, bool) {
	if !v.Valid {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v.Raw), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
