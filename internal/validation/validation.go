// Package validation holds pure request-payload validators. Functions return
// results, never errors or panics, so handlers can translate failures into
// field-level client responses.
package validation

import (
	"math"
	"regexp"
	"strings"
	"time"
)

// dateLayout is the only accepted calendar date format.
const dateLayout = "2006-01-02"

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Result is the outcome of a composite validation. Errors maps field names
// to human-readable messages and is nil when Valid is true.
type Result struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors,omitempty"`
}

func valid() Result {
	return Result{Valid: true}
}

// fail records a field error, lazily allocating the map.
func (r *Result) fail(field, message string) {
	if r.Errors == nil {
		r.Errors = make(map[string]string)
	}
	r.Valid = false
	r.Errors[field] = message
}

// merge folds another result's field errors into r under a prefix.
func (r *Result) merge(prefix string, other Result) {
	for field, msg := range other.Errors {
		r.fail(prefix+"."+field, msg)
	}
}

// IsValidDateFormat reports whether s is a YYYY-MM-DD string naming a real
// calendar date. The 4-2-2 digit grouping is checked first, then the value
// must parse; day-of-month overflow (e.g. 2026-02-31) is rejected rather
// than normalized.
func IsValidDateFormat(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// IsValidDateRange reports whether end is the same day as or after start.
// Both inputs must already be valid date strings.
func IsValidDateRange(start, end string) bool {
	s, err := time.Parse(dateLayout, start)
	if err != nil {
		return false
	}
	e, err := time.Parse(dateLayout, end)
	if err != nil {
		return false
	}
	return !e.Before(s)
}

// IsValidEmail is a simple presence check for "@" and ".", not full RFC
// validation.
func IsValidEmail(s string) bool {
	return strings.Contains(s, "@") && strings.Contains(s, ".")
}

// IsNonEmptyString reports whether s has content after trimming whitespace.
func IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsPositiveNumber reports whether n is strictly greater than zero and not NaN.
func IsPositiveNumber(n float64) bool {
	return !math.IsNaN(n) && n > 0
}

// IsNonNegativeInt reports whether n is zero or greater.
func IsNonNegativeInt(n int) bool {
	return n >= 0
}

// IsValidLongitude reports whether lon is within [-180, 180].
func IsValidLongitude(lon float64) bool {
	return !math.IsNaN(lon) && lon >= -180 && lon <= 180
}

// IsValidLatitude reports whether lat is within [-90, 90].
func IsValidLatitude(lat float64) bool {
	return !math.IsNaN(lat) && lat >= -90 && lat <= 90
}
