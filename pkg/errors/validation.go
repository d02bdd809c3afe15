package errors

import (
	"math"
	"strings"
	"unicode"
)

// maxNameLength bounds tubular names so labels and spreadsheet cells stay readable.
const maxNameLength = 128

// ValidateName validates a tubular name.
//
// The rules are:
//   - No empty or whitespace-only names
//   - No control characters (names end up in SVG text and XLSX cells)
//   - Maximum length of 128 characters
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidInput, "name cannot be empty")
	}

	if len(name) > maxNameLength {
		return New(ErrCodeInvalidInput, "name too long (max %d characters)", maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "name %q contains control characters", name)
		}
	}

	return nil
}

// ValidateFinite rejects NaN and infinite values for the named field.
func ValidateFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidGeometry, "%s must be a finite number, got %v", field, v)
	}
	return nil
}
