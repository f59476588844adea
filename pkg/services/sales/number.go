package sales

import (
	"regexp"
	"strconv"
)

var nonNumeric = regexp.MustCompile(`[^\d.]`)

// CleanNumber strips every character that is not a digit or a dot, so
// currency prefixes, thousands separators and quotes fall away.
// "C$1,250.00" becomes "1250.00"; a string with no digits becomes "".
func CleanNumber(s string) string {
	return nonNumeric.ReplaceAllString(s, "")
}

// ParseAmount is the lenient numeric coercion used for money fields:
// clean first, then parse. An empty or unparseable result is zero,
// never an error.
func ParseAmount(s string) float64 {
	cleaned := CleanNumber(s)
	if cleaned == "" {
		return 0
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return f
}
