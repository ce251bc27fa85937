package viewmodel

import (
	"strconv"
	"strings"
)

// formatNumber renders v in a locale-free decimal form. maxFrac caps the
// fractional digits; pass -1 for the shortest round-trip representation.
// Trailing zeros and a dangling decimal point are trimmed either way, so
// 2.0 renders as "2" and 2.500 as "2.5".
func formatNumber(v float64, maxFrac int) string {
	s := strconv.FormatFloat(v, 'f', maxFrac, 64)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	// FormatFloat can leave "-0" behind for tiny negatives rounded away.
	if s == "-0" {
		s = "0"
	}
	return s
}
