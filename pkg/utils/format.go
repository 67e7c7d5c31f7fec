package utils

import (
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// FormatPct formats a 0..1 share as a percentage.
// e.g., 0.425 → "42.5%", 1 → "100%"
func FormatPct(share float64) string {
	return formatWithDecimals(share*100, 1) + "%"
}

// FormatScore formats a 1-10 score, e.g. 7.26 → "7.3/10", 7 → "7/10".
func FormatScore(score float64) string {
	return formatWithDecimals(score, 1) + "/10"
}

// Title upper-cases the first letter of s.
func Title(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// JoinAnd joins items as prose: "a", "a and b", "a, b and c".
func JoinAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}

// formatWithDecimals formats a number with up to the given decimal places,
// removing trailing zeros.
func formatWithDecimals(n float64, places int) string {
	s := fmt.Sprintf("%.*f", places, n)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return s
}
