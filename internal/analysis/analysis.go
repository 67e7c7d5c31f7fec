// Package analysis holds helpers shared by the six dimension analyzers in
// its subpackages. Every analyzer is a pure function of its input text and
// the read-only lexicon, so one analyzer value may serve concurrent callers.
package analysis

import (
	"sort"
	"strings"

	"github.com/seenimoa/adlens/internal/lexicon"
)

// Rank orders the members of order by descending score. Ties keep their
// position in order, which is each enum's documented priority.
func Rank[K comparable](order []K, score func(K) float64) []K {
	ranked := append([]K(nil), order...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return score(ranked[i]) > score(ranked[j])
	})
	return ranked
}

// Dominance compares two tallies with the asymmetric dominance rule:
// +1 when a > ratio·b, -1 when b > ratio·a, 0 otherwise (including 0 vs 0).
func Dominance(a, b float64) int {
	switch {
	case a == 0 && b == 0:
		return 0
	case a > lexicon.DominanceRatio*b:
		return 1
	case b > lexicon.DominanceRatio*a:
		return -1
	}
	return 0
}

// Signal formats an explainability entry, e.g. "joy:amazing".
func Signal(category, match string) string {
	return category + ":" + strings.Join(strings.Fields(strings.ToLower(match)), " ")
}
