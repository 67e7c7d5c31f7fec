package lexicon

import (
	"regexp"
	"sort"
	"strings"
)

// Matcher is a compiled, case-insensitive matcher. All matchers use Go's
// RE2 engine, so matching time is linear in the input length.
type Matcher struct {
	// Name is the source pattern or the first term of a word list.
	Name string
	re   *regexp.Regexp
}

// Pattern compiles a regular expression. Word boundaries must be spelled out
// in expr.
func Pattern(expr string) Matcher {
	return Matcher{Name: expr, re: regexp.MustCompile(`(?i)` + expr)}
}

// Words compiles a list of literal words or phrases into a single
// alternation. Longer terms are tried first so phrases win over their
// prefixes ("kind of" before "kind"). Straight apostrophes also match curly
// ones and spaces match any whitespace run.
func Words(terms ...string) Matcher {
	sorted := make([]string, 0, len(terms))
	for _, t := range terms {
		if t = strings.TrimSpace(t); t != "" {
			sorted = append(sorted, t)
		}
	}
	if len(sorted) == 0 {
		return Matcher{}
	}
	name := sorted[0]
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	alts := make([]string, len(sorted))
	for i, t := range sorted {
		alts[i] = termExpr(t)
	}
	return Matcher{
		Name: name,
		re:   regexp.MustCompile(`(?i)(?:` + strings.Join(alts, "|") + `)`),
	}
}

// termExpr escapes a literal term and adds word boundaries on the sides
// that start or end with a word character.
func termExpr(term string) string {
	expr := regexp.QuoteMeta(strings.ToLower(term))
	expr = strings.ReplaceAll(expr, "'", `['’]`)
	expr = strings.ReplaceAll(expr, " ", `\s+`)
	if isWordByte(term[0]) {
		expr = `\b` + expr
	}
	if isWordByte(term[len(term)-1]) {
		expr += `\b`
	}
	return expr
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// Valid reports whether the matcher was compiled from at least one term.
func (m Matcher) Valid() bool {
	return m.re != nil
}

// FindAll returns every non-overlapping match, lower-cased.
func (m Matcher) FindAll(text string) []string {
	if m.re == nil {
		return nil
	}
	found := m.re.FindAllString(text, -1)
	for i, f := range found {
		found[i] = strings.ToLower(f)
	}
	return found
}

// FindAllIndex returns the byte offsets of every non-overlapping match.
func (m Matcher) FindAllIndex(text string) [][]int {
	if m.re == nil {
		return nil
	}
	return m.re.FindAllStringIndex(text, -1)
}

// Count returns the number of non-overlapping matches.
func (m Matcher) Count(text string) int {
	return len(m.FindAllIndex(text))
}

// CountAll sums Count over a list of matchers.
func CountAll(ms []Matcher, text string) int {
	n := 0
	for _, m := range ms {
		n += m.Count(text)
	}
	return n
}

// FindEach returns the matches of every matcher, in matcher order.
func FindEach(ms []Matcher, text string) []string {
	var out []string
	for _, m := range ms {
		out = append(out, m.FindAll(text)...)
	}
	return out
}
