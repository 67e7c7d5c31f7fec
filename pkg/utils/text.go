// Package utils provides text and number helpers shared by the analyzers,
// the engine and the CLI.
package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// isApostrophe matches the straight and curly apostrophes used in contractions.
func isApostrophe(r rune) bool {
	return r == '\'' || r == '’'
}

// Words splits text into word tokens. Apostrophes inside a word are kept so
// contractions ("don't", "you’re") stay a single token.
func Words(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !isApostrophe(r)
	})
	words := fields[:0]
	for _, f := range fields {
		f = strings.TrimFunc(f, isApostrophe)
		if f != "" {
			words = append(words, f)
		}
	}
	return words
}

// WordCount returns the number of word tokens in text.
func WordCount(text string) int {
	return len(Words(text))
}

// Sentences splits text on terminal punctuation and line breaks, dropping
// empty fragments. A period between two digits ("$19.99") is a decimal
// point, not a sentence end.
func Sentences(text string) []string {
	runes := []rune(text)
	out := []string{}
	start := 0
	for i, r := range runes {
		switch r {
		case '.':
			if i > 0 && i+1 < len(runes) && unicode.IsDigit(runes[i-1]) && unicode.IsDigit(runes[i+1]) {
				continue
			}
		case '!', '?', '\n', '\r', '…':
		default:
			continue
		}
		out = appendSentence(out, runes[start:i])
		start = i + 1
	}
	return appendSentence(out, runes[start:])
}

func appendSentence(out []string, part []rune) []string {
	if p := strings.TrimSpace(string(part)); p != "" && hasAlnum(p) {
		out = append(out, p)
	}
	return out
}

func hasAlnum(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// IsAllCaps reports whether s contains at least two letters and none of them
// are lowercase.
func IsAllCaps(s string) bool {
	letters := 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			if unicode.IsLower(r) {
				return false
			}
			letters++
		}
	}
	return letters >= 2
}

// AllCapsCount counts shouted word tokens such as "FREE" or "WOW".
func AllCapsCount(text string) int {
	n := 0
	for _, w := range Words(text) {
		if IsAllCaps(w) {
			n++
		}
	}
	return n
}

// ContractionCount counts tokens with an apostrophe between letters.
func ContractionCount(text string) int {
	n := 0
	for _, w := range Words(text) {
		if strings.IndexFunc(w, isApostrophe) > 0 {
			n++
		}
	}
	return n
}

// IsEmoji reports whether r falls in one of the common emoji blocks.
func IsEmoji(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1FAFF: // pictographs, emoticons, transport, supplemental
		return true
	case r >= 0x2600 && r <= 0x27BF: // misc symbols, dingbats
		return true
	case r >= 0x1F1E6 && r <= 0x1F1FF: // regional indicators
		return true
	case r == 0x2B50 || r == 0x2B55 || r == 0x2764:
		return true
	}
	return false
}

// EmojiCount counts emoji runes in text.
func EmojiCount(text string) int {
	n := 0
	for _, r := range text {
		if IsEmoji(r) {
			n++
		}
	}
	return n
}

// HasDigit reports whether s contains a decimal digit.
func HasDigit(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

// RuneLen returns the number of runes in s.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// Truncate cuts s to at most maxRunes runes without splitting a rune.
// It reports whether anything was cut.
func Truncate(s string, maxRunes int) (string, bool) {
	if maxRunes <= 0 || utf8.RuneCountInString(s) <= maxRunes {
		return s, false
	}
	i := 0
	for pos := range s {
		if i == maxRunes {
			return s[:pos], true
		}
		i++
	}
	return s, false
}
