// Package lexicon holds the versioned, immutable word and pattern tables the
// analyzers score against. Tables are compiled once per process by Default
// and are safe for concurrent read-only use.
package lexicon

import (
	"sync"

	"github.com/seenimoa/adlens/pkg/models"
)

// Version identifies the table contents. Bump it whenever a table changes so
// records can be traced back to the lexicon that produced them.
const Version = "2025.06.1"

// Tunable thresholds shared by the analyzers and the summary aggregator.
// The values are kept for behavioural compatibility with earlier releases;
// none of them has an empirical derivation.
const (
	// DominanceRatio is how much larger one side must be to dominate the other.
	DominanceRatio = 1.5
	// GapThreshold is the usage share under which a value counts as a gap.
	GapThreshold = 0.10

	StrongWeight   = 3.0
	ModerateWeight = 2.0
	MildWeight     = 1.0

	AmplifierFactor = 1.3
	DowntonerFactor = 0.7
)

// Tiers is an emotion's three weighted word lists.
type Tiers struct {
	Strong   Matcher
	Moderate Matcher
	Mild     Matcher
}

// PersonalitySignals are the three independently weighted signal sources
// of a brand-personality trait.
type PersonalitySignals struct {
	Patterns   []Matcher
	Keywords   Matcher
	Indicators Matcher
}

// AuxIndicator is an auxiliary framing cue bound to a framing style.
type AuxIndicator struct {
	Matcher Matcher
	Style   models.FramingStyle
}

// GapEntry describes an unused value in a competitor summary.
type GapEntry struct {
	Value       string
	Description string
}

// Lexicon is the complete, compiled scoring configuration.
type Lexicon struct {
	Version string

	Emotions   map[models.Emotion]Tiers
	Amplifiers Matcher
	Downtoners Matcher

	Techniques map[models.Technique][]Matcher

	Formality   map[models.Formality][]Matcher
	Voice       map[models.VoiceTrait]Matcher
	Hedges      Matcher
	YouWords    Matcher
	WeWords     Matcher
	Personality map[models.Personality]PersonalitySignals

	Framing    map[models.FramingStyle]Matcher
	FramingAux []AuxIndicator
	Time       map[models.TimeOrientation][]Matcher
	Problem    Matcher
	Solution   Matcher

	TriggerPatterns map[models.Trigger][]Matcher
	TriggerKeywords map[models.Trigger]Matcher

	Positioning map[models.MarketPosition][]Matcher
	Comparisons []Matcher

	EmotionGaps   []GapEntry
	TechniqueGaps []GapEntry
	TriggerGaps   []GapEntry
	VoiceGaps     []GapEntry
}

var (
	defaultOnce sync.Once
	defaultLex  *Lexicon
)

// Default returns the process-wide lexicon, compiling it on first use.
func Default() *Lexicon {
	defaultOnce.Do(func() {
		defaultLex = New()
	})
	return defaultLex
}

// New compiles a fresh copy of the built-in tables.
func New() *Lexicon {
	return &Lexicon{
		Version: Version,

		Emotions:   compileEmotions(),
		Amplifiers: Words(amplifierWords...),
		Downtoners: Words(downtonerWords...),

		Techniques: compilePatternTable(techniquePatterns),

		Formality:   compilePatternTable(formalityPatterns),
		Voice:       compileWordTable(voiceWords),
		Hedges:      Words(hedgeWords...),
		YouWords:    Words("you", "your", "yours", "yourself", "you're", "you'll", "you've"),
		WeWords:     Words("we", "our", "ours", "us", "we're", "we'll", "we've"),
		Personality: compilePersonality(),

		Framing:    compileWordTable(framingWords),
		FramingAux: compileAux(),
		Time:       compileTime(),
		Problem:    Words(problemWords...),
		Solution:   Words(solutionWords...),

		TriggerPatterns: compilePatternTable(triggerPatterns),
		TriggerKeywords: compileWordTable(triggerKeywords),

		Positioning: compilePatternTable(positioningPatterns),
		Comparisons: compilePatterns(comparisonPatterns),

		EmotionGaps:   emotionGaps,
		TechniqueGaps: techniqueGaps,
		TriggerGaps:   triggerGaps,
		VoiceGaps:     voiceGaps,
	}
}

// Stats reports the number of source entries per table, for diagnostics.
func (l *Lexicon) Stats() map[string]int {
	stats := map[string]int{
		"emotion_terms":        0,
		"technique_patterns":   0,
		"formality_patterns":   0,
		"voice_terms":          0,
		"personality_signals":  0,
		"framing_terms":        0,
		"trigger_patterns":     0,
		"trigger_keywords":     0,
		"positioning_patterns": len(comparisonPatterns),
	}
	for _, t := range emotionTable {
		stats["emotion_terms"] += len(t.strong) + len(t.moderate) + len(t.mild)
	}
	for _, ps := range techniquePatterns {
		stats["technique_patterns"] += len(ps)
	}
	for _, ps := range formalityPatterns {
		stats["formality_patterns"] += len(ps)
	}
	for _, ws := range voiceWords {
		stats["voice_terms"] += len(ws)
	}
	for _, p := range personalityTable {
		stats["personality_signals"] += len(p.patterns) + len(p.keywords) + len(p.indicators)
	}
	for _, ws := range framingWords {
		stats["framing_terms"] += len(ws)
	}
	stats["framing_terms"] += len(framingAux)
	for _, ps := range triggerPatterns {
		stats["trigger_patterns"] += len(ps)
	}
	for _, ws := range triggerKeywords {
		stats["trigger_keywords"] += len(ws)
	}
	for _, ps := range positioningPatterns {
		stats["positioning_patterns"] += len(ps)
	}
	return stats
}

func compilePatterns(exprs []string) []Matcher {
	ms := make([]Matcher, len(exprs))
	for i, e := range exprs {
		ms[i] = Pattern(e)
	}
	return ms
}

func compilePatternTable[K comparable](table map[K][]string) map[K][]Matcher {
	out := make(map[K][]Matcher, len(table))
	for k, exprs := range table {
		out[k] = compilePatterns(exprs)
	}
	return out
}

func compileWordTable[K comparable](table map[K][]string) map[K]Matcher {
	out := make(map[K]Matcher, len(table))
	for k, words := range table {
		out[k] = Words(words...)
	}
	return out
}
