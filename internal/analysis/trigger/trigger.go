// Package trigger measures which psychological motivations ad copy appeals
// to, such as belonging, status or curiosity.
package trigger

import (
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/seenimoa/adlens/internal/analysis"
	"github.com/seenimoa/adlens/internal/lexicon"
	"github.com/seenimoa/adlens/pkg/models"
	"github.com/seenimoa/adlens/pkg/utils"
)

const (
	patternWeight   = 2.0
	keywordWeight   = 0.5
	maxIntensity    = 10.0
	detectThreshold = 1.0

	lengthDivisor  = 20.0
	maxLengthBonus = 0.4
	earlyBonus     = 0.3
	earlyFraction  = 0.2
	digitBonus     = 0.2
	emphasisBonus  = 0.2
)

// Analyzer measures trigger intensity.
type Analyzer struct {
	lex *lexicon.Lexicon
	log *zap.Logger
}

// New creates a trigger analyzer. A nil lexicon selects lexicon.Default and
// a nil logger discards output.
func New(lex *lexicon.Lexicon, log *zap.Logger) *Analyzer {
	if lex == nil {
		lex = lexicon.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{lex: lex, log: log.Named("trigger")}
}

// Analyze returns the triggers present in text, strongest first.
func (a *Analyzer) Analyze(text string) models.TriggerResult {
	res := models.TriggerResult{
		Primary:  models.TriggerNone,
		Detected: []models.TriggerScore{},
		Scores:   make(map[models.Trigger]float64, len(models.Triggers)),
		Signals:  []string{},
	}

	for _, t := range models.Triggers {
		score := 0.0
		for _, m := range a.lex.TriggerPatterns[t] {
			for _, loc := range m.FindAllIndex(text) {
				score += patternWeight * strength(text, loc[0], loc[1])
				res.Signals = append(res.Signals, analysis.Signal(string(t), text[loc[0]:loc[1]]))
			}
		}
		for _, hit := range a.lex.TriggerKeywords[t].FindAll(text) {
			score += keywordWeight
			res.Signals = append(res.Signals, analysis.Signal(string(t), hit))
		}
		res.Scores[t] = utils.Round(math.Min(score, maxIntensity), 2)
	}

	for _, t := range analysis.Rank(models.Triggers, func(t models.Trigger) float64 { return res.Scores[t] }) {
		if res.Scores[t] < detectThreshold {
			break
		}
		res.Detected = append(res.Detected, models.TriggerScore{Trigger: t, Intensity: res.Scores[t]})
	}
	if len(res.Detected) > 0 {
		res.Primary = res.Detected[0].Trigger
	}

	a.log.Debug("triggers analyzed",
		zap.String("primary", string(res.Primary)),
		zap.Int("detected", len(res.Detected)))
	return res
}

// strength rates the match text[start:end] between 1 and 2. Longer, earlier,
// numeric and emphasized matches are stronger.
func strength(text string, start, end int) float64 {
	match := text[start:end]
	s := 1 + math.Min(float64(utils.RuneLen(match))/lengthDivisor, maxLengthBonus)
	if float64(start) < earlyFraction*float64(len(text)) {
		s += earlyBonus
	}
	if utils.HasDigit(match) {
		s += digitBonus
	}
	if utils.IsAllCaps(match) || strings.HasPrefix(text[end:], "!!") {
		s += emphasisBonus
	}
	return utils.Clamp(s, 1, 2)
}
