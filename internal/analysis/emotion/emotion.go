// Package emotion scores the eight basic emotions of ad copy from the tiered
// emotion lexicon and detects the emotional arc across the text.
package emotion

import (
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/seenimoa/adlens/internal/analysis"
	"github.com/seenimoa/adlens/internal/lexicon"
	"github.com/seenimoa/adlens/pkg/models"
	"github.com/seenimoa/adlens/pkg/utils"
)

// arcThreshold is the minimum group score each half needs for an arc.
const arcThreshold = 2.0

// Intensity bonus caps.
const (
	maxDensityBonus     = 5.5
	maxExclaimBonus     = 2.0
	maxCapsBonus        = 1.5
	maxAmplifierBonus   = 1.0
	densityMultiplier   = 5.0
	exclaimPerMark      = 0.25
	capsPerToken        = 0.5
	amplifierPerKeyword = 0.5
)

// Analyzer scores emotions. It holds no mutable state.
type Analyzer struct {
	lex *lexicon.Lexicon
	log *zap.Logger
}

// New creates an emotion analyzer. A nil lexicon selects lexicon.Default and
// a nil logger discards output.
func New(lex *lexicon.Lexicon, log *zap.Logger) *Analyzer {
	if lex == nil {
		lex = lexicon.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{lex: lex, log: log.Named("emotion")}
}

// Analyze returns the emotion profile of text. It never fails; empty text
// yields a neutral, flat result with intensity 1.
func (a *Analyzer) Analyze(text string) models.EmotionResult {
	raw, signals := a.score(text)

	ampHits := a.lex.Amplifiers.Count(text)
	factor := 1.0
	if ampHits > 0 {
		factor *= lexicon.AmplifierFactor
	}
	if a.lex.Downtoners.Count(text) > 0 {
		factor *= lexicon.DowntonerFactor
	}

	adjusted := make(map[models.Emotion]float64, len(models.Emotions))
	total := 0.0
	for _, e := range models.Emotions {
		adjusted[e] = raw[e] * factor
		total += adjusted[e]
	}

	ranked := analysis.Rank(models.Emotions, func(e models.Emotion) float64 { return adjusted[e] })

	res := models.EmotionResult{
		Primary:   models.EmotionNeutral,
		Secondary: []models.Emotion{},
		Scores:    make(map[models.Emotion]float64, len(models.Emotions)),
		Breakdown: make(map[models.Emotion]float64, len(models.Emotions)),
		Signals:   signals,
	}
	if adjusted[ranked[0]] > 0 {
		res.Primary = ranked[0]
		for _, e := range ranked[1:] {
			if len(res.Secondary) == 2 || adjusted[e] <= 0 {
				break
			}
			res.Secondary = append(res.Secondary, e)
		}
	}

	for _, e := range models.Emotions {
		res.Scores[e] = utils.Round(adjusted[e], 2)
		if total > 0 {
			res.Breakdown[e] = utils.Round(adjusted[e]/total, 4)
		} else {
			res.Breakdown[e] = 0
		}
	}

	res.IntensityScore = intensity(text, total, ampHits)
	res.Arc = a.arc(text)
	res.Polarity = polarity(adjusted)

	a.log.Debug("emotion analyzed",
		zap.String("primary", string(res.Primary)),
		zap.Float64("intensity", res.IntensityScore),
		zap.String("arc", string(res.Arc)))
	return res
}

// score tallies tier-weighted keyword hits per emotion without modifiers.
func (a *Analyzer) score(text string) (map[models.Emotion]float64, []string) {
	scores := make(map[models.Emotion]float64, len(models.Emotions))
	signals := []string{}
	for _, e := range models.Emotions {
		tiers, ok := a.lex.Emotions[e]
		if !ok {
			continue
		}
		for _, tier := range []struct {
			m      lexicon.Matcher
			weight float64
		}{
			{tiers.Strong, lexicon.StrongWeight},
			{tiers.Moderate, lexicon.ModerateWeight},
			{tiers.Mild, lexicon.MildWeight},
		} {
			for _, hit := range tier.m.FindAll(text) {
				scores[e] += tier.weight
				signals = append(signals, analysis.Signal(string(e), hit))
			}
		}
	}
	return scores, signals
}

// intensity maps emotional density and emphasis markers onto 1-10.
func intensity(text string, total float64, ampHits int) float64 {
	words := utils.WordCount(text)
	if words == 0 {
		return 1
	}
	density := math.Min(total/float64(words)*densityMultiplier, maxDensityBonus)
	exclaim := math.Min(float64(strings.Count(text, "!"))*exclaimPerMark, maxExclaimBonus)
	caps := math.Min(float64(utils.AllCapsCount(text))*capsPerToken, maxCapsBonus)
	amp := math.Min(float64(ampHits)*amplifierPerKeyword, maxAmplifierBonus)
	return utils.Round(utils.Clamp(1+density+exclaim+caps+amp, 1, 10), 1)
}

// arcRule is one ordered two-stage pattern: the first half must reach the
// threshold on group first, the second half on group second.
type arcRule struct {
	arc           models.EmotionalArc
	first, second []models.Emotion
}

var arcRules = []arcRule{
	{models.ArcProblemSolution,
		[]models.Emotion{models.EmotionSadness, models.EmotionAnger, models.EmotionDisgust},
		[]models.Emotion{models.EmotionJoy, models.EmotionTrust}},
	{models.ArcFearTrust,
		[]models.Emotion{models.EmotionFear},
		[]models.Emotion{models.EmotionTrust}},
	{models.ArcCuriositySatisfaction,
		[]models.Emotion{models.EmotionSurprise, models.EmotionAnticipation},
		[]models.Emotion{models.EmotionJoy}},
	{models.ArcAspirationAction,
		[]models.Emotion{models.EmotionJoy},
		[]models.Emotion{models.EmotionAnticipation}},
}

func (a *Analyzer) arc(text string) models.EmotionalArc {
	sentences := utils.Sentences(text)
	if len(sentences) < 2 {
		return models.ArcFlat
	}
	mid := len(sentences) / 2
	first, _ := a.score(strings.Join(sentences[:mid], ". "))
	second, _ := a.score(strings.Join(sentences[mid:], ". "))

	for _, r := range arcRules {
		if sum(first, r.first) >= arcThreshold && sum(second, r.second) >= arcThreshold {
			return r.arc
		}
	}
	return models.ArcFlat
}

func polarity(scores map[models.Emotion]float64) models.Polarity {
	pos := sum(scores, models.PositiveEmotions)
	neg := sum(scores, models.NegativeEmotions)
	if pos == 0 && neg == 0 {
		return models.PolarityNeutral
	}
	switch analysis.Dominance(pos, neg) {
	case 1:
		return models.PolarityPositive
	case -1:
		return models.PolarityNegative
	}
	return models.PolarityMixed
}

func sum(scores map[models.Emotion]float64, group []models.Emotion) float64 {
	s := 0.0
	for _, e := range group {
		s += scores[e]
	}
	return s
}
