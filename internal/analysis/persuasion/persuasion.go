// Package persuasion detects the ten persuasion technique families in ad
// copy and rates how much pressure they put on the reader.
package persuasion

import (
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/seenimoa/adlens/internal/analysis"
	"github.com/seenimoa/adlens/internal/lexicon"
	"github.com/seenimoa/adlens/pkg/models"
	"github.com/seenimoa/adlens/pkg/utils"
)

// Match confidence components.
const (
	baseConfidence      = 0.5
	maxLengthBonus      = 0.2
	lengthDivisor       = 50.0
	digitBonus          = 0.15
	emphasisBonus       = 0.15
	heavyThreshold      = 7.0
	moderateThreshold   = 3.5
	highVolumeMatches   = 8
	mediumVolumeMatches = 4
)

// Analyzer detects persuasion techniques.
type Analyzer struct {
	lex *lexicon.Lexicon
	log *zap.Logger
}

// New creates a persuasion analyzer. A nil lexicon selects lexicon.Default
// and a nil logger discards output.
func New(lex *lexicon.Lexicon, log *zap.Logger) *Analyzer {
	if lex == nil {
		lex = lexicon.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{lex: lex, log: log.Named("persuasion")}
}

// Analyze returns the techniques used in text with their pressure rating.
func (a *Analyzer) Analyze(text string) models.PersuasionResult {
	res := models.PersuasionResult{
		Primary:       models.TechniqueNone,
		Techniques:    []models.TechniqueScore{},
		Matches:       []models.TechniqueMatch{},
		PressureScore: 1,
		Intensity:     models.PressureLight,
		Signals:       []string{},
	}

	counts := make(map[models.Technique]int, len(models.Techniques))
	confSum := make(map[models.Technique]float64, len(models.Techniques))
	total := 0.0
	for _, t := range models.Techniques {
		for _, m := range a.lex.Techniques[t] {
			for _, loc := range m.FindAllIndex(text) {
				match := text[loc[0]:loc[1]]
				conf := confidence(match, text[loc[1]:])
				res.Matches = append(res.Matches, models.TechniqueMatch{
					Technique:  t,
					Text:       strings.ToLower(match),
					Confidence: utils.Round(conf, 2),
				})
				res.Signals = append(res.Signals, analysis.Signal(string(t), match))
				counts[t]++
				confSum[t] += conf
				total += conf
			}
		}
	}
	if len(res.Matches) == 0 {
		return res
	}

	ranked := analysis.Rank(models.Techniques, func(t models.Technique) float64 { return float64(counts[t]) })
	highPressure := 0
	for _, t := range ranked {
		if counts[t] == 0 {
			break
		}
		res.Techniques = append(res.Techniques, models.TechniqueScore{
			Technique:  t,
			Count:      counts[t],
			Confidence: utils.Round(confSum[t]/float64(counts[t]), 2),
		})
		if t.HighPressure() {
			highPressure++
		}
	}
	res.Primary = res.Techniques[0].Technique

	distinct := len(res.Techniques)
	avg := total / float64(len(res.Matches))
	res.PressureScore = utils.Round(utils.Clamp(
		float64(distinct+highPressure+volumeBonus(len(res.Matches)))+2*avg, 1, 10), 1)
	res.Intensity = intensity(float64(distinct) + res.PressureScore/2)

	a.log.Debug("persuasion analyzed",
		zap.String("primary", string(res.Primary)),
		zap.Int("matches", len(res.Matches)),
		zap.Float64("pressure", res.PressureScore))
	return res
}

// confidence rates a single match from its length, digits and emphasis.
// rest is the text immediately following the match.
func confidence(match, rest string) float64 {
	c := baseConfidence + math.Min(float64(utils.RuneLen(match))/lengthDivisor, maxLengthBonus)
	if utils.HasDigit(match) {
		c += digitBonus
	}
	if utils.IsAllCaps(match) || strings.HasPrefix(rest, "!!") {
		c += emphasisBonus
	}
	return math.Min(c, 1)
}

func volumeBonus(matches int) int {
	switch {
	case matches >= highVolumeMatches:
		return 2
	case matches >= mediumVolumeMatches:
		return 1
	}
	return 0
}

func intensity(metric float64) models.PressureIntensity {
	switch {
	case metric >= heavyThreshold:
		return models.PressureHeavy
	case metric >= moderateThreshold:
		return models.PressureModerate
	}
	return models.PressureLight
}
