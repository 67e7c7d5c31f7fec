// Package positioning infers the market role ad copy claims and how
// directly it takes on competitors.
package positioning

import (
	"math"

	"go.uber.org/zap"

	"github.com/seenimoa/adlens/internal/analysis"
	"github.com/seenimoa/adlens/internal/lexicon"
	"github.com/seenimoa/adlens/pkg/models"
	"github.com/seenimoa/adlens/pkg/utils"
)

const (
	signalBonus    = 0.5
	maxSignalBonus = 2.0
)

// baseScore anchors the positioning score of each aggressiveness tier.
var baseScore = map[models.Aggressiveness]float64{
	models.AggressivenessPassive:     2,
	models.AggressivenessImplicit:    4,
	models.AggressivenessComparative: 6,
	models.AggressivenessAggressive:  8,
}

// tally is the evidence the aggressiveness rules look at.
type tally struct {
	signals     int
	comparisons int
	families    map[models.MarketPosition]int
}

// aggressivenessRules are evaluated in order; the first match wins.
var aggressivenessRules = []struct {
	level models.Aggressiveness
	when  func(t tally) bool
}{
	{models.AggressivenessPassive, func(t tally) bool { return t.signals == 0 && t.comparisons == 0 }},
	{models.AggressivenessAggressive, func(t tally) bool {
		return t.comparisons >= 2 || (t.families[models.PositionChallenger] > 0 && t.comparisons > 0)
	}},
	{models.AggressivenessComparative, func(t tally) bool {
		return t.comparisons > 0 || t.families[models.PositionChallenger] > 0 || t.families[models.PositionDisruptor] > 0
	}},
	{models.AggressivenessImplicit, func(t tally) bool { return t.signals > 0 }},
}

// Analyzer infers market positioning.
type Analyzer struct {
	lex *lexicon.Lexicon
	log *zap.Logger
}

// New creates a positioning analyzer. A nil lexicon selects lexicon.Default
// and a nil logger discards output.
func New(lex *lexicon.Lexicon, log *zap.Logger) *Analyzer {
	if lex == nil {
		lex = lexicon.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{lex: lex, log: log.Named("positioning")}
}

// Analyze returns the positioning of text.
func (a *Analyzer) Analyze(text string) models.PositioningResult {
	res := models.PositioningResult{
		MarketPosition: models.PositionUnknown,
		FamilyCounts:   make(map[models.MarketPosition]int, len(models.MarketPositions)),
		Comparisons:    []string{},
		Signals:        []string{},
	}

	t := tally{families: res.FamilyCounts}
	for _, p := range models.MarketPositions {
		for _, hit := range lexicon.FindEach(a.lex.Positioning[p], text) {
			res.FamilyCounts[p]++
			t.signals++
			res.Signals = append(res.Signals, analysis.Signal(string(p), hit))
		}
	}
	for _, hit := range lexicon.FindEach(a.lex.Comparisons, text) {
		res.Comparisons = append(res.Comparisons, hit)
		res.Signals = append(res.Signals, analysis.Signal("comparison", hit))
	}
	t.comparisons = len(res.Comparisons)

	res.Aggressiveness = aggressiveness(t)

	top := analysis.Rank(models.MarketPositions, func(p models.MarketPosition) float64 { return float64(res.FamilyCounts[p]) })[0]
	if res.FamilyCounts[top] > 0 {
		res.MarketPosition = top
	}

	bonus := math.Min(signalBonus*float64(t.signals+t.comparisons), maxSignalBonus)
	res.PositioningScore = utils.Round(utils.Clamp(baseScore[res.Aggressiveness]+bonus, 1, 10), 1)

	a.log.Debug("positioning analyzed",
		zap.String("position", string(res.MarketPosition)),
		zap.String("aggressiveness", string(res.Aggressiveness)),
		zap.Float64("score", res.PositioningScore))
	return res
}

func aggressiveness(t tally) models.Aggressiveness {
	for _, r := range aggressivenessRules {
		if r.when(t) {
			return r.level
		}
	}
	return models.AggressivenessPassive
}
