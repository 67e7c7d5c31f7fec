// Package framing classifies the message frame of ad copy: gain or loss,
// its time orientation and whether it dwells on the problem or the fix.
package framing

import (
	"go.uber.org/zap"

	"github.com/seenimoa/adlens/internal/analysis"
	"github.com/seenimoa/adlens/internal/lexicon"
	"github.com/seenimoa/adlens/pkg/models"
	"github.com/seenimoa/adlens/pkg/utils"
)

// Analyzer classifies framing.
type Analyzer struct {
	lex *lexicon.Lexicon
	log *zap.Logger
}

// New creates a framing analyzer. A nil lexicon selects lexicon.Default and
// a nil logger discards output.
func New(lex *lexicon.Lexicon, log *zap.Logger) *Analyzer {
	if lex == nil {
		lex = lexicon.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{lex: lex, log: log.Named("framing")}
}

// Analyze returns the framing of text.
func (a *Analyzer) Analyze(text string) models.FramingResult {
	res := models.FramingResult{
		PrimaryFrame: models.FrameBalanced,
		Style:        models.StyleNone,
		StyleCounts:  make(map[models.FramingStyle]int, len(models.FramingStyles)),
		Signals:      []string{},
	}

	for _, s := range models.FramingStyles {
		for _, hit := range a.lex.Framing[s].FindAll(text) {
			res.StyleCounts[s]++
			res.Signals = append(res.Signals, analysis.Signal(string(s), hit))
		}
	}
	for _, aux := range a.lex.FramingAux {
		for _, hit := range aux.Matcher.FindAll(text) {
			res.StyleCounts[aux.Style]++
			res.Signals = append(res.Signals, analysis.Signal(string(aux.Style), hit))
		}
	}
	for _, s := range models.FramingStyles {
		if s.Positive() {
			res.PositiveSignals += res.StyleCounts[s]
		} else {
			res.NegativeSignals += res.StyleCounts[s]
		}
	}

	pos, neg := float64(res.PositiveSignals), float64(res.NegativeSignals)
	switch analysis.Dominance(pos, neg) {
	case 1:
		res.PrimaryFrame = models.FramePositive
	case -1:
		res.PrimaryFrame = models.FrameNegative
	}
	if pos+neg > 0 {
		res.Balance = utils.Round((pos-neg)/(pos+neg), 3)
	}

	top := analysis.Rank(models.FramingStyles, func(s models.FramingStyle) float64 { return float64(res.StyleCounts[s]) })[0]
	if res.StyleCounts[top] > 0 {
		res.Style = top
	}

	res.TimeOrientation = a.timeOrientation(text)

	problem, solution := a.lex.Problem.Count(text), a.lex.Solution.Count(text)
	switch analysis.Dominance(float64(problem), float64(solution)) {
	case 1:
		res.Focus = models.FocusProblem
	case -1:
		res.Focus = models.FocusSolution
	default:
		res.Focus = models.FocusBalanced
	}

	a.log.Debug("framing analyzed",
		zap.String("frame", string(res.PrimaryFrame)),
		zap.String("style", string(res.Style)),
		zap.String("time", string(res.TimeOrientation)))
	return res
}

// timeOrientation picks the orientation with strictly the most keyword
// hits; any tie at the top falls back to present.
func (a *Analyzer) timeOrientation(text string) models.TimeOrientation {
	counts := make(map[models.TimeOrientation]int, len(models.TimeOrientations))
	for _, o := range models.TimeOrientations {
		counts[o] = lexicon.CountAll(a.lex.Time[o], text)
	}
	ranked := analysis.Rank(models.TimeOrientations, func(o models.TimeOrientation) float64 { return float64(counts[o]) })
	if counts[ranked[0]] > counts[ranked[1]] {
		return ranked[0]
	}
	return models.TimePresent
}
