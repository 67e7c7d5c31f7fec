// Package tone rates the formality register, the six voice
// characteristics and the brand personality of ad copy.
package tone

import (
	"strings"

	"go.uber.org/zap"

	"github.com/seenimoa/adlens/internal/analysis"
	"github.com/seenimoa/adlens/internal/lexicon"
	"github.com/seenimoa/adlens/pkg/models"
	"github.com/seenimoa/adlens/pkg/utils"
)

const (
	voiceBaseline       = 5.0
	empathyBonus        = 1.5
	voiceSummaryCutoff  = 6.0
	personalityMinScore = 2.0

	densityCutoff    = 0.05
	longSentence     = 20.0
	mediumSentence   = 12.0
	shortSentence    = 8.0
	patternWeight    = 2.0
	keywordWeight    = 1.0
	indicatorWeight  = 1.5
	neutralFormality = 5.0
)

// Analyzer rates tone and voice.
type Analyzer struct {
	lex *lexicon.Lexicon
	log *zap.Logger
}

// New creates a tone analyzer. A nil lexicon selects lexicon.Default and a
// nil logger discards output.
func New(lex *lexicon.Lexicon, log *zap.Logger) *Analyzer {
	if lex == nil {
		lex = lexicon.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{lex: lex, log: log.Named("tone")}
}

// Analyze returns the tone profile of text.
func (a *Analyzer) Analyze(text string) models.ToneResult {
	res := models.ToneResult{Signals: []string{}}

	levels := a.formalityPoints(text, &res.Signals)
	ranked := analysis.Rank(models.Formalities, func(f models.Formality) float64 { return levels[f] })
	res.Formality = ranked[0]
	res.LevelScores = make(map[models.Formality]float64, len(models.Formalities))
	weighted, points := 0.0, 0.0
	for _, f := range models.Formalities {
		res.LevelScores[f] = levels[f]
		weighted += f.Weight() * levels[f]
		points += levels[f]
	}
	res.FormalityScore = neutralFormality
	if points > 0 {
		res.FormalityScore = utils.Round(utils.Clamp(weighted/points, 1, 10), 1)
	}

	res.Voice = a.voice(text, &res.Signals)
	res.Personality = a.personality(text, &res.Signals)
	res.VoiceSummary = summarize(res.Formality, res.Voice, res.Personality)

	a.log.Debug("tone analyzed",
		zap.String("formality", string(res.Formality)),
		zap.Float64("formality_score", res.FormalityScore),
		zap.String("personality", string(res.Personality.Primary)))
	return res
}

// formalityPoints combines lexical markers with structural cues.
func (a *Analyzer) formalityPoints(text string, signals *[]string) map[models.Formality]float64 {
	pts := make(map[models.Formality]float64, len(models.Formalities))
	for _, f := range models.Formalities {
		for _, hit := range lexicon.FindEach(a.lex.Formality[f], text) {
			pts[f]++
			*signals = append(*signals, analysis.Signal(string(f), hit))
		}
	}

	words := utils.WordCount(text)
	denom := float64(max(words, 1))

	contractions := utils.ContractionCount(text)
	if float64(contractions)/denom > densityCutoff {
		pts[models.FormalityCasual] += 2
		pts[models.FormalityConversational]++
	}
	if contractions > 0 {
		pts[models.FormalityConversational]++
	}

	emoji := utils.EmojiCount(text)
	if float64(emoji)/denom > densityCutoff {
		pts[models.FormalityCasual] += 2
	} else if emoji > 0 {
		pts[models.FormalityCasual]++
	}

	if sentences := len(utils.Sentences(text)); sentences > 0 && words > 0 {
		mean := float64(words) / float64(sentences)
		switch {
		case mean > longSentence:
			pts[models.FormalityFormal] += 2
			pts[models.FormalityProfessional]++
		case mean >= mediumSentence:
			pts[models.FormalityProfessional]++
		case mean < shortSentence:
			pts[models.FormalityConversational]++
		}
	}

	if strings.Contains(text, "!!") {
		pts[models.FormalityCasual]++
	}
	return pts
}

func (a *Analyzer) voice(text string, signals *[]string) map[models.VoiceTrait]float64 {
	scores := make(map[models.VoiceTrait]float64, len(models.VoiceTraits))
	for _, v := range models.VoiceTraits {
		s := voiceBaseline
		for _, hit := range a.lex.Voice[v].FindAll(text) {
			s++
			*signals = append(*signals, analysis.Signal(string(v), hit))
		}
		scores[v] = s
	}

	you, we := a.lex.YouWords.Count(text), a.lex.WeWords.Count(text)
	if you >= 1 && you > 2*we {
		scores[models.VoiceEmpathy] += empathyBonus
	}
	for _, hit := range a.lex.Hedges.FindAll(text) {
		scores[models.VoiceConfidence]--
		*signals = append(*signals, analysis.Signal("hedge", hit))
	}

	for v, s := range scores {
		scores[v] = utils.Clamp(s, 1, 10)
	}
	return scores
}

func (a *Analyzer) personality(text string, signals *[]string) models.PersonalityResult {
	res := models.PersonalityResult{
		Primary:  models.PersonalityUndefined,
		Detected: []models.Personality{},
		Scores:   make(map[models.Personality]float64, len(models.Personalities)),
	}
	for _, p := range models.Personalities {
		sig := a.lex.Personality[p]
		hits := lexicon.FindEach(sig.Patterns, text)
		score := patternWeight * float64(len(hits))
		kw := sig.Keywords.FindAll(text)
		score += keywordWeight * float64(len(kw))
		ind := sig.Indicators.FindAll(text)
		score += indicatorWeight * float64(len(ind))

		for _, hit := range append(append(hits, kw...), ind...) {
			*signals = append(*signals, analysis.Signal(string(p), hit))
		}
		res.Scores[p] = score
	}

	for _, p := range analysis.Rank(models.Personalities, func(p models.Personality) float64 { return res.Scores[p] }) {
		if res.Scores[p] < personalityMinScore {
			break
		}
		res.Detected = append(res.Detected, p)
	}
	if len(res.Detected) > 0 {
		res.Primary = res.Detected[0]
	}
	return res
}

// summarize builds a one-sentence description such as
// "Professional tone emphasizing authority and confidence with a competence-driven personality."
func summarize(f models.Formality, voice map[models.VoiceTrait]float64, p models.PersonalityResult) string {
	var b strings.Builder
	b.WriteString(utils.Title(string(f)))
	b.WriteString(" tone")

	var top []string
	for _, v := range analysis.Rank(models.VoiceTraits, func(v models.VoiceTrait) float64 { return voice[v] }) {
		if len(top) == 2 || voice[v] <= voiceSummaryCutoff {
			break
		}
		top = append(top, string(v))
	}
	if len(top) > 0 {
		b.WriteString(" emphasizing ")
		b.WriteString(utils.JoinAnd(top))
	}
	if p.Primary != models.PersonalityUndefined {
		b.WriteString(" with a ")
		b.WriteString(string(p.Primary))
		b.WriteString("-driven personality")
	}
	b.WriteString(".")
	return b.String()
}
