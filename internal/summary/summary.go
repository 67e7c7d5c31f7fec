// Package summary aggregates a competitor's analysis records into a
// strategic summary: distributions per dimension, the messaging gaps the
// competitor leaves open and recommendations for countering it.
package summary

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/seenimoa/adlens/internal/lexicon"
	"github.com/seenimoa/adlens/pkg/models"
	"github.com/seenimoa/adlens/pkg/utils"
)

const (
	maxMostUsed        = 5
	maxTopTraits       = 3
	maxGaps            = 3
	maxRecommendations = 5
	maxTopInsights     = 5

	highPressure     = 7.0
	moderatePressure = 4.0
	highThreatScore  = 6.5
	mediumThreatAvg  = 4.0
	neutralVoice     = 5.0
	lowConsistency   = 0.5
	highConsistency  = 0.8
)

// Aggregator builds competitor summaries.
type Aggregator struct {
	lex *lexicon.Lexicon
	log *zap.Logger
}

// New creates an aggregator. A nil lexicon selects lexicon.Default and a
// nil logger discards output.
func New(lex *lexicon.Lexicon, log *zap.Logger) *Aggregator {
	if lex == nil {
		lex = lexicon.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Aggregator{lex: lex, log: log.Named("summary")}
}

// Summarize aggregates records into a summary for the named competitor.
// It is deterministic and insensitive to record order.
func (a *Aggregator) Summarize(name string, records []models.AnalysisRecord) models.CompetitorSummary {
	n := len(records)
	s := models.CompetitorSummary{
		Competitor:  name,
		AdsAnalyzed: n,
		Emotional:   emotional(records),
		Persuasion:  persuasion(records),
		Triggers:    triggers(records),
		Voice:       voice(records),
		Framing:     framing(records),
		Posture:     posture(records),
		Opportunities: models.Opportunities{
			EmotionalGaps: []models.Gap{},
			TechniqueGaps: []models.Gap{},
			TriggerGaps:   []models.Gap{},
			VoiceGaps:     []models.Gap{},
		},
		Recommendations: []string{},
		TopInsights:     topInsights(records),
	}
	if n == 0 {
		return s
	}

	s.Opportunities = a.opportunities(s)
	s.Recommendations = recommendations(s)

	a.log.Debug("competitor summarized",
		zap.String("competitor", name),
		zap.Int("ads", n),
		zap.String("threat", string(s.Posture.ThreatLevel)))
	return s
}

// ── Generic aggregation helpers ──

// distribute counts one value per record over the closed set order. Shares
// are count/N, so they sum to one whenever N > 0.
func distribute[T ~string](order []T, records []models.AnalysisRecord, value func(models.AnalysisRecord) T) models.Distribution[T] {
	counts := make(map[T]int, len(order))
	for _, r := range records {
		counts[value(r)]++
	}
	dist := make(models.Distribution[T], len(order))
	for i, v := range order {
		dist[i] = models.Bucket[T]{Value: v, Count: counts[v], Share: share(counts[v], len(records))}
	}
	return dist
}

// dominant returns the most frequent value, ties resolved by enum order,
// or fallback when the distribution is empty.
func dominant[T ~string](dist models.Distribution[T], fallback T) T {
	best := -1
	for i, b := range dist {
		if b.Count > 0 && (best < 0 || b.Count > dist[best].Count) {
			best = i
		}
	}
	if best < 0 {
		return fallback
	}
	return dist[best].Value
}

// usage counts the records in which each value is present.
func usage[T ~string](order []T, records []models.AnalysisRecord, present func(models.AnalysisRecord, T) bool) []models.Usage[T] {
	out := make([]models.Usage[T], len(order))
	for i, v := range order {
		c := 0
		for _, r := range records {
			if present(r, v) {
				c++
			}
		}
		out[i] = models.Usage[T]{Value: v, Count: c, Rate: share(c, len(records))}
	}
	return out
}

// mostUsed returns up to limit nonzero entries, most used first.
func mostUsed[T ~string](u []models.Usage[T], limit int) []models.Usage[T] {
	ranked := append([]models.Usage[T](nil), u...)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })
	out := []models.Usage[T]{}
	for _, e := range ranked {
		if len(out) == limit || e.Count == 0 {
			break
		}
		out = append(out, e)
	}
	return out
}

func share(count, n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(count) / float64(n)
}

func average(records []models.AnalysisRecord, value func(models.AnalysisRecord) float64) float64 {
	if len(records) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range records {
		sum += value(r)
	}
	return utils.Round(sum/float64(len(records)), 2)
}

// ── Profiles ──

func emotional(records []models.AnalysisRecord) models.EmotionalProfile {
	dist := distribute(models.PrimaryEmotions, records, func(r models.AnalysisRecord) models.Emotion { return r.Emotions.Primary })
	dom := dominant(dist, models.EmotionNeutral)
	return models.EmotionalProfile{
		Distribution:     dist,
		Dominant:         dom,
		Consistency:      dist.Share(dom),
		AverageIntensity: average(records, func(r models.AnalysisRecord) float64 { return r.Emotions.IntensityScore }),
		Arcs:             distribute(models.EmotionalArcs, records, func(r models.AnalysisRecord) models.EmotionalArc { return r.Emotions.Arc }),
		Presence: usage(models.Emotions, records, func(r models.AnalysisRecord, e models.Emotion) bool {
			return r.Emotions.Scores[e] > 0
		}),
	}
}

func persuasion(records []models.AnalysisRecord) models.PersuasionProfile {
	dist := distribute(models.PrimaryTechniques, records, func(r models.AnalysisRecord) models.Technique { return r.Persuasion.Primary })
	u := usage(models.Techniques, records, func(r models.AnalysisRecord, t models.Technique) bool { return r.Persuasion.Uses(t) })
	p := models.PersuasionProfile{
		Distribution:    dist,
		Dominant:        dominant(dist, models.TechniqueNone),
		Usage:           u,
		MostUsed:        mostUsed(u, maxMostUsed),
		AveragePressure: average(records, func(r models.AnalysisRecord) float64 { return r.Persuasion.PressureScore }),
		Intensities: distribute(models.PressureIntensities, records, func(r models.AnalysisRecord) models.PressureIntensity {
			return r.Persuasion.Intensity
		}),
	}
	p.Style = persuasionStyle(p.AveragePressure, p.MostUsed)
	return p
}

// persuasionStyle describes the pressure tier and leading techniques, e.g.
// "Moderate-pressure persuasion led by scarcity and urgency".
func persuasionStyle(avgPressure float64, top []models.Usage[models.Technique]) string {
	tier := "Low"
	switch {
	case avgPressure >= highPressure:
		tier = "High"
	case avgPressure >= moderatePressure:
		tier = "Moderate"
	}
	switch len(top) {
	case 0:
		return tier + "-pressure persuasion with no recurring techniques"
	case 1:
		return fmt.Sprintf("%s-pressure persuasion led by %s", tier, top[0].Value.Label())
	}
	return fmt.Sprintf("%s-pressure persuasion led by %s and %s", tier, top[0].Value.Label(), top[1].Value.Label())
}

func triggers(records []models.AnalysisRecord) models.TriggerProfile {
	dist := distribute(models.PrimaryTriggers, records, func(r models.AnalysisRecord) models.Trigger { return r.Triggers.Primary })
	u := usage(models.Triggers, records, func(r models.AnalysisRecord, t models.Trigger) bool { return r.Triggers.Has(t) })
	return models.TriggerProfile{
		Distribution: dist,
		Dominant:     dominant(dist, models.TriggerNone),
		Usage:        u,
		MostUsed:     mostUsed(u, maxMostUsed),
	}
}

func voice(records []models.AnalysisRecord) models.VoiceProfile {
	traits := usage(models.Personalities, records, func(r models.AnalysisRecord, p models.Personality) bool {
		for _, d := range r.Tone.Personality.Detected {
			if d == p {
				return true
			}
		}
		return false
	})
	top := mostUsed(traits, maxTopTraits)
	topTraits := make([]models.Personality, len(top))
	for i, t := range top {
		topTraits[i] = t.Value
	}

	formality := distribute(models.Formalities, records, func(r models.AnalysisRecord) models.Formality { return r.Tone.Formality })
	avgVoice := make(map[models.VoiceTrait]float64, len(models.VoiceTraits))
	for _, v := range models.VoiceTraits {
		avgVoice[v] = average(records, func(r models.AnalysisRecord) float64 { return r.Tone.Voice[v] })
	}

	consistency := 0.0
	if len(top) > 0 {
		consistency = share(top[0].Count, len(records))
	}
	return models.VoiceProfile{
		Traits:            traits,
		TopTraits:         topTraits,
		Formality:         formality,
		DominantFormality: dominant(formality, models.FormalityConversational),
		AverageFormality:  average(records, func(r models.AnalysisRecord) float64 { return r.Tone.FormalityScore }),
		AverageVoice:      avgVoice,
		Consistency:       consistency,
	}
}

func framing(records []models.AnalysisRecord) models.FramingPatterns {
	frames := distribute(models.Frames, records, func(r models.AnalysisRecord) models.Frame { return r.Framing.PrimaryFrame })
	styles := distribute(models.AllFramingStyles, records, func(r models.AnalysisRecord) models.FramingStyle { return r.Framing.Style })
	times := distribute(models.TimeOrientations, records, func(r models.AnalysisRecord) models.TimeOrientation {
		return r.Framing.TimeOrientation
	})
	return models.FramingPatterns{
		Frames:                  frames,
		DominantFrame:           dominant(frames, models.FrameBalanced),
		Styles:                  styles,
		DominantStyle:           dominant(styles, models.StyleNone),
		TimeOrientations:        times,
		DominantTimeOrientation: dominant(times, models.TimePresent),
	}
}

func posture(records []models.AnalysisRecord) models.CompetitivePosture {
	aggr := distribute(models.AggressivenessLevels, records, func(r models.AnalysisRecord) models.Aggressiveness {
		return r.Positioning.Aggressiveness
	})
	positions := distribute(models.AllMarketPositions, records, func(r models.AnalysisRecord) models.MarketPosition {
		return r.Positioning.MarketPosition
	})
	p := models.CompetitivePosture{
		AverageScore:           average(records, func(r models.AnalysisRecord) float64 { return r.Positioning.PositioningScore }),
		DominantAggressiveness: dominant(aggr, models.AggressivenessPassive),
		Aggressiveness:         aggr,
		MarketPositions:        positions,
		DominantPosition:       dominant(positions, models.PositionUnknown),
	}
	p.ThreatLevel = threat(p.DominantAggressiveness, p.AverageScore)
	return p
}

func threat(level models.Aggressiveness, avg float64) models.ThreatLevel {
	switch {
	case level == models.AggressivenessAggressive || avg >= highThreatScore:
		return models.ThreatHigh
	case level == models.AggressivenessComparative || avg >= mediumThreatAvg:
		return models.ThreatMedium
	}
	return models.ThreatLow
}

// ── Opportunities and recommendations ──

func (a *Aggregator) opportunities(s models.CompetitorSummary) models.Opportunities {
	emotionRate := usageRates(s.Emotional.Presence)
	techniqueRate := usageRates(s.Persuasion.Usage)
	triggerRate := usageRates(s.Triggers.Usage)

	return models.Opportunities{
		EmotionalGaps: gaps(a.lex.EmotionGaps, func(v string) bool { return emotionRate[v] < lexicon.GapThreshold }),
		TechniqueGaps: gaps(a.lex.TechniqueGaps, func(v string) bool { return techniqueRate[v] < lexicon.GapThreshold }),
		TriggerGaps:   gaps(a.lex.TriggerGaps, func(v string) bool { return triggerRate[v] < lexicon.GapThreshold }),
		VoiceGaps: gaps(a.lex.VoiceGaps, func(v string) bool {
			return s.Voice.AverageVoice[models.VoiceTrait(v)] < neutralVoice
		}),
	}
}

func usageRates[T ~string](u []models.Usage[T]) map[string]float64 {
	out := make(map[string]float64, len(u))
	for _, e := range u {
		out[string(e.Value)] = e.Rate
	}
	return out
}

// gaps walks an ordered gap table and keeps the first maxGaps open entries.
func gaps(table []lexicon.GapEntry, open func(string) bool) []models.Gap {
	out := []models.Gap{}
	for _, g := range table {
		if len(out) == maxGaps {
			break
		}
		if open(g.Value) {
			out = append(out, models.Gap{Value: g.Value, Description: g.Description})
		}
	}
	return out
}

func gapValues(gs []models.Gap, label func(string) string) string {
	names := make([]string, len(gs))
	for i, g := range gs {
		names[i] = label(g.Value)
	}
	return utils.JoinAnd(names)
}

func recommendations(s models.CompetitorSummary) []string {
	var out []string
	o := s.Opportunities
	if len(o.EmotionalGaps) > 0 {
		out = append(out, fmt.Sprintf("Lean into the emotions they leave untouched: %s.",
			gapValues(o.EmotionalGaps, func(v string) string { return v })))
	}
	if len(o.TechniqueGaps) > 0 {
		out = append(out, fmt.Sprintf("Differentiate with persuasion techniques they avoid: %s.",
			gapValues(o.TechniqueGaps, func(v string) string { return models.Technique(v).Label() })))
	}
	if len(o.TriggerGaps) > 0 {
		out = append(out, fmt.Sprintf("Claim the motivations they ignore: %s.",
			gapValues(o.TriggerGaps, func(v string) string { return models.Trigger(v).Label() })))
	}

	switch s.Posture.ThreatLevel {
	case models.ThreatHigh:
		out = append(out, "Prepare a direct counter-message; their positioning attacks competitors head-on.")
	case models.ThreatMedium:
		out = append(out, "Sharpen your differentiation; they position against alternatives.")
	default:
		out = append(out, "Take a bolder leadership position; their posture is passive.")
	}

	switch {
	case s.Voice.Consistency < lowConsistency:
		out = append(out, "Own a single recognizable brand personality; theirs is inconsistent.")
	case s.Voice.Consistency >= highConsistency:
		out = append(out, "Stand apart with a contrasting personality; their voice is highly consistent.")
	}

	if len(o.VoiceGaps) > 0 {
		out = append(out, fmt.Sprintf("Adopt the voice qualities they lack: %s.",
			gapValues(o.VoiceGaps, func(v string) string { return v })))
	}

	if len(out) > maxRecommendations {
		out = out[:maxRecommendations]
	}
	return out
}

// topInsights ranks the first strength and first weakness of every record by
// how many records share them. Ties sort lexicographically so the result
// does not depend on record order.
func topInsights(records []models.AnalysisRecord) []string {
	counts := make(map[string]int)
	for _, r := range records {
		if len(r.Insights.Strengths) > 0 {
			counts[r.Insights.Strengths[0]]++
		}
		if len(r.Insights.Weaknesses) > 0 {
			counts[r.Insights.Weaknesses[0]]++
		}
	}
	out := make([]string, 0, len(counts))
	for k := range counts {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		if counts[out[i]] != counts[out[j]] {
			return counts[out[i]] > counts[out[j]]
		}
		return out[i] < out[j]
	})
	if len(out) > maxTopInsights {
		out = out[:maxTopInsights]
	}
	return out
}
