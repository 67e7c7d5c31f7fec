// Package insights turns the six dimension results of one analysis into
// narrative descriptions, strengths, weaknesses and recommendations.
package insights

import (
	"fmt"
	"strings"

	"github.com/seenimoa/adlens/pkg/models"
	"github.com/seenimoa/adlens/pkg/utils"
)

// List caps.
const (
	MaxStrengths       = 5
	MaxWeaknesses      = 5
	MaxRecommendations = 6
)

// ShortTextRecommendation is the only recommendation given for text that is
// too short to analyze.
const ShortTextRecommendation = "Provide more ad copy (at least a full sentence) for a meaningful analysis."

const shortTextNarrative = "The text is too short to analyze."

// rule pairs a predicate with the sentence it contributes.
type rule struct {
	when func(d models.Dimensions) bool
	text func(d models.Dimensions) string
}

func static(s string) func(models.Dimensions) string {
	return func(models.Dimensions) string { return s }
}

var strengthRules = []rule{
	{func(d models.Dimensions) bool { return d.Emotions.IntensityScore >= 6 },
		static("Strong emotional intensity grabs attention.")},
	{func(d models.Dimensions) bool { return d.Emotions.Arc != models.ArcFlat },
		func(d models.Dimensions) string {
			return fmt.Sprintf("Clear %s emotional arc guides the reader.", d.Emotions.Arc.Label())
		}},
	{func(d models.Dimensions) bool { n := len(d.Persuasion.Techniques); return n >= 2 && n <= 4 },
		static("Balanced mix of persuasion techniques.")},
	{func(d models.Dimensions) bool {
		return d.Emotions.Primary == models.EmotionTrust || d.Emotions.Breakdown[models.EmotionTrust] >= 0.25
	}, static("Builds trust and credibility.")},
	{func(d models.Dimensions) bool { return d.Tone.Voice[models.VoiceAuthority] >= 7 },
		static("Authoritative voice signals expertise.")},
	{func(d models.Dimensions) bool { return d.Tone.Personality.Primary != models.PersonalityUndefined },
		func(d models.Dimensions) string {
			return fmt.Sprintf("Distinct %s brand personality.", d.Tone.Personality.Primary)
		}},
	{func(d models.Dimensions) bool { return len(d.Triggers.Detected) >= 2 },
		func(d models.Dimensions) string {
			return fmt.Sprintf("Appeals to several motivations, led by %s and %s.",
				d.Triggers.Detected[0].Trigger.Label(), d.Triggers.Detected[1].Trigger.Label())
		}},
	{func(d models.Dimensions) bool { return d.Framing.PrimaryFrame == models.FramePositive },
		static("Positive, benefit-led framing.")},
	{func(d models.Dimensions) bool { return d.Positioning.MarketPosition != models.PositionUnknown },
		func(d models.Dimensions) string {
			return fmt.Sprintf("Clear %s market positioning.", d.Positioning.MarketPosition)
		}},
	{func(d models.Dimensions) bool { return d.Tone.Voice[models.VoiceWarmth] >= 7 },
		static("Warm, approachable voice.")},
}

var weaknessRules = []rule{
	{func(d models.Dimensions) bool { return d.Emotions.IntensityScore < 3 },
		static("Low emotional intensity may fail to engage.")},
	{func(d models.Dimensions) bool { return d.Persuasion.Primary == models.TechniqueNone },
		static("No persuasion techniques to drive action.")},
	{func(d models.Dimensions) bool { return d.Persuasion.PressureScore >= 8 },
		static("Heavy pressure tactics risk alienating readers.")},
	{func(d models.Dimensions) bool { return d.Triggers.Primary == models.TriggerNone },
		static("Does not tap a clear psychological motivation.")},
	{func(d models.Dimensions) bool { return d.Tone.Personality.Primary == models.PersonalityUndefined },
		static("Brand personality is undefined.")},
	{func(d models.Dimensions) bool {
		return d.Framing.PrimaryFrame == models.FrameNegative && d.Framing.Focus == models.FocusProblem
	}, static("Dwells on problems with negative framing.")},
	{func(d models.Dimensions) bool { return d.Emotions.Polarity == models.PolarityMixed },
		static("Mixed emotional signals blur the message.")},
	{func(d models.Dimensions) bool { return d.Tone.Voice[models.VoiceConfidence] < 4 },
		static("Hedging language undercuts confidence.")},
	{func(d models.Dimensions) bool { return d.Positioning.Aggressiveness == models.AggressivenessAggressive },
		static("Aggressive competitor comparisons may invite backlash.")},
}

var recommendationRules = []rule{
	{func(d models.Dimensions) bool { return d.Emotions.IntensityScore < 4 },
		static("Add vivid emotional language to raise intensity.")},
	{func(d models.Dimensions) bool { return len(d.Persuasion.Techniques) == 0 },
		static("Introduce a persuasion technique such as social proof or urgency.")},
	{func(d models.Dimensions) bool { return len(d.Persuasion.Techniques) == 1 },
		func(d models.Dimensions) string {
			return fmt.Sprintf("Pair %s with a complementary technique to strengthen the case.",
				d.Persuasion.Techniques[0].Technique.Label())
		}},
	{func(d models.Dimensions) bool { return d.Persuasion.PressureScore >= 8 },
		static("Ease off high-pressure tactics to protect brand trust.")},
	{func(d models.Dimensions) bool { return d.Triggers.Primary == models.TriggerNone },
		static("Anchor the message in a core motivation such as belonging or security.")},
	{func(d models.Dimensions) bool { return d.Tone.Personality.Primary == models.PersonalityUndefined },
		static("Define a consistent brand personality.")},
	{func(d models.Dimensions) bool { return d.Emotions.Arc == models.ArcFlat },
		static("Structure the copy as a problem-to-solution story.")},
	{func(d models.Dimensions) bool { return d.Emotions.Breakdown[models.EmotionTrust] < 0.1 },
		static("Add trust signals such as guarantees or customer reviews.")},
	{func(d models.Dimensions) bool { return d.Positioning.Aggressiveness == models.AggressivenessPassive },
		static("Differentiate from competitors with a clearer positioning claim.")},
	{func(d models.Dimensions) bool { return d.Framing.PrimaryFrame == models.FrameNegative },
		static("Reframe losses as gains to lift the overall tone.")},
}

// Generate synthesizes insights from d. Every rule table is evaluated in
// full; the lists are truncated to their caps afterwards.
func Generate(d models.Dimensions) models.StrategicInsights {
	return models.StrategicInsights{
		EmotionalStrategy:  emotionalStrategy(d.Emotions),
		PersuasionApproach: persuasionApproach(d.Persuasion),
		BrandVoice:         d.Tone.VoiceSummary,
		CompetitivePosture: competitivePosture(d.Positioning),
		Strengths:          apply(strengthRules, d, MaxStrengths),
		Weaknesses:         apply(weaknessRules, d, MaxWeaknesses),
		Recommendations:    apply(recommendationRules, d, MaxRecommendations),
	}
}

// ShortText returns the insights reported for text below the minimum length.
func ShortText() models.StrategicInsights {
	return models.StrategicInsights{
		EmotionalStrategy:  shortTextNarrative,
		PersuasionApproach: shortTextNarrative,
		BrandVoice:         shortTextNarrative,
		CompetitivePosture: shortTextNarrative,
		Strengths:          []string{},
		Weaknesses:         []string{},
		Recommendations:    []string{ShortTextRecommendation},
	}
}

func apply(rules []rule, d models.Dimensions, limit int) []string {
	out := []string{}
	for _, r := range rules {
		if r.when(d) {
			out = append(out, r.text(d))
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func emotionalStrategy(e models.EmotionResult) string {
	if e.Primary == models.EmotionNeutral {
		return "Emotionally neutral copy with no dominant feeling."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Leads with %s at %s intensity", e.Primary, utils.FormatScore(e.IntensityScore))
	if len(e.Secondary) > 0 {
		names := make([]string, len(e.Secondary))
		for i, s := range e.Secondary {
			names[i] = string(s)
		}
		b.WriteString(", supported by ")
		b.WriteString(utils.JoinAnd(names))
	}
	if e.Arc != models.ArcFlat {
		fmt.Fprintf(&b, ", following a %s arc", e.Arc.Label())
	}
	b.WriteString(".")
	return b.String()
}

func persuasionApproach(p models.PersuasionResult) string {
	if len(p.Techniques) == 0 {
		return "No recognizable persuasion techniques."
	}
	names := make([]string, 0, 2)
	for _, t := range p.Techniques {
		if len(names) == 2 {
			break
		}
		names = append(names, t.Technique.Label())
	}
	return fmt.Sprintf("%s pressure built on %s (pressure %s).",
		utils.Title(string(p.Intensity)), utils.JoinAnd(names), utils.FormatScore(p.PressureScore))
}

func competitivePosture(p models.PositioningResult) string {
	level := utils.Title(string(p.Aggressiveness))
	if p.MarketPosition == models.PositionUnknown {
		return fmt.Sprintf("%s positioning with no clear market role, scoring %s.",
			level, utils.FormatScore(p.PositioningScore))
	}
	return fmt.Sprintf("%s positioning as a %s, scoring %s.",
		level, p.MarketPosition, utils.FormatScore(p.PositioningScore))
}
