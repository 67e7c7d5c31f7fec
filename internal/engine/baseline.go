package engine

import "github.com/seenimoa/adlens/pkg/models"

// baseline is the fixed result for text too short to analyze. Every map is
// fully populated so consumers never see a missing key.
func baseline() models.Dimensions {
	scores := make(map[models.Emotion]float64, len(models.Emotions))
	breakdown := make(map[models.Emotion]float64, len(models.Emotions))
	for _, e := range models.Emotions {
		scores[e] = 0
		breakdown[e] = 0
	}
	levels := make(map[models.Formality]float64, len(models.Formalities))
	for _, f := range models.Formalities {
		levels[f] = 0
	}
	voice := make(map[models.VoiceTrait]float64, len(models.VoiceTraits))
	for _, v := range models.VoiceTraits {
		voice[v] = 5
	}
	personality := make(map[models.Personality]float64, len(models.Personalities))
	for _, p := range models.Personalities {
		personality[p] = 0
	}
	styles := make(map[models.FramingStyle]int, len(models.FramingStyles))
	for _, s := range models.FramingStyles {
		styles[s] = 0
	}
	triggers := make(map[models.Trigger]float64, len(models.Triggers))
	for _, t := range models.Triggers {
		triggers[t] = 0
	}
	families := make(map[models.MarketPosition]int, len(models.MarketPositions))
	for _, p := range models.MarketPositions {
		families[p] = 0
	}

	return models.Dimensions{
		Emotions: models.EmotionResult{
			Primary:        models.EmotionNeutral,
			Secondary:      []models.Emotion{},
			Scores:         scores,
			Breakdown:      breakdown,
			IntensityScore: 1,
			Arc:            models.ArcFlat,
			Polarity:       models.PolarityNeutral,
			Signals:        []string{},
		},
		Persuasion: models.PersuasionResult{
			Primary:       models.TechniqueNone,
			Techniques:    []models.TechniqueScore{},
			Matches:       []models.TechniqueMatch{},
			PressureScore: 1,
			Intensity:     models.PressureLight,
			Signals:       []string{},
		},
		Tone: models.ToneResult{
			Formality:      models.FormalityConversational,
			FormalityScore: 5,
			LevelScores:    levels,
			Voice:          voice,
			Personality: models.PersonalityResult{
				Primary:  models.PersonalityUndefined,
				Detected: []models.Personality{},
				Scores:   personality,
			},
			VoiceSummary: "Conversational tone.",
			Signals:      []string{},
		},
		Framing: models.FramingResult{
			PrimaryFrame:    models.FrameBalanced,
			Style:           models.StyleNone,
			StyleCounts:     styles,
			TimeOrientation: models.TimePresent,
			Focus:           models.FocusBalanced,
			Signals:         []string{},
		},
		Triggers: models.TriggerResult{
			Primary:  models.TriggerNone,
			Detected: []models.TriggerScore{},
			Scores:   triggers,
			Signals:  []string{},
		},
		Positioning: models.PositioningResult{
			MarketPosition:   models.PositionUnknown,
			Aggressiveness:   models.AggressivenessPassive,
			PositioningScore: 2,
			FamilyCounts:     families,
			Comparisons:      []string{},
			Signals:          []string{},
		},
	}
}
