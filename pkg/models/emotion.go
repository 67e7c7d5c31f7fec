// Package models defines the core data structures used throughout adlens.
package models

// Emotion is one of the eight scored emotions, or EmotionNeutral when the
// text carries no emotional signal.
type Emotion string

const (
	EmotionJoy          Emotion = "joy"
	EmotionTrust        Emotion = "trust"
	EmotionAnticipation Emotion = "anticipation"
	EmotionSurprise     Emotion = "surprise"
	EmotionFear         Emotion = "fear"
	EmotionSadness      Emotion = "sadness"
	EmotionAnger        Emotion = "anger"
	EmotionDisgust      Emotion = "disgust"
	EmotionNeutral      Emotion = "neutral"
)

// Emotions lists the scored emotions in tie-break priority order.
var Emotions = []Emotion{
	EmotionJoy, EmotionTrust, EmotionAnticipation, EmotionSurprise,
	EmotionFear, EmotionSadness, EmotionAnger, EmotionDisgust,
}

// PrimaryEmotions is the closed set a primary emotion is drawn from.
var PrimaryEmotions = append(append([]Emotion{}, Emotions...), EmotionNeutral)

// PositiveEmotions and NegativeEmotions are the polarity groups used by
// polarity detection and the overall sentiment score. Surprise belongs to neither.
var (
	PositiveEmotions = []Emotion{EmotionJoy, EmotionTrust, EmotionAnticipation}
	NegativeEmotions = []Emotion{EmotionFear, EmotionSadness, EmotionAnger, EmotionDisgust}
)

// Valid reports whether e is a member of the closed emotion set.
func (e Emotion) Valid() bool {
	switch e {
	case EmotionJoy, EmotionTrust, EmotionAnticipation, EmotionSurprise,
		EmotionFear, EmotionSadness, EmotionAnger, EmotionDisgust, EmotionNeutral:
		return true
	}
	return false
}

// EmotionalArc names a two-stage emotional trajectory across the text.
type EmotionalArc string

const (
	ArcProblemSolution       EmotionalArc = "problem_solution"
	ArcFearTrust             EmotionalArc = "fear_trust"
	ArcCuriositySatisfaction EmotionalArc = "curiosity_satisfaction"
	ArcAspirationAction      EmotionalArc = "aspiration_action"
	ArcFlat                  EmotionalArc = "flat"
)

// EmotionalArcs lists all arcs; the first four are tested in this order.
var EmotionalArcs = []EmotionalArc{
	ArcProblemSolution, ArcFearTrust, ArcCuriositySatisfaction, ArcAspirationAction, ArcFlat,
}

// Label returns a human-readable arc name, e.g. "problem-to-solution".
func (a EmotionalArc) Label() string {
	switch a {
	case ArcProblemSolution:
		return "problem-to-solution"
	case ArcFearTrust:
		return "fear-to-trust"
	case ArcCuriositySatisfaction:
		return "curiosity-to-satisfaction"
	case ArcAspirationAction:
		return "aspiration-to-action"
	case ArcFlat:
		return "flat"
	}
	return string(a)
}

// Polarity is the dominant emotional direction of a text.
type Polarity string

const (
	PolarityPositive Polarity = "positive"
	PolarityNegative Polarity = "negative"
	PolarityMixed    Polarity = "mixed"
	PolarityNeutral  Polarity = "neutral"
)

// EmotionResult is the output of the emotion analyzer.
type EmotionResult struct {
	Primary   Emotion             `json:"primary"              yaml:"primary"`
	Secondary []Emotion           `json:"secondary"            yaml:"secondary"`
	Scores    map[Emotion]float64 `json:"scores"               yaml:"scores"`    // weighted, modifier-adjusted
	Breakdown map[Emotion]float64 `json:"breakdown"            yaml:"breakdown"` // share of total, 0..1
	// IntensityScore ranges from 1 (flat) to 10 (very intense).
	IntensityScore float64      `json:"intensity_score" yaml:"intensity_score"`
	Arc            EmotionalArc `json:"arc"             yaml:"arc"`
	Polarity       Polarity     `json:"polarity"        yaml:"polarity"`
	Signals        []string     `json:"signals"         yaml:"signals"`
}
