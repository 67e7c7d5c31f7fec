package models

// Bucket is one entry of a frequency distribution over a closed enum.
type Bucket[T ~string] struct {
	Value T       `json:"value" yaml:"value"`
	Count int     `json:"count" yaml:"count"`
	Share float64 `json:"share" yaml:"share"` // Count / records analyzed
}

// Distribution is a frequency distribution listed in enum order.
type Distribution[T ~string] []Bucket[T]

// Count returns the count recorded for v.
func (d Distribution[T]) Count(v T) int {
	for _, b := range d {
		if b.Value == v {
			return b.Count
		}
	}
	return 0
}

// Share returns the share recorded for v.
func (d Distribution[T]) Share(v T) float64 {
	for _, b := range d {
		if b.Value == v {
			return b.Share
		}
	}
	return 0
}

// Usage counts how many records used a value; values are not exclusive so
// rates do not sum to one.
type Usage[T ~string] struct {
	Value T       `json:"value" yaml:"value"`
	Count int     `json:"count" yaml:"count"`
	Rate  float64 `json:"rate"  yaml:"rate"` // Count / records analyzed
}

// ThreatLevel is the competitive threat a competitor's messaging poses.
type ThreatLevel string

const (
	ThreatLow    ThreatLevel = "low"
	ThreatMedium ThreatLevel = "medium"
	ThreatHigh   ThreatLevel = "high"
)

// EmotionalProfile aggregates emotion results.
type EmotionalProfile struct {
	Distribution     Distribution[Emotion]      `json:"distribution"      yaml:"distribution"`
	Dominant         Emotion                    `json:"dominant"          yaml:"dominant"`
	Consistency      float64                    `json:"consistency"       yaml:"consistency"`
	AverageIntensity float64                    `json:"average_intensity" yaml:"average_intensity"`
	Arcs             Distribution[EmotionalArc] `json:"arcs"              yaml:"arcs"`
	Presence         []Usage[Emotion]           `json:"presence"          yaml:"presence"`
}

// PersuasionProfile aggregates persuasion results.
type PersuasionProfile struct {
	Distribution    Distribution[Technique]         `json:"distribution"     yaml:"distribution"`
	Dominant        Technique                       `json:"dominant"         yaml:"dominant"`
	Usage           []Usage[Technique]              `json:"usage"            yaml:"usage"`
	MostUsed        []Usage[Technique]              `json:"most_used"        yaml:"most_used"`
	AveragePressure float64                         `json:"average_pressure" yaml:"average_pressure"`
	Intensities     Distribution[PressureIntensity] `json:"intensities"      yaml:"intensities"`
	Style           string                          `json:"style"            yaml:"style"`
}

// TriggerProfile aggregates trigger results.
type TriggerProfile struct {
	Distribution Distribution[Trigger] `json:"distribution" yaml:"distribution"`
	Dominant     Trigger               `json:"dominant"     yaml:"dominant"`
	Usage        []Usage[Trigger]      `json:"usage"        yaml:"usage"`
	MostUsed     []Usage[Trigger]      `json:"most_used"    yaml:"most_used"`
}

// VoiceProfile aggregates tone results.
type VoiceProfile struct {
	Traits            []Usage[Personality]    `json:"traits"             yaml:"traits"`
	TopTraits         []Personality           `json:"top_traits"         yaml:"top_traits"`
	Formality         Distribution[Formality] `json:"formality"          yaml:"formality"`
	DominantFormality Formality               `json:"dominant_formality" yaml:"dominant_formality"`
	AverageFormality  float64                 `json:"average_formality"  yaml:"average_formality"`
	AverageVoice      map[VoiceTrait]float64  `json:"average_voice"      yaml:"average_voice"`
	Consistency       float64                 `json:"consistency"        yaml:"consistency"`
}

// FramingPatterns aggregates framing results.
type FramingPatterns struct {
	Frames                  Distribution[Frame]           `json:"frames"                    yaml:"frames"`
	DominantFrame           Frame                         `json:"dominant_frame"            yaml:"dominant_frame"`
	Styles                  Distribution[FramingStyle]    `json:"styles"                    yaml:"styles"`
	DominantStyle           FramingStyle                  `json:"dominant_style"            yaml:"dominant_style"`
	TimeOrientations        Distribution[TimeOrientation] `json:"time_orientations"         yaml:"time_orientations"`
	DominantTimeOrientation TimeOrientation               `json:"dominant_time_orientation" yaml:"dominant_time_orientation"`
}

// CompetitivePosture aggregates positioning results.
type CompetitivePosture struct {
	AverageScore           float64                      `json:"average_score"          yaml:"average_score"`
	DominantAggressiveness Aggressiveness               `json:"dominant_aggressiveness" yaml:"dominant_aggressiveness"`
	Aggressiveness         Distribution[Aggressiveness] `json:"aggressiveness"         yaml:"aggressiveness"`
	MarketPositions        Distribution[MarketPosition] `json:"market_positions"       yaml:"market_positions"`
	DominantPosition       MarketPosition               `json:"dominant_position"      yaml:"dominant_position"`
	ThreatLevel            ThreatLevel                  `json:"threat_level"           yaml:"threat_level"`
}

// Gap is an underused category value with a human-readable description.
type Gap struct {
	Value       string `json:"value"       yaml:"value"`
	Description string `json:"description" yaml:"description"`
}

// Opportunities lists the messaging territory a competitor leaves unused.
type Opportunities struct {
	EmotionalGaps []Gap `json:"emotional_gaps" yaml:"emotional_gaps"`
	TechniqueGaps []Gap `json:"technique_gaps" yaml:"technique_gaps"`
	TriggerGaps   []Gap `json:"trigger_gaps"   yaml:"trigger_gaps"`
	VoiceGaps     []Gap `json:"voice_gaps"     yaml:"voice_gaps"`
}

// CompetitorSummary is the strategic summary derived from a competitor's
// analysis records. It is computed on demand and never persisted.
type CompetitorSummary struct {
	Competitor      string             `json:"competitor"       yaml:"competitor"`
	AdsAnalyzed     int                `json:"ads_analyzed"     yaml:"ads_analyzed"`
	Emotional       EmotionalProfile   `json:"emotional"        yaml:"emotional"`
	Persuasion      PersuasionProfile  `json:"persuasion"       yaml:"persuasion"`
	Triggers        TriggerProfile     `json:"triggers"         yaml:"triggers"`
	Voice           VoiceProfile       `json:"voice"            yaml:"voice"`
	Framing         FramingPatterns    `json:"framing"          yaml:"framing"`
	Posture         CompetitivePosture `json:"posture"          yaml:"posture"`
	Opportunities   Opportunities      `json:"opportunities"    yaml:"opportunities"`
	Recommendations []string           `json:"recommendations"  yaml:"recommendations"`
	TopInsights     []string           `json:"top_insights"     yaml:"top_insights"`
}

// CompetitorAnalysis bundles the per-ad records with their summary.
type CompetitorAnalysis struct {
	Records []AnalysisRecord  `json:"records" yaml:"records"`
	Summary CompetitorSummary `json:"summary" yaml:"summary"`
}
