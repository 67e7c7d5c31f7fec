package models

import "time"

// Confidence represents the strength of a judgement (0.0 to 1.0).
type Confidence float64

// Sentiment is the overall sentiment label.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// OverallSentiment is derived from the emotion breakdown and the primary frame.
type OverallSentiment struct {
	Sentiment  Sentiment  `json:"sentiment"  yaml:"sentiment"`
	Score      float64    `json:"score"      yaml:"score"` // -1.0 to +1.0
	Confidence Confidence `json:"confidence" yaml:"confidence"`
}

// Dimensions groups the six dimension results of one analysis.
type Dimensions struct {
	Emotions    EmotionResult     `json:"emotions"    yaml:"emotions"`
	Persuasion  PersuasionResult  `json:"persuasion"  yaml:"persuasion"`
	Tone        ToneResult        `json:"tone"        yaml:"tone"`
	Framing     FramingResult     `json:"framing"     yaml:"framing"`
	Triggers    TriggerResult     `json:"triggers"    yaml:"triggers"`
	Positioning PositioningResult `json:"positioning" yaml:"positioning"`
}

// StrategicInsights is the narrative synthesis of one analysis.
type StrategicInsights struct {
	EmotionalStrategy  string   `json:"emotional_strategy"  yaml:"emotional_strategy"`
	PersuasionApproach string   `json:"persuasion_approach" yaml:"persuasion_approach"`
	BrandVoice         string   `json:"brand_voice"         yaml:"brand_voice"`
	CompetitivePosture string   `json:"competitive_posture" yaml:"competitive_posture"`
	Strengths          []string `json:"strengths"           yaml:"strengths"`
	Weaknesses         []string `json:"weaknesses"          yaml:"weaknesses"`
	Recommendations    []string `json:"recommendations"     yaml:"recommendations"`
}

// AnalysisMetadata describes how a record was produced.
type AnalysisMetadata struct {
	WordCount      int     `json:"word_count"      yaml:"word_count"`
	SentenceCount  int     `json:"sentence_count"  yaml:"sentence_count"`
	EngineVersion  string  `json:"engine_version"  yaml:"engine_version"`
	LexiconVersion string  `json:"lexicon_version" yaml:"lexicon_version"`
	ElapsedMs      float64 `json:"elapsed_ms"      yaml:"elapsed_ms"`
	Truncated      bool    `json:"truncated"       yaml:"truncated"`
}

// AnalysisRecord is the full psychological profile of one piece of ad copy.
// It is never mutated after the engine returns it, except for AdID.
type AnalysisRecord struct {
	AdID       string    `json:"ad_id,omitempty" yaml:"ad_id,omitempty"`
	Text       string    `json:"text"            yaml:"text"`
	AnalyzedAt time.Time `json:"analyzed_at"     yaml:"analyzed_at"`
	Dimensions `yaml:",inline"`
	Overall    OverallSentiment  `json:"overall"  yaml:"overall"`
	Insights   StrategicInsights `json:"insights" yaml:"insights"`
	Metadata   AnalysisMetadata  `json:"metadata" yaml:"metadata"`
}
