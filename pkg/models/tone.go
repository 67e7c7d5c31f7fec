package models

// Formality is the register of the copy.
type Formality string

const (
	FormalityConversational Formality = "conversational"
	FormalityProfessional   Formality = "professional"
	FormalityCasual         Formality = "casual"
	FormalityFormal         Formality = "formal"
)

// Formalities lists formality levels in tie-break priority order.
var Formalities = []Formality{
	FormalityConversational, FormalityProfessional, FormalityCasual, FormalityFormal,
}

// Weight is the position of the level on the 1-10 formality scale.
func (f Formality) Weight() float64 {
	switch f {
	case FormalityCasual:
		return 2
	case FormalityConversational:
		return 4
	case FormalityProfessional:
		return 7
	case FormalityFormal:
		return 9
	}
	return 5
}

// VoiceTrait is one of the six scored voice characteristics.
type VoiceTrait string

const (
	VoiceAuthority   VoiceTrait = "authority"
	VoiceUrgency     VoiceTrait = "urgency"
	VoiceEmpathy     VoiceTrait = "empathy"
	VoiceConfidence  VoiceTrait = "confidence"
	VoiceExclusivity VoiceTrait = "exclusivity"
	VoiceWarmth      VoiceTrait = "warmth"
)

// VoiceTraits lists the voice characteristics in tie-break priority order.
var VoiceTraits = []VoiceTrait{
	VoiceAuthority, VoiceUrgency, VoiceEmpathy, VoiceConfidence, VoiceExclusivity, VoiceWarmth,
}

// Personality is a brand-personality trait (Aaker dimensions).
type Personality string

const (
	PersonalitySincerity      Personality = "sincerity"
	PersonalityExcitement     Personality = "excitement"
	PersonalityCompetence     Personality = "competence"
	PersonalitySophistication Personality = "sophistication"
	PersonalityRuggedness     Personality = "ruggedness"
	PersonalityUndefined      Personality = "undefined"
)

// Personalities lists the personality traits in tie-break priority order.
var Personalities = []Personality{
	PersonalitySincerity, PersonalityExcitement, PersonalityCompetence,
	PersonalitySophistication, PersonalityRuggedness,
}

// PersonalityResult holds brand-personality detection.
type PersonalityResult struct {
	Primary  Personality             `json:"primary"  yaml:"primary"`
	Detected []Personality           `json:"detected" yaml:"detected"` // ranked, above threshold
	Scores   map[Personality]float64 `json:"scores"   yaml:"scores"`
}

// ToneResult is the output of the tone analyzer.
type ToneResult struct {
	Formality      Formality             `json:"formality"       yaml:"formality"`
	FormalityScore float64               `json:"formality_score" yaml:"formality_score"` // 1 (casual) to 10 (formal)
	LevelScores    map[Formality]float64 `json:"level_scores"    yaml:"level_scores"`
	// Voice maps each voice trait to a 1-10 score; 5 is neutral.
	Voice        map[VoiceTrait]float64 `json:"voice"         yaml:"voice"`
	Personality  PersonalityResult      `json:"personality"   yaml:"personality"`
	VoiceSummary string                 `json:"voice_summary" yaml:"voice_summary"`
	Signals      []string               `json:"signals"       yaml:"signals"`
}
