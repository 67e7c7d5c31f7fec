package models

// Technique is a named persuasion technique family.
type Technique string

const (
	TechniqueScarcity    Technique = "scarcity"
	TechniqueUrgency     Technique = "urgency"
	TechniqueSocialProof Technique = "social_proof"
	TechniqueAuthority   Technique = "authority"
	TechniqueReciprocity Technique = "reciprocity"
	TechniqueFOMO        Technique = "fomo"
	TechniqueExclusivity Technique = "exclusivity"
	TechniqueCommitment  Technique = "commitment"
	TechniqueLiking      Technique = "liking"
	TechniqueAnchoring   Technique = "anchoring"
	TechniqueNone        Technique = "none"
)

// Techniques lists the ten technique families in tie-break priority order.
var Techniques = []Technique{
	TechniqueScarcity, TechniqueUrgency, TechniqueSocialProof, TechniqueAuthority,
	TechniqueReciprocity, TechniqueFOMO, TechniqueExclusivity, TechniqueCommitment,
	TechniqueLiking, TechniqueAnchoring,
}

// PrimaryTechniques is the closed set a primary technique is drawn from.
var PrimaryTechniques = append(append([]Technique{}, Techniques...), TechniqueNone)

// HighPressure reports whether t adds extra pressure on the reader.
func (t Technique) HighPressure() bool {
	switch t {
	case TechniqueScarcity, TechniqueUrgency, TechniqueFOMO:
		return true
	}
	return false
}

// Label returns the technique name with underscores replaced, e.g. "social proof".
func (t Technique) Label() string {
	switch t {
	case TechniqueSocialProof:
		return "social proof"
	case TechniqueFOMO:
		return "FOMO"
	}
	return string(t)
}

// PressureIntensity buckets how hard the copy pushes.
type PressureIntensity string

const (
	PressureLight    PressureIntensity = "light"
	PressureModerate PressureIntensity = "moderate"
	PressureHeavy    PressureIntensity = "heavy"
)

// PressureIntensities lists the intensity labels from lightest to heaviest.
var PressureIntensities = []PressureIntensity{PressureLight, PressureModerate, PressureHeavy}

// TechniqueMatch is a single pattern hit.
type TechniqueMatch struct {
	Technique  Technique `json:"technique"  yaml:"technique"`
	Text       string    `json:"text"       yaml:"text"`
	Confidence float64   `json:"confidence" yaml:"confidence"` // 0.0 to 1.0
}

// TechniqueScore aggregates the matches of one technique.
type TechniqueScore struct {
	Technique  Technique `json:"technique"  yaml:"technique"`
	Count      int       `json:"count"      yaml:"count"`
	Confidence float64   `json:"confidence" yaml:"confidence"` // mean match confidence
}

// PersuasionResult is the output of the persuasion analyzer.
type PersuasionResult struct {
	Primary    Technique        `json:"primary_technique" yaml:"primary_technique"`
	Techniques []TechniqueScore `json:"techniques"        yaml:"techniques"` // ranked, count > 0
	Matches    []TechniqueMatch `json:"matches"           yaml:"matches"`
	// PressureScore ranges from 1 (no pressure) to 10.
	PressureScore float64           `json:"pressure_score" yaml:"pressure_score"`
	Intensity     PressureIntensity `json:"intensity"      yaml:"intensity"`
	Signals       []string          `json:"signals"        yaml:"signals"`
}

// Uses reports whether technique t was matched at least once.
func (r PersuasionResult) Uses(t Technique) bool {
	for _, ts := range r.Techniques {
		if ts.Technique == t {
			return true
		}
	}
	return false
}
