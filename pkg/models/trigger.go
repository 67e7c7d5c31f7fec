package models

// Trigger is a psychological motivation the copy appeals to.
type Trigger string

const (
	TriggerBelonging       Trigger = "belonging"
	TriggerStatus          Trigger = "status"
	TriggerSecurity        Trigger = "security"
	TriggerAchievement     Trigger = "achievement"
	TriggerCuriosity       Trigger = "curiosity"
	TriggerNovelty         Trigger = "novelty"
	TriggerNostalgia       Trigger = "nostalgia"
	TriggerAutonomy        Trigger = "autonomy"
	TriggerGratification   Trigger = "gratification"
	TriggerSelfImprovement Trigger = "self_improvement"
	TriggerNone            Trigger = "none"
)

// Triggers lists the ten triggers in tie-break priority order.
var Triggers = []Trigger{
	TriggerBelonging, TriggerStatus, TriggerSecurity, TriggerAchievement, TriggerCuriosity,
	TriggerNovelty, TriggerNostalgia, TriggerAutonomy, TriggerGratification, TriggerSelfImprovement,
}

// PrimaryTriggers is the closed set a primary trigger is drawn from.
var PrimaryTriggers = append(append([]Trigger{}, Triggers...), TriggerNone)

// Label returns the trigger name in prose form.
func (t Trigger) Label() string {
	switch t {
	case TriggerSelfImprovement:
		return "self-improvement"
	case TriggerGratification:
		return "instant gratification"
	}
	return string(t)
}

// TriggerScore is the accumulated intensity of one trigger.
type TriggerScore struct {
	Trigger   Trigger `json:"trigger"   yaml:"trigger"`
	Intensity float64 `json:"intensity" yaml:"intensity"` // 0 to 10
}

// TriggerResult is the output of the trigger analyzer.
type TriggerResult struct {
	Primary  Trigger             `json:"primary_trigger" yaml:"primary_trigger"`
	Detected []TriggerScore      `json:"detected"        yaml:"detected"` // ranked, intensity >= 1
	Scores   map[Trigger]float64 `json:"scores"          yaml:"scores"`
	Signals  []string            `json:"signals"         yaml:"signals"`
}

// Has reports whether trigger t was detected.
func (r TriggerResult) Has(t Trigger) bool {
	for _, d := range r.Detected {
		if d.Trigger == t {
			return true
		}
	}
	return false
}
