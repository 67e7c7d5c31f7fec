package models

// Frame is the primary message frame.
type Frame string

const (
	FramePositive Frame = "positive"
	FrameNegative Frame = "negative"
	FrameBalanced Frame = "balanced"
)

// Frames lists the frame labels.
var Frames = []Frame{FramePositive, FrameNegative, FrameBalanced}

// FramingStyle is the signal subtype with the most matches.
type FramingStyle string

const (
	StyleGain        FramingStyle = "gain"
	StyleOpportunity FramingStyle = "opportunity"
	StyleLoss        FramingStyle = "loss"
	StyleRisk        FramingStyle = "risk"
	StyleNone        FramingStyle = "none"
)

// FramingStyles lists the signal subtypes in tie-break priority order.
var FramingStyles = []FramingStyle{StyleGain, StyleOpportunity, StyleLoss, StyleRisk}

// AllFramingStyles is the closed set including StyleNone.
var AllFramingStyles = append(append([]FramingStyle{}, FramingStyles...), StyleNone)

// Positive reports whether the style belongs to the gain/opportunity side.
func (s FramingStyle) Positive() bool {
	return s == StyleGain || s == StyleOpportunity
}

// TimeOrientation is the tense the copy is anchored in.
type TimeOrientation string

const (
	TimePresent TimeOrientation = "present"
	TimeFuture  TimeOrientation = "future"
	TimePast    TimeOrientation = "past"
)

// TimeOrientations lists the orientations; present resolves ties.
var TimeOrientations = []TimeOrientation{TimePresent, TimeFuture, TimePast}

// Focus says whether copy dwells on the problem or the solution.
type Focus string

const (
	FocusProblem  Focus = "problem"
	FocusSolution Focus = "solution"
	FocusBalanced Focus = "balanced"
)

// FramingResult is the output of the framing analyzer.
type FramingResult struct {
	PrimaryFrame    Frame                `json:"primary_frame"    yaml:"primary_frame"`
	Style           FramingStyle         `json:"style"            yaml:"style"`
	StyleCounts     map[FramingStyle]int `json:"style_counts"     yaml:"style_counts"`
	PositiveSignals int                  `json:"positive_signals" yaml:"positive_signals"`
	NegativeSignals int                  `json:"negative_signals" yaml:"negative_signals"`
	// Balance is (positive-negative)/(positive+negative), -1 to +1.
	Balance         float64         `json:"balance"          yaml:"balance"`
	TimeOrientation TimeOrientation `json:"time_orientation" yaml:"time_orientation"`
	Focus           Focus           `json:"focus"            yaml:"focus"`
	Signals         []string        `json:"signals"          yaml:"signals"`
}
