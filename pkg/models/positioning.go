package models

// MarketPosition is the market role the copy claims.
type MarketPosition string

const (
	PositionLeader     MarketPosition = "leader"
	PositionChallenger MarketPosition = "challenger"
	PositionNiche      MarketPosition = "niche"
	PositionDisruptor  MarketPosition = "disruptor"
	PositionUnknown    MarketPosition = "unknown"
)

// MarketPositions lists the positioning families in tie-break priority order.
var MarketPositions = []MarketPosition{
	PositionLeader, PositionChallenger, PositionNiche, PositionDisruptor,
}

// AllMarketPositions is the closed set including PositionUnknown.
var AllMarketPositions = append(append([]MarketPosition{}, MarketPositions...), PositionUnknown)

// Aggressiveness describes how directly the copy takes on competitors.
type Aggressiveness string

const (
	AggressivenessPassive     Aggressiveness = "passive"
	AggressivenessImplicit    Aggressiveness = "implicit"
	AggressivenessComparative Aggressiveness = "comparative"
	AggressivenessAggressive  Aggressiveness = "aggressive"
)

// AggressivenessLevels lists the tiers from least to most aggressive.
var AggressivenessLevels = []Aggressiveness{
	AggressivenessPassive, AggressivenessImplicit, AggressivenessComparative, AggressivenessAggressive,
}

// PositioningResult is the output of the positioning analyzer.
type PositioningResult struct {
	MarketPosition   MarketPosition         `json:"market_position"   yaml:"market_position"`
	Aggressiveness   Aggressiveness         `json:"aggressiveness"    yaml:"aggressiveness"`
	PositioningScore float64                `json:"positioning_score" yaml:"positioning_score"` // 1 to 10
	FamilyCounts     map[MarketPosition]int `json:"family_counts"     yaml:"family_counts"`
	Comparisons      []string               `json:"comparisons"       yaml:"comparisons"`
	Signals          []string               `json:"signals"           yaml:"signals"`
}
