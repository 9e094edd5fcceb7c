package engine

// Model tunables. All values are hand-tuned heuristics rather than fitted
// parameters; they are centralized here so their provenance stays visible
// and easy to revisit.

// ModelVersion tags stored predictions so accuracy can be tracked per tuning.
const ModelVersion = "v1"

// Factor weights for the outcome combination. Must sum to 1.0.
const (
	WeightH2H      = 0.20
	WeightForm     = 0.25
	WeightVenue    = 0.20
	WeightGoals    = 0.20
	WeightPosition = 0.15
)

// Form scoring: per-result points and recency weights, most recent first.
// Results past the weighted window carry FormTailWeight.
const (
	FormWinPoints  = 3.0
	FormDrawPoints = 1.0
	FormTailWeight = 0.5
)

var formRecencyWeights = [...]float64{1.5, 1.3, 1.1, 0.9, 0.7}

// NeutralFormScore is returned when no form information exists at all.
const NeutralFormScore = 0.5

// GoalsPerGameCeiling treats 2.5 goals per game as the practical ceiling
// for an excellent attack or defence in top-tier leagues.
const GoalsPerGameCeiling = 2.5

// Offensive/defensive mix for the combined goals-strength figure.
const (
	OffensiveStrengthShare = 0.6
	DefensiveStrengthShare = 0.4
)

// Proportional home/away estimate applied when explicit splits are missing.
const (
	EstimatedHomeShare = 0.6
	EstimatedAwayShare = 0.4
)

// Draw handling.
const (
	DefaultDrawRate    = 0.28
	CloseFormThreshold = 0.15
	CloseFormDrawBonus = 0.10
	DrawFloorPct       = 15.0
	DrawCeilingPct     = 35.0
)

// Neutral head-to-head rates used when no meetings are on record.
const (
	NeutralWinRate  = 0.33
	NeutralDrawRate = 0.34
)

// Confidence thresholds on the H2H sample size.
const (
	HighConfidenceH2H   = 5
	MediumConfidenceH2H = 3
)

// MaxKeyFactors bounds the templated narrative list.
const MaxKeyFactors = 4

// DefaultLeagueSize is the assumed table length when positions are small
// or unknown.
const DefaultLeagueSize = 20

// Derived-market constants.
const (
	MarketYesThresholdPct = 50.0
	DoubleChanceCapPct    = 99.0
	FirstHalfGoalShare    = 0.42
	SecondHalfGoalShare   = 0.58
	HighScoringH2HAvg     = 3.0
)

// Injury-impact thresholds on the raw squad injury count difference.
const (
	InjuryMajorGap = 2
)
