package models

import "time"

// Confidence labels how much head-to-head history backed a prediction.
// It is a data-sufficiency signal, not a statistical confidence interval.
type Confidence string

const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceLow    Confidence = "Low"
)

// Weight maps a confidence label to a pick-ranking multiplier.
func (c Confidence) Weight() float64 {
	switch c {
	case ConfidenceHigh:
		return 1.0
	case ConfidenceMedium:
		return 0.85
	default:
		return 0.7
	}
}

// FactorBreakdown exposes the raw per-team factor values that went into a
// prediction, for diagnostics. All values are percentages of the pairwise
// share each team took of the factor.
type FactorBreakdown struct {
	FormA     float64 `json:"form_a"`
	FormB     float64 `json:"form_b"`
	GoalsA    float64 `json:"goals_a"`
	GoalsB    float64 `json:"goals_b"`
	VenueA    float64 `json:"venue_a"`
	VenueB    float64 `json:"venue_b"`
	PositionA float64 `json:"position_a"`
	PositionB float64 `json:"position_b"`
	H2HA      float64 `json:"h2h_a"`
	H2HB      float64 `json:"h2h_b"`
}

// Prediction is the result of one outcome-predictor invocation. Percentages
// are team A / draw / team B and always sum to 100.0 at one-decimal rounding.
type Prediction struct {
	HomeWinPct float64 `json:"home_win_pct"`
	DrawPct    float64 `json:"draw_pct"`
	AwayWinPct float64 `json:"away_win_pct"`

	Confidence Confidence      `json:"confidence"`
	KeyFactors []string        `json:"key_factors"`
	H2H        H2HRecord       `json:"h2h_summary"`
	Analysis   FactorBreakdown `json:"analysis"`

	// Assumptions lists data-quality fallbacks applied while computing the
	// prediction (missing form, estimated splits, empty H2H). Informational
	// only; never changes the returned probabilities.
	Assumptions []string `json:"assumptions,omitempty"`
}

// Favored returns "1", "X" or "2" for the highest of the three percentages.
func (p *Prediction) Favored() string {
	switch {
	case p.HomeWinPct >= p.DrawPct && p.HomeWinPct >= p.AwayWinPct:
		return "1"
	case p.AwayWinPct >= p.DrawPct:
		return "2"
	default:
		return "X"
	}
}

// StoredPrediction is a prediction as persisted in the history store,
// together with the fixture identity and, once known, the actual result.
type StoredPrediction struct {
	FixtureID    string     `json:"fixture_id"`
	League       string     `json:"league"`
	HomeTeamID   int64      `json:"home_team_id"`
	AwayTeamID   int64      `json:"away_team_id"`
	HomeTeam     string     `json:"home_team"`
	AwayTeam     string     `json:"away_team"`
	HomeWinPct   float64    `json:"home_win_pct"`
	DrawPct      float64    `json:"draw_pct"`
	AwayWinPct   float64    `json:"away_win_pct"`
	Confidence   Confidence `json:"confidence"`
	ModelVersion string     `json:"model_version"`
	CreatedAt    time.Time  `json:"created_at"`

	HomeGoals  int  `json:"home_goals"`
	AwayGoals  int  `json:"away_goals"`
	Settled    bool `json:"settled"`
	OutcomeHit bool `json:"outcome_hit"`
}

// AccuracySummary reports how stored predictions fared against results.
type AccuracySummary struct {
	Settled      int                `json:"settled"`
	OutcomeHits  int                `json:"outcome_hits"`
	HitRate      float64            `json:"hit_rate"`
	ByConfidence map[string]float64 `json:"by_confidence,omitempty"`
}
