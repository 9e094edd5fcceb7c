package models

// MarketRate is a hit-rate for a yes/no market over the H2H sample, with
// the Yes label applied at the 50% threshold.
type MarketRate struct {
	Pct float64 `json:"pct"`
	Yes bool    `json:"yes"`
}

// GoalsAnalysis summarizes goal patterns over a head-to-head sample.
type GoalsAnalysis struct {
	SampleSize    int     `json:"sample_size"`
	AvgTotalGoals float64 `json:"avg_total_goals"`
	AvgHomeGoals  float64 `json:"avg_home_goals"`
	AvgAwayGoals  float64 `json:"avg_away_goals"`

	Over05 MarketRate `json:"over_0_5"`
	Over15 MarketRate `json:"over_1_5"`
	Over25 MarketRate `json:"over_2_5"`
	Over35 MarketRate `json:"over_3_5"`
	BTTS   MarketRate `json:"btts"`

	// Naive first/second-half estimate derived from the total average with
	// a fixed split, not from half-time data.
	FirstHalfAvg  float64 `json:"first_half_avg"`
	SecondHalfAvg float64 `json:"second_half_avg"`
}

// DoubleChance covers the three two-outcome combinations, each the sum of
// two outcome percentages clamped at 99.
type DoubleChance struct {
	HomeOrDraw float64 `json:"home_or_draw"`
	AwayOrDraw float64 `json:"away_or_draw"`
	HomeOrAway float64 `json:"home_or_away"`
}

// MatchAnalysis is the full per-fixture output of the jackpot analyzer:
// the core prediction plus the derived-market annotations.
type MatchAnalysis struct {
	Fixture        Fixture       `json:"fixture"`
	HomeTeam       string        `json:"home_team"`
	AwayTeam       string        `json:"away_team"`
	Prediction     Prediction    `json:"prediction"`
	Goals          GoalsAnalysis `json:"goals"`
	DoubleChance   DoubleChance  `json:"double_chance"`
	Pick           string        `json:"pick"` // 1, X or 2
	HomeMotivation string        `json:"home_motivation"`
	AwayMotivation string        `json:"away_motivation"`
	InjuryImpact   string        `json:"injury_impact"`
}

// JackpotSummary aggregates a multi-match slate.
type JackpotSummary struct {
	Fixtures       int            `json:"fixtures"`
	PickCounts     map[string]int `json:"pick_counts"`
	HighConfidence int            `json:"high_confidence"`
	AvgTopPct      float64        `json:"avg_top_pct"`
}
