package models

// Team is a snapshot of one club's season statistics at prediction time.
// It is assembled per request from the standings provider (or the static
// fallback table) and never mutated afterwards.
type Team struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	League string `json:"league,omitempty"`

	Position int `json:"position"` // 1..N, 0 when unknown
	Points   int `json:"points"`
	Played   int `json:"played"`
	Wins     int `json:"wins"`
	Draws    int `json:"draws"`
	Losses   int `json:"losses"`

	GoalsScored   int `json:"goals_scored"`
	GoalsConceded int `json:"goals_conceded"`

	HomePlayed       int `json:"home_played"`
	HomeWins         int `json:"home_wins"`
	HomeDraws        int `json:"home_draws"`
	HomeLosses       int `json:"home_losses"`
	HomeGoalsFor     int `json:"home_goals_for"`
	HomeGoalsAgainst int `json:"home_goals_against"`

	AwayPlayed       int `json:"away_played"`
	AwayWins         int `json:"away_wins"`
	AwayDraws        int `json:"away_draws"`
	AwayLosses       int `json:"away_losses"`
	AwayGoalsFor     int `json:"away_goals_for"`
	AwayGoalsAgainst int `json:"away_goals_against"`

	// RecentForm encodes up to the last five results, most recent first,
	// using W/D/L characters (e.g. "WWDLW").
	RecentForm   string `json:"recent_form"`
	RecentWins   int    `json:"recent_wins"`
	RecentDraws  int    `json:"recent_draws"`
	RecentLosses int    `json:"recent_losses"`

	Injuries int `json:"injuries"`
}

// HomeRecordTotal returns the number of classified home results.
func (t *Team) HomeRecordTotal() int {
	return t.HomeWins + t.HomeDraws + t.HomeLosses
}

// AwayRecordTotal returns the number of classified away results.
func (t *Team) AwayRecordTotal() int {
	return t.AwayWins + t.AwayDraws + t.AwayLosses
}
