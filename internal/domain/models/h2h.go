package models

import "time"

// H2HMatch is one historical meeting between two specific teams. Home and
// away refer to that historical fixture, not the fixture being predicted.
type H2HMatch struct {
	HomeTeamID int64     `json:"home_team_id"`
	AwayTeamID int64     `json:"away_team_id"`
	HomeScore  int       `json:"home_score"`
	AwayScore  int       `json:"away_score"`
	Completed  bool      `json:"completed"`
	Date       time.Time `json:"date"`
}

// H2HRecord aggregates a head-to-head history from team A's perspective.
type H2HRecord struct {
	Total     int     `json:"total"`
	AWins     int     `json:"a_wins"`
	BWins     int     `json:"b_wins"`
	Draws     int     `json:"draws"`
	ARate     float64 `json:"a_rate"`
	BRate     float64 `json:"b_rate"`
	DrawRate  float64 `json:"draw_rate"`
	AGoals    int     `json:"a_goals"`
	BGoals    int     `json:"b_goals"`
	AAvgGoals float64 `json:"a_avg_goals"`
	BAvgGoals float64 `json:"b_avg_goals"`
}
