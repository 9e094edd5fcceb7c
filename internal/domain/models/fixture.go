package models

import (
	"fmt"
	"time"
)

// Fixture identifies one upcoming match to be predicted.
type Fixture struct {
	ID         string    `json:"id,omitempty"`
	League     string    `json:"league"`
	HomeTeamID int64     `json:"home_team_id"`
	AwayTeamID int64     `json:"away_team_id"`
	KickoffUTC time.Time `json:"kickoff_utc,omitempty"`
}

// Key returns a stable identifier for the fixture, falling back to the
// team pair when the provider supplied no ID.
func (f *Fixture) Key() string {
	if f.ID != "" {
		return f.ID
	}
	return fmt.Sprintf("%s:%d-%d", f.League, f.HomeTeamID, f.AwayTeamID)
}

// MatchResult is a final score event from the live feed or the results topic.
type MatchResult struct {
	FixtureID  string    `json:"fixture_id"`
	League     string    `json:"league"`
	HomeTeamID int64     `json:"home_team_id"`
	AwayTeamID int64     `json:"away_team_id"`
	HomeGoals  int       `json:"home_goals"`
	AwayGoals  int       `json:"away_goals"`
	FinishedAt time.Time `json:"finished_at"`
}

// DailyPick is one ranked selection published to the picks topic.
type DailyPick struct {
	Fixture    Fixture    `json:"fixture"`
	HomeTeam   string     `json:"home_team"`
	AwayTeam   string     `json:"away_team"`
	Pick       string     `json:"pick"`
	PickPct    float64    `json:"pick_pct"`
	Edge       float64    `json:"edge"`
	Confidence Confidence `json:"confidence"`
	Reasons    []string   `json:"reasons"`
	Date       string     `json:"date"`
}
