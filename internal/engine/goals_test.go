package engine

import (
	"testing"

	"PitchCast/internal/domain/models"
)

func TestGoalsStrengthRanges(t *testing.T) {
	teams := []models.Team{
		{},
		{Played: 10, GoalsScored: 50, GoalsConceded: 0},
		{Played: 10, GoalsScored: 0, GoalsConceded: 50},
		{HomePlayed: 10, HomeGoalsFor: 30, HomeGoalsAgainst: 5},
		{AwayPlayed: 10, AwayGoalsFor: 5, AwayGoalsAgainst: 30},
	}
	for i, tm := range teams {
		for _, home := range []bool{true, false} {
			gs := CalcGoalsStrength(&tm, home)
			if gs.Offensive < 0 || gs.Offensive > 1 || gs.Defensive < 0 || gs.Defensive > 1 ||
				gs.Combined < 0 || gs.Combined > 1 {
				t.Fatalf("team %d home=%v: strength out of range: %+v", i, home, gs)
			}
		}
	}
}

func TestGoalsStrengthHomeSplit(t *testing.T) {
	tm := models.Team{HomePlayed: 10, HomeGoalsFor: 25, HomeGoalsAgainst: 0}
	gs := CalcGoalsStrength(&tm, true)
	// 2.5 goals per game is the ceiling, so this attack maxes out.
	if gs.Offensive != 1.0 {
		t.Fatalf("expected offensive 1.0, got %v", gs.Offensive)
	}
	if gs.Defensive != 1.0 {
		t.Fatalf("expected defensive 1.0 with no goals conceded, got %v", gs.Defensive)
	}
}

func TestGoalsStrengthEstimatedSplit(t *testing.T) {
	// No explicit splits: season totals are apportioned 60/40, so the
	// estimated home rate equals the season per-game rate.
	tm := models.Team{Played: 20, GoalsScored: 25, GoalsConceded: 25}
	gs := CalcGoalsStrength(&tm, true)
	wantOff := (25.0 * 0.6) / (20.0 * 0.6) / GoalsPerGameCeiling
	if diff := gs.Offensive - wantOff; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("estimated offensive: want %v got %v", wantOff, gs.Offensive)
	}
}

func TestGoalsStrengthZeroGamesGuard(t *testing.T) {
	gs := CalcGoalsStrength(&models.Team{GoalsScored: 10}, true)
	if gs.Offensive < 0 || gs.Offensive > 1 {
		t.Fatalf("zero games should not blow up: %+v", gs)
	}
}
