package engine

import "PitchCast/internal/domain/models"

// GoalsStrength holds normalized attack/defence ratios for one team at one
// venue role, each in [0,1].
type GoalsStrength struct {
	Offensive float64 `json:"offensive"`
	Defensive float64 `json:"defensive"`
	Combined  float64 `json:"combined"`
}

// CalcGoalsStrength derives goal-based strength for a team playing at the
// given venue role. Explicit home/away splits are preferred; when a team
// has no recorded games for the split, season totals are apportioned with
// the fixed home/away share estimate. Games played is floored at one so
// the per-game rates never divide by zero.
func CalcGoalsStrength(t *models.Team, home bool) GoalsStrength {
	var gf, ga, gp float64
	if home {
		gf, ga, gp = float64(t.HomeGoalsFor), float64(t.HomeGoalsAgainst), float64(t.HomePlayed)
		if gp == 0 && t.Played > 0 {
			gf = float64(t.GoalsScored) * EstimatedHomeShare
			ga = float64(t.GoalsConceded) * EstimatedHomeShare
			gp = float64(t.Played) * EstimatedHomeShare
		}
	} else {
		gf, ga, gp = float64(t.AwayGoalsFor), float64(t.AwayGoalsAgainst), float64(t.AwayPlayed)
		if gp == 0 && t.Played > 0 {
			gf = float64(t.GoalsScored) * EstimatedAwayShare
			ga = float64(t.GoalsConceded) * EstimatedAwayShare
			gp = float64(t.Played) * EstimatedAwayShare
		}
	}
	if gp < 1 {
		gp = 1
	}

	off := gf / gp / GoalsPerGameCeiling
	if off > 1 {
		off = 1
	}
	def := 1 - ga/gp/GoalsPerGameCeiling
	if def < 0 {
		def = 0
	}

	return GoalsStrength{
		Offensive: off,
		Defensive: def,
		Combined:  OffensiveStrengthShare*off + DefensiveStrengthShare*def,
	}
}
