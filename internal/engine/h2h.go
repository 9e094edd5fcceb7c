package engine

import "PitchCast/internal/domain/models"

// H2HAdvantage aggregates historical meetings between team A and team B
// into win/draw rates and goal tallies from A's perspective. Goals are
// attributed by which side was home in each historical record, not in the
// fixture being predicted. Matches without a completed score are skipped.
//
// An empty history returns the neutral no-data rates rather than an error;
// callers distinguish the case via Total == 0. Meetings are deliberately
// unweighted by recency.
func H2HAdvantage(matches []models.H2HMatch, teamAID, teamBID int64) models.H2HRecord {
	var rec models.H2HRecord
	for _, m := range matches {
		if !m.Completed || m.HomeScore < 0 || m.AwayScore < 0 {
			continue
		}
		var aGoals, bGoals int
		switch {
		case m.HomeTeamID == teamAID:
			aGoals, bGoals = m.HomeScore, m.AwayScore
		case m.HomeTeamID == teamBID:
			aGoals, bGoals = m.AwayScore, m.HomeScore
		default:
			continue // meeting does not involve these two teams
		}

		rec.Total++
		rec.AGoals += aGoals
		rec.BGoals += bGoals
		switch {
		case aGoals > bGoals:
			rec.AWins++
		case bGoals > aGoals:
			rec.BWins++
		default:
			rec.Draws++
		}
	}

	if rec.Total == 0 {
		rec.ARate = NeutralWinRate
		rec.BRate = NeutralWinRate
		rec.DrawRate = NeutralDrawRate
		return rec
	}

	n := float64(rec.Total)
	rec.ARate = float64(rec.AWins) / n
	rec.BRate = float64(rec.BWins) / n
	rec.DrawRate = float64(rec.Draws) / n
	rec.AAvgGoals = float64(rec.AGoals) / n
	rec.BAvgGoals = float64(rec.BGoals) / n
	return rec
}
