package engine

import (
	"strings"

	"PitchCast/internal/domain/models"
)

// FormScore converts a team's recent results into a score in [0,1].
//
// The recent-form string is scored character by character with descending
// recency weights: a win earns FormWinPoints times the weight, a draw
// FormDrawPoints, a loss nothing. The score is the weighted points divided
// by the maximum attainable, so it is in [0,1] by construction. Teams
// without a form string fall back to their recent win/draw counters, and
// teams with no recent information at all score the neutral default.
func FormScore(t *models.Team) float64 {
	form := strings.ToUpper(strings.TrimSpace(t.RecentForm))
	if form != "" {
		var points, weightSum float64
		for i, ch := range form {
			w := FormTailWeight
			if i < len(formRecencyWeights) {
				w = formRecencyWeights[i]
			}
			weightSum += w
			switch ch {
			case 'W':
				points += FormWinPoints * w
			case 'D':
				points += FormDrawPoints * w
			}
		}
		if weightSum > 0 {
			return points / (weightSum * FormWinPoints)
		}
	}

	games := t.RecentWins + t.RecentDraws + t.RecentLosses
	if games > 0 {
		return (float64(t.RecentWins)*FormWinPoints + float64(t.RecentDraws)*FormDrawPoints) /
			(float64(games) * FormWinPoints)
	}

	return NeutralFormScore
}
