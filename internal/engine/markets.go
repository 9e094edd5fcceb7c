package engine

import "PitchCast/internal/domain/models"

// AnalyzeGoals computes goal-pattern markets over a head-to-head sample:
// average totals, over-N.5 hit rates, both-teams-to-score and a fixed-split
// first/second half estimate. Incomplete matches are excluded. An empty
// sample yields a zero analysis with SampleSize 0.
func AnalyzeGoals(matches []models.H2HMatch) models.GoalsAnalysis {
	var g models.GoalsAnalysis
	var totalGoals, homeGoals, awayGoals int
	var over05, over15, over25, over35, btts int

	for _, m := range matches {
		if !m.Completed || m.HomeScore < 0 || m.AwayScore < 0 {
			continue
		}
		g.SampleSize++
		sum := m.HomeScore + m.AwayScore
		totalGoals += sum
		homeGoals += m.HomeScore
		awayGoals += m.AwayScore
		if sum > 0 {
			over05++
		}
		if sum > 1 {
			over15++
		}
		if sum > 2 {
			over25++
		}
		if sum > 3 {
			over35++
		}
		if m.HomeScore > 0 && m.AwayScore > 0 {
			btts++
		}
	}

	if g.SampleSize == 0 {
		return g
	}

	n := float64(g.SampleSize)
	g.AvgTotalGoals = round1(float64(totalGoals) / n)
	g.AvgHomeGoals = round1(float64(homeGoals) / n)
	g.AvgAwayGoals = round1(float64(awayGoals) / n)
	g.Over05 = marketRate(over05, g.SampleSize)
	g.Over15 = marketRate(over15, g.SampleSize)
	g.Over25 = marketRate(over25, g.SampleSize)
	g.Over35 = marketRate(over35, g.SampleSize)
	g.BTTS = marketRate(btts, g.SampleSize)
	g.FirstHalfAvg = round1(g.AvgTotalGoals * FirstHalfGoalShare)
	g.SecondHalfAvg = round1(g.AvgTotalGoals * SecondHalfGoalShare)
	return g
}

func marketRate(hits, total int) models.MarketRate {
	pct := round1(float64(hits) / float64(total) * 100)
	return models.MarketRate{Pct: pct, Yes: pct >= MarketYesThresholdPct}
}

// DoubleChanceFrom derives the three two-outcome markets as pairwise sums
// of the outcome percentages, capped below certainty.
func DoubleChanceFrom(p *models.Prediction) models.DoubleChance {
	cap99 := func(v float64) float64 {
		if v > DoubleChanceCapPct {
			return DoubleChanceCapPct
		}
		return round1(v)
	}
	return models.DoubleChance{
		HomeOrDraw: cap99(p.HomeWinPct + p.DrawPct),
		AwayOrDraw: cap99(p.AwayWinPct + p.DrawPct),
		HomeOrAway: cap99(p.HomeWinPct + p.AwayWinPct),
	}
}

// MotivationLevel buckets a league position into a narrative stake level.
func MotivationLevel(position, leagueSize int) string {
	if leagueSize <= 0 {
		leagueSize = DefaultLeagueSize
	}
	if position <= 0 {
		return "Mid-table, nothing obvious at stake"
	}
	switch {
	case position <= 2:
		return "Fighting for the title"
	case position <= 4:
		return "Chasing Champions League qualification"
	case position <= 6:
		return "Chasing European qualification"
	case position >= leagueSize-1:
		return "Desperate for points in the relegation zone"
	case position >= leagueSize-4:
		return "Looking over their shoulder at the relegation zone"
	default:
		return "Mid-table, nothing obvious at stake"
	}
}

// InjuryImpact compares raw injury counts between the sides.
func InjuryImpact(homeInjuries, awayInjuries int) string {
	diff := homeInjuries - awayInjuries
	switch {
	case diff > InjuryMajorGap:
		return "Home side significantly affected by injuries"
	case diff < -InjuryMajorGap:
		return "Away side significantly affected by injuries"
	case diff > 0:
		return "Home side carrying slightly more injuries"
	case diff < 0:
		return "Away side carrying slightly more injuries"
	default:
		return "Injuries even on both sides"
	}
}
