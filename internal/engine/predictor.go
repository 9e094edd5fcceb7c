package engine

import (
	"fmt"
	"math"

	"PitchCast/internal/domain/models"
)

// Venue states which of the two teams hosts the fixture being predicted.
type Venue string

const (
	VenueTeamA Venue = "team_a"
	VenueTeamB Venue = "team_b"
)

// PredictOutcome combines head-to-head history, recent form, venue record,
// goal strength and league position into win/draw/loss percentages for a
// fixture between team A and team B.
//
// The function is pure and never fails: every missing field degrades to a
// neutral default and every denominator is guarded, so it always returns a
// plausible, 100-summing result. Data-quality fallbacks are surfaced in
// Prediction.Assumptions without changing the probabilities.
//
// The draw percentage is clamped to [DrawFloorPct, DrawCeilingPct] after
// normalization, and the remainder is re-split between the two teams in
// their pre-clamp ratio. The clamp keeps draws out of unrealistic extremes
// while preserving the relative lean toward the stronger side.
func PredictOutcome(a, b *models.Team, venue Venue, h2h []models.H2HMatch) models.Prediction {
	var assumptions []string

	rec := H2HAdvantage(h2h, a.ID, b.ID)
	if rec.Total == 0 {
		assumptions = append(assumptions, "no head-to-head history, neutral rates used")
	}

	formA, formB := FormScore(a), FormScore(b)
	if a.RecentForm == "" && a.RecentWins+a.RecentDraws+a.RecentLosses == 0 {
		assumptions = append(assumptions, fmt.Sprintf("no recent form for %s", teamLabel(a)))
	}
	if b.RecentForm == "" && b.RecentWins+b.RecentDraws+b.RecentLosses == 0 {
		assumptions = append(assumptions, fmt.Sprintf("no recent form for %s", teamLabel(b)))
	}

	aHome := venue != VenueTeamB
	venueA := venueWinRate(a, aHome)
	venueB := venueWinRate(b, !aHome)

	gsA := CalcGoalsStrength(a, aHome)
	gsB := CalcGoalsStrength(b, !aHome)
	if splitMissing(a, aHome) {
		assumptions = append(assumptions, fmt.Sprintf("home/away split estimated for %s", teamLabel(a)))
	}
	if splitMissing(b, !aHome) {
		assumptions = append(assumptions, fmt.Sprintf("home/away split estimated for %s", teamLabel(b)))
	}

	posA, posB := a.Position, b.Position
	if posA <= 0 {
		posA = DefaultLeagueSize / 2
		assumptions = append(assumptions, fmt.Sprintf("league position unknown for %s, mid-table assumed", teamLabel(a)))
	}
	if posB <= 0 {
		posB = DefaultLeagueSize / 2
		assumptions = append(assumptions, fmt.Sprintf("league position unknown for %s, mid-table assumed", teamLabel(b)))
	}
	maxPos := DefaultLeagueSize
	if posA > maxPos {
		maxPos = posA
	}
	if posB > maxPos {
		maxPos = posB
	}
	posRateA := float64(maxPos-posA+1) / float64(maxPos)
	posRateB := float64(maxPos-posB+1) / float64(maxPos)

	h2hShareA := pairShare(rec.ARate, rec.BRate)
	formShareA := pairShare(formA, formB)
	venueShareA := pairShare(venueA, venueB)
	goalsShareA := pairShare(gsA.Combined, gsB.Combined)
	posShareA := pairShare(posRateA, posRateB)

	winA := WeightH2H*h2hShareA + WeightForm*formShareA + WeightVenue*venueShareA +
		WeightGoals*goalsShareA + WeightPosition*posShareA
	winB := WeightH2H*(1-h2hShareA) + WeightForm*(1-formShareA) + WeightVenue*(1-venueShareA) +
		WeightGoals*(1-goalsShareA) + WeightPosition*(1-posShareA)

	drawRaw := DefaultDrawRate
	if rec.Total > 0 {
		drawRaw = rec.DrawRate
	}
	if math.Abs(formA-formB) < CloseFormThreshold {
		drawRaw += CloseFormDrawBonus
	}

	total := winA + winB + drawRaw
	if total <= 0 {
		total = 1
	}
	drawPct := drawRaw / total * 100

	if drawPct < DrawFloorPct {
		drawPct = DrawFloorPct
	} else if drawPct > DrawCeilingPct {
		drawPct = DrawCeilingPct
	}
	remainder := 100 - drawPct
	homePct := remainder * pairShare(winA, winB)

	homePct = round1(homePct)
	drawPct = round1(drawPct)
	awayPct := round1(100 - homePct - drawPct)

	p := models.Prediction{
		HomeWinPct: homePct,
		DrawPct:    drawPct,
		AwayWinPct: awayPct,
		Confidence: confidenceFor(rec.Total),
		H2H:        rec,
		Analysis: models.FactorBreakdown{
			FormA:     round1(formShareA * 100),
			FormB:     round1((1 - formShareA) * 100),
			GoalsA:    round1(goalsShareA * 100),
			GoalsB:    round1((1 - goalsShareA) * 100),
			VenueA:    round1(venueShareA * 100),
			VenueB:    round1((1 - venueShareA) * 100),
			PositionA: round1(posShareA * 100),
			PositionB: round1((1 - posShareA) * 100),
			H2HA:      round1(h2hShareA * 100),
			H2HB:      round1((1 - h2hShareA) * 100),
		},
		Assumptions: assumptions,
	}
	p.KeyFactors = keyFactors(a, b, rec, formA, formB, venueA, venueB, gsA, gsB, posA, posB, aHome)
	return p
}

// confidenceFor labels data sufficiency from the H2H sample size.
func confidenceFor(h2hSample int) models.Confidence {
	switch {
	case h2hSample >= HighConfidenceH2H:
		return models.ConfidenceHigh
	case h2hSample >= MediumConfidenceH2H:
		return models.ConfidenceMedium
	default:
		return models.ConfidenceLow
	}
}

// keyFactors selects up to MaxKeyFactors narrative notes in a fixed
// priority order: H2H pattern first, then form extremes, venue records,
// attack-versus-weak-defence matchups and finally a position gap.
func keyFactors(a, b *models.Team, rec models.H2HRecord, formA, formB, venueA, venueB float64,
	gsA, gsB GoalsStrength, posA, posB int, aHome bool) []string {

	factors := make([]string, 0, MaxKeyFactors)
	add := func(s string) {
		if len(factors) < MaxKeyFactors {
			factors = append(factors, s)
		}
	}

	if rec.Total >= MediumConfidenceH2H {
		switch {
		case rec.ARate >= 0.6:
			add(fmt.Sprintf("%s have won %d of the last %d meetings", teamLabel(a), rec.AWins, rec.Total))
		case rec.BRate >= 0.6:
			add(fmt.Sprintf("%s have won %d of the last %d meetings", teamLabel(b), rec.BWins, rec.Total))
		case rec.DrawRate >= 0.4:
			add(fmt.Sprintf("%d of the last %d meetings ended level", rec.Draws, rec.Total))
		}
		if avg := rec.AAvgGoals + rec.BAvgGoals; avg >= HighScoringH2HAvg {
			add(fmt.Sprintf("meetings between these sides average %.1f goals", avg))
		}
	}

	if formA >= 0.75 {
		add(fmt.Sprintf("%s arrive in strong form (%s)", teamLabel(a), a.RecentForm))
	} else if formA <= 0.25 {
		add(fmt.Sprintf("%s arrive in poor form (%s)", teamLabel(a), a.RecentForm))
	}
	if formB >= 0.75 {
		add(fmt.Sprintf("%s arrive in strong form (%s)", teamLabel(b), b.RecentForm))
	} else if formB <= 0.25 {
		add(fmt.Sprintf("%s arrive in poor form (%s)", teamLabel(b), b.RecentForm))
	}

	if aHome && venueA >= 0.7 {
		add(fmt.Sprintf("%s have a commanding home record", teamLabel(a)))
	} else if !aHome && venueB >= 0.7 {
		add(fmt.Sprintf("%s have a commanding home record", teamLabel(b)))
	}

	if gsA.Offensive >= 0.8 && gsB.Defensive <= 0.3 {
		add(fmt.Sprintf("%s's attack should trouble %s's defence", teamLabel(a), teamLabel(b)))
	} else if gsB.Offensive >= 0.8 && gsA.Defensive <= 0.3 {
		add(fmt.Sprintf("%s's attack should trouble %s's defence", teamLabel(b), teamLabel(a)))
	}

	if gap := posB - posA; gap >= 8 {
		add(fmt.Sprintf("%s sit %d places above %s in the table", teamLabel(a), gap, teamLabel(b)))
	} else if gap <= -8 {
		add(fmt.Sprintf("%s sit %d places above %s in the table", teamLabel(b), -gap, teamLabel(a)))
	}

	if len(factors) == 0 {
		factors = append(factors, "evenly matched on current data")
	}
	return factors
}

// venueWinRate is wins over classified results at the relevant split.
func venueWinRate(t *models.Team, home bool) float64 {
	if home {
		return float64(t.HomeWins) / float64(maxInt(1, t.HomeRecordTotal()))
	}
	return float64(t.AwayWins) / float64(maxInt(1, t.AwayRecordTotal()))
}

// pairShare normalizes one side of a factor pair into [0,1], splitting
// evenly when the pair carries no signal.
func pairShare(a, b float64) float64 {
	sum := a + b
	if sum <= 0 {
		return 0.5
	}
	return a / sum
}

func splitMissing(t *models.Team, home bool) bool {
	if home {
		return t.HomePlayed == 0 && t.Played > 0
	}
	return t.AwayPlayed == 0 && t.Played > 0
}

func teamLabel(t *models.Team) string {
	if t.Name != "" {
		return t.Name
	}
	return fmt.Sprintf("team %d", t.ID)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
