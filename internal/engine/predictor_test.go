package engine

import (
	"math"
	"strings"
	"testing"

	"PitchCast/internal/domain/models"
)

func midTableTeam(id int64, name string) *models.Team {
	return &models.Team{
		ID: id, Name: name, Position: 10, Played: 20,
		Wins: 8, Draws: 6, Losses: 6,
		GoalsScored: 25, GoalsConceded: 24,
		HomePlayed: 10, HomeWins: 5, HomeDraws: 3, HomeLosses: 2, HomeGoalsFor: 15, HomeGoalsAgainst: 10,
		AwayPlayed: 10, AwayWins: 3, AwayDraws: 3, AwayLosses: 4, AwayGoalsFor: 10, AwayGoalsAgainst: 14,
		RecentForm: "WDLWD",
	}
}

func assertSumsTo100(t *testing.T, p models.Prediction) {
	t.Helper()
	sum := p.HomeWinPct + p.DrawPct + p.AwayWinPct
	if math.Abs(sum-100) > 0.1 {
		t.Fatalf("percentages must sum to 100 (+-0.1), got %v (%v/%v/%v)",
			sum, p.HomeWinPct, p.DrawPct, p.AwayWinPct)
	}
}

func TestPredictOutcomeSumInvariant(t *testing.T) {
	variants := []*models.Team{
		midTableTeam(1, "Alpha"),
		{ID: 3, Name: "Bare"},
		{ID: 4, Name: "Leaders", Position: 1, Played: 20, Wins: 18, Draws: 2,
			GoalsScored: 55, GoalsConceded: 8, RecentForm: "WWWWW"},
		{ID: 5, Name: "Strugglers", Position: 20, Played: 20, Losses: 18, Draws: 2,
			GoalsScored: 9, GoalsConceded: 52, RecentForm: "LLLLL"},
	}
	h2hSets := [][]models.H2HMatch{
		nil,
		{h2hMatch(1, 2, 2, 1), h2hMatch(2, 1, 0, 0), h2hMatch(1, 2, 3, 3)},
	}
	for _, a := range variants {
		for _, b := range variants {
			if a.ID == b.ID {
				continue
			}
			for _, h2h := range h2hSets {
				for _, v := range []Venue{VenueTeamA, VenueTeamB} {
					p := PredictOutcome(a, b, v, h2h)
					assertSumsTo100(t, p)
					if p.DrawPct < DrawFloorPct || p.DrawPct > DrawCeilingPct {
						t.Fatalf("draw pct %v outside clamp [%v,%v]", p.DrawPct, DrawFloorPct, DrawCeilingPct)
					}
				}
			}
		}
	}
}

func TestPredictOutcomeDrawClampFloor(t *testing.T) {
	a, b := midTableTeam(1, "Alpha"), midTableTeam(2, "Beta")
	b.RecentForm = "LLLLL" // keep forms apart so no draw bonus applies
	// Long drawless history pushes the raw draw estimate to zero.
	var h2h []models.H2HMatch
	for i := 0; i < 6; i++ {
		h2h = append(h2h, h2hMatch(1, 2, 2, 0))
	}
	p := PredictOutcome(a, b, VenueTeamA, h2h)
	if p.DrawPct != DrawFloorPct {
		t.Fatalf("expected draw clamped up to %v, got %v", DrawFloorPct, p.DrawPct)
	}
	assertSumsTo100(t, p)
}

func TestPredictOutcomeDrawClampCeiling(t *testing.T) {
	a, b := midTableTeam(1, "Alpha"), midTableTeam(2, "Beta")
	// Identical form plus an all-draw history maximizes the raw estimate.
	var h2h []models.H2HMatch
	for i := 0; i < 6; i++ {
		h2h = append(h2h, h2hMatch(1, 2, 1, 1))
	}
	p := PredictOutcome(a, b, VenueTeamA, h2h)
	if p.DrawPct != DrawCeilingPct {
		t.Fatalf("expected draw clamped down to %v, got %v", DrawCeilingPct, p.DrawPct)
	}
	assertSumsTo100(t, p)
}

func TestPredictOutcomeSymmetry(t *testing.T) {
	a := midTableTeam(1, "Alpha")
	b := midTableTeam(2, "Beta")
	b.Position = 4
	b.RecentForm = "WWDWW"
	h2h := []models.H2HMatch{h2hMatch(1, 2, 2, 1), h2hMatch(2, 1, 2, 2), h2hMatch(1, 2, 0, 1)}

	p := PredictOutcome(a, b, VenueTeamA, h2h)
	q := PredictOutcome(b, a, VenueTeamB, h2h)

	if math.Abs(p.HomeWinPct-q.AwayWinPct) > 0.1 || math.Abs(p.AwayWinPct-q.HomeWinPct) > 0.1 {
		t.Fatalf("swapping teams and venue must mirror: %v/%v vs %v/%v",
			p.HomeWinPct, p.AwayWinPct, q.HomeWinPct, q.AwayWinPct)
	}
	if math.Abs(p.DrawPct-q.DrawPct) > 0.1 {
		t.Fatalf("draw must be venue-symmetric: %v vs %v", p.DrawPct, q.DrawPct)
	}
}

func TestPredictOutcomeFormMonotonicity(t *testing.T) {
	b := midTableTeam(2, "Beta")
	prev := -1.0
	for _, form := range []string{"LLLLL", "LLLLW", "DDLWW", "WWWDL", "WWWWW"} {
		a := midTableTeam(1, "Alpha")
		a.RecentForm = form
		p := PredictOutcome(a, b, VenueTeamA, nil)
		assertSumsTo100(t, p)
		if p.HomeWinPct <= prev {
			t.Fatalf("better form %q should strictly raise home pct: %v <= %v", form, p.HomeWinPct, prev)
		}
		prev = p.HomeWinPct
	}
}

func TestPredictOutcomeNoDataFallback(t *testing.T) {
	p := PredictOutcome(&models.Team{ID: 1}, &models.Team{ID: 2}, VenueTeamA, nil)
	assertSumsTo100(t, p)
	if p.Confidence != models.ConfidenceLow {
		t.Fatalf("no data must yield Low confidence, got %s", p.Confidence)
	}
	if len(p.Assumptions) == 0 {
		t.Fatalf("expected data-quality assumptions to be reported")
	}
}

func TestPredictOutcomeConfidenceThresholds(t *testing.T) {
	a, b := midTableTeam(1, "Alpha"), midTableTeam(2, "Beta")
	cases := []struct {
		meetings int
		want     models.Confidence
	}{
		{0, models.ConfidenceLow},
		{2, models.ConfidenceLow},
		{3, models.ConfidenceMedium},
		{4, models.ConfidenceMedium},
		{5, models.ConfidenceHigh},
		{9, models.ConfidenceHigh},
	}
	for _, tc := range cases {
		var h2h []models.H2HMatch
		for i := 0; i < tc.meetings; i++ {
			h2h = append(h2h, h2hMatch(1, 2, i%3, 1))
		}
		if got := PredictOutcome(a, b, VenueTeamA, h2h).Confidence; got != tc.want {
			t.Fatalf("%d meetings: want %s, got %s", tc.meetings, tc.want, got)
		}
	}
}

func TestPredictOutcomeLopsidedScenario(t *testing.T) {
	a := &models.Team{
		ID: 1, Name: "Leaders", Position: 1, Played: 10, Wins: 10,
		GoalsScored: 30, GoalsConceded: 5,
		HomePlayed: 10, HomeWins: 10, HomeGoalsFor: 30, HomeGoalsAgainst: 5,
		RecentForm: "WWWWW",
	}
	b := &models.Team{
		ID: 2, Name: "Strugglers", Position: 20, Played: 10, Losses: 10,
		GoalsScored: 5, GoalsConceded: 30,
		AwayPlayed: 10, AwayLosses: 10, AwayGoalsFor: 5, AwayGoalsAgainst: 30,
		RecentForm: "LLLLL",
	}
	p := PredictOutcome(a, b, VenueTeamA, nil)
	assertSumsTo100(t, p)
	if p.HomeWinPct <= 60 {
		t.Fatalf("dominant home side should clear 60%%, got %v", p.HomeWinPct)
	}
	if p.DrawPct > 25 {
		t.Fatalf("draw should sit low for a lopsided fixture, got %v", p.DrawPct)
	}
	if p.Confidence != models.ConfidenceLow {
		t.Fatalf("no H2H means Low confidence, got %s", p.Confidence)
	}
	if len(p.KeyFactors) == 0 || len(p.KeyFactors) > MaxKeyFactors {
		t.Fatalf("expected 1..%d key factors, got %d", MaxKeyFactors, len(p.KeyFactors))
	}
}

func TestPredictOutcomeIdenticalTeams(t *testing.T) {
	a, b := midTableTeam(1, "Alpha"), midTableTeam(2, "Beta")
	p := PredictOutcome(a, b, VenueTeamA, nil)
	assertSumsTo100(t, p)
	if math.Abs(p.HomeWinPct-p.AwayWinPct) > 0.1 {
		t.Fatalf("identical teams should split evenly: %v vs %v", p.HomeWinPct, p.AwayWinPct)
	}
	// Equal form triggers the close-form draw bonus on the default rate:
	// (0.28+0.10)/1.38 lands near 27.5 before any clamping.
	if p.DrawPct < 26 || p.DrawPct > 29 {
		t.Fatalf("expected draw near its natural 27.5, got %v", p.DrawPct)
	}
}

func TestPredictOutcomeKeyFactorMentionsDominance(t *testing.T) {
	a, b := midTableTeam(1, "Alpha"), midTableTeam(2, "Beta")
	var h2h []models.H2HMatch
	for i := 0; i < 5; i++ {
		h2h = append(h2h, h2hMatch(1, 2, 2, 0))
	}
	p := PredictOutcome(a, b, VenueTeamA, h2h)
	joined := strings.Join(p.KeyFactors, " | ")
	if !strings.Contains(joined, "Alpha have won 5 of the last 5 meetings") {
		t.Fatalf("expected H2H dominance factor, got %q", joined)
	}
}
