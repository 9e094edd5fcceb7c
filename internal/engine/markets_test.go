package engine

import (
	"testing"

	"PitchCast/internal/domain/models"
)

func TestAnalyzeGoals(t *testing.T) {
	matches := []models.H2HMatch{
		h2hMatch(1, 2, 2, 1), // 3 goals, btts
		h2hMatch(2, 1, 0, 0), // 0 goals
		h2hMatch(1, 2, 3, 2), // 5 goals, btts
		h2hMatch(2, 1, 1, 0), // 1 goal
		{HomeTeamID: 1, AwayTeamID: 2}, // incomplete, skipped
	}
	g := AnalyzeGoals(matches)
	if g.SampleSize != 4 {
		t.Fatalf("expected sample 4, got %d", g.SampleSize)
	}
	if g.AvgTotalGoals != 2.3 { // 9/4 rounded
		t.Fatalf("avg total: want 2.3, got %v", g.AvgTotalGoals)
	}
	if g.Over05.Pct != 75.0 || !g.Over05.Yes {
		t.Fatalf("over 0.5: %+v", g.Over05)
	}
	if g.Over15.Pct != 50.0 || !g.Over15.Yes {
		t.Fatalf("over 1.5 labels Yes at exactly 50%%: %+v", g.Over15)
	}
	if g.Over25.Pct != 50.0 {
		t.Fatalf("over 2.5: %+v", g.Over25)
	}
	if g.Over35.Pct != 25.0 || g.Over35.Yes {
		t.Fatalf("over 3.5 must be No: %+v", g.Over35)
	}
	if g.BTTS.Pct != 50.0 || !g.BTTS.Yes {
		t.Fatalf("btts: %+v", g.BTTS)
	}
}

func TestAnalyzeGoalsHalfSplit(t *testing.T) {
	g := AnalyzeGoals([]models.H2HMatch{h2hMatch(1, 2, 2, 2)})
	if g.FirstHalfAvg != 1.7 || g.SecondHalfAvg != 2.3 {
		t.Fatalf("half split from 4 goals: got %v/%v", g.FirstHalfAvg, g.SecondHalfAvg)
	}
}

func TestAnalyzeGoalsEmpty(t *testing.T) {
	g := AnalyzeGoals(nil)
	if g.SampleSize != 0 || g.AvgTotalGoals != 0 || g.Over25.Yes {
		t.Fatalf("empty sample should be zero analysis: %+v", g)
	}
}

func TestDoubleChanceCap(t *testing.T) {
	p := &models.Prediction{HomeWinPct: 70, DrawPct: 15, AwayWinPct: 15}
	dc := DoubleChanceFrom(p)
	if dc.HomeOrDraw != 85 || dc.AwayOrDraw != 30 || dc.HomeOrAway != 85 {
		t.Fatalf("unexpected double chance: %+v", dc)
	}
	extreme := &models.Prediction{HomeWinPct: 84.5, DrawPct: 15, AwayWinPct: 0.5}
	if dc := DoubleChanceFrom(extreme); dc.HomeOrDraw != DoubleChanceCapPct {
		t.Fatalf("expected cap at %v, got %v", DoubleChanceCapPct, dc.HomeOrDraw)
	}
}

func TestMotivationLevelBuckets(t *testing.T) {
	cases := []struct {
		pos  int
		want string
	}{
		{1, "Fighting for the title"},
		{2, "Fighting for the title"},
		{3, "Chasing Champions League qualification"},
		{5, "Chasing European qualification"},
		{10, "Mid-table, nothing obvious at stake"},
		{16, "Looking over their shoulder at the relegation zone"},
		{19, "Desperate for points in the relegation zone"},
		{20, "Desperate for points in the relegation zone"},
		{0, "Mid-table, nothing obvious at stake"},
	}
	for _, tc := range cases {
		if got := MotivationLevel(tc.pos, 20); got != tc.want {
			t.Fatalf("position %d: want %q, got %q", tc.pos, tc.want, got)
		}
	}
}

func TestInjuryImpact(t *testing.T) {
	cases := []struct {
		home, away int
		want       string
	}{
		{5, 1, "Home side significantly affected by injuries"},
		{0, 4, "Away side significantly affected by injuries"},
		{2, 1, "Home side carrying slightly more injuries"},
		{1, 2, "Away side carrying slightly more injuries"},
		{2, 2, "Injuries even on both sides"},
	}
	for _, tc := range cases {
		if got := InjuryImpact(tc.home, tc.away); got != tc.want {
			t.Fatalf("%d vs %d: want %q, got %q", tc.home, tc.away, tc.want, got)
		}
	}
}
