package usecase

import (
	"context"
	"testing"

	"PitchCast/internal/domain/models"
)

func TestPicksRankedByEdgeAndLimited(t *testing.T) {
	provider := &fakeProvider{
		teams: map[int64]models.Team{
			1:  strongTeam(1, "Alpha"),
			19: weakTeam(19, "Omega"),
			2:  strongTeam(2, "Beta"),
			3:  strongTeam(3, "Gamma"),
		},
		fixtures: map[string][]models.Fixture{
			"premier-league": {
				// lopsided: high edge
				{ID: "m1", League: "premier-league", HomeTeamID: 1, AwayTeamID: 19},
				// evenly matched: lower top percentage
				{ID: "m2", League: "premier-league", HomeTeamID: 2, AwayTeamID: 3},
			},
		},
	}
	analyzer := NewMatchAnalyzer(provider, nil, nil, nil)
	publisher := &fakePublisher{}
	dp := NewDailyPicks(analyzer, provider, publisher, []string{"premier-league"}, nil)

	picks, err := dp.Picks(context.Background(), "2025-08-16", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(picks) != 2 {
		t.Fatalf("expected 2 picks, got %d", len(picks))
	}
	if picks[0].Edge < picks[1].Edge {
		t.Fatalf("picks not ranked by edge: %.1f then %.1f", picks[0].Edge, picks[1].Edge)
	}
	if picks[0].Fixture.ID != "m1" {
		t.Fatalf("lopsided fixture should rank first, got %s", picks[0].Fixture.ID)
	}
	for _, p := range picks {
		if p.Edge != p.PickPct*p.Confidence.Weight() {
			t.Fatalf("edge must be pct weighted by confidence")
		}
		if p.Date != "2025-08-16" {
			t.Fatalf("pick date not set")
		}
	}
	if len(publisher.picks) != 2 {
		t.Fatalf("picks should be published, got %d", len(publisher.picks))
	}
}

func TestPicksNormalizesTimestampToDay(t *testing.T) {
	provider := &fakeProvider{
		teams: map[int64]models.Team{
			1:  strongTeam(1, "Alpha"),
			19: weakTeam(19, "Omega"),
		},
		fixtures: map[string][]models.Fixture{
			"premier-league": {
				{ID: "m1", League: "premier-league", HomeTeamID: 1, AwayTeamID: 19},
			},
		},
	}
	analyzer := NewMatchAnalyzer(provider, nil, nil, nil)
	dp := NewDailyPicks(analyzer, provider, nil, []string{"premier-league"}, nil)

	picks, err := dp.Picks(context.Background(), "2025-08-16T19:45:00Z", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(picks) != 1 || picks[0].Date != "2025-08-16" {
		t.Fatalf("timestamp input should collapse to the day key, got %+v", picks)
	}
}

func TestPicksHonorsLimit(t *testing.T) {
	provider := &fakeProvider{
		teams: map[int64]models.Team{
			1:  strongTeam(1, "Alpha"),
			19: weakTeam(19, "Omega"),
			2:  strongTeam(2, "Beta"),
			3:  strongTeam(3, "Gamma"),
		},
		fixtures: map[string][]models.Fixture{
			"premier-league": {
				{ID: "m1", League: "premier-league", HomeTeamID: 1, AwayTeamID: 19},
				{ID: "m2", League: "premier-league", HomeTeamID: 2, AwayTeamID: 3},
			},
		},
	}
	analyzer := NewMatchAnalyzer(provider, nil, nil, nil)
	dp := NewDailyPicks(analyzer, provider, nil, []string{"premier-league"}, nil)

	picks, err := dp.Picks(context.Background(), "2025-08-16", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(picks) != 1 {
		t.Fatalf("limit 1 should yield 1 pick, got %d", len(picks))
	}
}

func TestJackpotSlateSkipsBadFixtures(t *testing.T) {
	provider := &fakeProvider{
		teams: map[int64]models.Team{
			1:  strongTeam(1, "Alpha"),
			19: weakTeam(19, "Omega"),
		},
	}
	analyzer := NewMatchAnalyzer(provider, nil, nil, nil)
	publisher := &fakePublisher{}
	ja := NewJackpotAnalyzer(analyzer, publisher, nil)

	fixtures := []models.Fixture{
		{ID: "ok", League: "premier-league", HomeTeamID: 1, AwayTeamID: 19},
		{ID: "bad", League: "premier-league", HomeTeamID: 404, AwayTeamID: 19},
	}
	res, err := ja.AnalyzeSlate(context.Background(), "saturday", fixtures)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Summary.Fixtures != 1 || res.Skipped != 1 {
		t.Fatalf("expected 1 analyzed + 1 skipped, got %d + %d", res.Summary.Fixtures, res.Skipped)
	}
	total := res.Summary.PickCounts["1"] + res.Summary.PickCounts["X"] + res.Summary.PickCounts["2"]
	if total != res.Summary.Fixtures {
		t.Fatalf("pick counts %d disagree with fixtures %d", total, res.Summary.Fixtures)
	}
	if res.Summary.AvgTopPct <= 0 {
		t.Fatalf("avg top pct should be positive")
	}
	if len(publisher.analyses) != 1 {
		t.Fatalf("analyses should be published")
	}
}
