package footballdata

import (
	"context"
	"errors"
	"testing"
	"time"

	"PitchCast/internal/domain/models"
	"PitchCast/pkg/cache"
)

type scriptedProvider struct {
	team      models.Team
	h2h       []models.H2HMatch
	fail      bool
	teamCalls int
	h2hCalls  int
}

func (s *scriptedProvider) Team(_ context.Context, league string, teamID int64) (models.Team, error) {
	s.teamCalls++
	if s.fail {
		return models.Team{}, errors.New("provider down")
	}
	return s.team, nil
}

func (s *scriptedProvider) H2H(_ context.Context, _, _ int64) ([]models.H2HMatch, error) {
	s.h2hCalls++
	if s.fail {
		return nil, errors.New("provider down")
	}
	return s.h2h, nil
}

func (s *scriptedProvider) Fixtures(_ context.Context, _, _ string) ([]models.Fixture, error) {
	if s.fail {
		return nil, errors.New("provider down")
	}
	return nil, nil
}

func TestCachedProviderCachesTeam(t *testing.T) {
	primary := &scriptedProvider{team: models.Team{ID: 99, Name: "Brentford", League: "premier-league"}}
	p := NewCachedProvider(primary, NewStaticProvider(), cache.NewMemoryCache(), TTLs{Standings: time.Minute}, nil, nil)

	for i := 0; i < 3; i++ {
		got, err := p.Team(context.Background(), "premier-league", 99)
		if err != nil {
			t.Fatalf("Team: %v", err)
		}
		if got.Name != "Brentford" {
			t.Fatalf("got team %q, want Brentford", got.Name)
		}
	}

	if primary.teamCalls != 1 {
		t.Fatalf("primary called %d times, want 1", primary.teamCalls)
	}
}

func TestCachedProviderFallsBackOnFailure(t *testing.T) {
	primary := &scriptedProvider{fail: true}
	p := NewCachedProvider(primary, NewStaticProvider(), cache.NewMemoryCache(), TTLs{Standings: time.Minute}, nil, nil)

	got, err := p.Team(context.Background(), "premier-league", 57)
	if err != nil {
		t.Fatalf("Team should fall back, got error: %v", err)
	}
	if got.Name != "Arsenal" {
		t.Fatalf("got team %q, want the static Arsenal entry", got.Name)
	}
}

func TestCachedProviderH2HKeyIsOrderIndependent(t *testing.T) {
	primary := &scriptedProvider{h2h: []models.H2HMatch{
		{HomeTeamID: 57, AwayTeamID: 64, HomeScore: 2, AwayScore: 1, Completed: true},
	}}
	p := NewCachedProvider(primary, NewStaticProvider(), cache.NewMemoryCache(), TTLs{H2H: time.Minute}, nil, nil)

	if _, err := p.H2H(context.Background(), 57, 64); err != nil {
		t.Fatalf("H2H: %v", err)
	}
	matches, err := p.H2H(context.Background(), 64, 57)
	if err != nil {
		t.Fatalf("H2H reversed: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	if primary.h2hCalls != 1 {
		t.Fatalf("primary H2H called %d times, want 1 (reversed lookup should hit cache)", primary.h2hCalls)
	}
}

func TestStaticProviderUnknownTeamGetsPlaceholder(t *testing.T) {
	p := NewStaticProvider()

	got, err := p.Team(context.Background(), "premier-league", 123456)
	if err != nil {
		t.Fatalf("static provider must not fail: %v", err)
	}
	if got.ID != 123456 {
		t.Fatalf("placeholder ID = %d, want 123456", got.ID)
	}
	if got.Position != 0 {
		t.Fatalf("placeholder position = %d, want 0 (unknown)", got.Position)
	}
	if got.Played == 0 {
		t.Fatalf("placeholder must carry a usable record")
	}
}
