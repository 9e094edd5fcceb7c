package usecase

import (
	"context"
	"fmt"
	"sync"

	"PitchCast/internal/domain/models"
)

type fakeProvider struct {
	teams    map[int64]models.Team
	h2h      []models.H2HMatch
	fixtures map[string][]models.Fixture // keyed by league
	h2hErr   error
	teamErr  error
}

func (f *fakeProvider) Team(_ context.Context, league string, teamID int64) (models.Team, error) {
	if f.teamErr != nil {
		return models.Team{}, f.teamErr
	}
	if t, ok := f.teams[teamID]; ok {
		return t, nil
	}
	return models.Team{}, fmt.Errorf("unknown team %d", teamID)
}

func (f *fakeProvider) H2H(_ context.Context, _, _ int64) ([]models.H2HMatch, error) {
	if f.h2hErr != nil {
		return nil, f.h2hErr
	}
	return f.h2h, nil
}

func (f *fakeProvider) Fixtures(_ context.Context, league, _ string) ([]models.Fixture, error) {
	return f.fixtures[league], nil
}

type fakeStore struct {
	mu       sync.Mutex
	inserted []*models.StoredPrediction
	summary  models.AccuracySummary
}

func (s *fakeStore) Insert(_ context.Context, p *models.StoredPrediction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inserted = append(s.inserted, p)
	return nil
}

func (s *fakeStore) RecordResult(_ context.Context, r *models.MatchResult) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	settled := 0
	for _, p := range s.inserted {
		if p.FixtureID != r.FixtureID {
			continue
		}
		p.Settled = true
		p.HomeGoals = r.HomeGoals
		p.AwayGoals = r.AwayGoals
		settled++
	}
	return settled, nil
}

func (s *fakeStore) History(_ context.Context, teamID int64, limit int) ([]*models.StoredPrediction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*models.StoredPrediction
	for _, p := range s.inserted {
		if teamID > 0 && p.HomeTeamID != teamID && p.AwayTeamID != teamID {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *fakeStore) Accuracy(_ context.Context) (models.AccuracySummary, error) {
	return s.summary, nil
}

func (s *fakeStore) Health(_ context.Context) error { return nil }
func (s *fakeStore) Close() error                   { return nil }

type fakePublisher struct {
	mu       sync.Mutex
	picks    []*models.DailyPick
	analyses []*models.MatchAnalysis
}

func (p *fakePublisher) PublishPick(_ context.Context, pick *models.DailyPick) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.picks = append(p.picks, pick)
	return nil
}

func (p *fakePublisher) PublishAnalysis(_ context.Context, a *models.MatchAnalysis) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.analyses = append(p.analyses, a)
	return nil
}

func (p *fakePublisher) Close() error { return nil }

func strongTeam(id int64, name string) models.Team {
	return models.Team{
		ID: id, Name: name, League: "premier-league",
		Position: 1, Points: 74, Played: 32, Wins: 23, Draws: 5, Losses: 4,
		GoalsScored: 75, GoalsConceded: 26,
		HomeWins: 13, HomeDraws: 2, HomeLosses: 1,
		AwayWins: 10, AwayDraws: 3, AwayLosses: 3,
		RecentForm: "WWWWD",
	}
}

func weakTeam(id int64, name string) models.Team {
	return models.Team{
		ID: id, Name: name, League: "premier-league",
		Position: 19, Points: 20, Played: 32, Wins: 4, Draws: 8, Losses: 20,
		GoalsScored: 24, GoalsConceded: 64,
		HomeWins: 3, HomeDraws: 4, HomeLosses: 9,
		AwayWins: 1, AwayDraws: 4, AwayLosses: 11,
		RecentForm: "LLDLL",
	}
}
