package usecase

import (
	"context"
	"time"

	"PitchCast/internal/domain/models"
	drepo "PitchCast/internal/domain/repository"
	"PitchCast/internal/engine"
	applogger "PitchCast/pkg/logger"
)

// MatchAnalyzer resolves team and head-to-head inputs through the data
// provider and runs the prediction engine over them. Storage and metrics are
// optional; prediction never depends on them succeeding.
type MatchAnalyzer struct {
	provider drepo.DataProvider
	store    drepo.PredictionStore
	metrics  drepo.Metrics
	logger   *applogger.Logger
}

func NewMatchAnalyzer(provider drepo.DataProvider, store drepo.PredictionStore, metrics drepo.Metrics, logger *applogger.Logger) *MatchAnalyzer {
	return &MatchAnalyzer{provider: provider, store: store, metrics: metrics, logger: logger}
}

// Predict computes the outcome probabilities for one fixture and records it
// in the history store.
func (m *MatchAnalyzer) Predict(ctx context.Context, f models.Fixture, venue engine.Venue) (*models.Prediction, error) {
	start := time.Now()

	home, err := m.provider.Team(ctx, f.League, f.HomeTeamID)
	if err != nil {
		return nil, err
	}
	away, err := m.provider.Team(ctx, f.League, f.AwayTeamID)
	if err != nil {
		return nil, err
	}
	h2h, err := m.provider.H2H(ctx, f.HomeTeamID, f.AwayTeamID)
	if err != nil {
		// Predictions degrade to neutral H2H rather than failing.
		if m.logger != nil {
			m.logger.Warn("h2h unavailable, predicting without history", applogger.Error(err))
		}
		h2h = nil
	}

	p := engine.PredictOutcome(&home, &away, venue, h2h)

	if m.metrics != nil {
		m.metrics.RecordPrediction(f.League, string(p.Confidence))
		m.metrics.RecordLatency("predict", time.Since(start).Seconds())
	}

	m.persist(ctx, f, &home, &away, &p)
	return &p, nil
}

// Analyze runs the full per-fixture pipeline: outcome prediction plus the
// derived markets and context annotations.
func (m *MatchAnalyzer) Analyze(ctx context.Context, f models.Fixture) (*models.MatchAnalysis, error) {
	home, err := m.provider.Team(ctx, f.League, f.HomeTeamID)
	if err != nil {
		return nil, err
	}
	away, err := m.provider.Team(ctx, f.League, f.AwayTeamID)
	if err != nil {
		return nil, err
	}
	h2h, err := m.provider.H2H(ctx, f.HomeTeamID, f.AwayTeamID)
	if err != nil {
		if m.logger != nil {
			m.logger.Warn("h2h unavailable, analyzing without history", applogger.Error(err))
		}
		h2h = nil
	}

	p := engine.PredictOutcome(&home, &away, engine.VenueTeamA, h2h)

	leagueSize := engine.DefaultLeagueSize
	if home.Position > leagueSize {
		leagueSize = home.Position
	}
	if away.Position > leagueSize {
		leagueSize = away.Position
	}

	analysis := &models.MatchAnalysis{
		Fixture:        f,
		HomeTeam:       home.Name,
		AwayTeam:       away.Name,
		Prediction:     p,
		Goals:          engine.AnalyzeGoals(h2h),
		DoubleChance:   engine.DoubleChanceFrom(&p),
		Pick:           p.Favored(),
		HomeMotivation: engine.MotivationLevel(home.Position, leagueSize),
		AwayMotivation: engine.MotivationLevel(away.Position, leagueSize),
		InjuryImpact:   engine.InjuryImpact(home.Injuries, away.Injuries),
	}

	if m.metrics != nil {
		m.metrics.RecordPrediction(f.League, string(p.Confidence))
	}

	m.persist(ctx, f, &home, &away, &p)
	return analysis, nil
}

func (m *MatchAnalyzer) persist(ctx context.Context, f models.Fixture, home, away *models.Team, p *models.Prediction) {
	if m.store == nil {
		return
	}
	sp := &models.StoredPrediction{
		FixtureID:    f.Key(),
		League:       f.League,
		HomeTeamID:   home.ID,
		AwayTeamID:   away.ID,
		HomeTeam:     home.Name,
		AwayTeam:     away.Name,
		HomeWinPct:   p.HomeWinPct,
		DrawPct:      p.DrawPct,
		AwayWinPct:   p.AwayWinPct,
		Confidence:   p.Confidence,
		ModelVersion: engine.ModelVersion,
		CreatedAt:    time.Now().UTC(),
	}
	if err := m.store.Insert(ctx, sp); err != nil {
		if m.metrics != nil {
			m.metrics.RecordError("store_insert")
		}
		if m.logger != nil {
			m.logger.Warn("prediction not persisted",
				applogger.String("fixture", sp.FixtureID), applogger.Error(err))
		}
	}
}
