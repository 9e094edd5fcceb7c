package repository

import (
	"context"

	"PitchCast/internal/domain/models"
)

// DataProvider supplies team snapshots and head-to-head history. The engine
// never talks to it directly; use cases resolve inputs through it.
type DataProvider interface {
	Team(ctx context.Context, league string, teamID int64) (models.Team, error)
	H2H(ctx context.Context, teamAID, teamBID int64) ([]models.H2HMatch, error)
	Fixtures(ctx context.Context, league, date string) ([]models.Fixture, error)
}

// PredictionStore persists predictions and their eventual results.
type PredictionStore interface {
	Insert(ctx context.Context, p *models.StoredPrediction) error
	RecordResult(ctx context.Context, r *models.MatchResult) (int, error)
	History(ctx context.Context, teamID int64, limit int) ([]*models.StoredPrediction, error)
	Accuracy(ctx context.Context) (models.AccuracySummary, error)
	Health(ctx context.Context) error
	Close() error
}

// PickPublisher publishes generated picks and analyses to the event bus.
type PickPublisher interface {
	PublishPick(ctx context.Context, pick *models.DailyPick) error
	PublishAnalysis(ctx context.Context, a *models.MatchAnalysis) error
	Close() error
}

// ResultStream delivers final-score events from the live feed.
type ResultStream interface {
	Connect(ctx context.Context) error
	Subscribe(ctx context.Context) error
	Read(ctx context.Context) (<-chan *models.MatchResult, <-chan error)
	Reconnect(ctx context.Context) error
	Close() error
}

// Metrics records service-level observations.
type Metrics interface {
	RecordPrediction(league string, confidence string)
	RecordFallback(kind string)
	RecordError(kind string)
	RecordLatency(op string, seconds float64)
	RecordAccuracy(hitRate float64)
}
