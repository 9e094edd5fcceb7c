package usecase

import (
	"context"

	"PitchCast/internal/domain/models"
	drepo "PitchCast/internal/domain/repository"
	applogger "PitchCast/pkg/logger"
)

// ResultsRecorder settles stored predictions against final scores and keeps
// the accuracy gauge current.
type ResultsRecorder struct {
	store   drepo.PredictionStore
	metrics drepo.Metrics
	logger  *applogger.Logger
}

func NewResultsRecorder(store drepo.PredictionStore, metrics drepo.Metrics, logger *applogger.Logger) *ResultsRecorder {
	return &ResultsRecorder{store: store, metrics: metrics, logger: logger}
}

// Record settles predictions for one result and returns how many settled.
func (r *ResultsRecorder) Record(ctx context.Context, result *models.MatchResult) (int, error) {
	settled, err := r.store.RecordResult(ctx, result)
	if err != nil {
		if r.metrics != nil {
			r.metrics.RecordError("record_result")
		}
		return 0, err
	}

	if settled > 0 && r.logger != nil {
		r.logger.Info("result settled",
			applogger.String("fixture", result.FixtureID),
			applogger.Int("home_goals", result.HomeGoals),
			applogger.Int("away_goals", result.AwayGoals),
			applogger.Int("predictions", settled),
		)
	}

	r.refreshAccuracy(ctx)
	return settled, nil
}

func (r *ResultsRecorder) refreshAccuracy(ctx context.Context) {
	if r.metrics == nil {
		return
	}
	summary, err := r.store.Accuracy(ctx)
	if err != nil {
		if r.logger != nil {
			r.logger.Warn("accuracy refresh failed", applogger.Error(err))
		}
		return
	}
	if summary.Settled > 0 {
		r.metrics.RecordAccuracy(summary.HitRate)
	}
}

// RunStream consumes the live-score feed until the context ends, recording
// every final score and reconnecting on stream errors.
func (r *ResultsRecorder) RunStream(ctx context.Context, stream drepo.ResultStream) error {
	if err := stream.Connect(ctx); err != nil {
		return err
	}
	if err := stream.Subscribe(ctx); err != nil {
		return err
	}

	for {
		results, errs := stream.Read(ctx)

	consume:
		for {
			select {
			case <-ctx.Done():
				return stream.Close()
			case res, ok := <-results:
				if !ok {
					break consume
				}
				if _, err := r.Record(ctx, res); err != nil && r.logger != nil {
					r.logger.Error("result not recorded",
						applogger.String("fixture", res.FixtureID), applogger.Error(err))
				}
			case err, ok := <-errs:
				if !ok {
					break consume
				}
				if r.logger != nil {
					r.logger.Warn("stream error, reconnecting", applogger.Error(err))
				}
				break consume
			}
		}

		select {
		case <-ctx.Done():
			return stream.Close()
		default:
		}
		if err := stream.Reconnect(ctx); err != nil {
			if r.logger != nil {
				r.logger.Error("stream reconnect failed", applogger.Error(err))
			}
			return err
		}
	}
}
