package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"PitchCast/internal/domain/models"
	"PitchCast/internal/domain/repository"
)

// Schema statements for the prediction history tables. Results are settled by
// appending to prediction_results rather than mutating prediction rows, which
// keeps both tables append-only MergeTree.
var SchemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS predictions (
		fixture_id    String,
		league        String,
		home_team_id  Int64,
		away_team_id  Int64,
		home_team     String,
		away_team     String,
		home_win_pct  Float64,
		draw_pct      Float64,
		away_win_pct  Float64,
		confidence    LowCardinality(String),
		model_version LowCardinality(String),
		created_at    DateTime
	) ENGINE = MergeTree()
	ORDER BY (fixture_id, created_at)`,
	`CREATE TABLE IF NOT EXISTS prediction_results (
		fixture_id  String,
		home_goals  Int32,
		away_goals  Int32,
		confidence  LowCardinality(String),
		outcome_hit UInt8,
		settled_at  DateTime
	) ENGINE = MergeTree()
	ORDER BY (fixture_id, settled_at)`,
}

// ClickHouseStore implements PredictionStore on ClickHouse.
type ClickHouseStore struct {
	db *sql.DB
}

// NewClickHouseStore creates a ClickHouse-backed prediction store.
func NewClickHouseStore(db *sql.DB) repository.PredictionStore {
	return &ClickHouseStore{db: db}
}

func (s *ClickHouseStore) Insert(ctx context.Context, p *models.StoredPrediction) error {
	const q = `INSERT INTO predictions
		(fixture_id, league, home_team_id, away_team_id, home_team, away_team,
		 home_win_pct, draw_pct, away_win_pct, confidence, model_version, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, q,
		p.FixtureID,
		p.League,
		p.HomeTeamID,
		p.AwayTeamID,
		p.HomeTeam,
		p.AwayTeam,
		p.HomeWinPct,
		p.DrawPct,
		p.AwayWinPct,
		string(p.Confidence),
		p.ModelVersion,
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("insert prediction: %w", err)
	}
	return nil
}

// RecordResult settles every stored prediction for the result's fixture and
// returns the number of predictions settled. A prediction hits when its
// favored outcome matches the final score.
func (s *ClickHouseStore) RecordResult(ctx context.Context, r *models.MatchResult) (int, error) {
	const q = `SELECT home_win_pct, draw_pct, away_win_pct, confidence
		FROM predictions WHERE fixture_id = ?`

	rows, err := s.db.QueryContext(ctx, q, r.FixtureID)
	if err != nil {
		return 0, fmt.Errorf("load predictions: %w", err)
	}
	defer rows.Close()

	type settled struct {
		confidence string
		hit        bool
	}
	var toSettle []settled
	actual := actualOutcome(r.HomeGoals, r.AwayGoals)

	for rows.Next() {
		var p models.Prediction
		var conf string
		if err := rows.Scan(&p.HomeWinPct, &p.DrawPct, &p.AwayWinPct, &conf); err != nil {
			return 0, fmt.Errorf("scan prediction: %w", err)
		}
		toSettle = append(toSettle, settled{confidence: conf, hit: p.Favored() == actual})
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate predictions: %w", err)
	}
	if len(toSettle) == 0 {
		return 0, nil
	}

	settledAt := r.FinishedAt
	if settledAt.IsZero() {
		settledAt = time.Now().UTC()
	}

	const ins = `INSERT INTO prediction_results
		(fixture_id, home_goals, away_goals, confidence, outcome_hit, settled_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	for _, st := range toSettle {
		hit := uint8(0)
		if st.hit {
			hit = 1
		}
		if _, err := s.db.ExecContext(ctx, ins,
			r.FixtureID, int32(r.HomeGoals), int32(r.AwayGoals), st.confidence, hit, settledAt,
		); err != nil {
			return 0, fmt.Errorf("insert result: %w", err)
		}
	}

	return len(toSettle), nil
}

// History returns recent predictions, newest first, joined against any
// settled results. teamID 0 means all teams.
func (s *ClickHouseStore) History(ctx context.Context, teamID int64, limit int) ([]*models.StoredPrediction, error) {
	if limit <= 0 {
		limit = 50
	}

	q := `SELECT p.fixture_id, p.league, p.home_team_id, p.away_team_id,
			p.home_team, p.away_team, p.home_win_pct, p.draw_pct, p.away_win_pct,
			p.confidence, p.model_version, p.created_at,
			r.home_goals, r.away_goals, r.outcome_hit, r.settled
		FROM predictions AS p
		LEFT JOIN (
			SELECT fixture_id,
				any(home_goals) AS home_goals,
				any(away_goals) AS away_goals,
				any(outcome_hit) AS outcome_hit,
				1 AS settled
			FROM prediction_results GROUP BY fixture_id
		) AS r ON r.fixture_id = p.fixture_id`

	args := []interface{}{}
	if teamID > 0 {
		q += ` WHERE p.home_team_id = ? OR p.away_team_id = ?`
		args = append(args, teamID, teamID)
	}
	q += ` ORDER BY p.created_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var out []*models.StoredPrediction
	for rows.Next() {
		var sp models.StoredPrediction
		var conf string
		var homeGoals, awayGoals sql.NullInt32
		var outcomeHit, settledFlag sql.NullInt32
		if err := rows.Scan(
			&sp.FixtureID, &sp.League, &sp.HomeTeamID, &sp.AwayTeamID,
			&sp.HomeTeam, &sp.AwayTeam, &sp.HomeWinPct, &sp.DrawPct, &sp.AwayWinPct,
			&conf, &sp.ModelVersion, &sp.CreatedAt,
			&homeGoals, &awayGoals, &outcomeHit, &settledFlag,
		); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		sp.Confidence = models.Confidence(conf)
		if settledFlag.Valid && settledFlag.Int32 == 1 {
			sp.Settled = true
			sp.HomeGoals = int(homeGoals.Int32)
			sp.AwayGoals = int(awayGoals.Int32)
			sp.OutcomeHit = outcomeHit.Valid && outcomeHit.Int32 == 1
		}
		out = append(out, &sp)
	}
	return out, rows.Err()
}

// Accuracy aggregates settled results overall and per confidence band.
func (s *ClickHouseStore) Accuracy(ctx context.Context) (models.AccuracySummary, error) {
	const q = `SELECT confidence, count(), sum(outcome_hit)
		FROM prediction_results GROUP BY confidence`

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return models.AccuracySummary{}, fmt.Errorf("query accuracy: %w", err)
	}
	defer rows.Close()

	summary := models.AccuracySummary{ByConfidence: make(map[string]float64)}
	for rows.Next() {
		var conf string
		var total, hits uint64
		if err := rows.Scan(&conf, &total, &hits); err != nil {
			return models.AccuracySummary{}, fmt.Errorf("scan accuracy: %w", err)
		}
		summary.Settled += int(total)
		summary.OutcomeHits += int(hits)
		if total > 0 {
			summary.ByConfidence[conf] = float64(hits) / float64(total)
		}
	}
	if err := rows.Err(); err != nil {
		return models.AccuracySummary{}, err
	}
	if summary.Settled > 0 {
		summary.HitRate = float64(summary.OutcomeHits) / float64(summary.Settled)
	}
	return summary, nil
}

func (s *ClickHouseStore) Health(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *ClickHouseStore) Close() error {
	return nil // pool managed by pkg/clickhouse
}

func actualOutcome(homeGoals, awayGoals int) string {
	switch {
	case homeGoals > awayGoals:
		return "1"
	case awayGoals > homeGoals:
		return "2"
	default:
		return "X"
	}
}
