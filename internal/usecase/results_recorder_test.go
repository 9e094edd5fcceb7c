package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"PitchCast/internal/domain/models"
	"PitchCast/internal/engine"
)

func TestRecordSettlesStoredPredictions(t *testing.T) {
	store := &fakeStore{}
	analyzer, _ := newTestAnalyzer(store)
	if _, err := analyzer.Predict(context.Background(), testFixture(), engine.VenueTeamA); err != nil {
		t.Fatalf("predict: %v", err)
	}

	recorder := NewResultsRecorder(store, nil, nil)
	settled, err := recorder.Record(context.Background(), &models.MatchResult{
		FixtureID: "pl-2025-08-16-1-19",
		HomeGoals: 2,
		AwayGoals: 0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settled != 1 {
		t.Fatalf("expected 1 settled prediction, got %d", settled)
	}
	if !store.inserted[0].Settled {
		t.Fatalf("stored prediction not marked settled")
	}
}

func TestRecordUnknownFixtureSettlesNothing(t *testing.T) {
	store := &fakeStore{}
	recorder := NewResultsRecorder(store, nil, nil)

	settled, err := recorder.Record(context.Background(), &models.MatchResult{
		FixtureID: "never-predicted",
		HomeGoals: 1,
		AwayGoals: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settled != 0 {
		t.Fatalf("expected 0 settled, got %d", settled)
	}
}

func TestResultsHandlerDecodesAndRecords(t *testing.T) {
	store := &fakeStore{}
	analyzer, _ := newTestAnalyzer(store)
	if _, err := analyzer.Predict(context.Background(), testFixture(), engine.VenueTeamA); err != nil {
		t.Fatalf("predict: %v", err)
	}

	handler := NewResultsHandler("match.results", NewResultsRecorder(store, nil, nil))
	if handler.Topic() != "match.results" {
		t.Fatalf("unexpected topic %q", handler.Topic())
	}

	payload, _ := json.Marshal(models.MatchResult{
		FixtureID: "pl-2025-08-16-1-19",
		HomeGoals: 3,
		AwayGoals: 1,
	})
	if err := handler.Handle(context.Background(), payload); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if !store.inserted[0].Settled {
		t.Fatalf("result should settle the stored prediction")
	}
}

func TestResultsHandlerRejectsMalformedPayload(t *testing.T) {
	handler := NewResultsHandler("match.results", NewResultsRecorder(&fakeStore{}, nil, nil))

	if err := handler.Handle(context.Background(), []byte("{not json")); err == nil {
		t.Fatalf("expected decode error")
	}
	if err := handler.Handle(context.Background(), []byte(`{"home_goals":1}`)); err == nil {
		t.Fatalf("expected missing fixture_id error")
	}
}
