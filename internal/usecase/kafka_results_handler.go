package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"PitchCast/internal/domain/models"
	pkgkafka "PitchCast/pkg/kafka"
)

// ResultsHandler settles predictions from final-score events on the results
// topic. It implements kafka.MessageHandler.
type ResultsHandler struct {
	topic    string
	recorder *ResultsRecorder
}

func NewResultsHandler(topic string, recorder *ResultsRecorder) pkgkafka.MessageHandler {
	return &ResultsHandler{topic: topic, recorder: recorder}
}

func (h *ResultsHandler) Topic() string { return h.topic }

func (h *ResultsHandler) Handle(ctx context.Context, data []byte) error {
	var result models.MatchResult
	if err := json.Unmarshal(data, &result); err != nil {
		return fmt.Errorf("decode result: %w", err)
	}
	if result.FixtureID == "" {
		return fmt.Errorf("result missing fixture_id")
	}
	_, err := h.recorder.Record(ctx, &result)
	return err
}
