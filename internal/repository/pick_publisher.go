package repository

import (
	"context"

	"PitchCast/internal/domain/models"
	"PitchCast/internal/domain/repository"
	pkgkafka "PitchCast/pkg/kafka"
)

// KafkaPickPublisher publishes picks and match analyses, keyed by fixture so
// consumers see per-match ordering.
type KafkaPickPublisher struct {
	producer   *pkgkafka.Producer
	picksTopic string
}

// NewKafkaPickPublisher creates a Kafka-backed pick publisher.
func NewKafkaPickPublisher(producer *pkgkafka.Producer, picksTopic string) repository.PickPublisher {
	return &KafkaPickPublisher{producer: producer, picksTopic: picksTopic}
}

func (p *KafkaPickPublisher) PublishPick(ctx context.Context, pick *models.DailyPick) error {
	key := pick.Fixture.Key()
	return p.producer.Publish(ctx, p.picksTopic, []byte(key), map[string]interface{}{
		"type": "pick",
		"pick": pick,
	})
}

func (p *KafkaPickPublisher) PublishAnalysis(ctx context.Context, a *models.MatchAnalysis) error {
	key := a.Fixture.Key()
	return p.producer.Publish(ctx, p.picksTopic, []byte(key), map[string]interface{}{
		"type":     "analysis",
		"analysis": a,
	})
}

func (p *KafkaPickPublisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}
