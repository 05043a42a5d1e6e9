package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/cypherlabdev/bet-simulator-service/internal/models"
)

// KafkaProducer publishes bet lifecycle events for downstream consumers
// (history, analytics). Publishing is best effort: the bet lifecycle
// itself never depends on Kafka being up.
type KafkaProducer struct {
	writer *kafka.Writer
	logger zerolog.Logger
}

// KafkaProducerConfig holds Kafka producer configuration
type KafkaProducerConfig struct {
	Brokers []string // e.g., ["localhost:9092"]
}

// NewKafkaProducer creates a new Kafka producer
func NewKafkaProducer(config KafkaProducerConfig, logger zerolog.Logger) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(config.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 100 * time.Millisecond,
	}

	return &KafkaProducer{
		writer: writer,
		logger: logger.With().Str("component", "kafka_producer").Logger(),
	}
}

// PublishBetPlaced publishes a bet_placed event keyed by user.
func (p *KafkaProducer) PublishBetPlaced(ctx context.Context, event models.BetPlacedEvent) error {
	return p.publish(ctx, models.TopicBetPlaced, event.UserID, event)
}

// PublishBetSettled publishes a bet_settled event keyed by user.
func (p *KafkaProducer) PublishBetSettled(ctx context.Context, event models.BetSettledEvent) error {
	return p.publish(ctx, models.TopicBetSettled, event.UserID, event)
}

func (p *KafkaProducer) publish(ctx context.Context, topic, key string, event interface{}) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: value,
	}); err != nil {
		return fmt.Errorf("failed to write to %s: %w", topic, err)
	}

	p.logger.Debug().
		Str("topic", topic).
		Str("key", key).
		Msg("published event")

	return nil
}

// Close closes the Kafka writer
func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}

// Nop is a publisher that drops all events, used when Kafka is disabled.
type Nop struct{}

// PublishBetPlaced drops the event.
func (Nop) PublishBetPlaced(ctx context.Context, event models.BetPlacedEvent) error { return nil }

// PublishBetSettled drops the event.
func (Nop) PublishBetSettled(ctx context.Context, event models.BetSettledEvent) error { return nil }
