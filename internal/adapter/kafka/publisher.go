package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/storm-impact-report/internal/config"
	"github.com/couchcryptid/storm-impact-report/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// Publisher produces per-category aggregate messages to a Kafka topic.
// It implements pipeline.Publisher.
type Publisher struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewPublisher creates a Kafka producer for the configured aggregates topic.
func NewPublisher(cfg *config.Config, logger *slog.Logger) *Publisher {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Publisher{writer: w, logger: logger}
}

// Publish sends one message per category in a single WriteMessages call.
// Keys are category names, so a compacted topic keeps only the latest run's
// totals for each category.
func (p *Publisher) Publish(ctx context.Context, runID string, generatedAt time.Time, totals []domain.CategoryTotals) error {
	if len(totals) == 0 {
		return nil
	}

	msgs := make([]kafkago.Message, len(totals))
	for i := range totals {
		msg, err := serializeToMessage(runID, generatedAt, totals[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write aggregates: %w", err)
	}
	p.logger.Info("aggregates written", "topic", p.writer.Topic, "messages", len(msgs))
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// serializeToMessage marshals one category's totals into a Kafka message.
func serializeToMessage(runID string, generatedAt time.Time, totals domain.CategoryTotals) (kafkago.Message, error) {
	data, err := json.Marshal(totals)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize category totals: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(totals.Category),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "run_id", Value: []byte(runID)},
			{Key: "generated_at", Value: []byte(generatedAt.Format(time.RFC3339))},
		},
	}, nil
}
