// Package kafka publishes classified UV observations for downstream consumers.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/couchcryptid/uv-advisory-service/internal/config"
	"github.com/couchcryptid/uv-advisory-service/internal/domain"
)

// Writer produces observation messages to a Kafka topic.
// It implements poller.Publisher.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured sink topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// Publish serializes and writes one classified observation to the sink topic.
func (w *Writer) Publish(ctx context.Context, obs domain.Observation, tier domain.Tier) error {
	msg, err := serializeObservation(obs, tier)
	if err != nil {
		return err
	}
	return w.writer.WriteMessages(ctx, msg)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// observationRecord is the serialized form destined for the sink topic.
type observationRecord struct {
	domain.Observation
	Tier     domain.Tier `json:"tier"`
	Advisory string      `json:"advisory"`
}

// serializeObservation marshals an observation and its tier into a Kafka
// message keyed by the deterministic observation ID.
func serializeObservation(obs domain.Observation, tier domain.Tier) (kafkago.Message, error) {
	data, err := json.Marshal(observationRecord{
		Observation: obs,
		Tier:        tier,
		Advisory:    tier.Advisory(),
	})
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize observation: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(obs.ID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "tier", Value: []byte(tier)},
			{Key: "observed_at", Value: []byte(obs.ObservedAt.Format(time.RFC3339))},
		},
	}, nil
}
