//go:build integration

package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strconv"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"

	"github.com/couchcryptid/uv-advisory-service/internal/adapter/kafka"
	"github.com/couchcryptid/uv-advisory-service/internal/config"
	"github.com/couchcryptid/uv-advisory-service/internal/domain"
)

const testTopic = "uv-observations-test"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// startKafka runs a single-node Kafka container and returns its broker address.
func startKafka(ctx context.Context, t *testing.T) string {
	t.Helper()

	container, err := tckafka.Run(ctx,
		"confluentinc/confluent-local:7.5.0",
		tckafka.WithClusterID("uv-advisory-test"),
	)
	require.NoError(t, err, "start kafka container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	brokers, err := container.Brokers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, brokers)
	return brokers[0]
}

func createTopic(t *testing.T, broker, topic string) {
	t.Helper()

	conn, err := kafkago.Dial("tcp", broker)
	require.NoError(t, err)
	defer conn.Close()

	controller, err := conn.Controller()
	require.NoError(t, err)

	controllerConn, err := kafkago.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	require.NoError(t, err)
	defer controllerConn.Close()

	require.NoError(t, controllerConn.CreateTopics(kafkago.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	}))
}

// TestPublishObservation verifies the writer round-trips a classified
// observation through Kafka with the expected key, payload, and headers.
func TestPublishObservation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	broker := startKafka(ctx, t)
	createTopic(t, broker, testTopic)

	cfg := &config.Config{
		KafkaEnabled: true,
		KafkaBrokers: []string{broker},
		KafkaTopic:   testTopic,
	}

	writer := kafka.NewWriter(cfg, discardLogger())
	t.Cleanup(func() { _ = writer.Close() })

	obs, err := domain.NewObservation("Canberra", "7")
	require.NoError(t, err)
	tier := domain.ClassifyIndex(obs.Index)

	require.NoError(t, writer.Publish(ctx, obs, tier))

	consumer := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     []string{broker},
		Topic:       testTopic,
		GroupID:     fmt.Sprintf("uv-test-%d", time.Now().UnixNano()),
		StartOffset: kafkago.FirstOffset,
	})
	t.Cleanup(func() { _ = consumer.Close() })

	readCtx, readCancel := context.WithTimeout(ctx, 30*time.Second)
	defer readCancel()

	msg, err := consumer.ReadMessage(readCtx)
	require.NoError(t, err, "read from sink topic")

	assert.Equal(t, obs.ID, string(msg.Key))

	var payload struct {
		Location string  `json:"location"`
		Index    float64 `json:"index"`
		RawIndex string  `json:"raw_index"`
		Tier     string  `json:"tier"`
		Advisory string  `json:"advisory"`
	}
	require.NoError(t, json.Unmarshal(msg.Value, &payload))
	assert.Equal(t, "Canberra", payload.Location)
	assert.Equal(t, 7.0, payload.Index)
	assert.Equal(t, "7", payload.RawIndex)
	assert.Equal(t, "high", payload.Tier)
	assert.Equal(t, "Stay inside.", payload.Advisory)

	headers := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "high", headers["tier"])
	assert.Equal(t, obs.ObservedAt.Format(time.RFC3339), headers["observed_at"])
}
