//go:build integration

package main_test

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	kafkamodule "github.com/testcontainers/testcontainers-go/modules/kafka"
	"go.uber.org/zap"

	"github.com/shelter-admin/service-shelter-web/internal/events"
)

// testInfra holds shared test infrastructure.
type testInfra struct {
	KafkaBrokers []string
	Cleanup      func()
}

// setupKafka starts a Kafka testcontainer with the activity topic created.
func setupKafka(t *testing.T) *testInfra {
	t.Helper()
	ctx := context.Background()

	// confluent-local supports KRaft natively.
	kafkaContainer, err := kafkamodule.Run(ctx, "confluentinc/confluent-local:7.5.0")
	require.NoError(t, err, "failed to start Kafka container")

	kafkaBrokers, err := kafkaContainer.Brokers(ctx)
	require.NoError(t, err, "failed to get Kafka brokers")

	terminate := func() {
		if err := testcontainers.TerminateContainer(kafkaContainer); err != nil {
			t.Logf("failed to terminate Kafka container: %v", err)
		}
	}

	topicCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := ensureTopics(topicCtx, kafkaBrokers, events.DefaultTopic); err != nil {
		terminate()
		t.Fatalf("failed to prepare activity topic: %v", err)
	}

	return &testInfra{KafkaBrokers: kafkaBrokers, Cleanup: terminate}
}

// consumeOneEvent reads the topic through an ActivityConsumer until an event
// of the expected type arrives.
func consumeOneEvent(t *testing.T, brokers []string, topic, expectedType string, timeout time.Duration) events.CloudEvent {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	groupID := fmt.Sprintf("test-assert-%s", uuid.New().String()[:8])
	consumer := events.NewActivityConsumer(brokers, groupID, topic, zap.NewNop())
	defer func() { _ = consumer.Close() }()

	var found events.CloudEvent
	errFound := errors.New("found")
	err := consumer.Start(ctx, func(_ context.Context, ce events.CloudEvent) error {
		if ce.Type != expectedType {
			return nil
		}
		found = ce
		return errFound
	})
	if !errors.Is(err, errFound) {
		t.Fatalf("timed out waiting for event type %q on topic %q: %v", expectedType, topic, err)
	}
	return found
}

// ensureTopics creates each topic with one partition through the cluster
// controller and waits until the leader reports it.
func ensureTopics(ctx context.Context, brokers []string, topics ...string) error {
	var dialer kafkago.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", brokers[0])
	if err != nil {
		return fmt.Errorf("dial %s: %w", brokers[0], err)
	}
	defer conn.Close()

	controller, err := conn.Controller()
	if err != nil {
		return fmt.Errorf("find controller: %w", err)
	}
	ctrl, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	if err != nil {
		return fmt.Errorf("dial controller: %w", err)
	}
	defer ctrl.Close()

	configs := make([]kafkago.TopicConfig, 0, len(topics))
	for _, topic := range topics {
		configs = append(configs, kafkago.TopicConfig{Topic: topic, NumPartitions: 1, ReplicationFactor: 1})
	}
	if err := ctrl.CreateTopics(configs...); err != nil {
		return fmt.Errorf("create %v: %w", topics, err)
	}

	for _, topic := range topics {
		for {
			parts, err := conn.ReadPartitions(topic)
			if err == nil && len(parts) > 0 && parts[0].Leader.Host != "" {
				break
			}
			select {
			case <-ctx.Done():
				return fmt.Errorf("topic %s never got a leader: %w", topic, ctx.Err())
			case <-time.After(200 * time.Millisecond):
			}
		}
	}
	return nil
}
