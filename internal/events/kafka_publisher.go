package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Publisher emits activity events.
type Publisher interface {
	Publish(ctx context.Context, eventType string, data any) error
	Close() error
}

// NewPublisher returns a Kafka publisher, or a no-op one when brokers is empty.
func NewPublisher(brokers []string, topic, source string, logger *zap.Logger) Publisher {
	if len(brokers) == 0 {
		logger.Info("no kafka brokers configured, activity events disabled")
		return NopPublisher{}
	}
	return NewKafkaPublisher(brokers, topic, source, logger)
}

// KafkaPublisher writes activity events to a Kafka topic.
type KafkaPublisher struct {
	writer *kafkago.Writer
	source string
	logger *zap.Logger
}

// NewKafkaPublisher creates a KafkaPublisher.
func NewKafkaPublisher(brokers []string, topic, source string, logger *zap.Logger) *KafkaPublisher {
	if topic == "" {
		topic = DefaultTopic
	}
	return &KafkaPublisher{
		writer: &kafkago.Writer{
			Addr:                   kafkago.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafkago.Hash{},
			RequiredAcks:           kafkago.RequireOne,
			BatchTimeout:           10 * time.Millisecond,
			AllowAutoTopicCreation: true,
		},
		source: source,
		logger: logger,
	}
}

// Publish wraps data in a CloudEvent keyed by its type and writes it.
func (p *KafkaPublisher) Publish(ctx context.Context, eventType string, data any) error {
	ce, err := NewCloudEvent(p.source, eventType, data)
	if err != nil {
		return err
	}
	value, err := json.Marshal(ce)
	if err != nil {
		return fmt.Errorf("marshal cloud event: %w", err)
	}

	if err := p.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(eventType),
		Value: value,
	}); err != nil {
		return fmt.Errorf("publish %s: %w", eventType, err)
	}

	p.logger.Debug("activity event published",
		zap.String("type", eventType),
		zap.String("event_id", ce.ID),
	)
	return nil
}

// Close flushes and closes the writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, any) error { return nil }
func (NopPublisher) Close() error                               { return nil }
