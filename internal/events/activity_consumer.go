package events

import (
	"context"
	"errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Handler receives one decoded activity event.
type Handler func(ctx context.Context, ce CloudEvent) error

// ActivityConsumer reads the activity topic, e.g. for `shelter-web events tail`.
type ActivityConsumer struct {
	reader *kafkago.Reader
	logger *zap.Logger
}

// NewActivityConsumer creates an ActivityConsumer in the given consumer group.
func NewActivityConsumer(brokers []string, groupID, topic string, logger *zap.Logger) *ActivityConsumer {
	if topic == "" {
		topic = DefaultTopic
	}
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     brokers,
		GroupID:     groupID,
		Topic:       topic,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafkago.FirstOffset,
	})
	return &ActivityConsumer{reader: reader, logger: logger}
}

// Start consumes events until ctx is cancelled. Malformed messages are logged
// and skipped; a handler error stops consumption.
func (c *ActivityConsumer) Start(ctx context.Context, handle Handler) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}

		ce, err := ParseCloudEvent(msg.Value)
		if err != nil {
			c.logger.Error("failed to parse activity event",
				zap.Error(err),
				zap.String("raw", string(msg.Value)),
			)
			continue
		}

		if err := handle(ctx, ce); err != nil {
			return err
		}
	}
}

// Close closes the underlying reader.
func (c *ActivityConsumer) Close() error {
	return c.reader.Close()
}
