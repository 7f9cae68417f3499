package application

import (
	"context"

	"go.uber.org/zap"

	"github.com/shelter-admin/service-shelter-web/internal/events"
)

// activity publishes the event for a mutation that already succeeded, so a
// failure is only logged.
func activity(ctx context.Context, pub events.Publisher, logger *zap.Logger, eventType string, data any) {
	if pub == nil {
		return
	}
	if err := pub.Publish(ctx, eventType, data); err != nil {
		logger.Warn("failed to publish activity event",
			zap.String("type", eventType),
			zap.Error(err),
		)
	}
}
