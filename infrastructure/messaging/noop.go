// Package messaging holds event publishers used when no event bus is configured.
package messaging

import (
	"context"

	"zookeepr/application/ports"
	"zookeepr/domain/events"

	"go.uber.org/zap"
)

// LogPublisher records events in the log instead of sending them anywhere
type LogPublisher struct {
	logger *zap.Logger
}

var _ ports.EventPublisher = (*LogPublisher)(nil)

// NewLogPublisher creates a publisher that only logs
func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	p.logger.Debug("Event raised",
		zap.String("eventType", event.GetEventType()),
		zap.String("aggregateId", event.GetAggregateID()),
	)
	return nil
}
