package snapshot

import (
	"context"
	"time"

	"zookeepr/application/ports"
	"zookeepr/domain/core/entities"
	"zookeepr/pkg/observability"

	"go.uber.org/zap"
)

// Instrumented decorates a store with metrics and debug logging
type Instrumented struct {
	next    ports.SnapshotStore
	metrics *observability.Collector
	logger  *zap.Logger
}

// Instrument wraps next. A nil collector disables metrics.
func Instrument(next ports.SnapshotStore, metrics *observability.Collector, logger *zap.Logger) *Instrumented {
	return &Instrumented{next: next, metrics: metrics, logger: logger}
}

func (s *Instrumented) Driver() string { return s.next.Driver() }

func (s *Instrumented) Load(ctx context.Context) ([]entities.Animal, error) {
	start := time.Now()
	animals, err := s.next.Load(ctx)
	s.observe("load", err, start, len(animals))
	return animals, err
}

func (s *Instrumented) Save(ctx context.Context, animals []entities.Animal) error {
	start := time.Now()
	err := s.next.Save(ctx, animals)
	s.observe("save", err, start, len(animals))
	return err
}

func (s *Instrumented) observe(operation string, err error, start time.Time, count int) {
	elapsed := time.Since(start)
	if s.metrics != nil {
		s.metrics.ObserveStorage(s.next.Driver(), operation, err, elapsed)
	}
	s.logger.Debug("Snapshot "+operation,
		zap.String("driver", s.next.Driver()),
		zap.Int("animals", count),
		zap.Duration("duration", elapsed),
		zap.Error(err),
	)
}
