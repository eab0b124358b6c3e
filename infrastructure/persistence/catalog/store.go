// Package catalog holds the in-memory system of record for animals and
// writes the full collection back to a snapshot store on every create.
package catalog

import (
	"context"
	"fmt"
	"sync"

	"zookeepr/application/ports"
	"zookeepr/domain/core/entities"
	"zookeepr/domain/core/valueobjects"
	"zookeepr/domain/specifications"
	appErrors "zookeepr/pkg/errors"

	"go.uber.org/zap"
)

// Store implements ports.AnimalRepository.
// Reads share the lock; creates hold it across the append and the
// write-back so the stored file always matches memory.
type Store struct {
	mu         sync.RWMutex
	collection *entities.Collection
	sink       ports.SnapshotStore
	logger     *zap.Logger
}

var _ ports.AnimalRepository = (*Store)(nil)

// Open loads the collection from sink
func Open(ctx context.Context, sink ports.SnapshotStore, logger *zap.Logger) (*Store, error) {
	animals, err := sink.Load(ctx)
	if err != nil {
		return nil, appErrors.NewStorageError("load", err)
	}

	logger.Info("Catalog loaded",
		zap.String("driver", sink.Driver()),
		zap.Int("animals", len(animals)),
	)

	return &Store{
		collection: entities.NewCollection(animals),
		sink:       sink,
		logger:     logger,
	}, nil
}

func (s *Store) List(ctx context.Context, criteria specifications.Criteria) ([]entities.Animal, error) {
	s.mu.RLock()
	all := s.collection.All()
	s.mu.RUnlock()

	return specifications.FilterAnimals(all, criteria), nil
}

func (s *Store) GetByID(ctx context.Context, id valueobjects.AnimalID) (entities.Animal, error) {
	s.mu.RLock()
	animal, ok := s.collection.FindByID(id)
	s.mu.RUnlock()

	if !ok {
		return entities.Animal{}, fmt.Errorf("%w: id %s", entities.ErrAnimalNotFound, id)
	}
	return animal, nil
}

func (s *Store) Create(ctx context.Context, candidate entities.Animal) (entities.Animal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.collection.Len()
	stored := s.collection.Append(candidate)

	if err := s.sink.Save(ctx, s.collection.All()); err != nil {
		s.collection.Truncate(previous)
		s.logger.Error("Failed to persist catalog, append rolled back",
			zap.String("driver", s.sink.Driver()),
			zap.String("id", stored.ID),
			zap.Error(err),
		)
		return entities.Animal{}, appErrors.NewStorageError("save", err)
	}

	return stored, nil
}

func (s *Store) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collection.Len()
}
