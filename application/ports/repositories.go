package ports

import (
	"context"

	"zookeepr/domain/core/entities"
	"zookeepr/domain/core/valueobjects"
	"zookeepr/domain/events"
	"zookeepr/domain/specifications"
)

// AnimalRepository is the system of record for the catalog.
// This is a port in hexagonal architecture - the domain doesn't know about the implementation
type AnimalRepository interface {
	// List returns the records matching criteria in insertion order
	List(ctx context.Context, criteria specifications.Criteria) ([]entities.Animal, error)

	// GetByID returns the record with the given id or entities.ErrAnimalNotFound
	GetByID(ctx context.Context, id valueobjects.AnimalID) (entities.Animal, error)

	// Create assigns the next positional id, appends the record and persists
	// the whole collection before returning the stored record
	Create(ctx context.Context, candidate entities.Animal) (entities.Animal, error)

	// Count returns the number of stored records
	Count(ctx context.Context) int
}

// SnapshotStore is durable storage for the full collection. Every Save
// replaces the previous snapshot as a whole.
type SnapshotStore interface {
	// Load reads the full collection. A store that has never been written
	// returns an empty collection.
	Load(ctx context.Context) ([]entities.Animal, error)

	// Save overwrites the stored collection
	Save(ctx context.Context, animals []entities.Animal) error

	// Driver names the backing technology, for logs and metrics
	Driver() string
}

// EventPublisher publishes domain events to interested subscribers
type EventPublisher interface {
	Publish(ctx context.Context, event events.DomainEvent) error
}
