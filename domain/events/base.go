package events

import (
	"time"

	"zookeepr/domain/core/entities"
)

// Event sources and types published by the catalog
const (
	SourceCatalog     = "zookeepr.catalog"
	TypeAnimalCreated = "animal.created"
)

// DomainEvent is the base interface for all domain events
// Events represent something that has happened in the past
type DomainEvent interface {
	GetAggregateID() string
	GetEventType() string
	GetTimestamp() time.Time
	GetVersion() int
}

// BaseEvent provides common event fields
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
	Version     int       `json:"version"`
}

func (e BaseEvent) GetAggregateID() string  { return e.AggregateID }
func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }
func (e BaseEvent) GetVersion() int         { return e.Version }

// AnimalCreated is raised after a record has been appended and persisted
type AnimalCreated struct {
	BaseEvent
	Animal entities.Animal `json:"animal"`
}

// NewAnimalCreated creates an AnimalCreated event
func NewAnimalCreated(animal entities.Animal, timestamp time.Time) AnimalCreated {
	return AnimalCreated{
		BaseEvent: BaseEvent{
			AggregateID: animal.ID,
			EventType:   TypeAnimalCreated,
			Timestamp:   timestamp,
			Version:     1,
		},
		Animal: animal,
	}
}
