package queries

import (
	"context"

	"zookeepr/application/ports"
	"zookeepr/domain/core/entities"
	"zookeepr/domain/specifications"
)

// ListAnimalsQuery represents a filtered read of the catalog
type ListAnimalsQuery struct {
	Criteria specifications.Criteria
}

// Validate accepts any criteria; unrecognised keys never reach this point
func (q ListAnimalsQuery) Validate() error { return nil }

// ListAnimalsHandler handles the ListAnimalsQuery
type ListAnimalsHandler struct {
	repo ports.AnimalRepository
}

// NewListAnimalsHandler creates a new handler instance
func NewListAnimalsHandler(repo ports.AnimalRepository) *ListAnimalsHandler {
	return &ListAnimalsHandler{repo: repo}
}

// Handle returns the matching records in insertion order, never nil
func (h *ListAnimalsHandler) Handle(ctx context.Context, query ListAnimalsQuery) ([]entities.Animal, error) {
	animals, err := h.repo.List(ctx, query.Criteria)
	if err != nil {
		return nil, err
	}
	if animals == nil {
		animals = []entities.Animal{}
	}
	return animals, nil
}
