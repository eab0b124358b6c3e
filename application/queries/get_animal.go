package queries

import (
	"context"

	"zookeepr/application/ports"
	"zookeepr/domain/core/entities"
	"zookeepr/domain/core/valueobjects"
)

// GetAnimalQuery represents a lookup by id
type GetAnimalQuery struct {
	AnimalID string
}

// Validate ensures an id was supplied
func (q GetAnimalQuery) Validate() error {
	_, err := valueobjects.NewAnimalIDFromString(q.AnimalID)
	return err
}

// GetAnimalHandler handles the GetAnimalQuery
type GetAnimalHandler struct {
	repo ports.AnimalRepository
}

// NewGetAnimalHandler creates a new handler instance
func NewGetAnimalHandler(repo ports.AnimalRepository) *GetAnimalHandler {
	return &GetAnimalHandler{repo: repo}
}

// Handle returns the record or a not-found error
func (h *GetAnimalHandler) Handle(ctx context.Context, query GetAnimalQuery) (entities.Animal, error) {
	id, err := valueobjects.NewAnimalIDFromString(query.AnimalID)
	if err != nil {
		return entities.Animal{}, err
	}
	return h.repo.GetByID(ctx, id)
}
