package commands

import (
	"context"
	"time"

	"zookeepr/application/ports"
	"zookeepr/domain/core/entities"
	"zookeepr/domain/core/validators"
	"zookeepr/domain/events"
	"zookeepr/pkg/observability"

	"go.uber.org/zap"
)

var candidateValidator = validators.NewAnimalValidator()

// CreateAnimalCommand represents the command to add a record to the catalog
type CreateAnimalCommand struct {
	Candidate validators.AnimalCandidate
}

// Validate runs the shallow admission check on the candidate
func (c CreateAnimalCommand) Validate() error {
	return candidateValidator.Validate(c.Candidate)
}

// CreateAnimalHandler handles the CreateAnimalCommand
type CreateAnimalHandler struct {
	repo      ports.AnimalRepository
	publisher ports.EventPublisher
	metrics   *observability.Collector
	logger    *zap.Logger
	now       func() time.Time
}

// NewCreateAnimalHandler creates a new handler instance. metrics may be nil.
func NewCreateAnimalHandler(
	repo ports.AnimalRepository,
	publisher ports.EventPublisher,
	metrics *observability.Collector,
	logger *zap.Logger,
) *CreateAnimalHandler {
	return &CreateAnimalHandler{
		repo:      repo,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
	}
}

// Handle stores the candidate and announces it. The record is durable
// once Create returns, so a failed publish is logged and not returned.
func (h *CreateAnimalHandler) Handle(ctx context.Context, cmd CreateAnimalCommand) (entities.Animal, error) {
	animal, err := h.repo.Create(ctx, cmd.Candidate.ToAnimal())
	if err != nil {
		return entities.Animal{}, err
	}

	if h.metrics != nil {
		h.metrics.AnimalCreated(h.repo.Count(ctx))
	}

	if err := h.publisher.Publish(ctx, events.NewAnimalCreated(animal, h.now())); err != nil {
		h.logger.Warn("Failed to publish animal created event",
			zap.String("id", animal.ID),
			zap.Error(err),
		)
	}

	return animal, nil
}
