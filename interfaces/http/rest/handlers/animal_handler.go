package handlers

import (
	"net/http"

	"zookeepr/application/commands"
	"zookeepr/application/commands/bus"
	"zookeepr/application/queries"
	querybus "zookeepr/application/queries/bus"
	"zookeepr/domain/core/entities"
	"zookeepr/domain/core/validators"
	"zookeepr/domain/specifications"
	"zookeepr/pkg/common"
	appErrors "zookeepr/pkg/errors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxBodyBytes bounds the size of a submitted record
const maxBodyBytes = 1 << 20

// AnimalHandler handles /api/animals requests
type AnimalHandler struct {
	commandBus   *bus.CommandBus
	queryBus     *querybus.QueryBus
	validator    *validators.AnimalValidator
	errorHandler *appErrors.ErrorHandler
	logger       *zap.Logger
}

// NewAnimalHandler creates a new animal handler
func NewAnimalHandler(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	errorHandler *appErrors.ErrorHandler,
	logger *zap.Logger,
) *AnimalHandler {
	return &AnimalHandler{
		commandBus:   commandBus,
		queryBus:     queryBus,
		validator:    validators.NewAnimalValidator(),
		errorHandler: errorHandler,
		logger:       logger,
	}
}

// ListAnimals handles GET /api/animals
func (h *AnimalHandler) ListAnimals(w http.ResponseWriter, r *http.Request) {
	criteria := specifications.CriteriaFromValues(r.URL.Query())
	h.logger.Debug("Listing animals", zap.Any("criteria", criteria))

	result, err := h.queryBus.Ask(r.Context(), queries.ListAnimalsQuery{Criteria: criteria})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	animals, ok := result.([]entities.Animal)
	if !ok {
		h.errorHandler.Handle(w, r, appErrors.NewInternalError("unexpected list result"))
		return
	}
	h.respond(w, http.StatusOK, animals)
}

// GetAnimal handles GET /api/animals/{id}
func (h *AnimalHandler) GetAnimal(w http.ResponseWriter, r *http.Request) {
	animalID := chi.URLParam(r, "id")

	result, err := h.queryBus.Ask(r.Context(), queries.GetAnimalQuery{AnimalID: animalID})
	if err != nil {
		if !appErrors.IsNotFound(err) {
			h.logger.Error("Failed to get animal", zap.String("animalID", animalID), zap.Error(err))
		}
		h.errorHandler.Handle(w, r, err)
		return
	}

	h.respond(w, http.StatusOK, result)
}

// CreateAnimal handles POST /api/animals
func (h *AnimalHandler) CreateAnimal(w http.ResponseWriter, r *http.Request) {
	candidate, err := h.validator.Decode(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	result, err := h.commandBus.Send(r.Context(), commands.CreateAnimalCommand{Candidate: candidate})
	if err != nil {
		if !appErrors.IsValidation(err) {
			h.logger.Error("Failed to create animal", zap.Error(err))
		}
		h.errorHandler.Handle(w, r, err)
		return
	}

	h.respond(w, http.StatusOK, result)
}

func (h *AnimalHandler) respond(w http.ResponseWriter, status int, data interface{}) {
	if err := common.RespondJSON(w, status, data); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}
