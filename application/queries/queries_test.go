package queries

import (
	"context"
	"testing"

	"zookeepr/domain/core/entities"
	"zookeepr/domain/core/valueobjects"
	"zookeepr/domain/specifications"
	"zookeepr/infrastructure/persistence/catalog"
	"zookeepr/infrastructure/persistence/snapshot"
	appErrors "zookeepr/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func openCatalog(t *testing.T) *catalog.Store {
	t.Helper()
	sink := snapshot.NewMemory(
		entities.NewAnimal(valueobjects.NewAnimalIDFromIndex(0), "Erica", "bear", "omnivore", []string{"playful", "quirky"}),
		entities.NewAnimal(valueobjects.NewAnimalIDFromIndex(1), "Jax", "cat", "carnivore", nil),
	)
	store, err := catalog.Open(context.Background(), sink, zap.NewNop())
	require.NoError(t, err)
	return store
}

func TestListAnimalsHandler(t *testing.T) {
	handler := NewListAnimalsHandler(openCatalog(t))

	all, err := handler.Handle(context.Background(), ListAnimalsQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	quirky, err := handler.Handle(context.Background(), ListAnimalsQuery{
		Criteria: specifications.Criteria{PersonalityTraits: []string{"quirky"}},
	})
	require.NoError(t, err)
	require.Len(t, quirky, 1)
	assert.Equal(t, "Erica", quirky[0].Name)

	none, err := handler.Handle(context.Background(), ListAnimalsQuery{
		Criteria: specifications.Criteria{Diet: "herbivore"},
	})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestGetAnimalHandler(t *testing.T) {
	handler := NewGetAnimalHandler(openCatalog(t))

	jax, err := handler.Handle(context.Background(), GetAnimalQuery{AnimalID: "1"})
	require.NoError(t, err)
	assert.Equal(t, "Jax", jax.Name)

	_, err = handler.Handle(context.Background(), GetAnimalQuery{AnimalID: "7"})
	assert.True(t, appErrors.IsNotFound(err))
}

func TestGetAnimalQuery_Validate(t *testing.T) {
	assert.NoError(t, GetAnimalQuery{AnimalID: "0"}.Validate())
	assert.Error(t, GetAnimalQuery{}.Validate())
}
