package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"zookeepr/domain/core/entities"
	"zookeepr/domain/core/valueobjects"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_EmptyDatabase(t *testing.T) {
	s, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	animals, err := s.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, animals)
	assert.Equal(t, "sqlite", s.Driver())
}

func TestStore_SaveReplacesSnapshot(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "zoo.db")
	s, err := New(path)
	require.NoError(t, err)

	erica := entities.NewAnimal(valueobjects.NewAnimalIDFromIndex(0), "Erica", "bear", "omnivore", []string{"quirky"})
	jax := entities.NewAnimal(valueobjects.NewAnimalIDFromIndex(1), "Jax", "cat", "carnivore", []string{"sneaky"})

	require.NoError(t, s.Save(ctx, []entities.Animal{erica}))
	require.NoError(t, s.Save(ctx, []entities.Animal{erica, jax}))
	require.NoError(t, s.Close())

	reopened, err := New(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	loaded, err := reopened.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entities.Animal{erica, jax}, loaded)
}
