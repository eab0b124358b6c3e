package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"zookeepr/domain/core/entities"
	"zookeepr/infrastructure/config"
	"zookeepr/infrastructure/di"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedDocument = `{
  "animals": [
    {"id": "0", "name": "Erica", "species": "bear", "diet": "omnivore", "personalityTraits": ["quirky", "rash"]},
    {"id": "1", "name": "Fred", "species": "tiger", "diet": "carnivore", "personalityTraits": ["rash", "hungry"]}
  ]
}`

func fileLoader(t *testing.T) (ContainerLoader, string) {
	t.Helper()
	dataFile := filepath.Join(t.TempDir(), "animals.json")
	require.NoError(t, os.WriteFile(dataFile, []byte(seedDocument), 0o644))

	return func(ctx context.Context) (*di.Container, func(), error) {
		cfg := config.Defaults()
		cfg.DataFile = dataFile
		cfg.LogLevel = "error"
		cfg.EnableMetrics = false
		return di.InitializeContainer(ctx, cfg)
	}, dataFile
}

func run(t *testing.T, load ContainerLoader, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand(load)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand(nil)
	for _, name := range []string{"list", "get", "add"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestList(t *testing.T) {
	load, _ := fileLoader(t)

	out, err := run(t, load, "list", "--trait", "rash", "--diet", "carnivore", "--format", "json")

	require.NoError(t, err)
	var animals []entities.Animal
	require.NoError(t, json.Unmarshal([]byte(out), &animals))
	require.Len(t, animals, 1)
	assert.Equal(t, "Fred", animals[0].Name)
}

func TestList_Text(t *testing.T) {
	load, _ := fileLoader(t)

	out, err := run(t, load, "list")

	require.NoError(t, err)
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "Erica")
	assert.Contains(t, out, "quirky,rash")
}

func TestGet(t *testing.T) {
	load, _ := fileLoader(t)

	out, err := run(t, load, "get", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Fred")

	_, err = run(t, load, "get", "9")
	assert.ErrorContains(t, err, "animal not found")
}

func TestAdd(t *testing.T) {
	load, dataFile := fileLoader(t)

	out, err := run(t, load, "add", "--name", "Jax", "--species", "cat", "--diet", "carnivore", "--trait", "sneaky", "--format", "json")

	require.NoError(t, err)
	var animals []entities.Animal
	require.NoError(t, json.Unmarshal([]byte(out), &animals))
	require.Len(t, animals, 1)
	assert.Equal(t, "2", animals[0].ID)

	raw, err := os.ReadFile(dataFile)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"sneaky"`)
}

func TestAdd_RequiresFields(t *testing.T) {
	load, _ := fileLoader(t)

	_, err := run(t, load, "add", "--name", "Jax")

	assert.ErrorIs(t, err, entities.ErrAnimalMalformed)
}

func TestInvalidFormat(t *testing.T) {
	load, _ := fileLoader(t)

	_, err := run(t, load, "list", "--format", "yaml")

	assert.ErrorContains(t, err, "invalid format")
}
