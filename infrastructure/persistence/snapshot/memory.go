package snapshot

import (
	"context"
	"sync"

	"zookeepr/domain/core/entities"
)

// Memory keeps the encoded document in memory. It goes through the same
// codec as the durable drivers so tests observe identical bytes.
type Memory struct {
	mu    sync.Mutex
	data  []byte
	saves int
}

// NewMemory returns a store seeded with animals
func NewMemory(animals ...entities.Animal) *Memory {
	m := &Memory{}
	if len(animals) > 0 {
		m.data, _ = Encode(animals)
	}
	return m
}

func (m *Memory) Driver() string { return DriverMemory }

func (m *Memory) Load(ctx context.Context) ([]entities.Animal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Decode(m.data)
}

func (m *Memory) Save(ctx context.Context, animals []entities.Animal) error {
	data, err := Encode(animals)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = data
	m.saves++
	return nil
}

// Bytes returns the last saved document
func (m *Memory) Bytes() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]byte(nil), m.data...)
}

// Saves returns how many times Save succeeded
func (m *Memory) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
