package entities

import "zookeepr/domain/core/valueobjects"

// Collection is the ordered, append-only set of catalog records.
// Insertion order is preserved and the id of every record equals the
// index it was appended at.
type Collection struct {
	animals []Animal
}

// NewCollection wraps records loaded from durable storage
func NewCollection(animals []Animal) *Collection {
	c := &Collection{animals: make([]Animal, 0, len(animals))}
	for _, a := range animals {
		c.animals = append(c.animals, a.Clone())
	}
	return c
}

// Len returns the number of records
func (c *Collection) Len() int {
	return len(c.animals)
}

// NextID returns the id the next appended record will receive
func (c *Collection) NextID() valueobjects.AnimalID {
	return valueobjects.NewAnimalIDFromIndex(len(c.animals))
}

// Append stores a candidate under the next positional id and returns the stored record
func (c *Collection) Append(candidate Animal) Animal {
	stored := candidate.Clone()
	stored.ID = c.NextID().String()
	c.animals = append(c.animals, stored)
	return stored.Clone()
}

// Truncate drops every record at or after n. It only exists so a failed
// write-back can undo the append that preceded it.
func (c *Collection) Truncate(n int) {
	if n < 0 || n >= len(c.animals) {
		return
	}
	c.animals = c.animals[:n]
}

// FindByID returns the first record whose id matches
func (c *Collection) FindByID(id valueobjects.AnimalID) (Animal, bool) {
	for _, a := range c.animals {
		if a.ID == id.String() {
			return a.Clone(), true
		}
	}
	return Animal{}, false
}

// All returns a copy of every record in insertion order
func (c *Collection) All() []Animal {
	out := make([]Animal, 0, len(c.animals))
	for _, a := range c.animals {
		out = append(out, a.Clone())
	}
	return out
}
