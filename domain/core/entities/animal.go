package entities

import (
	"errors"

	"zookeepr/domain/core/valueobjects"
)

var (
	// ErrAnimalNotFound is returned when no record carries the requested id
	ErrAnimalNotFound = errors.New("animal not found")

	// ErrAnimalMalformed is returned when a candidate record fails validation
	ErrAnimalMalformed = errors.New("the animal is not properly formatted")
)

// Animal is a single catalog entry. Records are immutable once appended to
// a Collection, so the JSON form doubles as the storage form.
type Animal struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Species           string   `json:"species"`
	Diet              string   `json:"diet"`
	PersonalityTraits Traits `json:"personalityTraits"`
}

// NewAnimal creates an animal with string traits stored under id
func NewAnimal(id valueobjects.AnimalID, name, species, diet string, traits []string) Animal {
	return Animal{
		ID:                id.String(),
		Name:              name,
		Species:           species,
		Diet:              diet,
		PersonalityTraits: TraitsOf(traits...),
	}
}

// HasTrait reports whether trait is one of the animal's string traits.
// Non-string members never match.
func (a Animal) HasTrait(trait string) bool {
	return a.PersonalityTraits.Contains(trait)
}

// Clone returns a deep copy so callers cannot mutate stored traits
func (a Animal) Clone() Animal {
	a.PersonalityTraits = a.PersonalityTraits.Clone()
	return a
}
