package valueobjects

import (
	"errors"
	"strconv"
)

// AnimalID identifies an animal by the position it was appended at.
// It is not a durable unique identifier: it is only stable because the
// collection never removes or reorders records.
type AnimalID struct {
	value string
}

// NewAnimalIDFromIndex creates the identifier for the record stored at index
func NewAnimalIDFromIndex(index int) AnimalID {
	return AnimalID{value: strconv.Itoa(index)}
}

// NewAnimalIDFromString creates an AnimalID from an existing string
func NewAnimalIDFromString(id string) (AnimalID, error) {
	if id == "" {
		return AnimalID{}, errors.New("animal ID cannot be empty")
	}
	return AnimalID{value: id}, nil
}

// String returns the string representation of the AnimalID
func (id AnimalID) String() string {
	return id.value
}
