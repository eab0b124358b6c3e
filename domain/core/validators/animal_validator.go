package validators

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"zookeepr/domain/core/entities"

	"github.com/go-playground/validator/v10"
)

// AnimalCandidate is a submitted record before it receives an id.
// Pointer fields distinguish a missing value from an empty one: the
// checks only require presence and the right JSON type. Trait members
// may be any JSON value.
type AnimalCandidate struct {
	Name              *string  `json:"name" validate:"required"`
	Species           *string  `json:"species" validate:"required"`
	Diet              *string  `json:"diet" validate:"required"`
	PersonalityTraits entities.Traits `json:"personalityTraits" validate:"required"`
}

// ToAnimal converts a validated candidate into an unsaved record
func (c AnimalCandidate) ToAnimal() entities.Animal {
	return entities.Animal{
		Name:              deref(c.Name),
		Species:           deref(c.Species),
		Diet:              deref(c.Diet),
		PersonalityTraits: c.PersonalityTraits.Clone(),
	}
}

// ValidationError lists every field that failed the shallow schema check
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, field := range fieldOrder {
		if msg, ok := e.Fields[field]; ok {
			parts = append(parts, msg)
		}
	}
	return fmt.Sprintf("%s: %s", entities.ErrAnimalMalformed, strings.Join(parts, "; "))
}

// Unwrap lets callers match the failure with errors.Is(err, entities.ErrAnimalMalformed)
func (e *ValidationError) Unwrap() error {
	return entities.ErrAnimalMalformed
}

// FieldErrors maps each rejected field to its message
func (e *ValidationError) FieldErrors() map[string]string {
	return e.Fields
}

var fieldOrder = []string{"body", "name", "species", "diet", "personalityTraits"}

// AnimalValidator performs the shallow admission check for new records
type AnimalValidator struct {
	validate *validator.Validate
}

// NewAnimalValidator creates a validator that reports fields by their JSON names
func NewAnimalValidator() *AnimalValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &AnimalValidator{validate: v}
}

// Decode reads a candidate from JSON. A value of the wrong JSON type
// (for example a number for name, or an object for personalityTraits)
// is reported as a validation failure, not a transport error.
func (v *AnimalValidator) Decode(r io.Reader) (AnimalCandidate, error) {
	var candidate AnimalCandidate
	if err := json.NewDecoder(r).Decode(&candidate); err != nil {
		return AnimalCandidate{}, &ValidationError{Fields: map[string]string{decodeField(err): decodeMessage(err)}}
	}
	return candidate, nil
}

// Validate checks that every required field is present
func (v *AnimalValidator) Validate(candidate AnimalCandidate) error {
	err := v.validate.Struct(candidate)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	failed := &ValidationError{Fields: make(map[string]string, len(fieldErrors))}
	for _, fe := range fieldErrors {
		failed.Fields[fe.Field()] = formatFieldError(fe)
	}
	return failed
}

// DecodeAndValidate runs Decode then Validate
func (v *AnimalValidator) DecodeAndValidate(r io.Reader) (AnimalCandidate, error) {
	candidate, err := v.Decode(r)
	if err != nil {
		return AnimalCandidate{}, err
	}
	if err := v.Validate(candidate); err != nil {
		return AnimalCandidate{}, err
	}
	return candidate, nil
}

// formatFieldError formats a single field validation error
func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}

func decodeField(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		// nested paths like personalityTraits.0 belong to the top-level field
		return strings.SplitN(typeErr.Field, ".", 2)[0]
	}
	return "body"
}

func decodeMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fmt.Sprintf("%s must not be a JSON %s", decodeField(err), typeErr.Value)
	}
	if errors.Is(err, io.EOF) {
		return "body is empty"
	}
	return "body is not a JSON object"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
