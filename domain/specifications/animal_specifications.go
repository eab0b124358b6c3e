package specifications

import (
	"zookeepr/domain/core/entities"
)

// Recognised query keys
const (
	KeyPersonalityTraits = "personalityTraits"
	KeyDiet              = "diet"
	KeySpecies           = "species"
	KeyName              = "name"
)

// Criteria narrows a catalog query. Empty fields are not applied.
// Repeated lists scalar keys that were given more than once; a list of
// values never equals a single field, so such criteria match nothing.
type Criteria struct {
	PersonalityTraits []string `json:"personalityTraits,omitempty"`
	Diet              string   `json:"diet,omitempty"`
	Species           string   `json:"species,omitempty"`
	Name              string   `json:"name,omitempty"`
	Repeated          []string `json:"repeated,omitempty"`
}

// CriteriaFromValues builds criteria from a query-string style mapping.
// Unknown keys are ignored. A single trait value is a one-element set,
// applied only when non-empty; repeated trait values are all required,
// empty ones included.
func CriteriaFromValues(values map[string][]string) Criteria {
	var c Criteria
	switch traits := values[KeyPersonalityTraits]; {
	case len(traits) == 1 && traits[0] != "":
		c.PersonalityTraits = []string{traits[0]}
	case len(traits) > 1:
		c.PersonalityTraits = append([]string(nil), traits...)
	}
	for _, key := range []string{KeyDiet, KeySpecies, KeyName} {
		v := values[key]
		if len(v) > 1 {
			c.Repeated = append(c.Repeated, key)
			continue
		}
		if len(v) == 1 {
			c.set(key, v[0])
		}
	}
	return c
}

func (c *Criteria) set(key, value string) {
	switch key {
	case KeyDiet:
		c.Diet = value
	case KeySpecies:
		c.Species = value
	case KeyName:
		c.Name = value
	}
}

// IsEmpty reports whether no criterion is applied
func (c Criteria) IsEmpty() bool {
	return len(c.PersonalityTraits) == 0 && c.Diet == "" && c.Species == "" && c.Name == "" &&
		len(c.Repeated) == 0
}

// Specification combines every applied criterion with AND
func (c Criteria) Specification() Specification[entities.Animal] {
	if len(c.Repeated) > 0 {
		return None[entities.Animal]()
	}
	spec := Any[entities.Animal]()
	for _, trait := range c.PersonalityTraits {
		spec = spec.And(HasTrait(trait))
	}
	if c.Diet != "" {
		spec = spec.And(DietIs(c.Diet))
	}
	if c.Species != "" {
		spec = spec.And(SpeciesIs(c.Species))
	}
	if c.Name != "" {
		spec = spec.And(NameIs(c.Name))
	}
	return spec
}

// HasTrait is satisfied when trait is a member of the animal's traits
func HasTrait(trait string) Specification[entities.Animal] {
	return NewBaseSpecification(func(a entities.Animal) bool {
		return a.HasTrait(trait)
	})
}

// DietIs matches the diet exactly
func DietIs(diet string) Specification[entities.Animal] {
	return NewBaseSpecification(func(a entities.Animal) bool {
		return a.Diet == diet
	})
}

// SpeciesIs matches the species exactly
func SpeciesIs(species string) Specification[entities.Animal] {
	return NewBaseSpecification(func(a entities.Animal) bool {
		return a.Species == species
	})
}

// NameIs matches the name exactly
func NameIs(name string) Specification[entities.Animal] {
	return NewBaseSpecification(func(a entities.Animal) bool {
		return a.Name == name
	})
}

// FilterAnimals returns the animals matching every applied criterion, in
// their original order. With no criteria the input is returned as is.
func FilterAnimals(animals []entities.Animal, criteria Criteria) []entities.Animal {
	if criteria.IsEmpty() {
		return animals
	}
	return Select(animals, criteria.Specification())
}
