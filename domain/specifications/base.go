package specifications

// Specification is the base interface for all specifications
type Specification[T any] interface {
	// IsSatisfiedBy checks if the specification is satisfied by the given object
	IsSatisfiedBy(candidate T) bool

	// And creates a composite specification with AND logic
	And(other Specification[T]) Specification[T]
}

// BaseSpecification provides default implementations for specification operations
type BaseSpecification[T any] struct {
	evaluator func(T) bool
}

// NewBaseSpecification creates a new base specification with a custom evaluator
func NewBaseSpecification[T any](evaluator func(T) bool) *BaseSpecification[T] {
	return &BaseSpecification[T]{
		evaluator: evaluator,
	}
}

// IsSatisfiedBy checks if the specification is satisfied
func (s *BaseSpecification[T]) IsSatisfiedBy(candidate T) bool {
	return s.evaluator(candidate)
}

// And creates an AND composite specification
func (s *BaseSpecification[T]) And(other Specification[T]) Specification[T] {
	return &AndSpecification[T]{
		left:  s,
		right: other,
	}
}

// AndSpecification represents an AND composite specification
type AndSpecification[T any] struct {
	left  Specification[T]
	right Specification[T]
}

// IsSatisfiedBy checks if both specifications are satisfied
func (s *AndSpecification[T]) IsSatisfiedBy(candidate T) bool {
	return s.left.IsSatisfiedBy(candidate) && s.right.IsSatisfiedBy(candidate)
}

// And creates a new AND composite specification
func (s *AndSpecification[T]) And(other Specification[T]) Specification[T] {
	return &AndSpecification[T]{
		left:  s,
		right: other,
	}
}

// Any is satisfied by every candidate. It is the identity element for And.
func Any[T any]() Specification[T] {
	return NewBaseSpecification(func(T) bool { return true })
}

// None is satisfied by no candidate
func None[T any]() Specification[T] {
	return NewBaseSpecification(func(T) bool { return false })
}

// Select returns, in order, the candidates that satisfy spec
func Select[T any](candidates []T, spec Specification[T]) []T {
	out := make([]T, 0, len(candidates))
	for _, c := range candidates {
		if spec.IsSatisfiedBy(c) {
			out = append(out, c)
		}
	}
	return out
}
