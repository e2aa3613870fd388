// Package set provides a minimal generic set.
package set

// Set represents a generic set data structure
type Set[T comparable] map[T]struct{}

// New creates a new empty set
func New[T comparable]() Set[T] {
	return make(Set[T])
}

// Add adds a value to the set, returning false if it was already present.
func (s Set[T]) Add(value T) bool {
	if s.Contains(value) {
		return false
	}
	s[value] = struct{}{}
	return true
}

// Contains checks if a value exists in the set
func (s Set[T]) Contains(value T) bool {
	_, exists := s[value]
	return exists
}

// Remove removes a value from the set, returning false if it was absent.
func (s Set[T]) Remove(value T) bool {
	if !s.Contains(value) {
		return false
	}
	delete(s, value)
	return true
}

// Size returns the number of elements in the set
func (s Set[T]) Size() int {
	return len(s)
}

// ToSlice returns all values as a slice, in no particular order.
func (s Set[T]) ToSlice() []T {
	result := make([]T, 0, len(s))
	for value := range s {
		result = append(result, value)
	}
	return result
}
