package adptarray

import "errors"

var (
	// ErrInvalidArray is returned when an operation is invoked on a nil or destroyed array.
	ErrInvalidArray = errors.New("adptarray: invalid array")

	// ErrNilBehavior is returned by the constructors when the behavior set is incomplete.
	ErrNilBehavior = errors.New("adptarray: nil behavior")

	// ErrNegativeIndex is returned when writing at an index lower than zero.
	ErrNegativeIndex = errors.New("adptarray: negative index")

	// ErrAllocation is returned when the allocator refuses to provide storage.
	ErrAllocation = errors.New("adptarray: allocation failed")

	// ErrOutOfRange is returned by Lookup for an index outside [0, size).
	ErrOutOfRange = errors.New("adptarray: index out of range")

	// ErrEmptySlot is returned by Lookup for an index in range holding no element.
	ErrEmptySlot = errors.New("adptarray: empty slot")
)
