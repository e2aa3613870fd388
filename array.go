// Package adptarray provides an adaptive array: a growable, index-addressable container
// of opaque elements whose copy, delete and print operations are supplied by the caller.
//
// The array owns every element it stores. Elements enter through a copy, leave through
// a copy, and are deleted exactly once, either when overwritten or when the array is
// destroyed. An Array is not safe for concurrent use, see the concurrent package.
package adptarray

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/a-peyrard/adptarray/fn"
	"github.com/a-peyrard/adptarray/option"
	"github.com/rs/zerolog"
)

// maxStorageBytes bounds the storage of one array, below the runtime's own allocation limit.
const maxStorageBytes = min(1<<47, math.MaxInt)

type (
	slot[T any] struct {
		value T
		ok    bool
	}

	// Array is the adaptive array. The zero value is not usable, use New.
	Array[T any] struct {
		slots      []slot[T]
		behavior   Behavior[T]
		allocator  Allocator
		growPolicy GrowPolicy
		logger     *zerolog.Logger
		destroyed  bool
	}
)

// New creates an empty array bound to the given behavior for its whole lifetime.
func New[T any](behavior Behavior[T], opts ...option.Option[Options]) (*Array[T], error) {
	if behavior == nil {
		return nil, ErrNilBehavior
	}
	if funcs, ok := behavior.(Funcs[T]); ok && !funcs.complete() {
		return nil, ErrNilBehavior
	}

	options := option.Build(&Options{
		logger:     DefaultLogger(),
		allocator:  Unbounded(),
		growPolicy: CopyOnGrow,
	}, opts...)

	logger := options.logger
	if options.name != "" {
		named := logger.With().Str("array", options.name).Logger()
		logger = &named
	}

	return &Array[T]{
		behavior:   behavior,
		allocator:  options.allocator,
		growPolicy: options.growPolicy,
		logger:     logger,
	}, nil
}

// NewFromFuncs creates an empty array from the three element functions.
func NewFromFuncs[T any](
	copyFn fn.UnaryOperator[T],
	deleteFn fn.Consumer[T],
	printFn fn.Consumer[T],
	opts ...option.Option[Options],
) (*Array[T], error) {
	return New[T](Behave(copyFn, deleteFn, printFn), opts...)
}

// Destroy deletes every stored element and releases the storage. The array is unusable
// afterward: every later call reports ErrInvalidArray.
func (a *Array[T]) Destroy() error {
	if a.invalid() {
		return a.reportInvalid("destroy")
	}

	for _, s := range a.slots {
		if s.ok {
			a.behavior.Delete(s.value)
		}
	}
	a.allocator.Free(len(a.slots))
	a.slots = nil
	a.destroyed = true

	return nil
}

// Set stores a copy of elem at idx, deleting the element previously there.
// Writing past the end grows the array to exactly idx+1 slots, the new slots in
// between staying empty. On error the array is left as it was.
func (a *Array[T]) Set(idx int, elem T) error {
	if a.invalid() {
		return a.reportInvalid("set")
	}
	if idx < 0 {
		err := fmt.Errorf("%w: %d", ErrNegativeIndex, idx)
		a.logger.Error().Err(err).Msg("cannot set element")
		return err
	}

	if idx >= len(a.slots) {
		if limit := maxSlots[T](); idx >= limit {
			err := fmt.Errorf("%w: index %d exceeds the %d slots storage can hold", ErrAllocation, idx, limit)
			a.logger.Error().Err(err).Int("size", len(a.slots)).Msg("cannot grow array")
			return err
		}
		if err := a.grow(idx + 1); err != nil {
			return err
		}
	}

	if old := a.slots[idx]; old.ok {
		a.behavior.Delete(old.value)
	}
	a.slots[idx] = slot[T]{value: a.behavior.Copy(elem), ok: true}

	return nil
}

// maxSlots is the number of slots of T fitting in maxStorageBytes.
func maxSlots[T any]() int {
	return maxStorageBytes / int(unsafe.Sizeof(slot[T]{}))
}

func (a *Array[T]) grow(size int) error {
	if err := a.allocator.Alloc(size); err != nil {
		err = fmt.Errorf("%w: growing to %d slots: %w", ErrAllocation, size, err)
		a.logger.Error().Err(err).Int("size", len(a.slots)).Msg("cannot grow array")
		return err
	}

	grown := make([]slot[T], size)
	for i, s := range a.slots {
		if !s.ok {
			continue
		}
		if a.growPolicy == MoveOnGrow {
			grown[i] = s
			continue
		}
		grown[i] = slot[T]{value: a.behavior.Copy(s.value), ok: true}
		a.behavior.Delete(s.value)
	}

	a.logger.Debug().
		Int("from", len(a.slots)).
		Int("to", size).
		Stringer("policy", a.growPolicy).
		Msg("array grown")

	a.allocator.Free(len(a.slots))
	a.slots = grown

	return nil
}

// Get returns a copy of the element at idx, owned by the caller.
// The boolean is false when there is nothing to return: idx out of range, empty slot,
// or invalid array. Use Lookup to tell these cases apart.
func (a *Array[T]) Get(idx int) (T, bool) {
	elem, err := a.Lookup(idx)
	return elem, err == nil
}

// Lookup is Get with the reason of an absent result: ErrInvalidArray, ErrOutOfRange or
// ErrEmptySlot.
func (a *Array[T]) Lookup(idx int) (T, error) {
	var zero T
	if a.invalid() {
		return zero, a.reportInvalid("get")
	}
	if idx < 0 || idx >= len(a.slots) {
		return zero, fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, idx, len(a.slots))
	}

	s := a.slots[idx]
	if !s.ok {
		return zero, fmt.Errorf("%w: %d", ErrEmptySlot, idx)
	}
	return a.behavior.Copy(s.value), nil
}

// IsEmptyAt returns true if no element is stored at idx, including when idx is out of range.
func (a *Array[T]) IsEmptyAt(idx int) bool {
	if a.invalid() || idx < 0 || idx >= len(a.slots) {
		return true
	}
	return !a.slots[idx].ok
}

// Size returns the number of slots, or -1 for an invalid array.
func (a *Array[T]) Size() int {
	if a.invalid() {
		_ = a.reportInvalid("size")
		return -1
	}
	return len(a.slots)
}

// PrintAll prints every stored element in ascending index order.
func (a *Array[T]) PrintAll() error {
	if a.invalid() {
		return a.reportInvalid("print")
	}

	for _, s := range a.slots {
		if s.ok {
			a.behavior.Print(s.value)
		}
	}
	return nil
}

func (a *Array[T]) invalid() bool {
	return a == nil || a.destroyed
}

func (a *Array[T]) reportInvalid(op string) error {
	logger := DefaultLogger()
	if a != nil {
		logger = a.logger
	}
	logger.Error().Err(ErrInvalidArray).Str("op", op).Msg("operation on nil or destroyed array")
	return ErrInvalidArray
}
