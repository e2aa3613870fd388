package behavior

import (
	"fmt"
	"sync"

	"github.com/a-peyrard/adptarray"
	"github.com/a-peyrard/adptarray/set"
)

// Tracker wraps a behavior and keeps account of the instances it creates and releases.
//
// Instances are identified by equality, so T should be a pointer or another type whose
// copies never compare equal. A copy returning a live instance, and a delete of an
// instance that is not live, are recorded as violations.
type Tracker[T comparable] struct {
	inner adptarray.Behavior[T]

	mu         sync.Mutex
	live       set.Set[T]
	copies     int
	deletes    int
	prints     int
	printed    []T
	violations []string
}

// Track wraps inner.
func Track[T comparable](inner adptarray.Behavior[T]) *Tracker[T] {
	return &Tracker[T]{
		inner: inner,
		live:  set.New[T](),
	}
}

// Adopt registers an instance created outside the tracker, so it can later be deleted
// through it.
func (t *Tracker[T]) Adopt(elem T) T {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.live.Add(elem)
	return elem
}

func (t *Tracker[T]) Copy(elem T) T {
	out := t.inner.Copy(elem)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.copies++
	if !t.live.Add(out) {
		t.violations = append(t.violations, fmt.Sprintf("copy of %v aliases a live instance", elem))
	}
	return out
}

func (t *Tracker[T]) Delete(elem T) {
	t.mu.Lock()
	t.deletes++
	if !t.live.Remove(elem) {
		t.violations = append(t.violations, fmt.Sprintf("delete of %v which is not live", elem))
	}
	t.mu.Unlock()

	t.inner.Delete(elem)
}

func (t *Tracker[T]) Print(elem T) {
	t.mu.Lock()
	t.prints++
	t.printed = append(t.printed, elem)
	t.mu.Unlock()

	t.inner.Print(elem)
}

func (t *Tracker[T]) Copies() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.copies
}

func (t *Tracker[T]) Deletes() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.deletes
}

func (t *Tracker[T]) Prints() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.prints
}

// Printed returns the instances passed to Print, in call order.
func (t *Tracker[T]) Printed() []T {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]T(nil), t.printed...)
}

// Live returns the number of instances copied or adopted and not deleted yet.
func (t *Tracker[T]) Live() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.live.Size()
}

// LiveInstances returns the instances copied or adopted and not deleted yet, in no
// particular order.
func (t *Tracker[T]) LiveInstances() []T {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.live.ToSlice()
}

// IsLive returns true if elem was copied or adopted and not deleted yet.
func (t *Tracker[T]) IsLive(elem T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.live.Contains(elem)
}

func (t *Tracker[T]) Violations() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.violations...)
}
