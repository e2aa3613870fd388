// Package concurrent provides a mutex-guarded adaptive array for callers sharing one
// array between goroutines.
package concurrent

import (
	"sync"

	"github.com/a-peyrard/adptarray"
)

// Array serializes every operation of the wrapped array.
// Get and PrintAll only hold the read lock, so the behavior's Copy and Print must
// tolerate being called from several goroutines at once.
type Array[T any] struct {
	inner *adptarray.Array[T]
	mu    sync.RWMutex
}

// Wrap guards arr. arr must not be used directly afterward.
func Wrap[T any](arr *adptarray.Array[T]) *Array[T] {
	return &Array[T]{inner: arr}
}

// New creates a guarded array, see adptarray.New.
func New[T any](behavior adptarray.Behavior[T], opts ...adptarray.Option) (*Array[T], error) {
	arr, err := adptarray.New[T](behavior, opts...)
	if err != nil {
		return nil, err
	}
	return Wrap(arr), nil
}

func (a *Array[T]) Set(idx int, elem T) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.inner.Set(idx, elem)
}

func (a *Array[T]) Get(idx int) (T, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.inner.Get(idx)
}

func (a *Array[T]) Lookup(idx int) (T, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.inner.Lookup(idx)
}

func (a *Array[T]) Size() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.inner.Size()
}

func (a *Array[T]) PrintAll() error {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.inner.PrintAll()
}

func (a *Array[T]) Destroy() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.inner.Destroy()
}
