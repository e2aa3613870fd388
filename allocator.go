package adptarray

import (
	"fmt"
	"sync"
)

// Allocator accounts for slot storage. Alloc is called before storage for n slots is
// created and Free once storage of n slots is dropped.
type Allocator interface {
	Alloc(n int) error
	Free(n int)
}

type unbounded struct{}

// Unbounded returns an allocator that never refuses.
func Unbounded() Allocator {
	return unbounded{}
}

func (unbounded) Alloc(int) error { return nil }

func (unbounded) Free(int) {}

// LimitAllocator refuses allocations once more than max slots would be held at the same time.
// During a grow the old and the new storage are both held, so the peak is old+new.
type LimitAllocator struct {
	mu    sync.Mutex
	max   int
	inUse int
}

// Limit creates an allocator bounded to max live slots.
func Limit(max int) *LimitAllocator {
	return &LimitAllocator{max: max}
}

func (l *LimitAllocator) Alloc(n int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n < 0 || l.inUse+n > l.max {
		return fmt.Errorf("cannot allocate %d slots, %d of %d in use", n, l.inUse, l.max)
	}
	l.inUse += n
	return nil
}

func (l *LimitAllocator) Free(n int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.inUse -= n
	if l.inUse < 0 {
		l.inUse = 0
	}
}

// InUse returns the number of slots currently accounted.
func (l *LimitAllocator) InUse() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inUse
}
