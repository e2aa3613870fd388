package adptarray

import (
	"strconv"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/rs/zerolog"
)

func newPropertyArray(l *ledger, policy GrowPolicy) *Array[*item] {
	nop := zerolog.Nop()
	arr, err := New[*item](l, WithLogger(&nop), WithGrowPolicy(policy))
	if err != nil {
		panic(err)
	}
	return arr
}

func TestArrayProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("size is one past the highest written index", prop.ForAll(
		func(indices []int) bool {
			arr := newPropertyArray(newLedger(), CopyOnGrow)
			highest := -1
			for _, idx := range indices {
				if err := arr.Set(idx, &item{Value: idx}); err != nil {
					return false
				}
				if idx > highest {
					highest = idx
				}
			}
			return arr.Size() == highest+1
		},
		gen.SliceOf(gen.IntRange(0, 64)),
	))

	properties.Property("get outside [0, size) is absent", prop.ForAll(
		func(size int, offset int) bool {
			arr := newPropertyArray(newLedger(), CopyOnGrow)
			if size > 0 {
				if err := arr.Set(size-1, &item{Value: 1}); err != nil {
					return false
				}
			}
			_, below := arr.Get(-1 - offset)
			_, above := arr.Get(size + offset)
			return !below && !above
		},
		gen.IntRange(0, 32),
		gen.IntRange(0, 32),
	))

	properties.Property("get after set returns an equal but distinct instance", prop.ForAll(
		func(idx int, value int) bool {
			arr := newPropertyArray(newLedger(), CopyOnGrow)
			elem := &item{Name: "elem", Value: value}
			if err := arr.Set(idx, elem); err != nil {
				return false
			}
			got, found := arr.Get(idx)
			if !found || got == elem || *got != *elem {
				return false
			}
			got.Value++
			again, _ := arr.Get(idx)
			return again.Value == value
		},
		gen.IntRange(0, 64),
		gen.Int(),
	))

	properties.Property("every copy made is released exactly once by the end of the lifecycle", prop.ForAll(
		func(indices []int, move bool) bool {
			policy := CopyOnGrow
			if move {
				policy = MoveOnGrow
			}
			l := newLedger()
			arr := newPropertyArray(l, policy)
			for _, idx := range indices {
				if err := arr.Set(idx, &item{Value: idx}); err != nil {
					return false
				}
			}
			if err := arr.Destroy(); err != nil {
				return false
			}
			for _, n := range l.deleted {
				if n != 1 {
					return false
				}
			}
			return len(l.deleted) == l.copies
		},
		gen.SliceOf(gen.IntRange(0, 32)),
		gen.Bool(),
	))

	properties.Property("print visits each stored element once in index order", prop.ForAll(
		func(indices []int) bool {
			l := newLedger()
			arr := newPropertyArray(l, CopyOnGrow)
			stored := map[int]bool{}
			for _, idx := range indices {
				if err := arr.Set(idx, &item{Name: "e", Value: idx}); err != nil {
					return false
				}
				stored[idx] = true
			}
			size := arr.Size()
			if err := arr.PrintAll(); err != nil {
				return false
			}
			if len(l.printed) != len(stored) || arr.Size() != size {
				return false
			}
			previous := -1
			for _, line := range l.printed {
				value, err := strconv.Atoi(strings.TrimPrefix(line, "e="))
				if err != nil || value <= previous || !stored[value] {
					return false
				}
				previous = value
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 32)),
	))

	properties.TestingRun(t)
}
