package adptarray

import (
	"github.com/a-peyrard/adptarray/fn"
)

type (
	// Behavior is the set of operations giving the array capability over its elements.
	//
	// Copy must return a value that can be deleted independently of its source, and
	// Delete must release everything an element owns. The array relies on both without
	// being able to check them.
	Behavior[T any] interface {
		Copy(elem T) T
		Delete(elem T)
		Print(elem T)
	}

	// Funcs bundles three plain functions into a Behavior.
	Funcs[T any] struct {
		CopyFn   fn.UnaryOperator[T]
		DeleteFn fn.Consumer[T]
		PrintFn  fn.Consumer[T]
	}
)

// Behave creates a behavior from its three functions.
func Behave[T any](copyFn fn.UnaryOperator[T], deleteFn fn.Consumer[T], printFn fn.Consumer[T]) Funcs[T] {
	return Funcs[T]{
		CopyFn:   copyFn,
		DeleteFn: deleteFn,
		PrintFn:  printFn,
	}
}

func (f Funcs[T]) Copy(elem T) T {
	return f.CopyFn(elem)
}

func (f Funcs[T]) Delete(elem T) {
	f.DeleteFn(elem)
}

func (f Funcs[T]) Print(elem T) {
	f.PrintFn(elem)
}

func (f Funcs[T]) complete() bool {
	return f.CopyFn != nil && f.DeleteFn != nil && f.PrintFn != nil
}
