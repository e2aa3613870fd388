// Package behavior provides ready-made behavior sets for the adaptive array.
package behavior

import (
	"fmt"
	"io"

	"github.com/a-peyrard/adptarray"
	"github.com/a-peyrard/adptarray/fn"
	"github.com/goccy/go-json"
	"github.com/mitchellh/copystructure"
)

// Element is implemented by types managing their own copies and resources.
type Element[T any] interface {
	Clone() T
	Release()
	String() string
}

// Value is the behavior for plain value types: copies are assignments, nothing to release.
// Do not use it with pointers, maps or slices, the copies would alias.
func Value[T any](w io.Writer) adptarray.Funcs[T] {
	return adptarray.Behave[T](fn.Identity[T], fn.Noop[T], func(elem T) {
		_, _ = fmt.Fprintln(w, elem)
	})
}

// Owned is the behavior for types implementing Element.
func Owned[T Element[T]](w io.Writer) adptarray.Funcs[T] {
	return adptarray.Behave[T](
		func(elem T) T {
			return elem.Clone()
		},
		func(elem T) {
			elem.Release()
		},
		func(elem T) {
			_, _ = fmt.Fprintln(w, elem.String())
		},
	)
}

// Deep copies elements structurally and prints them as JSON. Release is left to the
// garbage collector. Only exported struct fields are copied.
func Deep[T any](w io.Writer) adptarray.Funcs[T] {
	return adptarray.Behave[T](DeepCopy[T], fn.Noop[T], JSONPrinter[T](w))
}

// DeepCopy returns a structural copy of elem sharing no memory with it.
// It panics if copystructure fails, since a copy behavior has no way to report errors.
func DeepCopy[T any](elem T) T {
	out, err := copystructure.Copy(elem)
	if err != nil {
		panic(fmt.Errorf("cannot deep copy %T: %w", elem, err))
	}
	if out == nil {
		var zero T
		return zero
	}
	return out.(T)
}

// JSONPrinter writes each element as one line of JSON, falling back to %v for values
// that cannot be marshalled.
func JSONPrinter[T any](w io.Writer) fn.Consumer[T] {
	return func(elem T) {
		raw, err := json.Marshal(elem)
		if err != nil {
			_, _ = fmt.Fprintf(w, "%v\n", elem)
			return
		}
		_, _ = w.Write(append(raw, '\n'))
	}
}
