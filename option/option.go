// Package option implements the variadic functional options pattern.
package option

// Option represents a function that modifies options of type T.
type Option[T any] func(opts *T)

// Build applies the options, in order, on top of the given defaults and returns them.
// Nil options are skipped so callers can pass conditional options inline.
func Build[T any](defaults *T, opts ...Option[T]) *T {
	for _, opt := range opts {
		if opt != nil {
			opt(defaults)
		}
	}
	return defaults
}
