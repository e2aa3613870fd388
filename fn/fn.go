// Package fn holds the function types used to describe element behaviors.
package fn

// UnaryOperator represents a function producing a value of the same type as its input.
type UnaryOperator[T any] func(t T) T

// Identity returns its input unchanged.
func Identity[T any](t T) T {
	return t
}

// Consumer represents a function that accepts one argument and returns no result.
type Consumer[T any] func(t T)

// Noop is a consumer doing nothing.
func Noop[T any](T) {}

// TriConsumer represents a function that accepts three input arguments and returns no result.
type TriConsumer[A any, B any, C any] func(a A, b B, c C)

// AllTriConsumer creates a tri-consumer that will execute all the given tri-consumers.
func AllTriConsumer[A any, B any, C any](consumers ...TriConsumer[A, B, C]) TriConsumer[A, B, C] {
	return func(a A, b B, c C) {
		for _, consumer := range consumers {
			consumer(a, b, c)
		}
	}
}
