package chain

import (
	"github.com/ib-77/hardrop/pkg/rop"
	"github.com/ib-77/hardrop/pkg/rop/solo"
)

// Chain wraps a rop.Result to enable fluent chaining
type Chain[T, E any] struct {
	result rop.Result[T, E]
}

// Start creates a new chain from a rop.Result
func Start[T, E any](result rop.Result[T, E]) *Chain[T, E] {
	return &Chain[T, E]{result: result}
}

// FromValue creates a new chain from an Ok value
func FromValue[T, E any](value T) *Chain[T, E] {
	return &Chain[T, E]{result: rop.Ok[T, E](value)}
}

// FromPair creates a new chain from a (value, error) return
func FromPair[T any](value T, err error) *Chain[T, error] {
	return &Chain[T, error]{result: solo.FromPair(value, err)}
}

// Result returns the underlying rop.Result
func (c *Chain[T, E]) Result() rop.Result[T, E] {
	return c.result
}

// Then chains a function that returns rop.Result[U, E]
func Then[T, U, E any](c *Chain[T, E], onOk func(T) rop.Result[U, E]) *Chain[U, E] {
	return &Chain[U, E]{result: solo.AndThen(c.result, onOk)}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T, error], tryOnOk func(T) (U, error)) *Chain[U, error] {
	return Then(c, func(v T) rop.Result[U, error] {
		return solo.FromPair(tryOnOk(v))
	})
}

// Map chains a pure transformation function
func Map[T, U, E any](c *Chain[T, E], onOk func(T) U) *Chain[U, E] {
	return &Chain[U, E]{result: solo.Map(c.result, onOk)}
}

// MapErr transforms the error carried by a failed chain
func MapErr[T, E, F any](c *Chain[T, E], onErr func(E) F) *Chain[T, F] {
	return &Chain[T, F]{result: solo.MapErr(c.result, onErr)}
}

// Recover gives a failed chain a second chance
func (c *Chain[T, E]) Recover(onErr func(E) rop.Result[T, E]) *Chain[T, E] {
	return &Chain[T, E]{result: solo.OrElse(c.result, onErr)}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T, E]) Ensure(onOk func(T)) *Chain[T, E] {
	return &Chain[T, E]{
		result: solo.Inspect(c.result, func(v *T) { onOk(*v) }),
	}
}

// Finally collapses the chain into a final value
func Finally[T, E, U any](c *Chain[T, E], onOk func(T) U, onErr func(E) U) U {
	return rop.ExtractWith(c.result, onErr, onOk)
}

// Pair collapses a chain carrying error into a (value, error) return
func Pair[T any](c *Chain[T, error]) (T, error) {
	return solo.ToPair(c.result)
}
