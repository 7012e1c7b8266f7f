package rop

import "fmt"

// Unwrap returns the Ok value. It panics with an error wrapping
// ErrUnwrapOnErr if r holds an Err value.
func (r Result[T, E]) Unwrap() T {
	return ExtractWith(r,
		func(e E) T {
			err := fmt.Errorf("%w: %v", ErrUnwrapOnErr, e)
			Discard(e)
			panic(err)
		},
		func(v T) T { return v },
	)
}

// UnwrapErr returns the Err value. It panics with an error wrapping
// ErrUnwrapErrOnOk if r holds an Ok value.
func (r Result[T, E]) UnwrapErr() E {
	return ExtractWith(r,
		func(e E) E { return e },
		func(v T) E {
			err := fmt.Errorf("%w: %v", ErrUnwrapErrOnOk, v)
			Discard(v)
			panic(err)
		},
	)
}

// UnwrapOr returns the Ok value, or def when r holds an Err value. Whichever
// of the two is not returned is discarded.
func (r Result[T, E]) UnwrapOr(def T) T {
	return ExtractWith(r,
		func(e E) T {
			Discard(e)
			return def
		},
		func(v T) T {
			Discard(def)
			return v
		},
	)
}

func (r Result[T, E]) UnwrapOrElse(f func(E) T) T {
	return ExtractWith(r, f, func(v T) T { return v })
}

func (r Result[T, E]) UnwrapOrDefault() T {
	var zero T
	return r.UnwrapOr(zero)
}

// Expect is Unwrap with msg in front of the panic message.
func (r Result[T, E]) Expect(msg string) T {
	return ExtractWith(r,
		func(e E) T {
			err := fmt.Errorf("%s: %w: %v", msg, ErrUnwrapOnErr, e)
			Discard(e)
			panic(err)
		},
		func(v T) T { return v },
	)
}

// ExpectErr is UnwrapErr with msg in front of the panic message.
func (r Result[T, E]) ExpectErr(msg string) E {
	return ExtractWith(r,
		func(e E) E { return e },
		func(v T) E {
			err := fmt.Errorf("%s: %w: %v", msg, ErrUnwrapErrOnOk, v)
			Discard(v)
			panic(err)
		},
	)
}

// Ok converts r to an Option of its Ok value, discarding an Err value.
func (r Result[T, E]) Ok() Result[T, Unit] {
	return ExtractWith(r,
		func(e E) Result[T, Unit] {
			Discard(e)
			return None[T]()
		},
		Some[T],
	)
}

// Err converts r to an Option of its Err value, discarding an Ok value.
func (r Result[T, E]) Err() Result[E, Unit] {
	return ExtractWith(r,
		Some[E],
		func(v T) Result[E, Unit] {
			Discard(v)
			return None[E]()
		},
	)
}
