package flow

import "github.com/ib-77/hardrop/pkg/rop"

// IfElse calls then when cond is true and els when it is false.
func IfElse[U any](cond rop.Bool, then func() U, els func() U) U {
	return rop.ExtractWith(cond,
		func(rop.Unit) U { return els() },
		func(rop.Unit) U { return then() },
	)
}

// Else holds the outcome of If until an alternative is supplied.
type Else[U any] struct {
	taken rop.Option[U]
}

// If runs then when cond is true. The false branch is supplied through Else.
func If[U any](cond rop.Bool, then func() U) Else[U] {
	return Else[U]{taken: Then(cond, then)}
}

// Else returns the result of the true branch, or calls f.
func (e Else[U]) Else(f func() U) U {
	return e.taken.UnwrapOrElse(func(rop.Unit) U { return f() })
}

// Done drops the outcome of If when there is no false branch.
func (e Else[U]) Done() {
	e.taken.Drop()
}

func Then[T any](cond rop.Bool, f func() T) rop.Option[T] {
	return rop.ExtractWith(cond,
		func(rop.Unit) rop.Option[T] { return rop.None[T]() },
		func(rop.Unit) rop.Option[T] { return rop.Some(f()) },
	)
}

func ThenSome[T any](cond rop.Bool, v T) rop.Option[T] {
	return rop.ExtractWith(cond,
		func(rop.Unit) rop.Option[T] {
			rop.Discard(v)
			return rop.None[T]()
		},
		func(rop.Unit) rop.Option[T] { return rop.Some(v) },
	)
}
