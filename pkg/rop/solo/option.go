package solo

import "github.com/ib-77/hardrop/pkg/rop"

func IsSome[T any](o rop.Option[T]) rop.Bool {
	return o.IsOk()
}

func IsNone[T any](o rop.Option[T]) rop.Bool {
	return o.IsErr()
}

func OkOr[T, E any](o rop.Option[T], err E) rop.Result[T, E] {
	return rop.ExtractWith(o,
		func(rop.Unit) rop.Result[T, E] { return rop.Err[T](err) },
		func(v T) rop.Result[T, E] {
			rop.Discard(err)
			return rop.Ok[T, E](v)
		},
	)
}

func OkOrElse[T, E any](o rop.Option[T], err func() E) rop.Result[T, E] {
	return MapErr(o, func(rop.Unit) E { return err() })
}

// Filter keeps a present value only if pred holds for it; a rejected value is
// discarded.
func Filter[T any](o rop.Option[T], pred func(*T) rop.Bool) rop.Option[T] {
	return AndThen(o, func(v T) rop.Option[T] {
		return rop.ExtractWith(pred(&v),
			func(rop.Unit) rop.Option[T] {
				rop.Discard(v)
				return rop.None[T]()
			},
			func(rop.Unit) rop.Option[T] { return rop.Some(v) },
		)
	})
}

func Flatten[T any](o rop.Option[rop.Option[T]]) rop.Option[T] {
	return rop.ExtractWith(o,
		func(rop.Unit) rop.Option[T] { return rop.None[T]() },
		func(inner rop.Option[T]) rop.Option[T] { return inner },
	)
}

// Transpose turns an Ok of an Option into an Option of a Result:
// Ok(None) becomes None, Ok(Some(v)) becomes Some(Ok(v)), Err(e) becomes
// Some(Err(e)).
func Transpose[T, E any](r rop.Result[rop.Option[T], E]) rop.Option[rop.Result[T, E]] {
	return rop.ExtractWith(r,
		func(e E) rop.Option[rop.Result[T, E]] { return rop.Some(rop.Err[T](e)) },
		func(o rop.Option[T]) rop.Option[rop.Result[T, E]] {
			return Map(o, rop.Ok[T, E])
		},
	)
}

// TransposeOption is the inverse of Transpose.
func TransposeOption[T, E any](o rop.Option[rop.Result[T, E]]) rop.Result[rop.Option[T], E] {
	return rop.ExtractWith(o,
		func(rop.Unit) rop.Result[rop.Option[T], E] { return rop.Ok[rop.Option[T], E](rop.None[T]()) },
		func(r rop.Result[T, E]) rop.Result[rop.Option[T], E] {
			return Map(r, rop.Some[T])
		},
	)
}

// Insert stores v in o, discarding whatever o held, and returns a pointer to
// the stored value. The pointer is valid until o is next consumed.
func Insert[T any](o *rop.Option[T], v T) *T {
	o.Drop()
	*o = rop.Some(v)
	return rop.AsMut(*o).Unwrap()
}

// Take moves the value out of o and leaves None behind. A zero or consumed o
// counts as None.
func Take[T any](o *rop.Option[T]) rop.Option[T] {
	old := *o
	*o = rop.None[T]()
	if old.Spent() {
		return rop.None[T]()
	}
	return old
}

// Replace stores v in o and returns the previous content.
func Replace[T any](o *rop.Option[T], v T) rop.Option[T] {
	old := Take(o)
	*o = rop.Some(v)
	return old
}

func GetOrInsertWith[T any](o *rop.Option[T], f func() T) *T {
	v := Take(o).UnwrapOrElse(func(rop.Unit) T { return f() })
	return Insert(o, v)
}

func GetOrInsert[T any](o *rop.Option[T], v T) *T {
	return GetOrInsertWith(o, func() T { return v })
}

func GetOrInsertDefault[T any](o *rop.Option[T]) *T {
	return GetOrInsertWith(o, func() T {
		var zero T
		return zero
	})
}
