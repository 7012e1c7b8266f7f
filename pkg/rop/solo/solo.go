package solo

import "github.com/ib-77/hardrop/pkg/rop"

// Map applies f to an Ok value and passes an Err value through.
func Map[T, E, U any](r rop.Result[T, E], f func(T) U) rop.Result[U, E] {
	return rop.ExtractWith(r,
		rop.Err[U, E],
		func(v T) rop.Result[U, E] { return rop.Ok[U, E](f(v)) },
	)
}

// MapErr applies f to an Err value and passes an Ok value through.
func MapErr[T, E, F any](r rop.Result[T, E], f func(E) F) rop.Result[T, F] {
	return rop.ExtractWith(r,
		func(e E) rop.Result[T, F] { return rop.Err[T](f(e)) },
		rop.Ok[T, F],
	)
}

// MapOr applies f to an Ok value, or returns def for an Err value.
func MapOr[T, E, U any](r rop.Result[T, E], def U, f func(T) U) U {
	return rop.ExtractWith(r,
		func(e E) U {
			rop.Discard(e)
			return def
		},
		func(v T) U {
			rop.Discard(def)
			return f(v)
		},
	)
}

// MapOrElse is rop.ExtractWith under its combinator name.
func MapOrElse[T, E, U any](r rop.Result[T, E], onErr func(E) U, onOk func(T) U) U {
	return rop.ExtractWith(r, onErr, onOk)
}

// AndThen feeds an Ok value into f; an Err value passes through untouched.
func AndThen[T, E, U any](r rop.Result[T, E], f func(T) rop.Result[U, E]) rop.Result[U, E] {
	return rop.ExtractWith(r, rop.Err[U, E], f)
}

// And returns next when r is Ok and r's Err otherwise. The value that loses
// is discarded.
func And[T, E, U any](r rop.Result[T, E], next rop.Result[U, E]) rop.Result[U, E] {
	return rop.ExtractWith(r,
		func(e E) rop.Result[U, E] {
			next.Drop()
			return rop.Err[U](e)
		},
		func(v T) rop.Result[U, E] {
			rop.Discard(v)
			return next
		},
	)
}

// OrElse feeds an Err value into f; an Ok value passes through untouched.
func OrElse[T, E, F any](r rop.Result[T, E], f func(E) rop.Result[T, F]) rop.Result[T, F] {
	return rop.ExtractWith(r, f, rop.Ok[T, F])
}

// Or returns r when it is Ok and alt otherwise. The value that loses is
// discarded.
func Or[T, E, F any](r rop.Result[T, E], alt rop.Result[T, F]) rop.Result[T, F] {
	return rop.ExtractWith(r,
		func(e E) rop.Result[T, F] {
			rop.Discard(e)
			return alt
		},
		func(v T) rop.Result[T, F] {
			alt.Drop()
			return rop.Ok[T, F](v)
		},
	)
}

// Inspect calls f with a pointer to an Ok value. r is returned unconsumed.
func Inspect[T, E any](r rop.Result[T, E], f func(*T)) rop.Result[T, E] {
	rop.ExtractWith(rop.AsRef(r),
		func(*E) rop.Unit { return rop.Unit{} },
		func(v *T) rop.Unit {
			f(v)
			return rop.Unit{}
		},
	)
	return r
}

// InspectErr calls f with a pointer to an Err value. r is returned unconsumed.
func InspectErr[T, E any](r rop.Result[T, E], f func(*E)) rop.Result[T, E] {
	rop.ExtractWith(rop.AsRef(r),
		func(e *E) rop.Unit {
			f(e)
			return rop.Unit{}
		},
		func(*T) rop.Unit { return rop.Unit{} },
	)
	return r
}

func Copied[T, E any](r rop.Result[*T, E]) rop.Result[T, E] {
	return Map(r, func(p *T) T { return *p })
}

// Cloned is Copied for payloads that know how to duplicate themselves.
func Cloned[T rop.Cloner[T], E any](r rop.Result[*T, E]) rop.Result[T, E] {
	return Map(r, func(p *T) T { return (*p).Clone() })
}
