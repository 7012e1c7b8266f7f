package rop

// Discard releases a payload that is being thrown away. It calls v.Drop when
// v is a Dropper and does nothing otherwise.
func Discard[V any](v V) {
	if d, ok := any(v).(Dropper); ok {
		d.Drop()
	}
}

// Drop releases the live payload of r. It is a no-op on a consumed Result and
// on a borrow projection, so `defer r.Drop()` is safe whatever happens to r in
// between.
func (r Result[T, E]) Drop() {
	if r.Spent() {
		return
	}
	if r.c.borrowed {
		r.c.slot = nil
		return
	}
	ExtractWith(r, release[E], release[T])
}

func release[V any](v V) Unit {
	Discard(v)
	return Unit{}
}

// Clone returns an independent Result with the same discriminant and a copy
// of the payload. r is not consumed.
func (r Result[T, E]) Clone() Result[T, E] {
	return inspect(r.peek(),
		func(e *E) Result[T, E] { return Err[T](duplicate(e)) },
		func(v *T) Result[T, E] { return Ok[T, E](duplicate(v)) },
	)
}

func duplicate[V any](p *V) V {
	if c, ok := any(*p).(Cloner[V]); ok {
		return c.Clone()
	}
	return *p
}
