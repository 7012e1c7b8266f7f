package rop

import "unsafe"

// Discriminant patterns: every bit pair of tagOk is "10", tagErr is its
// complement.
const (
	tagOk  = ^uint(0) / 3 * 2
	tagErr = ^tagOk
)

// Unit is the payload of the absent side of Option and of both sides of Bool.
type Unit = struct{}

// Option is a Result whose Err side carries nothing: Ok means present.
type Option[T any] = Result[T, Unit]

// Bool is an Option of nothing: Ok means true, Err means false.
type Bool = Option[Unit]

// cell is the storage shared by every copy of a Result. slot points at a T
// when tag is tagOk and at an E when tag is tagErr; a nil slot is the emptied
// state left behind after extraction.
type cell struct {
	tag      uint
	slot     unsafe.Pointer
	borrowed bool
}

// Result holds either an Ok value of type T or an Err value of type E.
//
// A Result is a handle: copies share the payload, and consuming any copy
// consumes them all. The zero Result is an emptied shell.
type Result[T, E any] struct {
	c *cell
}

// Ok returns a Result holding v on the Ok side.
func Ok[T, E any](v T) Result[T, E] {
	p := new(T)
	*p = v
	return Result[T, E]{c: &cell{tag: tagOk, slot: unsafe.Pointer(p)}}
}

// Err returns a Result holding e on the Err side.
func Err[T, E any](e E) Result[T, E] {
	p := new(E)
	*p = e
	return Result[T, E]{c: &cell{tag: tagErr, slot: unsafe.Pointer(p)}}
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Ok[T, Unit](v)
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Err[T, Unit](Unit{})
}

// vacate swaps the storage for the emptied placeholder and hands back what
// was there. It is the only place a payload leaves a cell.
func (r Result[T, E]) vacate() (uint, unsafe.Pointer) {
	if r.c == nil || r.c.slot == nil {
		panic(ErrSpent)
	}
	tag, slot := r.c.tag, r.c.slot
	r.c.slot = nil
	return tag, slot
}

func (r Result[T, E]) peek() *cell {
	if r.c == nil || r.c.slot == nil {
		panic(ErrSpent)
	}
	return r.c
}

// Spent reports whether the payload has already been moved out.
func (r Result[T, E]) Spent() bool {
	return r.c == nil || r.c.slot == nil
}

// AsRef borrows the payload of r. The returned Result carries the same
// discriminant and a pointer to the live T or E; it is valid while r is not
// consumed, and dropping it never destroys the referent.
func AsRef[T, E any](r Result[T, E]) Result[*T, *E] {
	c := r.peek()
	// *T and *E are both one pointer wide, so a single word holds either.
	ref := new(unsafe.Pointer)
	*ref = c.slot
	return Result[*T, *E]{c: &cell{tag: c.tag, slot: unsafe.Pointer(ref), borrowed: true}}
}

// AsMut is AsRef for callers that intend to write through the pointers.
func AsMut[T, E any](r Result[T, E]) Result[*T, *E] {
	return AsRef(r)
}

// IsOk returns a Bool with r's discriminant. r is not consumed.
func (r Result[T, E]) IsOk() Result[Unit, Unit] {
	return truncate(legal(r.peek().tag))
}

// IsErr is Not(r.IsOk()).
func (r Result[T, E]) IsErr() Result[Unit, Unit] {
	return Not(r.IsOk())
}
