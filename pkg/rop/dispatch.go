package rop

import "unsafe"

// Continuation table layout. Entries 0 and 3 are never filled: a legal
// discriminant always lands on okSlot or errSlot.
const (
	okSlot  = 1
	errSlot = 2
)

// arm is one sealed continuation. self and tag are written by seal just
// before selection and re-checked right after it.
type arm struct {
	self *arm
	tag  uint
	run  func(unsafe.Pointer)
}

func (a *arm) seal(tag uint) *arm {
	a.self = a
	a.tag = tag
	return a
}

func (a *arm) sealed(tag uint) bool {
	return a != nil && a.self == a && a.tag == tag
}

// ExtractWith consumes r and calls exactly one continuation with the payload:
// onOk for an Ok value, onErr for an Err value. r and every copy of it are
// emptied before the continuation runs.
//
// It panics with ErrSpent if r was already consumed. A discriminant that is
// neither Ok nor Err terminates the process.
func ExtractWith[T, E, U any](r Result[T, E], onErr func(E) U, onOk func(T) U) U {
	tag, slot := r.vacate()

	var out U
	dispatch(tag, slot,
		func(p unsafe.Pointer) { out = onErr(*(*E)(p)) },
		func(p unsafe.Pointer) { out = onOk(*(*T)(p)) },
	)
	return out
}

// inspect is the borrowing counterpart of ExtractWith: the continuation gets
// a pointer into c and c keeps its payload.
func inspect[T, E, U any](c *cell, onErr func(*E) U, onOk func(*T) U) U {
	var out U
	dispatch(c.tag, c.slot,
		func(p unsafe.Pointer) { out = onErr((*E)(p)) },
		func(p unsafe.Pointer) { out = onOk((*T)(p)) },
	)
	return out
}

func dispatch(tag uint, slot unsafe.Pointer, onErr, onOk func(unsafe.Pointer)) {
	thenDo := &arm{run: onOk}
	elseDo := &arm{run: onErr}

	var table [4]*arm
	table[okSlot] = thenDo.seal(tagOk)
	table[errSlot] = elseDo.seal(tagErr)

	maskOk := tag ^ tagOk
	maskErr := tag ^ tagErr
	picked := table[((okSlot&maskErr)^(errSlot&maskOk))&3]

	if !picked.sealed(tag) {
		corrupt(tag)
	}
	picked.run(slot)
}

// legal aborts on a discriminant that is neither Ok nor Err and returns it
// unchanged otherwise. tag^tagOk is all zeros or all ones for a legal tag.
func legal(tag uint) uint {
	if d := tag ^ tagOk; d != 0 && ^d != 0 {
		corrupt(tag)
	}
	return tag
}
