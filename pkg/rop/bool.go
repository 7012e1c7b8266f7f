package rop

import "unsafe"

var unit Unit

func truncate(tag uint) Bool {
	return Bool{c: &cell{tag: tag, slot: unsafe.Pointer(&unit)}}
}

// True returns the Bool whose discriminant is Ok.
func True() Bool {
	return Some(Unit{})
}

// False returns the Bool whose discriminant is Err.
func False() Bool {
	return None[Unit]()
}

// FromBool converts a Go bool to a Bool.
func FromBool(b bool) Bool {
	if b {
		return True()
	}
	return False()
}

// Truth converts b back to a Go bool, consuming it.
func Truth(b Bool) bool {
	return ExtractWith(b,
		func(Unit) bool { return false },
		func(Unit) bool { return true },
	)
}

// The operators below read discriminants directly: a Bool has no payload to
// move, so they consume their operands without going through ExtractWith.
//
// agree is all ones when a and b hold the same discriminant and all zeros
// when they hold complementary ones.
func agree(a, b uint) uint {
	return ^a ^ b
}

// operand consumes b and returns its discriminant, aborting on an illegal one.
func operand(b Bool) uint {
	tag, _ := b.vacate()
	return legal(tag)
}

// And is true only when both operands are true.
func And(a, b Bool) Bool {
	x, y := operand(a), operand(b)
	m := agree(x, y)
	return truncate(x&m | tagErr&^m)
}

// Or is true when either operand is true.
func Or(a, b Bool) Bool {
	x, y := operand(a), operand(b)
	m := agree(x, y)
	return truncate(x&m | tagOk&^m)
}

// Xor is true when exactly one operand is true.
func Xor(a, b Bool) Bool {
	x, y := operand(a), operand(b)
	m := agree(x, y)
	return truncate(m&tagErr | ^m&tagOk)
}

// Not flips the discriminant of a.
func Not(a Bool) Bool {
	x := operand(a)
	return truncate(^x)
}
