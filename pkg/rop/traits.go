package rop

import (
	"cmp"
	"fmt"
	"hash/maphash"
)

// String formats r as Ok(v) or Err(e) without consuming it.
func (r Result[T, E]) String() string {
	if r.Spent() {
		return "Spent"
	}
	return inspect(r.c,
		func(e *E) string { return fmt.Sprintf("Err(%v)", *e) },
		func(v *T) string { return fmt.Sprintf("Ok(%v)", *v) },
	)
}

// Equal reports whether a and b hold the same variant with equal payloads.
// Neither is consumed.
func Equal[T, E comparable](a, b Result[T, E]) bool {
	return EqualFunc(a, b,
		func(x, y T) bool { return x == y },
		func(x, y E) bool { return x == y },
	)
}

// EqualFunc is Equal with caller-supplied payload comparisons.
func EqualFunc[T, E any](a, b Result[T, E], eqOk func(T, T) bool, eqErr func(E, E) bool) bool {
	return ExtractWith(AsRef(a),
		func(x *E) bool {
			return ExtractWith(AsRef(b),
				func(y *E) bool { return eqErr(*x, *y) },
				func(*T) bool { return false },
			)
		},
		func(x *T) bool {
			return ExtractWith(AsRef(b),
				func(*E) bool { return false },
				func(y *T) bool { return eqOk(*x, *y) },
			)
		},
	)
}

// Compare orders every Ok value before every Err value and compares payloads
// of the same variant. It returns -1, 0 or +1.
func Compare[T, E cmp.Ordered](a, b Result[T, E]) int {
	return CompareFunc(a, b, cmp.Compare[T], cmp.Compare[E])
}

func CompareFunc[T, E any](a, b Result[T, E], cmpOk func(T, T) int, cmpErr func(E, E) int) int {
	return ExtractWith(AsRef(a),
		func(x *E) int {
			return ExtractWith(AsRef(b),
				func(y *E) int { return cmpErr(*x, *y) },
				func(*T) int { return +1 },
			)
		},
		func(x *T) int {
			return ExtractWith(AsRef(b),
				func(*E) int { return -1 },
				func(y *T) int { return cmpOk(*x, *y) },
			)
		},
	)
}

type variant[V comparable] struct {
	ok bool
	v  V
}

// Hash returns a seeded hash of r's variant and payload. Equal results hash
// equally under the same seed. r is not consumed.
func Hash[T, E comparable](seed maphash.Seed, r Result[T, E]) uint64 {
	return ExtractWith(AsRef(r),
		func(e *E) uint64 { return maphash.Comparable(seed, variant[E]{false, *e}) },
		func(v *T) uint64 { return maphash.Comparable(seed, variant[T]{true, *v}) },
	)
}
