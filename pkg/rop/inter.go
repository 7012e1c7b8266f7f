package rop

// Dropper is implemented by payloads that own something to release. Drop is
// called at most once per payload by Result.Drop and by combinators that
// throw a payload away.
type Dropper interface {
	Drop()
}

// Cloner lets a payload control how Result.Clone duplicates it. Payloads that
// are not Cloners are copied by assignment.
type Cloner[T any] interface {
	Clone() T
}
