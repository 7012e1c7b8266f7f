package solo

import "github.com/ib-77/hardrop/pkg/rop"

// FromPair lifts a Go (value, error) return into a Result. A nil error gives
// Ok(v); anything else gives Err(err) and v is discarded.
func FromPair[T any](v T, err error) rop.Result[T, error] {
	if err != nil {
		rop.Discard(v)
		return rop.Err[T](err)
	}
	return rop.Ok[T, error](v)
}

// ToPair lowers a Result back into a Go (value, error) return.
func ToPair[T any](r rop.Result[T, error]) (v T, err error) {
	rop.ExtractWith(r,
		func(e error) rop.Unit {
			err = e
			return rop.Unit{}
		},
		func(x T) rop.Unit {
			v = x
			return rop.Unit{}
		},
	)
	return v, err
}
