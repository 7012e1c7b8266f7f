package rop

import "errors"

var (
	// ErrUnwrapOnErr is wrapped by the panic of Unwrap and Expect on an Err value.
	ErrUnwrapOnErr = errors.New("rop: unwrap on Err")
	// ErrUnwrapErrOnOk is wrapped by the panic of UnwrapErr and ExpectErr on an Ok value.
	ErrUnwrapErrOnOk = errors.New("rop: unwrap_err on Ok")
	// ErrSpent is the panic value when a payload is read from a Result that was
	// already consumed.
	ErrSpent = errors.New("rop: result already consumed")
	// ErrCorrupted describes a discriminant that is neither Ok nor Err. It is
	// logged at fatal level and never returned.
	ErrCorrupted = errors.New("rop: corrupted discriminant")
)
