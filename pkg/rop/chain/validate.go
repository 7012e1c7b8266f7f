package chain

import (
	"errors"

	"github.com/ib-77/hardrop/pkg/rop"
	"github.com/ib-77/hardrop/pkg/rop/solo"
)

// Validate fails the chain with errMsg when validate rejects the Ok value
func Validate[T any](c *Chain[T, error], validate func(in T) (isValid bool, errMsg string)) *Chain[T, error] {
	return Then(c, func(v T) rop.Result[T, error] {
		if isValid, errMsg := validate(v); !isValid {
			return solo.FromPair(v, errors.New(errMsg))
		}
		return rop.Ok[T, error](v)
	})
}

// ValidateAll runs validators in order against the Ok value and joins the
// errors they return. With breakOnError it stops at the first one.
func ValidateAll[T any](c *Chain[T, error], breakOnError bool, validators ...func(in T) error) *Chain[T, error] {
	return Then(c, func(v T) rop.Result[T, error] {
		var errs []error
		for _, validate := range validators {
			if err := validate(v); err != nil {
				errs = append(errs, err)
				if breakOnError {
					break
				}
			}
		}
		return solo.FromPair(v, errors.Join(errs...))
	})
}
