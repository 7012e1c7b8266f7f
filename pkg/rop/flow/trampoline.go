package flow

import "github.com/ib-77/hardrop/pkg/rop"

// step runs one unit of work and returns the step to run next, or nil to
// stop.
type step func() step

// drive is the trampoline: it calls steps until one returns nil.
func drive(s step) {
	for s != nil {
		s = s()
	}
}

// resume selects next when cond is true and the stop step otherwise.
func resume(cond rop.Bool, next step) step {
	return rop.ExtractWith(cond,
		func(rop.Unit) step { return nil },
		func(rop.Unit) step { return next },
	)
}

// While evaluates test before every iteration and runs body while it is
// true.
func While(test func() rop.Bool, body func()) {
	var iterate step
	iterate = func() step {
		body()
		return resume(test(), iterate)
	}
	drive(resume(test(), iterate))
}

// DoWhile runs body at least once and keeps running it while it returns
// true.
func DoWhile(body func() rop.Bool) {
	var iterate step
	iterate = func() step {
		return resume(body(), iterate)
	}
	drive(iterate)
}

// Repeat runs body n times; n <= 0 runs it never.
func Repeat(n int, body func(i int)) {
	i := 0
	While(
		func() rop.Bool { return rop.FromBool(i < n) },
		func() {
			body(i)
			i++
		},
	)
}
