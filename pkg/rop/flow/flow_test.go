package flow

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/hardrop/pkg/rop"
)

func TestIfElse(t *testing.T) {
	t.Parallel()

	var thenCalls, elseCalls int
	pick := func(b bool) string {
		return IfElse(rop.FromBool(b),
			func() string { thenCalls++; return "then" },
			func() string { elseCalls++; return "else" },
		)
	}

	assert.Equal(t, "then", pick(true))
	assert.Equal(t, "else", pick(false))
	assert.Equal(t, 1, thenCalls)
	assert.Equal(t, 1, elseCalls)
}

func TestIfElseChain(t *testing.T) {
	t.Parallel()

	some := rop.Ok[string, int]("x").Ok()
	got := If(some.IsOk(), func() string { return "It is a some!" }).
		Else(func() string { return "It is none!" })
	assert.Equal(t, "It is a some!", got)

	got = If(rop.False(), func() string { return "then" }).
		Else(func() string { return "else" })
	assert.Equal(t, "else", got)

	ran := false
	If(rop.True(), func() rop.Unit { ran = true; return rop.Unit{} }).Done()
	assert.True(t, ran)
}

func TestThen(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, Then(rop.True(), func() int { return 3 }).Unwrap())
	assert.True(t, rop.Truth(Then(rop.False(), func() int { panic("unreachable") }).IsErr()))
	assert.Equal(t, "v", ThenSome(rop.True(), "v").Unwrap())
	assert.True(t, rop.Truth(ThenSome(rop.False(), "v").IsErr()))
}

func TestWhile_Countdown(t *testing.T) {
	t.Parallel()

	x := 10
	var seen []int
	While(func() rop.Bool { return rop.FromBool(x > 0) }, func() {
		seen = append(seen, x)
		x--
	})

	assert.Equal(t, 0, x)
	assert.Equal(t, []int{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}, seen)
}

func TestWhile_FalseFromStart(t *testing.T) {
	t.Parallel()

	tests := 0
	While(func() rop.Bool { tests++; return rop.False() }, func() { t.Fatal("body must not run") })
	assert.Equal(t, 1, tests)
}

// stackDepth reports how many frames are on the current goroutine's stack.
func stackDepth() int {
	pcs := make([]uintptr, 1024)
	return runtime.Callers(0, pcs)
}

func TestWhile_MillionIterationsConstantStack(t *testing.T) {
	const n = 1_000_000

	x := n
	body := 0
	base := stackDepth()
	deepest := 0
	While(func() rop.Bool { return rop.FromBool(x > 0) }, func() {
		body++
		x--
		if x%100_000 == 0 {
			deepest = max(deepest, stackDepth())
		}
	})

	assert.Equal(t, n, body)
	assert.Equal(t, 0, x)
	assert.Less(t, deepest-base, 16, "stack must not grow with the iteration count")
}

func TestDoWhile(t *testing.T) {
	t.Parallel()

	runs := 0
	DoWhile(func() rop.Bool {
		runs++
		return rop.FromBool(runs < 5)
	})
	assert.Equal(t, 5, runs)

	once := 0
	DoWhile(func() rop.Bool { once++; return rop.False() })
	assert.Equal(t, 1, once)
}

func TestRepeat(t *testing.T) {
	t.Parallel()

	var got []int
	Repeat(4, func(i int) { got = append(got, i) })
	assert.Equal(t, []int{0, 1, 2, 3}, got)

	Repeat(0, func(int) { t.Fatal("must not run") })
	Repeat(-3, func(int) { t.Fatal("must not run") })
}
