package solo

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/hardrop/pkg/rop"
)

type probe struct {
	drops *int
}

func (p probe) Drop() {
	*p.drops++
}

func TestMap_OnlyLiveSide(t *testing.T) {
	t.Parallel()

	called := false
	double := func(v int) int { called = true; return v * 2 }

	assert.Equal(t, 10, Map(rop.Ok[int, string](5), double).Unwrap())
	assert.True(t, called)

	called = false
	assert.Equal(t, "boom", Map(rop.Err[int]("boom"), double).UnwrapErr())
	assert.False(t, called, "Map must not touch an Err value")
}

func TestMapErr_OnlyLiveSide(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 4, MapErr(rop.Err[int]("four"), func(e string) int { return len(e) }).UnwrapErr())
	assert.Equal(t, 7, MapErr(rop.Ok[int, string](7), func(e string) int { panic("unreachable") }).Unwrap())
}

func TestMapOr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "3", MapOr(rop.Ok[int, string](3), "none", strconv.Itoa))
	assert.Equal(t, "none", MapOr(rop.Err[int]("x"), "none", strconv.Itoa))
	assert.Equal(t, "e:x", MapOrElse(rop.Err[int]("x"), func(e string) string { return "e:" + e }, strconv.Itoa))
}

func TestAndThen_ShortCircuits(t *testing.T) {
	t.Parallel()

	parse := func(s string) rop.Result[int, error] { return FromPair(strconv.Atoi(s)) }

	assert.Equal(t, 12, AndThen(rop.Ok[string, error]("12"), parse).Unwrap())

	first := errors.New("first")
	called := false
	out := AndThen(rop.Err[string](first), func(s string) rop.Result[int, error] {
		called = true
		return parse(s)
	})
	assert.ErrorIs(t, out.UnwrapErr(), first)
	assert.False(t, called)
}

func TestOrElse(t *testing.T) {
	t.Parallel()

	fallback := func(e string) rop.Result[int, int] { return rop.Ok[int, int](len(e)) }
	assert.Equal(t, 3, OrElse(rop.Err[int]("abc"), fallback).Unwrap())
	assert.Equal(t, 9, OrElse(rop.Ok[int, string](9), fallback).Unwrap())
}

func TestAndOr_DropTheLoser(t *testing.T) {
	t.Parallel()

	n := new(int)
	p := probe{drops: n}

	assert.Equal(t, "e", And(rop.Err[int]("e"), rop.Ok[probe, string](p)).UnwrapErr())
	assert.Equal(t, 1, *n)

	assert.Equal(t, 2, And(rop.Ok[probe, string](p), rop.Ok[int, string](2)).Unwrap())
	assert.Equal(t, 2, *n)

	assert.Equal(t, 1, Or(rop.Ok[int, string](1), rop.Err[int](p)).Unwrap())
	assert.Equal(t, 3, *n)

	assert.Equal(t, 5, Or(rop.Err[int](p), rop.Ok[int, string](5)).Unwrap())
	assert.Equal(t, 4, *n)
}

func TestDropAfterMap(t *testing.T) {
	t.Parallel()

	n := new(int)
	r := rop.Ok[probe, string](probe{drops: n})
	defer r.Drop()

	m := Map(r, func(p probe) probe { return p })
	assert.Equal(t, 0, *n)
	r.Drop()
	assert.Equal(t, 0, *n, "the source was consumed by Map")
	m.Drop()
	assert.Equal(t, 1, *n)
}

func TestInspect(t *testing.T) {
	t.Parallel()

	seen := ""
	r := Inspect(rop.Ok[string, int]("v"), func(s *string) { seen = *s })
	assert.Equal(t, "v", seen)
	assert.Equal(t, "v", r.Unwrap())

	e := InspectErr(rop.Err[string](3), func(n *int) { *n++ })
	assert.Equal(t, 4, e.UnwrapErr())

	Inspect(rop.Err[string](1), func(*string) { t.Fatal("must not inspect an Err") }).Drop()
}

type labelled struct {
	name   string
	clones *int
}

func (l labelled) Clone() labelled {
	*l.clones++
	return labelled{name: l.name + "'", clones: l.clones}
}

func TestCopiedCloned(t *testing.T) {
	t.Parallel()

	r := rop.Ok[int, string](8)
	c := Copied(rop.AsRef(r))
	*rop.AsMut(r).Unwrap() = 9
	assert.Equal(t, 8, c.Unwrap(), "Copied must detach from the source")
	assert.Equal(t, 9, r.Unwrap())

	clones := new(int)
	l := rop.Ok[labelled, string](labelled{name: "a", clones: clones})
	assert.Equal(t, "a'", Cloned(rop.AsRef(l)).Unwrap().name)
	assert.Equal(t, 1, *clones)
	assert.Equal(t, "a", l.Unwrap().name)
}
