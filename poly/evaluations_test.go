// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package poly_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/consensys/gnark-algebra/debug"
	domain "github.com/consensys/gnark-algebra/domain/bn254"
	field "github.com/consensys/gnark-algebra/field/bn254"
	"github.com/consensys/gnark-algebra/poly"
)

type evals = poly.Evaluations[field.Element, *domain.Domain]

func randomValues(tb testing.TB, n int) []field.Element {
	tb.Helper()
	values := make([]field.Element, n)
	for i := range values {
		var err error
		values[i], err = values[i].SetRandom()
		require.NoError(tb, err)
	}
	return values
}

func fromUint64(d *domain.Domain, vs []uint64) *evals {
	values := make([]field.Element, len(vs))
	for i, v := range vs {
		values[i] = field.NewElement(v)
	}
	return poly.NewEvaluations(values, d)
}

func TestInterpolateRoundTrip(t *testing.T) {
	assert := require.New(t)

	const size = 64
	d := domain.New(size)

	coeffs := poly.Polynomial[field.Element](randomValues(t, size))
	values := d.FFT(coeffs)

	// the borrowing variant must leave the receiver usable
	e := poly.NewEvaluations(values, d)
	got := e.Interpolate()
	assert.Empty(cmp.Diff(coeffs, got))
	assert.Len(e.Values, size)

	// the consuming variant reuses the buffer and invalidates the receiver
	consumed := e.Clone()
	gotInPlace := consumed.InterpolateInPlace()
	assert.Empty(cmp.Diff(coeffs, gotInPlace))
	assert.Nil(consumed.Values)
}

func TestInterpolateMatchesHorner(t *testing.T) {
	assert := require.New(t)

	const size = 16
	d := domain.New(size)

	e := poly.NewEvaluations(randomValues(t, size), d)
	p := e.Interpolate()

	x := field.NewElement(1)
	for i := 0; i < size; i++ {
		assert.True(p.Eval(x).Equal(e.At(i)), "point %d", i)
		x = x.Mul(d.Generator())
	}
}

func TestInterpolateInPlaceConsumesReceiver(t *testing.T) {
	assert := require.New(t)

	d := domain.New(8)
	consumed := fromUint64(d, []uint64{1, 2, 3, 4, 5, 6, 7, 8})
	other := fromUint64(d, []uint64{8, 7, 6, 5, 4, 3, 2, 1})

	coeffs := consumed.InterpolateInPlace()
	assert.Len(coeffs, d.Size())
	assert.Nil(consumed.Values)

	// indexing and interpolating a consumed receiver panic in every build
	assert.Panics(func() { consumed.At(0) })
	assert.Panics(func() { consumed.Interpolate() })
	assert.Panics(func() { consumed.InterpolateInPlace() })

	// ring operations reject a consumed operand only under the debug build
	// tag; a release build degrades to an empty result
	var z evals
	if debug.Debug {
		assert.PanicsWithValue("poly: evaluation count does not match domain size",
			func() { z.Add(consumed, other) })
	} else {
		assert.Empty(z.Add(consumed, other).Values)
	}
}

func TestZeroConstruction(t *testing.T) {
	assert := require.New(t)

	d := domain.New(8)
	z := poly.Zero[field.Element](d)

	assert.Equal(d.Size(), len(z.Values))
	assert.True(d.Equal(z.Domain()))
	for i := range z.Values {
		assert.True(z.At(i).IsZero())
	}

	// additive identity
	a := fromUint64(d, []uint64{1, 2, 3, 4, 5, 6, 7, 8})
	var sum evals
	assert.True(sum.Add(a, z).Equal(a))
}

func TestRingProperties(t *testing.T) {
	const size = 16
	d := domain.New(size)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	genVec := gen.SliceOfN(size, gen.UInt64())
	// entries forced odd so divisors are nowhere zero
	genUnit := gen.SliceOfN(size, gen.UInt64().Map(func(v uint64) uint64 { return v | 1 }))

	properties.Property("addition commutes and multiplication commutes", prop.ForAll(
		func(av, bv []uint64) bool {
			a, b := fromUint64(d, av), fromUint64(d, bv)
			var x, y evals
			return x.Add(a, b).Equal(y.Add(b, a)) && x.Mul(a, b).Equal(y.Mul(b, a))
		},
		genVec, genVec,
	))

	properties.Property("addition associates and multiplication associates", prop.ForAll(
		func(av, bv, cv []uint64) bool {
			a, b, c := fromUint64(d, av), fromUint64(d, bv), fromUint64(d, cv)
			var ab, left, bc, right evals
			left.Add(ab.Add(a, b), c)
			right.Add(a, bc.Add(b, c))
			if !left.Equal(&right) {
				return false
			}
			left.Mul(ab.Mul(a, b), c)
			right.Mul(a, bc.Mul(b, c))
			return left.Equal(&right)
		},
		genVec, genVec, genVec,
	))

	properties.Property("multiplication distributes over addition", prop.ForAll(
		func(av, bv, cv []uint64) bool {
			a, b, c := fromUint64(d, av), fromUint64(d, bv), fromUint64(d, cv)
			var sum, lhs, p1, p2, rhs evals
			lhs.Mul(a, sum.Add(b, c))
			rhs.Add(p1.Mul(a, b), p2.Mul(a, c))
			return lhs.Equal(&rhs)
		},
		genVec, genVec, genVec,
	))

	properties.Property("a-a is zero and a+b-b is a", prop.ForAll(
		func(av, bv []uint64) bool {
			a, b := fromUint64(d, av), fromUint64(d, bv)
			var diff, sum evals
			if !diff.Sub(a, a).Equal(poly.Zero[field.Element](d)) {
				return false
			}
			sum.Add(a, b)
			return diff.Sub(&sum, b).Equal(a)
		},
		genVec, genVec,
	))

	properties.Property("(a/b)*b is a for nowhere-zero b", prop.ForAll(
		func(av, bv []uint64) bool {
			a, b := fromUint64(d, av), fromUint64(d, bv)
			var q, back evals
			q.Div(a, b)
			return back.Mul(&q, b).Equal(a)
		},
		genVec, genUnit,
	))

	properties.Property("scalar multiplication matches entrywise product", prop.ForAll(
		func(av []uint64, s uint64) bool {
			a := fromUint64(d, av)
			v := field.NewElement(s)

			constant := make([]uint64, size)
			for i := range constant {
				constant[i] = s
			}
			var scaled, prod evals
			return scaled.ScalarMul(a, v).Equal(prod.Mul(a, fromUint64(d, constant)))
		},
		genVec, gen.UInt64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestDivZeroEntries(t *testing.T) {
	assert := require.New(t)

	d := domain.New(8)
	a := fromUint64(d, []uint64{9, 8, 7, 6, 5, 4, 3, 2})
	b := fromUint64(d, []uint64{1, 0, 3, 0, 5, 6, 7, 8})

	var q evals
	q.Div(a, b)

	for i := 0; i < d.Size(); i++ {
		if b.At(i).IsZero() {
			// zero divisor entries pass through as zero, the batch inversion
			// convention
			assert.True(q.At(i).IsZero(), "entry %d", i)
			continue
		}
		assert.True(q.At(i).Mul(b.At(i)).Equal(a.At(i)), "entry %d", i)
	}

	// the divisor may alias the destination: its values are fully read by the
	// batch inversion before the quotient overwrites them
	bCopy := b.Clone()
	b.Div(a, b)
	for i := 0; i < d.Size(); i++ {
		if bCopy.At(i).IsZero() {
			assert.True(b.At(i).IsZero(), "entry %d", i)
			continue
		}
		assert.True(b.At(i).Mul(bCopy.At(i)).Equal(a.At(i)), "entry %d", i)
	}
}

func TestDomainMismatchPanics(t *testing.T) {
	a := fromUint64(domain.New(8), []uint64{1, 2, 3, 4, 5, 6, 7, 8})
	b := fromUint64(domain.New(16), make([]uint64, 16))

	var z evals
	for name, op := range map[string]func(){
		"add": func() { z.Add(a, b) },
		"sub": func() { z.Sub(a, b) },
		"mul": func() { z.Mul(a, b) },
		"div": func() { z.Div(a, b) },
	} {
		require.PanicsWithValue(t, "poly: domains are unequal", op, "op %s", name)
	}
}

func TestAtBounds(t *testing.T) {
	assert := require.New(t)

	d := domain.New(4)
	e := fromUint64(d, []uint64{1, 2, 3, 4})

	assert.True(e.At(0).Equal(field.NewElement(1)))
	assert.True(e.At(3).Equal(field.NewElement(4)))
	assert.Panics(func() { e.At(4) })
	assert.Panics(func() { e.At(-1) })
}

func TestParallelEquivalence(t *testing.T) {
	assert := require.New(t)

	const size = 256
	d := domain.New(size)
	a := poly.NewEvaluations(randomValues(t, size), d)
	b := poly.NewEvaluations(randomValues(t, size), d)

	type op func(z, x, y *evals, opts ...poly.Option) *evals
	ops := map[string]op{
		"add": func(z, x, y *evals, opts ...poly.Option) *evals { return z.Add(x, y, opts...) },
		"sub": func(z, x, y *evals, opts ...poly.Option) *evals { return z.Sub(x, y, opts...) },
		"mul": func(z, x, y *evals, opts ...poly.Option) *evals { return z.Mul(x, y, opts...) },
		"div": func(z, x, y *evals, opts ...poly.Option) *evals { return z.Div(x, y, opts...) },
	}

	for name, apply := range ops {
		var sequential, parallel, dflt, clamped evals
		apply(&sequential, a, b, poly.WithNbTasks(1))
		apply(&parallel, a, b, poly.WithNbTasks(7))
		apply(&dflt, a, b)
		// out-of-range task counts clamp, they do not change results
		apply(&clamped, a, b, poly.WithNbTasks(100000))

		assert.True(sequential.Equal(&parallel), "op %s", name)
		assert.True(sequential.Equal(&dflt), "op %s", name)
		assert.True(sequential.Equal(&clamped), "op %s", name)
	}

	var one, many evals
	v := field.NewElement(42)
	one.ScalarMul(a, v, poly.WithNbTasks(1))
	many.ScalarMul(a, v, poly.WithNbTasks(5))
	assert.True(one.Equal(&many))
}

func TestAliasedDestination(t *testing.T) {
	assert := require.New(t)

	d := domain.New(8)
	av := []uint64{1, 2, 3, 4, 5, 6, 7, 8}
	bv := []uint64{8, 7, 6, 5, 4, 3, 2, 1}

	var want evals
	want.Add(fromUint64(d, av), fromUint64(d, bv))

	// z aliases the first operand
	a := fromUint64(d, av)
	assert.True(a.Add(a, fromUint64(d, bv)).Equal(&want))

	// z aliases the second operand
	b := fromUint64(d, bv)
	assert.True(b.Add(fromUint64(d, av), b).Equal(&want))
}

func TestCloneAndEqual(t *testing.T) {
	assert := require.New(t)

	d := domain.New(4)
	a := fromUint64(d, []uint64{1, 2, 3, 4})

	c := a.Clone()
	assert.True(a.Equal(c))

	c.Values[0] = field.NewElement(99)
	assert.False(a.Equal(c))
	assert.True(a.At(0).Equal(field.NewElement(1)))

	// equal values over unequal domains never compare equal
	other := fromUint64(domain.New(8), []uint64{1, 2, 3, 4, 0, 0, 0, 0})
	assert.False(a.Equal(other))
}
