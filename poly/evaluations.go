// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package poly implements polynomials represented by their evaluations over a
// fixed domain (Lagrange basis), generic over the field element type and the
// domain implementation.
//
// In evaluation form, ring operations are entrywise and cost O(n); conversion
// to the monomial basis goes through the domain's inverse transform. The
// representation is tied to its domain: values of different domains never mix,
// and every binary operation enforces that before touching data.
package poly

import (
	"github.com/consensys/gnark-algebra/debug"
	"github.com/consensys/gnark-algebra/field"
	"github.com/consensys/gnark-algebra/internal/parallel"
)

// Evaluations is a polynomial of degree < domain.Size() represented by its
// values over the domain points: Values[i] is the evaluation at the i-th
// point. The domain is set at construction and never reassigned.
//
// Values is exported for direct access in the style of gnark-crypto vectors;
// callers mutating it are bound by the same contract as NewEvaluations.
type Evaluations[F field.Element[F], D Domain[F, D]] struct {
	Values []F

	domain D
}

// Zero returns the zero polynomial over the given domain: one zero value per
// domain point.
func Zero[F field.Element[F], D Domain[F, D]](domain D) *Evaluations[F, D] {
	return &Evaluations[F, D]{
		Values: make([]F, domain.Size()),
		domain: domain,
	}
}

// NewEvaluations wraps values as evaluations over the given domain, taking
// ownership of the slice. It performs no validation: the caller guarantees
// len(values) == domain.Size() and that values[i] is the evaluation at the
// i-th domain point.
func NewEvaluations[F field.Element[F], D Domain[F, D]](values []F, domain D) *Evaluations[F, D] {
	return &Evaluations[F, D]{
		Values: values,
		domain: domain,
	}
}

// Domain returns the evaluation domain.
func (e *Evaluations[F, D]) Domain() D {
	return e.domain
}

// At returns the evaluation at the i-th domain point. It panics if i is out
// of range.
func (e *Evaluations[F, D]) At(i int) F {
	return e.Values[i]
}

// Clone returns a deep copy of e sharing nothing with it but the domain.
func (e *Evaluations[F, D]) Clone() *Evaluations[F, D] {
	values := make([]F, len(e.Values))
	copy(values, e.Values)
	return &Evaluations[F, D]{Values: values, domain: e.domain}
}

// Equal reports whether e and other are evaluations of the same polynomial
// over equal domains.
func (e *Evaluations[F, D]) Equal(other *Evaluations[F, D]) bool {
	if !e.domain.Equal(other.domain) || len(e.Values) != len(other.Values) {
		return false
	}
	for i := range e.Values {
		if !e.Values[i].Equal(other.Values[i]) {
			return false
		}
	}
	return true
}

// Add sets z to the entrywise sum a+b and returns z. z may alias a or b.
// It panics if a and b were built over unequal domains.
func (z *Evaluations[F, D]) Add(a, b *Evaluations[F, D], opts ...Option) *Evaluations[F, D] {
	cfg := options(opts...)
	a.mustShareDomain(b)
	z.prepare(a)
	parallel.Execute(len(a.Values), func(start, end int) {
		for i := start; i < end; i++ {
			z.Values[i] = a.Values[i].Add(b.Values[i])
		}
	}, cfg.nbTasks)
	return z
}

// Sub sets z to the entrywise difference a-b and returns z. z may alias a or
// b. It panics if a and b were built over unequal domains.
func (z *Evaluations[F, D]) Sub(a, b *Evaluations[F, D], opts ...Option) *Evaluations[F, D] {
	cfg := options(opts...)
	a.mustShareDomain(b)
	z.prepare(a)
	parallel.Execute(len(a.Values), func(start, end int) {
		for i := start; i < end; i++ {
			z.Values[i] = a.Values[i].Sub(b.Values[i])
		}
	}, cfg.nbTasks)
	return z
}

// Mul sets z to the entrywise (Hadamard) product a*b and returns z. z may
// alias a or b. It panics if a and b were built over unequal domains.
func (z *Evaluations[F, D]) Mul(a, b *Evaluations[F, D], opts ...Option) *Evaluations[F, D] {
	cfg := options(opts...)
	a.mustShareDomain(b)
	z.prepare(a)
	parallel.Execute(len(a.Values), func(start, end int) {
		for i := start; i < end; i++ {
			z.Values[i] = a.Values[i].Mul(b.Values[i])
		}
	}, cfg.nbTasks)
	return z
}

// Div sets z to the entrywise quotient a/b and returns z. The divisor values
// go through a single batch inversion; entries where b is zero come out zero
// (the field.BatchInvert convention), so exact division requires a nowhere
// zero b. z may alias a or b: the inversion itself never modifies b, and an
// aliasing destination receives the quotient only after every divisor value
// has been read. It panics if a and b were built over unequal domains.
func (z *Evaluations[F, D]) Div(a, b *Evaluations[F, D], opts ...Option) *Evaluations[F, D] {
	cfg := options(opts...)
	a.mustShareDomain(b)
	inv := field.BatchInvert(b.Values)
	z.prepare(a)
	parallel.Execute(len(a.Values), func(start, end int) {
		for i := start; i < end; i++ {
			z.Values[i] = a.Values[i].Mul(inv[i])
		}
	}, cfg.nbTasks)
	return z
}

// ScalarMul sets z to a scaled entrywise by v and returns z. z may alias a.
func (z *Evaluations[F, D]) ScalarMul(a *Evaluations[F, D], v F, opts ...Option) *Evaluations[F, D] {
	cfg := options(opts...)
	a.checkInvariant()
	z.prepare(a)
	parallel.Execute(len(a.Values), func(start, end int) {
		for i := start; i < end; i++ {
			z.Values[i] = a.Values[i].Mul(v)
		}
	}, cfg.nbTasks)
	return z
}

// Interpolate returns the coefficients, in natural order, of the polynomial
// whose evaluations e holds. e is left untouched; the coefficient slice is
// freshly allocated.
func (e *Evaluations[F, D]) Interpolate() Polynomial[F] {
	e.checkInvariant()
	return Polynomial[F](e.domain.FFTInverse(e.Values))
}

// InterpolateInPlace is Interpolate reusing e's buffer for the coefficients.
// It consumes the receiver: e.Values is nil afterwards, so indexing or
// interpolating e panics; the debug build tag extends the check to every
// operation.
func (e *Evaluations[F, D]) InterpolateInPlace() Polynomial[F] {
	e.checkInvariant()
	e.domain.FFTInverseInPlace(e.Values)
	coeffs := e.Values
	e.Values = nil
	return Polynomial[F](coeffs)
}

// mustShareDomain panics unless a and b were built over equal domains. The
// check runs before any value is read, so mismatched operands fail fast even
// when their lengths agree.
func (a *Evaluations[F, D]) mustShareDomain(b *Evaluations[F, D]) {
	if !a.domain.Equal(b.domain) {
		panic("poly: domains are unequal")
	}
	a.checkInvariant()
	b.checkInvariant()
}

// checkInvariant verifies len(Values) == domain.Size() under the debug build
// tag; a mismatch means a broken NewEvaluations contract or a consumed
// receiver.
func (e *Evaluations[F, D]) checkInvariant() {
	if debug.Debug && len(e.Values) != e.domain.Size() {
		panic("poly: evaluation count does not match domain size")
	}
}

// prepare points z at a's domain and sizes its value slice, keeping the
// backing array when z aliases an operand of the right length.
func (z *Evaluations[F, D]) prepare(a *Evaluations[F, D]) {
	z.domain = a.domain
	if len(z.Values) != len(a.Values) {
		z.Values = make([]F, len(a.Values))
	}
}
