// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package poly

import "github.com/consensys/gnark-algebra/field"

// Polynomial is a polynomial in the monomial basis, coefficients ordered from
// the lowest degree: p(x) = p[0] + p[1]x + ... + p[len(p)-1]x^(len(p)-1).
// It is what interpolation produces; coefficient-form arithmetic beyond
// evaluation is out of scope for this package.
type Polynomial[F field.Element[F]] []F

// Eval returns p(x), evaluated with Horner's method.
func (p Polynomial[F]) Eval(x F) F {
	if len(p) == 0 {
		return field.Zero[F]()
	}
	res := p[len(p)-1]
	for i := len(p) - 2; i >= 0; i-- {
		res = res.Mul(x).Add(p[i])
	}
	return res
}

// Degree returns the degree of p, ignoring trailing zero coefficients; the
// zero polynomial has degree -1.
func (p Polynomial[F]) Degree() int {
	for i := len(p) - 1; i >= 0; i-- {
		if !p[i].IsZero() {
			return i
		}
	}
	return -1
}

// Clone returns a copy of p with its own backing array.
func (p Polynomial[F]) Clone() Polynomial[F] {
	q := make(Polynomial[F], len(p))
	copy(q, p)
	return q
}

// Equal reports whether p and q hold the same coefficient sequence; it does
// not normalize trailing zeros.
func (p Polynomial[F]) Equal(q Polynomial[F]) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if !p[i].Equal(q[i]) {
			return false
		}
	}
	return true
}

// SetZero zeroes every coefficient in place.
func (p Polynomial[F]) SetZero() {
	for i := range p {
		var zero F
		p[i] = zero
	}
}
