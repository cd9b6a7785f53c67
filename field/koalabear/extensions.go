// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package koalabear

import (
	fr "github.com/consensys/gnark-crypto/field/koalabear"
	"github.com/consensys/gnark-crypto/field/koalabear/extensions"

	"github.com/consensys/gnark-algebra/tower"
)

// E2 is an element of the quadratic extension of the koalabear field,
// z = A0 + A1*u. It is a tower.Extension over Element.
type E2 extensions.E2

// E4 is an element of the quadratic extension of E2, z = B0 + B1*v, making a
// two-level tower over the base field. It is a tower.Extension over E2.
type E4 extensions.E4

var (
	_ tower.Extension = E2{}
	_ tower.Extension = E4{}
)

// NewE2 returns the extension element a0 + a1*u.
func NewE2(a0, a1 Element) E2 {
	return E2{A0: fr.Element(a0), A1: fr.Element(a1)}
}

// NewE4 returns the extension element b0 + b1*v.
func NewE4(b0, b1 E2) E4 {
	return E4{B0: extensions.E2(b0), B1: extensions.E2(b1)}
}

// IsZero reports whether z is the additive identity.
func (z E2) IsZero() bool {
	return (*extensions.E2)(&z).IsZero()
}

// Coefficients returns the coordinates of z over the base field, lowest
// degree first.
func (z E2) Coefficients() []tower.Element {
	return []tower.Element{Element(z.A0), Element(z.A1)}
}

// Neg returns -z.
func (z E2) Neg() E2 {
	var r, zero extensions.E2
	r.Sub(&zero, (*extensions.E2)(&z))
	return E2(r)
}

// Equal reports whether z == y.
func (z E2) Equal(y E2) bool {
	return z.A0.Equal(&y.A0) && z.A1.Equal(&y.A1)
}

// String returns z as a polynomial in u with decimal coefficients.
func (z E2) String() string {
	return Element(z.A0).String() + "+" + Element(z.A1).String() + "*u"
}

// IsZero reports whether z is the additive identity.
func (z E4) IsZero() bool {
	return (*extensions.E4)(&z).IsZero()
}

// Coefficients returns the coordinates of z over E2, lowest degree first.
func (z E4) Coefficients() []tower.Element {
	return []tower.Element{E2(z.B0), E2(z.B1)}
}

// Neg returns -z.
func (z E4) Neg() E4 {
	var r, zero extensions.E4
	r.Sub(&zero, (*extensions.E4)(&z))
	return E4(r)
}

// Equal reports whether z == y.
func (z E4) Equal(y E4) bool {
	return E2(z.B0).Equal(E2(y.B0)) && E2(z.B1).Equal(E2(y.B1))
}

// String returns z as a polynomial in v with E2 coefficients.
func (z E4) String() string {
	return "(" + E2(z.B0).String() + ")+(" + E2(z.B1).String() + ")*v"
}
