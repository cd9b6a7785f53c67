// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package koalabear wraps the 31-bit koalabear field and its extension tower
// with the value semantics expected by the generic algebra packages.
//
// Unlike the curve scalar fields, this adapter is hand-written: it also
// exposes the E2 and E4 extensions so that tower.Parity has a real
// multi-level tower to walk.
package koalabear

import (
	"math/big"

	fr "github.com/consensys/gnark-crypto/field/koalabear"

	"github.com/consensys/gnark-algebra/field"
	"github.com/consensys/gnark-algebra/tower"
)

// Element wraps the koalabear base field element with value semantics:
// methods return new elements and never mutate their receiver or arguments.
// The zero value is 0.
type Element fr.Element

var (
	_ field.Element[Element] = Element{}
	_ tower.Prime            = Element{}
)

// NewElement returns the field element corresponding to v.
func NewElement(v uint64) Element {
	var r fr.Element
	r.SetUint64(v)
	return Element(r)
}

// Modulus returns the field modulus as a new big.Int.
func Modulus() *big.Int {
	return fr.Modulus()
}

// SetUint64 returns the field element corresponding to v.
func (z Element) SetUint64(v uint64) Element {
	var r fr.Element
	r.SetUint64(v)
	return Element(r)
}

// SetBigInt returns the field element corresponding to v mod q.
func (z Element) SetBigInt(v *big.Int) Element {
	var r fr.Element
	r.SetBigInt(v)
	return Element(r)
}

// SetRandom returns an element sampled uniformly from crypto/rand.
func (z Element) SetRandom() (Element, error) {
	var r fr.Element
	if _, err := r.SetRandom(); err != nil {
		var zero Element
		return zero, err
	}
	return Element(r), nil
}

// BigInt returns the canonical (least non-negative) representative of z as a
// new big.Int.
func (z Element) BigInt() *big.Int {
	var b big.Int
	return (*fr.Element)(&z).BigInt(&b)
}

// Add returns z+y.
func (z Element) Add(y Element) Element {
	var r fr.Element
	r.Add((*fr.Element)(&z), (*fr.Element)(&y))
	return Element(r)
}

// Sub returns z-y.
func (z Element) Sub(y Element) Element {
	var r fr.Element
	r.Sub((*fr.Element)(&z), (*fr.Element)(&y))
	return Element(r)
}

// Mul returns z*y.
func (z Element) Mul(y Element) Element {
	var r fr.Element
	r.Mul((*fr.Element)(&z), (*fr.Element)(&y))
	return Element(r)
}

// Neg returns -z.
func (z Element) Neg() Element {
	var r fr.Element
	r.Neg((*fr.Element)(&z))
	return Element(r)
}

// Inverse returns 1/z, or 0 if z is 0.
func (z Element) Inverse() Element {
	var r fr.Element
	r.Inverse((*fr.Element)(&z))
	return Element(r)
}

// IsZero reports whether z == 0.
func (z Element) IsZero() bool {
	return (*fr.Element)(&z).IsZero()
}

// IsOne reports whether z == 1.
func (z Element) IsOne() bool {
	return (*fr.Element)(&z).IsOne()
}

// Equal reports whether z == y.
func (z Element) Equal(y Element) bool {
	return (*fr.Element)(&z).Equal((*fr.Element)(&y))
}

// Odd reports whether the canonical representative of z is odd. It is the
// sign bit used by tower.Parity.
func (z Element) Odd() bool {
	var b big.Int
	(*fr.Element)(&z).BigInt(&b)
	return b.Bit(0) == 1
}

// String returns the decimal representation of the canonical representative.
func (z Element) String() string {
	return (*fr.Element)(&z).String()
}
