// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package tower assigns a canonical sign bit to elements of finite field
// towers.
//
// A field has no intrinsic order, but protocols such as point compression and
// hash-to-curve need a deterministic way to pick one of {x, -x}. The
// convention implemented here follows RFC 9380's sgn0: a prime field element
// is "odd" when its least non-negative integer representative is odd, and an
// extension element takes the parity of its first non-zero coefficient over
// the immediate subfield, scanning from the lowest degree.
package tower

// Element is a node in a tower of finite field extensions. Every concrete
// element type must additionally implement Prime or Extension so that Parity
// can walk the tower.
type Element interface {
	// IsZero reports whether the element is the additive identity.
	IsZero() bool
}

// Prime is an element of a prime field, the base of every tower.
type Prime interface {
	Element

	// Odd reports the lowest bit of the canonical (least non-negative,
	// non-Montgomery) integer representative of the element.
	Odd() bool
}

// Extension is an element of a degree-k extension of a subfield.
type Extension interface {
	Element

	// Coefficients returns the coordinates of the element over the immediate
	// subfield, ordered from the lowest degree coefficient to the highest.
	// The returned elements belong to the level directly below, which is
	// itself a Prime or an Extension.
	Coefficients() []Element
}

// Parity returns the canonical sign bit of e.
//
// For a prime field element it is the parity of the least non-negative
// integer representative; zero is even. For an extension element it is the
// parity of the first non-zero coefficient over the immediate subfield,
// scanning from the lowest degree; the zero element has parity false at every
// level. Two elements of the same field always have Parity(x) != Parity(-x)
// unless x == -x.
//
// Parity is total over well-formed towers. It panics only when an element
// implements neither Prime nor Extension, which is a broken adapter rather
// than a value-dependent failure.
func Parity(e Element) bool {
	switch a := e.(type) {
	case Extension:
		for _, c := range a.Coefficients() {
			if !c.IsZero() {
				return Parity(c)
			}
		}
		return false
	case Prime:
		return a.Odd()
	default:
		panic("tower: element implements neither Prime nor Extension")
	}
}
