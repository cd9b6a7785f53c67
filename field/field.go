// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package field defines the capability a finite field element type must
// provide to be used by the generic algebra packages, along with helpers that
// apply to any such type.
//
// The interface is satisfied by the adapter types under field/ (one package
// per gnark-crypto field); generic code is specialized at compile time, so no
// arithmetic goes through dynamic dispatch.
package field

import "fmt"

// Element captures the operations the algebra packages need from a field
// element type F. Values are immutable: every operation returns a new element
// and leaves its operands untouched.
//
// The zero value of F must be the additive identity. All gnark-crypto element
// types have this property (the Montgomery form of 0 is all-zero limbs), and
// the adapter packages preserve it.
type Element[F any] interface {
	fmt.Stringer

	// SetUint64 returns the field element corresponding to v.
	SetUint64(v uint64) F

	// Add returns the field sum of this element and y.
	Add(y F) F

	// Sub returns the field difference of this element and y.
	Sub(y F) F

	// Mul returns the field product of this element and y.
	Mul(y F) F

	// Inverse returns the multiplicative inverse of this element, or zero if
	// the element is zero.
	Inverse() F

	// IsZero reports whether this element is the additive identity.
	IsZero() bool

	// Equal reports whether this element and y represent the same value.
	Equal(y F) bool
}

// Zero returns the additive identity of F.
func Zero[F Element[F]]() F {
	var zero F
	return zero
}

// One returns the multiplicative identity of F.
func One[F Element[F]]() F {
	var one F
	return one.SetUint64(1)
}
