// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package algebra provides field-agnostic algebraic primitives shared by
// Consensys proof systems: polynomials in evaluation (Lagrange) form over
// FFT-friendly domains, and a canonical sign bit for elements of finite field
// towers.
//
// The generic packages (poly, field, tower) carry no curve-specific code.
// They are bound to concrete gnark-crypto fields by thin adapter packages
// under field/ and domain/, generated for the scalar fields of:
//   - BN254
//   - BLS12-377
//   - BLS12-381
//
// plus a hand-written koalabear adapter exposing its extension tower.
package algebra

import (
	"github.com/blang/semver/v4"
	"github.com/consensys/gnark-crypto/ecc"
)

var Version = semver.MustParse("0.2.0")

// Curves returns the curves whose scalar fields have generated adapters.
func Curves() []ecc.ID {
	return []ecc.ID{
		ecc.BN254,
		ecc.BLS12_377,
		ecc.BLS12_381,
	}
}
