// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package poly

// Domain is the contract Evaluations requires from an evaluation domain: a
// fixed set of points, exact equality, and an inverse transform mapping
// evaluations over the points to coefficients in the monomial basis.
//
// Domain construction and the transform internals live with the implementer;
// the adapter packages under domain/ provide one per gnark-crypto curve,
// backed by its radix-2 FFT. D is the concrete domain type itself so that
// equality checks never compare across implementations.
type Domain[F any, D any] interface {
	// Size returns the number of evaluation points.
	Size() int

	// Equal reports whether both domains describe exactly the same point set.
	Equal(other D) bool

	// FFTInverse returns the coefficients, in natural order, of the unique
	// polynomial of degree < Size() taking the given values over the domain
	// points. values is left untouched; the result is freshly allocated.
	// len(values) must equal Size().
	FFTInverse(values []F) []F

	// FFTInverseInPlace is FFTInverse transforming values in place, with no
	// allocation proportional to the domain size.
	FFTInverseInPlace(values []F)
}
