// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package field

import "github.com/bits-and-blooms/bitset"

// BatchInvert returns a new slice holding the multiplicative inverses of a,
// computed with the Montgomery batch trick: one field inversion and 3(n-1)
// multiplications instead of n inversions. The input is not modified.
//
// Zero entries are skipped and map to zero in the result, the same convention
// as the per-field BatchInvert of gnark-crypto. Callers that need a different
// zero policy must filter beforehand.
func BatchInvert[F Element[F]](a []F) []F {
	res := make([]F, len(a))
	if len(a) == 0 {
		return res
	}

	zeroes := bitset.New(uint(len(a)))
	accumulator := One[F]()

	for i := 0; i < len(a); i++ {
		if a[i].IsZero() {
			zeroes.Set(uint(i))
			continue
		}
		res[i] = accumulator
		accumulator = accumulator.Mul(a[i])
	}

	accumulator = accumulator.Inverse()

	for i := len(a) - 1; i >= 0; i-- {
		if zeroes.Test(uint(i)) {
			continue
		}
		res[i] = res[i].Mul(accumulator)
		accumulator = accumulator.Mul(a[i])
	}

	return res
}
