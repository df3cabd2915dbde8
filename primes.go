// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package eviltwin

import "math/bits"

const (
	// NumPrimes is the number of primes in the table
	NumPrimes = 15

	// allPrimesMask has one bit set per table index
	allPrimesMask = (1 << NumPrimes) - 1

	// maxProduct is the product of every table prime, the largest value
	// any share can take
	maxProduct = uint64(614889782588491410)
)

// primes is the shared table. Index i is bit i of every prime mask.
var primes = [NumPrimes]uint64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47,
}

// Primes returns a copy of the prime table in table order
func Primes() [NumPrimes]uint64 {
	return primes
}

// primeIndex returns the table index of p, or -1
func primeIndex(p uint64) int {
	for i, q := range primes {
		if q == p {
			return i
		}
	}
	return -1
}

// popcount returns the number of primes in a mask
func popcount(mask uint16) int {
	return bits.OnesCount16(mask)
}

// factorMask returns the mask of table primes dividing x. ok is false when x is
// zero, has a repeated factor, or has a factor outside the table.
func factorMask(x uint64) (mask uint16, ok bool) {
	if x == 0 {
		return 0, false
	}
	for i, p := range primes {
		if x%p != 0 {
			continue
		}
		x /= p
		if x%p == 0 {
			return 0, false
		}
		mask |= 1 << i
	}
	return mask, x == 1
}
