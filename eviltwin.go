// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package eviltwin splits a byte into two 64-bit shares ("twins") using
// products of small primes.
//
// Eight of the first fifteen primes are picked at random to carry the eight
// message bits. A set bit puts its prime into both shares, a clear bit keeps it
// out of both. The other seven primes are decoys: three are multiplied into one
// share and four into the other. Combining the shares is a divisibility test:
//
//	A: 2*3*5, B: 3*5*7
//	3*5 divides both, so it belongs to the message.
//	2 and 7 divide only one share each, so they are decoys.
//
// Holding a single share forces a search over every way the decoys could have
// been placed. The scheme is not a cryptographically secure primitive: the
// table is fixed and tiny, and the search is cheap on modern hardware.
package eviltwin

// Constants
const (
	// MessageBits is the number of message primes, one per bit
	MessageBits = 8

	// DecoysA is the number of decoy primes multiplied into the first share
	DecoysA = 3

	// DecoysB is the number of decoy primes multiplied into the second share
	DecoysB = 4

	// NumDecoys is the total number of decoy primes per byte
	NumDecoys = DecoysA + DecoysB

	// ShareSize is the size of one encoded share in bytes
	ShareSize = 8
)

// Status represents the result of an eviltwin operation
type Status int

const (
	// StatusOK indicates success
	StatusOK Status = iota

	// StatusErrRandom indicates the randomness source failed or returned
	// a value outside the requested range
	StatusErrRandom

	// StatusErrPartition indicates a selection buffer is not a valid
	// partition of the prime table
	StatusErrPartition

	// StatusErrInvalid indicates shares that were not produced by Encode
	StatusErrInvalid

	// StatusErrLength indicates share streams of mismatched or partial length
	StatusErrLength

	// StatusErrFormat indicates invalid share framing
	StatusErrFormat
)

// Error returns the error message for the status
func (s Status) Error() string {
	switch s {
	case StatusOK:
		return "success"
	case StatusErrRandom:
		return "randomness source out of range"
	case StatusErrPartition:
		return "invalid prime partition"
	case StatusErrInvalid:
		return "shares are not a valid twin pair"
	case StatusErrLength:
		return "share streams have mismatched length"
	case StatusErrFormat:
		return "invalid share format"
	default:
		return "unknown error"
	}
}

// memzero erases a byte slice
func memzero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Encode encodes message into two shares that must be combined to read it.
//
// buf is scratch space that is overwritten on every call; it may be reused
// across calls. src supplies all randomness: the decoy selection and the final
// coin flip that decides which share carries three decoys and which four.
func Encode(src Source, buf *Buffer, message byte) (a, b uint64) {
	Prepare(src, buf)

	// Encode the message as product of primes
	product := uint64(1)
	for i := 0; i < MessageBits; i++ {
		if (message>>i)&1 == 1 {
			product *= buf[i]
		}
	}

	// Insert the complementary decoys into each share
	a = product
	for _, p := range buf[MessageBits : MessageBits+DecoysA] {
		a *= p
	}
	b = product
	for _, p := range buf[MessageBits+DecoysA:] {
		b *= p
	}

	if src.Coin() {
		a, b = b, a
	}
	return a, b
}

// Decode recovers the message from two shares. The order of a and b does not
// matter.
//
// Decode does not check its input. Shares that did not come from Encode yield
// an arbitrary byte; use Validate first when the source of the shares is not
// trusted.
func Decode(a, b uint64) byte {
	var message byte
	k := 0
	for _, p := range primes {
		inA := a%p == 0
		inB := b%p == 0
		switch {
		case inA && inB:
			message |= 1 << k
			k++
		case !inA && !inB:
			k++
		}
	}
	return message
}

// Validate reports whether a and b look like a pair produced by Encode: both are
// square-free products of table primes, and the primes that divide only one of
// them split into groups of DecoysA and DecoysB.
func Validate(a, b uint64) bool {
	maskA, okA := factorMask(a)
	maskB, okB := factorMask(b)
	if !okA || !okB {
		return false
	}
	onlyA := popcount(maskA &^ maskB)
	onlyB := popcount(maskB &^ maskA)
	return (onlyA == DecoysA && onlyB == DecoysB) ||
		(onlyA == DecoysB && onlyB == DecoysA)
}
