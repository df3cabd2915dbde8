// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package eviltwin

// Buffer is the selection buffer for one Encode call.
//
// Positions [0, MessageBits) hold the message primes in table order, position i
// carrying bit i. The next DecoysA positions hold the first share's decoys and
// the last DecoysB positions hold the second share's decoys.
type Buffer [NumPrimes]uint64

// NewBuffer returns a zeroed selection buffer
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Reset erases the buffer contents
func (b *Buffer) Reset() {
	*b = Buffer{}
}

// Prepare fills buf with a fresh random partition of the prime table.
//
// Decoys are claimed one at a time: a draw over the number of still unclaimed
// slots, then a forward probe (wrapping at the end of the table) to the next
// unclaimed index. Decoys are written from the end of the buffer backwards. The
// remaining primes become message primes in table order.
//
// Prepare panics with StatusErrRandom if src returns a value outside the
// requested range.
func Prepare(src Source, buf *Buffer) {
	var mask uint16
	remaining := NumPrimes

	// Pick the decoys
	for remaining > MessageBits {
		index := src.IntN(remaining)
		if index < 0 || index >= remaining {
			panic(StatusErrRandom)
		}
		remaining--

		for (mask>>index)&1 == 1 {
			index = (index + 1) % NumPrimes
		}
		mask |= 1 << index
		buf[remaining] = primes[index]
	}

	// Message primes go to the front in table order
	for i := 0; i < NumPrimes; i++ {
		if (mask>>i)&1 == 0 {
			buf[MessageBits-remaining] = primes[i]
			remaining--
		}
	}

	if err := buf.Verify(); err != nil {
		panic(err)
	}
}

// Verify checks that the buffer is a permutation of the prime table with the
// message primes in ascending table order.
func (b *Buffer) Verify() error {
	var seen uint16
	last := -1
	for pos, p := range b {
		i := primeIndex(p)
		if i < 0 || (seen>>i)&1 == 1 {
			return StatusErrPartition
		}
		seen |= 1 << i
		if pos < MessageBits {
			if i <= last {
				return StatusErrPartition
			}
			last = i
		}
	}
	if seen != allPrimesMask {
		return StatusErrPartition
	}
	return nil
}

// MessagePrimes returns the primes carrying the message bits, bit 0 first
func (b *Buffer) MessagePrimes() []uint64 {
	return append([]uint64(nil), b[:MessageBits]...)
}

// DecoyPrimes returns the decoys of the first and second share
func (b *Buffer) DecoyPrimes() (a, c []uint64) {
	a = append([]uint64(nil), b[MessageBits:MessageBits+DecoysA]...)
	c = append([]uint64(nil), b[MessageBits+DecoysA:]...)
	return a, c
}
