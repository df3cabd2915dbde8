// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package eviltwin

// Analysis lists what a single share reveals on its own
type Analysis struct {
	// Hypotheses is the number of decoy placements consistent with the share
	Hypotheses int

	// Messages holds every message some hypothesis decodes to, ascending
	Messages []byte
}

// Factor returns the table primes dividing share, in table order. ok is false
// when share could not have come from Encode (zero, a repeated factor, or a
// factor outside the table).
func Factor(share uint64) (factors []uint64, ok bool) {
	mask, ok := factorMask(share)
	if !ok {
		return nil, false
	}
	for i, p := range primes {
		if (mask>>i)&1 == 1 {
			factors = append(factors, p)
		}
	}
	return factors, true
}

// Candidates enumerates the messages a lone share could encode.
//
// Every choice of NumDecoys table primes is a hypothesis for where the decoys
// went. A hypothesis fits when DecoysA or DecoysB of its primes divide share;
// the other primes of the table are then the message primes, and the ones
// dividing share are the set bits.
func Candidates(share uint64) (Analysis, error) {
	mask, ok := factorMask(share)
	if !ok {
		return Analysis{}, StatusErrInvalid
	}

	var seen [256]bool
	var a Analysis
	for decoys := uint16(0); decoys <= allPrimesMask; decoys++ {
		if popcount(decoys) != NumDecoys {
			continue
		}
		inShare := popcount(decoys & mask)
		if inShare != DecoysA && inShare != DecoysB {
			continue
		}
		a.Hypotheses++

		var message byte
		k := 0
		for i := 0; i < NumPrimes; i++ {
			if (decoys>>i)&1 == 1 {
				continue
			}
			if (mask>>i)&1 == 1 {
				message |= 1 << k
			}
			k++
		}
		seen[message] = true
	}

	for m, ok := range seen {
		if ok {
			a.Messages = append(a.Messages, byte(m))
		}
	}
	return a, nil
}
