// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package eviltwin

import (
	"encoding/binary"
	"fmt"
)

// store64 stores a 64-bit value in little-endian format
func store64(p []byte, u uint64) {
	binary.LittleEndian.PutUint64(p, u)
}

// load64 loads a 64-bit value from little-endian format
func load64(p []byte) uint64 {
	return binary.LittleEndian.Uint64(p)
}

// Split encodes every byte of message and returns the two share streams. Each
// stream holds ShareSize bytes per message byte. Either stream alone does not
// reveal the message.
func Split(src Source, message []byte) (a, b []byte) {
	buf := NewBuffer()
	defer buf.Reset()

	a = make([]byte, len(message)*ShareSize)
	b = make([]byte, len(message)*ShareSize)
	for i, m := range message {
		x, y := Encode(src, buf, m)
		store64(a[i*ShareSize:], x)
		store64(b[i*ShareSize:], y)
	}
	return a, b
}

// Combine joins two share streams produced by Split. The streams may be passed
// in either order. Every pair is validated before it is decoded.
func Combine(a, b []byte) ([]byte, error) {
	if len(a) != len(b) || len(a)%ShareSize != 0 {
		return nil, StatusErrLength
	}

	message := make([]byte, len(a)/ShareSize)
	for i := range message {
		x := load64(a[i*ShareSize:])
		y := load64(b[i*ShareSize:])
		if !Validate(x, y) {
			memzero(message)
			return nil, fmt.Errorf("byte %d: %w", i, StatusErrInvalid)
		}
		message[i] = Decode(x, y)
	}
	return message, nil
}
