// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package eviltwin

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	mrand "math/rand/v2"

	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

const (
	kdfNumIterations = 10000
	kdfKeySize       = chacha20.KeySize
	streamSaltPrefix = "EVILTWIN stream"
)

// Source is a source of uniform randomness.
//
// None of the sources in this package are safe for concurrent use. Callers
// sharing a source between goroutines must synchronize access themselves.
type Source interface {
	// IntN returns a uniform integer in [0, n). n is always positive.
	IntN(n int) int

	// Coin returns a fair boolean.
	Coin() bool
}

// wordSource draws 32-bit words from a uniform stream
type wordSource struct {
	next func() uint32
}

// IntN draws uniformly from [0, n) by rejection sampling
func (s wordSource) IntN(n int) int {
	if n <= 0 {
		panic(StatusErrRandom)
	}
	bound := uint64(n)
	limit := (1 << 32) - (1<<32)%bound
	for {
		v := uint64(s.next())
		if v < limit {
			return int(v % bound)
		}
	}
}

// Coin returns the low bit of the next word
func (s wordSource) Coin() bool {
	return s.next()&1 == 1
}

// CryptoSource returns a source backed by crypto/rand. It panics with
// StatusErrRandom if the system generator fails.
func CryptoSource() Source {
	return wordSource{next: func() uint32 {
		var b [4]byte
		if _, err := rand.Read(b[:]); err != nil {
			panic(StatusErrRandom)
		}
		return binary.LittleEndian.Uint32(b[:])
	}}
}

// streamSource reads words from a ChaCha20 keystream
type streamSource struct {
	cipher *chacha20.Cipher
	block  [64]byte
	pos    int
}

func (s *streamSource) next() uint32 {
	if s.pos == len(s.block) {
		memzero(s.block[:])
		s.cipher.XORKeyStream(s.block[:], s.block[:])
		s.pos = 0
	}
	v := binary.LittleEndian.Uint32(s.block[s.pos:])
	s.pos += 4
	return v
}

// NewStreamSource returns a reproducible source keyed by a passphrase.
//
// The passphrase is normalized (NFKD) and stretched with PBKDF2-HMAC-SHA256;
// the derived key drives a ChaCha20 keystream. The same passphrase and salt
// always produce the same shares for the same input.
func NewStreamSource(passphrase string, salt []byte) (Source, error) {
	if passphrase == "" {
		return nil, errors.New("eviltwin: empty passphrase")
	}
	passBytes := []byte(utf8NFKD(passphrase))
	defer memzero(passBytes)

	fullSalt := append([]byte(streamSaltPrefix), salt...)
	key := pbkdf2SHA256(passBytes, fullSalt, kdfNumIterations, kdfKeySize)
	defer memzero(key)

	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(key, nonce[:])
	if err != nil {
		return nil, err
	}
	s := &streamSource{cipher: c}
	s.pos = len(s.block)
	return wordSource{next: s.next}, nil
}

// NewMathSource returns a fast seeded source for tests and demonstrations.
// It must not be used where the shares need to stay secret.
func NewMathSource(seed uint64) Source {
	return mathSource{r: mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

type mathSource struct {
	r *mrand.Rand
}

func (s mathSource) IntN(n int) int {
	return s.r.IntN(n)
}

func (s mathSource) Coin() bool {
	return s.r.IntN(2) == 0
}

// pbkdf2SHA256 calculates PBKDF2 based on HMAC-SHA256
func pbkdf2SHA256(password []byte, salt []byte, iterations int, keyLen int) []byte {
	return pbkdf2.Key(password, salt, iterations, keyLen, sha256.New)
}

// utf8NFKD converts a UTF8 string to the decomposed canonical form (NFKD)
func utf8NFKD(str string) string {
	return norm.NFKD.String(str)
}
