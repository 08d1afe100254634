package crypto

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand/v2"
)

// RandSource yields uniform integers in [min, max).
type RandSource interface {
	IntRange(min, max int) int
}

// CryptoSource draws from crypto/rand. Safe for concurrent use.
type CryptoSource struct{}

// NewCryptoSource returns the default source used by the server and the CLI.
func NewCryptoSource() CryptoSource {
	return CryptoSource{}
}

// IntRange returns a uniform value in [min, max). It panics if max <= min.
func (CryptoSource) IntRange(min, max int) int {
	if max <= min {
		panic("crypto: IntRange called with empty range")
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max-min)))
	if err != nil {
		// crypto/rand does not fail on supported platforms.
		panic("crypto/rand failed: " + err.Error())
	}
	return min + int(n.Int64())
}

// SeededSource is a deterministic PCG-backed source for tests and reproducible
// runs. Not safe for concurrent use.
type SeededSource struct {
	rng *mrand.Rand
}

// NewSeededSource creates a SeededSource. Equal seeds produce equal sequences.
func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{rng: mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// IntRange returns a uniform value in [min, max). It panics if max <= min.
func (s *SeededSource) IntRange(min, max int) int {
	if max <= min {
		panic("crypto: IntRange called with empty range")
	}
	return min + s.rng.IntN(max-min)
}
