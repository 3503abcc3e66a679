// Package random provides seed generation and PRNG construction helpers.
//
// Every randomized component in this module takes an injected *rand.Rand
// rather than calling the global source, so tests can fix a seed and
// assert exact output.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// fallbackSeed is used when the system entropy source is unavailable.
const fallbackSeed = 1811

// NewSeed generates a high-entropy seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// New returns a PRNG seeded from the given value. The same seed always
// yields the same sequence.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewAuto returns a PRNG seeded from crypto/rand.
func NewAuto() *rand.Rand {
	seed, err := NewSeed()
	if err != nil {
		seed = fallbackSeed
	}
	return New(seed)
}
