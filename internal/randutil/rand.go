// Package randutil centralises how seeded random sources are built so that
// decks, bots and simulations replay identically for the same seed.
package randutil

import (
	crand "crypto/rand"
	"encoding/binary"
	rand "math/rand/v2"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Derive returns the seed for the n-th independent stream below seed. Each
// simulated match and each seat draws from its own derived stream.
func Derive(seed int64, n int) int64 {
	return int64(mix(uint64(seed) + uint64(n+1)*goldenRatio64))
}

// Seed returns seed unchanged unless it is zero, in which case a random
// non-zero seed is drawn from crypto/rand.
func Seed(seed int64) int64 {
	for seed == 0 {
		var buf [8]byte
		if _, err := crand.Read(buf[:]); err != nil {
			panic("failed to read random seed: " + err.Error())
		}
		seed = int64(binary.LittleEndian.Uint64(buf[:]) >> 1)
	}
	return seed
}

// splitmix64 finaliser
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
