package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsDeterministic(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 16; i++ {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestDeriveProducesDistinctStreams(t *testing.T) {
	seen := map[int64]bool{}
	for i := 0; i < 100; i++ {
		s := Derive(7, i)
		assert.False(t, seen[s], "duplicate derived seed at %d", i)
		seen[s] = true
	}
	assert.Equal(t, Derive(7, 3), Derive(7, 3))
	assert.NotEqual(t, Derive(7, 3), Derive(8, 3))
}

func TestSeed(t *testing.T) {
	assert.Equal(t, int64(99), Seed(99))
	assert.NotZero(t, Seed(0))
}
