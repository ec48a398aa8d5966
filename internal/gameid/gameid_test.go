package gameid

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	id := Generate()

	assert.Len(t, id, Length)
	require.NoError(t, validate(id))

	parsed, err := decode(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.Equal(t, uuid.RFC4122, parsed.Variant())
}

func TestGenerateUniqueAndSorted(t *testing.T) {
	seen := make(map[string]bool)
	prev := ""
	for i := 0; i < 100; i++ {
		id := Generate()
		assert.False(t, seen[id], "duplicate ID generated: %s", id)
		seen[id] = true
		assert.Greater(t, id, prev, "IDs sort by creation time")
		prev = id
		if i%10 == 0 {
			time.Sleep(time.Millisecond)
		}
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		id   uuid.UUID
		want string
	}{
		{"zero", uuid.Nil, "00000000000000000000000000"},
		{"max", uuid.Max, "7zzzzzzzzzzzzzzzzzzzzzzzzz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := Encode(tt.id)
			assert.Equal(t, tt.want, enc)

			dec, err := decode(enc)
			require.NoError(t, err)
			assert.Equal(t, tt.id, dec)
		})
	}

	random := uuid.New()
	dec, err := decode(Encode(random))
	require.NoError(t, err)
	assert.Equal(t, random, dec)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"valid ID", "01h5n0et5q6mt3v7ms1234abcd", false},
		{"too short", "01h5n0et5q6mt3v7ms123", true},
		{"too long", "01h5n0et5q6mt3v7ms1234abcdef", true},
		{"first char too high", "81h5n0et5q6mt3v7ms1234abcd", true},
		{"excluded letter", "01h5n0et5q6mt3v7ms1234abci", true},
		{"uppercase", "01H5N0ET5Q6MT3V7MS1234ABCD", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(tt.id)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	_, err := decode("nope")
	assert.Error(t, err)
}
