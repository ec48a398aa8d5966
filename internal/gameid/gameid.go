// Package gameid issues sortable match identifiers: a UUIDv7 written as 26
// characters of Crockford base32, lowercase.
package gameid

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Base32 alphabet used by TypeID (Crockford's base32)
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length is the encoded length: 128 bits plus two leading zero bits
const Length = 26

// Generate returns a new time-ordered match ID
func Generate() string {
	return Encode(uuid.Must(uuid.NewV7()))
}

// Encode writes id as base32, most significant bits first
func Encode(id uuid.UUID) string {
	var out [Length]byte
	for i := range out {
		var v byte
		for b := 0; b < 5; b++ {
			v <<= 1
			if bit := i*5 + b - 2; bit >= 0 && id[bit/8]&(0x80>>(bit%8)) != 0 {
				v |= 1
			}
		}
		out[i] = alphabet[v]
	}
	return string(out[:])
}

// decode reverses an ID produced by Encode
func decode(s string) (uuid.UUID, error) {
	var id uuid.UUID
	if err := validate(s); err != nil {
		return id, err
	}
	for i := 0; i < Length; i++ {
		v := strings.IndexByte(alphabet, s[i])
		for b := 0; b < 5; b++ {
			bit := i*5 + b - 2
			if bit >= 0 && v&(0x10>>b) != 0 {
				id[bit/8] |= 0x80 >> (bit % 8)
			}
		}
	}
	return id, nil
}

// validate checks if a match ID is valid (26 characters, valid base32)
func validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("match ID must be exactly %d characters, got %d", Length, len(id))
	}

	// The two leading padding bits must be zero
	if id[0] > '7' {
		return fmt.Errorf("match ID first character must be 0-7, got %c", id[0])
	}

	for i, char := range id {
		if !strings.ContainsRune(alphabet, char) {
			return fmt.Errorf("invalid character %c at position %d", char, i)
		}
	}
	return nil
}
