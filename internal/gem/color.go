// Package gem defines the token colors and fixed-size token arrays used by
// every other part of the engine.
package gem

import (
	"fmt"
	"strings"
)

// Color represents one of the five development colors. Gold is not a Color.
type Color uint8

const (
	Black Color = iota
	Blue
	Green
	Red
	White
)

// NumColors is the number of development colors
const NumColors = 5

// Colors lists every color in canonical order
var Colors = [NumColors]Color{Black, Blue, Green, Red, White}

var colorNames = [NumColors]string{"black", "blue", "green", "red", "white"}

// String returns the lowercase color name
func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("color(%d)", uint8(c))
	}
	return colorNames[c]
}

// Valid reports whether c is one of the five colors
func (c Color) Valid() bool {
	return c < NumColors
}

// Short returns a single-letter abbreviation, used in compact dumps
func (c Color) Short() string {
	switch c {
	case Black:
		return "K"
	case Blue:
		return "U"
	case Green:
		return "G"
	case Red:
		return "R"
	case White:
		return "W"
	default:
		return "?"
	}
}

// ParseColor parses a color name. "gold" is rejected because gold is not a
// development color.
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range colorNames {
		if n == name {
			return Color(i), nil
		}
	}
	if name == "gold" {
		return 0, fmt.Errorf("gold is not a development color")
	}
	return 0, fmt.Errorf("unknown color %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (c Color) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid color %d", uint8(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
