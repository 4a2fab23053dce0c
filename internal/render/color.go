package render

import (
	"fmt"
	"strconv"
)

// RGB is an 8-bit-per-channel color.
type RGB struct {
	R, G, B int
}

// ParseHexColor parses a "#RRGGBB" string.
func ParseHexColor(s string) (RGB, error) {
	if len(s) != 7 || s[0] != '#' {
		return RGB{}, fmt.Errorf("invalid color %q: want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return RGB{
		R: int(v >> 16 & 0xFF),
		G: int(v >> 8 & 0xFF),
		B: int(v & 0xFF),
	}, nil
}
