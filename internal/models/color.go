package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an 8-bit-per-channel RGB value.
type Color struct {
	R, G, B uint8
}

// DefaultColor is substituted whenever a stored hex string cannot be decoded.
var DefaultColor = Color{R: 0x00, G: 0x7a, B: 0xff}

// Hex encodes the color as a lowercase "#rrggbb" string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex decodes a "#rrggbb" string (leading '#' optional) into a Color.
// Non-hex characters or a length other than six digits are an error.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("invalid color hex %q: expected 6 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color hex %q: %w", s, err)
	}
	return Color{
		R: uint8(v >> 16 & 0xff),
		G: uint8(v >> 8 & 0xff),
		B: uint8(v & 0xff),
	}, nil
}
