package cub

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a packed 32-bit RGBA value laid out as 0xRRGGBBAA.
// Channels are straight (non-premultiplied) 8-bit values.
type Color uint32

// Common colors.
const (
	Transparent Color = 0x00000000
	Black       Color = 0x000000ff
	Red         Color = 0xff0000ff
	Green       Color = 0x00ff00ff
	Blue        Color = 0x0000ffff
	White       Color = 0xffffffff
)

// RGBA packs four channels into a Color.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// RGB packs an opaque Color.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xff)
}

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 24) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 16) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c >> 8) }

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c) }

// NRGBA converts c to the standard non-premultiplied color type.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// String returns the color as #rrggbbaa.
func (c Color) String() string {
	return fmt.Sprintf("#%08x", uint32(c))
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	if cc, ok := c.(Color); ok {
		return cc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA(n.R, n.G, n.B, n.A)
}

// ParseHex parses a color from a hex string.
// Supports formats: "RGB", "RRGGBB", "RRGGBBAA", each with an optional
// leading '#'. Colors without an alpha component are opaque.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	var alpha uint64 = 0xff
	if len(hex) == 8 {
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return Transparent, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		alpha = a
		hex = hex[:6]
	}
	if len(hex) != 3 && len(hex) != 6 {
		return Transparent, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	cf, err := colorful.Hex("#" + hex)
	if err != nil {
		return Transparent, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	r, g, b := cf.RGB255()
	return RGBA(r, g, b, uint8(alpha)), nil
}

// Named colors accepted by ParseColor.
var namedColors = map[string]Color{
	"transparent": Transparent,
	"black":       Black,
	"red":         Red,
	"green":       Green,
	"blue":        Blue,
	"white":       White,
}

// ParseColor parses a color name (black, red, green, blue, white,
// transparent) or any format accepted by ParseHex.
func ParseColor(s string) (Color, error) {
	if c, ok := namedColors[strings.ToLower(strings.TrimSpace(s))]; ok {
		return c, nil
	}
	return ParseHex(s)
}
