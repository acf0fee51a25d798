package cub

import (
	"fmt"

	"github.com/gogpu/cub/internal/blend"
)

// Multiply blends overlay onto base with the multiply formula.
// White is the identity and black absorbs.
func Multiply(base, overlay Color) Color {
	return blendColors(blend.ModeMultiply, base, overlay)
}

// Screen blends overlay onto base with the screen formula.
// Black is the identity and white absorbs.
func Screen(base, overlay Color) Color {
	return blendColors(blend.ModeScreen, base, overlay)
}

// Overlay multiplies dark base channels and screens light ones.
func Overlay(base, overlay Color) Color {
	return blendColors(blend.ModeOverlay, base, overlay)
}

// HardLight is Overlay with the overlay channel driving the choice.
func HardLight(base, overlay Color) Color {
	return blendColors(blend.ModeHardLight, base, overlay)
}

// SoftLight is a gentler HardLight. A mid-gray overlay leaves base
// unchanged within rounding.
func SoftLight(base, overlay Color) Color {
	return blendColors(blend.ModeSoftLight, base, overlay)
}

// Multiply returns Multiply(c, o).
func (c Color) Multiply(o Color) Color { return Multiply(c, o) }

// Screen returns Screen(c, o).
func (c Color) Screen(o Color) Color { return Screen(c, o) }

// Overlay returns Overlay(c, o).
func (c Color) Overlay(o Color) Color { return Overlay(c, o) }

// HardLight returns HardLight(c, o).
func (c Color) HardLight(o Color) Color { return HardLight(c, o) }

// SoftLight returns SoftLight(c, o).
func (c Color) SoftLight(o Color) Color { return SoftLight(c, o) }

// blendColors applies mode to each channel, alpha included.
func blendColors(mode blend.Mode, base, overlay Color) Color {
	return RGBA(
		blend.Channel(mode, base.R(), overlay.R()),
		blend.Channel(mode, base.G(), overlay.G()),
		blend.Channel(mode, base.B(), overlay.B()),
		blend.Channel(mode, base.A(), overlay.A()),
	)
}

// BlendMode selects the formula used by Blend and Canvas.BlendFill.
type BlendMode int

// Blend modes. The first five match the Multiply, Screen, Overlay,
// HardLight and SoftLight functions.
const (
	BlendMultiply   = BlendMode(blend.ModeMultiply)
	BlendScreen     = BlendMode(blend.ModeScreen)
	BlendOverlay    = BlendMode(blend.ModeOverlay)
	BlendHardLight  = BlendMode(blend.ModeHardLight)
	BlendSoftLight  = BlendMode(blend.ModeSoftLight)
	BlendDarken     = BlendMode(blend.ModeDarken)
	BlendLighten    = BlendMode(blend.ModeLighten)
	BlendColorDodge = BlendMode(blend.ModeColorDodge)
	BlendColorBurn  = BlendMode(blend.ModeColorBurn)
	BlendDifference = BlendMode(blend.ModeDifference)
	BlendExclusion  = BlendMode(blend.ModeExclusion)
)

// String returns the mode name, e.g. "soft-light".
func (m BlendMode) String() string {
	return blend.Mode(m).String()
}

// ParseBlendMode parses a mode name as returned by BlendMode.String.
func ParseBlendMode(name string) (BlendMode, error) {
	m, err := blend.ParseMode(name)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidBlendMode, err)
	}
	return BlendMode(m), nil
}

// Blend blends overlay onto base with the given mode, channel by channel.
// Unknown modes behave like BlendMultiply.
func Blend(mode BlendMode, base, overlay Color) Color {
	return blendColors(blend.Mode(mode), base, overlay)
}

// BlendFill blends col onto every pixel of the canvas, with each pixel as
// the base.
func (c *Canvas) BlendFill(mode BlendMode, col Color) {
	for i, p := range c.pixels {
		c.pixels[i] = Blend(mode, p, col)
	}
}
