// Package blend implements the separable blend formulas used by cub.
//
// Every formula works on a single colour channel normalised to [0, 1].
// Channels are independent, so the alpha channel goes through the same
// formula as red, green and blue.
//
// References:
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Mode represents a blending mode.
type Mode int

const (
	// ModeMultiply darkens: base * overlay.
	ModeMultiply Mode = iota
	// ModeScreen lightens: 1 - (1-base)*(1-overlay).
	ModeScreen
	// ModeOverlay is Multiply or Screen depending on the base channel.
	ModeOverlay
	// ModeHardLight is Overlay with base and overlay swapped.
	ModeHardLight
	// ModeSoftLight is a softer version of HardLight.
	ModeSoftLight
)

// String returns the name of the mode.
func (m Mode) String() string {
	if n, ok := modeNames[m]; ok {
		return n
	}
	return "unknown"
}

// Func blends one normalised base channel with one normalised overlay channel.
type Func func(base, overlay float64) float64

// GetFunc returns the channel formula for the mode.
// Unknown modes fall back to Multiply.
func GetFunc(m Mode) Func {
	switch m {
	case ModeScreen:
		return Screen
	case ModeOverlay:
		return Overlay
	case ModeHardLight:
		return HardLight
	case ModeSoftLight:
		return SoftLight
	case ModeDarken:
		return Darken
	case ModeLighten:
		return Lighten
	case ModeColorDodge:
		return ColorDodge
	case ModeColorBurn:
		return ColorBurn
	case ModeDifference:
		return Difference
	case ModeExclusion:
		return Exclusion
	default:
		return Multiply
	}
}

// Channel blends two 8-bit channel values with the given mode and
// re-quantises the result to 8 bits.
func Channel(m Mode, base, overlay uint8) uint8 {
	return quantize(GetFunc(m)(unit(base), unit(overlay)))
}
