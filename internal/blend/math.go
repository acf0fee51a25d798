package blend

import "math"

// unit maps an 8-bit channel onto [0, 1].
func unit(v uint8) float64 {
	return float64(v) / 255
}

// quantize maps a normalised channel back to 8 bits, rounding to nearest.
// Values outside [0, 1] are clamped.
func quantize(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
