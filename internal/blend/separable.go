package blend

import "math"

// Multiply multiplies base and overlay.
// Formula: B(b, o) = b * o
func Multiply(b, o float64) float64 {
	return b * o
}

// Screen produces a lighter result than multiply.
// Formula: B(b, o) = 1 - (1 - b) * (1 - o)
func Screen(b, o float64) float64 {
	return 1 - (1-b)*(1-o)
}

// Overlay combines Multiply and Screen, switching on the base channel.
// Formula: if b < 0.5: 2*b*o, else: 1 - 2*(1-b)*(1-o)
func Overlay(b, o float64) float64 {
	if b < 0.5 {
		return 2 * b * o
	}
	return 1 - 2*(1-b)*(1-o)
}

// HardLight is Overlay driven by the overlay channel.
func HardLight(b, o float64) float64 {
	return Overlay(o, b)
}

// SoftLight darkens or lightens the base depending on the overlay.
// An overlay of 0.5 leaves the base unchanged.
//
//	if o <= 0.5: b - (1 - 2*o) * b * (1 - b)
//	else:        b + (2*o - 1) * (D(b) - b)
//
// where D(x) = ((16*x - 12)*x + 4)*x for x <= 0.25, sqrt(x) otherwise.
func SoftLight(b, o float64) float64 {
	if o <= 0.5 {
		return b - (1-2*o)*b*(1-b)
	}
	var d float64
	if b <= 0.25 {
		d = ((16*b-12)*b + 4) * b
	} else {
		d = math.Sqrt(b)
	}
	return b + (2*o-1)*(d-b)
}
