package blend

import (
	"fmt"
	"strings"
)

// Additional separable modes.
const (
	// ModeDarken keeps the darker channel: min(base, overlay).
	ModeDarken Mode = iota + ModeSoftLight + 1
	// ModeLighten keeps the lighter channel: max(base, overlay).
	ModeLighten
	// ModeColorDodge brightens the base: base / (1 - overlay).
	ModeColorDodge
	// ModeColorBurn darkens the base: 1 - (1 - base) / overlay.
	ModeColorBurn
	// ModeDifference is |base - overlay|.
	ModeDifference
	// ModeExclusion is Difference with lower contrast.
	ModeExclusion
)

var modeNames = map[Mode]string{
	ModeMultiply:   "multiply",
	ModeScreen:     "screen",
	ModeOverlay:    "overlay",
	ModeHardLight:  "hard-light",
	ModeSoftLight:  "soft-light",
	ModeDarken:     "darken",
	ModeLighten:    "lighten",
	ModeColorDodge: "color-dodge",
	ModeColorBurn:  "color-burn",
	ModeDifference: "difference",
	ModeExclusion:  "exclusion",
}

// ParseMode returns the mode with the given name, as printed by String.
// Underscores and spaces are accepted in place of hyphens.
func ParseMode(name string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("_", "-", " ", "-").Replace(key)
	for m, n := range modeNames {
		if n == key {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown blend mode %q", name)
}

// Darken selects the darker channel.
// Formula: B(b, o) = min(b, o)
func Darken(b, o float64) float64 {
	return min(b, o)
}

// Lighten selects the lighter channel.
// Formula: B(b, o) = max(b, o)
func Lighten(b, o float64) float64 {
	return max(b, o)
}

// ColorDodge brightens the base to reflect the overlay.
// Formula: B(b, o) = if b == 0: 0, if o == 1: 1, else: min(1, b / (1 - o))
func ColorDodge(b, o float64) float64 {
	if b == 0 {
		return 0
	}
	if o >= 1 {
		return 1
	}
	return min(1, b/(1-o))
}

// ColorBurn darkens the base to reflect the overlay.
// Formula: B(b, o) = if b == 1: 1, if o == 0: 0, else: 1 - min(1, (1 - b) / o)
func ColorBurn(b, o float64) float64 {
	if b >= 1 {
		return 1
	}
	if o <= 0 {
		return 0
	}
	return 1 - min(1, (1-b)/o)
}

// Difference is the absolute difference of the channels.
// Formula: B(b, o) = |b - o|
func Difference(b, o float64) float64 {
	if b > o {
		return b - o
	}
	return o - b
}

// Exclusion is similar to Difference with lower contrast.
// Formula: B(b, o) = b + o - 2*b*o
func Exclusion(b, o float64) float64 {
	return b + o - 2*b*o
}
