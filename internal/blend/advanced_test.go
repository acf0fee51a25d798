package blend

import (
	"math"
	"testing"
)

func TestAdvancedFuncs(t *testing.T) {
	tests := []struct {
		name string
		fn   Func
		b, o float64
		want float64
	}{
		{"darken", Darken, 0.3, 0.7, 0.3},
		{"darken swapped", Darken, 0.7, 0.3, 0.3},
		{"lighten", Lighten, 0.3, 0.7, 0.7},
		{"color dodge black base", ColorDodge, 0, 1, 0},
		{"color dodge white overlay", ColorDodge, 0.2, 1, 1},
		{"color dodge half", ColorDodge, 0.25, 0.5, 0.5},
		{"color dodge clamps", ColorDodge, 0.8, 0.5, 1},
		{"color burn white base", ColorBurn, 1, 0, 1},
		{"color burn black overlay", ColorBurn, 0.8, 0, 0},
		{"color burn half", ColorBurn, 0.75, 0.5, 0.5},
		{"color burn clamps", ColorBurn, 0.2, 0.5, 0},
		{"difference", Difference, 0.2, 0.7, 0.5},
		{"difference swapped", Difference, 0.7, 0.2, 0.5},
		{"exclusion", Exclusion, 0.5, 0.5, 0.5},
		{"exclusion white", Exclusion, 1, 0.25, 0.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.b, tt.o); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("B(%v, %v) = %v, want %v", tt.b, tt.o, got, tt.want)
			}
		})
	}
}

func TestAdvancedChannel(t *testing.T) {
	tests := []struct {
		mode          Mode
		base, overlay uint8
		want          uint8
	}{
		{ModeDarken, 10, 200, 10},
		{ModeLighten, 10, 200, 200},
		{ModeColorDodge, 0, 255, 0},
		{ModeColorBurn, 255, 0, 255},
		{ModeDifference, 200, 50, 150},
		{ModeExclusion, 255, 255, 0},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			if got := Channel(tt.mode, tt.base, tt.overlay); got != tt.want {
				t.Errorf("Channel(%v, %d, %d) = %d, want %d", tt.mode, tt.base, tt.overlay, got, tt.want)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	for m, name := range modeNames {
		got, err := ParseMode(name)
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v; want %v", name, got, err, m)
		}
	}

	aliases := map[string]Mode{
		"Soft_Light":  ModeSoftLight,
		" COLOR BURN": ModeColorBurn,
		"hard-light":  ModeHardLight,
	}
	for name, want := range aliases {
		if got, err := ParseMode(name); err != nil || got != want {
			t.Errorf("ParseMode(%q) = %v, %v; want %v", name, got, err, want)
		}
	}

	if _, err := ParseMode("hue"); err == nil {
		t.Error("ParseMode(\"hue\") succeeded, want error")
	}
}
