package blend

import (
	"math"
	"testing"
)

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeMultiply, "multiply"},
		{ModeScreen, "screen"},
		{ModeOverlay, "overlay"},
		{ModeHardLight, "hard-light"},
		{ModeSoftLight, "soft-light"},
		{Mode(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", int(tt.mode), got, tt.want)
		}
	}
}

// TestChannel tests the 8-bit entry point for every mode.
func TestChannel(t *testing.T) {
	tests := []struct {
		name          string
		mode          Mode
		base, overlay uint8
		want          uint8
	}{
		{"multiply white", ModeMultiply, 255, 200, 200},
		{"multiply black", ModeMultiply, 0, 200, 0},
		{"multiply gray", ModeMultiply, 128, 128, 64}, // 0.502^2*255 = 64.25
		{"screen black", ModeScreen, 0, 77, 77},
		{"screen white", ModeScreen, 255, 77, 255},
		{"screen gray", ModeScreen, 128, 128, 192},
		{"overlay dark base", ModeOverlay, 64, 255, 128},
		{"overlay light base", ModeOverlay, 192, 0, 129},
		{"overlay black base", ModeOverlay, 0, 255, 0},
		{"hard light dark overlay", ModeHardLight, 255, 64, 128},
		{"hard light light overlay", ModeHardLight, 0, 192, 129},
		{"soft light zero overlay", ModeSoftLight, 128, 0, 64},
		{"soft light full overlay", ModeSoftLight, 64, 255, 128},
		{"soft light black base", ModeSoftLight, 0, 200, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Channel(tt.mode, tt.base, tt.overlay)
			if got != tt.want {
				t.Errorf("Channel(%v, %d, %d) = %d, want %d", tt.mode, tt.base, tt.overlay, got, tt.want)
			}
		})
	}
}

func TestGetFuncUnknownFallsBackToMultiply(t *testing.T) {
	f := GetFunc(Mode(-1))
	if got := f(0.5, 0.5); got != 0.25 {
		t.Errorf("GetFunc(-1)(0.5, 0.5) = %v, want 0.25", got)
	}
}

func TestHardLightIsSwappedOverlay(t *testing.T) {
	for b := 0; b <= 255; b += 15 {
		for o := 0; o <= 255; o += 15 {
			hl := Channel(ModeHardLight, uint8(b), uint8(o))
			ov := Channel(ModeOverlay, uint8(o), uint8(b))
			if hl != ov {
				t.Fatalf("HardLight(%d, %d) = %d, Overlay(%d, %d) = %d", b, o, hl, o, b, ov)
			}
		}
	}
}

// TestSoftLightNeutral verifies that an exact 0.5 overlay is the identity.
func TestSoftLightNeutral(t *testing.T) {
	for b := 0.0; b <= 1.0; b += 1.0 / 64 {
		if got := SoftLight(b, 0.5); math.Abs(got-b) > 1e-12 {
			t.Errorf("SoftLight(%v, 0.5) = %v, want %v", b, got, b)
		}
	}
}

func TestSoftLightMonotonic(t *testing.T) {
	for o := 0; o <= 255; o++ {
		prev := Channel(ModeSoftLight, 0, uint8(o))
		for b := 1; b <= 255; b++ {
			got := Channel(ModeSoftLight, uint8(b), uint8(o))
			if got < prev {
				t.Fatalf("SoftLight not monotonic in base at o=%d: b=%d gives %d < %d", o, b, got, prev)
			}
			prev = got
		}
	}
	for b := 0; b <= 255; b++ {
		prev := Channel(ModeSoftLight, uint8(b), 0)
		for o := 1; o <= 255; o++ {
			got := Channel(ModeSoftLight, uint8(b), uint8(o))
			if got < prev {
				t.Fatalf("SoftLight not monotonic in overlay at b=%d: o=%d gives %d < %d", b, o, got, prev)
			}
			prev = got
		}
	}
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{-0.5, 0},
		{0, 0},
		{0.5, 128},
		{1, 255},
		{1.5, 255},
	}
	for _, tt := range tests {
		if got := quantize(tt.in); got != tt.want {
			t.Errorf("quantize(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestUnitRoundTrip(t *testing.T) {
	for v := 0; v <= 255; v++ {
		if got := quantize(unit(uint8(v))); got != uint8(v) {
			t.Fatalf("quantize(unit(%d)) = %d", v, got)
		}
	}
}
