package cub

import (
	"errors"
	"image/color"
	"testing"
)

func TestColorChannels(t *testing.T) {
	c := Color(0x11223344)
	if c.R() != 0x11 || c.G() != 0x22 || c.B() != 0x33 || c.A() != 0x44 {
		t.Errorf("channels of %v = (%#x, %#x, %#x, %#x), want (0x11, 0x22, 0x33, 0x44)",
			c, c.R(), c.G(), c.B(), c.A())
	}
	if got := RGBA(0x11, 0x22, 0x33, 0x44); got != c {
		t.Errorf("RGBA(0x11, 0x22, 0x33, 0x44) = %v, want %v", got, c)
	}
}

func TestColorConstants(t *testing.T) {
	tests := []struct {
		name       string
		c          Color
		r, g, b, a uint8
	}{
		{"Black", Black, 0, 0, 0, 255},
		{"Red", Red, 255, 0, 0, 255},
		{"Green", Green, 0, 255, 0, 255},
		{"Blue", Blue, 0, 0, 255, 255},
		{"White", White, 255, 255, 255, 255},
		{"Transparent", Transparent, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBA(tt.r, tt.g, tt.b, tt.a); got != tt.c {
				t.Errorf("%s = %v, want %v", tt.name, tt.c, got)
			}
		})
	}
}

func TestRGBIsOpaque(t *testing.T) {
	if got := RGB(1, 2, 3); got.A() != 255 {
		t.Errorf("RGB(1, 2, 3).A() = %d, want 255", got.A())
	}
}

// TestColorRGBA verifies the color.Color implementation premultiplies like color.NRGBA.
func TestColorRGBA(t *testing.T) {
	c := RGBA(200, 100, 50, 128)
	r, g, b, a := c.RGBA()
	wr, wg, wb, wa := color.NRGBA{R: 200, G: 100, B: 50, A: 128}.RGBA()
	if r != wr || g != wg || b != wb || a != wa {
		t.Errorf("RGBA() = (%d, %d, %d, %d), want (%d, %d, %d, %d)", r, g, b, a, wr, wg, wb, wa)
	}
}

func TestFromColor(t *testing.T) {
	tests := []struct {
		name string
		in   color.Color
		want Color
	}{
		{"Color passthrough", Color(0x12345678), Color(0x12345678)},
		{"NRGBA", color.NRGBA{R: 10, G: 20, B: 30, A: 40}, RGBA(10, 20, 30, 40)},
		{"opaque RGBA", color.RGBA{R: 255, G: 128, B: 0, A: 255}, RGBA(255, 128, 0, 255)},
		{"Gray", color.Gray{Y: 77}, RGBA(77, 77, 77, 255)},
		{"transparent", color.RGBA{}, Transparent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromColor(tt.in); got != tt.want {
				t.Errorf("FromColor(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorString(t *testing.T) {
	if got := Red.String(); got != "#ff0000ff" {
		t.Errorf("Red.String() = %q, want %q", got, "#ff0000ff")
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#ff0000", Red},
		{"00ff00", Green},
		{"#00f", Blue},
		{"#FFF", White},
		{"#11223344", Color(0x11223344)},
		{"  #000000  ", Black},
		{"#ffffff00", RGBA(255, 255, 255, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if err != nil {
				t.Fatalf("ParseHex(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseHexInvalid(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#12345", "#gggggg", "#1234567", "#112233zz"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseHex(in)
			if !errors.Is(err, ErrInvalidColor) {
				t.Errorf("ParseHex(%q) error = %v, want ErrInvalidColor", in, err)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"black", Black},
		{"Red", Red},
		{" GREEN ", Green},
		{"blue", Blue},
		{"white", White},
		{"transparent", Transparent},
		{"#102030", RGB(0x10, 0x20, 0x30)},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseColor("purple"); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("ParseColor(purple) error = %v, want ErrInvalidColor", err)
	}
}
