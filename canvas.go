package cub

import (
	"fmt"
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Canvas is a fixed-size, row-major buffer of packed colors.
//
// The pixel at (x, y) lives at offset x + y*width. A Canvas owns its
// buffer exclusively and is never resized. It has no internal locking:
// concurrent use of one Canvas needs external synchronization.
type Canvas struct {
	width  int
	height int
	pixels []Color
}

// Model converts any color to a packed Color.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	return FromColor(c)
})

// NewCanvas creates a width x height canvas filled with fill.
// It returns ErrInvalidSize if either dimension is not positive or the
// pixel count is too large to address.
func NewCanvas(width, height int, fill Color) (*Canvas, error) {
	pixels, err := allocPixels(width, height)
	if err != nil {
		return nil, err
	}
	c := &Canvas{width: width, height: height, pixels: pixels}
	c.Clear(fill)

	Logger().Debug("canvas created",
		"width", width,
		"height", height,
		"fill", fill.String(),
	)
	return c, nil
}

// FromRGBA creates a canvas from decoded pixel bytes in R, G, B, A order
// (non-premultiplied, 4 bytes per pixel, no row padding). The bytes are
// repacked into Colors; pix is not retained.
func FromRGBA(width, height int, pix []byte) (*Canvas, error) {
	pixels, err := allocPixels(width, height)
	if err != nil {
		return nil, err
	}
	if len(pix) != len(pixels)*4 {
		return nil, fmt.Errorf("%w: got %d bytes, want %d for %dx%d",
			ErrPixelData, len(pix), len(pixels)*4, width, height)
	}
	for i := range pixels {
		p := pix[i*4 : i*4+4 : i*4+4]
		pixels[i] = RGBA(p[0], p[1], p[2], p[3])
	}
	return &Canvas{width: width, height: height, pixels: pixels}, nil
}

// FromImage creates a canvas from a decoded image. The image's top-left
// corner becomes (0, 0).
func FromImage(img image.Image) (*Canvas, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	nrgba, ok := img.(*image.NRGBA)
	if !ok || b.Min != (image.Point{}) || nrgba.Stride != w*4 {
		nrgba = image.NewNRGBA(image.Rect(0, 0, w, h))
		xdraw.Copy(nrgba, image.Point{}, img, b, xdraw.Src, nil)
	}
	return FromRGBA(w, h, nrgba.Pix[:w*h*4])
}

func allocPixels(width, height int) (pixels []Color, err error) {
	if width <= 0 || height <= 0 || width > math.MaxInt/height {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	defer func() {
		if r := recover(); r != nil {
			pixels, err = nil, fmt.Errorf("%w: %dx%d: %v", ErrInvalidSize, width, height, r)
		}
	}()
	return make([]Color, width*height), nil
}

// Clone returns a deep copy of the canvas. Use it to blit a canvas onto
// itself, which Blit does not support directly.
func (c *Canvas) Clone() *Canvas {
	return &Canvas{
		width:  c.width,
		height: c.height,
		pixels: append([]Color(nil), c.pixels...),
	}
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.height
}

// Pixels returns the live pixel buffer. Writes through the returned
// slice are visible on the canvas.
func (c *Canvas) Pixels() []Color {
	return c.pixels
}

// offset returns the buffer index of (x, y) and whether it is inside the
// canvas. Every write goes through this check.
func (c *Canvas) offset(x, y int) (int, bool) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return 0, false
	}
	return x + y*c.width, true
}

// Pixel sets the color at (x, y). Coordinates outside the canvas are
// silently ignored.
func (c *Canvas) Pixel(x, y int, col Color) {
	if i, ok := c.offset(x, y); ok {
		c.pixels[i] = col
	}
}

// PixelV is Pixel taking a point.
func (c *Canvas) PixelV(pos V2u, col Color) {
	c.Pixel(int(pos.X), int(pos.Y), col)
}

// PixelAt returns the color at (x, y), or Transparent outside the canvas.
func (c *Canvas) PixelAt(x, y int) Color {
	if i, ok := c.offset(x, y); ok {
		return c.pixels[i]
	}
	return Transparent
}

// Clear fills the entire canvas with a color.
func (c *Canvas) Clear(col Color) {
	for i := range c.pixels {
		c.pixels[i] = col
	}
}

// ToNRGBA copies the canvas into a standard non-premultiplied image.
func (c *Canvas) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.width, c.height))
	for i, p := range c.pixels {
		img.Pix[i*4+0] = p.R()
		img.Pix[i*4+1] = p.G()
		img.Pix[i*4+2] = p.B()
		img.Pix[i*4+3] = p.A()
	}
	return img
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.PixelAt(x, y)
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return Model
}

// Set implements the draw.Image interface.
func (c *Canvas) Set(x, y int, col color.Color) {
	c.Pixel(x, y, FromColor(col))
}
