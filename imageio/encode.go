package imageio

import (
	"bufio"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gogpu/cub"
)

// Format is an output file format.
type Format string

// Output formats.
const (
	FormatPNG  Format = "png"
	FormatPPM  Format = "ppm"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
	FormatPDF  Format = "pdf"
)

// FormatFromPath picks the output format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".ppm":
		return FormatPPM, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	case ".pdf":
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Encode writes c to w in the given format.
func Encode(w io.Writer, c *cub.Canvas, f Format) error {
	switch f {
	case FormatPNG:
		return EncodePNG(w, c)
	case FormatPPM:
		return EncodePPM(w, c)
	case FormatBMP:
		return EncodeBMP(w, c)
	case FormatTIFF:
		return EncodeTIFF(w, c)
	case FormatPDF:
		return EncodePDF(w, c)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Save writes c to path, choosing the format from the extension.
func Save(c *cub.Canvas, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}

	if err := Encode(f, c, format); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("imageio: close file: %w", err)
	}

	cub.Logger().Debug("image saved",
		"path", path,
		"format", string(format),
		"width", c.Width(),
		"height", c.Height(),
	)
	return nil
}

// EncodePNG encodes c as PNG.
func EncodePNG(w io.Writer, c *cub.Canvas) error {
	if err := png.Encode(w, c.ToNRGBA()); err != nil {
		return fmt.Errorf("imageio: encode PNG: %w", err)
	}
	return nil
}

// EncodeBMP encodes c as BMP.
func EncodeBMP(w io.Writer, c *cub.Canvas) error {
	if err := bmp.Encode(w, c.ToNRGBA()); err != nil {
		return fmt.Errorf("imageio: encode BMP: %w", err)
	}
	return nil
}

// EncodeTIFF encodes c as deflate-compressed TIFF.
func EncodeTIFF(w io.Writer, c *cub.Canvas) error {
	opts := &tiff.Options{Compression: tiff.Deflate}
	if err := tiff.Encode(w, c.ToNRGBA(), opts); err != nil {
		return fmt.Errorf("imageio: encode TIFF: %w", err)
	}
	return nil
}

// EncodePPM encodes c as a plain-text PPM (P3) with maxval 255, one pixel
// per line. Alpha is dropped.
func EncodePPM(w io.Writer, c *cub.Canvas) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.Width(), c.Height())
	for _, p := range c.Pixels() {
		fmt.Fprintf(bw, "%d %d %d\n", p.R(), p.G(), p.B())
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("imageio: encode PPM: %w", err)
	}
	return nil
}
