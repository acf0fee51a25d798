package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/gogpu/cub"
)

// I/O errors.
var (
	// ErrDecodeFailed is returned when an image source cannot be turned into a canvas.
	ErrDecodeFailed = errors.New("imageio: decode failed")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("imageio: empty data")

	// ErrUnsupportedFormat is returned when an output format is not supported.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")
)

// Load decodes the image file at path into a canvas.
func Load(path string) (*cub.Canvas, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		cub.Logger().Warn("image open failed", "path", path, "err", err)
		return nil, fmt.Errorf("%w: open file: %w", ErrDecodeFailed, err)
	}
	defer func() { _ = f.Close() }()

	c, err := Decode(f)
	if err != nil {
		cub.Logger().Warn("image decode failed", "path", path, "err", err)
		return nil, err
	}
	return c, nil
}

// DecodeBytes decodes an in-memory image, auto-detecting the format.
func DecodeBytes(data []byte) (*cub.Canvas, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrDecodeFailed, ErrEmptyData)
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from the given reader, auto-detecting the format.
func Decode(r io.Reader) (*cub.Canvas, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeFailed, err)
	}

	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: %s image has no pixels", ErrDecodeFailed, format)
	}

	c, err := cub.FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeFailed, err)
	}

	cub.Logger().Debug("image decoded",
		"format", format,
		"width", c.Width(),
		"height", c.Height(),
	)
	return c, nil
}
