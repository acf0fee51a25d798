// Package imageio loads and saves cub canvases.
//
// Decoding supports PNG, JPEG and GIF from the standard library and BMP,
// TIFF and WebP from golang.org/x/image. Decoded pixels are repacked into
// cub's RGBA layout. Every decoding failure wraps ErrDecodeFailed, so callers
// never receive a partially filled canvas.
//
// Encoding supports PNG, BMP, TIFF, plain-text PPM (P3) and single-page
// PDF. PPM drops the alpha channel.
package imageio
