// Package cub is a minimal software rasterizer.
//
// # Overview
//
// A Canvas is an in-memory buffer of packed RGBA colors. Drawing calls
// mutate it immediately: there is no scene graph, no deferred rendering
// and no GPU.
//
//	c, err := cub.NewCanvas(600, 600, cub.Black)
//	if err != nil {
//	    return err
//	}
//	c.Line(0, 0, 300, 300, cub.White)
//	c.Triangle(100, 100, 200, 200, 100, 200, cub.Red)
//	c.Rect(100, 100, 128, 128, cub.Green)
//
// # Primitives
//
//   - Pixel, Clear
//   - Line (Bresenham, integer only)
//   - WireframeTriangle, Triangle (scanline fill)
//   - Rect
//   - Blit (nearest-neighbor scaled copy between canvases)
//
// Every primitive writes through Pixel, which drops coordinates outside the
// canvas. Nothing is clipped or reported; off-canvas geometry just draws
// fewer pixels.
//
// Each primitive has variants taking V2u, V2f or Rect arguments. They only
// convert arguments and behave exactly like the flat versions.
//
// # Colors
//
// Color packs four 8-bit channels as 0xRRGGBBAA. Alpha is stored but the
// primitives never composite: they overwrite. Multiply, Screen, Overlay,
// HardLight and SoftLight compute blended colors explicitly, treating alpha
// like any other channel. Blend covers those and the other separable modes
// by BlendMode, and Canvas.BlendFill applies one to every pixel.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Concurrency
//
// A Canvas has no internal locking. Different canvases may be drawn on
// concurrently; one canvas must not be.
//
// Loading and saving image files lives in the imageio package.
package cub

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
