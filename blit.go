package cub

import "math"

// Blit copies src into c with its top-left corner at (x, y), scaled by
// (scaleX, scaleY) using nearest-neighbor sampling.
//
// The destination span is floor(src.Width()*scaleX) by
// floor(src.Height()*scaleY). Destination pixel (x+dx, y+dy) takes source
// pixel (floor(dx/scaleX), floor(dy/scaleY)). Colors are copied verbatim,
// alpha included; nothing is blended.
//
// Scales must be positive. src and c must be different canvases.
func (c *Canvas) Blit(src *Canvas, x, y int, scaleX, scaleY float64) {
	if src == nil {
		return
	}
	c.blit(src, x, y, span(src.width, scaleX), span(src.height, scaleY), scaleX, scaleY)
}

// BlitV is Blit taking a position and a scale.
func (c *Canvas) BlitV(src *Canvas, pos V2u, scale V2f) {
	c.Blit(src, int(pos.X), int(pos.Y), float64(scale.X), float64(scale.Y))
}

// BlitR stretches src over the destination rectangle r. The rectangle's
// position and size are truncated to whole pixels; the scale is the
// truncated size divided by the source size. Unlike Blit(src, x, y, w, h),
// r.W and r.H are a size in pixels, not scale factors.
func (c *Canvas) BlitR(src *Canvas, r Rect) {
	if src == nil {
		return
	}
	w, h := span(1, float64(r.W)), span(1, float64(r.H))
	if w <= 0 || h <= 0 {
		return
	}
	scaleX := float64(w) / float64(src.width)
	scaleY := float64(h) / float64(src.height)
	c.blit(src, int(r.X), int(r.Y), w, h, scaleX, scaleY)
}

// span returns floor(n*scale), or 0 for a non-positive or NaN product.
// Spans are capped at MaxInt32.
func span(n int, scale float64) int {
	s := float64(n) * scale
	if !(s > 0) {
		return 0
	}
	if s >= math.MaxInt32 {
		return math.MaxInt32
	}
	return int(s)
}

// blit walks only the part of the span that lands on c.
func (c *Canvas) blit(src *Canvas, x, y, spanW, spanH int, scaleX, scaleY float64) {
	if x >= c.width || y >= c.height || x <= -spanW || y <= -spanH {
		return
	}
	dx0, dx1 := max(0, -x), min(spanW, c.width-x)
	dy0, dy1 := max(0, -y), min(spanH, c.height-y)

	for dy := dy0; dy < dy1; dy++ {
		srcY := int(float64(dy) / scaleY)
		if srcY < 0 || srcY >= src.height {
			continue
		}
		row := src.pixels[srcY*src.width : (srcY+1)*src.width]
		for dx := dx0; dx < dx1; dx++ {
			srcX := int(float64(dx) / scaleX)
			if srcX < 0 || srcX >= src.width {
				continue
			}
			c.Pixel(x+dx, y+dy, row[srcX])
		}
	}
}
