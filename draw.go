package cub

import "math/bits"

// Line draws a straight line from (x0, y0) to (x1, y1), both endpoints
// included, using integer Bresenham stepping.
//
// Lines steeper than 45 degrees are walked along y so they have no gaps.
// The pixel set does not depend on the order of the endpoints.
func (c *Canvas) Line(x0, y0, x1, y1 int, col Color) {
	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	derror2 := abs(y1-y0) * 2
	ystep := 1
	if y1 < y0 {
		ystep = -1
	}

	// The primary axis only increases, so nothing outside [0, limit) can land.
	limit := c.width
	if steep {
		limit = c.height
	}
	if x1 < 0 || x0 >= limit {
		return
	}

	x, y, error2 := x0, y0, 0
	if x0 < 0 {
		steps, e := advance(-x0, dx, derror2/2)
		x, y, error2 = 0, y0+steps*ystep, e
	}
	for ; x <= x1 && x < limit; x++ {
		if steep {
			c.Pixel(y, x, col)
		} else {
			c.Pixel(x, y, col)
		}
		error2 += derror2
		if error2 > dx {
			y += ystep
			error2 -= dx * 2
		}
	}
}

// advance returns how many secondary steps Line takes and its error term
// after k primary steps, without walking them. dx > 0, 0 <= dy <= dx.
//
// The loop keeps error2 in (-dx, dx], which fixes the step count at
// ceil((2*k*dy - dx) / (2*dx)). The product may need more than 64 bits.
func advance(k, dx, dy int) (steps, error2 int) {
	hi, lo := bits.Mul64(uint64(2*k), uint64(dy))
	lo, carry := bits.Add64(lo, uint64(dx-1), 0)
	q, _ := bits.Div64(hi+carry, lo, uint64(2*dx))
	e := uint64(2*k)*uint64(dy) - uint64(2*dx)*q
	return int(q), int(int64(e))
}

// LineV is Line taking points.
func (c *Canvas) LineV(begin, end V2u, col Color) {
	c.Line(int(begin.X), int(begin.Y), int(end.X), int(end.Y), col)
}

// WireframeTriangle draws the edges v0-v1, v1-v2 and v2-v0.
func (c *Canvas) WireframeTriangle(x0, y0, x1, y1, x2, y2 int, col Color) {
	c.Line(x0, y0, x1, y1, col)
	c.Line(x1, y1, x2, y2, col)
	c.Line(x2, y2, x0, y0, col)
}

// WireframeTriangleV is WireframeTriangle taking points.
func (c *Canvas) WireframeTriangleV(p0, p1, p2 V2u, col Color) {
	c.LineV(p0, p1, col)
	c.LineV(p1, p2, col)
	c.LineV(p2, p0, col)
}

// Triangle fills a triangle with horizontal spans.
//
// Vertices are sorted by y. The upper half is spanned between the long
// edge (top to bottom) and the top-middle edge, the lower half between the
// long edge and the middle-bottom edge. Spans are drawn with Line.
func (c *Canvas) Triangle(x0, y0, x1, y1, x2, y2 int, col Color) {
	if y1 < y0 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	if y2 < y0 {
		x0, y0, x2, y2 = x2, y2, x0, y0
	}
	if y2 < y1 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	// Rows outside the canvas draw nothing; skip them.
	top, bottom := max(y0, 0), min(y2, c.height-1)

	for y := top; y <= min(y1, bottom); y++ {
		xBegin := interpolateX(y0, x0, y2, x2, y)
		xEnd := interpolateX(y0, x0, y1, x1, y)
		c.Line(xBegin, y, xEnd, y, col)
	}
	for y := max(y1, top); y <= bottom; y++ {
		xBegin := interpolateX(y0, x0, y2, x2, y)
		xEnd := interpolateX(y1, x1, y2, x2, y)
		c.Line(xBegin, y, xEnd, y, col)
	}
}

// TriangleV is Triangle taking points.
func (c *Canvas) TriangleV(p0, p1, p2 V2u, col Color) {
	c.Triangle(int(p0.X), int(p0.Y), int(p1.X), int(p1.Y), int(p2.X), int(p2.Y), col)
}

// interpolateX returns x at row y on the edge (x0, y0)-(x1, y1).
// Horizontal edges return x0.
func interpolateX(y0, x0, y1, x1, y int) int {
	if y1 == y0 {
		return x0
	}
	dx := int64(x1 - x0)
	dy := int64(y1 - y0)
	return x0 + int(int64(y-y0)*dx/dy)
}

// Rect fills the rectangle with corner (x, y) and size (w, h).
//
// Both edges are inclusive: rows y..y+h and columns x..x+w are drawn, so
// the filled area is (w+1) x (h+1) and a zero-size rect is one pixel.
// Negative sizes draw nothing.
func (c *Canvas) Rect(x, y, w, h int, col Color) {
	if w < 0 || h < 0 {
		return
	}
	for row := max(y, 0); row <= min(y+h, c.height-1); row++ {
		c.Line(x, row, x+w, row, col)
	}
}

// RectV is Rect taking a position and size. Coordinates are truncated.
func (c *Canvas) RectV(pos, size V2f, col Color) {
	c.Rect(int(pos.X), int(pos.Y), int(size.X), int(size.Y), col)
}

// RectR is Rect taking a Rect. Coordinates are truncated.
func (c *Canvas) RectR(r Rect, col Color) {
	c.RectV(r.Pos(), r.Size(), col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
