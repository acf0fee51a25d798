package cub

// V2i is a signed integer point.
type V2i struct {
	X, Y int32
}

// V2u is an unsigned integer point.
type V2u struct {
	X, Y uint32
}

// V2f is a float point.
type V2f struct {
	X, Y float32
}

// Rect is an axis-aligned rectangle with top-left corner (X, Y) and size (W, H).
type Rect struct {
	X, Y, W, H float32
}

// Pu is a convenience function to create a V2u.
func Pu(x, y uint32) V2u {
	return V2u{X: x, Y: y}
}

// Pf is a convenience function to create a V2f.
func Pf(x, y float32) V2f {
	return V2f{X: x, Y: y}
}

// U converts p to an unsigned point. Negative coordinates wrap, so they
// land outside any canvas and are rejected by the bounds check.
func (p V2i) U() V2u {
	return V2u{X: uint32(p.X), Y: uint32(p.Y)}
}

// I converts p to a signed point.
func (p V2u) I() V2i {
	return V2i{X: int32(p.X), Y: int32(p.Y)}
}

// F converts p to a float point.
func (p V2u) F() V2f {
	return V2f{X: float32(p.X), Y: float32(p.Y)}
}

// Add returns the sum of two points.
func (p V2i) Add(q V2i) V2i {
	return V2i{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points.
func (p V2i) Sub(q V2i) V2i {
	return V2i{X: p.X - q.X, Y: p.Y - q.Y}
}

// Pos returns the top-left corner of r.
func (r Rect) Pos() V2f {
	return V2f{X: r.X, Y: r.Y}
}

// Size returns the size of r.
func (r Rect) Size() V2f {
	return V2f{X: r.W, Y: r.H}
}

// RectFrom builds a Rect from a position and a size.
func RectFrom(pos, size V2f) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
}
