package scene

import (
	"fmt"
	"path/filepath"

	"github.com/gogpu/cub"
	"github.com/gogpu/cub/imageio"
)

// Loader loads the image named by a blit operation.
type Loader func(path string) (*cub.Canvas, error)

// Renderer draws scenes onto canvases.
type Renderer struct {
	load   Loader
	images map[string]*cub.Canvas
}

// NewRenderer returns a renderer that loads blit sources with load.
// A nil load uses imageio.Load.
func NewRenderer(load Loader) *Renderer {
	if load == nil {
		load = imageio.Load
	}
	return &Renderer{load: load, images: make(map[string]*cub.Canvas)}
}

// Render creates a canvas for s and draws every operation on it.
func (r *Renderer) Render(s *Scene) (*cub.Canvas, error) {
	bg, err := cub.ParseColor(s.Background)
	if err != nil {
		return nil, fmt.Errorf("%w: background: %w", ErrInvalidScene, err)
	}
	c, err := cub.NewCanvas(s.Width, s.Height, bg)
	if err != nil {
		return nil, err
	}
	if err := r.Apply(c, s); err != nil {
		return nil, err
	}
	return c, nil
}

// Apply draws the operations of s onto an existing canvas, in order.
// It stops at the first failing operation; earlier operations stay drawn.
func (r *Renderer) Apply(c *cub.Canvas, s *Scene) error {
	log := cub.Logger()
	for i := range s.Ops {
		op := &s.Ops[i]
		if err := r.apply(c, s, op); err != nil {
			log.Warn("scene op failed", "index", i, "op", op.Op, "err", err)
			return fmt.Errorf("op %d (%s): %w", i, op.Op, err)
		}
	}
	log.Debug("scene applied", "ops", len(s.Ops), "width", c.Width(), "height", c.Height())
	return nil
}

func (r *Renderer) apply(c *cub.Canvas, s *Scene, op *Op) error {
	if err := op.validate(); err != nil {
		return err
	}
	col, err := op.color(s.Background)
	if err != nil {
		return err
	}

	switch op.Op {
	case "clear":
		c.Clear(col)
	case "pixel":
		for _, p := range op.Points {
			c.Pixel(p[0], p[1], col)
		}
	case "line":
		for i := 1; i < len(op.Points); i++ {
			a, b := op.Points[i-1], op.Points[i]
			c.Line(a[0], a[1], b[0], b[1], col)
		}
	case "triangle":
		p := op.Points
		if op.Fill {
			c.Triangle(p[0][0], p[0][1], p[1][0], p[1][1], p[2][0], p[2][1], col)
		} else {
			c.WireframeTriangle(p[0][0], p[0][1], p[1][0], p[1][1], p[2][0], p[2][1], col)
		}
	case "rect":
		c.RectR(op.rect(), col)
	case "blit":
		src, err := r.image(s.Dir, op.Image)
		if err != nil {
			return err
		}
		if len(op.Rect) == 4 {
			c.BlitR(src, op.rect())
			return nil
		}
		x, y := 0, 0
		if len(op.At) == 2 {
			x, y = op.At[0], op.At[1]
		}
		sx, sy := 1.0, 1.0
		if len(op.Scale) == 2 {
			sx, sy = op.Scale[0], op.Scale[1]
		}
		c.Blit(src, x, y, sx, sy)
	case "blend":
		mode, err := cub.ParseBlendMode(op.Mode)
		if err != nil {
			return err
		}
		c.BlendFill(mode, col)
	}
	return nil
}

// image loads a blit source once per renderer.
func (r *Renderer) image(dir, name string) (*cub.Canvas, error) {
	path := name
	if dir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	if img, ok := r.images[path]; ok {
		return img, nil
	}
	img, err := r.load(path)
	if err != nil {
		return nil, err
	}
	r.images[path] = img
	return img, nil
}

// color resolves the op's color. A clear without one uses the background.
func (op *Op) color(background string) (cub.Color, error) {
	name := op.Color
	switch {
	case name != "":
	case op.Op != "clear":
		name = DefaultColor
	case background != "":
		name = background
	default:
		name = DefaultBackground
	}
	col, err := cub.ParseColor(name)
	if err != nil {
		return cub.Transparent, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	return col, nil
}

func (op *Op) rect() cub.Rect {
	return cub.Rect{X: op.Rect[0], Y: op.Rect[1], W: op.Rect[2], H: op.Rect[3]}
}
