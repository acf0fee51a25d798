// Package scene describes a canvas and an ordered list of drawing
// operations in YAML, and renders it with cub.
//
//	width: 600
//	height: 600
//	background: black
//	ops:
//	  - {op: line, points: [[0, 0], [300, 300]], color: white}
//	  - {op: triangle, points: [[100, 100], [200, 200], [100, 200]], fill: true, color: "#ff0000"}
//	  - {op: rect, rect: [100, 100, 128, 128], color: green}
//	  - {op: blit, image: pog.png, at: [10, 10], scale: [2, 2]}
//	  - {op: blend, mode: multiply, color: "#ff8080"}
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/cub"
)

// Scene errors.
var (
	// ErrInvalidScene is returned when a scene document is malformed.
	ErrInvalidScene = errors.New("scene: invalid scene")

	// ErrUnknownOp is returned for an operation name the renderer does not know.
	ErrUnknownOp = errors.New("scene: unknown operation")
)

// Defaults for fields a scene leaves out.
const (
	DefaultWidth      = 1280
	DefaultHeight     = 720
	DefaultBackground = "black"
	DefaultColor      = "white"
)

// Scene is a canvas description plus the operations drawn on it, in order.
type Scene struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background"`
	Ops        []Op   `yaml:"ops"`

	// Dir resolves relative image paths. Set by LoadFile.
	Dir string `yaml:"-"`
}

// Op is one drawing operation. Which fields apply depends on Op:
//
//   - clear:    color
//   - pixel:    points (one or more)
//   - line:     points (two or more, drawn as a polyline)
//   - triangle: points (exactly three), fill
//   - rect:     rect [x, y, w, h]
//   - blit:     image, and either at [x, y] with optional scale [sx, sy],
//     or rect [x, y, w, h] to stretch the image over
//   - blend:    mode, color; blends color onto every pixel
type Op struct {
	Op     string    `yaml:"op"`
	Color  string    `yaml:"color,omitempty"`
	Points [][]int   `yaml:"points,omitempty"`
	Fill   bool      `yaml:"fill,omitempty"`
	Rect   []float32 `yaml:"rect,omitempty"`
	Image  string    `yaml:"image,omitempty"`
	At     []int     `yaml:"at,omitempty"`
	Scale  []float64 `yaml:"scale,omitempty"`
	Mode   string    `yaml:"mode,omitempty"`
}

// Parse decodes a YAML scene. Unknown fields are rejected.
func Parse(data []byte) (*Scene, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scene
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile reads and parses a YAML scene file. Relative image paths in the
// scene resolve against the file's directory.
func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("scene: read file: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.Dir = filepath.Dir(path)
	return s, nil
}

// Marshal encodes the scene as YAML.
func (s *Scene) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

func (s *Scene) applyDefaults() {
	if s.Width == 0 {
		s.Width = DefaultWidth
	}
	if s.Height == 0 {
		s.Height = DefaultHeight
	}
	if s.Background == "" {
		s.Background = DefaultBackground
	}
}

// Validate checks sizes, colors and per-operation arguments.
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidScene, s.Width, s.Height)
	}
	if _, err := cub.ParseColor(s.Background); err != nil {
		return fmt.Errorf("%w: background: %w", ErrInvalidScene, err)
	}
	for i := range s.Ops {
		if err := s.Ops[i].validate(); err != nil {
			return fmt.Errorf("op %d (%s): %w", i, s.Ops[i].Op, err)
		}
	}
	return nil
}

func (op *Op) validate() error {
	if op.Color != "" {
		if _, err := cub.ParseColor(op.Color); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidScene, err)
		}
	}
	for _, p := range op.Points {
		if len(p) != 2 {
			return fmt.Errorf("%w: point %v needs 2 coordinates", ErrInvalidScene, p)
		}
	}

	switch op.Op {
	case "clear":
	case "pixel":
		if len(op.Points) == 0 {
			return fmt.Errorf("%w: pixel needs at least one point", ErrInvalidScene)
		}
	case "line":
		if len(op.Points) < 2 {
			return fmt.Errorf("%w: line needs at least two points", ErrInvalidScene)
		}
	case "triangle":
		if len(op.Points) != 3 {
			return fmt.Errorf("%w: triangle needs three points, got %d", ErrInvalidScene, len(op.Points))
		}
	case "rect":
		if len(op.Rect) != 4 {
			return fmt.Errorf("%w: rect needs [x, y, w, h]", ErrInvalidScene)
		}
	case "blit":
		if op.Image == "" {
			return fmt.Errorf("%w: blit needs an image", ErrInvalidScene)
		}
		if len(op.Rect) != 0 && len(op.Rect) != 4 {
			return fmt.Errorf("%w: blit rect needs [x, y, w, h]", ErrInvalidScene)
		}
		if len(op.At) != 0 && len(op.At) != 2 {
			return fmt.Errorf("%w: blit at needs [x, y]", ErrInvalidScene)
		}
		if len(op.Scale) != 0 && len(op.Scale) != 2 {
			return fmt.Errorf("%w: blit scale needs [sx, sy]", ErrInvalidScene)
		}
		for _, v := range op.Scale {
			if v <= 0 {
				return fmt.Errorf("%w: blit scale must be positive", ErrInvalidScene)
			}
		}
	case "blend":
		if _, err := cub.ParseBlendMode(op.Mode); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidScene, err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, op.Op)
	}
	return nil
}
