package scene

import (
	"fmt"
	"sort"
)

// examples are the stock demo scenes. Each draws on a 600x600 black canvas
// unless it says otherwise.
var examples = map[string]func(image string) *Scene{
	"blank": func(string) *Scene {
		return &Scene{Width: 600, Height: 600, Background: "black"}
	},
	"line": func(string) *Scene {
		return &Scene{Width: 600, Height: 600, Background: "black", Ops: []Op{
			{Op: "line", Points: [][]int{{0, 0}, {300, 300}}, Color: "white"},
		}}
	},
	"triangles": func(string) *Scene {
		return &Scene{Width: 600, Height: 600, Background: "black", Ops: []Op{
			{Op: "triangle", Points: [][]int{{100, 100}, {200, 200}, {100, 200}}, Color: "white"},
		}}
	},
	"rects": func(string) *Scene {
		return &Scene{Width: 600, Height: 600, Background: "black", Ops: []Op{
			{Op: "rect", Rect: []float32{100, 100, 128, 128}, Color: "green"},
		}}
	},
	"blit": func(image string) *Scene {
		return &Scene{Width: 1280, Height: 720, Background: "red", Ops: []Op{
			{Op: "blit", Image: image, At: []int{100, 100}, Scale: []float64{0.5, 0.5}},
		}}
	},
}

// Example returns a stock scene by name. image is the blit source for
// scenes that need one and is ignored otherwise.
func Example(name, image string) (*Scene, error) {
	build, ok := examples[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown example %q", ErrInvalidScene, name)
	}
	s := build(image)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Examples lists the stock scene names in sorted order.
func Examples() []string {
	names := make([]string, 0, len(examples))
	for name := range examples {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
