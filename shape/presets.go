package shape

import (
	"fmt"
	"sort"

	"areal/geometry"
)

// presetOutline produces the control points for a named preset stamped at
// origin (x, y) with the given overall width and height.
type presetOutline func(x, y, w, h float64) []geometry.Point

// Named preset templates available from the palette. Each is a simple
// polygon in clockwise winding order.
var presets = map[string]presetOutline{
	"l-area": func(x, y, w, h float64) []geometry.Point {
		return []geometry.Point{
			{X: x, Y: y},
			{X: x + w/2, Y: y},
			{X: x + w/2, Y: y + h/2},
			{X: x + w, Y: y + h/2},
			{X: x + w, Y: y + h},
			{X: x, Y: y + h},
		}
	},
	"t-area": func(x, y, w, h float64) []geometry.Point {
		return []geometry.Point{
			{X: x, Y: y},
			{X: x + w, Y: y},
			{X: x + w, Y: y + h/2},
			{X: x + 2*w/3, Y: y + h/2},
			{X: x + 2*w/3, Y: y + h},
			{X: x + w/3, Y: y + h},
			{X: x + w/3, Y: y + h/2},
			{X: x, Y: y + h/2},
		}
	},
	"diamond": func(x, y, w, h float64) []geometry.Point {
		return []geometry.Point{
			{X: x + w/2, Y: y},
			{X: x + w, Y: y + h/2},
			{X: x + w/2, Y: y + h},
			{X: x, Y: y + h/2},
		}
	},
	"hexagon": func(x, y, w, h float64) []geometry.Point {
		return []geometry.Point{
			{X: x + w/4, Y: y},
			{X: x + 3*w/4, Y: y},
			{X: x + w, Y: y + h/2},
			{X: x + 3*w/4, Y: y + h},
			{X: x + w/4, Y: y + h},
			{X: x, Y: y + h/2},
		}
	},
}

// PresetNames returns the available preset names in stable order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewPreset stamps a named preset polygon at the given origin and size.
func NewPreset(name string, x, y, width, height float64) (Shape, error) {
	outline, ok := presets[name]
	if !ok {
		return Shape{}, fmt.Errorf("unknown shape preset: %q", name)
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return Shape{
		Kind:          Preset,
		PresetName:    name,
		ControlPoints: outline(x, y, width, height),
		Width:         width,
		Height:        height,
	}, nil
}
