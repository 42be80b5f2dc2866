// Package chart lays out and draws an animated Bezier line chart onto an
// abstract drawing Surface.
//
// Render is a pure function of its inputs: hosts call it again whenever the
// surface size, the data, the configuration or the animation progress
// changes. Nothing is cached between calls.
package chart

import (
	"image/color"
	"math"
)

// Point is one labeled sample.
type Point struct {
	Label string  `yaml:"label"`
	Value float64 `yaml:"value"`
}

// Series is an ordered list of points. The order defines both the x-axis
// order and the interpolation order of the curve.
type Series []Point

// Bounds returns the smallest and largest finite value in the series. NaN
// and infinite values are skipped. A series without finite values reports
// (0, 0).
func (s Series) Bounds() (min, max float64) {
	found := false
	for _, p := range s {
		if !finite(p.Value) {
			continue
		}
		if !found {
			min, max, found = p.Value, p.Value, true
			continue
		}
		min = math.Min(min, p.Value)
		max = math.Max(max, p.Value)
	}
	return min, max
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Size is the pixel size of the drawing surface.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Vec is a position in surface pixels, origin top-left, y growing downward.
type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Min Vec `yaml:"min"`
	Max Vec `yaml:"max"`
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return !(r.Max.X > r.Min.X) || !(r.Max.Y > r.Min.Y)
}

// TextStyle describes how axis labels are drawn.
type TextStyle struct {
	Color color.Color
	Size  float64
}

// Config holds the per-render drawing options.
type Config struct {
	StrokeWidth  float64
	StrokeColor  color.Color
	FillGradient []color.Color // top to bottom
	ShowGrid     bool
	AxisColor    color.Color
	AxisWidth    float64 // 0 uses StrokeWidth
	TickColor    color.Color
	Label        TextStyle
	// Scale converts the fixed label offsets and tick stub lengths into
	// pixels, e.g. the device pixel ratio. 0 means 1.
	Scale float64
}

var lightGray = color.NRGBA{R: 0xd3, G: 0xd3, B: 0xd3, A: 0xff}

// DefaultConfig returns the stock look: a green 4px curve over a green to
// transparent fill, light gray ticks and labels, no visible axes.
func DefaultConfig() Config {
	green := color.NRGBA{G: 0xff, A: 0xff}
	return Config{
		StrokeWidth:  4,
		StrokeColor:  green,
		FillGradient: []color.Color{green, color.Transparent},
		AxisColor:    color.Transparent,
		TickColor:    lightGray,
		Label:        TextStyle{Color: lightGray, Size: 12},
		Scale:        1,
	}
}

func (c Config) normalized() Config {
	if c.StrokeColor == nil {
		c.StrokeColor = color.Transparent
	}
	if c.AxisColor == nil {
		c.AxisColor = color.Transparent
	}
	if c.TickColor == nil {
		c.TickColor = color.Transparent
	}
	if c.Label.Color == nil {
		c.Label.Color = color.Transparent
	}
	if !(c.StrokeWidth > 0) {
		c.StrokeWidth = 0
	}
	if !(c.AxisWidth > 0) {
		c.AxisWidth = c.StrokeWidth
	}
	if !(c.Scale > 0) || math.IsInf(c.Scale, 0) {
		c.Scale = 1
	}
	return c
}
