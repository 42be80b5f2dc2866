package chart

import "image/color"

// SegmentKind tells how a path segment reaches its end point.
type SegmentKind uint8

const (
	CubicTo SegmentKind = iota
	LineTo
)

func (k SegmentKind) String() string {
	switch k {
	case CubicTo:
		return "cubic"
	case LineTo:
		return "line"
	default:
		return "unknown"
	}
}

// MarshalYAML writes the kind by name.
func (k SegmentKind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// Segment is one piece of a Path. C1 and C2 are only used by CubicTo.
type Segment struct {
	Kind SegmentKind `yaml:"kind"`
	C1   Vec         `yaml:"c1,omitempty"`
	C2   Vec         `yaml:"c2,omitempty"`
	To   Vec         `yaml:"to"`
}

// Path is an open or closed outline starting at Start.
type Path struct {
	Start    Vec       `yaml:"start"`
	Segments []Segment `yaml:"segments"`
	Closed   bool      `yaml:"closed,omitempty"`
}

func (p *Path) CubicTo(c1, c2, to Vec) {
	p.Segments = append(p.Segments, Segment{Kind: CubicTo, C1: c1, C2: c2, To: to})
}

func (p *Path) LineTo(to Vec) {
	p.Segments = append(p.Segments, Segment{Kind: LineTo, To: to})
}

func (p *Path) Close() {
	p.Closed = true
}

// Clone returns a deep copy, so the copy can be extended without touching p.
func (p *Path) Clone() *Path {
	if p == nil {
		return nil
	}
	c := &Path{Start: p.Start, Closed: p.Closed}
	c.Segments = append([]Segment(nil), p.Segments...)
	return c
}

// Gradient is a linear color blend from From to To with evenly spaced stops.
type Gradient struct {
	Stops    []color.Color
	From, To Vec
}
