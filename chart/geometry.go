package chart

import "math"

// scale maps series indices and values into surface pixels. Values are kept
// halved so the range of any two finite values stays finite.
type scale struct {
	size           Size
	n              int
	halfMin, halfR float64
}

func newScale(size Size, series Series) scale {
	min, max := series.Bounds()
	return scale{size: size, n: len(series), halfMin: min / 2, halfR: max/2 - min/2}
}

// x spreads indices evenly across the full width. A lone point sits on the
// y axis.
func (s scale) x(i int) float64 {
	if s.n < 2 {
		return 0
	}
	return float64(i) * s.size.Width / float64(s.n-1)
}

// y puts the minimum on the bottom edge and the maximum on the top edge.
// A flat series has no vertical scale and is drawn at mid height. +Inf is
// drawn on the top edge, NaN and -Inf on the bottom edge.
func (s scale) y(v float64) float64 {
	if s.halfR == 0 {
		return s.size.Height / 2
	}
	switch {
	case math.IsInf(v, 1):
		return 0
	case math.IsNaN(v), math.IsInf(v, -1):
		return s.size.Height
	}
	return s.size.Height - (v/2-s.halfMin)/s.halfR*s.size.Height
}

// Project returns the pixel position of every point of series on a surface
// of the given size.
func Project(size Size, series Series) []Vec {
	sc := newScale(size, series)
	out := make([]Vec, len(series))
	for i, p := range series {
		out[i] = Vec{X: sc.x(i), Y: sc.y(p.Value)}
	}
	return out
}

// BuildPath returns the curve through series: one cubic segment per pair of
// neighbours, both control points on the horizontal midpoint of the pair,
// pinned to the y of the segment start and end respectively. Fewer than two
// points yield nil.
func BuildPath(size Size, series Series) *Path {
	if len(series) < 2 {
		return nil
	}
	pts := Project(size, series)
	p := &Path{Start: pts[0]}
	for i := 1; i < len(pts); i++ {
		from, to := pts[i-1], pts[i]
		mid := (from.X + to.X) / 2
		p.CubicTo(Vec{X: mid, Y: from.Y}, Vec{X: mid, Y: to.Y}, to)
	}
	return p
}

// revealRect is the part of the surface uncovered at the given animation
// progress.
func revealRect(size Size, progress float64) Rect {
	return Rect{Max: Vec{X: size.Width * clamp01(progress), Y: size.Height}}
}

func clamp01(v float64) float64 {
	switch {
	case v != v, v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
