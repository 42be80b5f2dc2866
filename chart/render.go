package chart

import (
	"math"
	"strconv"
)

// Label and tick placement relative to the plot area, in units of
// Config.Scale.
const (
	yLabelOffsetX  = -19
	xLabelOffsetX  = -8
	xLabelOffsetY  = 4
	labelHalfLine  = 6
	tickStubStart  = 5
	tickStubEnd    = 10
	tickLineWidth  = 1
	xTickStubBelow = 10 // raw pixels below the x axis
)

// Render draws one frame of the chart onto s. size is the plot area; labels
// are placed outside of it (left of x=0 and below y=height), so hosts leave
// some padding around it.
//
// yAxisLabels and series are laid out independently and need not have the
// same length. progress in [0,1] reveals the curve from left to right.
func Render(s Surface, size Size, series Series, yAxisLabels []float64, cfg Config, progress float64) {
	if !(size.Width > 0) || !(size.Height > 0) {
		return
	}
	cfg = cfg.normalized()

	drawYTicks(s, size, yAxisLabels, cfg)
	drawXTicks(s, size, series, cfg)

	s.Line(Vec{}, Vec{Y: size.Height}, cfg.AxisColor, cfg.AxisWidth)
	s.Line(Vec{Y: size.Height}, Vec{X: size.Width, Y: size.Height}, cfg.AxisColor, cfg.AxisWidth)

	path := BuildPath(size, series)
	if path == nil {
		return
	}
	clip := revealRect(size, progress)
	if clip.Empty() {
		return
	}
	s.PushClip(clip)
	s.StrokePath(path, cfg.StrokeColor, cfg.StrokeWidth)
	if len(cfg.FillGradient) > 0 {
		area := path.Clone()
		area.LineTo(Vec{X: size.Width, Y: size.Height})
		area.LineTo(Vec{Y: size.Height})
		area.Close()
		s.FillPath(area, Gradient{Stops: cfg.FillGradient, To: Vec{Y: size.Height}})
	}
	s.PopClip()
}

func drawYTicks(s Surface, size Size, labels []float64, cfg Config) {
	k := cfg.Scale
	style := labelStyle(cfg)
	step := 0.0
	if len(labels) > 1 {
		step = size.Height / float64(len(labels)-1)
	}
	for i, v := range labels {
		y := size.Height - float64(i)*step
		s.Text(axisLabel(v), Vec{X: yLabelOffsetX * k, Y: y - labelHalfLine*k}, style)
		from, to := Vec{X: tickStubStart * k, Y: y}, Vec{X: tickStubEnd * k, Y: y}
		if cfg.ShowGrid {
			from.X, to.X = 0, size.Width
		}
		s.Line(from, to, cfg.TickColor, tickLineWidth*k)
	}
}

func drawXTicks(s Surface, size Size, series Series, cfg Config) {
	k := cfg.Scale
	style := labelStyle(cfg)
	sc := newScale(size, series)
	for i, p := range series {
		x := sc.x(i)
		s.Text(p.Label, Vec{X: x + xLabelOffsetX*k, Y: size.Height + xLabelOffsetY*k}, style)
		from, to := Vec{X: x, Y: size.Height - tickStubStart*k}, Vec{X: x, Y: size.Height + xTickStubBelow}
		if cfg.ShowGrid {
			from.Y, to.Y = 0, size.Height
		}
		s.Line(from, to, cfg.TickColor, tickLineWidth*k)
	}
}

func labelStyle(cfg Config) TextStyle {
	return TextStyle{Color: cfg.Label.Color, Size: cfg.Label.Size * cfg.Scale}
}

// axisLabel prints v truncated toward zero.
func axisLabel(v float64) string {
	if math.IsNaN(v) {
		return "0"
	}
	t := math.Trunc(v)
	if t == 0 {
		t = 0 // drop negative zero
	}
	return strconv.FormatFloat(t, 'f', 0, 64)
}
