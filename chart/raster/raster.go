// Package raster draws charts into images with fogleman/gg.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	gochart "github.com/wcharczuk/go-chart/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"bezierchart/chart"
)

// Options controls the image around the plot area.
type Options struct {
	Background color.Color // nil leaves the image transparent
	Padding    float64     // pixels on each side, room for the axis labels
}

// Surface implements chart.Surface on a gg context. Coordinates are shifted
// by Origin so the plot area can sit inside a padded image.
type Surface struct {
	dc     *gg.Context
	origin chart.Vec
	faces  map[float64]font.Face
}

func NewSurface(dc *gg.Context, origin chart.Vec) *Surface {
	return &Surface{dc: dc, origin: origin, faces: make(map[float64]font.Face)}
}

func (s *Surface) Line(from, to chart.Vec, c color.Color, width float64) {
	if width <= 0 {
		return
	}
	s.dc.SetColor(c)
	s.dc.SetLineWidth(width)
	s.dc.DrawLine(from.X+s.origin.X, from.Y+s.origin.Y, to.X+s.origin.X, to.Y+s.origin.Y)
	s.dc.Stroke()
}

func (s *Surface) Text(text string, topLeft chart.Vec, style chart.TextStyle) {
	if text == "" {
		return
	}
	s.dc.SetFontFace(s.face(style.Size))
	s.dc.SetColor(style.Color)
	s.dc.DrawStringAnchored(text, topLeft.X+s.origin.X, topLeft.Y+s.origin.Y, 0, 1)
}

func (s *Surface) PushClip(r chart.Rect) {
	s.dc.Push()
	s.dc.DrawRectangle(r.Min.X+s.origin.X, r.Min.Y+s.origin.Y, r.Max.X-r.Min.X, r.Max.Y-r.Min.Y)
	s.dc.Clip()
}

func (s *Surface) PopClip() {
	s.dc.Pop()
}

func (s *Surface) StrokePath(p *chart.Path, c color.Color, width float64) {
	if width <= 0 || !s.trace(p) {
		return
	}
	s.dc.SetColor(c)
	s.dc.SetLineWidth(width)
	s.dc.Stroke()
}

func (s *Surface) FillPath(p *chart.Path, g chart.Gradient) {
	if len(g.Stops) == 0 || !s.trace(p) {
		return
	}
	if len(g.Stops) == 1 {
		s.dc.SetColor(g.Stops[0])
	} else {
		// gg patterns are sampled in device space, so the gradient is shifted
		// by hand
		grad := gg.NewLinearGradient(
			g.From.X+s.origin.X, g.From.Y+s.origin.Y,
			g.To.X+s.origin.X, g.To.Y+s.origin.Y)
		last := float64(len(g.Stops) - 1)
		for i, c := range g.Stops {
			grad.AddColorStop(float64(i)/last, c)
		}
		s.dc.SetFillStyle(grad)
	}
	s.dc.Fill()
}

func (s *Surface) trace(p *chart.Path) bool {
	if p == nil {
		return false
	}
	o := s.origin
	s.dc.MoveTo(p.Start.X+o.X, p.Start.Y+o.Y)
	for _, seg := range p.Segments {
		switch seg.Kind {
		case chart.CubicTo:
			s.dc.CubicTo(seg.C1.X+o.X, seg.C1.Y+o.Y, seg.C2.X+o.X, seg.C2.Y+o.Y, seg.To.X+o.X, seg.To.Y+o.Y)
		case chart.LineTo:
			s.dc.LineTo(seg.To.X+o.X, seg.To.Y+o.Y)
		}
	}
	if p.Closed {
		s.dc.ClosePath()
	}
	return true
}

// face returns the label face for a pixel size: go-chart's bundled Roboto,
// or the fixed 7x13 bitmap face when it is unavailable.
func (s *Surface) face(size float64) font.Face {
	if f, ok := s.faces[size]; ok {
		return f
	}
	var face font.Face = basicfont.Face7x13
	if size > 0 {
		if ttf, err := gochart.GetDefaultFont(); err == nil {
			face = truetype.NewFace(ttf, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull})
		}
	}
	s.faces[size] = face
	return face
}

// Render draws one frame into a width x height image. The plot area is the
// image minus opts.Padding on every side.
func Render(width, height int, opts Options, series chart.Series, yAxisLabels []float64, cfg chart.Config, progress float64) *image.RGBA {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	dc := gg.NewContext(width, height)
	if opts.Background != nil {
		dc.SetColor(opts.Background)
		dc.Clear()
	}
	plot := chart.Size{
		Width:  float64(width) - 2*opts.Padding,
		Height: float64(height) - 2*opts.Padding,
	}
	chart.Render(NewSurface(dc, chart.Vec{X: opts.Padding, Y: opts.Padding}), plot, series, yAxisLabels, cfg, progress)
	return dc.Image().(*image.RGBA)
}

func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png failed: %w", err)
	}
	return nil
}

// WritePNG encodes img into the file at path, replacing it.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s failed: %w", path, err)
	}
	if err := EncodePNG(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
