// Package fynechart wraps the Bezier line chart in a Fyne widget.
package fynechart

import (
	"image"
	"image/color"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"bezierchart/chart"
	"bezierchart/chart/raster"
)

const (
	minChartSize   = 120
	defaultPadding = 24
)

// BezierLineChart shows a series as an animated smooth line chart. The
// reveal animation starts on the first layout of a new renderer, when the
// widget is placed on a canvas, and is dropped when the renderer is
// destroyed. Setters may be called before that; they only redraw a mounted
// chart.
type BezierLineChart struct {
	widget.BaseWidget
	mu sync.RWMutex

	series     chart.Series
	yLabels    []float64
	config     chart.Config
	padding    float32
	background color.Color

	anim      *chart.Animator
	animation *fyne.Animation
	duration  time.Duration
	renderer  *bezierChartRenderer
}

func NewBezierLineChart(series chart.Series, yAxisLabels []float64, cfg chart.Config) *BezierLineChart {
	c := &BezierLineChart{
		series:   series,
		yLabels:  yAxisLabels,
		config:   cfg,
		padding:  defaultPadding,
		anim:     chart.NewAnimator(chart.DefaultDuration),
		duration: chart.DefaultDuration,
	}
	c.ExtendBaseWidget(c)
	return c
}

// SetData replaces the series and the y axis labels and redraws.
func (c *BezierLineChart) SetData(series chart.Series, yAxisLabels []float64) {
	c.mu.Lock()
	c.series = series
	c.yLabels = yAxisLabels
	c.mu.Unlock()
	c.refreshMounted()
}

func (c *BezierLineChart) SetConfig(cfg chart.Config) {
	c.mu.Lock()
	c.config = cfg
	c.mu.Unlock()
	c.refreshMounted()
}

// SetPadding sets the space left around the plot area for labels, in
// canvas units.
func (c *BezierLineChart) SetPadding(p float32) {
	c.mu.Lock()
	c.padding = p
	c.mu.Unlock()
	c.refreshMounted()
}

// SetBackground fills the widget with col before drawing. nil is
// transparent.
func (c *BezierLineChart) SetBackground(col color.Color) {
	c.mu.Lock()
	c.background = col
	c.mu.Unlock()
	c.refreshMounted()
}

// SetDuration changes the length of the next reveal animation.
func (c *BezierLineChart) SetDuration(d time.Duration) {
	c.mu.Lock()
	c.duration = d
	c.mu.Unlock()
}

// SetProgress moves the reveal forward to p.
func (c *BezierLineChart) SetProgress(p float64) {
	c.advance(p)
	c.refreshMounted()
}

func (c *BezierLineChart) Progress() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.anim.Progress()
}

func (c *BezierLineChart) CreateRenderer() fyne.WidgetRenderer {
	r := &bezierChartRenderer{chart: c}
	r.raster = canvas.NewRaster(r.draw)
	c.mu.Lock()
	c.renderer = r
	c.mu.Unlock()
	return r
}

// refreshMounted redraws the chart if it has a renderer. Refreshing an
// unmounted widget would create one.
func (c *BezierLineChart) refreshMounted() {
	c.mu.RLock()
	mounted := c.renderer != nil
	c.mu.RUnlock()
	if mounted {
		c.Refresh()
	}
}

// startAnimation restarts the reveal from 0. Without a running app there is
// nothing to schedule ticks, so the chart is shown complete.
func (c *BezierLineChart) startAnimation(tick func(float32)) {
	c.mu.Lock()
	if c.animation != nil {
		c.animation.Stop()
	}
	c.anim = chart.NewAnimator(c.duration)
	c.anim.Start(time.Now())
	if c.anim.Done() || !hasDriver() {
		c.anim.Set(1)
		c.animation = nil
		c.mu.Unlock()
		return
	}
	c.animation = fyne.NewAnimation(c.duration, tick)
	c.animation.Curve = fyne.AnimationLinear
	a := c.animation
	c.mu.Unlock()
	a.Start()
}

func (c *BezierLineChart) stopAnimation() {
	c.mu.Lock()
	a := c.animation
	c.animation = nil
	c.mu.Unlock()
	if a != nil {
		a.Stop()
	}
}

func hasDriver() bool {
	a := fyne.CurrentApp()
	return a != nil && a.Driver() != nil
}

func (c *BezierLineChart) unmount(r *bezierChartRenderer) {
	c.stopAnimation()
	c.mu.Lock()
	if c.renderer == r {
		c.renderer = nil
	}
	c.mu.Unlock()
}

func (c *BezierLineChart) advance(p float64) {
	c.mu.Lock()
	c.anim.Set(p)
	c.mu.Unlock()
}

type frame struct {
	series     chart.Series
	yLabels    []float64
	config     chart.Config
	padding    float64
	background color.Color
	progress   float64
}

func (c *BezierLineChart) snapshot() frame {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return frame{
		series:     c.series,
		yLabels:    c.yLabels,
		config:     c.config,
		padding:    float64(c.padding),
		background: c.background,
		progress:   c.anim.Progress(),
	}
}

type bezierChartRenderer struct {
	chart   *BezierLineChart
	raster  *canvas.Raster
	started bool
}

// draw renders at the pixel size Fyne asks for; the ratio to the widget
// size scales label offsets, tick stubs and padding.
func (r *bezierChartRenderer) draw(w, h int) image.Image {
	f := r.chart.snapshot()
	scale := 1.0
	if size := r.chart.Size(); size.Width > 0 {
		scale = float64(w) / float64(size.Width)
	}
	cfg := f.config
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	cfg.Scale *= scale
	cfg.StrokeWidth *= scale
	cfg.AxisWidth *= scale
	opts := raster.Options{Background: f.background, Padding: f.padding * scale}
	return raster.Render(w, h, opts, f.series, f.yLabels, cfg, f.progress)
}

// tick refreshes only the raster: the test driver runs it synchronously from
// inside Layout.
func (r *bezierChartRenderer) tick(p float32) {
	r.chart.advance(float64(p))
	r.raster.Refresh()
}

func (r *bezierChartRenderer) Layout(size fyne.Size) {
	r.raster.Resize(size)
	r.raster.Move(fyne.NewPos(0, 0))
	if !r.started && size.Width > 0 && size.Height > 0 {
		r.started = true
		r.chart.startAnimation(r.tick)
	}
}

func (r *bezierChartRenderer) MinSize() fyne.Size {
	r.chart.mu.RLock()
	pad := r.chart.padding
	r.chart.mu.RUnlock()
	return fyne.NewSize(minChartSize+2*pad, minChartSize+2*pad)
}

func (r *bezierChartRenderer) Refresh() {
	r.raster.Refresh()
}

func (r *bezierChartRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.raster}
}

func (r *bezierChartRenderer) Destroy() {
	r.chart.unmount(r)
}
