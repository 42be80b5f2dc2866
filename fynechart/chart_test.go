package fynechart

import (
	"image"
	"image/color"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bezierchart/chart"
)

var (
	sample = chart.Series{
		{Label: "Jan", Value: 10}, {Label: "Feb", Value: 50}, {Label: "Mars", Value: 30},
		{Label: "May", Value: 40}, {Label: "April", Value: 50}, {Label: "Jun", Value: 40},
		{Label: "Jul", Value: 70},
	}
	sampleLabels = []float64{10, 20, 30, 40, 50, 60, 70}
)

func newTestChart(t *testing.T, d time.Duration) *BezierLineChart {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)
	c := NewBezierLineChart(sample, sampleLabels, chart.DefaultConfig())
	c.SetDuration(d)
	return c
}

func TestChartRendererObjects(t *testing.T) {
	c := newTestChart(t, 0)
	r := test.WidgetRenderer(c)
	objs := r.Objects()
	require.Len(t, objs, 1)
	_, ok := objs[0].(*canvas.Raster)
	assert.True(t, ok, "expected a raster, got %T", objs[0])

	assert.Equal(t, fyne.NewSize(minChartSize+2*defaultPadding, minChartSize+2*defaultPadding), r.MinSize())
	r.Layout(fyne.NewSize(300, 200))
	assert.Equal(t, fyne.NewSize(300, 200), objs[0].Size())
}

func TestChartZeroDurationShowsEverything(t *testing.T) {
	c := newTestChart(t, 0)
	test.WidgetRenderer(c).Layout(fyne.NewSize(200, 200))
	assert.Equal(t, 1.0, c.Progress())
	c.mu.RLock()
	defer c.mu.RUnlock()
	assert.Nil(t, c.animation)
}

func TestChartDrawsAtRequestedPixelSize(t *testing.T) {
	c := newTestChart(t, 0)
	c.SetBackground(color.Black)
	r := test.WidgetRenderer(c)
	img := r.Objects()[0].(*canvas.Raster).Generator(240, 180)
	require.Equal(t, image.Rect(0, 0, 240, 180), img.Bounds())
	assert.Equal(t, color.NRGBA{A: 255}, color.NRGBAModel.Convert(img.At(239, 0)))
}

func TestChartMountRestartsAnimation(t *testing.T) {
	c := newTestChart(t, time.Hour)
	c.advance(1)
	require.Equal(t, 1.0, c.Progress())

	c.startAnimation(func(float32) {})
	assert.Zero(t, c.Progress())
	c.mu.RLock()
	assert.NotNil(t, c.animation)
	c.mu.RUnlock()

	c.stopAnimation()
	c.mu.RLock()
	assert.Nil(t, c.animation)
	c.mu.RUnlock()
}

func TestChartDestroyStopsAnimation(t *testing.T) {
	c := newTestChart(t, time.Hour)
	r := c.CreateRenderer()
	r.Layout(fyne.NewSize(200, 200))
	c.mu.RLock()
	assert.NotNil(t, c.animation)
	c.mu.RUnlock()

	r.Destroy()
	c.mu.RLock()
	defer c.mu.RUnlock()
	assert.Nil(t, c.animation)
	assert.Nil(t, c.renderer)
}

func TestChartAnimationStartsOnFirstLayout(t *testing.T) {
	c := newTestChart(t, time.Hour)
	c.SetPadding(10)
	c.SetBackground(color.Black)
	c.mu.RLock()
	assert.Nil(t, c.renderer, "setters must not mount the chart")
	c.mu.RUnlock()

	r := c.CreateRenderer()
	r.Layout(fyne.NewSize(0, 0))
	c.mu.RLock()
	assert.Nil(t, c.animation, "empty layout must not start the reveal")
	c.mu.RUnlock()

	r.Layout(fyne.NewSize(200, 200))
	c.mu.RLock()
	first := c.animation
	c.mu.RUnlock()
	require.NotNil(t, first)

	r.Layout(fyne.NewSize(300, 300))
	c.mu.RLock()
	defer c.mu.RUnlock()
	assert.Same(t, first, c.animation, "resizing must not restart the reveal")
}

func TestChartWithoutRunningApp(t *testing.T) {
	fyne.SetCurrentApp(nil)

	c := NewBezierLineChart(sample, sampleLabels, chart.DefaultConfig())
	c.SetData(sample[:3], sampleLabels[:3])
	c.SetConfig(chart.DefaultConfig())
	c.SetPadding(40)
	c.SetBackground(color.Black)
	c.SetProgress(0.5)
	assert.InDelta(t, 0.5, c.Progress(), 1e-9)
	c.mu.RLock()
	assert.Nil(t, c.renderer)
	c.mu.RUnlock()

	c.Resize(fyne.NewSize(200, 200))
	assert.Equal(t, 1.0, c.Progress())
	c.mu.RLock()
	defer c.mu.RUnlock()
	assert.NotNil(t, c.renderer)
	assert.Nil(t, c.animation)
}

func TestChartProgressOnlyMovesForward(t *testing.T) {
	c := newTestChart(t, time.Hour)
	c.advance(0.4)
	c.advance(0.1)
	assert.InDelta(t, 0.4, c.Progress(), 1e-9)
	c.advance(2)
	assert.Equal(t, 1.0, c.Progress())
}

func TestChartSnapshotFollowsSetters(t *testing.T) {
	c := newTestChart(t, 0)
	test.WidgetRenderer(c).Layout(fyne.NewSize(200, 200))

	series := chart.Series{{Label: "a", Value: 1}, {Label: "b", Value: 2}}
	c.SetData(series, []float64{1, 2})
	cfg := chart.DefaultConfig()
	cfg.ShowGrid = true
	c.SetConfig(cfg)
	c.SetPadding(10)

	f := c.snapshot()
	assert.Equal(t, series, f.series)
	assert.Equal(t, []float64{1, 2}, f.yLabels)
	assert.True(t, f.config.ShowGrid)
	assert.Equal(t, 10.0, f.padding)
	assert.Equal(t, 1.0, f.progress)
}
