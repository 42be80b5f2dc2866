// Package ui builds the window content of the chart viewer.
package ui

import (
	"fmt"
	"log"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"bezierchart/config"
	"bezierchart/fynechart"
)

// ChartScreen holds the window content. The chart is created again every
// time it is shown so its reveal animation replays.
type ChartScreen struct {
	mu      sync.Mutex
	file    *config.File
	current *fynechart.BezierLineChart

	holder   *fyne.Container
	button   *widget.Button
	minLabel *widget.Label
	maxLabel *widget.Label
}

// NewChartScreen only stores f. No widget is created until Content, so it
// is safe to call before the app exists.
func NewChartScreen(f *config.File) *ChartScreen {
	return &ChartScreen{file: f}
}

// Check reports whether the file can be turned into a chart.
func Check(f *config.File) error {
	if _, err := f.Chart(); err != nil {
		return err
	}
	_, err := f.BackgroundColor()
	return err
}

func (s *ChartScreen) Content() fyne.CanvasObject {
	titleLabel := widget.NewLabelWithStyle("Bezier Line Chart", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	s.holder = container.NewStack()
	s.button = widget.NewButton("Show Chart", s.Toggle)

	s.minLabel = widget.NewLabel("")
	s.maxLabel = widget.NewLabel("")
	minSection := container.NewHBox(widget.NewIcon(theme.MoveDownIcon()), s.minLabel)
	maxSection := container.NewHBox(widget.NewIcon(theme.MoveUpIcon()), s.maxLabel)
	statsHBox := container.NewHBox(minSection, layout.NewSpacer(), maxSection)
	s.mu.Lock()
	s.updateStats()
	s.mu.Unlock()

	centerContent := container.NewVBox(
		container.NewCenter(s.holder),
		widget.NewSeparator(),
		statsHBox,
		layout.NewSpacer(),
	)
	return container.NewBorder(
		container.NewPadded(titleLabel),
		container.NewPadded(container.NewCenter(s.button)),
		nil, nil,
		container.NewPadded(centerContent),
	)
}

// Current is the visible chart, nil while it is hidden.
func (s *ChartScreen) Current() *fynechart.BezierLineChart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func newChart(f *config.File) (*fynechart.BezierLineChart, error) {
	cfg, err := f.Chart()
	if err != nil {
		return nil, err
	}
	bg, err := f.BackgroundColor()
	if err != nil {
		return nil, err
	}
	c := fynechart.NewBezierLineChart(f.Series(), f.YAxisLabels, cfg)
	c.SetPadding(float32(f.Padding))
	c.SetBackground(bg)
	return c, nil
}

// Toggle shows a new chart or hides the visible one.
func (s *ChartScreen) Toggle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil {
		s.current = nil
		s.holder.Objects = nil
		s.holder.Refresh()
		s.button.SetText("Show Chart")
		return
	}
	c, err := newChart(s.file)
	if err != nil {
		log.Printf("Error creating chart: %v", err)
		return
	}
	s.current = c
	size := fyne.NewSize(float32(s.file.Width), float32(s.file.Height))
	s.holder.Objects = []fyne.CanvasObject{container.NewGridWrap(size, c)}
	s.holder.Refresh()
	s.button.SetText("Hide Chart")
}

// Apply swaps in a reloaded file. A visible chart keeps its animation state.
// Files that cannot be drawn are logged and ignored.
func (s *ChartScreen) Apply(f *config.File) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg, err := f.Chart()
	if err != nil {
		log.Printf("Keeping previous chart: %v", err)
		return
	}
	bg, err := f.BackgroundColor()
	if err != nil {
		log.Printf("Keeping previous chart: %v", err)
		return
	}
	s.file = f
	s.updateStats()
	if s.current == nil {
		return
	}
	s.current.SetData(f.Series(), f.YAxisLabels)
	s.current.SetConfig(cfg)
	s.current.SetPadding(float32(f.Padding))
	s.current.SetBackground(bg)
	log.Printf("Chart reloaded with %d points", len(f.Points))
}

func (s *ChartScreen) updateStats() {
	if s.minLabel == nil {
		return
	}
	if len(s.file.Points) == 0 {
		s.minLabel.SetText("MIN\n-")
		s.maxLabel.SetText("MAX\n-")
		return
	}
	lo, hi := s.file.Series().Bounds()
	s.minLabel.SetText(fmt.Sprintf("MIN\n%g", lo))
	s.maxLabel.SetText(fmt.Sprintf("MAX\n%g", hi))
}
