// Package config reads chart descriptions from YAML files.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
	"gopkg.in/yaml.v3"

	"bezierchart/chart"
)

var (
	// ErrInvalidColor is returned for colors that are not #rgb, #rrggbb or
	// #rrggbbaa.
	ErrInvalidColor = errors.New("invalid color")
	// ErrInvalidSize is returned when the image or plot area has no pixels.
	ErrInvalidSize = errors.New("invalid size")
)

// Label is the axis label style.
type Label struct {
	Color string  `yaml:"color"`
	Size  float64 `yaml:"size"`
}

// File is a chart description: data, look and output size.
type File struct {
	Width       int           `yaml:"width"`
	Height      int           `yaml:"height"`
	Padding     float64       `yaml:"padding"`
	Background  string        `yaml:"background"`
	StrokeWidth float64       `yaml:"strokeWidth"`
	StrokeColor string        `yaml:"strokeColor"`
	Fill        []string      `yaml:"fillGradient"`
	ShowGrid    bool          `yaml:"showGrid"`
	AxisColor   string        `yaml:"axisColor"`
	AxisWidth   float64       `yaml:"axisWidth"`
	TickColor   string        `yaml:"tickColor"`
	Label       Label         `yaml:"label"`
	Scale       float64       `yaml:"scale"`
	YAxisLabels []float64     `yaml:"yAxisLabels"`
	Points      []chart.Point `yaml:"points"`
}

// Default returns the sample chart: seven months of data on a 450x450 black
// canvas, green curve over a green to transparent fill, grid on.
func Default() *File {
	return &File{
		Width:       450,
		Height:      450,
		Padding:     40,
		Background:  "#000000",
		StrokeWidth: 4,
		StrokeColor: "#00ff00",
		Fill:        []string{"#00ff00", "#00ff0000"},
		ShowGrid:    true,
		AxisColor:   "#00000000",
		TickColor:   "#d3d3d3",
		Label:       Label{Color: "#d3d3d3", Size: 12},
		Scale:       1,
		YAxisLabels: []float64{10, 20, 30, 40, 50, 60, 70},
		Points: []chart.Point{
			{Label: "Jan", Value: 10},
			{Label: "Feb", Value: 50},
			{Label: "Mars", Value: 30},
			{Label: "May", Value: 40},
			{Label: "April", Value: 50},
			{Label: "Jun", Value: 40},
			{Label: "Jul", Value: 70},
		},
	}
}

// Load reads the file at path on top of Default and validates it.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config failed: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(data []byte) (*File, error) {
	f := Default()
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("decoding yaml failed: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *File) Validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, f.Width, f.Height)
	}
	if f.Padding < 0 || 2*f.Padding >= float64(f.Width) || 2*f.Padding >= float64(f.Height) {
		return fmt.Errorf("%w: padding %v leaves no plot area in %dx%d", ErrInvalidSize, f.Padding, f.Width, f.Height)
	}
	if len(f.Fill) == 0 {
		return fmt.Errorf("%w: fillGradient needs at least one color", ErrInvalidColor)
	}
	if _, err := f.BackgroundColor(); err != nil {
		return err
	}
	_, err := f.Chart()
	return err
}

// Chart converts the look settings into a render config.
func (f *File) Chart() (chart.Config, error) {
	var cfg chart.Config
	var err error
	if cfg.StrokeColor, err = field("strokeColor", f.StrokeColor); err != nil {
		return cfg, err
	}
	if cfg.AxisColor, err = field("axisColor", f.AxisColor); err != nil {
		return cfg, err
	}
	if cfg.TickColor, err = field("tickColor", f.TickColor); err != nil {
		return cfg, err
	}
	if cfg.Label.Color, err = field("label.color", f.Label.Color); err != nil {
		return cfg, err
	}
	for i, s := range f.Fill {
		c, err := field(fmt.Sprintf("fillGradient[%d]", i), s)
		if err != nil {
			return cfg, err
		}
		cfg.FillGradient = append(cfg.FillGradient, c)
	}
	cfg.StrokeWidth = f.StrokeWidth
	cfg.AxisWidth = f.AxisWidth
	cfg.ShowGrid = f.ShowGrid
	cfg.Label.Size = f.Label.Size
	cfg.Scale = f.Scale
	return cfg, nil
}

func (f *File) Series() chart.Series {
	return chart.Series(f.Points)
}

func (f *File) BackgroundColor() (color.Color, error) {
	return field("background", f.Background)
}

func field(name, s string) (color.Color, error) {
	c, err := ParseColor(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return c, nil
}

// ParseColor reads #rgb, #rrggbb or #rrggbbaa. The leading # is optional.
func ParseColor(s string) (color.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	switch len(hex) {
	case 3, 6:
		return drawing.ColorFromHex(hex), nil
	case 8:
		a, _ := strconv.ParseUint(hex[6:], 16, 8)
		return drawing.ColorFromHex(hex[:6]).WithAlpha(uint8(a)), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}
