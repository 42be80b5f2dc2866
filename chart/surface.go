package chart

import (
	"fmt"
	"image/color"
)

// Surface receives the drawing primitives issued by Render. Clips nest:
// every PushClip is matched by a PopClip.
type Surface interface {
	Line(from, to Vec, c color.Color, width float64)
	Text(s string, topLeft Vec, style TextStyle)
	PushClip(r Rect)
	PopClip()
	StrokePath(p *Path, c color.Color, width float64)
	FillPath(p *Path, g Gradient)
}

// Op names a recorded drawing primitive.
type Op string

const (
	OpLine     Op = "line"
	OpText     Op = "text"
	OpPushClip Op = "push_clip"
	OpPopClip  Op = "pop_clip"
	OpStroke   Op = "stroke_path"
	OpFill     Op = "fill_path"
)

// Command is one recorded primitive. Colors are kept as #rrggbbaa strings so
// command lists compare and serialize cleanly.
type Command struct {
	Op    Op       `yaml:"op"`
	From  *Vec     `yaml:"from,omitempty"`
	To    *Vec     `yaml:"to,omitempty"`
	Rect  *Rect    `yaml:"rect,omitempty"`
	Path  *Path    `yaml:"path,omitempty"`
	Text  string   `yaml:"text,omitempty"`
	Color string   `yaml:"color,omitempty"`
	Stops []string `yaml:"stops,omitempty"`
	Width float64  `yaml:"width,omitempty"`
	Size  float64  `yaml:"size,omitempty"`
}

// Recorder is a Surface that keeps the primitives it receives.
type Recorder struct {
	commands []Command
}

func (r *Recorder) Line(from, to Vec, c color.Color, width float64) {
	r.commands = append(r.commands, Command{Op: OpLine, From: &from, To: &to, Color: Hex(c), Width: width})
}

func (r *Recorder) Text(s string, topLeft Vec, style TextStyle) {
	r.commands = append(r.commands, Command{Op: OpText, From: &topLeft, Text: s, Color: Hex(style.Color), Size: style.Size})
}

func (r *Recorder) PushClip(rect Rect) {
	r.commands = append(r.commands, Command{Op: OpPushClip, Rect: &rect})
}

func (r *Recorder) PopClip() {
	r.commands = append(r.commands, Command{Op: OpPopClip})
}

func (r *Recorder) StrokePath(p *Path, c color.Color, width float64) {
	r.commands = append(r.commands, Command{Op: OpStroke, Path: p.Clone(), Color: Hex(c), Width: width})
}

func (r *Recorder) FillPath(p *Path, g Gradient) {
	stops := make([]string, len(g.Stops))
	for i, c := range g.Stops {
		stops[i] = Hex(c)
	}
	from, to := g.From, g.To
	r.commands = append(r.commands, Command{Op: OpFill, Path: p.Clone(), From: &from, To: &to, Stops: stops})
}

// Commands returns everything recorded so far.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Filter returns the recorded commands with the given op.
func (r *Recorder) Filter(op Op) []Command {
	var out []Command
	for _, c := range r.commands {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

// Hex formats c as non-premultiplied #rrggbbaa. A nil color is "".
func Hex(c color.Color) string {
	if c == nil {
		return ""
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}
