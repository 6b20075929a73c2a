// Package recorder is a headless drawing surface that keeps a log of every
// draw call. It backs renderer tests and the `--format calls` debug output.
package recorder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/dasdy/vilviz/render"
)

const (
	OpFillRect    = "fillRect"
	OpStrokeRect  = "strokeRect"
	OpFillText    = "fillText"
	OpSave        = "save"
	OpRestore     = "restore"
	OpRotateAbout = "rotate"
)

var (
	ErrNoContext = errors.New("no drawing context")
	ErrInjected  = errors.New("injected failure")
)

// Call is one recorded primitive. Color is the fill color for fills and text
// and the stroke color for strokes.
type Call struct {
	Op        string    `json:"op"`
	Args      []float64 `json:"args,omitempty"`
	Text      string    `json:"text,omitempty"`
	Color     string    `json:"color,omitempty"`
	LineWidth float64   `json:"lineWidth,omitempty"`
}

type Surface struct {
	W      float64
	H      float64
	Calls  []Call
	Closed bool
}

func (s *Surface) Width() float64  { return s.W }
func (s *Surface) Height() float64 { return s.H }

func (s *Surface) Close() error {
	s.Closed = true

	return nil
}

// Encode writes the recorded calls as JSON.
func (s *Surface) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(s.Calls); err != nil {
		return fmt.Errorf("could not encode draw calls: %w", err)
	}

	return nil
}

// Ops lists the recorded operation names in order.
func (s *Surface) Ops() []string {
	ops := make([]string, 0, len(s.Calls))
	for _, c := range s.Calls {
		ops = append(ops, c.Op)
	}

	return ops
}

// Texts lists every string passed to FillText in order.
func (s *Surface) Texts() []string {
	var texts []string

	for _, c := range s.Calls {
		if c.Op == OpFillText {
			texts = append(texts, c.Text)
		}
	}

	return texts
}

// Adapter creates recording surfaces and keeps them in Created. FailContext
// makes every DrawingContext call fail; FailAfter makes the n-th drawing
// primitive (1-based) fail.
type Adapter struct {
	FailContext bool
	FailAfter   int
	Created     []*Surface
}

func (a *Adapter) CreateSurface(width, height float64) (render.Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid surface size %.0fx%.0f", width, height)
	}

	s := &Surface{W: width, H: height}
	a.Created = append(a.Created, s)

	return s, nil
}

func (a *Adapter) DrawingContext(surface render.Surface) (render.Context2D, error) {
	if a.FailContext {
		return nil, ErrNoContext
	}

	s, ok := surface.(*Surface)
	if !ok {
		return nil, fmt.Errorf("unsupported surface %T", surface)
	}

	return &Context{surface: s, failAfter: a.FailAfter, lineWidth: 1}, nil
}

type Context struct {
	surface   *Surface
	fill      string
	stroke    string
	lineWidth float64
	failAfter int
	draws     int
}

func (c *Context) SetFillColor(hex string)    { c.fill = hex }
func (c *Context) SetStrokeColor(hex string)  { c.stroke = hex }
func (c *Context) SetLineWidth(width float64) { c.lineWidth = width }

func (c *Context) record(call Call) error {
	c.draws++
	if c.failAfter > 0 && c.draws >= c.failAfter {
		return fmt.Errorf("%s: %w", call.Op, ErrInjected)
	}

	c.surface.Calls = append(c.surface.Calls, call)

	return nil
}

func (c *Context) FillRect(x, y, width, height float64) error {
	return c.record(Call{Op: OpFillRect, Args: []float64{x, y, width, height}, Color: c.fill})
}

func (c *Context) StrokeRect(x, y, width, height float64) error {
	return c.record(Call{
		Op: OpStrokeRect, Args: []float64{x, y, width, height},
		Color: c.stroke, LineWidth: c.lineWidth,
	})
}

func (c *Context) FillText(text string, x, y, size float64) error {
	return c.record(Call{Op: OpFillText, Args: []float64{x, y, size}, Text: text, Color: c.fill})
}

func (c *Context) Save() {
	c.surface.Calls = append(c.surface.Calls, Call{Op: OpSave})
}

func (c *Context) Restore() {
	c.surface.Calls = append(c.surface.Calls, Call{Op: OpRestore})
}

func (c *Context) RotateAbout(degrees, x, y float64) {
	c.surface.Calls = append(c.surface.Calls, Call{Op: OpRotateAbout, Args: []float64{degrees, x, y}})
}
