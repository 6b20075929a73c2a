// Package vector renders layouts to SVG or PDF with tdewolff/canvas.
package vector

import (
	"fmt"
	"image/color"
	"io"
	"strings"
	"sync"

	"github.com/dasdy/vilviz/render"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/svg"
	"golang.org/x/image/font/gofont/goregular"
)

type Format string

const (
	SVG Format = "svg"
	PDF Format = "pdf"
)

// Layout coordinates are CSS pixels at 96 DPI; canvas works in millimeters.
const (
	mmPerPx = 25.4 / 96
	ptPerMM = 72 / 25.4
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case SVG, PDF:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported vector format %q", s)
	}
}

type Surface struct {
	c      *canvas.Canvas
	format Format
	width  float64
	height float64
}

func (s *Surface) Width() float64  { return s.width }
func (s *Surface) Height() float64 { return s.height }

func (s *Surface) Encode(w io.Writer) error {
	wmm, hmm := s.width*mmPerPx, s.height*mmPerPx

	switch s.format {
	case PDF:
		writer := pdf.New(w, wmm, hmm, nil)
		s.c.RenderTo(writer)

		if err := writer.Close(); err != nil {
			return fmt.Errorf("could not write PDF: %w", err)
		}
	default:
		writer := svg.New(w, wmm, hmm, nil)
		s.c.RenderTo(writer)

		if err := writer.Close(); err != nil {
			return fmt.Errorf("could not write SVG: %w", err)
		}
	}

	return nil
}

// Adapter creates vector surfaces of a single output format.
type Adapter struct {
	Format Format

	once   sync.Once
	family *canvas.FontFamily
	err    error
}

func NewAdapter(format Format) *Adapter {
	return &Adapter{Format: format}
}

func (a *Adapter) CreateSurface(width, height float64) (render.Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid surface size %.0fx%.0f", width, height)
	}

	format := a.Format
	if format == "" {
		format = SVG
	}

	return &Surface{
		c:      canvas.New(width*mmPerPx, height*mmPerPx),
		format: format,
		width:  width,
		height: height,
	}, nil
}

func (a *Adapter) fonts() (*canvas.FontFamily, error) {
	a.once.Do(func() {
		family := canvas.NewFontFamily("vilviz")
		if err := family.LoadFont(goregular.TTF, 0, canvas.FontRegular); err != nil {
			a.err = fmt.Errorf("could not load font: %w", err)

			return
		}

		a.family = family
	})

	return a.family, a.err
}

func (a *Adapter) DrawingContext(surface render.Surface) (render.Context2D, error) {
	s, ok := surface.(*Surface)
	if !ok {
		return nil, fmt.Errorf("unsupported surface %T", surface)
	}

	family, err := a.fonts()
	if err != nil {
		return nil, err
	}

	ctx := canvas.NewContext(s.c)
	ctx.SetCoordSystem(canvas.CartesianIV)
	ctx.Scale(mmPerPx, mmPerPx)

	return &Context{ctx: ctx, family: family, lineWidth: 1}, nil
}

type Context struct {
	ctx       *canvas.Context
	family    *canvas.FontFamily
	fill      string
	stroke    string
	lineWidth float64
}

func (c *Context) SetFillColor(hex string)    { c.fill = hex }
func (c *Context) SetStrokeColor(hex string)  { c.stroke = hex }
func (c *Context) SetLineWidth(width float64) { c.lineWidth = width }

func (c *Context) FillRect(x, y, width, height float64) error {
	c.ctx.SetFillColor(canvas.Hex(c.fill))
	c.ctx.SetStrokeColor(color.RGBA{})
	c.ctx.DrawPath(x, y, canvas.Rectangle(width, height))

	return nil
}

func (c *Context) StrokeRect(x, y, width, height float64) error {
	c.ctx.SetFillColor(color.RGBA{})
	c.ctx.SetStrokeColor(canvas.Hex(c.stroke))
	c.ctx.SetStrokeWidth(c.lineWidth)
	c.ctx.DrawPath(x, y, canvas.Rectangle(width, height))

	return nil
}

func (c *Context) FillText(s string, x, y, size float64) error {
	face := c.family.Face(size*ptPerMM, canvas.Hex(c.fill), canvas.FontRegular, canvas.FontNormal)
	metrics := face.Metrics()

	line := canvas.NewTextLine(face, s, canvas.Center)
	c.ctx.DrawText(x, y+(metrics.Ascent-metrics.Descent)/2, line)

	return nil
}

func (c *Context) Save()    { c.ctx.Push() }
func (c *Context) Restore() { c.ctx.Pop() }

func (c *Context) RotateAbout(degrees, x, y float64) {
	c.ctx.RotateAbout(degrees, x, y)
}
