// Package raster renders layouts to PNG images with gogpu/gg.
package raster

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/dasdy/vilviz/render"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// Surface is an in-memory RGBA image.
type Surface struct {
	dc     *gg.Context
	scaled bool
	texts  []textChunk
}

func (s *Surface) Width() float64  { return float64(s.dc.Width()) }
func (s *Surface) Height() float64 { return float64(s.dc.Height()) }

// Encode writes the image as PNG, including any text set with SetText.
func (s *Surface) Encode(w io.Writer) error {
	if len(s.texts) == 0 {
		if err := s.dc.EncodePNG(w); err != nil {
			return fmt.Errorf("could not encode PNG: %w", err)
		}

		return nil
	}

	var buf bytes.Buffer
	if err := s.dc.EncodePNG(&buf); err != nil {
		return fmt.Errorf("could not encode PNG: %w", err)
	}

	out, err := withText(buf.Bytes(), s.texts)
	if err != nil {
		return fmt.Errorf("could not embed text: %w", err)
	}

	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("could not write PNG: %w", err)
	}

	return nil
}

func (s *Surface) Close() error {
	return s.dc.Close()
}

// Adapter creates PNG surfaces. Scale multiplies every coordinate, so 2
// produces a double resolution image.
type Adapter struct {
	Scale float64

	once   sync.Once
	source *text.FontSource
	err    error
	faces  map[float64]text.Face
	mu     sync.Mutex
}

func NewAdapter(scale float64) *Adapter {
	if scale <= 0 {
		scale = 1
	}

	return &Adapter{Scale: scale}
}

func (a *Adapter) scale() float64 {
	if a.Scale <= 0 {
		return 1
	}

	return a.Scale
}

func (a *Adapter) CreateSurface(width, height float64) (render.Surface, error) {
	w := int(math.Ceil(width * a.scale()))
	h := int(math.Ceil(height * a.scale()))

	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid surface size %dx%d", w, h)
	}

	return &Surface{dc: gg.NewContext(w, h)}, nil
}

func (a *Adapter) DrawingContext(surface render.Surface) (render.Context2D, error) {
	s, ok := surface.(*Surface)
	if !ok {
		return nil, fmt.Errorf("unsupported surface %T", surface)
	}

	a.once.Do(func() {
		a.source, a.err = text.NewFontSource(goregular.TTF)
		a.faces = make(map[float64]text.Face)
	})

	if a.err != nil {
		return nil, fmt.Errorf("could not load font: %w", a.err)
	}

	if !s.scaled {
		s.dc.Scale(a.scale(), a.scale())
		s.scaled = true
	}

	return &Context{dc: s.dc, adapter: a, lineWidth: 1}, nil
}

func (a *Adapter) face(size float64) text.Face {
	a.mu.Lock()
	defer a.mu.Unlock()

	f, ok := a.faces[size]
	if !ok {
		f = a.source.Face(size)
		a.faces[size] = f
	}

	return f
}

// Context maps render.Context2D onto a gg context.
type Context struct {
	dc        *gg.Context
	adapter   *Adapter
	fill      string
	stroke    string
	lineWidth float64
}

func (c *Context) SetFillColor(hex string)    { c.fill = hex }
func (c *Context) SetStrokeColor(hex string)  { c.stroke = hex }
func (c *Context) SetLineWidth(width float64) { c.lineWidth = width }

func (c *Context) FillRect(x, y, width, height float64) error {
	c.dc.SetHexColor(c.fill)
	c.dc.DrawRectangle(x, y, width, height)

	if err := c.dc.Fill(); err != nil {
		return fmt.Errorf("could not fill rectangle: %w", err)
	}

	return nil
}

func (c *Context) StrokeRect(x, y, width, height float64) error {
	c.dc.SetHexColor(c.stroke)
	c.dc.SetLineWidth(c.lineWidth)
	c.dc.DrawRectangle(x, y, width, height)

	if err := c.dc.Stroke(); err != nil {
		return fmt.Errorf("could not stroke rectangle: %w", err)
	}

	return nil
}

func (c *Context) FillText(s string, x, y, size float64) error {
	c.dc.SetHexColor(c.fill)
	c.dc.SetFont(c.adapter.face(size))
	c.dc.DrawStringAnchored(s, x, y, 0.5, 0.5)

	return nil
}

func (c *Context) Save()    { c.dc.Push() }
func (c *Context) Restore() { c.dc.Pop() }

func (c *Context) RotateAbout(degrees, x, y float64) {
	c.dc.RotateAbout(degrees*math.Pi/180, x, y)
}
