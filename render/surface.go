// Package render paints resolved layers onto an abstract drawing surface.
package render

import "io"

// Context2D is the small subset of a canvas 2D API the renderer needs. Colors
// are #rgb or #rrggbb strings.
type Context2D interface {
	SetFillColor(hex string)
	SetStrokeColor(hex string)
	SetLineWidth(width float64)
	FillRect(x, y, width, height float64) error
	StrokeRect(x, y, width, height float64) error
	// FillText draws text in the fill color, centered on (x, y).
	FillText(text string, x, y, size float64) error
	Save()
	Restore()
	// RotateAbout rotates subsequent drawing clockwise by degrees around (x, y).
	RotateAbout(degrees, x, y float64)
}

// Surface is a drawable target that can be encoded once painting is done.
type Surface interface {
	Width() float64
	Height() float64
	Encode(w io.Writer) error
}

// Adapter acquires surfaces and their drawing contexts.
type Adapter interface {
	CreateSurface(width, height float64) (Surface, error)
	DrawingContext(surface Surface) (Context2D, error)
}
