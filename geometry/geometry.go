// Package geometry places keys of a row/column matrix on a pixel canvas.
package geometry

import (
	"math"

	"github.com/dasdy/vilviz/model"
)

// Override replaces the grid placement of one key. Position and size are in
// key units; nil fields keep the grid value.
type Override struct {
	X        *float64
	Y        *float64
	Width    *float64
	Height   *float64
	Rotation float64
	Hidden   bool
}

// Calculator computes key rectangles. The zero value lays keys out on a plain
// grid.
type Calculator struct {
	Overrides map[model.RowCol]Override
}

func NewCalculator(overrides map[model.RowCol]Override) *Calculator {
	return &Calculator{Overrides: overrides}
}

// ComputePositions returns the rectangle of every visible key.
func (c *Calculator) ComputePositions(rows, cols int, dc model.DrawingContext) map[model.RowCol]model.KeyPosition {
	positions := make(map[model.RowCol]model.KeyPosition, rows*cols)

	for row := range rows {
		for col := range cols {
			rc := model.RowCol{Row: row, Col: col}

			pos := model.KeyPosition{
				X:      dc.Margin + float64(col)*dc.UnitX,
				Y:      dc.Margin + float64(row)*dc.UnitY,
				Width:  dc.KeyWidth,
				Height: dc.KeyHeight,
			}

			if c != nil {
				if o, ok := c.Overrides[rc]; ok {
					if o.Hidden {
						continue
					}

					pos = o.apply(pos, dc)
				}
			}

			positions[rc] = pos
		}
	}

	return positions
}

func (o Override) apply(pos model.KeyPosition, dc model.DrawingContext) model.KeyPosition {
	if o.X != nil {
		pos.X = dc.Margin + *o.X*dc.UnitX
	}

	if o.Y != nil {
		pos.Y = dc.Margin + *o.Y*dc.UnitY
	}

	if o.Width != nil {
		pos.Width = *o.Width*dc.UnitX - (dc.UnitX - dc.KeyWidth)
	}

	if o.Height != nil {
		pos.Height = *o.Height*dc.UnitY - (dc.UnitY - dc.KeyHeight)
	}

	pos.Rotation = o.Rotation

	return pos
}

// ComputeCanvasDimensions sizes the canvas for a rows x cols grid.
func ComputeCanvasDimensions(rows, cols int, dc model.DrawingContext) model.CanvasDimensions {
	return model.CanvasDimensions{
		Width:  2*dc.Margin + float64(cols)*dc.UnitX,
		Height: 2*dc.Margin + float64(rows)*dc.UnitY,
	}
}

// Fit grows dims so that every rotated key rectangle plus the margin fits.
func Fit(dims model.CanvasDimensions, positions map[model.RowCol]model.KeyPosition,
	dc model.DrawingContext,
) model.CanvasDimensions {
	for _, p := range positions {
		maxX, maxY := corners(p)

		dims.Width = math.Max(dims.Width, math.Ceil(maxX+dc.Margin))
		dims.Height = math.Max(dims.Height, math.Ceil(maxY+dc.Margin))
	}

	return dims
}

// corners returns the largest x and y reached by the rotated rectangle.
func corners(p model.KeyPosition) (float64, float64) {
	if p.Rotation == 0 {
		return p.X + p.Width, p.Y + p.Height
	}

	cx, cy := p.X+p.Width/2, p.Y+p.Height/2
	sin, cos := math.Sincos(p.Rotation * math.Pi / 180)

	maxX, maxY := math.Inf(-1), math.Inf(-1)

	for _, d := range [][2]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
		dx, dy := d[0]*p.Width/2, d[1]*p.Height/2
		maxX = math.Max(maxX, cx+dx*cos-dy*sin)
		maxY = math.Max(maxY, cy+dx*sin+dy*cos)
	}

	return maxX, maxY
}
