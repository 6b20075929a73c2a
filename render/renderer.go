package render

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/dasdy/vilviz/model"
	"github.com/dasdy/vilviz/palette"
)

const (
	fontSingleChar = 24
	fontLong       = 14
	fontWithSub    = 20
	fontDefault    = 18

	fontSubSingle = 14
	fontSubLeft   = 13
	fontSubRight  = 11

	subLineHeight = 13
	lineSpacing   = 1.15
	borderWidth   = 1
)

// LayoutRenderer draws one layer of key labels onto a surface.
type LayoutRenderer struct {
	Adapter Adapter
}

func NewLayoutRenderer(adapter Adapter) *LayoutRenderer {
	return &LayoutRenderer{Adapter: adapter}
}

// Render paints the background and every key that has a position. Keys are
// drawn row by row so the output is deterministic.
func (r *LayoutRenderer) Render(surface Surface, layer model.LayerLabels,
	positions map[model.RowCol]model.KeyPosition, p palette.Palette,
) error {
	ctx, err := r.Adapter.DrawingContext(surface)
	if err != nil {
		return unavailable(err)
	}

	if ctx == nil {
		return unavailable(nil)
	}

	ctx.SetFillColor(p.Background)

	if err := ctx.FillRect(0, 0, surface.Width(), surface.Height()); err != nil {
		return drawFailed("could not fill background: %w", err)
	}

	drawn, err := drawLayer(ctx, layer, positions, 0, 0, p)
	if err != nil {
		return err
	}

	slog.Debug("rendered layer", "keys", drawn, "width", surface.Width(), "height", surface.Height())

	return nil
}

// drawLayer draws every positioned key shifted by (dx, dy) and returns how
// many were drawn.
func drawLayer(ctx Context2D, layer model.LayerLabels, positions map[model.RowCol]model.KeyPosition,
	dx, dy float64, p palette.Palette,
) (int, error) {
	drawn := 0

	for row, keys := range layer {
		for col, label := range keys {
			pos, ok := positions[model.RowCol{Row: row, Col: col}]
			if !ok {
				continue
			}

			pos.X += dx
			pos.Y += dy

			if err := drawKey(ctx, pos, label, p); err != nil {
				return drawn, drawFailed("could not draw key at row %d col %d: %w", row, col, err)
			}

			drawn++
		}
	}

	return drawn, nil
}

func keyColors(label model.KeyLabel, p palette.Palette) (string, string) {
	switch {
	case label.Empty:
		return p.KeyEmpty, p.BorderEmpty
	case label.IsSpecial:
		return p.KeySpecial, p.BorderSpecial
	default:
		return p.KeyNormal, p.BorderNormal
	}
}

func drawKey(ctx Context2D, pos model.KeyPosition, label model.KeyLabel, p palette.Palette) error {
	if pos.Rotation != 0 {
		ctx.Save()
		defer ctx.Restore()

		ctx.RotateAbout(pos.Rotation, pos.X+pos.Width/2, pos.Y+pos.Height/2)
	}

	fill, border := keyColors(label, p)

	ctx.SetFillColor(fill)

	if err := ctx.FillRect(pos.X+1, pos.Y+1, pos.Width-2, pos.Height-2); err != nil {
		return err
	}

	ctx.SetStrokeColor(border)
	ctx.SetLineWidth(borderWidth)

	if err := ctx.StrokeRect(pos.X, pos.Y, pos.Width, pos.Height); err != nil {
		return err
	}

	return drawLabel(ctx, pos, label, p)
}

// MainFontSize picks the size of the main text of a label.
func MainFontSize(label model.KeyLabel) float64 {
	n := utf8.RuneCountInString(label.MainText)

	switch {
	case n == 1:
		return fontSingleChar
	case n > 8:
		return fontLong
	case label.HasSub():
		return fontWithSub
	default:
		return fontDefault
	}
}

func subTexts(label model.KeyLabel) []string {
	if len(label.SubTexts) > 0 {
		return label.SubTexts
	}

	if label.SubText != "" {
		return []string{label.SubText}
	}

	return nil
}

func drawLabel(ctx Context2D, pos model.KeyPosition, label model.KeyLabel, p palette.Palette) error {
	color := p.TextNormal
	if label.IsSpecial {
		color = p.TextSpecial
	}

	subs := subTexts(label)
	size := MainFontSize(label)
	cx := pos.X + pos.Width/2

	mainY := pos.Y + pos.Height/2
	if len(subs) > 0 {
		mainY = pos.Y + pos.Height*0.35
	}

	if label.MainText != "" {
		ctx.SetFillColor(color)

		lines := strings.Split(label.MainText, "\n")
		first := mainY - float64(len(lines)-1)*size*lineSpacing/2

		for i, line := range lines {
			if err := ctx.FillText(line, cx, first+float64(i)*size*lineSpacing, size); err != nil {
				return err
			}
		}
	}

	if len(subs) == 0 {
		return nil
	}

	ctx.SetFillColor(p.TextSub)

	if len(subs) == 1 {
		return ctx.FillText(subs[0], cx, pos.Y+pos.Height*0.75, fontSubSingle)
	}

	startY := pos.Y + pos.Height*0.65

	for i := 0; i < len(subs); i += 2 {
		y := startY + float64(i/2)*subLineHeight

		if i+1 < len(subs) {
			if err := ctx.FillText(subs[i], pos.X+pos.Width*0.25, y, fontSubLeft); err != nil {
				return err
			}

			if err := ctx.FillText(subs[i+1], pos.X+pos.Width*0.75, y, fontSubRight); err != nil {
				return err
			}

			continue
		}

		if err := ctx.FillText(subs[i], cx, y, fontSubRight); err != nil {
			return err
		}
	}

	return nil
}
