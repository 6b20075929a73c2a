package render

import (
	"log/slog"
	"math"
	"strconv"

	"github.com/dasdy/vilviz/model"
	"github.com/dasdy/vilviz/palette"
)

const (
	headerHeight    = 45
	headerBand      = 37
	headerInset     = 15
	headerFontSize  = 24
	headerLineWidth = 1

	comboMargin      = 15
	comboLineHeight  = 70
	comboIndexWidth  = 50
	comboArrowWidth  = 50
	comboActionGap   = 15
	comboKeyGap      = 8
	comboKeyWidth    = 78
	comboKeyHeight   = 60
	comboIndexSize   = 20
	comboArrowSize   = 14
	comboLongKeys    = 4
	comboShortColumn = 3
	comboLongColumn  = 2
)

// CombinedSheet is a single picture of every layer stacked under a header,
// followed by a panel listing the combos.
type CombinedSheet struct {
	// Label is shown next to the header title, usually the file name.
	Label     string
	Layers    []model.LayerLabels
	Positions map[model.RowCol]model.KeyPosition
	LayerSize model.CanvasDimensions
	Combos    []model.Combo
}

// comboGroups splits combos with at least two keys into short (two or three
// keys) and long ones. Single key combos are not drawn.
func comboGroups(combos []model.Combo) ([]model.Combo, []model.Combo) {
	var short, long []model.Combo

	for _, c := range combos {
		switch {
		case len(c.Keys) < 2:
			continue
		case len(c.Keys) < comboLongKeys:
			short = append(short, c)
		default:
			long = append(long, c)
		}
	}

	return short, long
}

// comboSpan is the width of one combo drawn with n trigger keys.
func comboSpan(n int) float64 {
	return comboIndexWidth + comboKeyWidth + comboActionGap + comboArrowWidth +
		float64(n)*(comboKeyWidth+comboKeyGap) - comboKeyGap
}

func maxKeys(combos []model.Combo) int {
	n := 0
	for _, c := range combos {
		n = max(n, len(c.Keys))
	}

	return n
}

// comboColumns is how many combos of group fit side by side in width.
func comboColumns(group []model.Combo, width float64, limit int) int {
	fit := int((width - 2*comboMargin) / comboSpan(maxKeys(group)))

	return max(1, min(limit, fit))
}

func groupRows(group []model.Combo, columns int) int {
	return (len(group) + columns - 1) / columns
}

// Dimensions is the canvas size needed by the sheet.
func (s CombinedSheet) Dimensions() model.CanvasDimensions {
	width := s.LayerSize.Width

	short, long := comboGroups(s.Combos)
	if all := append(short, long...); len(all) > 0 {
		width = math.Max(width, 2*comboMargin+comboSpan(maxKeys(all)))
	}

	height := headerHeight + float64(len(s.Layers))*s.LayerSize.Height + s.comboPanelHeight(width)

	return model.CanvasDimensions{Width: width, Height: height}
}

func (s CombinedSheet) comboPanelHeight(width float64) float64 {
	short, long := comboGroups(s.Combos)
	if len(short)+len(long) == 0 {
		return 0
	}

	rows := groupRows(short, comboColumns(short, width, comboShortColumn)) +
		groupRows(long, comboColumns(long, width, comboLongColumn))

	return headerHeight + float64(rows)*comboLineHeight + comboMargin
}

// RenderCombined paints sheet onto surface, which should be at least
// sheet.Dimensions() large.
func (r *LayoutRenderer) RenderCombined(surface Surface, sheet CombinedSheet, p palette.Palette) error {
	ctx, err := r.Adapter.DrawingContext(surface)
	if err != nil {
		return unavailable(err)
	}

	if ctx == nil {
		return unavailable(nil)
	}

	dims := sheet.Dimensions()

	ctx.SetFillColor(p.Background)

	if err := ctx.FillRect(0, 0, dims.Width, dims.Height); err != nil {
		return drawFailed("could not fill background: %w", err)
	}

	title := "LAYOUTS"
	if sheet.Label != "" {
		title += " - " + sheet.Label
	}

	if err := drawHeader(ctx, title, 0, dims.Width, p); err != nil {
		return drawFailed("could not draw header: %w", err)
	}

	dx := (dims.Width - sheet.LayerSize.Width) / 2
	y := float64(headerHeight)

	for i, layer := range sheet.Layers {
		if _, err := drawLayer(ctx, layer, sheet.Positions, dx, y, p); err != nil {
			return drawFailed("could not draw layer %d: %w", i, err)
		}

		y += sheet.LayerSize.Height
	}

	if err := drawComboPanel(ctx, sheet.Combos, y, dims.Width, p); err != nil {
		return drawFailed("could not draw combos: %w", err)
	}

	slog.Debug("rendered combined sheet", "layers", len(sheet.Layers), "combos", len(sheet.Combos),
		"width", dims.Width, "height", dims.Height)

	return nil
}

func drawHeader(ctx Context2D, title string, y, width float64, p palette.Palette) error {
	ctx.SetFillColor(p.HeaderBackground)

	if err := ctx.FillRect(0, y, width, headerBand); err != nil {
		return err
	}

	ctx.SetFillColor(p.HeaderText)

	if err := ctx.FillText(title, width/2, y+headerBand/2, headerFontSize); err != nil {
		return err
	}

	ctx.SetFillColor(p.HeaderBorder)

	return ctx.FillRect(headerInset, y+headerBand, width-2*headerInset, headerLineWidth)
}

// drawComboPanel lays out short combos, then long ones, filling each column
// top to bottom before moving right.
func drawComboPanel(ctx Context2D, combos []model.Combo, top, width float64, p palette.Palette) error {
	short, long := comboGroups(combos)
	if len(short)+len(long) == 0 {
		return nil
	}

	if err := drawHeader(ctx, "COMBOS", top, width, p); err != nil {
		return err
	}

	y := top + headerHeight + comboMargin

	for _, g := range []struct {
		combos []model.Combo
		limit  int
	}{{short, comboShortColumn}, {long, comboLongColumn}} {
		if len(g.combos) == 0 {
			continue
		}

		columns := comboColumns(g.combos, width, g.limit)
		rows := groupRows(g.combos, columns)
		columnWidth := (width - 2*comboMargin) / float64(columns)

		for i, c := range g.combos {
			x := comboMargin + float64(i/rows)*columnWidth
			if err := drawCombo(ctx, c, x, y+float64(i%rows)*comboLineHeight, p); err != nil {
				return err
			}
		}

		y += float64(rows) * comboLineHeight
	}

	return nil
}

// drawCombo draws "#n [action] → [key] [key]" with its top left at (x, y).
func drawCombo(ctx Context2D, c model.Combo, x, y float64, p palette.Palette) error {
	mid := y + comboKeyHeight/2

	ctx.SetFillColor(p.TextNormal)

	if err := ctx.FillText("#"+strconv.Itoa(c.Index), x+comboIndexWidth/2, mid, comboIndexSize); err != nil {
		return err
	}

	x += comboIndexWidth

	action := model.KeyPosition{X: x, Y: y, Width: comboKeyWidth, Height: comboKeyHeight}
	if err := drawKey(ctx, action, model.KeyLabel{MainText: c.Action}, p); err != nil {
		return err
	}

	x += comboKeyWidth + comboActionGap

	ctx.SetFillColor(p.TextSub)

	if err := ctx.FillText("→", x+comboArrowWidth/2, mid, comboArrowSize); err != nil {
		return err
	}

	x += comboArrowWidth

	for _, key := range c.Keys {
		pos := model.KeyPosition{X: x, Y: y, Width: comboKeyWidth, Height: comboKeyHeight}
		if err := drawKey(ctx, pos, model.KeyLabel{MainText: key, IsSpecial: true}, p); err != nil {
			return err
		}

		x += comboKeyWidth + comboKeyGap
	}

	return nil
}
