// Package viewer ties the pipeline together for one viewing session: it loads
// a configuration, keeps the resolved grid and tracks the selected layer.
package viewer

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dasdy/vilviz/geometry"
	"github.com/dasdy/vilviz/keycode"
	"github.com/dasdy/vilviz/layout"
	"github.com/dasdy/vilviz/logging"
	"github.com/dasdy/vilviz/model"
	"github.com/dasdy/vilviz/palette"
	"github.com/dasdy/vilviz/render"
)

var (
	ErrInvalidLayer    = errors.New("invalid layer")
	ErrNoConfiguration = errors.New("no configuration loaded")
)

var logCtx = logging.PackageCtx("viewer")

type Options struct {
	Palette        palette.Palette
	DrawingContext model.DrawingContext
	Calculator     *geometry.Calculator
	Resolver       *keycode.Resolver
	DefaultLayer   model.LayerID
}

func DefaultOptions() Options {
	return Options{
		Palette:        palette.Dark,
		DrawingContext: model.DefaultDrawingContext(),
		Calculator:     &geometry.Calculator{},
		Resolver:       keycode.NewResolver(),
	}
}

// Viewer is not safe for concurrent use.
type Viewer struct {
	opts Options

	name      string
	config    *layout.ValidatedConfig
	grid      model.LayerGrid
	tapDance  keycode.TapDanceTable
	combos    []model.Combo
	positions map[model.RowCol]model.KeyPosition
	dims      model.CanvasDimensions
	selected  model.LayerID
}

func New(opts Options) (*Viewer, error) {
	if !opts.DefaultLayer.Valid() {
		return nil, fmt.Errorf("%w: default layer %d", ErrInvalidLayer, opts.DefaultLayer)
	}

	if opts.Resolver == nil {
		opts.Resolver = keycode.NewResolver()
	}

	if opts.Calculator == nil {
		opts.Calculator = &geometry.Calculator{}
	}

	if opts.DrawingContext == (model.DrawingContext{}) {
		opts.DrawingContext = model.DefaultDrawingContext()
	}

	if opts.Palette == (palette.Palette{}) {
		opts.Palette = palette.Dark
	}

	return &Viewer{opts: opts, selected: opts.DefaultLayer}, nil
}

// Load validates cfg and rebuilds the grid and geometry. On failure the
// previously loaded configuration stays active.
func (v *Viewer) Load(name string, cfg *model.Configuration) error {
	validated, err := layout.Validate(cfg)
	if err != nil {
		slog.WarnContext(logCtx, "rejected configuration", "name", name, "error", err)

		return fmt.Errorf("could not load %s: %w", name, err)
	}

	r := v.opts.Resolver
	dc := v.opts.DrawingContext

	v.name = name
	v.config = validated
	v.grid = layout.BuildGrid(validated, r)
	v.tapDance = keycode.NewTapDanceTable(cfg.TapDance, r)
	v.combos = keycode.ResolveCombos(cfg.Combo, v.tapDance, r)
	v.positions = v.opts.Calculator.ComputePositions(validated.Rows, validated.Cols, dc)
	v.dims = geometry.Fit(geometry.ComputeCanvasDimensions(validated.Rows, validated.Cols, dc), v.positions, dc)

	slog.InfoContext(logCtx, "loaded configuration",
		"name", name,
		"rows", validated.Rows,
		"cols", validated.Cols,
		"tap_dances", len(v.tapDance),
		"combos", len(v.combos))

	return nil
}

// LoadBytes decodes VIL content and loads it.
func (v *Viewer) LoadBytes(name string, content []byte) error {
	cfg, err := layout.ParseVIL(content)
	if err != nil {
		return fmt.Errorf("could not load %s: %w", name, err)
	}

	return v.Load(name, cfg)
}

func (v *Viewer) Loaded() bool {
	return v.config != nil
}

func (v *Viewer) Name() string {
	return v.name
}

// Select switches to layer id. Out of range ids leave the selection unchanged.
func (v *Viewer) Select(id model.LayerID) error {
	if !id.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidLayer, id)
	}

	v.selected = id

	return nil
}

func (v *Viewer) Selected() model.LayerID {
	return v.selected
}

func (v *Viewer) SetPalette(p palette.Palette) {
	v.opts.Palette = p
}

func (v *Viewer) Palette() palette.Palette {
	return v.opts.Palette
}

func (v *Viewer) Layer(id model.LayerID) (model.LayerLabels, error) {
	if v.config == nil {
		return nil, ErrNoConfiguration
	}

	if !id.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLayer, id)
	}

	return v.grid[id], nil
}

func (v *Viewer) Grid() model.LayerGrid {
	return v.grid
}

func (v *Viewer) TapDances() keycode.TapDanceTable {
	return v.tapDance
}

func (v *Viewer) Combos() []model.Combo {
	return v.combos
}

func (v *Viewer) Dimensions() model.CanvasDimensions {
	return v.dims
}

// Render draws the selected layer on a new surface from adapter.
func (v *Viewer) Render(adapter render.Adapter) (render.Surface, error) {
	return v.RenderLayer(adapter, v.selected)
}

func (v *Viewer) RenderLayer(adapter render.Adapter, id model.LayerID) (render.Surface, error) {
	labels, err := v.Layer(id)
	if err != nil {
		return nil, err
	}

	surface, err := adapter.CreateSurface(v.dims.Width, v.dims.Height)
	if err != nil {
		return nil, &render.RenderError{Kind: render.SurfaceUnavailable, Err: err}
	}

	if err := render.NewLayoutRenderer(adapter).Render(surface, labels, v.positions, v.opts.Palette); err != nil {
		return nil, fmt.Errorf("could not render layer %d: %w", id, err)
	}

	slog.DebugContext(logCtx, "rendered layer", "name", v.name, "layer", int(id))

	return surface, nil
}

// Sheet collects every layer and the combos into one printable sheet.
func (v *Viewer) Sheet() (render.CombinedSheet, error) {
	if v.config == nil {
		return render.CombinedSheet{}, ErrNoConfiguration
	}

	return render.CombinedSheet{
		Label:     v.name,
		Layers:    v.grid[:],
		Positions: v.positions,
		LayerSize: v.dims,
		Combos:    v.combos,
	}, nil
}

// RenderCombined draws all layers and the combo panel on one surface.
func (v *Viewer) RenderCombined(adapter render.Adapter) (render.Surface, error) {
	sheet, err := v.Sheet()
	if err != nil {
		return nil, err
	}

	dims := sheet.Dimensions()

	surface, err := adapter.CreateSurface(dims.Width, dims.Height)
	if err != nil {
		return nil, &render.RenderError{Kind: render.SurfaceUnavailable, Err: err}
	}

	if err := render.NewLayoutRenderer(adapter).RenderCombined(surface, sheet, v.opts.Palette); err != nil {
		return nil, fmt.Errorf("could not render combined sheet: %w", err)
	}

	slog.DebugContext(logCtx, "rendered combined sheet", "name", v.name,
		"width", dims.Width, "height", dims.Height)

	return surface, nil
}
