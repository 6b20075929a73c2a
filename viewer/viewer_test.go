package viewer_test

import (
	"testing"

	"github.com/dasdy/vilviz/layout"
	"github.com/dasdy/vilviz/model"
	"github.com/dasdy/vilviz/palette"
	"github.com/dasdy/vilviz/render"
	"github.com/dasdy/vilviz/render/recorder"
	"github.com/dasdy/vilviz/viewer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `{
  "version": 1,
  "uid": 1,
  "layout": [
    [["KC_A", "TD(0)"]],
    [["KC_1", "KC_2"]],
    [["KC_F1", "KC_F2"]],
    [["KC_NO", "KC_NO"]],
    [["KC_NO", "KC_NO"]],
    [["QK_BOOT", "KC_NO"]]
  ],
  "tap_dance": [["KC_B", "KC_C", "KC_NO", "KC_NO", 200]],
  "combo": [["KC_A", "KC_B", "KC_NO", "KC_NO", "KC_ESC"]]
}`

func newViewer(t *testing.T) *viewer.Viewer {
	t.Helper()

	v, err := viewer.New(viewer.DefaultOptions())
	require.NoError(t, err)

	return v
}

func TestLoad(t *testing.T) {
	v := newViewer(t)
	assert.False(t, v.Loaded())

	require.NoError(t, v.LoadBytes("sample.vil", []byte(sample)))
	assert.True(t, v.Loaded())
	assert.Equal(t, "sample.vil", v.Name())

	grid := v.Grid()
	assert.Equal(t, "A", grid[0][0][0].MainText)
	assert.Equal(t, "B", grid[0][0][1].MainText)
	assert.Equal(t, "C", grid[0][0][1].SubText)
	assert.Equal(t, "Boot", grid[5][0][0].MainText)

	require.Len(t, v.TapDances(), 1)
	require.Len(t, v.Combos(), 1)
	assert.Equal(t, "A + B → Esc", v.Combos()[0].Description)

	assert.Equal(t, model.CanvasDimensions{Width: 204, Height: 104}, v.Dimensions())
}

func TestLoadKeepsPreviousOnFailure(t *testing.T) {
	v := newViewer(t)
	require.NoError(t, v.LoadBytes("sample.vil", []byte(sample)))

	err := v.Load("broken.vil", &model.Configuration{Version: 1})
	require.ErrorIs(t, err, layout.ErrMalformedLayout)

	assert.Equal(t, "sample.vil", v.Name())
	assert.Equal(t, "A", v.Grid()[0][0][0].MainText)

	err = v.LoadBytes("garbage.vil", []byte("{"))
	require.Error(t, err)
	assert.Equal(t, "sample.vil", v.Name())
}

func TestSelect(t *testing.T) {
	v := newViewer(t)
	assert.Equal(t, model.LayerID(0), v.Selected())

	require.NoError(t, v.Select(3))
	assert.Equal(t, model.LayerID(3), v.Selected())

	for _, id := range []model.LayerID{-1, 6, 42} {
		err := v.Select(id)
		require.ErrorIs(t, err, viewer.ErrInvalidLayer)
		assert.Equal(t, model.LayerID(3), v.Selected())
	}

	require.NoError(t, v.Select(5))
	require.NoError(t, v.Select(0))
	assert.Equal(t, model.LayerID(0), v.Selected())
}

func TestDefaultLayer(t *testing.T) {
	opts := viewer.DefaultOptions()
	opts.DefaultLayer = 2

	v, err := viewer.New(opts)
	require.NoError(t, err)
	assert.Equal(t, model.LayerID(2), v.Selected())

	opts.DefaultLayer = 9
	_, err = viewer.New(opts)
	require.ErrorIs(t, err, viewer.ErrInvalidLayer)
}

func TestRender(t *testing.T) {
	v := newViewer(t)
	adapter := &recorder.Adapter{}

	_, err := v.Render(adapter)
	require.ErrorIs(t, err, viewer.ErrNoConfiguration)

	require.NoError(t, v.LoadBytes("sample.vil", []byte(sample)))

	surface, err := v.Render(adapter)
	require.NoError(t, err)

	rec, ok := surface.(*recorder.Surface)
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B", "C"}, rec.Texts())

	require.NoError(t, v.Select(1))

	surface, err = v.Render(adapter)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, surface.(*recorder.Surface).Texts())
}

func TestRenderUsesPalette(t *testing.T) {
	v := newViewer(t)
	require.NoError(t, v.LoadBytes("sample.vil", []byte(sample)))

	v.SetPalette(palette.Light)

	surface, err := v.RenderLayer(&recorder.Adapter{}, 0)
	require.NoError(t, err)
	assert.Equal(t, palette.Light.Background, surface.(*recorder.Surface).Calls[0].Color)
}

func TestRenderSurfaceUnavailable(t *testing.T) {
	v := newViewer(t)
	require.NoError(t, v.LoadBytes("sample.vil", []byte(sample)))

	_, err := v.Render(&recorder.Adapter{FailContext: true})
	require.ErrorIs(t, err, render.ErrSurfaceUnavailable)
}

func TestRenderCombined(t *testing.T) {
	v := newViewer(t)

	_, err := v.RenderCombined(&recorder.Adapter{})
	require.ErrorIs(t, err, viewer.ErrNoConfiguration)

	require.NoError(t, v.LoadBytes("sample.vil", []byte(sample)))

	surface, err := v.RenderCombined(&recorder.Adapter{})
	require.NoError(t, err)

	assert.InDelta(t, 387.0, surface.Width(), 1e-9)
	assert.InDelta(t, 799.0, surface.Height(), 1e-9)

	rec, ok := surface.(*recorder.Surface)
	require.True(t, ok)

	texts := rec.Texts()
	require.NotEmpty(t, texts)
	assert.Equal(t, "LAYOUTS - sample.vil", texts[0])
	assert.Contains(t, texts, "Boot")
	assert.Equal(t, []string{"COMBOS", "#0", "Esc", "→", "A", "B"}, texts[len(texts)-6:])

	require.Greater(t, len(rec.Calls), 4)
	assert.Equal(t, []float64{112.5, 66, 76, 58}, rec.Calls[4].Args)
}
