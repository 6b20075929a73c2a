package render_test

import (
	"testing"

	"github.com/dasdy/vilviz/model"
	"github.com/dasdy/vilviz/palette"
	"github.com/dasdy/vilviz/render"
	"github.com/dasdy/vilviz/render/recorder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSheet(combos []model.Combo) render.CombinedSheet {
	return render.CombinedSheet{
		Label:     "test",
		Layers:    []model.LayerLabels{{{{MainText: "Q"}}}, {{{MainText: "W"}}}},
		Positions: map[model.RowCol]model.KeyPosition{{Row: 0, Col: 0}: {X: 20, Y: 20, Width: 78, Height: 60}},
		LayerSize: model.CanvasDimensions{Width: 118, Height: 100},
		Combos:    combos,
	}
}

var sheetCombos = []model.Combo{
	{Keys: []string{"X"}, Action: "Y", Index: 0},
	{Keys: []string{"A", "B"}, Action: "Esc", Index: 1},
	{Keys: []string{"C", "D", "E"}, Action: "Tab", Index: 2},
	{Keys: []string{"F", "G", "H", "I"}, Action: "Ent", Index: 3},
}

func renderSheet(t *testing.T, adapter *recorder.Adapter, sheet render.CombinedSheet) (*recorder.Surface, error) {
	t.Helper()

	dims := sheet.Dimensions()

	surface, err := adapter.CreateSurface(dims.Width, dims.Height)
	require.NoError(t, err)

	err = render.NewLayoutRenderer(adapter).RenderCombined(surface, sheet, palette.Light)

	rec, ok := surface.(*recorder.Surface)
	require.True(t, ok)

	return rec, err
}

func findText(s *recorder.Surface, text string) recorder.Call {
	for _, c := range s.Calls {
		if c.Op == recorder.OpFillText && c.Text == text {
			return c
		}
	}

	return recorder.Call{}
}

func TestCombinedDimensions(t *testing.T) {
	tests := []struct {
		name   string
		combos []model.Combo
		want   model.CanvasDimensions
	}{
		{"no combos", nil, model.CanvasDimensions{Width: 118, Height: 245}},
		{"single key combos only", sheetCombos[:1], model.CanvasDimensions{Width: 118, Height: 245}},
		{"short combo", sheetCombos[:2], model.CanvasDimensions{Width: 387, Height: 375}},
		{"short and long", sheetCombos, model.CanvasDimensions{Width: 559, Height: 515}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, testSheet(tt.combos).Dimensions())
		})
	}
}

func TestRenderCombined(t *testing.T) {
	s, err := renderSheet(t, &recorder.Adapter{}, testSheet(sheetCombos))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"LAYOUTS - test", "Q", "W",
		"COMBOS",
		"#1", "Esc", "→", "A", "B",
		"#2", "Tab", "→", "C", "D", "E",
		"#3", "Ent", "→", "F", "G", "H", "I",
	}, s.Texts())

	require.GreaterOrEqual(t, len(s.Calls), 5)
	assert.Equal(t, []float64{0, 0, 559, 515}, s.Calls[0].Args)
	assert.Equal(t, palette.Light.Background, s.Calls[0].Color)

	assert.Equal(t, []float64{0, 0, 559, 37}, s.Calls[1].Args)
	assert.Equal(t, palette.Light.HeaderBackground, s.Calls[1].Color)
	assert.Equal(t, []float64{279.5, 18.5, 24}, s.Calls[2].Args)
	assert.Equal(t, palette.Light.HeaderText, s.Calls[2].Color)
	assert.Equal(t, []float64{15, 37, 529, 1}, s.Calls[3].Args)
	assert.Equal(t, palette.Light.HeaderBorder, s.Calls[3].Color)

	t.Run("layers are stacked and centered", func(t *testing.T) {
		assert.Equal(t, []float64{241.5, 66, 76, 58}, s.Calls[4].Args)
		assert.Equal(t, []float64{279.5, 95, 24}, findText(s, "Q").Args)
		assert.Equal(t, []float64{279.5, 195, 24}, findText(s, "W").Args)
	})

	t.Run("combos fill one column per group", func(t *testing.T) {
		assert.Equal(t, []float64{40, 335, 20}, findText(s, "#1").Args)
		assert.Equal(t, []float64{40, 405, 20}, findText(s, "#2").Args)
		assert.Equal(t, []float64{40, 475, 20}, findText(s, "#3").Args)

		arrow := findText(s, "→")
		assert.Equal(t, []float64{183, 335, 14}, arrow.Args)
		assert.Equal(t, palette.Light.TextSub, arrow.Color)

		key := findText(s, "A")
		assert.Equal(t, []float64{247, 335, 24}, key.Args)
		assert.Equal(t, palette.Light.TextSpecial, key.Color)
	})
}

func TestRenderCombinedWithoutCombos(t *testing.T) {
	s, err := renderSheet(t, &recorder.Adapter{}, testSheet(sheetCombos[:1]))
	require.NoError(t, err)

	assert.Equal(t, []string{"LAYOUTS - test", "Q", "W"}, s.Texts())
}

func TestRenderCombinedFailures(t *testing.T) {
	t.Run("no context", func(t *testing.T) {
		_, err := renderSheet(t, &recorder.Adapter{FailContext: true}, testSheet(nil))
		require.ErrorIs(t, err, render.ErrSurfaceUnavailable)
	})

	t.Run("header draw fails", func(t *testing.T) {
		_, err := renderSheet(t, &recorder.Adapter{FailAfter: 2}, testSheet(nil))
		require.ErrorIs(t, err, render.ErrDrawFailed)
	})

	t.Run("combo draw fails", func(t *testing.T) {
		_, err := renderSheet(t, &recorder.Adapter{FailAfter: 20}, testSheet(sheetCombos))
		require.ErrorIs(t, err, render.ErrDrawFailed)
	})
}
