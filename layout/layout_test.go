package layout_test

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/dasdy/vilviz/keycode"
	"github.com/dasdy/vilviz/layout"
	"github.com/dasdy/vilviz/model"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testdataPath(name string) string {
	_, b, _, _ := runtime.Caller(0)

	return filepath.Join(filepath.Dir(b), "testdata", name)
}

// uniform builds a six layer configuration where every layer is a copy of keys.
func uniform(keys [][]model.Token) *model.Configuration {
	cfg := &model.Configuration{Version: 1}
	for range model.LayerCount {
		cfg.Layout = append(cfg.Layout, keys)
	}

	return cfg
}

func TestLoadVIL(t *testing.T) {
	t.Run("Parses sample file", func(t *testing.T) {
		file, err := os.Open(testdataPath("minimal.vil"))
		require.NoError(t, err)
		defer file.Close()

		cfg, err := layout.LoadVIL(file)
		require.NoError(t, err)

		assert.Equal(t, 1, cfg.Version)
		assert.Equal(t, uint64(4150282467934011001), cfg.UID)
		assert.Len(t, cfg.Layout, 6)
		assert.Equal(t, model.Token("-1"), cfg.Layout[0][1][1])
		require.Len(t, cfg.TapDance, 1)
		assert.Equal(t, model.Token("200"), cfg.TapDance[0][4])
		assert.Len(t, cfg.Combo, 1)
	})

	t.Run("Rejects broken JSON", func(t *testing.T) {
		_, err := layout.LoadVIL(strings.NewReader(`{"layout": [`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "could not decode VIL JSON")
	})

	t.Run("Rejects object tokens", func(t *testing.T) {
		_, err := layout.ParseVIL([]byte(`{"version": 1, "layout": [[[{}]]]}`))
		require.Error(t, err)
	})

	t.Run("Loads by path", func(t *testing.T) {
		cfg, err := layout.LoadFile(testdataPath("minimal.vil"))
		require.NoError(t, err)
		assert.Len(t, cfg.Layout, 6)

		_, err = layout.LoadFile(testdataPath("missing.vil"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "could not open file")
	})
}

func TestValidate(t *testing.T) {
	t.Run("Accepts rectangular layout", func(t *testing.T) {
		cfg, err := layout.LoadFile(testdataPath("minimal.vil"))
		require.NoError(t, err)

		v, err := layout.Validate(cfg)
		require.NoError(t, err)
		assert.Equal(t, 2, v.Rows)
		assert.Equal(t, 3, v.Cols)
	})

	cases := []struct {
		name string
		cfg  *model.Configuration
		kind layout.ErrorKind
		is   error
	}{
		{
			name: "five layers",
			cfg: &model.Configuration{
				Version: 1,
				Layout:  uniform([][]model.Token{{"KC_A"}}).Layout[:5],
			},
			kind: layout.MalformedLayout,
			is:   layout.ErrMalformedLayout,
		},
		{
			name: "no layers",
			cfg:  &model.Configuration{Version: 1},
			kind: layout.MalformedLayout,
			is:   layout.ErrMalformedLayout,
		},
		{
			name: "empty reference layer",
			cfg:  uniform([][]model.Token{}),
			kind: layout.MalformedLayout,
			is:   layout.ErrMalformedLayout,
		},
		{
			name: "empty first row",
			cfg:  uniform([][]model.Token{{}, {"KC_A"}}),
			kind: layout.RaggedMatrix,
			is:   layout.ErrRaggedMatrix,
		},
		{
			name: "every reference row empty",
			cfg:  uniform([][]model.Token{{}, {}}),
			kind: layout.MalformedLayout,
			is:   layout.ErrMalformedLayout,
		},
		{
			name: "tap dance index overflows int",
			cfg: func() *model.Configuration {
				cfg := uniform([][]model.Token{{"KC_A", "TD(99999999999999999999)"}})
				cfg.TapDance = [][]model.Token{{"KC_B", "KC_C", "KC_NO", "KC_NO", "200"}}

				return cfg
			}(),
			kind: layout.InvalidTapDanceRef,
			is:   layout.ErrInvalidTapDanceRef,
		},
		{
			name: "tap dance without index",
			cfg:  uniform([][]model.Token{{"TD(KC_A)"}}),
			kind: layout.InvalidTapDanceRef,
			is:   layout.ErrInvalidTapDanceRef,
		},
		{
			name: "wrong version",
			cfg:  &model.Configuration{Version: 2, Layout: uniform([][]model.Token{{"KC_A"}}).Layout},
			kind: layout.UnsupportedVersion,
			is:   layout.ErrUnsupportedVersion,
		},
		{
			name: "tap dance out of range",
			cfg:  uniform([][]model.Token{{"KC_A", "TD(1)"}}),
			kind: layout.InvalidTapDanceRef,
			is:   layout.ErrInvalidTapDanceRef,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := layout.Validate(tc.cfg)
			require.Error(t, err)

			var cfgErr *layout.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tc.kind, cfgErr.Kind)
			assert.ErrorIs(t, err, tc.is)
		})
	}

	t.Run("Ragged row", func(t *testing.T) {
		cfg := uniform([][]model.Token{{"KC_A", "KC_B"}, {"KC_C", "KC_D"}})
		cfg.Layout[3] = [][]model.Token{{"KC_A", "KC_B"}, {"KC_C"}}

		_, err := layout.Validate(cfg)
		require.Error(t, err)

		var cfgErr *layout.ConfigError
		require.True(t, errors.As(err, &cfgErr))
		assert.Equal(t, layout.RaggedMatrix, cfgErr.Kind)
		assert.Equal(t, 3, cfgErr.Layer)
		assert.Equal(t, 1, cfgErr.Row)
		assert.ErrorIs(t, err, layout.ErrRaggedMatrix)
	})

	t.Run("Layer with fewer rows", func(t *testing.T) {
		cfg := uniform([][]model.Token{{"KC_A"}, {"KC_B"}})
		cfg.Layout[5] = [][]model.Token{{"KC_A"}}

		_, err := layout.Validate(cfg)
		require.ErrorIs(t, err, layout.ErrRaggedMatrix)
	})

	t.Run("Tap dance reference inside combo", func(t *testing.T) {
		cfg := uniform([][]model.Token{{"KC_A"}})
		cfg.TapDance = [][]model.Token{{"KC_A", "KC_NO", "KC_NO", "KC_NO", "200"}}
		cfg.Combo = [][]model.Token{{"KC_A", "KC_B", "KC_NO", "KC_NO", "TD(3)"}}

		_, err := layout.Validate(cfg)
		require.ErrorIs(t, err, layout.ErrInvalidTapDanceRef)
	})

	t.Run("Valid tap dance reference", func(t *testing.T) {
		cfg := uniform([][]model.Token{{"TD(0)"}})
		cfg.TapDance = [][]model.Token{{"KC_A", "KC_B", "KC_NO", "KC_NO", "200"}}

		_, err := layout.Validate(cfg)
		require.NoError(t, err)
	})
}

func TestBuildGrid(t *testing.T) {
	r := keycode.NewResolver()

	t.Run("Mirrors the layout shape", func(t *testing.T) {
		cfg, err := layout.LoadFile(testdataPath("minimal.vil"))
		require.NoError(t, err)

		v, err := layout.Validate(cfg)
		require.NoError(t, err)

		grid := layout.BuildGrid(v, r)

		for _, id := range model.Layers {
			require.Len(t, grid[id], len(cfg.Layout[id]))

			for row := range cfg.Layout[id] {
				assert.Len(t, grid[id][row], len(cfg.Layout[id][row]))
			}
		}

		assert.Equal(t, model.KeyLabel{MainText: "A", SubText: "LShift", SubTexts: []string{"LShift"}}, grid[0][0][2])
		assert.Equal(t, "Space", grid[0][1][0].MainText)
		assert.True(t, grid[0][1][1].Empty)
		assert.Equal(t, model.KeyLabel{MainText: "XX_WAT", IsSpecial: true}, grid[5][1][2])
	})

	t.Run("Two keys on layer zero", func(t *testing.T) {
		cfg := uniform([][]model.Token{{"KC_NO", "KC_NO"}})
		cfg.Layout[0] = [][]model.Token{{"KC_A", "KC_B"}}

		v, err := layout.Validate(cfg)
		require.NoError(t, err)

		grid := layout.BuildGrid(v, r)

		want := model.LayerLabels{{{MainText: "A"}, {MainText: "B"}}}
		if diff := cmp.Diff(want, grid[0]); diff != "" {
			t.Errorf("layer 0 mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Tap dance main text is the tap slot", func(t *testing.T) {
		cfg := uniform([][]model.Token{{"TD(0)", "TD(1)"}})
		cfg.TapDance = [][]model.Token{
			{"KC_A", "KC_B", "KC_NO", "KC_NO", "200"},
			{"KC_Z", "KC_NO", "KC_NO", "KC_NO", "200"},
		}

		v, err := layout.Validate(cfg)
		require.NoError(t, err)

		grid := layout.BuildGrid(v, r)
		table := keycode.NewTapDanceTable(cfg.TapDance, r)

		for _, id := range model.Layers {
			assert.Equal(t, table[0].Tap, grid[id][0][0].MainText)
			assert.Equal(t, table[1].Tap, grid[id][0][1].MainText)
		}
	})

	t.Run("Is deterministic", func(t *testing.T) {
		cfg, err := layout.LoadFile(testdataPath("minimal.vil"))
		require.NoError(t, err)

		v, err := layout.Validate(cfg)
		require.NoError(t, err)

		if diff := cmp.Diff(layout.BuildGrid(v, r), layout.BuildGrid(v, r)); diff != "" {
			t.Errorf("grids differ:\n%s", diff)
		}
	})
}
