package keycode_test

import (
	"testing"

	"github.com/dasdy/vilviz/keycode"
	"github.com/dasdy/vilviz/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePlainAndSpecial(t *testing.T) {
	r := keycode.NewResolver()

	cases := []struct {
		name  string
		token model.Token
		want  model.KeyLabel
	}{
		{"letter", "KC_A", model.KeyLabel{MainText: "A"}},
		{"enter", "KC_ENTER", model.KeyLabel{MainText: "Enter"}},
		{"digit", "KC_1", model.KeyLabel{MainText: "1"}},
		{"function key", "KC_F12", model.KeyLabel{MainText: "F12"}},
		{"boot", "QK_BOOT", model.KeyLabel{MainText: "Boot", IsSpecial: true}},
		{"transparent", "KC_TRNS", model.KeyLabel{MainText: "▽", IsSpecial: true}},
		{"underscores", "_______", model.KeyLabel{MainText: "▽", IsSpecial: true}},
		{"unused", "-1", model.KeyLabel{IsSpecial: true, Empty: true}},
		{"no key", "KC_NO", model.KeyLabel{IsSpecial: true, Empty: true}},
		{"empty", "", model.KeyLabel{IsSpecial: true, Empty: true}},
		{"momentary", "MO(1)", model.KeyLabel{MainText: "MO(1)", IsSpecial: true}},
		{"to layer", "TO(3)", model.KeyLabel{MainText: "TO(3)", IsSpecial: true}},
		{"shifted digit", "LSFT(KC_1)", model.KeyLabel{MainText: "!", IsSpecial: true}},
		{"shifted letter", "S(KC_Q)", model.KeyLabel{MainText: "Q", IsSpecial: true}},
		{"shifted unknown", "LSFT(KC_ENTER)", model.KeyLabel{MainText: "S+Enter", IsSpecial: true}},
		{"ctrl", "LCTL(KC_C)", model.KeyLabel{MainText: "C+C", IsSpecial: true}},
		{"nested mods", "LCTL(LSFT(KC_1))", model.KeyLabel{MainText: "C+!", IsSpecial: true}},
		{"unknown ident", "XX_WAT", model.KeyLabel{MainText: "XX_WAT", IsSpecial: true}},
		{"garbage", "((", model.KeyLabel{MainText: "((", IsSpecial: true}},
		{"hex", "0x7E00", model.KeyLabel{MainText: "0x7E00", IsSpecial: true}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.Resolve(tc.token, nil))
		})
	}
}

func TestResolveLayerTap(t *testing.T) {
	r := keycode.NewResolver()

	t.Run("long form", func(t *testing.T) {
		label := r.Resolve("LT(2, KC_SPC)", nil)
		assert.Equal(t, "Space", label.MainText)
		assert.Equal(t, "LT2", label.SubText)
		assert.Equal(t, []string{"LT2"}, label.SubTexts)
		assert.True(t, label.IsSpecial)
	})

	t.Run("short form", func(t *testing.T) {
		label := r.Resolve("LT1(KC_ESC)", nil)
		assert.Equal(t, "Esc", label.MainText)
		assert.Equal(t, []string{"LT1"}, label.SubTexts)
		assert.True(t, label.IsSpecial)
	})
}

func TestResolveModTap(t *testing.T) {
	r := keycode.NewResolver()

	label := r.Resolve("LSFT_T(KC_A)", nil)
	assert.Equal(t, "A", label.MainText)
	assert.Equal(t, "LShift", label.SubText)
	assert.True(t, label.IsSpecial)

	osm := r.Resolve("OSM(MOD_LCTL)", nil)
	assert.Equal(t, "OSM", osm.MainText)
	assert.Equal(t, "LCtrl", osm.SubText)
}

func TestResolveTapDance(t *testing.T) {
	r := keycode.NewResolver()

	t.Run("tap and hold", func(t *testing.T) {
		table := keycode.TapDanceTable{{Tap: "A", Hold: "B"}}

		label := r.Resolve("TD(0)", table)
		assert.Equal(t, model.KeyLabel{MainText: "A", SubText: "B", SubTexts: []string{"B"}}, label)
	})

	t.Run("all slots", func(t *testing.T) {
		table := keycode.TapDanceTable{{Tap: "A", Hold: "B", DoubleTap: "C", TapHold: "D"}}

		label := r.Resolve("TD(0)", table)
		assert.Equal(t, "A", label.MainText)
		assert.Equal(t, "B", label.SubText)
		assert.Equal(t, []string{"B", "C", "D"}, label.SubTexts)
		assert.False(t, label.IsSpecial)
	})

	t.Run("missing hold", func(t *testing.T) {
		table := keycode.TapDanceTable{{Tap: "A", DoubleTap: "C"}}

		label := r.Resolve("TD(0)", table)
		assert.Equal(t, "C", label.SubText)
		assert.Equal(t, []string{"C"}, label.SubTexts)
	})

	t.Run("out of range", func(t *testing.T) {
		label := r.Resolve("TD(4)", keycode.TapDanceTable{{Tap: "A"}})
		assert.Equal(t, model.KeyLabel{MainText: "TD(4)", IsSpecial: true}, label)
	})

	t.Run("main text equals tap", func(t *testing.T) {
		entries := [][]model.Token{
			{"KC_A", "KC_LSFT", "KC_NO", "KC_NO", "200"},
			{"KC_ESC", "KC_NO", "KC_GRAVE", "KC_NO", "200"},
		}
		table := keycode.NewTapDanceTable(entries, r)
		require.Len(t, table, 2)

		for i, td := range table {
			label := r.Resolve(model.Token("TD("+string(rune('0'+i))+")"), table)
			assert.Equal(t, td.Tap, label.MainText)
		}

		assert.Equal(t, model.TapDanceInfo{Tap: "A", Hold: "LShift"}, table[0])
		assert.Equal(t, model.TapDanceInfo{Tap: "Esc", DoubleTap: "`"}, table[1])
		assert.Equal(t, []string{"Esc", "`"}, keycode.Slots(table[1]))
	})
}

func TestResolverTableIsReplaceable(t *testing.T) {
	r := keycode.NewResolver()
	r.Labels["KC_A"] = "Alpha"

	assert.Equal(t, "Alpha", r.Label("KC_A"))
	assert.Equal(t, "A", keycode.NewResolver().Label("KC_A"))
}

func TestResolveCombos(t *testing.T) {
	r := keycode.NewResolver()

	entries := [][]model.Token{
		{"KC_J", "KC_K", "KC_NO", "KC_NO", "KC_ESC"},
		{"KC_NO", "KC_NO", "KC_NO", "KC_NO", "KC_NO"},
		{"KC_A", "KC_B"},
		{"KC_D", "KC_F", "KC_G", "KC_NO", "TD(0)"},
	}
	table := keycode.TapDanceTable{{Tap: "Tab"}}

	combos := keycode.ResolveCombos(entries, table, r)
	require.Len(t, combos, 2)

	assert.Equal(t, []string{"J", "K"}, combos[0].Keys)
	assert.Equal(t, "Esc", combos[0].Action)
	assert.Equal(t, "J + K → Esc", combos[0].Description)
	assert.Equal(t, 0, combos[0].Index)

	assert.Equal(t, "Tab", combos[1].Action)
	assert.Equal(t, 3, combos[1].Index)
}
