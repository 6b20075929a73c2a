package components_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/dasdy/vilviz/model"
	"github.com/dasdy/vilviz/web/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinks(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"layer page", components.LayerPageLink(3), "/?layer=3"},
		{"layer image", components.LayerImageLink(2, "png"), "/layer?id=2&format=png"},
		{"layer image default", components.LayerImageLink(0, ""), "/layer?id=0&format=svg"},
		{"recent", components.RecentSelectLink("my board.vil"), "/recent/select?name=my+board.vil"},
		{"theme", components.ThemeLink("light"), "/theme?name=light"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func render(t *testing.T, rc *components.RenderContext) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, components.Index(rc).Render(context.Background(), &buf))

	return buf.String()
}

func TestIndexEmpty(t *testing.T) {
	out := render(t, &components.RenderContext{Theme: "dark"})

	assert.Contains(t, out, "No configuration loaded.")
	assert.Contains(t, out, "None yet.")
	assert.Contains(t, out, "<title>vilviz</title>")
	assert.NotContains(t, out, `<img`)
}

func TestIndexLoaded(t *testing.T) {
	rc := &components.RenderContext{
		Name:     "corne.vil",
		Theme:    "light",
		Themes:   []string{"dark", "light"},
		Loaded:   true,
		Selected: 1,
		Format:   "svg",
		Layers: []components.LayerTab{
			{ID: 0}, {ID: 1, Selected: true}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5},
		},
		TapDances: []components.TapDanceRow{{Index: 0, Slots: []string{"A", "<B>", "", ""}}},
		Combos:    []model.Combo{{Description: "J + K → Esc"}},
		Recent:    []components.RecentItem{{ID: 1, Name: "corne.vil", When: "2025-03-01 12:00", Selected: true}},
	}

	out := render(t, rc)

	assert.Contains(t, out, "<title>corne.vil - vilviz</title>")
	assert.Contains(t, out, `<a class="selected" href="/?layer=1">Layer 1</a>`)
	assert.Contains(t, out, `src="/layer?id=1&amp;format=svg"`)
	assert.Contains(t, out, "<td>TD(0)</td>")
	assert.Contains(t, out, "<td>&lt;B&gt;</td>")
	assert.Contains(t, out, "J + K → Esc")
	assert.Contains(t, out, `href="/recent/select?name=corne.vil"`)
	assert.Contains(t, out, "(open)")
	assert.Contains(t, out, `href="/theme?name=light"`)
	assert.Equal(t, 6, bytes.Count([]byte(out), []byte(`href="/?layer=`)))
}
