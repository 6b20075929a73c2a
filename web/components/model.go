//go:generate go tool templ generate -f index.templ

package components

import "github.com/dasdy/vilviz/model"

type LayerTab struct {
	ID       model.LayerID
	Selected bool
}

type TapDanceRow struct {
	Index int
	Slots []string
}

type RecentItem struct {
	ID       int64
	Name     string
	When     string
	Selected bool
}

// RenderContext is everything the index page shows.
type RenderContext struct {
	Name      string
	Theme     string
	Themes    []string
	Loaded    bool
	Selected  model.LayerID
	Format    string
	Layers    []LayerTab
	TapDances []TapDanceRow
	Combos    []model.Combo
	Recent    []RecentItem
	Message   string
}
