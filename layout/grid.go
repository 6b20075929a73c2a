package layout

import (
	"github.com/dasdy/vilviz/keycode"
	"github.com/dasdy/vilviz/model"
)

// BuildGrid resolves every cell of every layer. The result has exactly the
// shape of the validated layout.
func BuildGrid(v *ValidatedConfig, r *keycode.Resolver) model.LayerGrid {
	table := keycode.NewTapDanceTable(v.Config.TapDance, r)

	var grid model.LayerGrid

	for _, id := range model.Layers {
		rows := v.Config.Layout[id]
		labels := make(model.LayerLabels, len(rows))

		for row, keys := range rows {
			labels[row] = make([]model.KeyLabel, len(keys))

			for col, tok := range keys {
				labels[row][col] = r.Resolve(tok, table)
			}
		}

		grid[id] = labels
	}

	return grid
}
