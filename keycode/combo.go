package keycode

import (
	"strings"

	"github.com/dasdy/vilviz/model"
)

const comboKeys = 4

// ResolveCombos turns raw combo entries ([k1, k2, k3, k4, action]) into labels.
// Entries without any trigger key or without an action are skipped.
func ResolveCombos(entries [][]model.Token, table TapDanceTable, r *Resolver) []model.Combo {
	var combos []model.Combo

	for i, entry := range entries {
		if len(entry) < comboKeys+1 {
			continue
		}

		keys := make([]string, 0, comboKeys)

		for _, tok := range entry[:comboKeys] {
			label := r.Resolve(tok, table)
			if label.Empty {
				continue
			}

			keys = append(keys, label.MainText)
		}

		action := r.Resolve(entry[comboKeys], table)
		if len(keys) == 0 || action.Empty {
			continue
		}

		combos = append(combos, model.Combo{
			Keys:        keys,
			Action:      action.MainText,
			Description: strings.Join(keys, " + ") + " → " + action.MainText,
			Index:       i,
		})
	}

	return combos
}
