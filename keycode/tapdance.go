package keycode

import (
	"github.com/dasdy/vilviz/model"
)

// tap, hold, double tap, tap+hold; a fifth element carries the tapping term.
const tapDanceSlots = 4

// NewTapDanceTable resolves every slot of the raw tap-dance entries to its
// display label. Blank slots stay empty.
func NewTapDanceTable(entries [][]model.Token, r *Resolver) TapDanceTable {
	table := make(TapDanceTable, 0, len(entries))

	for _, entry := range entries {
		var slots [tapDanceSlots]string

		for i := 0; i < tapDanceSlots && i < len(entry); i++ {
			slots[i] = r.Resolve(entry[i], nil).MainText
		}

		table = append(table, model.TapDanceInfo{
			Tap:       slots[0],
			Hold:      slots[1],
			DoubleTap: slots[2],
			TapHold:   slots[3],
		})
	}

	return table
}

// Slots returns the present slot labels in tap, hold, double tap, tap+hold order.
func Slots(td model.TapDanceInfo) []string {
	out := make([]string, 0, tapDanceSlots)

	for _, s := range []string{td.Tap, td.Hold, td.DoubleTap, td.TapHold} {
		if s != "" {
			out = append(out, s)
		}
	}

	return out
}
