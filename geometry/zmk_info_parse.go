package geometry

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/dasdy/vilviz/model"
)

type ZMKKeyDescriptor struct {
	Row   int      `json:"row"`
	Col   int      `json:"col"`
	X     float64  `json:"x"`
	Y     float64  `json:"y"`
	W     *float64 `json:"w"`
	H     *float64 `json:"h"`
	R     float64  `json:"r"`
	Rx    float64  `json:"rx"`
	Ry    float64  `json:"ry"`
	Label string   `json:"label"`
}

type ZMKLayoutCollection struct {
	Layout []ZMKKeyDescriptor `json:"layout"`
}

type ZmkInfoJSON struct {
	ID      string                         `json:"id"`
	Name    string                         `json:"name"`
	Layouts map[string]ZMKLayoutCollection `json:"layouts"`
}

// LoadZmkOverrides reads a ZMK/QMK info.json and turns every key descriptor
// into an override for its matrix position. Rotation about (rx, ry) is
// converted into a rotation about the key center.
func LoadZmkOverrides(reader io.Reader) (map[model.RowCol]Override, error) {
	var info ZmkInfoJSON

	if err := json.NewDecoder(reader).Decode(&info); err != nil {
		return nil, fmt.Errorf("could not decode ZMK info JSON: %w", err)
	}

	if len(info.Layouts) != 1 {
		return nil, fmt.Errorf("expected exactly one layout, got %d", len(info.Layouts))
	}

	overrides := make(map[model.RowCol]Override)

	for name, layout := range info.Layouts {
		slog.Debug("loading physical layout", "name", name, "keys", len(layout.Layout))

		for _, key := range layout.Layout {
			overrides[model.RowCol{Row: key.Row, Col: key.Col}] = key.override()
		}
	}

	return overrides, nil
}

func (k ZMKKeyDescriptor) override() Override {
	w, h := 1.0, 1.0
	if k.W != nil {
		w = *k.W
	}

	if k.H != nil {
		h = *k.H
	}

	x, y := k.X, k.Y

	if k.R != 0 {
		cx, cy := x+w/2, y+h/2
		sin, cos := math.Sincos(k.R * math.Pi / 180)
		dx, dy := cx-k.Rx, cy-k.Ry

		x = k.Rx + dx*cos - dy*sin - w/2
		y = k.Ry + dx*sin + dy*cos - h/2
	}

	return Override{X: &x, Y: &y, Width: &w, Height: &h, Rotation: k.R}
}
