package keycode

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dasdy/vilviz/model"
)

const transparentLabel = "▽"

var layerTapShorthand = regexp.MustCompile(`^LT(\d+)$`)

// TapDanceTable holds resolved tap-dance entries indexed by TD(n).
type TapDanceTable []model.TapDanceInfo

// Resolver turns raw tokens into display labels. It never fails: anything it
// does not understand comes back as a special label carrying the raw token.
type Resolver struct {
	Labels   map[string]string
	Specials map[string]string
	Shifted  map[string]string
}

func NewResolver() *Resolver {
	return &Resolver{
		Labels:   DefaultLabels(),
		Specials: DefaultSpecials(),
		Shifted:  DefaultShifted(),
	}
}

func isBlank(s string) bool {
	switch s {
	case "", "-1", "KC_NO", "XXXXXXX", "NO":
		return true
	}

	return false
}

func isTransparent(s string) bool {
	switch s {
	case "KC_TRNS", "KC_TRANSPARENT", "_______", "TRNS":
		return true
	}

	return false
}

func unknown(token string) model.KeyLabel {
	return model.KeyLabel{MainText: token, IsSpecial: true}
}

func withSubs(label model.KeyLabel, subs ...string) model.KeyLabel {
	present := make([]string, 0, len(subs))

	for _, s := range subs {
		if s != "" {
			present = append(present, s)
		}
	}

	if len(present) == 0 {
		return label
	}

	label.SubText = present[0]
	label.SubTexts = present

	return label
}

// Resolve maps a token to its label. table may be nil when the configuration
// has no tap dances.
func (r *Resolver) Resolve(token model.Token, table TapDanceTable) model.KeyLabel {
	raw := strings.TrimSpace(string(token))

	if isBlank(raw) {
		return model.KeyLabel{MainText: "", IsSpecial: true, Empty: true}
	}

	if isTransparent(raw) {
		return model.KeyLabel{MainText: transparentLabel, IsSpecial: true}
	}

	expr, err := Parse(raw)
	if err != nil {
		return unknown(string(token))
	}

	label, ok := r.resolveExpr(expr, table)
	if !ok {
		return unknown(string(token))
	}

	return label
}

func (r *Resolver) resolveExpr(expr *Expr, table TapDanceTable) (model.KeyLabel, bool) {
	if !expr.IsCall() {
		return r.resolveName(expr.Name)
	}

	name := expr.Name

	switch {
	case name == "TD":
		return r.resolveTapDance(expr, table)
	case name == "LT":
		layer, ok := expr.IntArg(0)
		if !ok {
			return model.KeyLabel{}, false
		}

		inner, ok := expr.ExprArg(1)
		if !ok {
			return model.KeyLabel{}, false
		}

		return r.layerTap(layer, inner, table), true
	case layerTapShorthand.MatchString(name):
		layer, _ := strconv.Atoi(layerTapShorthand.FindStringSubmatch(name)[1])

		inner, ok := expr.ExprArg(0)
		if !ok {
			return model.KeyLabel{}, false
		}

		return r.layerTap(layer, inner, table), true
	case layerFunctions[name]:
		layer, ok := expr.IntArg(0)
		if !ok {
			return model.KeyLabel{}, false
		}

		return model.KeyLabel{MainText: name + "(" + strconv.Itoa(layer) + ")", IsSpecial: true}, true
	case name == "OSM":
		inner, ok := expr.ExprArg(0)
		if !ok {
			return model.KeyLabel{}, false
		}

		mod := modifierNames[strings.TrimPrefix(inner.Name, "MOD_")]
		if mod == "" {
			mod = inner.Name
		}

		return withSubs(model.KeyLabel{MainText: "OSM", IsSpecial: true}, mod), true
	case strings.HasSuffix(name, "_T"):
		mod, known := modifierNames[strings.TrimSuffix(name, "_T")]
		if !known {
			return model.KeyLabel{}, false
		}

		inner, ok := expr.ExprArg(0)
		if !ok {
			return model.KeyLabel{}, false
		}

		main := r.innerText(inner, table)

		return withSubs(model.KeyLabel{MainText: main, IsSpecial: true}, mod), true
	default:
		mod, known := modifierNames[name]
		if !known {
			return model.KeyLabel{}, false
		}

		inner, ok := expr.ExprArg(0)
		if !ok {
			return model.KeyLabel{}, false
		}

		return model.KeyLabel{MainText: r.modified(mod, r.innerText(inner, table)), IsSpecial: true}, true
	}
}

func (r *Resolver) resolveName(name string) (model.KeyLabel, bool) {
	if isBlank(name) {
		return model.KeyLabel{MainText: "", IsSpecial: true, Empty: true}, true
	}

	if isTransparent(name) {
		return model.KeyLabel{MainText: transparentLabel, IsSpecial: true}, true
	}

	if text, ok := r.Labels[name]; ok {
		return model.KeyLabel{MainText: text}, true
	}

	if text, ok := r.Specials[name]; ok {
		return model.KeyLabel{MainText: text, IsSpecial: true}, true
	}

	return model.KeyLabel{}, false
}

func (r *Resolver) resolveTapDance(expr *Expr, table TapDanceTable) (model.KeyLabel, bool) {
	index, ok := expr.IntArg(0)
	if !ok || index < 0 || index >= len(table) {
		return model.KeyLabel{}, false
	}

	td := table[index]

	return withSubs(model.KeyLabel{MainText: td.Tap}, td.Hold, td.DoubleTap, td.TapHold), true
}

func (r *Resolver) layerTap(layer int, inner *Expr, table TapDanceTable) model.KeyLabel {
	return withSubs(
		model.KeyLabel{MainText: r.innerText(inner, table), IsSpecial: true},
		"LT"+strconv.Itoa(layer),
	)
}

// innerText resolves a nested key code, falling back to its source text.
func (r *Resolver) innerText(inner *Expr, table TapDanceTable) string {
	label, ok := r.resolveExpr(inner, table)
	if !ok {
		return inner.String()
	}

	return label.MainText
}

func (r *Resolver) modified(mod, base string) string {
	if strings.HasSuffix(mod, "Shift") {
		if shifted, ok := r.Shifted[base]; ok {
			return shifted
		}

		if len(base) == 1 && base[0] >= 'A' && base[0] <= 'Z' {
			return base
		}

		return "S+" + base
	}

	for suffix, prefix := range modifierPrefixes {
		if strings.HasSuffix(mod, suffix) {
			return prefix + base
		}
	}

	return mod + "+" + base
}

// Label resolves a token without tap-dance context and returns its main text.
func (r *Resolver) Label(token model.Token) string {
	return r.Resolve(token, nil).MainText
}
