// Package palette holds the colors used to paint a layout.
package palette

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Palette assigns a hex color to every drawing role.
type Palette struct {
	Name          string
	Background    string
	KeyNormal     string
	KeySpecial    string
	KeyEmpty      string
	BorderNormal  string
	BorderSpecial string
	BorderEmpty   string
	TextNormal    string
	TextSpecial   string
	TextSub       string

	// Section headers of combined images.
	HeaderBackground string
	HeaderBorder     string
	HeaderText       string
}

var (
	Dark = Palette{
		Name:          "dark",
		Background:    "#1c1c20",
		KeyNormal:     "#343a46",
		KeySpecial:    "#2d3446",
		KeyEmpty:      "#282a30",
		BorderNormal:  "#444c5c",
		BorderSpecial: "#41497e",
		BorderEmpty:   "#32353d",
		TextNormal:    "#f0f6fc",
		TextSpecial:   "#9cdcfe",
		TextSub:       "#e5e7eb",

		HeaderBackground: "#2a2d35",
		HeaderBorder:     "#4a5568",
		HeaderText:       "#ffffff",
	}

	Light = Palette{
		Name:          "light",
		Background:    "#f5f5f5",
		KeyNormal:     "#ffffff",
		KeySpecial:    "#e3f2fd",
		KeyEmpty:      "#eeeeee",
		BorderNormal:  "#d0d7de",
		BorderSpecial: "#90caf9",
		BorderEmpty:   "#c6c6c6",
		TextNormal:    "#212529",
		TextSpecial:   "#1976d2",
		TextSub:       "#343a40",

		HeaderBackground: "#ffffff",
		HeaderBorder:     "#dee2e6",
		HeaderText:       "#212529",
	}
)

var builtin = map[string]Palette{
	Dark.Name:  Dark,
	Light.Name: Light,
}

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ByName returns a built-in palette.
func ByName(name string) (Palette, error) {
	p, ok := builtin[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Palette{}, fmt.Errorf("unknown theme %q, expected one of %s", name, strings.Join(Names(), ", "))
	}

	return p, nil
}

func Names() []string {
	names := make([]string, 0, len(builtin))
	for n := range builtin {
		names = append(names, n)
	}

	sort.Strings(names)

	return names
}

func (p Palette) roles() map[string]string {
	return map[string]string{
		"background":     p.Background,
		"key_normal":     p.KeyNormal,
		"key_special":    p.KeySpecial,
		"key_empty":      p.KeyEmpty,
		"border_normal":  p.BorderNormal,
		"border_special": p.BorderSpecial,
		"border_empty":   p.BorderEmpty,
		"text_normal":    p.TextNormal,
		"text_special":   p.TextSpecial,
		"text_sub":       p.TextSub,

		"header_background": p.HeaderBackground,
		"header_border":     p.HeaderBorder,
		"header_text":       p.HeaderText,
	}
}

// Validate checks that every role holds a #rgb or #rrggbb color.
func (p Palette) Validate() error {
	for role, c := range p.roles() {
		if !hexColor.MatchString(c) {
			return fmt.Errorf("palette %s: invalid %s color %q", p.Name, role, c)
		}
	}

	return nil
}
