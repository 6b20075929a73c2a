package palette

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

type hclPalette struct {
	Name          *string `hcl:"name,optional"`
	Base          *string `hcl:"base,optional"`
	Background    *string `hcl:"background,optional"`
	KeyNormal     *string `hcl:"key_normal,optional"`
	KeySpecial    *string `hcl:"key_special,optional"`
	KeyEmpty      *string `hcl:"key_empty,optional"`
	BorderNormal  *string `hcl:"border_normal,optional"`
	BorderSpecial *string `hcl:"border_special,optional"`
	BorderEmpty   *string `hcl:"border_empty,optional"`
	TextNormal    *string `hcl:"text_normal,optional"`
	TextSpecial   *string `hcl:"text_special,optional"`
	TextSub       *string `hcl:"text_sub,optional"`

	HeaderBackground *string `hcl:"header_background,optional"`
	HeaderBorder     *string `hcl:"header_border,optional"`
	HeaderText       *string `hcl:"header_text,optional"`
}

// LoadFile reads an HCL palette file. Roles that the file leaves out are taken
// from the built-in palette named by base (dark when unset).
func LoadFile(path string) (Palette, error) {
	var raw hclPalette

	if err := hclsimple.DecodeFile(path, nil, &raw); err != nil {
		return Palette{}, fmt.Errorf("could not decode palette file %s: %w", path, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	return raw.build(name)
}

// Decode parses palette source. filename is used in diagnostics and must end
// in .hcl.
func Decode(filename string, src []byte) (Palette, error) {
	var raw hclPalette

	if err := hclsimple.Decode(filename, src, nil, &raw); err != nil {
		return Palette{}, fmt.Errorf("could not decode palette %s: %w", filename, err)
	}

	return raw.build(strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)))
}

func (raw hclPalette) build(defaultName string) (Palette, error) {
	base := Dark.Name
	if raw.Base != nil {
		base = *raw.Base
	}

	p, err := ByName(base)
	if err != nil {
		return Palette{}, fmt.Errorf("could not resolve base palette: %w", err)
	}

	p.Name = defaultName
	if raw.Name != nil {
		p.Name = *raw.Name
	}

	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	set(&p.Background, raw.Background)
	set(&p.KeyNormal, raw.KeyNormal)
	set(&p.KeySpecial, raw.KeySpecial)
	set(&p.KeyEmpty, raw.KeyEmpty)
	set(&p.BorderNormal, raw.BorderNormal)
	set(&p.BorderSpecial, raw.BorderSpecial)
	set(&p.BorderEmpty, raw.BorderEmpty)
	set(&p.TextNormal, raw.TextNormal)
	set(&p.TextSpecial, raw.TextSpecial)
	set(&p.TextSub, raw.TextSub)
	set(&p.HeaderBackground, raw.HeaderBackground)
	set(&p.HeaderBorder, raw.HeaderBorder)
	set(&p.HeaderText, raw.HeaderText)

	if err := p.Validate(); err != nil {
		return Palette{}, err
	}

	return p, nil
}
