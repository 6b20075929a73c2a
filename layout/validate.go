package layout

import (
	"errors"
	"fmt"

	"github.com/dasdy/vilviz/keycode"
	"github.com/dasdy/vilviz/model"
)

// SupportedVersion is the only VIL file version accepted by Validate.
const SupportedVersion = 1

type ErrorKind int

const (
	MalformedLayout ErrorKind = iota + 1
	RaggedMatrix
	InvalidTapDanceRef
	UnsupportedVersion
)

var (
	ErrMalformedLayout    = errors.New("malformed layout")
	ErrRaggedMatrix       = errors.New("ragged matrix")
	ErrInvalidTapDanceRef = errors.New("invalid tap dance reference")
	ErrUnsupportedVersion = errors.New("unsupported version")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case MalformedLayout:
		return ErrMalformedLayout
	case RaggedMatrix:
		return ErrRaggedMatrix
	case InvalidTapDanceRef:
		return ErrInvalidTapDanceRef
	case UnsupportedVersion:
		return ErrUnsupportedVersion
	default:
		return nil
	}
}

func (k ErrorKind) String() string {
	if err := k.sentinel(); err != nil {
		return err.Error()
	}

	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ConfigError describes why a configuration was rejected. Layer and Row are
// -1 when they do not apply.
type ConfigError struct {
	Kind   ErrorKind
	Layer  int
	Row    int
	Detail string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *ConfigError) Unwrap() error {
	return e.Kind.sentinel()
}

func configError(kind ErrorKind, format string, args ...any) *ConfigError {
	return &ConfigError{Kind: kind, Layer: -1, Row: -1, Detail: fmt.Sprintf(format, args...)}
}

// ValidatedConfig is a configuration that passed Validate, together with the
// shape shared by all of its layers.
type ValidatedConfig struct {
	Config *model.Configuration
	Rows   int
	Cols   int
}

// Validate checks the structure of cfg without resolving any labels.
func Validate(cfg *model.Configuration) (*ValidatedConfig, error) {
	if cfg == nil {
		return nil, configError(MalformedLayout, "no configuration")
	}

	if cfg.Version != SupportedVersion {
		return nil, configError(UnsupportedVersion, "version %d, expected %d", cfg.Version, SupportedVersion)
	}

	if len(cfg.Layout) != model.LayerCount {
		return nil, configError(MalformedLayout, "expected %d layers, got %d", model.LayerCount, len(cfg.Layout))
	}

	rows := len(cfg.Layout[0])
	if rows == 0 || !hasKeys(cfg.Layout[0]) {
		return nil, configError(MalformedLayout, "layer 0 has no keys")
	}

	cols := len(cfg.Layout[0][0])

	for layer, layerRows := range cfg.Layout {
		if len(layerRows) != rows {
			e := configError(RaggedMatrix, "layer %d has %d rows, expected %d", layer, len(layerRows), rows)
			e.Layer = layer

			return nil, e
		}

		for row, keys := range layerRows {
			if len(keys) != cols {
				e := configError(RaggedMatrix, "layer %d row %d has %d columns, expected %d",
					layer, row, len(keys), cols)
				e.Layer = layer
				e.Row = row

				return nil, e
			}
		}
	}

	if err := checkTapDanceRefs(cfg); err != nil {
		return nil, err
	}

	return &ValidatedConfig{Config: cfg, Rows: rows, Cols: cols}, nil
}

func hasKeys(rows [][]model.Token) bool {
	for _, keys := range rows {
		if len(keys) > 0 {
			return true
		}
	}

	return false
}

func checkTapDanceRefs(cfg *model.Configuration) error {
	count := len(cfg.TapDance)

	check := func(tok model.Token) bool {
		idx, ok := keycode.TapDanceIndex(string(tok))

		return !ok || (idx >= 0 && idx < count)
	}

	for layer, layerRows := range cfg.Layout {
		for row, keys := range layerRows {
			for col, tok := range keys {
				if !check(tok) {
					e := configError(InvalidTapDanceRef, "%s at layer %d row %d col %d, %d tap dances defined",
						tok, layer, row, col, count)
					e.Layer = layer
					e.Row = row

					return e
				}
			}
		}
	}

	for i, entry := range cfg.TapDance {
		for _, tok := range entry {
			if !check(tok) {
				return configError(InvalidTapDanceRef, "%s in tap dance %d, %d tap dances defined", tok, i, count)
			}
		}
	}

	for i, entry := range cfg.Combo {
		for _, tok := range entry {
			if !check(tok) {
				return configError(InvalidTapDanceRef, "%s in combo %d, %d tap dances defined", tok, i, count)
			}
		}
	}

	return nil
}
