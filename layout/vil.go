package layout

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/dasdy/vilviz/model"
)

// LoadVIL decodes a Vial layout file. Unknown fields are ignored.
func LoadVIL(reader io.Reader) (*model.Configuration, error) {
	var cfg model.Configuration

	if err := json.NewDecoder(reader).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("could not decode VIL JSON: %w", err)
	}

	return &cfg, nil
}

func ParseVIL(content []byte) (*model.Configuration, error) {
	return LoadVIL(bytes.NewReader(content))
}

// LoadFile opens and decodes the VIL file at path.
func LoadFile(path string) (*model.Configuration, error) {
	file, err := OpenPath(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	cfg, err := LoadVIL(file)
	if err != nil {
		return nil, fmt.Errorf("could not load %s: %w", path, err)
	}

	return cfg, nil
}
