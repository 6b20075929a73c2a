package layout

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

func OpenPath(path string) (*os.File, error) {
	if !filepath.IsAbs(path) {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("could not resolve working directory: %w", err)
		}

		slog.Debug("Opening relative path", "path", path, "wd", wd)
		path = filepath.Join(wd, path)
	} else {
		slog.Debug("Opening absolute path", "path", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open file %s: %w", path, err)
	}

	return file, nil
}
