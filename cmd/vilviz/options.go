package vilviz

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dasdy/vilviz/geometry"
	"github.com/dasdy/vilviz/layout"
	"github.com/dasdy/vilviz/model"
	"github.com/dasdy/vilviz/palette"
	"github.com/dasdy/vilviz/render"
	"github.com/dasdy/vilviz/render/raster"
	"github.com/dasdy/vilviz/render/recorder"
	"github.com/dasdy/vilviz/render/vector"
	"github.com/dasdy/vilviz/viewer"
	"github.com/spf13/cobra"
)

// Flags shared by the commands that build a viewer.
var (
	themeName    string
	paletteFile  string
	geometryFile string
	format       string
	scale        float64
)

var formats = []string{"png", "svg", "pdf", "calls"}

var extensions = map[string]string{
	"png":   ".png",
	"svg":   ".svg",
	"pdf":   ".pdf",
	"calls": ".json",
}

func addViewerFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&themeName, "theme", "dark", "Built-in palette: "+strings.Join(palette.Names(), ", "))
	cmd.Flags().StringVar(&paletteFile, "palette", "", "HCL palette file, overrides --theme")
	cmd.Flags().StringVar(&geometryFile, "geometry", "", "ZMK info.json with per-key position overrides")
	cmd.Flags().Float64Var(&scale, "scale", 1, "Pixel density for png output")
}

func loadPalette() (palette.Palette, error) {
	if paletteFile != "" {
		p, err := palette.LoadFile(paletteFile)
		if err != nil {
			return palette.Palette{}, fmt.Errorf("could not load palette: %w", err)
		}

		return p, nil
	}

	p, err := palette.ByName(themeName)
	if err != nil {
		return palette.Palette{}, fmt.Errorf("could not select theme: %w", err)
	}

	return p, nil
}

func loadCalculator() (*geometry.Calculator, error) {
	if geometryFile == "" {
		return &geometry.Calculator{}, nil
	}

	reader, err := layout.OpenPath(geometryFile)
	if err != nil {
		return nil, fmt.Errorf("could not open geometry file %s: %w", geometryFile, err)
	}
	defer reader.Close()

	overrides, err := geometry.LoadZmkOverrides(reader)
	if err != nil {
		return nil, fmt.Errorf("could not parse geometry file %s: %w", geometryFile, err)
	}

	slog.DebugContext(logCtx, "Loaded geometry overrides", "path", geometryFile, "keys", len(overrides))

	return geometry.NewCalculator(overrides), nil
}

// newViewer builds a viewer from the shared flags.
func newViewer(defaultLayer model.LayerID) (*viewer.Viewer, error) {
	opts := viewer.DefaultOptions()
	opts.DefaultLayer = defaultLayer

	p, err := loadPalette()
	if err != nil {
		return nil, err
	}

	opts.Palette = p

	calc, err := loadCalculator()
	if err != nil {
		return nil, err
	}

	opts.Calculator = calc

	return viewer.New(opts)
}

// configBytes returns the VIL document held in content. PNG images written by
// `export --combined` carry it in a text chunk.
func configBytes(path string, content []byte) ([]byte, error) {
	if !strings.EqualFold(filepath.Ext(path), ".png") {
		return content, nil
	}

	texts, err := raster.ReadText(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}

	config, ok := texts[raster.KeyConfig]
	if !ok {
		return nil, fmt.Errorf("%s has no embedded layout", path)
	}

	return []byte(config), nil
}

func readConfig(path string) ([]byte, error) {
	file, err := layout.OpenPath(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}

	return configBytes(path, content)
}

func openFile(v *viewer.Viewer, path string) error {
	content, err := readConfig(path)
	if err != nil {
		return err
	}

	return v.LoadBytes(path, content)
}

func adapterFor(name string) (render.Adapter, error) {
	switch strings.ToLower(name) {
	case "png":
		return raster.NewAdapter(scale), nil
	case "calls":
		return &recorder.Adapter{}, nil
	default:
		f, err := vector.ParseFormat(name)
		if err != nil {
			return nil, fmt.Errorf("unsupported format %q, expected one of %s", name, strings.Join(formats, ", "))
		}

		return vector.NewAdapter(f), nil
	}
}

func allAdapters() map[string]render.Adapter {
	adapters := make(map[string]render.Adapter, len(formats))

	for _, f := range formats {
		if a, err := adapterFor(f); err == nil {
			adapters[f] = a
		}
	}

	return adapters
}

// writeSurface encodes surface into path, or stdout when path is "-".
func writeSurface(surface render.Surface, path string) error {
	if closer, ok := surface.(io.Closer); ok {
		defer closer.Close()
	}

	if path == "-" {
		return surface.Encode(os.Stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", path, err)
	}

	if err := surface.Encode(f); err != nil {
		f.Close()

		return fmt.Errorf("could not write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("could not close %s: %w", path, err)
	}

	return nil
}
