package vilviz

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dasdy/vilviz/model"
	"github.com/dasdy/vilviz/render"
	"github.com/dasdy/vilviz/render/raster"
	"github.com/dasdy/vilviz/viewer"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var (
	outputDir string
	combined  bool
)

// exportCmd renders every layer into a directory.
var exportCmd = &cobra.Command{
	Use:              "export",
	Short:            "Render all six layers of a VIL file",
	Long: `Draw every layer of a Vial layout into --out-dir, one file per layer.
With --combined all layers and the combos go into a single image instead.
PNG sheets embed the layout so they can be opened again with --file.`,
	PersistentPreRun: bindFlags,
	RunE: func(_ *cobra.Command, _ []string) error {
		if inputFile == "" {
			return errors.New("no input file given, use --file")
		}

		adapter, err := adapterFor(format)
		if err != nil {
			return err
		}

		v, err := newViewer(0)
		if err != nil {
			return fmt.Errorf("could not create viewer: %w", err)
		}

		content, err := readConfig(inputFile)
		if err != nil {
			return err
		}

		if err := v.LoadBytes(inputFile, content); err != nil {
			return err
		}

		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return fmt.Errorf("could not create %s: %w", outputDir, err)
		}

		if combined {
			return exportCombined(v, adapter, content)
		}

		bar := progressbar.Default(model.LayerCount, "Rendering layers...")

		for _, id := range model.Layers {
			surface, err := v.RenderLayer(adapter, id)
			if err != nil {
				return fmt.Errorf("could not render layer %d: %w", id, err)
			}

			out := layerFileName(inputFile, outputDir, id, format)
			if err := writeSurface(surface, out); err != nil {
				return err
			}

			if err := bar.Add(1); err != nil {
				slog.ErrorContext(logCtx, "could not update progress bar", "error", err)
			}
		}

		if err := bar.Finish(); err != nil {
			slog.ErrorContext(logCtx, "could not finish progress bar", "error", err)
		}

		slog.InfoContext(logCtx, "Layers exported", "dir", outputDir, "count", model.LayerCount)

		return nil
	},
}

func exportCombined(v *viewer.Viewer, adapter render.Adapter, content []byte) error {
	surface, err := v.RenderCombined(adapter)
	if err != nil {
		return err
	}

	if png, ok := surface.(*raster.Surface); ok {
		if err := embedConfig(png, content); err != nil {
			return err
		}
	}

	out := combinedFileName(inputFile, outputDir, format)
	if err := writeSurface(surface, out); err != nil {
		return err
	}

	slog.InfoContext(logCtx, "Combined image exported", "path", out)

	return nil
}

func embedConfig(surface *raster.Surface, content []byte) error {
	if err := surface.SetText(raster.KeyGenerator, "vilviz"); err != nil {
		return err
	}

	return surface.SetText(raster.KeyConfig, string(content))
}

func combinedFileName(input, dir, format string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))

	return filepath.Join(dir, base+"-combined"+extensions[strings.ToLower(format)])
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&inputFile, "file", "f", "", "Path to the .vil file")
	exportCmd.Flags().StringVarP(&outputDir, "out-dir", "o", ".", "Directory for the rendered layers")
	exportCmd.Flags().StringVar(&format, "format", "png", "Output format: "+strings.Join(formats, ", "))
	exportCmd.Flags().BoolVar(&combined, "combined", false, "Draw all layers and combos into one image")
	addViewerFlags(exportCmd)
}
