package vilviz

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/dasdy/vilviz/model"
	"github.com/spf13/cobra"
)

var (
	inputFile  string
	outputPath string
	layer      int
)

// renderCmd draws a single layer.
var renderCmd = &cobra.Command{
	Use:              "render",
	Short:            "Render one layer of a VIL file",
	Long:             `Draw one layer of a Vial layout to a PNG, SVG or PDF file. Use "-o -" to write to stdout.`,
	PersistentPreRun: bindFlags,
	RunE: func(_ *cobra.Command, _ []string) error {
		if inputFile == "" {
			return errors.New("no input file given, use --file")
		}

		adapter, err := adapterFor(format)
		if err != nil {
			return err
		}

		v, err := newViewer(model.LayerID(layer))
		if err != nil {
			return fmt.Errorf("could not create viewer: %w", err)
		}

		if err := openFile(v, inputFile); err != nil {
			return err
		}

		out := outputPath
		if out == "" {
			out = layerFileName(inputFile, "", v.Selected(), format)
		}

		surface, err := v.Render(adapter)
		if err != nil {
			return fmt.Errorf("could not render layer %d: %w", layer, err)
		}

		if err := writeSurface(surface, out); err != nil {
			return err
		}

		slog.InfoContext(logCtx, "Layer rendered", "layer", layer, "out", out)

		return nil
	},
}

// layerFileName builds "<dir>/<base>-layer<N><ext>" from the input path.
func layerFileName(input, dir string, id model.LayerID, format string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	name := fmt.Sprintf("%s-layer%d%s", base, id, extensions[strings.ToLower(format)])

	if dir == "" {
		return name
	}

	return filepath.Join(dir, name)
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&inputFile, "file", "f", "", "Path to the .vil file")
	renderCmd.Flags().IntVarP(&layer, "layer", "l", 0, "Layer to render, 0 to 5")
	renderCmd.Flags().StringVarP(&outputPath, "out", "o", "", "Output path (default <file>-layer<N>.<ext>)")
	renderCmd.Flags().StringVar(&format, "format", "png", "Output format: "+strings.Join(formats, ", "))
	addViewerFlags(renderCmd)
}
