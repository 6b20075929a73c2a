package vilviz

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dasdy/vilviz/db"
	"github.com/dasdy/vilviz/model"
	"github.com/dasdy/vilviz/watch"
	"github.com/dasdy/vilviz/web"
	"github.com/dasdy/vilviz/web/routes"
	"github.com/spf13/cobra"
)

var (
	port         int
	storagePath  string
	dev          bool
	serveFormat  string
	watchFile    bool
	pollInterval time.Duration
)

// serveCmd runs the preview server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Browse layers in the browser",
	Long: `Start a web server that previews the layers of a VIL file. Files opened
with --file are remembered in the recent files database.`,
	PersistentPreRun: bindFlags,
	RunE: func(_ *cobra.Command, _ []string) error {
		v, err := newViewer(model.LayerID(layer))
		if err != nil {
			return fmt.Errorf("could not create viewer: %w", err)
		}

		storage, err := db.ConnectDB(storagePath)
		if err != nil {
			return fmt.Errorf("could not open %s as sqlite file: %w", storagePath, err)
		}
		defer storage.Close()

		recent := db.NewRecentStore(storage)
		if err := recent.LoadAll(); err != nil {
			return fmt.Errorf("could not load recent files: %w", err)
		}

		if inputFile != "" {
			if err := openFile(v, inputFile); err != nil {
				return err
			}

			if err := remember(recent, inputFile); err != nil {
				return err
			}
		}

		handler := &routes.ServerHandler{
			Viewer:   v,
			Recent:   recent,
			Adapters: allAdapters(),
			Format:   serveFormat,
		}

		slog.InfoContext(logCtx, "Starting preview", "port", port, "file", inputFile, "recent", len(recent.Entries()))

		if watchFile && inputFile != "" {
			go reloadOnChange(handler, watch.NewFileMonitor(pollInterval, inputFile))
		}

		return web.StartServer(port, handler, dev)
	},
}

func reloadOnChange(handler *routes.ServerHandler, monitor *watch.FileMonitor) {
	if _, err := monitor.Poll(); err != nil {
		slog.ErrorContext(logCtx, "Could not start watching", "error", err)

		return
	}

	for change := range monitor.Channel(context.Background()) {
		content, err := configBytes(change.Path, change.Content)
		if err == nil {
			err = handler.Reload(change.Path, content)
		}

		if err != nil {
			slog.WarnContext(logCtx, "Changed file was not reloaded", "path", change.Path, "error", err)

			continue
		}

		slog.InfoContext(logCtx, "Reloaded changed file", "path", change.Path)
	}
}

// remember stores the file content in the recent list and persists it.
func remember(recent *db.RecentStore, path string) error {
	content, err := readConfig(path)
	if err != nil {
		return err
	}

	recent.Add(path, content, "vil")

	if _, err := recent.Select(path); err != nil {
		return fmt.Errorf("could not select %s: %w", path, err)
	}

	if err := recent.Persist(); err != nil {
		return fmt.Errorf("could not save recent files: %w", err)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&inputFile, "file", "f", "", "Path to a .vil file to open on start")
	serveCmd.Flags().IntVarP(&layer, "layer", "l", 0, "Layer selected on start")
	serveCmd.Flags().IntVarP(&port, "port", "p", 8080, "Port on which server should be watching")
	serveCmd.Flags().StringVar(&storagePath, "db", "./vilviz.sqlite", "Path to the recent files database")
	serveCmd.Flags().BoolVar(&dev, "dev", false, "Enable developer mode")
	serveCmd.Flags().BoolVarP(&watchFile, "watch", "w", false, "Reload --file when it changes on disk")
	serveCmd.Flags().DurationVar(&pollInterval, "poll-interval", 2*time.Second, "How often --watch checks the file")
	serveCmd.Flags().StringVar(&serveFormat, "format", "svg", "Default image format of the preview page")
	addViewerFlags(serveCmd)
}
