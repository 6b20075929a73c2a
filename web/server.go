package web

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dasdy/vilviz/logging"
	"github.com/dasdy/vilviz/web/routes"
)

var logCtx = logging.PackageCtx("web")

func disableCacheInDevMode(dev bool, next http.Handler) http.Handler {
	if !dev {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

// BuildServer wires the preview routes onto a new mux.
func BuildServer(handler *routes.ServerHandler, dev bool) *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("GET /layer", disableCacheInDevMode(dev, http.HandlerFunc(handler.LayerHandle)))
	mux.Handle("GET /recent/select", http.HandlerFunc(handler.RecentSelectHandle))
	mux.Handle("GET /theme", http.HandlerFunc(handler.ThemeHandle))
	mux.Handle("GET /{$}", disableCacheInDevMode(dev, http.HandlerFunc(handler.IndexHandle)))

	slog.InfoContext(logCtx, "Routes registered", "dev", dev, "formats", len(handler.Adapters))

	return mux
}

// StartServer blocks serving the preview on port.
func StartServer(port int, handler *routes.ServerHandler, dev bool) error {
	slog.InfoContext(logCtx, "Running interface", "port", port)

	err := http.ListenAndServe(fmt.Sprintf(":%d", port), BuildServer(handler, dev))
	if err != nil {
		return fmt.Errorf("could not run server: %w", err)
	}

	return nil
}
