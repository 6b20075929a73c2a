package routes

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/a-h/templ"
	"github.com/dasdy/vilviz/db"
	"github.com/dasdy/vilviz/render"
	"github.com/dasdy/vilviz/viewer"
)

// ServerHandler holds all dependencies needed for the web server handlers.
// The viewer is shared between requests, so every handler holds mu while it
// touches it.
type ServerHandler struct {
	Viewer   *viewer.Viewer
	Recent   *db.RecentStore
	Adapters map[string]render.Adapter
	Format   string

	mu sync.Mutex
}

var contentTypes = map[string]string{
	"svg":   "image/svg+xml",
	"png":   "image/png",
	"pdf":   "application/pdf",
	"calls": "application/json",
}

// SafeRenderTemplate safely renders a templ component to an http.ResponseWriter.
func SafeRenderTemplate(component templ.Component, w http.ResponseWriter) error {
	// Do not write to w because it implies 200 status
	var buf bytes.Buffer

	err := component.Render(context.Background(), &buf)
	if err != nil {
		return fmt.Errorf("could not render template: %w", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=UTF-8")

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response", "error", err)

		return fmt.Errorf("could not write to response writer: %w", err)
	}

	return nil
}

func (s *ServerHandler) defaultFormat() string {
	if s.Format == "" {
		return "svg"
	}

	return s.Format
}
