package routes

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/dasdy/vilviz/model"
	"github.com/dasdy/vilviz/viewer"
)

// LayerHandle renders one layer as an image and makes it the selected layer.
func (s *ServerHandler) LayerHandle(w http.ResponseWriter, r *http.Request) {
	slog.Info("Handling layer request", "query", r.URL.RawQuery)

	idString := r.URL.Query().Get("id")

	id, err := strconv.Atoi(idString)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	format := strings.ToLower(r.URL.Query().Get("format"))
	if format == "" {
		format = s.defaultFormat()
	}

	adapter, ok := s.Adapters[format]
	if !ok {
		http.Error(w, "unsupported format "+format, http.StatusBadRequest)

		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.Viewer.Select(model.LayerID(id)); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)

		return
	}

	surface, err := s.Viewer.Render(adapter)
	if err != nil {
		if errors.Is(err, viewer.ErrNoConfiguration) {
			http.Error(w, err.Error(), http.StatusNotFound)

			return
		}

		slog.Error("Failed to render layer", "layer", id, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	if closer, ok := surface.(io.Closer); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				slog.Error("Failed to release surface", "layer", id, "error", err)
			}
		}()
	}

	var buf bytes.Buffer
	if err := surface.Encode(&buf); err != nil {
		slog.Error("Failed to encode layer", "layer", id, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	contentType, ok := contentTypes[format]
	if !ok {
		contentType = "application/octet-stream"
	}

	w.Header().Set("Content-Type", contentType)

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response", "error", err)
	}
}
