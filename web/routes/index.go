package routes

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/dasdy/vilviz/model"
	"github.com/dasdy/vilviz/palette"
	"github.com/dasdy/vilviz/viewer"
	cs "github.com/dasdy/vilviz/web/components"
)

// BuildIndexRenderContext collects the page state. Callers hold s.mu.
func (s *ServerHandler) BuildIndexRenderContext(message string) cs.RenderContext {
	v := s.Viewer

	rc := cs.RenderContext{
		Name:     v.Name(),
		Theme:    v.Palette().Name,
		Themes:   palette.Names(),
		Loaded:   v.Loaded(),
		Selected: v.Selected(),
		Format:   s.defaultFormat(),
		Message:  message,
	}

	for _, id := range model.Layers {
		rc.Layers = append(rc.Layers, cs.LayerTab{ID: id, Selected: id == v.Selected()})
	}

	for i, td := range v.TapDances() {
		rc.TapDances = append(rc.TapDances, cs.TapDanceRow{
			Index: i,
			Slots: []string{td.Tap, td.Hold, td.DoubleTap, td.TapHold},
		})
	}

	rc.Combos = v.Combos()

	if s.Recent != nil {
		selected, hasSelected := s.Recent.Selected()

		for _, f := range s.Recent.Entries() {
			rc.Recent = append(rc.Recent, cs.RecentItem{
				ID:       f.ID,
				Name:     f.Name,
				When:     f.Timestamp.Local().Format(time.DateTime),
				Selected: hasSelected && selected.ID == f.ID,
			})
		}
	}

	return rc
}

// IndexHandle shows the preview page. An optional layer parameter switches the
// selected layer first.
func (s *ServerHandler) IndexHandle(w http.ResponseWriter, r *http.Request) {
	slog.Info("Handling index page request", "query", r.URL.RawQuery)

	s.mu.Lock()
	defer s.mu.Unlock()

	if layerString := r.URL.Query().Get("layer"); layerString != "" {
		layer, err := strconv.Atoi(layerString)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)

			return
		}

		if err := s.Viewer.Select(model.LayerID(layer)); err != nil {
			if errors.Is(err, viewer.ErrInvalidLayer) {
				http.Error(w, err.Error(), http.StatusNotFound)

				return
			}

			http.Error(w, err.Error(), http.StatusInternalServerError)

			return
		}
	}

	renderContext := s.BuildIndexRenderContext(r.URL.Query().Get("message"))

	if err := SafeRenderTemplate(cs.Index(&renderContext), w); err != nil {
		slog.Error("Failed to render index page", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
