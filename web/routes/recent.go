package routes

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/dasdy/vilviz/db"
	"github.com/dasdy/vilviz/palette"
)

func redirectHome(w http.ResponseWriter, r *http.Request, message string) {
	target := "/"
	if message != "" {
		target += "?message=" + url.QueryEscape(message)
	}

	http.Redirect(w, r, target, http.StatusSeeOther)
}

// RecentSelectHandle opens a stored configuration in the viewer.
func (s *ServerHandler) RecentSelectHandle(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	slog.Info("Handling recent file selection", "name", name)

	if s.Recent == nil {
		http.Error(w, "recent files are disabled", http.StatusNotFound)

		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.Recent.Find(name)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)

			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	if err := s.Viewer.LoadBytes(entry.Name, entry.Content); err != nil {
		slog.Warn("Stored configuration is invalid", "name", entry.Name, "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	if _, err := s.Recent.Select(entry.Name); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	redirectHome(w, r, "Opened "+entry.Name)
}

// ThemeHandle switches the palette used for rendering.
func (s *ServerHandler) ThemeHandle(w http.ResponseWriter, r *http.Request) {
	p, err := palette.ByName(r.URL.Query().Get("name"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	s.mu.Lock()
	s.Viewer.SetPalette(p)
	s.mu.Unlock()

	redirectHome(w, r, "")
}

// Reload replaces the viewed configuration with fresh content for name, as
// when the file changed on disk. Invalid content keeps the current one.
func (s *ServerHandler) Reload(name string, content []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.Viewer.LoadBytes(name, content); err != nil {
		return err
	}

	if s.Recent != nil {
		s.Recent.Add(name, content, "vil")

		if _, err := s.Recent.Select(name); err != nil {
			return fmt.Errorf("could not select %s: %w", name, err)
		}
	}

	return nil
}
