// Package watch polls layout files and reports when they change on disk.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/dasdy/vilviz/logging"
)

var logCtx = logging.PackageCtx("watch")

// Change is a file whose modification time moved since the previous poll.
type Change struct {
	Path    string
	Content []byte
	ModTime time.Time
}

type FileMonitor struct {
	paths []string

	seen map[string]time.Time
	lock sync.RWMutex

	pollingInterval time.Duration
}

func NewFileMonitor(pollingInterval time.Duration, paths ...string) *FileMonitor {
	return &FileMonitor{
		paths:           paths,
		seen:            make(map[string]time.Time),
		pollingInterval: pollingInterval,
	}
}

// Poll stats every watched file once. The first observation of a file only
// records its modification time.
func (m *FileMonitor) Poll() ([]Change, error) {
	var changes []Change

	for _, path := range m.paths {
		info, err := os.Stat(path)
		if err != nil {
			return changes, fmt.Errorf("could not stat %s: %w", path, err)
		}

		if !m.record(path, info.ModTime()) {
			continue
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return changes, fmt.Errorf("could not read %s: %w", path, err)
		}

		slog.InfoContext(logCtx, "File changed", "path", path, "modified", info.ModTime())

		changes = append(changes, Change{Path: path, Content: content, ModTime: info.ModTime()})
	}

	return changes, nil
}

// record stores modTime and reports whether it differs from a previous value.
func (m *FileMonitor) record(path string, modTime time.Time) bool {
	m.lock.Lock()
	defer m.lock.Unlock()

	prev, known := m.seen[path]
	m.seen[path] = modTime

	return known && !prev.Equal(modTime)
}

// Channel polls until ctx is done and sends every change. The channel is
// closed when polling stops.
func (m *FileMonitor) Channel(ctx context.Context) <-chan Change {
	out := make(chan Change, 5)

	go func() {
		defer close(out)

		slog.InfoContext(logCtx, "Monitoring started", "files", len(m.paths), "interval", m.pollingInterval)
		defer slog.InfoContext(logCtx, "End monitoring")

		ticker := time.NewTicker(m.pollingInterval)
		defer ticker.Stop()

		for {
			changes, err := m.Poll()
			if err != nil {
				slog.ErrorContext(logCtx, "Error polling files", "error", err)
			}

			for _, c := range changes {
				select {
				case out <- c:
				case <-ctx.Done():
					return
				}
			}

			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
