package routes_test

import (
	"iter"

	"github.com/dasdy/vilviz/model"
)

// MemoryStorageMock is a simple manual mock implementation of the db.Storage interface.
type MemoryStorageMock struct {
	Entries   []model.RecentFile
	SaveCalls int
}

func (m *MemoryStorageMock) SaveAll(entries []model.RecentFile) error {
	m.SaveCalls++
	m.Entries = append([]model.RecentFile(nil), entries...)

	return nil
}

func (m *MemoryStorageMock) LoadAll() ([]model.RecentFile, error) {
	return append([]model.RecentFile(nil), m.Entries...), nil
}

func (m *MemoryStorageMock) AllIterator() (iter.Seq[model.RecentFile], error) {
	return func(yield func(model.RecentFile) bool) {
		for _, e := range m.Entries {
			if !yield(e) {
				return
			}
		}
	}, nil
}

func (m *MemoryStorageMock) Close() {}

const sampleVIL = `{
  "version": 1,
  "uid": 7,
  "layout": [
    [["KC_A", "TD(0)"]],
    [["KC_1", "KC_2"]],
    [["KC_NO", "KC_NO"]],
    [["KC_NO", "KC_NO"]],
    [["KC_NO", "KC_NO"]],
    [["KC_NO", "KC_NO"]]
  ],
  "tap_dance": [["KC_B", "KC_C", "KC_NO", "KC_NO", 200]],
  "combo": [["KC_A", "KC_B", "KC_NO", "KC_NO", "KC_ESC"]]
}`
