package db

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/dasdy/vilviz/model"
)

var ErrNotFound = errors.New("recent file not found")

// RecentStore keeps the most-recent-first list of opened configurations and
// the current selection. Changes reach the storage only on Persist.
type RecentStore struct {
	storage  Storage
	entries  []model.RecentFile
	selected int64
	nextID   int64
	now      func() time.Time
}

func NewRecentStore(storage Storage) *RecentStore {
	return &RecentStore{storage: storage, nextID: 1, now: time.Now}
}

// WithClock replaces the timestamp source.
func (s *RecentStore) WithClock(now func() time.Time) *RecentStore {
	s.now = now

	return s
}

// Add puts a file at the front of the list, replacing an entry with the same
// name.
func (s *RecentStore) Add(name string, content []byte, fileType string) model.RecentFile {
	s.entries = slices.DeleteFunc(s.entries, func(f model.RecentFile) bool {
		if f.Name == name && f.ID == s.selected {
			s.selected = 0
		}

		return f.Name == name
	})

	entry := model.RecentFile{
		ID:        s.nextID,
		Name:      name,
		Timestamp: s.now(),
		Content:   content,
		Type:      fileType,
	}
	s.nextID++

	s.entries = slices.Insert(s.entries, 0, entry)

	return entry
}

// Remove drops the entry with id. Removing the selected entry clears the
// selection.
func (s *RecentStore) Remove(id int64) error {
	idx := slices.IndexFunc(s.entries, func(f model.RecentFile) bool { return f.ID == id })
	if idx < 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}

	s.entries = slices.Delete(s.entries, idx, idx+1)

	if s.selected == id {
		s.selected = 0
	}

	return nil
}

func (s *RecentStore) index(name string) (int, error) {
	idx := slices.IndexFunc(s.entries, func(f model.RecentFile) bool { return f.Name == name })
	if idx < 0 {
		return idx, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	return idx, nil
}

// Find returns the entry called name without changing the selection.
func (s *RecentStore) Find(name string) (model.RecentFile, error) {
	idx, err := s.index(name)
	if err != nil {
		return model.RecentFile{}, err
	}

	return s.entries[idx], nil
}

// Select marks the entry called name as the current one and returns it.
func (s *RecentStore) Select(name string) (model.RecentFile, error) {
	idx, err := s.index(name)
	if err != nil {
		return model.RecentFile{}, err
	}

	s.selected = s.entries[idx].ID

	return s.entries[idx], nil
}

func (s *RecentStore) Selected() (model.RecentFile, bool) {
	for _, f := range s.entries {
		if f.ID == s.selected {
			return f, true
		}
	}

	return model.RecentFile{}, false
}

func (s *RecentStore) Entries() []model.RecentFile {
	return slices.Clone(s.entries)
}

// LoadAll replaces the in-memory list with the stored one.
func (s *RecentStore) LoadAll() error {
	entries, err := s.storage.LoadAll()
	if err != nil {
		return fmt.Errorf("could not load recent files: %w", err)
	}

	s.entries = entries
	s.selected = 0
	s.nextID = 1

	for _, f := range entries {
		if f.ID >= s.nextID {
			s.nextID = f.ID + 1
		}
	}

	return nil
}

func (s *RecentStore) Persist() error {
	if err := s.storage.SaveAll(s.entries); err != nil {
		return fmt.Errorf("could not persist recent files: %w", err)
	}

	return nil
}
