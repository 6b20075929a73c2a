package db

import (
	"iter"

	"github.com/dasdy/vilviz/model"
)

// Storage persists the recent file list as a whole.
type Storage interface {
	SaveAll(entries []model.RecentFile) error
	LoadAll() ([]model.RecentFile, error)
	AllIterator() (iter.Seq[model.RecentFile], error)
	Close()
}
