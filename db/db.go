package db

import (
	"database/sql"
	"fmt"
	"iter"
	"log/slog"
	"time"

	"github.com/dasdy/vilviz/model"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteStorage struct {
	db *sql.DB
}

func NewStorage(db *sql.DB) *SQLiteStorage {
	return &SQLiteStorage{db}
}

func InitDbStorage(db *sql.DB) error {
	sqlStmt := `
	create table if not exists recent_files(
	    id integer primary key,
	    name text not null unique,
	    ts datetime not null,
	    content blob,
	    type text not null,
	    position int not null);`

	_, err := db.Exec(sqlStmt)
	if err != nil {
		slog.Error("could not create table", "error", err, "stmt", sqlStmt)

		return fmt.Errorf("could not init storage: %w", err)
	}

	sqlStmt = `create index if not exists recent_files_positionix on recent_files (position ASC);`

	_, err = db.Exec(sqlStmt)
	if err != nil {
		slog.Error("could not create index", "error", err, "stmt", sqlStmt)

		return fmt.Errorf("could not init storage: %w", err)
	}

	return nil
}

func ConnectDB(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("could not open database %s: %w", path, err)
	}

	// every :memory: connection is a separate database
	db.SetMaxOpenConns(1)

	err = InitDbStorage(db)
	if err != nil {
		db.Close()

		return nil, err
	}

	return &SQLiteStorage{db}, nil
}

// SaveAll replaces the stored list with entries, keeping their order.
func (s *SQLiteStorage) SaveAll(entries []model.RecentFile) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}

	if _, err := tx.Exec(`delete from recent_files`); err != nil {
		tx.Rollback()

		return fmt.Errorf("could not clear recent files: %w", err)
	}

	stmt, err := tx.Prepare(`insert into recent_files(id, name, ts, content, type, position) values(?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()

		return fmt.Errorf("could not prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range entries {
		if _, err := stmt.Exec(e.ID, e.Name, e.Timestamp.UTC(), e.Content, e.Type, i); err != nil {
			tx.Rollback()

			return fmt.Errorf("could not store recent file %s: %w", e.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit recent files: %w", err)
	}

	return nil
}

func (s *SQLiteStorage) LoadAll() ([]model.RecentFile, error) {
	it, err := s.AllIterator()
	if err != nil {
		return nil, err
	}

	result := make([]model.RecentFile, 0)
	for f := range it {
		result = append(result, f)
	}

	return result, nil
}

// AllIterator yields stored entries most recent first. Rows that fail to scan
// are logged and skipped.
func (s *SQLiteStorage) AllIterator() (iter.Seq[model.RecentFile], error) {
	rows, err := s.db.Query(`select id, name, ts, content, type from recent_files order by position`)
	if err != nil {
		return nil, fmt.Errorf("could not query recent files: %w", err)
	}

	return func(yield func(model.RecentFile) bool) {
		defer rows.Close()

		for rows.Next() {
			var f model.RecentFile

			var ts time.Time

			if err := rows.Scan(&f.ID, &f.Name, &ts, &f.Content, &f.Type); err != nil {
				slog.Error("could not scan recent file", "error", err)

				continue
			}

			f.Timestamp = ts

			if !yield(f) {
				return
			}
		}
	}, nil
}

func (s *SQLiteStorage) Close() {
	s.db.Close()
}
