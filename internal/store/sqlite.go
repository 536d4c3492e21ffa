package store

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/MihkelHunter/mktodo/internal/todo"
	_ "modernc.org/sqlite" // pure-Go SQLite driver, no CGO required
)

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	id          INTEGER PRIMARY KEY,
	description TEXT    NOT NULL,
	done        INTEGER NOT NULL DEFAULT 0,
	created_at  TEXT    NOT NULL
);`

// SQLiteStore implements todo.Backend on a SQLite database file. Saves replace
// every row so the table always mirrors the in-memory order.
type SQLiteStore struct {
	path string
	db   *sql.DB
	// corrupt is set when Load could not read the file; the next Save
	// replaces the file instead of writing into it.
	corrupt bool
}

// NewSQLite prepares a store at path. The file is not created until the
// first Save.
func NewSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return &SQLiteStore{path: path, db: db}, nil
}

// replace drops the unreadable file and reopens the handle on a fresh one.
func (s *SQLiteStore) replace() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close %s: %w", s.path, err)
	}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", s.path, err)
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	s.db = db
	s.corrupt = false
	return nil
}

func (s *SQLiteStore) Path() string { return s.path }

func (s *SQLiteStore) Load() ([]todo.Task, error) {
	s.corrupt = false
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w: %w", s.path, todo.ErrNoData, err)
	}
	rows, err := s.db.Query(`SELECT id, description, done, created_at FROM tasks ORDER BY id ASC`)
	if err != nil {
		s.corrupt = true
		return nil, fmt.Errorf("query %s: %w: %w", s.path, todo.ErrCorrupt, err)
	}
	defer rows.Close()

	var tasks []todo.Task
	for rows.Next() {
		var t todo.Task
		var done int
		if err := rows.Scan(&t.ID, &t.Description, &done, &t.CreatedAt); err != nil {
			s.corrupt = true
			return nil, fmt.Errorf("scan %s: %w: %w", s.path, todo.ErrCorrupt, err)
		}
		t.Done = done != 0
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		s.corrupt = true
		return nil, fmt.Errorf("rows %s: %w: %w", s.path, todo.ErrCorrupt, err)
	}
	return tasks, nil
}

func (s *SQLiteStore) Save(tasks []todo.Task) error {
	if s.corrupt {
		if err := s.replace(); err != nil {
			return err
		}
	}
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("migrate %s: %w", s.path, err)
	}
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin %s: %w", s.path, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM tasks`); err != nil {
		return fmt.Errorf("clear %s: %w", s.path, err)
	}
	for _, t := range tasks {
		if _, err := tx.Exec(
			`INSERT INTO tasks (id, description, done, created_at) VALUES (?, ?, ?, ?)`,
			t.ID, t.Description, boolToInt(t.Done), t.CreatedAt,
		); err != nil {
			return fmt.Errorf("insert task %d into %s: %w", t.ID, s.path, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit %s: %w", s.path, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
