// Package store provides file-backed implementations of todo.Backend.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MihkelHunter/mktodo/internal/todo"
)

// Open picks a backend from the file extension. Unknown extensions get JSON.
func Open(path string) (todo.Backend, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return NewYAMLFile(path), nil
	case ".toml":
		return NewTOMLFile(path), nil
	case ".db", ".sqlite", ".sqlite3":
		return NewSQLite(path)
	default:
		return NewJSONFile(path), nil
	}
}

// codec turns the task list into bytes and back for one text format.
type codec struct {
	name   string
	encode func([]todo.Task) ([]byte, error)
	decode func([]byte) ([]todo.Task, error)
}

// textFile is a whole-file backend: every save rewrites the file.
type textFile struct {
	path  string
	codec codec
}

func (f *textFile) Path() string { return f.path }

func (f *textFile) Close() error { return nil }

func (f *textFile) Load() ([]todo.Task, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w: %w", f.path, todo.ErrNoData, err)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}
	tasks, err := f.codec.decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s %s: %w: %w", f.codec.name, f.path, todo.ErrCorrupt, err)
	}
	return tasks, nil
}

func (f *textFile) Save(tasks []todo.Task) error {
	if tasks == nil {
		tasks = []todo.Task{}
	}
	data, err := f.codec.encode(tasks)
	if err != nil {
		return fmt.Errorf("encode %s: %w", f.codec.name, err)
	}
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create dir: %w", err)
		}
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	return nil
}
