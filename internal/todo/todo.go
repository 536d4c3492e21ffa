// Package todo defines the task model and the Store that owns it.
// Persistence goes through the Backend interface so the same store works over
// JSON, YAML, TOML or SQLite files without changing any front-end.
package todo

import (
	"errors"
	"time"
)

// TimeLayout is the on-disk format of Task.CreatedAt.
const TimeLayout = "2006-01-02 15:04:05"

var (
	// ErrNotFound is returned when no task carries the requested id.
	ErrNotFound = errors.New("task not found")
	// ErrNoData means the backing file does not exist yet.
	ErrNoData = errors.New("no task file")
	// ErrCorrupt means the backing file exists but could not be decoded.
	ErrCorrupt = errors.New("task file is corrupt")
	// ErrSave wraps any failure to write the collection back.
	ErrSave = errors.New("save tasks")
)

// Task is the central domain object.
type Task struct {
	ID          int    `json:"id" yaml:"id" toml:"id"`
	Description string `json:"description" yaml:"description" toml:"description"`
	Done        bool   `json:"done" yaml:"done" toml:"done"`
	CreatedAt   string `json:"created_at" yaml:"created_at" toml:"created_at"`
}

// Status is the display form of Done.
func (t Task) Status() string {
	if t.Done {
		return "DONE"
	}
	return "PENDING"
}

// Created parses CreatedAt in the local zone.
func (t Task) Created() (time.Time, error) {
	return time.ParseInLocation(TimeLayout, t.CreatedAt, time.Local)
}

// Backend is the storage contract. It always reads and writes the whole
// ordered collection.
type Backend interface {
	Load() ([]Task, error)
	Save(tasks []Task) error
	Path() string
	Close() error
}
