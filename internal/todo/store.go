package todo

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// Store holds the ordered task list and persists it after every mutation.
// Ids are always 1..N in list order; Delete renumbers the survivors.
type Store struct {
	backend Backend
	tasks   []Task
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now for CreatedAt stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore returns an empty store over backend. Call Load to populate it.
func NewStore(backend Backend, opts ...Option) *Store {
	s := &Store{backend: backend, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory list with the persisted one. On any failure the
// list is left empty and the file is not touched; the returned error matches
// ErrNoData or ErrCorrupt.
func (s *Store) Load() error {
	s.tasks = nil
	tasks, err := s.backend.Load()
	if err != nil {
		if errors.Is(err, ErrNoData) || errors.Is(err, ErrCorrupt) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	s.tasks = tasks
	return nil
}

// Save writes the whole list to the backend. A failure leaves memory as is.
func (s *Store) Save() error {
	if err := s.backend.Save(s.tasks); err != nil {
		return fmt.Errorf("%w: %w", ErrSave, err)
	}
	return nil
}

// Add appends a pending task. The description is stored as given; callers
// validate it. The returned error is only ever a save error.
func (s *Store) Add(description string) (Task, error) {
	t := Task{
		ID:          len(s.tasks) + 1,
		Description: description,
		CreatedAt:   s.now().Format(TimeLayout),
	}
	s.tasks = append(s.tasks, t)
	return t, s.Save()
}

// Edit replaces the description of task id and returns the task as it was.
func (s *Store) Edit(id int, description string) (Task, error) {
	i := s.index(id)
	if i < 0 {
		return Task{}, fmt.Errorf("edit %d: %w", id, ErrNotFound)
	}
	old := s.tasks[i]
	s.tasks[i].Description = description
	return old, s.Save()
}

// Delete removes task id and renumbers the rest to their new positions.
func (s *Store) Delete(id int) (Task, error) {
	i := s.index(id)
	if i < 0 {
		return Task{}, fmt.Errorf("delete %d: %w", id, ErrNotFound)
	}
	deleted := s.tasks[i]
	s.tasks = slices.Delete(s.tasks, i, i+1)
	for j := range s.tasks {
		s.tasks[j].ID = j + 1
	}
	return deleted, s.Save()
}

// MarkDone sets task id done. Marking a done task again still saves.
func (s *Store) MarkDone(id int) (Task, error) {
	return s.setDone(id, true)
}

// MarkUndone sets task id back to pending.
func (s *Store) MarkUndone(id int) (Task, error) {
	return s.setDone(id, false)
}

func (s *Store) setDone(id int, done bool) (Task, error) {
	i := s.index(id)
	if i < 0 {
		return Task{}, fmt.Errorf("mark %d: %w", id, ErrNotFound)
	}
	s.tasks[i].Done = done
	return s.tasks[i], s.Save()
}

// List returns a copy of the tasks in id order.
func (s *Store) List() []Task {
	return slices.Clone(s.tasks)
}

func (s *Store) Len() int { return len(s.tasks) }

func (s *Store) Path() string { return s.backend.Path() }

func (s *Store) Close() error { return s.backend.Close() }

func (s *Store) index(id int) int {
	return slices.IndexFunc(s.tasks, func(t Task) bool { return t.ID == id })
}
