// Package cli is the interactive numbered menu over a todo.Store.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MihkelHunter/mktodo/internal/todo"
)

// ErrInvalidID is returned by ParseID for anything that is not an integer.
var ErrInvalidID = errors.New("invalid task id")

const rule = "============================================================"

// Menu reads choices line by line and drives the store.
type Menu struct {
	store *todo.Store
	in    *bufio.Reader
	out   io.Writer
	// err is the first read failure other than end of input.
	err error
}

// New wraps in with a line reader that has no line length limit.
func New(store *todo.Store, in io.Reader, out io.Writer) *Menu {
	return &Menu{store: store, in: bufio.NewReader(in), out: out}
}

// ParseID converts user input into a task id.
func ParseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return id, nil
}

func (m *Menu) Welcome() {
	m.printf("👋 Welcome to your To-Do List Manager!\n")
}

// Load populates the store and reports the outcome. It never fails.
func (m *Menu) Load() {
	err := m.store.Load()
	switch {
	case err == nil:
		m.printf("✔️ Loaded %d tasks from file\n", m.store.Len())
	case errors.Is(err, todo.ErrNoData):
		m.printf("ℹ️ No existing task file found. Starting with an empty list.\n")
	default:
		m.printf("⚠️ Error loading tasks. Starting with an empty list.\n")
	}
}

// Run loops until the user picks Exit or input ends.
func (m *Menu) Run() error {
	for {
		m.printMenu()
		choice, ok := m.prompt("\nEnter your choice (1-7): ")
		if !ok {
			return m.err
		}
		switch strings.TrimSpace(choice) {
		case "1":
			m.View()
		case "2":
			m.add()
		case "3":
			m.edit()
		case "4":
			m.delete()
		case "5":
			m.mark(true)
		case "6":
			m.mark(false)
		case "7":
			m.printf("\n👋 Thanks for using To-Do List Manager! Goodbye!\n")
			return nil
		default:
			m.printf("⚠️ Invalid choice. Please select a valid option between 1 and 7.\n")
		}
		if _, ok := m.prompt("\nPress Enter to continue..."); !ok {
			return m.err
		}
	}
}

func (m *Menu) printMenu() {
	m.printf("\n%s\n📋 TO-DO LIST MANAGER\n%s\n", rule, rule)
	m.printf("1. View all Tasks\n2. Add a Task\n3. Edit a Task\n4. Delete a Task\n")
	m.printf("5. Mark Task as Done\n6. Mark Task as Undone\n7. Exit\n%s\n", rule)
}

// View prints every task with its status and creation time.
func (m *Menu) View() {
	tasks := m.store.List()
	if len(tasks) == 0 {
		m.printf("\n📋 No tasks yet! Add one to get started.\n\n")
		return
	}
	m.printf("\n%s\n📋 YOUR TO-DO LIST\n%s\n", rule, rule)
	for _, t := range tasks {
		mark := "❌"
		if t.Done {
			mark = "✅"
		}
		m.printf("%s [%d] %s\n", mark, t.ID, t.Description)
		m.printf("    Status: %s | Created at: %s\n", t.Status(), t.CreatedAt)
		m.printf("%s\n", strings.Repeat("-", len(rule)))
	}
	m.printf("\n")
}

func (m *Menu) add() {
	desc, ok := m.prompt("📝 Enter task description: ")
	if !ok {
		return
	}
	desc = strings.TrimSpace(desc)
	if desc == "" {
		m.printf("⚠️ Task description cannot be empty.\n")
		return
	}
	_, err := m.store.Add(desc)
	m.printf("✔️ Task added: '%s'\n", desc)
	m.reportSave(err)
}

func (m *Menu) edit() {
	m.View()
	id, ok := m.promptID("✏️ Enter task ID to edit: ")
	if !ok {
		return
	}
	desc, ok := m.prompt("📝 Enter new description: ")
	if !ok {
		return
	}
	desc = strings.TrimSpace(desc)
	if desc == "" {
		m.printf("⚠️ New description cannot be empty.\n")
		return
	}
	old, err := m.store.Edit(id, desc)
	if m.notFound(id, err) {
		return
	}
	m.printf("✔️ Task %d updated:\n   Old: '%s'\n   New: '%s'\n", id, old.Description, desc)
	m.reportSave(err)
}

func (m *Menu) delete() {
	m.View()
	id, ok := m.promptID("🗑️ Enter task ID to delete: ")
	if !ok {
		return
	}
	confirm, ok := m.prompt(fmt.Sprintf("Are you sure you want to delete task %d? (y/n): ", id))
	if !ok || !strings.EqualFold(strings.TrimSpace(confirm), "y") {
		return
	}
	deleted, err := m.store.Delete(id)
	if m.notFound(id, err) {
		return
	}
	m.printf("✔️ Deleted: '%s'\n", deleted.Description)
	m.reportSave(err)
}

func (m *Menu) mark(done bool) {
	m.View()
	var (
		t   todo.Task
		err error
	)
	if done {
		id, ok := m.promptID("✅ Enter task ID to mark as done: ")
		if !ok {
			return
		}
		if t, err = m.store.MarkDone(id); m.notFound(id, err) {
			return
		}
		m.printf("✔️ Marked as done: '%s'\n", t.Description)
	} else {
		id, ok := m.promptID("⭕ Enter task ID to mark as undone: ")
		if !ok {
			return
		}
		if t, err = m.store.MarkUndone(id); m.notFound(id, err) {
			return
		}
		m.printf("⭕ Marked as undone: '%s'\n", t.Description)
	}
	m.reportSave(err)
}

// promptID reads an id; bad input is reported and ok is false.
func (m *Menu) promptID(label string) (int, bool) {
	line, ok := m.prompt(label)
	if !ok {
		return 0, false
	}
	id, err := ParseID(line)
	if err != nil {
		m.printf("⚠️ Invalid input. Please enter a valid task ID.\n")
		return 0, false
	}
	return id, true
}

// prompt reads one line without its line ending. ok is false once input is
// exhausted; a last line without a newline is still returned.
func (m *Menu) prompt(label string) (string, bool) {
	m.printf("%s", label)
	line, err := m.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) && m.err == nil {
			m.err = err
		}
		if line == "" {
			return "", false
		}
	}
	return strings.TrimRight(line, "\r\n"), true
}

func (m *Menu) notFound(id int, err error) bool {
	if errors.Is(err, todo.ErrNotFound) {
		m.printf("✖️ Task %d not found.\n", id)
		return true
	}
	return false
}

func (m *Menu) reportSave(err error) {
	if err != nil {
		m.printf("⚠️ Error saving tasks: %v\n", err)
		return
	}
	m.printf("✔️ Tasks saved successfully\n")
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}
