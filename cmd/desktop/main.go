package main

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"

	"github.com/MihkelHunter/mktodo/internal/config"
	"github.com/MihkelHunter/mktodo/internal/store"
	"github.com/MihkelHunter/mktodo/internal/todo"
)

// ── Colour palette ───────────────────────────────────────────────────────────

var (
	colBackground = color.NRGBA{R: 15, G: 15, B: 20, A: 255}
	colSurface    = color.NRGBA{R: 26, G: 26, B: 36, A: 255}
	colAccent     = color.NRGBA{R: 99, G: 102, B: 241, A: 255}
	colPending    = color.NRGBA{R: 245, G: 158, B: 11, A: 255}
	colDone       = color.NRGBA{R: 34, G: 197, B: 94, A: 255}
	colDoneRow    = color.NRGBA{R: 20, G: 30, B: 25, A: 255}
)

// ── App state ────────────────────────────────────────────────────────────────

type appState struct {
	store      *todo.Store
	win        fyne.Window
	taskList   *widget.List
	statsLabel *widget.Label
	tasks      []todo.Task
	filter     string // "all" | "active" | "done"
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	backend, err := store.Open(cfg.File)
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	st := todo.NewStore(backend)
	defer st.Close()
	loadErr := st.Load()

	a := app.New()
	a.Settings().SetTheme(&darkTheme{})

	win := a.NewWindow("mkToDo — " + st.Path())
	win.Resize(fyne.NewSize(740, 600))
	win.CenterOnScreen()

	s := &appState{store: st, win: win, filter: "all"}
	win.SetContent(s.buildUI())
	s.refresh()

	if loadErr != nil && !errors.Is(loadErr, todo.ErrNoData) {
		dialog.ShowInformation("Could not load tasks",
			"The task file could not be read. Starting with an empty list;\nthe file is left as is until the next save.", win)
	}

	win.ShowAndRun()
}

// ── Build UI ─────────────────────────────────────────────────────────────────

func (s *appState) buildUI() fyne.CanvasObject {
	title := canvas.NewText("  ✓  mkToDo", color.White)
	title.TextSize = 20
	title.TextStyle = fyne.TextStyle{Bold: true}

	addBtn := widget.NewButton("+ Add Task", func() { s.showTaskForm(nil) })
	addBtn.Importance = widget.HighImportance

	header := container.NewBorder(nil, nil, title, container.NewPadded(addBtn))
	headerStack := container.NewStack(canvas.NewRectangle(colSurface), container.NewPadded(header))

	allBtn := widget.NewButton("All", func() { s.filter = "all"; s.refresh() })
	activeBtn := widget.NewButton("Active", func() { s.filter = "active"; s.refresh() })
	doneBtn := widget.NewButton("Done", func() { s.filter = "done"; s.refresh() })
	filterRow := container.NewHBox(layout.NewSpacer(), allBtn, activeBtn, doneBtn, layout.NewSpacer())

	s.taskList = widget.NewList(
		func() int { return len(s.tasks) },
		s.makeTaskRow,
		s.updateTaskRow,
	)
	s.taskList.OnSelected = func(id widget.ListItemID) { s.taskList.Unselect(id) }

	s.statsLabel = widget.NewLabel("")
	footerStack := container.NewStack(canvas.NewRectangle(colSurface), container.NewPadded(container.NewCenter(s.statsLabel)))

	ui := container.NewBorder(
		container.NewVBox(headerStack, filterRow),
		footerStack,
		nil, nil,
		container.NewScroll(s.taskList),
	)
	return container.NewStack(canvas.NewRectangle(colBackground), ui)
}

// ── Task row template ─────────────────────────────────────────────────────────

func (s *appState) makeTaskRow() fyne.CanvasObject {
	statusDot := canvas.NewCircle(colPending)
	statusDot.Resize(fyne.NewSize(12, 12))

	checkBtn := widget.NewButtonWithIcon("", theme.RadioButtonIcon(), func() {})
	checkBtn.Importance = widget.LowImportance

	descLabel := widget.NewLabel("description")
	descLabel.TextStyle = fyne.TextStyle{Bold: true}
	metaLabel := widget.NewLabel("meta")

	editBtn := widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), func() {})
	editBtn.Importance = widget.LowImportance

	deleteBtn := widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {})
	deleteBtn.Importance = widget.DangerImportance

	left := container.NewHBox(
		container.NewCenter(statusDot),
		checkBtn,
		container.NewVBox(descLabel, metaLabel),
	)
	right := container.NewHBox(editBtn, deleteBtn)

	rowBG := canvas.NewRectangle(colSurface)
	rowBG.CornerRadius = 8

	return container.NewStack(rowBG, container.NewPadded(container.NewBorder(nil, nil, left, right)))
}

func (s *appState) updateTaskRow(i widget.ListItemID, obj fyne.CanvasObject) {
	if i >= len(s.tasks) {
		return
	}
	t := s.tasks[i]

	stack := obj.(*fyne.Container)
	rowBG := stack.Objects[0].(*canvas.Rectangle)
	padded := stack.Objects[1].(*fyne.Container)
	border := padded.Objects[0].(*fyne.Container)

	// NewBorder drops nil edges, so with only left and right set: 0=left, 1=right.
	left := border.Objects[0].(*fyne.Container)
	right := border.Objects[1].(*fyne.Container)

	statusDot := left.Objects[0].(*fyne.Container).Objects[0].(*canvas.Circle)
	checkBtn := left.Objects[1].(*widget.Button)
	textBox := left.Objects[2].(*fyne.Container)
	descLabel := textBox.Objects[0].(*widget.Label)
	metaLabel := textBox.Objects[1].(*widget.Label)

	editBtn := right.Objects[0].(*widget.Button)
	deleteBtn := right.Objects[1].(*widget.Button)

	if t.Done {
		statusDot.FillColor = colDone
		checkBtn.SetIcon(theme.ConfirmIcon())
		descLabel.TextStyle = fyne.TextStyle{Italic: true}
		rowBG.FillColor = colDoneRow
	} else {
		statusDot.FillColor = colPending
		checkBtn.SetIcon(theme.RadioButtonIcon())
		descLabel.TextStyle = fyne.TextStyle{Bold: true}
		rowBG.FillColor = colSurface
	}
	statusDot.Refresh()
	rowBG.Refresh()

	descLabel.SetText(fmt.Sprintf("[%d] %s", t.ID, t.Description))
	metaLabel.SetText(t.Status() + " · created " + createdText(t))

	id, done := t.ID, t.Done
	checkBtn.OnTapped = func() { s.toggleTask(id, done) }
	editBtn.OnTapped = func() { s.showTaskForm(&t) }
	deleteBtn.OnTapped = func() { s.confirmDelete(t) }
}

func createdText(t todo.Task) string {
	created, err := t.Created()
	if err != nil {
		return t.CreatedAt
	}
	return humanize.Time(created)
}

// ── Actions ───────────────────────────────────────────────────────────────────

func (s *appState) refresh() {
	all := s.store.List()
	var filtered []todo.Task
	done := 0
	for _, t := range all {
		if t.Done {
			done++
		}
		switch {
		case s.filter == "active" && t.Done, s.filter == "done" && !t.Done:
			continue
		}
		filtered = append(filtered, t)
	}
	s.tasks = filtered
	s.taskList.Refresh()
	s.statsLabel.SetText(fmt.Sprintf("%d / %d completed", done, len(all)))
}

// apply reports store errors and redraws. Save failures keep the change in
// memory, so the list is refreshed either way.
func (s *appState) apply(err error) {
	if err != nil {
		dialog.ShowError(err, s.win)
	}
	s.refresh()
}

func (s *appState) toggleTask(id int, done bool) {
	var err error
	if done {
		_, err = s.store.MarkUndone(id)
	} else {
		_, err = s.store.MarkDone(id)
	}
	s.apply(err)
}

func (s *appState) confirmDelete(t todo.Task) {
	dialog.ShowConfirm("Delete Task",
		fmt.Sprintf("Delete task %d \"%s\"?\nLater tasks will be renumbered.", t.ID, t.Description),
		func(ok bool) {
			if ok {
				_, err := s.store.Delete(t.ID)
				s.apply(err)
			}
		}, s.win)
}

func (s *appState) showTaskForm(existing *todo.Task) {
	descEntry := widget.NewEntry()
	descEntry.SetPlaceHolder("Task description…")

	label := "Add Task"
	if existing != nil {
		label = "Edit Task"
		descEntry.SetText(existing.Description)
	}

	form := widget.NewForm(widget.NewFormItem("Description *", descEntry))

	dialog.ShowCustomConfirm(label, "Save", "Cancel", form, func(ok bool) {
		if !ok {
			return
		}
		desc := strings.TrimSpace(descEntry.Text)
		if desc == "" {
			dialog.ShowError(fmt.Errorf("description cannot be empty"), s.win)
			return
		}
		var err error
		if existing == nil {
			_, err = s.store.Add(desc)
		} else {
			_, err = s.store.Edit(existing.ID, desc)
		}
		s.apply(err)
	}, s.win)
}

// ── Custom dark theme ─────────────────────────────────────────────────────────

type darkTheme struct{}

func (darkTheme) Color(n fyne.ThemeColorName, v fyne.ThemeVariant) color.Color {
	switch n {
	case theme.ColorNameBackground:
		return colBackground
	case theme.ColorNameButton, theme.ColorNamePrimary:
		return colAccent
	case theme.ColorNameForeground:
		return color.White
	case theme.ColorNameInputBackground:
		return color.NRGBA{R: 35, G: 35, B: 50, A: 255}
	case theme.ColorNameDisabled:
		return color.NRGBA{R: 80, G: 80, B: 100, A: 255}
	case theme.ColorNameSeparator:
		return color.NRGBA{R: 50, G: 50, B: 65, A: 255}
	}
	return theme.DefaultTheme().Color(n, v)
}

func (darkTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (darkTheme) Icon(n fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(n)
}

func (darkTheme) Size(n fyne.ThemeSizeName) float32 {
	switch n {
	case theme.SizeNamePadding:
		return 10
	case theme.SizeNameText:
		return 14
	case theme.SizeNameInlineIcon:
		return 20
	}
	return theme.DefaultTheme().Size(n)
}
