package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskboard/internal/model"
	"taskboard/internal/tasklist"
	"taskboard/internal/viewstate"
)

type listScreen struct {
	cursor        int
	form          *createForm
	pendingDelete *model.Task
}

type createForm struct {
	name     textinput.Model
	due      textinput.Model
	priority model.Priority
	focus    int // 0=name, 1=due
	err      string
}

func newListScreen() listScreen {
	return listScreen{}
}

func newCreateForm() *createForm {
	name := textinput.New()
	name.Placeholder = "Task name"
	name.CharLimit = 256
	name.Width = 40
	name.Focus()

	due := textinput.New()
	due.Placeholder = "Due: today, tomorrow, in 3 days, 2024-07-02 (optional)"
	due.CharLimit = 64
	due.Width = 40

	return &createForm{name: name, due: due, priority: model.PriorityMedium}
}

func (s *listScreen) clamp(n int) {
	if s.cursor >= n {
		s.cursor = n - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func (m *Model) selectedTask() (model.Task, bool) {
	visible := m.opts.List.Snapshot().Visible
	if m.list.cursor < 0 || m.list.cursor >= len(visible) {
		return model.Task{}, false
	}
	return visible[m.list.cursor], true
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.list.form != nil {
		return m.updateCreateForm(msg)
	}
	if t := m.list.pendingDelete; t != nil {
		switch {
		case key.Matches(msg, m.keys.Confirm):
			m.list.pendingDelete = nil
			id := t.ID
			return m, m.listCmd(func(ctx context.Context) error { return m.opts.List.Delete(ctx, id) })
		case key.Matches(msg, m.keys.Deny):
			m.list.pendingDelete = nil
		}
		return m, nil
	}

	vm := m.opts.List
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.list.cursor--
		m.list.clamp(len(vm.Snapshot().Visible))
	case key.Matches(msg, m.keys.Down):
		m.list.cursor++
		m.list.clamp(len(vm.Snapshot().Visible))
	case key.Matches(msg, m.keys.Open):
		if t, ok := m.selectedTask(); ok {
			return m, m.openDetail(t.ID)
		}
	case key.Matches(msg, m.keys.Refresh):
		return m, m.listCmd(vm.Refresh)
	case key.Matches(msg, m.keys.New):
		m.list.form = newCreateForm()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Delete):
		if t, ok := m.selectedTask(); ok {
			m.list.pendingDelete = &t
		}
	case key.Matches(msg, m.keys.Status):
		_ = vm.SetStatusFilter(string(vm.Snapshot().Filter.Status.Next()))
		m.list.cursor = 0
	case key.Matches(msg, m.keys.Priority):
		_ = vm.SetPriorityFilter(string(vm.Snapshot().Filter.Priority.Next()))
		m.list.cursor = 0
	case key.Matches(msg, m.keys.Today):
		vm.ToggleTodayOnly()
		m.list.cursor = 0
	case key.Matches(msg, m.keys.Dashboard):
		m.screen = screenDashboard
		return m, m.dashCmd(m.opts.Dashboard.Load)
	case key.Matches(msg, m.keys.Export):
		return m, m.exportCmd()
	case key.Matches(msg, m.keys.Back):
		vm.DismissNotice()
		m.status = ""
	}
	return m, nil
}

func (m *Model) updateCreateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.list.form
	switch msg.String() {
	case "esc":
		m.list.form = nil
		return m, nil
	case "tab", "shift+tab":
		f.focus = 1 - f.focus
		if f.focus == 0 {
			f.due.Blur()
			return m, f.name.Focus()
		}
		f.name.Blur()
		return m, f.due.Focus()
	case "ctrl+p":
		f.priority = f.priority.Next()
		return m, nil
	case "enter":
		draft, err := m.draftFromForm(f)
		if err != nil {
			f.err = err.Error()
			return m, nil
		}
		m.list.form = nil
		return m, m.listCmd(func(ctx context.Context) error { return m.opts.List.Create(ctx, draft) })
	}

	var cmd tea.Cmd
	if f.focus == 0 {
		f.name, cmd = f.name.Update(msg)
	} else {
		f.due, cmd = f.due.Update(msg)
	}
	return m, cmd
}

func (m *Model) draftFromForm(f *createForm) (model.Draft, error) {
	name := strings.TrimSpace(f.name.Value())
	if name == "" {
		return model.Draft{}, fmt.Errorf("name is required")
	}

	var due time.Time
	if input := strings.TrimSpace(f.due.Value()); input != "" {
		d, err := m.opts.Dates.Parse(input, m.opts.Now())
		if err != nil {
			return model.Draft{}, fmt.Errorf("due date: %w", err)
		}
		due = d
	}

	draft := model.NewDraft(name, due)
	draft.Priority = f.priority
	return draft, nil
}

func (m *Model) exportCmd() tea.Cmd {
	if m.opts.Exporter == nil {
		m.status = dimStyle.Render("Calendar export is not configured.")
		return nil
	}
	tasks := m.opts.List.Snapshot().Tasks
	m.status = dimStyle.Render("Exporting to calendar...")
	return func() tea.Msg {
		sum, err := m.opts.Exporter.Export(m.ctx, tasks)
		return exportDoneMsg{summary: sum, err: err}
	}
}

func (m *Model) viewList() string {
	snap := m.opts.List.Snapshot()
	var b strings.Builder

	b.WriteString(titleStyle.Render("Tasks"))
	b.WriteString("\n")
	today := "off"
	if snap.Filter.TodayOnly {
		today = "on"
	}
	b.WriteString(dimStyle.Render(fmt.Sprintf("status: %s   priority: %s   due today: %s",
		snap.Filter.Status, snap.Filter.Priority, today)))
	b.WriteString("\n\n")

	switch {
	case snap.State == viewstate.StateIdle || (snap.State == viewstate.StateLoading && len(snap.Tasks) == 0):
		b.WriteString("Loading tasks...\n")
	case snap.State == viewstate.StateFailed:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Could not load tasks: %v", snap.Err)))
		b.WriteString("\nPress r to retry.\n")
	case snap.Empty == tasklist.EmptyNoTasks:
		b.WriteString("No tasks yet. Press n to create one.\n")
	case snap.Empty == tasklist.EmptyNoMatches:
		b.WriteString("No tasks match the current filters.\n")
	default:
		for i, t := range snap.Visible {
			b.WriteString(m.renderRow(t, i == m.list.cursor))
			b.WriteString("\n")
		}
	}

	if f := m.list.form; f != nil {
		b.WriteString("\n" + titleStyle.Render("New task") + "\n")
		b.WriteString(f.name.View() + "\n")
		b.WriteString(f.due.View() + "\n")
		b.WriteString(labelStyle.Render("Priority") + renderPriority(f.priority) + dimStyle.Render("  (ctrl+p)") + "\n")
		if f.err != "" {
			b.WriteString(errorStyle.Render(f.err) + "\n")
		}
		b.WriteString(helpStyle.Render("enter create  tab next field  esc cancel"))
		return b.String()
	}

	if t := m.list.pendingDelete; t != nil {
		b.WriteString("\n" + dialogStyle.Render(fmt.Sprintf("Delete %q? y/n", t.Name)) + "\n")
	}

	if n := renderNotice(snap.Notice); n != "" {
		b.WriteString("\n" + n + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	b.WriteString(helpLine(m.keys.Open, m.keys.New, m.keys.Delete, m.keys.Status, m.keys.Priority,
		m.keys.Today, m.keys.Refresh, m.keys.Dashboard, m.keys.Export, m.keys.Quit))
	return b.String()
}

func (m *Model) renderRow(t model.Task, selected bool) string {
	cursor := "  "
	name := t.Name
	if selected {
		cursor = "> "
		name = selectedStyle.Render(name)
	}
	due := ""
	if t.HasDueDate() {
		due = dimStyle.Render("  due " + model.FormatDate(t.DueDate, m.location()))
	}
	return fmt.Sprintf("%s%-8s %s  %s%s", cursor, renderPriority(t.Priority), name,
		dimStyle.Render(model.FormatStatus(t.Status)), due)
}
