package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskboard/internal/checklist"
	"taskboard/internal/model"
	"taskboard/internal/taskdetail"
)

type detailScreen struct {
	vm         taskdetail.ViewModel
	comment    textinput.Model
	commenting bool
	due        textinput.Model
	editingDue bool
	err        string
}

func (m *Model) openDetail(id string) tea.Cmd {
	vm := m.opts.NewDetail(id, func(id string) {
		select {
		case m.deleted <- id:
		default:
		}
	})

	comment := textinput.New()
	comment.Placeholder = "Add a comment..."
	comment.CharLimit = 2000
	comment.Width = 50

	due := textinput.New()
	due.Placeholder = "today, tomorrow, next friday, 2024-07-02"
	due.CharLimit = 64
	due.Width = 40

	m.detail = &detailScreen{vm: vm, comment: comment, due: due}
	m.screen = screenDetail
	return m.detailCmd(vm, vm.Load)
}

func (m *Model) backToList() (tea.Model, tea.Cmd) {
	if m.detail != nil {
		m.detail.vm.Close()
		m.detail = nil
	}
	m.screen = screenList
	return m, m.listCmd(m.opts.List.Refresh)
}

func (m *Model) onDetailDone(msg detailDoneMsg) (tea.Model, tea.Cmd) {
	if m.detail == nil || msg.vm != m.detail.vm {
		return m, nil
	}
	select {
	case <-m.deleted:
		return m.backToList()
	default:
	}
	m.detail.comment.SetValue(m.detail.vm.Snapshot().CommentInput)
	return m, nil
}

func (m *Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := m.detail
	vm := d.vm

	if d.commenting {
		switch msg.String() {
		case "esc":
			d.commenting = false
			d.comment.Blur()
			return m, nil
		case "enter":
			d.commenting = false
			d.comment.Blur()
			return m, m.detailCmd(vm, vm.SubmitComment)
		}
		var cmd tea.Cmd
		d.comment, cmd = d.comment.Update(msg)
		vm.SetCommentInput(d.comment.Value())
		return m, cmd
	}

	if d.editingDue {
		switch msg.String() {
		case "esc":
			d.editingDue = false
			d.due.Blur()
			return m, nil
		case "enter":
			d.editingDue = false
			d.due.Blur()
			input := strings.TrimSpace(d.due.Value())
			d.due.SetValue("")
			if input == "" {
				return m, nil
			}
			due, err := m.opts.Dates.Parse(input, m.opts.Now())
			if err != nil {
				d.err = fmt.Sprintf("due date: %v", err)
				return m, nil
			}
			d.err = ""
			_ = vm.SetEditDueDate(due)
			return m, nil
		}
		var cmd tea.Cmd
		d.due, cmd = d.due.Update(msg)
		return m, cmd
	}

	snap := vm.Snapshot()

	if snap.ConfirmingDelete {
		switch {
		case key.Matches(msg, m.keys.Confirm):
			return m, m.detailCmd(vm, vm.ConfirmDelete)
		case key.Matches(msg, m.keys.Deny):
			vm.CancelDelete()
		}
		return m, nil
	}

	switch snap.Phase {
	case taskdetail.PhaseDeleted:
		return m.backToList()

	case taskdetail.PhaseEditing:
		switch {
		case key.Matches(msg, m.keys.Status):
			_ = vm.SetEditStatus(snap.Displayed.Status.Next())
		case key.Matches(msg, m.keys.Priority):
			_ = vm.SetEditPriority(snap.Displayed.Priority.Next())
		case key.Matches(msg, m.keys.Due):
			d.editingDue = true
			return m, d.due.Focus()
		case key.Matches(msg, m.keys.Open):
			return m, m.detailCmd(vm, vm.Save)
		case key.Matches(msg, m.keys.Back):
			vm.Cancel()
			d.err = ""
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		if snap.Notice != nil {
			vm.DismissNotice()
			return m, nil
		}
		return m.backToList()
	case key.Matches(msg, m.keys.Refresh):
		return m, m.detailCmd(vm, vm.Refresh)
	case key.Matches(msg, m.keys.Edit):
		_ = vm.BeginEdit()
	case key.Matches(msg, m.keys.Comment):
		if snap.Phase == taskdetail.PhaseViewing {
			d.commenting = true
			return m, d.comment.Focus()
		}
	case key.Matches(msg, m.keys.Delete):
		_ = vm.RequestDelete()
	}
	return m, nil
}

func (m *Model) viewDetail() string {
	d := m.detail
	snap := d.vm.Snapshot()
	var b strings.Builder

	switch snap.Phase {
	case taskdetail.PhaseLoading:
		return "Loading task...\n" + helpLine(m.keys.Back)
	case taskdetail.PhaseNotFound:
		return errorStyle.Render("This task no longer exists.") + "\n" + helpLine(m.keys.Back)
	case taskdetail.PhaseFailed:
		return errorStyle.Render(fmt.Sprintf("Could not load task: %v", snap.Err)) + "\n" +
			helpLine(m.keys.Refresh, m.keys.Back)
	case taskdetail.PhaseDeleted:
		return successStyle.Render("Task deleted.") + "\n" + helpLine(m.keys.Back)
	}

	t := snap.Task
	title := t.Name
	if snap.Refreshing {
		title += dimStyle.Render("  refreshing...")
	}
	b.WriteString(titleStyle.Render(title) + "\n")

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label) + value + "\n")
	}
	row("Project", string(t.ProjectID))
	row("Status", model.FormatStatus(snap.Displayed.Status))
	row("Priority", renderPriority(snap.Displayed.Priority))
	row("Due", model.FormatDate(snap.Displayed.DueDate, m.location()))
	row("Created", model.FormatDate(t.CreatedDate, m.location()))
	if len(t.Tags) > 0 {
		row("Tags", strings.Join(t.Tags, ", "))
	}
	if cl := checklist.Summarize(t.Description); !cl.Empty() {
		row("Checklist", fmt.Sprintf("%d/%d done (%d%%)", cl.Completed, cl.Total, cl.Percent()))
	}
	if t.Description != "" {
		b.WriteString("\n" + t.Description + "\n")
	}

	b.WriteString("\n" + labelStyle.Render("Comments") + "\n")
	if len(t.Comments) == 0 {
		b.WriteString(dimStyle.Render("  none yet") + "\n")
	}
	for _, c := range t.Comments {
		b.WriteString("  - " + c + "\n")
	}

	if d.editingDue {
		b.WriteString("\n" + d.due.View() + "\n")
	}
	if d.commenting {
		b.WriteString("\n" + d.comment.View() + "\n")
	}
	if snap.ConfirmingDelete {
		b.WriteString("\n" + dialogStyle.Render(fmt.Sprintf("Delete %q? y/n", t.Name)) + "\n")
	}
	if d.err != "" {
		b.WriteString("\n" + errorStyle.Render(d.err) + "\n")
	}
	if n := renderNotice(snap.Notice); n != "" {
		b.WriteString("\n" + n + "\n")
	}

	if snap.Phase == taskdetail.PhaseEditing {
		b.WriteString(helpStyle.Render("editing: s status  p priority  u due date  enter save  esc cancel"))
		return b.String()
	}
	b.WriteString(helpLine(m.keys.Edit, m.keys.Comment, m.keys.Delete, m.keys.Refresh, m.keys.Back))
	return b.String()
}
