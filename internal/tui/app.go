// Package tui renders the task view models in a terminal with bubbletea.
// Gateway work runs inside tea.Cmds; every screen re-reads its view model
// snapshot when a command completes.
package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"taskboard/internal/calendarsync"
	"taskboard/internal/dashboard"
	"taskboard/internal/model"
	"taskboard/internal/taskdetail"
	"taskboard/internal/tasklist"
	"taskboard/pkg/datemath"
)

// Exporter pushes dated tasks to an external calendar.
type Exporter interface {
	Export(ctx context.Context, tasks []model.Task) (calendarsync.Summary, error)
}

// Options wires the view models into the terminal program.
type Options struct {
	List      tasklist.ViewModel
	Dashboard dashboard.ViewModel
	NewDetail func(id string, onDeleted func(id string)) taskdetail.ViewModel
	Exporter  Exporter // nil disables calendar export
	Dates     *datemath.Parser
	Now       func() time.Time
}

type screen int

const (
	screenList screen = iota
	screenDetail
	screenDashboard
)

type (
	listDoneMsg   struct{ err error }
	detailDoneMsg struct {
		vm  taskdetail.ViewModel
		err error
	}
	dashDoneMsg   struct{ err error }
	exportDoneMsg struct {
		summary calendarsync.Summary
		err     error
	}
)

// Model is the root bubbletea model.
type Model struct {
	ctx    context.Context
	opts   Options
	keys   keyMap
	screen screen

	list   listScreen
	detail *detailScreen

	deleted chan string
	status  string
}

// New creates the root model. ctx bounds every gateway call.
func New(ctx context.Context, opts Options) *Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Model{
		ctx:     ctx,
		opts:    opts,
		keys:    defaultKeyMap(),
		list:    newListScreen(),
		deleted: make(chan string, 1),
	}
}

// Run starts the program and blocks until the user quits or ctx ends.
func Run(ctx context.Context, opts Options) error {
	m := New(ctx, opts)
	defer m.close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return m.listCmd(m.opts.List.Mount)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listDoneMsg:
		m.list.clamp(len(m.opts.List.Snapshot().Visible))
		return m, nil
	case detailDoneMsg:
		return m.onDetailDone(msg)
	case dashDoneMsg:
		return m, nil
	case exportDoneMsg:
		if msg.err != nil {
			m.status = errorStyle.Render(fmt.Sprintf("Calendar export failed: %v", msg.err))
		} else {
			m.status = successStyle.Render(fmt.Sprintf("Calendar export: %d created, %d skipped, %d failed.",
				msg.summary.Created, msg.summary.Skipped, msg.summary.Failed))
		}
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.screen {
		case screenDetail:
			return m.updateDetail(msg)
		case screenDashboard:
			return m.updateDashboard(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m *Model) View() string {
	switch m.screen {
	case screenDetail:
		return m.viewDetail()
	case screenDashboard:
		return m.viewDashboard()
	default:
		return m.viewList()
	}
}

func (m *Model) listCmd(fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg { return listDoneMsg{err: fn(m.ctx)} }
}

func (m *Model) detailCmd(vm taskdetail.ViewModel, fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg { return detailDoneMsg{vm: vm, err: fn(m.ctx)} }
}

func (m *Model) dashCmd(fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg { return dashDoneMsg{err: fn(m.ctx)} }
}

func (m *Model) close() {
	if m.detail != nil {
		m.detail.vm.Close()
	}
	m.opts.List.Close()
	m.opts.Dashboard.Close()
}

func (m *Model) location() *time.Location {
	if m.opts.Dates == nil {
		return time.Local
	}
	return m.opts.Dates.Location()
}
