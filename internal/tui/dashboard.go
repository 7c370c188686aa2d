package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"taskboard/internal/dashboard"
	"taskboard/internal/model"
	"taskboard/internal/viewstate"
)

const maxBarWidth = 40

func (m *Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	vm := m.opts.Dashboard
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.screen = screenList
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		return m, m.dashCmd(vm.Refresh)
	case key.Matches(msg, m.keys.Period):
		now := m.opts.Now()
		switch msg.String() {
		case "1":
			_ = vm.SetPeriod(now, now)
		case "7":
			p := m.opts.Dates.LastDays(now, 7)
			_ = vm.SetPeriod(p.From, p.To)
		case "3":
			p := m.opts.Dates.LastDays(now, dashboard.DefaultPeriodDays)
			_ = vm.SetPeriod(p.From, p.To)
		case "a":
			_ = vm.SetPeriod(time.Time{}, time.Time{})
		}
	}
	return m, nil
}

func (m *Model) viewDashboard() string {
	snap := m.opts.Dashboard.Snapshot()
	var b strings.Builder

	b.WriteString(titleStyle.Render("Dashboard") + "\n")
	b.WriteString(dimStyle.Render(m.describePeriod(snap)) + "\n\n")

	switch snap.State {
	case viewstate.StateIdle, viewstate.StateLoading:
		if len(snap.Series) == 0 && snap.Stats.Total == 0 {
			b.WriteString("Loading...\n")
			b.WriteString(helpLine(m.keys.Back))
			return b.String()
		}
	case viewstate.StateFailed:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Could not load tasks: %v", snap.Err)) + "\n")
		b.WriteString(helpLine(m.keys.Refresh, m.keys.Back))
		return b.String()
	}

	s := snap.Stats
	b.WriteString(fmt.Sprintf("%s%d\n", labelStyle.Render("Total"), s.Total))
	b.WriteString(fmt.Sprintf("%s%d\n", labelStyle.Render(model.FormatStatus(model.StatusDone)), s.Done))
	b.WriteString(fmt.Sprintf("%s%d\n", labelStyle.Render(model.FormatStatus(model.StatusInProgress)), s.InProgress))
	b.WriteString(fmt.Sprintf("%s%d\n", labelStyle.Render(model.FormatStatus(model.StatusNotStarted)), s.NotStarted))

	b.WriteString("\n" + labelStyle.Render("Created per day") + "\n")
	if len(snap.Series) == 0 {
		b.WriteString(dimStyle.Render("  no tasks created in this period") + "\n")
	}
	peak := 0
	for _, dc := range snap.Series {
		peak = max(peak, dc.Count)
	}
	for _, dc := range snap.Series {
		width := dc.Count
		if peak > maxBarWidth {
			width = max(1, dc.Count*maxBarWidth/peak)
		}
		b.WriteString(fmt.Sprintf("  %s %s %d\n", dc.Day, barStyle.Render(strings.Repeat("█", width)), dc.Count))
	}

	b.WriteString(helpLine(m.keys.Period, m.keys.Refresh, m.keys.Back))
	return b.String()
}

func (m *Model) describePeriod(snap dashboard.Snapshot) string {
	from, to := "the first task", "the last task"
	if !snap.Period.From.IsZero() {
		from = model.FormatDate(snap.Period.From, m.location())
	}
	if !snap.Period.To.IsZero() {
		to = model.FormatDate(snap.Period.To, m.location())
	}
	if snap.Period.From.IsZero() && snap.Period.To.IsZero() {
		return "All time"
	}
	return fmt.Sprintf("From %s to %s", from, to)
}
