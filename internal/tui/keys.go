package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Open      key.Binding
	Back      key.Binding
	Quit      key.Binding
	Refresh   key.Binding
	New       key.Binding
	Delete    key.Binding
	Status    key.Binding
	Priority  key.Binding
	Today     key.Binding
	Dashboard key.Binding
	Export    key.Binding
	Edit      key.Binding
	Due       key.Binding
	Comment   key.Binding
	Confirm   key.Binding
	Deny      key.Binding
	Tab       key.Binding
	Period    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		New:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		Delete:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Status:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "status")),
		Priority:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "priority")),
		Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "due today")),
		Dashboard: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "dashboard")),
		Export:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export to calendar")),
		Edit:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Due:       key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "due date")),
		Comment:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "comment")),
		Confirm:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
		Deny:      key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "no")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Period:    key.NewBinding(key.WithKeys("1", "7", "3", "a"), key.WithHelp("1/7/3/a", "today/7d/30d/all")),
	}
}

func helpLine(bindings ...key.Binding) string {
	var out string
	for i, b := range bindings {
		if i > 0 {
			out += "  "
		}
		h := b.Help()
		out += h.Key + " " + h.Desc
	}
	return helpStyle.Render(out)
}
