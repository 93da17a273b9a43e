package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// Page is a tab body. Capturing reports whether it wants every key
// (e.g. a text field is being edited), bypassing app-level bindings.
type Page interface {
	View
	Capturing() bool
}
