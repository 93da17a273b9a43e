package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap implements help.KeyMap over a registry for one tab, plus the
// component keys of the page so the full help lists everything.
type KeyMap struct {
	registry *KeybindRegistry
	tab      Tab
	page     []key.Binding
}

var _ help.KeyMap = (*KeyMap)(nil)

// NewKeyMap creates a KeyMap for tab with extra page bindings.
func NewKeyMap(registry *KeybindRegistry, tab Tab, page ...key.Binding) *KeyMap {
	return &KeyMap{registry: registry, tab: tab, page: page}
}

// ShortHelp returns the global single-key bindings.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	return sortedBindings(km.registry.GlobalHints(km.tab))
}

// FullHelp returns three columns: global keys, SPC commands, page keys.
func (km *KeyMap) FullHelp() [][]key.Binding {
	if km.registry == nil {
		return [][]key.Binding{km.page}
	}
	leader := km.registry.LeaderHints("", km.tab)
	prefixed := make(map[string]string, len(leader))
	for k, v := range leader {
		prefixed["SPC "+k] = v
	}
	return [][]key.Binding{km.ShortHelp(), sortedBindings(prefixed), km.page}
}

func newHelpModel() help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(Styles.Theme.Highlight)).Bold(true)
	h.Styles.ShortDesc = Styles.Muted
	h.Styles.ShortSeparator = Styles.Muted
	h.Styles.FullKey = h.Styles.ShortKey
	h.Styles.FullDesc = Styles.Muted
	h.Styles.FullSeparator = Styles.Muted
	return h
}

// RenderKeybindHelp produces the transient hint box shown after SPC.
func RenderKeybindHelp(h *KeyHandler, tab Tab) string {
	if h == nil || !h.LeaderWaiting {
		return ""
	}
	seq := h.CurrentSeq()
	hints := h.Registry.LeaderHints(seq, tab)
	if len(hints) == 0 {
		return ""
	}
	bindings := append(sortedBindings(hints), key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	))
	content := Styles.Muted.Render(seq) + " " + newHelpModel().ShortHelpView(bindings)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(Styles.Theme.Accent)).
		Padding(0, 1).
		MarginTop(1)
	return box.Render(content)
}

// RenderFullHelp renders the "?" overlay for km.
func RenderFullHelp(km *KeyMap) string {
	h := newHelpModel()
	h.ShowAll = true
	return Styles.Card.Render(Styles.Title.Render("Keys") + "\n\n" + h.View(km))
}
