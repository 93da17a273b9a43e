package ui

import tea "github.com/charmbracelet/bubbletea"

// Overlay is a view drawn over the current page. Any of its dismiss keys
// closes it; other keys go to the view.
type Overlay struct {
	Name    string
	View    View
	Dismiss []string
}

// IsDismissKey reports whether key closes the overlay.
func (o *Overlay) IsDismissKey(key string) bool {
	for _, k := range o.Dismiss {
		if k == key {
			return true
		}
	}
	return false
}

// OverlayStack holds open overlays; the topmost receives input first.
type OverlayStack struct {
	Stack []Overlay
}

// Push opens o on top.
func (s *OverlayStack) Push(o Overlay) {
	s.Stack = append(s.Stack, o)
}

// Pop closes and returns the top overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	top, ok := s.Peek()
	if ok {
		s.Stack = s.Stack[:len(s.Stack)-1]
	}
	return top, ok
}

// Peek returns the top overlay without closing it.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len returns the number of open overlays.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// Has reports whether an overlay with name is open.
func (s *OverlayStack) Has(name string) bool {
	for _, o := range s.Stack {
		if o.Name == name {
			return true
		}
	}
	return false
}

// Remove closes every overlay called name.
func (s *OverlayStack) Remove(name string) {
	kept := s.Stack[:0]
	for _, o := range s.Stack {
		if o.Name != name {
			kept = append(kept, o)
		}
	}
	s.Stack = kept
}

// HandleKey routes a key to the top overlay: dismiss keys close it, other
// keys update it. handled is false when no overlay is open.
func (s *OverlayStack) HandleKey(msg tea.KeyMsg) (cmd tea.Cmd, handled bool) {
	top, ok := s.Peek()
	if !ok {
		return nil, false
	}
	if top.IsDismissKey(msg.String()) {
		s.Pop()
		return nil, true
	}
	return s.UpdateTop(msg)
}

// UpdateTop passes msg to the top overlay and stores the returned view.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := &s.Stack[len(s.Stack)-1]
	newView, cmd := top.View.Update(msg)
	top.View = newView
	return cmd, true
}

// helpOverlay is the "?" key reference.
const helpOverlay = "help"

// HelpView renders the full key reference for one tab.
type HelpView struct {
	Keys *KeyMap
}

// Init implements View.
func (h *HelpView) Init() tea.Cmd { return nil }

// Update implements View.
func (h *HelpView) Update(tea.Msg) (View, tea.Cmd) { return h, nil }

// View implements View.
func (h *HelpView) View() string { return RenderFullHelp(h.Keys) }
