package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.Bind("SPC q", tea.Quit)
	reg.Bind("j", nil)

	if reg.Lookup("q", TabInputField) == nil {
		t.Error("expected q to be bound")
	}
	if reg.Lookup("SPC q", TabDataTable) == nil {
		t.Error("expected SPC q to be bound")
	}
	if reg.Lookup("unknown", TabInputField) != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeybindRegistry_TabFilter(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindForTabs("SPC c", tea.Quit, "Clear data", TabDataTable)

	if reg.Lookup("SPC c", TabInputField) != nil {
		t.Error("SPC c should not apply on the input tab")
	}
	if reg.Lookup("SPC c", TabDataTable) == nil {
		t.Error("SPC c should apply on the table tab")
	}
	if _, ok := reg.LeaderHints("", TabInputField)["c"]; ok {
		t.Error("input tab hints should not list c")
	}
	if got := reg.LeaderHints("", TabDataTable)["c"]; got != "Clear data" {
		t.Errorf("table tab hint for c = %q", got)
	}
}

func TestKeybindRegistry_NestedHints(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC d a", tea.Quit, "Deep")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")

	hints := reg.LeaderHints("", TabInputField)
	if hints["d"] != "d…" {
		t.Errorf("d hint = %q, want group marker", hints["d"])
	}
	if hints["q"] != "Quit" {
		t.Errorf("q hint = %q", hints["q"])
	}
	if got := reg.LeaderHints("SPC d", TabInputField)["a"]; got != "Deep" {
		t.Errorf("nested hint = %q", got)
	}
}

func TestKeyHandler_LeaderKey(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("SPC x", func() tea.Msg {
		executed = true
		return nil
	})
	h := NewKeyHandler(reg)

	// Press space -> leader waiting (Bubble Tea reports space as " ")
	consumed, cmd := h.Handle(keyMsg(" "), TabInputField)
	if !consumed || cmd != nil {
		t.Errorf("space: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting {
		t.Error("expected leader waiting after space")
	}

	consumed, cmd = h.Handle(keyMsg("x"), TabInputField)
	if !consumed {
		t.Errorf("x: expected consumed")
	}
	if h.LeaderWaiting {
		t.Error("leader should not be waiting after completing sequence")
	}
	if cmd == nil {
		t.Fatal("expected SPC x command")
	}
	cmd()
	if !executed {
		t.Error("expected command to execute")
	}
}

func TestKeyHandler_LeaderRespectsTab(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindForTabs("SPC r", tea.Quit, "Restore", TabDataTable)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "), TabInputField)
	consumed, cmd := h.Handle(keyMsg("r"), TabInputField)
	if !consumed || cmd != nil {
		t.Errorf("SPC r on input tab: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("unknown sequence should leave leader mode")
	}
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "), TabInputField)
	if !h.LeaderWaiting {
		t.Fatal("expected leader waiting")
	}

	consumed, cmd := h.Handle(keyMsg("esc"), TabInputField)
	if !consumed || cmd != nil {
		t.Errorf("esc: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("esc should cancel leader mode")
	}
}

func TestKeyHandler_SingleKey(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("q"), TabDataTable)
	if !consumed || cmd == nil {
		t.Errorf("q: consumed=%v cmd=%v", consumed, cmd)
	}
}

func TestKeyHandler_UnboundFallsThrough(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, _ := h.Handle(keyMsg("j"), TabDataTable)
	if consumed {
		t.Error("unbound j should not be consumed")
	}
}

func TestRenderKeybindHelp(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC l", tea.Quit, "Simulate loading")
	h := NewKeyHandler(reg)

	if got := RenderKeybindHelp(h, TabInputField); got != "" {
		t.Errorf("help outside leader mode = %q", got)
	}
	h.Handle(keyMsg(" "), TabInputField)
	if got := RenderKeybindHelp(h, TabInputField); !containsAll(got, "SPC", "Simulate loading", "cancel") {
		t.Errorf("leader help missing hints: %q", got)
	}
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
// KeySpace.String() returns " ", KeyEsc returns "esc", etc.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+x":
		return tea.KeyMsg{Type: tea.KeyCtrlX}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// press feeds keys to v one by one and returns the last command.
func press(v View, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = v.Update(keyMsg(k))
	}
	return cmd
}
