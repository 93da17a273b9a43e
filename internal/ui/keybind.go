package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps key sequences to commands.
// Sequences use spacemacs-style notation: "SPC" for space, "SPC l" for SPC then l.
// Single keys: "q", "1", "?", "ctrl+c".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	tabFilter    map[string][]Tab // nil/empty = applies on every tab
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
		tabFilter:    make(map[string][]Tab),
	}
}

// Bind registers a key sequence to a command, overwriting any existing binding.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDesc(seq, cmd, "")
}

// BindWithDesc registers a key sequence with a description for the help view.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindForTabs(seq, cmd, desc)
}

// BindForTabs registers a sequence that is only active on the given tabs.
// With no tabs it is active everywhere.
func (r *KeybindRegistry) BindForTabs(seq string, cmd tea.Cmd, desc string, tabs ...Tab) {
	n := normalizeSeq(seq)
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	}
	if len(tabs) > 0 {
		r.tabFilter[n] = tabs
	} else {
		delete(r.tabFilter, n)
	}
}

// Lookup returns the command for a sequence on tab, or nil if not bound there.
func (r *KeybindRegistry) Lookup(seq string, tab Tab) tea.Cmd {
	n := normalizeSeq(seq)
	if !r.appliesTo(n, tab) {
		return nil
	}
	return r.bindings[n]
}

// HasPrefix reports whether any binding continues seq with more keys.
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for k := range r.bindings {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// LeaderHints returns next-key hints below currentSeq ("" means "SPC") for tab.
// Keys that open a deeper level are labelled "key…".
func (r *KeybindRegistry) LeaderHints(currentSeq string, tab Tab) map[string]string {
	out := make(map[string]string)
	prefix := "SPC "
	if currentSeq != "" {
		prefix = normalizeSeq(currentSeq) + " "
	}
	for seq, cmd := range r.bindings {
		if cmd == nil || !strings.HasPrefix(seq, prefix) || !r.appliesTo(seq, tab) {
			continue
		}
		parts := strings.Fields(strings.TrimPrefix(seq, prefix))
		if len(parts) == 0 {
			continue
		}
		next := parts[0]
		if len(parts) > 1 {
			out[next] = next + "…"
			continue
		}
		out[next] = r.describe(seq)
	}
	return out
}

// GlobalHints returns non-leader bindings active on tab.
func (r *KeybindRegistry) GlobalHints(tab Tab) map[string]string {
	out := make(map[string]string)
	for seq, cmd := range r.bindings {
		if cmd == nil || strings.HasPrefix(seq, "SPC") || !r.appliesTo(seq, tab) {
			continue
		}
		out[seq] = r.describe(seq)
	}
	return out
}

func (r *KeybindRegistry) describe(seq string) string {
	if d, ok := r.descriptions[seq]; ok && d != "" {
		return d
	}
	return seq
}

func (r *KeybindRegistry) appliesTo(seq string, tab Tab) bool {
	tabs, ok := r.tabFilter[seq]
	if !ok || len(tabs) == 0 {
		return true
	}
	for _, t := range tabs {
		if t == tab {
			return true
		}
	}
	return false
}

// normalizeSeq converts tea key strings to the canonical format: "space" -> "SPC".
func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	if seq == " " {
		return "SPC"
	}
	for i, p := range parts {
		if p == "space" {
			parts[i] = "SPC"
		}
	}
	return strings.Join(parts, " ")
}

// KeyHandler manages leader key state and dispatches to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderKey     string   // tea.KeyMsg.String() format; Bubble Tea reports space as " "
	LeaderSeq     string   // "SPC"
	LeaderWaiting bool     // true after the leader until a sequence completes
	Buffer        []string // accumulated sequence in leader mode
}

// NewKeyHandler creates a handler with SPC as leader.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{
		Registry:  reg,
		LeaderKey: " ",
		LeaderSeq: "SPC",
	}
}

// Handle processes a KeyMsg on tab. If consumed is true the key must not be
// passed to views; cmd is the bound command, if any.
func (h *KeyHandler) Handle(msg tea.KeyMsg, tab Tab) (consumed bool, cmd tea.Cmd) {
	s := msg.String()

	if s == "esc" {
		if h.LeaderWaiting {
			h.reset()
			return true, nil
		}
		return false, nil
	}

	if s == h.LeaderKey && !h.LeaderWaiting {
		h.LeaderWaiting = true
		h.Buffer = []string{h.LeaderSeq}
		return true, nil
	}

	if h.LeaderWaiting {
		h.Buffer = append(h.Buffer, keyToSeqPart(s))
		seq := strings.Join(h.Buffer, " ")
		if c := h.Registry.Lookup(seq, tab); c != nil {
			h.reset()
			return true, c
		}
		// Stay in leader mode while a longer binding exists.
		if h.Registry.HasPrefix(seq) {
			return true, nil
		}
		h.reset()
		return true, nil
	}

	if c := h.Registry.Lookup(keyToSeqPart(s), tab); c != nil {
		return true, c
	}
	return false, nil
}

func (h *KeyHandler) reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// CurrentSeq returns the pending leader sequence, or "".
func (h *KeyHandler) CurrentSeq() string {
	return strings.Join(h.Buffer, " ")
}

// keyToSeqPart converts a tea key string to a sequence part.
func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return "SPC"
	}
	return s
}

// sortedBindings turns hints into key.Bindings ordered by key.
func sortedBindings(hints map[string]string) []key.Binding {
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	bindings := make([]key.Binding, 0, len(keys))
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
	}
	return bindings
}
