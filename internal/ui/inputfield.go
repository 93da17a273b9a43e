package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Variant is the visual style of an InputField. The zero value is outlined.
type Variant int

const (
	VariantOutlined Variant = iota
	VariantFilled
	VariantGhost
)

func (v Variant) String() string {
	switch v {
	case VariantFilled:
		return "filled"
	case VariantGhost:
		return "ghost"
	default:
		return "outlined"
	}
}

// Size scales an InputField. The zero value is medium.
type Size int

const (
	SizeMd Size = iota
	SizeSm
	SizeLg
)

func (s Size) String() string {
	switch s {
	case SizeSm:
		return "sm"
	case SizeLg:
		return "lg"
	default:
		return "md"
	}
}

// FieldState drives label and border color.
type FieldState int

const (
	FieldDefault FieldState = iota
	FieldInvalid
)

// InputKeys are the field-level actions available while a field is focused.
var InputKeys = struct {
	Clear, Reveal key.Binding
}{
	Clear:  key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear field")),
	Reveal: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "show/hide password")),
}

// InputConfig configures an InputField.
type InputConfig struct {
	ID                 string
	Label              string
	Placeholder        string
	Value              string
	HelperText         string
	ErrorMessage       string
	Variant            Variant
	Size               Size
	Disabled           bool
	Invalid            bool
	Loading            bool
	Clearable          bool
	Password           bool
	ShowPasswordToggle bool
	// OnClear runs after the clear action has emptied the field.
	OnClear func()
}

// InputField is a labelled text input with helper/error text and optional
// clear, password-reveal and loading affordances.
type InputField struct {
	InputConfig

	input        textinput.Model
	spinner      spinner.Model
	showPassword bool
}

var _ View = (*InputField)(nil)

// NewInputField builds a field from cfg.
func NewInputField(cfg InputConfig) *InputField {
	ti := textinput.New()
	ti.Placeholder = cfg.Placeholder
	ti.SetValue(cfg.Value)
	ti.Prompt = ""
	ti.PlaceholderStyle = Styles.Muted

	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = Styles.LoadingSpinner

	f := &InputField{InputConfig: cfg, input: ti, spinner: s}
	f.syncEcho()
	return f
}

// Value returns the current text.
func (f *InputField) Value() string { return f.input.Value() }

// SetValue replaces the text.
func (f *InputField) SetValue(s string) { f.input.SetValue(s) }

// State is invalid when Invalid is set.
func (f *InputField) State() FieldState {
	if f.Invalid {
		return FieldInvalid
	}
	return FieldDefault
}

// HasValue reports whether the field holds text.
func (f *InputField) HasValue() bool { return f.input.Value() != "" }

// ReadOnly reports whether edits are blocked (disabled or loading).
func (f *InputField) ReadOnly() bool { return f.Disabled || f.Loading }

// Focusable reports whether the field can take focus.
func (f *InputField) Focusable() bool { return !f.ReadOnly() }

// ShowClearButton reports whether the clear affordance is shown.
func (f *InputField) ShowClearButton() bool {
	return f.Clearable && f.HasValue() && !f.Disabled && !f.Loading
}

// ShowPasswordButton reports whether the reveal toggle applies to this field.
func (f *InputField) ShowPasswordButton() bool {
	return f.ShowPasswordToggle && f.Password && !f.Disabled
}

// passwordButtonVisible is the reveal toggle as rendered: it yields to the
// spinner and the clear button.
func (f *InputField) passwordButtonVisible() bool {
	return f.ShowPasswordButton() && !f.Loading && !f.ShowClearButton()
}

// PasswordVisible reports whether a password field shows its text.
func (f *InputField) PasswordVisible() bool { return f.showPassword }

// Message returns the line under the field; an error message wins over helper text.
func (f *InputField) Message() (text string, isError bool) {
	if f.ErrorMessage != "" {
		return f.ErrorMessage, true
	}
	return f.HelperText, false
}

// DescribedBy names the element describing the field: "<id>-error",
// "<id>-helper" or "".
func (f *InputField) DescribedBy() string {
	switch {
	case f.ErrorMessage != "":
		return f.ID + "-error"
	case f.HelperText != "":
		return f.ID + "-helper"
	}
	return ""
}

// Clear empties the field and runs OnClear. It does nothing unless the clear
// button is showing.
func (f *InputField) Clear() bool {
	if !f.ShowClearButton() {
		return false
	}
	f.input.SetValue("")
	if f.OnClear != nil {
		f.OnClear()
	}
	return true
}

// TogglePasswordVisibility flips between masked and plain text.
func (f *InputField) TogglePasswordVisibility() bool {
	if !f.passwordButtonVisible() {
		return false
	}
	f.showPassword = !f.showPassword
	f.syncEcho()
	return true
}

func (f *InputField) syncEcho() {
	if f.Password && !f.showPassword {
		f.input.EchoMode = textinput.EchoPassword
		f.input.EchoCharacter = '•'
		return
	}
	f.input.EchoMode = textinput.EchoNormal
}

// SetLoading toggles the loading state. Loading blurs the field.
func (f *InputField) SetLoading(loading bool) tea.Cmd {
	f.Loading = loading
	if loading {
		f.input.Blur()
		return f.spinner.Tick
	}
	return nil
}

// Focus starts editing unless the field is read-only.
func (f *InputField) Focus() tea.Cmd {
	if f.ReadOnly() {
		return nil
	}
	return f.input.Focus()
}

// Blur stops editing.
func (f *InputField) Blur() { f.input.Blur() }

// Focused reports whether the field is being edited.
func (f *InputField) Focused() bool { return f.input.Focused() }

// Init implements View.
func (f *InputField) Init() tea.Cmd {
	if f.Loading {
		return f.spinner.Tick
	}
	return nil
}

// Update implements View.
func (f *InputField) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !f.Loading {
			return f, nil
		}
		var cmd tea.Cmd
		f.spinner, cmd = f.spinner.Update(msg)
		return f, cmd
	case tea.KeyMsg:
		if !f.Focused() || f.ReadOnly() {
			return f, nil
		}
		switch {
		case key.Matches(msg, InputKeys.Clear):
			f.Clear()
			return f, nil
		case key.Matches(msg, InputKeys.Reveal):
			f.TogglePasswordVisibility()
			return f, nil
		}
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

// boxStyle resolves variant, size, state and focus into the frame style.
func (f *InputField) boxStyle() lipgloss.Style {
	t := Styles.Theme
	c := color
	border := c(t.Muted)
	switch {
	case f.State() == FieldInvalid:
		border = c(t.Danger)
	case f.Focused():
		border = c(t.Accent)
	}

	s := lipgloss.NewStyle().BorderForeground(border)
	switch f.Variant {
	case VariantFilled:
		s = s.Border(lipgloss.NormalBorder()).Background(c(t.Surface))
	case VariantGhost:
		if f.Focused() || f.State() == FieldInvalid {
			s = s.Border(lipgloss.NormalBorder())
		} else {
			s = s.Border(lipgloss.HiddenBorder())
		}
	default:
		s = s.Border(lipgloss.RoundedBorder())
	}

	w, padY, padX := sizeMetrics(f.Size)
	s = s.Width(w).Padding(padY, padX)
	if f.Disabled {
		s = s.Faint(true)
	}
	return s
}

// sizeMetrics returns content width and padding for a size.
func sizeMetrics(s Size) (width, padY, padX int) {
	switch s {
	case SizeSm:
		return 22, 0, 1
	case SizeLg:
		return 36, 1, 2
	default:
		return 28, 0, 1
	}
}

func (f *InputField) rightIcon() string {
	switch {
	case f.Loading:
		return f.spinner.View()
	case f.ShowClearButton():
		return Styles.Muted.Render("✕")
	case f.passwordButtonVisible():
		if f.showPassword {
			return Styles.Muted.Render("hide")
		}
		return Styles.Muted.Render("show")
	}
	return ""
}

// View implements View.
func (f *InputField) View() string {
	var b strings.Builder
	if f.Label != "" {
		label := Styles.Label
		if f.State() == FieldInvalid {
			label = Styles.LabelInvalid
		}
		b.WriteString(label.Render(f.Label) + "\n")
	}

	w, _, padX := sizeMetrics(f.Size)
	icon := f.rightIcon()
	inner := w - 2*padX
	if icon != "" {
		inner -= lipgloss.Width(icon) + 1
	}
	f.input.Width = max(inner-1, 1)
	content := f.input.View()
	if icon != "" {
		gap := max(inner-lipgloss.Width(content), 0)
		content += strings.Repeat(" ", gap+1) + icon
	}
	b.WriteString(f.boxStyle().Render(content))

	if text, isErr := f.Message(); text != "" {
		style := Styles.Muted
		if isErr {
			style = Styles.Danger
		}
		b.WriteString("\n" + style.Render(text))
	}
	return b.String()
}

// String describes the field for logs.
func (f *InputField) String() string {
	return fmt.Sprintf("InputField(%s %s/%s)", f.ID, f.Variant, f.Size)
}
