package ui

import (
	"strings"
	"time"

	"uiforge/internal/logging"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// inputSection is one demo card.
type inputSection struct {
	title       string
	description string
	fields      []*InputField
}

// InputDemoView lays out InputField variants, sizes, features and validation
// states. Tab and shift+tab move focus between editable fields, esc leaves them.
type InputDemoView struct {
	sections []inputSection
	fields   []*InputField
	byID     map[string]*InputField
	focus    *FocusRing
	delay    time.Duration
	logger   *zap.Logger
}

var _ Page = (*InputDemoView)(nil)

// NewInputDemoView builds the page. A zero delay uses DefaultLoadingDelay.
func NewInputDemoView(delay time.Duration, logger *zap.Logger) *InputDemoView {
	if delay <= 0 {
		delay = DefaultLoadingDelay
	}
	d := &InputDemoView{
		byID:   make(map[string]*InputField),
		delay:  delay,
		logger: logging.OrNop(logger),
	}

	d.addSection("Input Field Variants", "Explore different visual styles for input fields",
		InputConfig{ID: "filled", Label: "Filled Input", Placeholder: "Enter text...", Variant: VariantFilled, HelperText: "This is a filled input variant"},
		InputConfig{ID: "outlined", Label: "Outlined Input", Placeholder: "Enter text...", Variant: VariantOutlined, HelperText: "This is an outlined input variant"},
		InputConfig{ID: "ghost", Label: "Ghost Input", Placeholder: "Enter text...", Variant: VariantGhost, HelperText: "This is a ghost input variant"},
	)
	d.addSection("Input Field Sizes", "Different sizes to fit various UI contexts",
		InputConfig{ID: "size-sm", Label: "Small Size", Placeholder: "Small input", Size: SizeSm, HelperText: "Small size input"},
		InputConfig{ID: "size-md", Label: "Medium Size", Placeholder: "Medium input", Size: SizeMd, HelperText: "Medium size input (default)"},
		InputConfig{ID: "size-lg", Label: "Large Size", Placeholder: "Large input", Size: SizeLg, HelperText: "Large size input"},
	)
	d.addSection("Input Field Features", "Special features like password toggle, clear button, and loading states",
		InputConfig{ID: "password", Label: "Password Input", Placeholder: "Enter password", Password: true, ShowPasswordToggle: true, HelperText: "Press ctrl+r to toggle visibility"},
		InputConfig{ID: "clearable", Label: "Clearable Input", Placeholder: "Type to see clear button", Value: "Clear me!", Clearable: true, HelperText: "Press ctrl+x to clear", OnClear: func() { d.logger.Debug("input cleared", zap.String("field", "clearable")) }},
		InputConfig{ID: "loading", Label: "Loading State", Placeholder: "Loading...", HelperText: "Input is disabled during loading"},
		InputConfig{ID: "disabled", Label: "Disabled Input", Placeholder: "This is disabled", Disabled: true, HelperText: "This input is disabled"},
	)
	d.addSection("Validation States", "Error and success states with appropriate messaging",
		InputConfig{ID: "error", Label: "Error State", Placeholder: "This has an error", Value: "Invalid input", Invalid: true, ErrorMessage: "This field contains an error"},
		InputConfig{ID: "success", Label: "Success State", Placeholder: "This is valid", Value: "Valid input", HelperText: "This field is valid"},
	)

	d.focus = NewFocusRing(len(d.fields))
	d.focus.Skip = func(i int) bool { return !d.fields[i].Focusable() }
	return d
}

func (d *InputDemoView) addSection(title, description string, cfgs ...InputConfig) {
	s := inputSection{title: title, description: description}
	for _, cfg := range cfgs {
		f := NewInputField(cfg)
		s.fields = append(s.fields, f)
		d.fields = append(d.fields, f)
		d.byID[cfg.ID] = f
	}
	d.sections = append(d.sections, s)
}

// Field returns the field with id, or nil.
func (d *InputDemoView) Field(id string) *InputField { return d.byID[id] }

// Focused returns the field being edited, or nil.
func (d *InputDemoView) Focused() *InputField {
	if !d.focus.Focused() {
		return nil
	}
	return d.fields[d.focus.Current]
}

// Capturing implements Page: an edited field takes every key.
func (d *InputDemoView) Capturing() bool { return d.Focused() != nil }

// Init implements View.
func (d *InputDemoView) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, f := range d.fields {
		cmds = append(cmds, f.Init())
	}
	return tea.Batch(cmds...)
}

func (d *InputDemoView) moveFocus(i int) tea.Cmd {
	for _, f := range d.fields {
		f.Blur()
	}
	if i < 0 {
		return nil
	}
	return d.fields[i].Focus()
}

// Update implements View.
func (d *InputDemoView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case SimulateLoadingMsg:
		return d, d.simulateLoading()
	case inputLoadingDoneMsg:
		d.Field("loading").SetLoading(false)
		d.logger.Info("input loading finished")
		return d, nil
	case spinner.TickMsg:
		var cmds []tea.Cmd
		for _, f := range d.fields {
			_, cmd := f.Update(msg)
			cmds = append(cmds, cmd)
		}
		return d, tea.Batch(cmds...)
	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			return d, d.moveFocus(d.focus.Next())
		case "shift+tab":
			return d, d.moveFocus(d.focus.Prev())
		case "esc":
			d.focus.Clear()
			return d, d.moveFocus(-1)
		}
		if f := d.Focused(); f != nil {
			_, cmd := f.Update(msg)
			return d, cmd
		}
		return d, nil
	}

	// Cursor blink and other field-internal messages.
	var cmds []tea.Cmd
	for _, f := range d.fields {
		_, cmd := f.Update(msg)
		cmds = append(cmds, cmd)
	}
	return d, tea.Batch(cmds...)
}

func (d *InputDemoView) simulateLoading() tea.Cmd {
	f := d.Field("loading")
	if f.Loading {
		return nil
	}
	if d.Focused() == f {
		d.focus.Clear()
	}
	d.logger.Info("input loading started", zap.Duration("delay", d.delay))
	return tea.Batch(
		f.SetLoading(true),
		tea.Tick(d.delay, func(time.Time) tea.Msg { return inputLoadingDoneMsg{} }),
	)
}

// View implements View.
func (d *InputDemoView) View() string {
	var b strings.Builder
	for _, s := range d.sections {
		cells := make([]string, 0, len(s.fields))
		for _, f := range s.fields {
			cell := f.View()
			if f.ID == "loading" {
				cell += "\n" + d.loadingButton(f)
			}
			cells = append(cells, cell)
		}
		body := Styles.Title.Render(s.title) + "\n" +
			Styles.Muted.Render(s.description) + "\n\n" +
			joinCells(cells)
		b.WriteString(Styles.Card.Render(body) + "\n")
	}
	return b.String()
}

func (d *InputDemoView) loadingButton(f *InputField) string {
	if f.Loading {
		return Styles.Hint.Render("[SPC l] ") + "Loading..."
	}
	return Styles.Hint.Render("[SPC l] ") + "Simulate Loading"
}

// joinCells lays fields out side by side, two to a line when there are four.
func joinCells(cells []string) string {
	per := len(cells)
	if per > 3 {
		per = 2
	}
	var rows []string
	for i := 0; i < len(cells); i += per {
		end := min(i+per, len(cells))
		row := make([]string, 0, 2*(end-i))
		for j, c := range cells[i:end] {
			if j > 0 {
				row = append(row, "  ")
			}
			row = append(row, c)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n\n")
}
