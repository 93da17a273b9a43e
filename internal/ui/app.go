package ui

import (
	"strings"
	"time"

	"uiforge/internal/datatable"
	"uiforge/internal/logging"
	"uiforge/internal/sample"
	"uiforge/internal/telemetry"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// AppName and AppVersion appear in the hero banner.
const (
	AppName    = "UI Forge Suite"
	AppVersion = "v1.0"
)

// Options configures the showcase. Nil Records and Columns use the sample users.
type Options struct {
	Records      []datatable.Record
	Columns      datatable.Columns
	EmptyMessage string
	Locale       language.Tag
	Policy       datatable.SelectionPolicy
	LoadingDelay time.Duration
	Logger       *zap.Logger
	Telemetry    *telemetry.Recorder
}

// AppModel is the root model: a tab bar over the input field and data table
// pages, with a SPC leader for commands.
type AppModel struct {
	Tab        Tab
	Inputs     *InputDemoView
	Tables     *TableDemoView
	KeyHandler *KeyHandler
	Overlays   OverlayStack
	Logger     *zap.Logger

	width int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model.
func NewAppModel(opts Options) *AppModel {
	records, columns := opts.Records, opts.Columns
	if records == nil && columns == nil {
		records, columns = sample.Users(), sample.UserColumns()
	} else if columns == nil {
		columns = sample.ColumnsFor(records)
	}
	logger := logging.OrNop(opts.Logger)

	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("1", switchTab(TabInputField), "Input Field")
	reg.BindWithDesc("2", switchTab(TabDataTable), "Data Table")
	reg.BindWithDesc("?", func() tea.Msg { return ToggleHelpMsg{} }, "Help")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC t", func() tea.Msg { return NextTabMsg{} }, "Next tab")
	reg.BindWithDesc("SPC l", func() tea.Msg { return SimulateLoadingMsg{} }, "Simulate loading")
	reg.BindForTabs("SPC c", func() tea.Msg { return ClearDataMsg{} }, "Clear data", TabDataTable)
	reg.BindForTabs("SPC r", func() tea.Msg { return RestoreDataMsg{} }, "Restore data", TabDataTable)

	return &AppModel{
		Tab:    TabInputField,
		Inputs: NewInputDemoView(opts.LoadingDelay, logger),
		Tables: NewTableDemoView(TableDemoOptions{
			Records:      records,
			Columns:      columns,
			EmptyMessage: opts.EmptyMessage,
			Locale:       opts.Locale,
			Policy:       opts.Policy,
			LoadingDelay: opts.LoadingDelay,
			Logger:       logger,
			Telemetry:    opts.Telemetry,
		}),
		KeyHandler: NewKeyHandler(reg),
		Logger:     logger,
	}
}

func switchTab(t Tab) tea.Cmd {
	return func() tea.Msg { return SwitchTabMsg{Tab: t} }
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// CurrentPage returns the page for the active tab.
func (m *AppModel) CurrentPage() Page {
	if m.Tab == TabDataTable {
		return m.Tables
	}
	return m.Inputs
}

// HelpVisible reports whether the key reference is open.
func (m *AppModel) HelpVisible() bool { return m.Overlays.Has(helpOverlay) }

func (m *AppModel) toggleHelp() {
	if m.HelpVisible() {
		m.Overlays.Remove(helpOverlay)
		return
	}
	m.Overlays.Push(Overlay{
		Name:    helpOverlay,
		View:    &HelpView{Keys: m.keyMap()},
		Dismiss: []string{"esc", "?", "q"},
	})
}

func (m *AppModel) setTab(t Tab) {
	if t == m.Tab {
		return
	}
	m.Logger.Debug("tab switched", zap.Stringer("from", m.Tab), zap.Stringer("to", t))
	m.Tab = t
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(a.Inputs.Init(), a.Tables.Init())
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		return a, nil
	case SwitchTabMsg:
		a.setTab(msg.Tab)
		return a, nil
	case NextTabMsg:
		a.setTab(a.Tab.Next())
		return a, nil
	case ToggleHelpMsg:
		a.toggleHelp()
		return a, nil
	case SimulateLoadingMsg:
		_, cmd := a.CurrentPage().Update(msg)
		return a, cmd
	case ClearDataMsg, RestoreDataMsg:
		_, cmd := a.Tables.Update(msg)
		return a, cmd
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if cmd, handled := a.Overlays.HandleKey(msg); handled {
			return a, cmd
		}
		page := a.CurrentPage()
		if !page.Capturing() && a.KeyHandler != nil {
			if consumed, keyCmd := a.KeyHandler.Handle(msg, a.Tab); consumed {
				return a, keyCmd
			}
		}
		_, cmd := page.Update(msg)
		return a, cmd
	}

	// Timers and spinner ticks belong to whichever page started them.
	_, c1 := a.Inputs.Update(msg)
	_, c2 := a.Tables.Update(msg)
	return a, tea.Batch(c1, c2)
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	var b strings.Builder
	b.WriteString(a.renderHero() + "\n")
	b.WriteString(a.renderTabs() + "\n\n")
	if top, ok := a.Overlays.Peek(); ok {
		b.WriteString(top.View.View())
	} else {
		b.WriteString(a.CurrentPage().View())
	}
	b.WriteString("\n" + newHelpModel().ShortHelpView(a.keyMap().ShortHelp()))
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		b.WriteString("\n" + RenderKeybindHelp(a.KeyHandler, a.Tab))
	}
	return b.String()
}

func (a *appModelAdapter) renderHero() string {
	title := Styles.Title.Render(AppName + " " + AppVersion)
	sub := Styles.Muted.Render("Input fields and data tables for the terminal")
	hero := Styles.Hero
	if a.width > 4 {
		hero = hero.Width(a.width - 4)
	}
	return hero.Render(title + "\n" + sub)
}

func (a *appModelAdapter) renderTabs() string {
	cells := make([]string, 0, len(Tabs))
	for i, t := range Tabs {
		label := string(rune('1'+i)) + " " + t.String()
		if t == a.Tab {
			cells = append(cells, Styles.TabActive.Render(label))
		} else {
			cells = append(cells, Styles.TabInactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// keyMap describes the active tab for the help views.
func (m *AppModel) keyMap() *KeyMap {
	var reg *KeybindRegistry
	if m.KeyHandler != nil {
		reg = m.KeyHandler.Registry
	}
	focus := []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous")),
	}
	if m.Tab == TabDataTable {
		k := TableKeys
		return NewKeyMap(reg, m.Tab, append(focus, k.Up, k.Down, k.Left, k.Right, k.Sort, k.Toggle, k.All)...)
	}
	page := append(focus,
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave field")),
		InputKeys.Clear, InputKeys.Reveal)
	return NewKeyMap(reg, m.Tab, page...)
}
