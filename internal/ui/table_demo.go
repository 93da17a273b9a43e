package ui

import (
	"strings"
	"time"

	"uiforge/internal/datatable"
	"uiforge/internal/jsonutil"
	"uiforge/internal/logging"
	"uiforge/internal/telemetry"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// DefaultLoadingDelay is how long a simulated fetch takes.
const DefaultLoadingDelay = 2 * time.Second

// SelectableEmptyMessage is the selection table's empty-state text.
const SelectableEmptyMessage = "No users found. Try restoring the data."

// TableDemoOptions configures the data table demo page.
type TableDemoOptions struct {
	Records      []datatable.Record
	Columns      datatable.Columns
	EmptyMessage string // basic table; "" uses the table default
	Locale       language.Tag
	Policy       datatable.SelectionPolicy
	LoadingDelay time.Duration
	Logger       *zap.Logger
	Telemetry    *telemetry.Recorder
}

// TableDemoView shows a basic sortable table and a selectable one over the
// same records, with commands to simulate loading, clear and restore data.
type TableDemoView struct {
	Basic      *TableView
	Selectable *TableView

	source   []datatable.Record
	selected []datatable.Record
	loading  bool
	delay    time.Duration
	focus    *FocusRing
	logger   *zap.Logger
}

var _ Page = (*TableDemoView)(nil)

// NewTableDemoView builds the page with the basic table focused.
func NewTableDemoView(opts TableDemoOptions) *TableDemoView {
	d := &TableDemoView{
		source: opts.Records,
		delay:  opts.LoadingDelay,
		focus:  NewFocusRing(2),
		logger: logging.OrNop(opts.Logger),
	}
	if d.delay <= 0 {
		d.delay = DefaultLoadingDelay
	}

	basic := datatable.New(datatable.Config{
		Records:      opts.Records,
		Columns:      opts.Columns,
		EmptyMessage: opts.EmptyMessage,
		Locale:       opts.Locale,
		Policy:       opts.Policy,
	})
	selectable := datatable.New(datatable.Config{
		Records:      opts.Records,
		Columns:      opts.Columns,
		Selectable:   true,
		EmptyMessage: SelectableEmptyMessage,
		Class:        "accent",
		OnSelect:     func(rows []datatable.Record) { d.selected = rows },
		Locale:       opts.Locale,
		Policy:       opts.Policy,
	})

	d.Basic = NewTableView("Basic Data Table", basic)
	d.Selectable = NewTableView("Data Table with Selection", selectable)
	for _, tv := range d.tables() {
		tv.Logger = opts.Logger
		tv.Telemetry = opts.Telemetry
	}
	d.setFocus(d.focus.Next())
	return d
}

func (d *TableDemoView) tables() []*TableView {
	return []*TableView{d.Basic, d.Selectable}
}

func (d *TableDemoView) setFocus(i int) {
	for j, tv := range d.tables() {
		if j == i {
			tv.Focus()
		} else {
			tv.Blur()
		}
	}
}

// Loading reports whether a simulated fetch is in flight.
func (d *TableDemoView) Loading() bool { return d.loading }

// SelectedRows returns the last payload delivered by the selection table.
func (d *TableDemoView) SelectedRows() []datatable.Record { return d.selected }

// Capturing implements Page; table keys never collide with app bindings.
func (d *TableDemoView) Capturing() bool { return false }

// Init implements View.
func (d *TableDemoView) Init() tea.Cmd {
	return tea.Batch(d.Basic.Init(), d.Selectable.Init())
}

// Update implements View.
func (d *TableDemoView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case SimulateLoadingMsg:
		return d, d.simulateLoading()
	case tableDataLoadedMsg:
		d.loading = false
		d.setRecords(d.source)
		d.Basic.SetLoading(false)
		d.Selectable.SetLoading(false)
		d.logger.Info("demo data loaded", zap.Int("records", len(d.source)))
		return d, nil
	case ClearDataMsg:
		d.setRecords(nil)
		d.logger.Info("demo data cleared")
		return d, nil
	case RestoreDataMsg:
		d.setRecords(d.source)
		d.logger.Info("demo data restored", zap.Int("records", len(d.source)))
		return d, nil
	case spinner.TickMsg:
		var cmds []tea.Cmd
		for _, tv := range d.tables() {
			_, cmd := tv.Update(msg)
			cmds = append(cmds, cmd)
		}
		return d, tea.Batch(cmds...)
	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			d.setFocus(d.focus.Next())
			return d, nil
		case "shift+tab":
			d.setFocus(d.focus.Prev())
			return d, nil
		}
		for _, tv := range d.tables() {
			if tv.Focused() {
				_, cmd := tv.Update(msg)
				return d, cmd
			}
		}
	}
	return d, nil
}

func (d *TableDemoView) simulateLoading() tea.Cmd {
	if d.loading {
		return nil
	}
	d.loading = true
	d.setRecords(nil)
	d.logger.Info("demo loading started", zap.Duration("delay", d.delay))
	return tea.Batch(
		d.Basic.SetLoading(true),
		d.Selectable.SetLoading(true),
		tea.Tick(d.delay, func(time.Time) tea.Msg { return tableDataLoadedMsg{} }),
	)
}

// setRecords swaps the data in both tables. The selected list is re-read so
// it only names users that are still present.
func (d *TableDemoView) setRecords(records []datatable.Record) {
	for _, tv := range d.tables() {
		tv.SetRecords(records)
	}
	d.selected = d.Selectable.Table.Selected()
}

// View implements View.
func (d *TableDemoView) View() string {
	var b strings.Builder

	b.WriteString(card("A simple data table with sortable columns", d.Basic.View()))

	var sel strings.Builder
	sel.WriteString(Styles.Muted.Render(SummaryLine(len(d.selected))) + "\n")
	sel.WriteString(d.commandBar() + "\n")
	sel.WriteString(d.Selectable.View())
	if len(d.selected) > 0 {
		sel.WriteString("\n" + Styles.Section.Render("Selected Users:"))
		for _, rec := range d.selected {
			sel.WriteString("\n  " + jsonutil.GetString(rec, "name") + " (" + jsonutil.GetString(rec, "email") + ")")
		}
	}
	b.WriteString(card("Enable row selection to interact with data", sel.String()))
	return b.String()
}

func (d *TableDemoView) commandBar() string {
	load := "Simulate Loading"
	if d.loading {
		load = "Loading..."
	}
	buttons := []string{
		Styles.Hint.Render("[SPC l] ") + load,
		Styles.Hint.Render("[SPC c] ") + "Clear Data",
		Styles.Hint.Render("[SPC r] ") + "Restore Data",
	}
	return strings.Join(buttons, "   ")
}

// card wraps body in the demo card frame with a muted description line.
func card(description, body string) string {
	return Styles.Card.Render(Styles.Muted.Render(description)+"\n"+body) + "\n"
}
