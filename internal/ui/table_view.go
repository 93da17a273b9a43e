package ui

import (
	"context"
	"fmt"
	"strings"

	"uiforge/internal/datatable"
	"uiforge/internal/logging"
	"uiforge/internal/telemetry"
	"uiforge/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const (
	maxAutoColumnWidth = 32
	columnGap          = "  "
)

// TableKeys are the keys a focused TableView responds to.
var TableKeys = struct {
	Up, Down, Left, Right, Sort, Toggle, All key.Binding
}{
	Up:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "row up")),
	Down:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "row down")),
	Left:   key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "column left")),
	Right:  key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "column right")),
	Sort:   key.NewBinding(key.WithKeys("s", "enter"), key.WithHelp("s/enter", "sort column")),
	Toggle: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "select row")),
	All:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all / clear")),
}

// TableView renders a datatable.Table and maps keys to its operations.
type TableView struct {
	Table     *datatable.Table
	Title     string
	Logger    *zap.Logger
	Telemetry *telemetry.Recorder

	cursor  int // row position in the view
	column  int // header position
	focused bool
	spinner spinner.Model
}

var _ View = (*TableView)(nil)

// NewTableView wraps t.
func NewTableView(title string, t *datatable.Table) *TableView {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Styles.LoadingSpinner
	return &TableView{Table: t, Title: title, spinner: s}
}

// Init implements View.
func (v *TableView) Init() tea.Cmd {
	if v.Table.Loading() {
		return v.spinner.Tick
	}
	return nil
}

// Focus gives the view keyboard input.
func (v *TableView) Focus() { v.focused = true }

// Blur removes keyboard input.
func (v *TableView) Blur() { v.focused = false }

// Focused reports whether the view receives keys.
func (v *TableView) Focused() bool { return v.focused }

// Cursor returns the row and header positions.
func (v *TableView) Cursor() (row, column int) { return v.cursor, v.column }

// SetLoading updates the table's loading flag and returns the spinner tick
// when loading starts.
func (v *TableView) SetLoading(loading bool) tea.Cmd {
	v.Table.SetLoading(loading)
	if loading {
		return v.spinner.Tick
	}
	return nil
}

// SetRecords replaces the table records and keeps the cursor in range.
func (v *TableView) SetRecords(records []datatable.Record) {
	v.Table.SetRecords(records)
	v.clamp()
}

// Update implements View.
func (v *TableView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !v.Table.Loading() {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	case tea.KeyMsg:
		if !v.focused {
			return v, nil
		}
		v.handleKey(msg)
	}
	return v, nil
}

func (v *TableView) handleKey(msg tea.KeyMsg) {
	cols := v.Table.Columns()
	switch {
	case key.Matches(msg, TableKeys.Up):
		v.cursor--
	case key.Matches(msg, TableKeys.Down):
		v.cursor++
	case key.Matches(msg, TableKeys.Left):
		v.column--
	case key.Matches(msg, TableKeys.Right):
		v.column++
	case key.Matches(msg, TableKeys.Sort):
		if v.column >= 0 && v.column < len(cols) {
			v.sort(cols[v.column])
		}
	case key.Matches(msg, TableKeys.Toggle):
		v.toggleCursorRow()
	case key.Matches(msg, TableKeys.All):
		v.toggleAll()
	}
	v.clamp()
}

func (v *TableView) sort(col datatable.Column) {
	if !v.Table.ToggleSort(col.Key) {
		return
	}
	state := v.Table.Sort()
	logging.OrNop(v.Logger).Debug("table sorted",
		zap.String("table", v.Title),
		zap.String("column", col.Key),
		zap.Stringer("direction", state.Direction),
	)
	v.Telemetry.Interaction(context.Background(), "datatable.sort",
		attribute.String("table", v.Title),
		attribute.String("column", col.Key),
		attribute.String("direction", state.Direction.String()),
	)
}

func (v *TableView) toggleCursorRow() {
	view := v.Table.View()
	if v.Table.Mode() != datatable.ModeRows || v.cursor >= len(view) {
		return
	}
	k := v.Table.Key(view[v.cursor])
	if !v.Table.ToggleRow(k) {
		return
	}
	v.recordSelection("toggle")
}

func (v *TableView) toggleAll() {
	if v.Table.Loading() {
		return
	}
	all := v.Table.HeaderState() != datatable.CheckAll
	if !v.Table.SetAllSelected(all) {
		return
	}
	action := "clear"
	if all {
		action = "select_all"
	}
	v.recordSelection(action)
}

func (v *TableView) recordSelection(action string) {
	n := len(v.Table.Selected())
	logging.OrNop(v.Logger).Debug("table selection changed",
		zap.String("table", v.Title),
		zap.String("action", action),
		zap.Int("selected", n),
	)
	v.Telemetry.Interaction(context.Background(), "datatable.select",
		attribute.String("table", v.Title),
		attribute.String("action", action),
		attribute.Int("selected", n),
	)
}

func (v *TableView) clamp() {
	rows := len(v.Table.View())
	v.cursor = min(v.cursor, rows-1)
	v.cursor = max(v.cursor, 0)
	v.column = min(v.column, len(v.Table.Columns())-1)
	v.column = max(v.column, 0)
}

// View implements View.
func (v *TableView) View() string {
	t := v.Table
	cols := t.Columns()
	view := t.View()

	// Cell text is computed once and reused for width calculation.
	var cells [][]string
	if t.Mode() == datatable.ModeRows {
		cells = make([][]string, len(view))
		for i, row := range view {
			cells[i] = make([]string, len(cols))
			for j, col := range cols {
				cells[i][j] = t.CellText(col, row, i)
			}
		}
	}
	widths := columnWidths(cols, cells)

	var b strings.Builder
	if v.Title != "" {
		b.WriteString(Styles.Title.Render(v.Title) + "\n")
	}
	header := v.renderHeader(cols, widths)
	hw := textutil.Width(header)
	b.WriteString(header + "\n")
	b.WriteString(Styles.Muted.Render(strings.Repeat("─", hw)) + "\n")

	switch t.Mode() {
	case datatable.ModeLoading:
		b.WriteString(centered(v.spinner.View()+" "+Styles.Muted.Render("Loading..."), hw))
	case datatable.ModeEmpty:
		b.WriteString(centered(Styles.EmptyTitle.Render("No Data"), hw) + "\n")
		b.WriteString(centered(Styles.Muted.Render(t.EmptyMessage()), hw))
	default:
		for i, row := range view {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(v.renderRow(i, row, cols, cells[i], widths))
		}
	}
	return Styles.frameFor(t.Class()).Render(b.String())
}

func (v *TableView) renderHeader(cols datatable.Columns, widths []int) string {
	parts := make([]string, 0, len(cols)+1)
	parts = append(parts, " ") // cursor gutter
	if v.Table.Selectable() {
		parts = append(parts, Styles.TableHeader.Render(checkbox(v.Table.HeaderState())))
	}
	sort := v.Table.Sort()
	for i, col := range cols {
		title := textutil.Fit(col.Title, widths[i]-sortIndicatorWidth(col), textutil.AlignLeft)
		style := Styles.TableHeader
		if v.focused && i == v.column {
			style = Styles.HeaderCursor
		}
		cell := style.Render(title)
		if col.Sortable {
			cell += sortIndicator(col.Key, sort)
		}
		parts = append(parts, cell)
	}
	return strings.Join(parts, columnGap)
}

func (v *TableView) renderRow(i int, row datatable.Row, cols datatable.Columns, cells []string, widths []int) string {
	selected := v.Table.Selectable() && v.Table.IsSelected(v.Table.Key(row))
	isCursor := v.focused && i == v.cursor

	gutter := " "
	if isCursor {
		gutter = Styles.RowCursor.Render("›")
	}
	parts := make([]string, 0, len(cells)+2)
	parts = append(parts, gutter)
	if v.Table.Selectable() {
		box := "[ ]"
		if selected {
			box = "[x]"
		}
		parts = append(parts, box)
	}
	for j, c := range cells {
		parts = append(parts, textutil.Fit(c, widths[j], cellAlign(cols[j], row.Record)))
	}
	line := strings.Join(parts, columnGap)
	switch {
	case isCursor:
		return Styles.RowCursor.Render(line)
	case selected:
		return Styles.RowSelected.Render(line)
	}
	return line
}

// centered pads s to width without truncating it.
func centered(s string, width int) string {
	if textutil.Width(s) >= width {
		return s
	}
	return textutil.Fit(s, width, textutil.AlignCenter)
}

// cellAlign right-aligns plain numbers so digits line up.
func cellAlign(col datatable.Column, rec datatable.Record) textutil.Align {
	if col.Render == nil && datatable.IsNumber(col.Value(rec)) {
		return textutil.AlignRight
	}
	return textutil.AlignLeft
}

func checkbox(state datatable.CheckState) string {
	switch state {
	case datatable.CheckAll:
		return "[x]"
	case datatable.CheckPartial:
		return "[-]"
	default:
		return "[ ]"
	}
}

// sortIndicator renders "↑↓" with the active direction highlighted.
func sortIndicator(colKey string, s datatable.SortState) string {
	up, down := Styles.SortInactive, Styles.SortInactive
	if s.Column == colKey {
		switch s.Direction {
		case datatable.Ascending:
			up = Styles.SortActive
		case datatable.Descending:
			down = Styles.SortActive
		}
	}
	return " " + up.Render("↑") + down.Render("↓")
}

func sortIndicatorWidth(col datatable.Column) int {
	if col.Sortable {
		return 3
	}
	return 0
}

// columnWidths uses explicit widths, otherwise the widest of title and cells.
func columnWidths(cols datatable.Columns, cells [][]string) []int {
	widths := make([]int, len(cols))
	for j, col := range cols {
		if col.Width > 0 {
			widths[j] = max(col.Width, sortIndicatorWidth(col)+1)
			continue
		}
		w := textutil.Width(col.Title) + sortIndicatorWidth(col)
		for _, row := range cells {
			w = max(w, textutil.Width(row[j]))
		}
		widths[j] = min(w, maxAutoColumnWidth)
	}
	return widths
}

// SummaryLine describes the selection, e.g. "2 row(s) selected".
func SummaryLine(selected int) string {
	if selected == 0 {
		return ""
	}
	return fmt.Sprintf("%d row(s) selected", selected)
}
