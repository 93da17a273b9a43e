package datatable

import (
	"uiforge/internal/jsonutil"

	"golang.org/x/text/language"
)

// DefaultEmptyMessage is shown when there are no rows and no message is configured.
const DefaultEmptyMessage = "No data available"

// SelectionPolicy decides what happens to the selection when records are replaced.
type SelectionPolicy int

const (
	// PreserveSelection keeps keys across record changes. Keys without a
	// matching record stay in the set but are ignored by Selected and HeaderState.
	PreserveSelection SelectionPolicy = iota
	// ResetSelection clears the selection whenever records are replaced.
	ResetSelection
)

// ParseSelectionPolicy maps "preserve" and "reset" to a policy.
func ParseSelectionPolicy(s string) (SelectionPolicy, bool) {
	switch s {
	case "", "preserve":
		return PreserveSelection, true
	case "reset":
		return ResetSelection, true
	}
	return PreserveSelection, false
}

// Mode is what a table renders, in priority order.
type Mode int

const (
	ModeLoading Mode = iota
	ModeEmpty
	ModeRows
)

func (m Mode) String() string {
	switch m {
	case ModeLoading:
		return "loading"
	case ModeEmpty:
		return "empty"
	default:
		return "rows"
	}
}

// Config is the embedding contract of a Table.
type Config struct {
	Records      []Record
	Columns      Columns
	Loading      bool
	Selectable   bool
	RowKey       RowKey
	EmptyMessage string
	// Class is an opaque styling hook carried for the renderer.
	Class string
	// OnSelect receives the selected records after every toggle, select-all
	// and clear. It is never called for sort, loading or record changes.
	OnSelect func(selected []Record)
	Locale   language.Tag
	Policy   SelectionPolicy
}

// Table owns sort and selection state for one set of records.
type Table struct {
	records      []Record
	columns      Columns
	loading      bool
	selectable   bool
	rowKey       RowKey
	emptyMessage string
	class        string
	onSelect     func([]Record)
	policy       SelectionPolicy
	cmp          *Comparator

	sort      SortState
	selection Selection
	view      []Row
}

// New builds a table from cfg with no sort and an empty selection.
func New(cfg Config) *Table {
	t := &Table{
		records:      cfg.Records,
		columns:      cfg.Columns,
		loading:      cfg.Loading,
		selectable:   cfg.Selectable,
		rowKey:       cfg.RowKey,
		emptyMessage: cfg.EmptyMessage,
		class:        cfg.Class,
		onSelect:     cfg.OnSelect,
		policy:       cfg.Policy,
		cmp:          NewComparator(cfg.Locale),
	}
	t.refresh()
	return t
}

// refresh recomputes the derived view. Called once per state change.
func (t *Table) refresh() {
	t.view = DeriveView(t.records, t.sort, t.columns, t.cmp)
}

// Records returns the input records in input order.
func (t *Table) Records() []Record { return t.records }

// SetRecords replaces the input records. Under ResetSelection the selection
// is cleared without notifying OnSelect.
func (t *Table) SetRecords(records []Record) {
	t.records = records
	if t.policy == ResetSelection {
		t.selection.Clear()
	}
	t.refresh()
}

// Columns returns the column set.
func (t *Table) Columns() Columns { return t.columns }

// SetColumns replaces the column set.
func (t *Table) SetColumns(cs Columns) {
	t.columns = cs
	t.refresh()
}

// Loading reports the caller-owned loading flag.
func (t *Table) Loading() bool { return t.loading }

// SetLoading updates the loading flag.
func (t *Table) SetLoading(loading bool) { t.loading = loading }

// Selectable reports whether selection operations are enabled.
func (t *Table) Selectable() bool { return t.selectable }

// Class returns the styling hook passed in Config.
func (t *Table) Class() string { return t.class }

// EmptyMessage returns the configured empty-state message or the default.
func (t *Table) EmptyMessage() string {
	if t.emptyMessage == "" {
		return DefaultEmptyMessage
	}
	return t.emptyMessage
}

// SetOnSelect replaces the selection callback.
func (t *Table) SetOnSelect(fn func([]Record)) { t.onSelect = fn }

// Sort returns the current sort state.
func (t *Table) Sort() SortState { return t.sort }

// ToggleSort activates the header of the column with the given key.
// It returns false, leaving state untouched, for unknown or non-sortable columns.
func (t *Table) ToggleSort(columnKey string) bool {
	col, ok := t.columns.Find(columnKey)
	if !ok || !col.Sortable {
		return false
	}
	t.sort = t.sort.Next(col)
	t.refresh()
	return true
}

// SetSort applies state directly. It returns false for an active state naming
// an unknown or non-sortable column.
func (t *Table) SetSort(state SortState) bool {
	if state.Active() {
		col, ok := t.columns.Find(state.Column)
		if !ok || !col.Sortable {
			return false
		}
	} else {
		state = SortState{}
	}
	t.sort = state
	t.refresh()
	return true
}

// View returns the derived, display-ordered rows. Callers must not modify it.
func (t *Table) View() []Row { return t.view }

// Mode decides between loading indicator, empty state and rows.
func (t *Table) Mode() Mode {
	switch {
	case t.loading:
		return ModeLoading
	case len(t.view) == 0:
		return ModeEmpty
	default:
		return ModeRows
	}
}

// CellText returns the display text of col for row. position is the row's
// index in the view and is passed to custom renderers.
func (t *Table) CellText(col Column, row Row, position int) string {
	value := col.Value(row.Record)
	if col.Render != nil {
		return col.Render(value, row.Record, position)
	}
	return jsonutil.ToString(value)
}

// Key resolves the identity of row.
func (t *Table) Key(row Row) any {
	return t.rowKey.Resolve(row.Record, row.Index)
}

// IsSelected reports whether key is in the selection.
func (t *Table) IsSelected(key any) bool {
	return t.selection.Has(key)
}

// SelectionLen returns the raw size of the selection set, stale keys included.
func (t *Table) SelectionLen() int { return t.selection.Len() }

// Selected returns the selected records in input order.
func (t *Table) Selected() []Record {
	return SelectedRecords(t.records, &t.selection, t.rowKey)
}

// HeaderState returns the select-all checkbox state.
func (t *Table) HeaderState() CheckState {
	return HeaderState(t.records, &t.selection, t.rowKey)
}

// SetRowSelected adds or removes key and notifies OnSelect. It returns false
// on a non-selectable table.
func (t *Table) SetRowSelected(key any, selected bool) bool {
	if !t.selectable {
		return false
	}
	if selected {
		t.selection.Add(key)
	} else {
		t.selection.Remove(key)
	}
	t.notify(t.Selected())
	return true
}

// ToggleRow flips the selection of key.
func (t *Table) ToggleRow(key any) bool {
	return t.SetRowSelected(key, !t.selection.Has(key))
}

// SelectAll selects every current row and notifies OnSelect with all records.
func (t *Table) SelectAll() bool {
	if !t.selectable {
		return false
	}
	keys := make([]any, len(t.records))
	for i, rec := range t.records {
		keys[i] = t.rowKey.Resolve(rec, i)
	}
	t.selection.Replace(keys)
	all := make([]Record, len(t.records))
	copy(all, t.records)
	t.notify(all)
	return true
}

// ClearSelection empties the selection and notifies OnSelect with no records.
func (t *Table) ClearSelection() bool {
	if !t.selectable {
		return false
	}
	t.selection.Clear()
	t.notify([]Record{})
	return true
}

// SetAllSelected is the header checkbox action.
func (t *Table) SetAllSelected(selected bool) bool {
	if selected {
		return t.SelectAll()
	}
	return t.ClearSelection()
}

func (t *Table) notify(selected []Record) {
	if t.onSelect != nil {
		t.onSelect(selected)
	}
}
