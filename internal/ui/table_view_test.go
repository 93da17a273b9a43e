package ui

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"uiforge/internal/datatable"
	"uiforge/internal/sample"
	"uiforge/internal/telemetry"
	"uiforge/internal/ui/textutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newUserTableView(selectable bool) *TableView {
	tv := NewTableView("Users", datatable.New(datatable.Config{
		Records:    sample.Users(),
		Columns:    sample.UserColumns(),
		Selectable: selectable,
	}))
	tv.Focus()
	return tv
}

func firstName(tv *TableView) string {
	return tv.Table.View()[0].Record["name"].(string)
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}

func TestTableView_SortKeysCycleDirection(t *testing.T) {
	tv := newUserTableView(false)

	press(tv, "s")
	assert.Equal(t, datatable.Ascending, tv.Table.Sort().Direction)
	assert.Equal(t, "Alice Johnson", firstName(tv))

	press(tv, "enter")
	assert.Equal(t, datatable.Descending, tv.Table.Sort().Direction)
	assert.Equal(t, "Eva Brown", firstName(tv))

	press(tv, "s")
	assert.False(t, tv.Table.Sort().Active())
	assert.Equal(t, "Alice Johnson", firstName(tv))
}

func TestTableView_HeaderCursorPicksColumn(t *testing.T) {
	tv := newUserTableView(false)

	press(tv, "l", "l", "s") // department
	assert.Equal(t, "department", tv.Table.Sort().Column)
	assert.Equal(t, "Carol Davis", firstName(tv), "Design sorts first")

	press(tv, "l", "l", "l", "l")
	_, col := tv.Cursor()
	assert.Equal(t, 4, col, "column cursor clamps at the last header")
}

func TestTableView_IgnoresKeysWhenBlurred(t *testing.T) {
	tv := newUserTableView(true)
	tv.Blur()

	press(tv, "s", "x", "a")
	assert.False(t, tv.Table.Sort().Active())
	assert.Equal(t, 0, tv.Table.SelectionLen())
}

func TestTableView_ToggleRowAndAll(t *testing.T) {
	var got []datatable.Record
	tv := newUserTableView(true)
	tv.Table.SetOnSelect(func(rows []datatable.Record) { got = rows })

	press(tv, "j", "x")
	require.Len(t, got, 1)
	assert.Equal(t, "Bob Smith", got[0]["name"])
	assert.Equal(t, datatable.CheckPartial, tv.Table.HeaderState())

	press(tv, "a")
	assert.Len(t, got, 5)
	assert.Equal(t, datatable.CheckAll, tv.Table.HeaderState())

	press(tv, "a")
	assert.Empty(t, got)
	assert.NotNil(t, got)
	assert.Equal(t, datatable.CheckNone, tv.Table.HeaderState())
}

func TestTableView_CursorClamps(t *testing.T) {
	tv := newUserTableView(true)

	press(tv, "k")
	row, _ := tv.Cursor()
	assert.Equal(t, 0, row)

	press(tv, "j", "j", "j", "j", "j", "j", "down")
	row, _ = tv.Cursor()
	assert.Equal(t, 4, row)

	tv.SetRecords(sample.Users()[:2])
	row, _ = tv.Cursor()
	assert.Equal(t, 1, row)
}

func TestTableView_NonSelectableIgnoresToggle(t *testing.T) {
	tv := newUserTableView(false)
	press(tv, "x", "a")
	assert.Equal(t, 0, tv.Table.SelectionLen())
	assert.NotContains(t, textutil.Strip(tv.View()), "[ ]")
}

func TestTableView_RendersModes(t *testing.T) {
	tv := newUserTableView(true)

	out := textutil.Strip(tv.View())
	assert.True(t, containsAll(out, "Users", "User", "Join Date", "[ ]", "(AJ) Alice Johnson", "● active", "Jan 15, 2023"), out)

	tv.SetLoading(true)
	out = textutil.Strip(tv.View())
	assert.Contains(t, out, "Loading...")
	assert.NotContains(t, out, "Alice")

	tv.SetLoading(false)
	tv.SetRecords(nil)
	out = textutil.Strip(tv.View())
	assert.True(t, containsAll(out, "No Data", datatable.DefaultEmptyMessage), out)
}

func TestTableView_HeaderCheckboxStates(t *testing.T) {
	tv := newUserTableView(true)
	header := func() string {
		lines := strings.Split(textutil.Strip(tv.View()), "\n")
		return lines[2] // border, title, header
	}

	assert.Contains(t, header(), "[ ]")
	press(tv, "x")
	assert.Contains(t, header(), "[-]")
	press(tv, "a")
	assert.Contains(t, header(), "[x]")
}

func TestTableView_LogsAndTracesInteractions(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	tv := newUserTableView(true)
	tv.Logger = zap.New(core)
	tv.Telemetry = telemetry.NewWithProvider(tp)

	press(tv, "s", "x")

	assert.Equal(t, 1, logs.FilterMessage("table sorted").Len())
	assert.Equal(t, 1, logs.FilterMessage("table selection changed").Len())

	var names []string
	for _, s := range rec.Ended() {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"datatable.sort", "datatable.select"}, names)
}

func TestSummaryLine(t *testing.T) {
	assert.Equal(t, "", SummaryLine(0))
	assert.Equal(t, "3 row(s) selected", SummaryLine(3))
}

func TestColumnWidths(t *testing.T) {
	cols := datatable.Columns{
		{Key: "a", Title: "A"},
		{Key: "b", Title: "B", Sortable: true},
		{Key: "c", Title: "C", Width: 7},
	}
	cells := [][]string{{"hello", "x", "y"}, {strings.Repeat("z", 50), "", ""}}
	assert.Equal(t, []int{maxAutoColumnWidth, 4, 7}, columnWidths(cols, cells))
}

func TestTableView_RightAlignsNumbers(t *testing.T) {
	tv := NewTableView("", datatable.New(datatable.Config{
		Records: []datatable.Record{
			{"id": "a", "qty": 5, "code": 7},
			{"id": "b", "qty": 12345, "code": 8},
		},
		Columns: datatable.Columns{
			{Key: "qty", Title: "Qty", Field: "qty"},
			{Key: "code", Title: "Label", Field: "code", Render: func(v any, _ datatable.Record, _ int) string {
				return fmt.Sprint(v)
			}},
		},
	}))

	out := textutil.Strip(tv.View())
	assert.Contains(t, out, "    5", "plain numbers pad on the left")
	assert.Contains(t, out, "12345")
	assert.Contains(t, out, "7    ", "rendered cells keep left alignment")
}

func TestTableView_CentersEmptyState(t *testing.T) {
	tv := NewTableView("", datatable.New(datatable.Config{
		Columns: datatable.Columns{
			{Key: "a", Title: "A", Field: "a", Width: 40},
			{Key: "b", Title: "B", Field: "b", Width: 40},
		},
	}))

	var line string
	for _, l := range strings.Split(textutil.Strip(tv.View()), "\n") {
		if strings.Contains(l, "No Data") {
			line = l
		}
	}
	require.NotEmpty(t, line)
	assert.Greater(t, strings.Index(line, "No Data"), 30, line)
}
