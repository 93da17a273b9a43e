package ui

import (
	"testing"
	"time"

	"uiforge/internal/datatable"
	"uiforge/internal/sample"
	"uiforge/internal/ui/textutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTableDemo(policy datatable.SelectionPolicy) *TableDemoView {
	return NewTableDemoView(TableDemoOptions{
		Records:      sample.Users(),
		Columns:      sample.UserColumns(),
		Policy:       policy,
		LoadingDelay: 10 * time.Millisecond,
	})
}

func TestTableDemo_SimulateLoading(t *testing.T) {
	d := newTableDemo(datatable.PreserveSelection)

	_, cmd := d.Update(SimulateLoadingMsg{})
	require.NotNil(t, cmd)
	assert.True(t, d.Loading())
	assert.True(t, d.Basic.Table.Loading())
	assert.True(t, d.Selectable.Table.Loading())
	assert.Empty(t, d.Basic.Table.Records())
	assert.Contains(t, textutil.Strip(d.View()), "Loading...")

	_, cmd = d.Update(SimulateLoadingMsg{})
	assert.Nil(t, cmd, "already loading")

	d.Update(tableDataLoadedMsg{})
	assert.False(t, d.Loading())
	assert.False(t, d.Selectable.Table.Loading())
	assert.Len(t, d.Basic.Table.Records(), 5)
	assert.Contains(t, textutil.Strip(d.View()), "Simulate Loading")
}

func TestTableDemo_ClearAndRestore(t *testing.T) {
	d := newTableDemo(datatable.PreserveSelection)

	d.Update(ClearDataMsg{})
	out := textutil.Strip(d.View())
	assert.True(t, containsAll(out, "No Data", SelectableEmptyMessage, datatable.DefaultEmptyMessage), out)

	d.Update(RestoreDataMsg{})
	assert.Len(t, d.Selectable.Table.View(), 5)
}

func TestTableDemo_FocusAndSelection(t *testing.T) {
	d := newTableDemo(datatable.PreserveSelection)
	assert.True(t, d.Basic.Focused())

	press(d, "tab")
	assert.True(t, d.Selectable.Focused())
	assert.False(t, d.Basic.Focused())

	press(d, "a")
	require.Len(t, d.SelectedRows(), 5)
	out := textutil.Strip(d.View())
	assert.True(t, containsAll(out, "5 row(s) selected", "Selected Users:", "Alice Johnson (alice@example.com)"), out)

	press(d, "a")
	assert.Empty(t, d.SelectedRows())
	assert.NotContains(t, textutil.Strip(d.View()), "Selected Users:")

	press(d, "shift+tab")
	assert.True(t, d.Basic.Focused())
}

func TestTableDemo_PreserveSelectionAcrossClear(t *testing.T) {
	d := newTableDemo(datatable.PreserveSelection)
	press(d, "tab", "x")
	require.Len(t, d.SelectedRows(), 1)

	d.Update(ClearDataMsg{})
	assert.Empty(t, d.SelectedRows())
	assert.Equal(t, 1, d.Selectable.Table.SelectionLen(), "stale key kept")

	d.Update(RestoreDataMsg{})
	assert.Len(t, d.SelectedRows(), 1)
}

func TestTableDemo_ResetSelectionAcrossClear(t *testing.T) {
	d := newTableDemo(datatable.ResetSelection)
	press(d, "tab", "x")

	d.Update(ClearDataMsg{})
	d.Update(RestoreDataMsg{})
	assert.Empty(t, d.SelectedRows())
	assert.Equal(t, 0, d.Selectable.Table.SelectionLen())
}

func TestTableDemo_BasicTableIgnoresSelection(t *testing.T) {
	d := newTableDemo(datatable.PreserveSelection)
	press(d, "x", "a")
	assert.Equal(t, 0, d.Basic.Table.SelectionLen())
	assert.False(t, d.Capturing())
}

func TestInputDemo_FocusCycleSkipsDisabled(t *testing.T) {
	d := NewInputDemoView(time.Millisecond, nil)
	assert.False(t, d.Capturing())

	var order []string
	for range 11 {
		press(d, "tab")
		require.NotNil(t, d.Focused())
		order = append(order, d.Focused().ID)
	}
	assert.Equal(t, []string{
		"filled", "outlined", "ghost",
		"size-sm", "size-md", "size-lg",
		"password", "clearable", "loading",
		"error", "success",
	}, order)

	press(d, "tab")
	assert.Equal(t, "filled", d.Focused().ID, "wraps around")

	press(d, "esc")
	assert.False(t, d.Capturing())
	assert.False(t, d.Field("filled").Focused())

	press(d, "shift+tab")
	assert.Equal(t, "success", d.Focused().ID)
}

func TestInputDemo_TypingGoesToFocusedField(t *testing.T) {
	d := NewInputDemoView(time.Millisecond, nil)

	press(d, "o", "k")
	assert.Equal(t, "", d.Field("filled").Value(), "no field focused")

	press(d, "tab", "o", "k")
	assert.Equal(t, "ok", d.Field("filled").Value())
	assert.Equal(t, "", d.Field("outlined").Value())
}

func TestInputDemo_ClearableField(t *testing.T) {
	d := NewInputDemoView(time.Millisecond, nil)
	f := d.Field("clearable")
	assert.Equal(t, "Clear me!", f.Value())

	for d.Focused() != f {
		press(d, "tab")
	}
	press(d, "ctrl+x")
	assert.Equal(t, "", f.Value())
}

func TestInputDemo_SimulateLoading(t *testing.T) {
	d := NewInputDemoView(time.Millisecond, nil)
	f := d.Field("loading")
	for d.Focused() != f {
		press(d, "tab")
	}

	_, cmd := d.Update(SimulateLoadingMsg{})
	require.NotNil(t, cmd)
	assert.True(t, f.Loading)
	assert.False(t, d.Capturing(), "loading field drops focus")
	assert.Contains(t, textutil.Strip(d.View()), "Loading...")

	_, cmd = d.Update(SimulateLoadingMsg{})
	assert.Nil(t, cmd)

	d.Update(inputLoadingDoneMsg{})
	assert.False(t, f.Loading)
	assert.True(t, f.Focusable())
}

func TestInputDemo_View(t *testing.T) {
	d := NewInputDemoView(0, nil)
	out := textutil.Strip(d.View())
	assert.True(t, containsAll(out,
		"Input Field Variants", "Input Field Sizes", "Input Field Features", "Validation States",
		"Filled Input", "Large Size", "Password Input", "Disabled Input",
		"This field contains an error", "This field is valid",
	), out)
}
