package ui

import (
	"testing"
	"time"

	"uiforge/internal/datatable"
	"uiforge/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, opts Options) (*AppModel, tea.Model) {
	t.Helper()
	if opts.LoadingDelay == 0 {
		opts.LoadingDelay = time.Millisecond
	}
	m := NewAppModel(opts)
	return m, m.AsTeaModel()
}

// send feeds key presses to the app and runs any resulting command once,
// delivering its message back like the Bubble Tea runtime would.
func send(app tea.Model, keys ...string) tea.Msg {
	var last tea.Msg
	for _, k := range keys {
		_, cmd := app.Update(keyMsg(k))
		last = nil
		if cmd == nil {
			continue
		}
		last = cmd()
		switch last.(type) {
		case SwitchTabMsg, NextTabMsg, ToggleHelpMsg, SimulateLoadingMsg, ClearDataMsg, RestoreDataMsg:
			app.Update(last)
		}
	}
	return last
}

func isQuit(msg tea.Msg) bool {
	_, ok := msg.(tea.QuitMsg)
	return ok
}

func TestApp_DefaultsToSampleUsers(t *testing.T) {
	m, _ := newTestApp(t, Options{})
	assert.Equal(t, TabInputField, m.Tab)
	assert.Len(t, m.Tables.Basic.Table.Records(), 5)
	assert.Equal(t, "User", m.Tables.Basic.Table.Columns()[0].Title)
}

func TestApp_InfersColumnsForCustomRecords(t *testing.T) {
	m, _ := newTestApp(t, Options{Records: []datatable.Record{{"id": 1, "sku": "A-1"}}})
	cols := m.Tables.Basic.Table.Columns()
	require.Len(t, cols, 2)
	assert.Equal(t, "id", cols[0].Key)
	assert.Equal(t, "sku", cols[1].Key)
}

func TestApp_TabSwitching(t *testing.T) {
	m, app := newTestApp(t, Options{})

	send(app, "2")
	assert.Equal(t, TabDataTable, m.Tab)
	send(app, "1")
	assert.Equal(t, TabInputField, m.Tab)
	send(app, " ", "t")
	assert.Equal(t, TabDataTable, m.Tab)
	send(app, " ", "t")
	assert.Equal(t, TabInputField, m.Tab)
}

func TestApp_Quit(t *testing.T) {
	_, app := newTestApp(t, Options{})
	assert.True(t, isQuit(send(app, "q")))
	assert.True(t, isQuit(send(app, " ", "q")))
}

func TestApp_CapturingFieldTakesKeys(t *testing.T) {
	m, app := newTestApp(t, Options{})

	send(app, "tab")
	require.True(t, m.Inputs.Capturing())

	assert.False(t, isQuit(send(app, "q")))
	send(app, "2")
	assert.Equal(t, TabInputField, m.Tab)
	assert.Equal(t, "q2", m.Inputs.Field("filled").Value())

	assert.True(t, isQuit(send(app, "ctrl+c")), "ctrl+c always quits")

	send(app, "esc")
	assert.False(t, m.Inputs.Capturing())
	send(app, "2")
	assert.Equal(t, TabDataTable, m.Tab)
}

func TestApp_LeaderCommandsPerTab(t *testing.T) {
	m, app := newTestApp(t, Options{})

	assert.Nil(t, send(app, " ", "c"), "clear data is table-only")
	assert.Len(t, m.Tables.Basic.Table.Records(), 5)

	send(app, " ", "l")
	assert.True(t, m.Inputs.Field("loading").Loading)
	assert.False(t, m.Tables.Loading())

	send(app, "2", " ", "c")
	assert.Empty(t, m.Tables.Basic.Table.Records())
	send(app, " ", "r")
	assert.Len(t, m.Tables.Basic.Table.Records(), 5)

	send(app, " ", "l")
	assert.True(t, m.Tables.Loading())
}

func TestApp_TableKeysReachFocusedTable(t *testing.T) {
	m, app := newTestApp(t, Options{})
	send(app, "2", "s")
	assert.Equal(t, datatable.Ascending, m.Tables.Basic.Table.Sort().Direction)
}

func TestApp_HelpOverlay(t *testing.T) {
	m, app := newTestApp(t, Options{})

	send(app, "?")
	require.True(t, m.HelpVisible())
	out := textutil.Strip(app.View())
	assert.True(t, containsAll(out, "Keys", "Simulate loading", "show/hide password"), out)

	assert.False(t, isQuit(send(app, "q")), "q closes help first")
	assert.False(t, m.HelpVisible())
}

func TestApp_View(t *testing.T) {
	_, app := newTestApp(t, Options{})
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	out := textutil.Strip(app.View())
	assert.True(t, containsAll(out, "UI Forge Suite v1.0", "1 Input Field", "2 Data Table", "Input Field Variants"), out)

	send(app, " ")
	out = textutil.Strip(app.View())
	assert.True(t, containsAll(out, "Next tab", "cancel"), out)
	assert.NotContains(t, out, "Clear data", "table-only hint hidden on input tab")

	send(app, "esc", "2")
	out = textutil.Strip(app.View())
	assert.True(t, containsAll(out, "Basic Data Table", "Data Table with Selection", "Alice Johnson"), out)
}
