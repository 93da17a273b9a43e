package ui

// SwitchTabMsg selects a tab.
type SwitchTabMsg struct {
	Tab Tab
}

// NextTabMsg advances to the following tab.
type NextTabMsg struct{}

// ToggleHelpMsg shows or hides the full key help.
type ToggleHelpMsg struct{}

// SimulateLoadingMsg starts the current page's simulated fetch.
type SimulateLoadingMsg struct{}

// ClearDataMsg empties the demo tables.
type ClearDataMsg struct{}

// RestoreDataMsg puts the sample records back.
type RestoreDataMsg struct{}

// tableDataLoadedMsg ends a simulated table fetch.
type tableDataLoadedMsg struct{}

// inputLoadingDoneMsg ends the input demo's simulated loading.
type inputLoadingDoneMsg struct{}
