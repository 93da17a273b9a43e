package ui

// Tab identifies a showcase page.
type Tab int

const (
	TabInputField Tab = iota
	TabDataTable
)

// Tabs lists pages in display order.
var Tabs = []Tab{TabInputField, TabDataTable}

func (t Tab) String() string {
	switch t {
	case TabInputField:
		return "Input Field"
	case TabDataTable:
		return "Data Table"
	default:
		return "Unknown"
	}
}

// Next returns the tab after t, wrapping around.
func (t Tab) Next() Tab {
	return Tabs[(int(t)+1)%len(Tabs)]
}
