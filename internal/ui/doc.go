// Package ui hosts the terminal components and the showcase app built on Bubble Tea.
//
// Components:
//   - TableView: interactive rendering of a datatable.Table (cursor, sort, selection)
//   - InputField: a styled text input with variants, sizes and validation text
//
// Showcase:
//   - InputDemoView and TableDemoView: demo pages wiring components to sample data
//   - AppModel: hero header, tab bar, SPC leader keybinds and help overlay
package ui
