// Package datatable holds the behavior of a sortable, selectable table
// independent of any rendering framework.
//
// A Table owns two pieces of state, the SortState and the Selection, and
// derives an ordered view of caller-supplied records from them:
//
//   - DeriveView orders records by the active column (stable, never mutates input)
//   - Selection tracks row keys; OnSelect receives the selected records after
//     every selection-affecting operation
//   - Mode decides between loading, empty and rows rendering
//
// Nothing here can fail: missing key fields fall back to the record's input
// position, missing renderers fall back to plain text. A Table is not safe
// for concurrent use; it is meant to be driven from a single update loop.
package datatable
