package datatable

import "fmt"

// Record is one caller-supplied data item, a mapping from field names to values.
// The table reads fields but never writes them.
type Record map[string]any

// RenderFunc produces the display text for one cell. It receives the raw field
// value, the full record and the row's position in the sorted view.
type RenderFunc func(value any, rec Record, index int) string

// Column describes how one record field is titled, sorted and rendered.
type Column struct {
	Key      string // unique within a column set
	Title    string
	Field    string
	Sortable bool
	Width    int // terminal columns; 0 sizes to content
	Render   RenderFunc
}

// Value returns the column's field from rec (nil when absent).
func (c Column) Value(rec Record) any {
	return rec[c.Field]
}

// Columns is an ordered column set.
type Columns []Column

// Find returns the column with the given key.
func (cs Columns) Find(key string) (Column, bool) {
	for _, c := range cs {
		if c.Key == key {
			return c, true
		}
	}
	return Column{}, false
}

// Validate reports the first duplicate column key. Tables accept duplicate
// keys, but header activation then always resolves to the first match.
func (cs Columns) Validate() error {
	seen := make(map[string]struct{}, len(cs))
	for i, c := range cs {
		if _, dup := seen[c.Key]; dup {
			return fmt.Errorf("column[%d]: duplicate key %q", i, c.Key)
		}
		seen[c.Key] = struct{}{}
	}
	return nil
}
