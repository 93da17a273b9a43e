package datatable

import (
	"fmt"
	"reflect"
)

// DefaultKeyField is the record field used for row identity when no strategy is set.
const DefaultKeyField = "id"

// RowKey resolves a record's identity, either from a field or from a function.
// The zero value reads DefaultKeyField.
type RowKey struct {
	field string
	fn    func(Record) any
}

// KeyField resolves row keys from the named record field.
func KeyField(name string) RowKey {
	return RowKey{field: name}
}

// KeyFunc resolves row keys with fn.
func KeyFunc(fn func(Record) any) RowKey {
	return RowKey{fn: fn}
}

// Resolve returns the key for rec. index is the record's position in the
// input sequence and is used when the key field is missing or nil.
func (k RowKey) Resolve(rec Record, index int) any {
	if k.fn != nil {
		return normalizeKey(k.fn(rec))
	}
	field := k.field
	if field == "" {
		field = DefaultKeyField
	}
	if v, ok := rec[field]; ok && v != nil {
		return normalizeKey(v)
	}
	return index
}

// normalizeKey makes v usable as a map key.
func normalizeKey(v any) any {
	if v == nil {
		return nil
	}
	if !reflect.TypeOf(v).Comparable() {
		return fmt.Sprint(v)
	}
	return v
}
