package datatable

// CheckState is the tri-state of the select-all header checkbox.
type CheckState int

const (
	CheckNone CheckState = iota
	CheckPartial
	CheckAll
)

func (c CheckState) String() string {
	switch c {
	case CheckPartial:
		return "partial"
	case CheckAll:
		return "all"
	default:
		return "none"
	}
}

// Selection is a set of row keys. The zero value is an empty set.
type Selection struct {
	keys map[any]struct{}
}

// Add inserts key.
func (s *Selection) Add(key any) {
	if s.keys == nil {
		s.keys = make(map[any]struct{})
	}
	s.keys[normalizeKey(key)] = struct{}{}
}

// Remove deletes key.
func (s *Selection) Remove(key any) {
	delete(s.keys, normalizeKey(key))
}

// Has reports whether key is selected.
func (s *Selection) Has(key any) bool {
	_, ok := s.keys[normalizeKey(key)]
	return ok
}

// Len returns the number of keys, including keys whose records are gone.
func (s *Selection) Len() int {
	return len(s.keys)
}

// Clear empties the set.
func (s *Selection) Clear() {
	s.keys = nil
}

// Replace sets the selection to exactly keys.
func (s *Selection) Replace(keys []any) {
	s.keys = make(map[any]struct{}, len(keys))
	for _, k := range keys {
		s.keys[normalizeKey(k)] = struct{}{}
	}
}

// SelectedRecords returns the records (in input order) whose key is in sel.
// The result is never nil.
func SelectedRecords(records []Record, sel *Selection, key RowKey) []Record {
	out := make([]Record, 0, sel.Len())
	for i, rec := range records {
		if sel.Has(key.Resolve(rec, i)) {
			out = append(out, rec)
		}
	}
	return out
}

// HeaderState computes the select-all checkbox state against records. Keys in
// sel that no longer match a record do not count.
func HeaderState(records []Record, sel *Selection, key RowKey) CheckState {
	if sel.Len() == 0 || len(records) == 0 {
		return CheckNone
	}
	n := 0
	for i, rec := range records {
		if sel.Has(key.Resolve(rec, i)) {
			n++
		}
	}
	switch {
	case n == 0:
		return CheckNone
	case n == len(records):
		return CheckAll
	default:
		return CheckPartial
	}
}
