package datatable

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Direction is the ordering applied by the active sort column.
type Direction int

const (
	DirectionNone Direction = iota
	Ascending
	Descending
)

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	default:
		return "none"
	}
}

// ParseDirection accepts "asc", "desc" or "none" (and "" for none).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	case "", "none":
		return DirectionNone, nil
	}
	return DirectionNone, fmt.Errorf("unknown sort direction %q", s)
}

// SortState names the active column (if any) and its direction.
// The zero value means unsorted.
type SortState struct {
	Column    string
	Direction Direction
}

// Active reports whether the state orders rows.
func (s SortState) Active() bool {
	return s.Column != "" && s.Direction != DirectionNone
}

// Next returns the state after activating col's header: none → asc → desc → none
// on the same column; a different column starts at asc. Non-sortable columns
// leave the state unchanged.
func (s SortState) Next(col Column) SortState {
	if !col.Sortable {
		return s
	}
	if s.Column != col.Key {
		return SortState{Column: col.Key, Direction: Ascending}
	}
	if s.Direction == Ascending {
		return SortState{Column: col.Key, Direction: Descending}
	}
	return SortState{}
}

// Comparator orders field values. Strings use locale-aware collation.
// A Comparator is not safe for concurrent use. The nil Comparator compares
// strings bytewise.
type Comparator struct {
	coll *collate.Collator
}

// NewComparator returns a comparator collating strings for tag.
func NewComparator(tag language.Tag) *Comparator {
	return &Comparator{coll: collate.New(tag)}
}

// Compare returns -1, 0 or 1. Equal values compare equal and nil sorts before
// any non-nil value. Two strings collate, so distinct strings the collator
// ties compare equal. Two integers compare exactly; other numbers, times and
// bools compare by value. Anything else compares by its textual form.
func (c *Comparator) Compare(a, b any) int {
	if equal(a, b) {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return c.compareStrings(av, bv)
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Compare(bv)
		}
	case bool:
		if bv, ok := b.(bool); ok && av != bv {
			if av {
				return 1
			}
			return -1
		}
	}
	if r, ok := compareIntegers(a, b); ok {
		return r
	}
	if af, ok := toFloat(a); ok {
		if bf, ok := toFloat(b); ok {
			return compareFloats(af, bf)
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func (c *Comparator) compareStrings(a, b string) int {
	if c == nil || c.coll == nil {
		return strings.Compare(a, b)
	}
	return c.coll.CompareString(a, b)
}

// Row is one element of a derived view. Index is the record's position in
// the input sequence, not in the view.
type Row struct {
	Record Record
	Index  int
}

// DeriveView returns records ordered by state. The sort is stable and the
// input slice is never reordered. An inactive state or an unknown column
// keeps input order.
func DeriveView(records []Record, state SortState, columns Columns, cmp *Comparator) []Row {
	rows := make([]Row, len(records))
	for i, rec := range records {
		rows[i] = Row{Record: rec, Index: i}
	}
	if !state.Active() {
		return rows
	}
	col, ok := columns.Find(state.Column)
	if !ok {
		return rows
	}
	slices.SortStableFunc(rows, func(x, y Row) int {
		r := cmp.Compare(col.Value(x.Record), col.Value(y.Record))
		if state.Direction == Descending {
			return -r
		}
		return r
	})
	return rows
}

func equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

// IsNumber reports whether v is one of the built-in integer or float kinds.
func IsNumber(v any) bool {
	_, ok := toFloat(v)
	return ok
}

// compareIntegers orders two integers without a float round trip. ok is
// false unless both values are integers.
func compareIntegers(a, b any) (r int, ok bool) {
	ai, au, aSigned, ok := toInteger(a)
	if !ok {
		return 0, false
	}
	bi, bu, bSigned, ok := toInteger(b)
	if !ok {
		return 0, false
	}
	switch {
	case aSigned && bSigned:
		return cmp.Compare(ai, bi), true
	case !aSigned && !bSigned:
		return cmp.Compare(au, bu), true
	case aSigned:
		if ai < 0 {
			return -1, true
		}
		return cmp.Compare(uint64(ai), bu), true
	default:
		if bi < 0 {
			return 1, true
		}
		return cmp.Compare(au, uint64(bi)), true
	}
}

// toInteger widens v to int64 when signed or uint64 when unsigned.
func toInteger(v any) (i int64, u uint64, signed, ok bool) {
	switch n := v.(type) {
	case int:
		return int64(n), 0, true, true
	case int8:
		return int64(n), 0, true, true
	case int16:
		return int64(n), 0, true, true
	case int32:
		return int64(n), 0, true, true
	case int64:
		return n, 0, true, true
	case uint:
		return 0, uint64(n), false, true
	case uint8:
		return 0, uint64(n), false, true
	case uint16:
		return 0, uint64(n), false, true
	case uint32:
		return 0, uint64(n), false, true
	case uint64:
		return 0, n, false, true
	}
	return 0, 0, false, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// compareFloats places NaN before every other number.
func compareFloats(a, b float64) int {
	an, bn := math.IsNaN(a), math.IsNaN(b)
	switch {
	case an && bn:
		return 0
	case an:
		return -1
	case bn:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
