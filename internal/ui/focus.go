package ui

// FocusRing rotates focus over n slots. Slots for which Skip returns true are
// passed over. Current is -1 when nothing is focused.
type FocusRing struct {
	Current int
	Size    int
	Skip    func(i int) bool
}

// NewFocusRing returns a ring of size n with nothing focused.
func NewFocusRing(n int) *FocusRing {
	return &FocusRing{Current: -1, Size: n}
}

// Next moves focus forward and returns the new slot, or -1 if none is eligible.
func (f *FocusRing) Next() int {
	return f.step(1)
}

// Prev moves focus backward.
func (f *FocusRing) Prev() int {
	return f.step(-1)
}

// Clear drops focus.
func (f *FocusRing) Clear() {
	f.Current = -1
}

// Focused reports whether any slot has focus.
func (f *FocusRing) Focused() bool {
	return f.Current >= 0
}

func (f *FocusRing) step(dir int) int {
	if f.Size == 0 {
		return -1
	}
	start := f.Current
	if start < 0 && dir < 0 {
		start = 0
	}
	i := start
	for range f.Size {
		i = ((i+dir)%f.Size + f.Size) % f.Size
		if f.Skip == nil || !f.Skip(i) {
			f.Current = i
			return i
		}
	}
	f.Current = -1
	return -1
}
