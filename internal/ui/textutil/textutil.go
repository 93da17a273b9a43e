// Package textutil lays out possibly styled text in fixed terminal columns.
package textutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Align is the horizontal placement of text inside a cell.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// Width returns the number of terminal columns s occupies, ignoring ANSI escapes.
func Width(s string) int {
	return ansi.StringWidth(s)
}

// Truncate shortens s to at most maxWidth columns, ending with Ellipsis when
// cut. Escape sequences are preserved.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if Width(s) <= maxWidth {
		return s
	}
	return ansi.Truncate(s, maxWidth, Ellipsis)
}

// Fit truncates or pads s to exactly width columns.
func Fit(s string, width int, align Align) string {
	s = Truncate(firstLine(s), width)
	gap := width - Width(s)
	if gap <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", gap) + s
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	default:
		return s + strings.Repeat(" ", gap)
	}
}

// Strip removes ANSI escape sequences.
func Strip(s string) string {
	return ansi.Strip(s)
}

// firstLine keeps cells on a single row.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
