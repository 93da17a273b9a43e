package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI. Values are ANSI 256 codes or hex.
type Theme struct {
	Accent    string // titles, active sort arrow, focused borders
	Highlight string // cursor, selected rows, hero
	Danger    string // invalid fields, error text
	Success   string
	Muted     string // hints, inactive arrows, helper text
	Text      string
	Surface   string // filled input background, selected row background
}

// DefaultTheme matches the showcase palette.
var DefaultTheme = Theme{
	Accent:    "86",
	Highlight: "205",
	Danger:    "196",
	Success:   "42",
	Muted:     "241",
	Text:      "252",
	Surface:   "236",
}

// StyleSet contains shared style definitions used across components and pages.
type StyleSet struct {
	Theme Theme

	Title   lipgloss.Style // bold accent, page and card titles
	Hero    lipgloss.Style // banner box
	Section lipgloss.Style // card headers
	Card    lipgloss.Style // rounded box around a demo
	Muted   lipgloss.Style
	Normal  lipgloss.Style
	Hint    lipgloss.Style
	Danger  lipgloss.Style
	Success lipgloss.Style

	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	TableFrame     lipgloss.Style
	TableHeader    lipgloss.Style
	HeaderCursor   lipgloss.Style
	SortActive     lipgloss.Style
	SortInactive   lipgloss.Style
	RowCursor      lipgloss.Style
	RowSelected    lipgloss.Style
	EmptyTitle     lipgloss.Style
	LoadingSpinner lipgloss.Style

	Label        lipgloss.Style
	LabelInvalid lipgloss.Style
	Badge        lipgloss.Style

	// TableClasses maps a table's Class hook to frame overrides.
	TableClasses map[string]lipgloss.Style
}

// color converts a theme entry to a lipgloss color.
func color(s string) lipgloss.Color {
	return lipgloss.Color(s)
}

// NewStyleSet derives every style from t.
func NewStyleSet(t Theme) StyleSet {
	c := color
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c(t.Muted)).
		Padding(0, 1)
	return StyleSet{
		Theme:   t,
		Title:   lipgloss.NewStyle().Bold(true).Foreground(c(t.Accent)),
		Hero:    lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(c(t.Highlight)).Padding(0, 2).Align(lipgloss.Center),
		Section: lipgloss.NewStyle().Bold(true).Foreground(c(t.Highlight)),
		Card:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(c(t.Accent)).Padding(0, 1).MarginBottom(1),
		Muted:   lipgloss.NewStyle().Foreground(c(t.Muted)),
		Normal:  lipgloss.NewStyle().Foreground(c(t.Text)),
		Hint:    lipgloss.NewStyle().Foreground(c(t.Muted)).Italic(true),
		Danger:  lipgloss.NewStyle().Foreground(c(t.Danger)),
		Success: lipgloss.NewStyle().Foreground(c(t.Success)),

		TabActive:   lipgloss.NewStyle().Bold(true).Foreground(c(t.Highlight)).Underline(true).Padding(0, 2),
		TabInactive: lipgloss.NewStyle().Foreground(c(t.Muted)).Padding(0, 2),

		TableFrame:     frame,
		TableHeader:    lipgloss.NewStyle().Bold(true).Foreground(c(t.Muted)),
		HeaderCursor:   lipgloss.NewStyle().Bold(true).Underline(true).Foreground(c(t.Text)),
		SortActive:     lipgloss.NewStyle().Bold(true).Foreground(c(t.Accent)),
		SortInactive:   lipgloss.NewStyle().Foreground(c(t.Muted)),
		RowCursor:      lipgloss.NewStyle().Bold(true).Foreground(c(t.Highlight)),
		RowSelected:    lipgloss.NewStyle().Background(c(t.Surface)),
		EmptyTitle:     lipgloss.NewStyle().Bold(true).Foreground(c(t.Text)),
		LoadingSpinner: lipgloss.NewStyle().Foreground(c(t.Accent)),

		Label:        lipgloss.NewStyle().Bold(true).Foreground(c(t.Text)),
		LabelInvalid: lipgloss.NewStyle().Bold(true).Foreground(c(t.Danger)),
		Badge:        lipgloss.NewStyle().Padding(0, 1),

		TableClasses: map[string]lipgloss.Style{
			"borderless": lipgloss.NewStyle().Border(lipgloss.HiddenBorder()).Padding(0, 1),
			"compact":    lipgloss.NewStyle().Padding(0),
			"accent":     lipgloss.NewStyle().BorderForeground(c(t.Accent)).Padding(0, 1),
		},
	}
}

// Styles is the active style set. ApplyTheme replaces it.
var Styles = NewStyleSet(DefaultTheme)

// ApplyTheme rebuilds Styles from t, keeping defaults for empty colors.
func ApplyTheme(t Theme) {
	d := DefaultTheme
	pick := func(v, def string) string {
		if v == "" {
			return def
		}
		return v
	}
	Styles = NewStyleSet(Theme{
		Accent:    pick(t.Accent, d.Accent),
		Highlight: pick(t.Highlight, d.Highlight),
		Danger:    pick(t.Danger, d.Danger),
		Success:   pick(t.Success, d.Success),
		Muted:     pick(t.Muted, d.Muted),
		Text:      pick(t.Text, d.Text),
		Surface:   pick(t.Surface, d.Surface),
	})
}

// frameFor returns the table frame with the class override applied.
// Inherit does not carry padding, so class styles set their own.
func (s StyleSet) frameFor(class string) lipgloss.Style {
	frame := s.TableFrame
	if o, ok := s.TableClasses[class]; ok {
		frame = o.Inherit(frame)
	}
	return frame
}
