// Package styles holds the color palette and shared lipgloss styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	Primary   lipgloss.Color // focused items, playing track, slider fill
	Secondary lipgloss.Color // slider handle while dragging, title gradient end

	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgCursor lipgloss.Color

	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style
	Playing lipgloss.Style // track under the playlist cursor
	Cursor  lipgloss.Style // highlighted row in the track list
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style

	SliderFilled lipgloss.Style
	SliderEmpty  lipgloss.Style
	SliderHandle lipgloss.Style
	SliderHeld   lipgloss.Style // handle while the user owns the slider
	Label        lipgloss.Style // "MM:SS / MM:SS"
	Key          lipgloss.Style // key names in the help line
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#5fb3b3"),
	Secondary: lipgloss.Color("#f9ae58"),

	FgBase:   lipgloss.Color("#c0c5ce"),
	FgMuted:  lipgloss.Color("#808891"),
	FgSubtle: lipgloss.Color("#4f5b66"),

	BgCursor: lipgloss.Color("#343d46"),

	Border:      lipgloss.Color("#4f5b66"),
	BorderFocus: lipgloss.Color("#5fb3b3"),

	Success: lipgloss.Color("#99c794"),
	Error:   lipgloss.Color("#ec5f67"),
	Warning: lipgloss.Color("#f9ae58"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Playing: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),

		SliderFilled: lipgloss.NewStyle().Foreground(t.Primary),
		SliderEmpty:  lipgloss.NewStyle().Foreground(t.FgSubtle),
		SliderHandle: lipgloss.NewStyle().Foreground(t.FgBase).Bold(true),
		SliderHeld:   lipgloss.NewStyle().Foreground(t.Secondary).Bold(true),
		Label:        lipgloss.NewStyle().Foreground(t.FgMuted),
		Key:          lipgloss.NewStyle().Foreground(t.Primary),
	}
}
