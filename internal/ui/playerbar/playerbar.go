// Package playerbar renders the now-playing box: track line, progress
// slider and time label.
package playerbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lagu-player/lagu/internal/playback"
	"github.com/lagu-player/lagu/internal/ui/render"
	"github.com/lagu-player/lagu/internal/ui/styles"
)

// Height is the rendered height: two content rows inside a border.
const Height = 4

const (
	playSymbol  = "▶"
	pauseSymbol = "⏸"
	stopSymbol  = "■"

	// border + horizontal padding on each side
	frameWidth = 4
	// space between slider and label
	labelGap = 2

	emptyLabel = "00:00 / 00:00"
)

// State holds everything needed to render the player bar.
type State struct {
	Playback   playback.State
	Title      string
	Artist     string
	Album      string
	Index      int // cursor, -1 when nothing is selected
	Total      int
	Format     string
	SampleRate int

	Label  string  // "MM:SS / MM:SS"
	Slider float64 // slider value in [0, 1]
	Held   bool    // the user owns the slider
}

// Render returns the player bar for the given total width.
func Render(s State, width int) string {
	inner := max(width-frameWidth, 0)

	lines := []string{
		trackLine(s, inner),
		sliderLine(s, inner),
	}

	return styles.PanelStyle(s.Playback == playback.StatePlaying).
		Padding(0, 1).
		Width(max(width-2, 0)).
		Render(strings.Join(lines, "\n"))
}

// SliderLayout returns where the slider sits in a bar of the given width.
func SliderLayout(s State, width int) Layout {
	inner := max(width-frameWidth, 0)
	return Layout{
		Row:   2, // top border, track line
		Start: frameWidth / 2,
		Width: sliderWidth(label(s), inner),
	}
}

func label(s State) string {
	if s.Label == "" {
		return emptyLabel
	}
	return s.Label
}

func sliderWidth(label string, inner int) int {
	return max(inner-labelGap-lipgloss.Width(label), 0)
}

func sliderLine(s State, inner int) string {
	lbl := label(s)
	w := sliderWidth(lbl, inner)
	st := styles.T().S()
	return RenderSlider(s.Slider, w, s.Held) + strings.Repeat(" ", labelGap) + st.Label.Render(lbl)
}

func trackLine(s State, inner int) string {
	st := styles.T().S()

	status := stopSymbol
	switch s.Playback {
	case playback.StatePlaying:
		status = playSymbol
	case playback.StatePaused:
		status = pauseSymbol
	case playback.StateStopped:
	}

	if s.Index < 0 || s.Title == "" {
		return st.Muted.Render(status + "  No track loaded - press o to open a file")
	}

	right := counter(s)
	if info := formatAudioInfo(s.Format, s.SampleRate); info != "" {
		if right != "" {
			right += " · "
		}
		right += info
	}

	leftWidth := inner - lipgloss.Width(status) - 2
	if right != "" {
		leftWidth -= lipgloss.Width(right) + 3
	}

	title := s.Title
	if s.Artist != "" {
		title = s.Artist + " - " + title
	}
	if s.Album != "" {
		title += " · " + s.Album
	}
	title = render.Truncate(title, max(leftWidth, 0))

	left := st.Playing.Render(status) + "  " + st.Title.Render(title)
	if right == "" {
		return left
	}
	return render.Row(left, st.Muted.Render(right), inner)
}

func counter(s State) string {
	if s.Total <= 0 || s.Index < 0 {
		return ""
	}
	return fmt.Sprintf("%d/%d", s.Index+1, s.Total)
}

func formatAudioInfo(format string, sampleRate int) string {
	var parts []string
	if format != "" {
		parts = append(parts, format)
	}

	if sampleRate > 0 {
		khz := float64(sampleRate) / 1000.0
		if khz == float64(int(khz)) {
			parts = append(parts, fmt.Sprintf("%d kHz", int(khz)))
		} else {
			parts = append(parts, fmt.Sprintf("%.1f kHz", khz))
		}
	}

	return strings.Join(parts, " ")
}
