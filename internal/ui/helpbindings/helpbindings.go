// Package helpbindings renders a scrollable panel listing every key binding.
package helpbindings

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lagu-player/lagu/internal/keymap"
	"github.com/lagu-player/lagu/internal/ui"
	"github.com/lagu-player/lagu/internal/ui/render"
	"github.com/lagu-player/lagu/internal/ui/styles"
)

// categoryOrder defines the display order of binding contexts.
var categoryOrder = []string{"global", "playback", "tracklist", "chooser"}

var categoryLabels = map[string]string{
	"global":    "Global",
	"playback":  "Playback",
	"tracklist": "Track List",
	"chooser":   "File Chooser",
}

// CloseMsg is sent when the help panel should close.
type CloseMsg struct{}

// Model holds the help panel state.
type Model struct {
	ui.Base
	lines        []string
	scrollOffset int
}

// New creates a help panel listing all bindings.
func New() Model {
	return Model{lines: buildLines(keymap.All)}
}

// Update handles scrolling and closing.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, func() tea.Msg { return CloseMsg{} }
	case "j", "down":
		if m.scrollOffset < m.maxScroll() {
			m.scrollOffset++
		}
	case "k", "up":
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
	}
	return m, nil
}

// View renders the panel at its full size.
func (m Model) View() string {
	if m.Unsized() {
		return ""
	}

	innerWidth := m.InnerWidth()
	visible := m.visibleHeight()

	end := min(m.scrollOffset+visible, len(m.lines))
	rows := make([]string, 0, visible)
	for _, line := range m.lines[m.scrollOffset:end] {
		rows = append(rows, render.Pad(line, innerWidth))
	}
	for len(rows) < visible {
		rows = append(rows, strings.Repeat(" ", innerWidth))
	}

	s := styles.T().S()
	content := s.Title.Render(render.TruncateAndPad("Help", innerWidth)) + "\n" +
		render.Separator(innerWidth) + "\n" +
		strings.Join(rows, "\n")

	if visible > 0 {
		content += "\n" + s.Muted.Render(render.TruncateAndPad(m.footer(), innerWidth))
	}

	return styles.PanelStyle(true).Width(innerWidth).Render(content)
}

func (m Model) footer() string {
	if m.maxScroll() == 0 {
		return "?/esc close"
	}
	return "j/k scroll · ?/esc close"
}

// visibleHeight leaves room for border, title, separator and footer.
func (m Model) visibleHeight() int {
	return m.ListHeight(ui.PanelOverhead + 1)
}

func (m Model) maxScroll() int {
	return max(len(m.lines)-m.visibleHeight(), 0)
}

func buildLines(bindings []keymap.Binding) []string {
	s := styles.T().S()

	maxKeyWidth := 0
	for _, b := range bindings {
		maxKeyWidth = max(maxKeyWidth, len(keyLabel(b)))
	}

	var lines []string
	for _, ctx := range categoryOrder {
		first := true
		for _, b := range bindings {
			if b.Context != ctx {
				continue
			}
			if first {
				if len(lines) > 0 {
					lines = append(lines, "")
				}
				lines = append(lines, s.Warning.Bold(true).Render(categoryLabels[ctx]))
				first = false
			}
			key := render.Pad(keyLabel(b), maxKeyWidth)
			lines = append(lines, s.Key.Render(key)+"  "+s.Base.Render(b.Description))
		}
	}
	return lines
}

func keyLabel(b keymap.Binding) string {
	keys := make([]string, len(b.Keys))
	for i, k := range b.Keys {
		if k == " " {
			k = "space"
		}
		keys[i] = k
	}
	return strings.Join(keys, ", ")
}
