package app

import (
	"strings"

	"github.com/lagu-player/lagu/internal/keymap"
	"github.com/lagu-player/lagu/internal/ui/headerbar"
	"github.com/lagu-player/lagu/internal/ui/layout"
	"github.com/lagu-player/lagu/internal/ui/playerbar"
	"github.com/lagu-player/lagu/internal/ui/render"
	"github.com/lagu-player/lagu/internal/ui/styles"
)

// helpContexts lists the bindings shown on the help line.
var helpContexts = []string{"playback", "global"}

// resize recomputes the screen regions and sizes the panels.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.regions = layout.Compute(height, playerbar.Height)

	m.queue.SetSize(width, m.regions.ContentHeight)
	m.chooser.SetSize(width, m.regions.ContentHeight)
	m.help.SetSize(width, m.regions.ContentHeight)
}

// View renders the whole screen.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var content string
	switch {
	case m.chooser.IsOpen():
		content = m.chooser.View()
	case m.showHelp:
		content = m.help.View()
	default:
		content = m.queue.View()
	}

	return strings.Join([]string{
		headerbar.Render(m.session.Service().QueueLen(), m.width),
		content,
		playerbar.Render(m.playerBarState(), m.width),
		m.renderStatus(),
		m.renderHelpLine(),
	}, "\n")
}

func (m Model) renderStatus() string {
	s := styles.T().S()
	text := render.Truncate(m.status, m.width)
	if m.statusErr {
		return s.Error.Render(text)
	}
	return s.Success.Render(text)
}

func (m Model) renderHelpLine() string {
	var bindings []keymap.Binding
	for _, ctx := range helpContexts {
		bindings = append(bindings, keymap.ByContext(ctx)...)
	}
	line := render.Truncate(keymap.HelpLine(bindings), m.width)
	return styles.T().S().Muted.Render(line)
}
