package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lagu-player/lagu/internal/keymap"
	"github.com/lagu-player/lagu/internal/session"
	"github.com/lagu-player/lagu/internal/ui/playerbar"
)

// handleMouse turns slider gestures into drag calls and clicks on the
// track list into highlight or select.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.chooser.IsOpen() || m.showHelp {
		return m, nil
	}

	slider := playerbar.SliderLayout(m.playerBarState(), m.width)
	row, onBar := m.regions.InPlayerBar(msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button { //nolint:exhaustive // other buttons are ignored
		case tea.MouseButtonLeft:
			if onBar && slider.Contains(msg.X, row) {
				m.session.BeginDrag(slider.ValueAt(msg.X))
				return m, nil
			}
			return m.clickQueue(msg.Y)
		case tea.MouseButtonWheelUp:
			return m.scrollQueue(keymap.ActionMoveUp)
		case tea.MouseButtonWheelDown:
			return m.scrollQueue(keymap.ActionMoveDown)
		}

	case tea.MouseActionMotion:
		if m.session.Held() {
			m.session.Drag(slider.ValueAt(msg.X))
		}

	case tea.MouseActionRelease:
		if m.session.Held() {
			return m.apply(m.session.ReleaseDrag(slider.ValueAt(msg.X)))
		}
	}

	return m, nil
}

// clickQueue highlights the clicked track; clicking the highlighted
// track plays it.
func (m Model) clickQueue(y int) (tea.Model, tea.Cmd) {
	rel, ok := m.regions.InContent(y)
	if !ok {
		return m, nil
	}
	idx := m.queue.RowAt(rel)
	if idx < 0 {
		return m, nil
	}
	if idx == m.queue.Cursor() {
		return m.dispatch(session.SelectTrack{Index: idx})
	}
	m.queue.Highlight(idx)
	return m, nil
}

func (m Model) scrollQueue(a keymap.Action) (tea.Model, tea.Cmd) {
	m.queue, _, _ = m.queue.HandleAction(a)
	return m, nil
}
