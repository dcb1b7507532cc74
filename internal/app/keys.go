package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lagu-player/lagu/internal/keymap"
	"github.com/lagu-player/lagu/internal/playback"
	"github.com/lagu-player/lagu/internal/session"
)

// keyResult is the outcome of one key handler.
type keyResult struct {
	handled bool
	model   Model
	cmd     tea.Cmd
}

var notHandled = keyResult{}

func handled(m Model, cmd tea.Cmd) keyResult {
	return keyResult{handled: true, model: m, cmd: cmd}
}

// handleKey routes a key press: modal panels first, then global,
// playback and track list bindings in that order.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	if m.chooser.IsOpen() {
		var cmd tea.Cmd
		m.chooser, cmd = m.chooser.Update(msg)
		return m, cmd
	}

	if m.showHelp {
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		return m, cmd
	}

	a := m.keys.Resolve(key)
	if a == "" {
		return m, nil
	}

	for _, h := range []func(keymap.Action) keyResult{
		m.handleGlobalAction,
		m.handlePlaybackAction,
		m.handleQueueAction,
	} {
		if r := h(a); r.handled {
			return r.model, r.cmd
		}
	}
	return m, nil
}

func (m Model) handleGlobalAction(a keymap.Action) keyResult {
	switch a {
	case keymap.ActionQuit:
		return handled(m, tea.Quit)
	case keymap.ActionHelp:
		m.showHelp = true
		m.resize(m.width, m.height)
		return handled(m, nil)
	case keymap.ActionOpen:
		next, cmd := m.dispatch(session.Open{})
		return handled(next, cmd)
	}
	return notHandled
}

func (m Model) handlePlaybackAction(a keymap.Action) keyResult {
	var in session.Intent
	switch a {
	case keymap.ActionPlay:
		in = session.Play{}
	case keymap.ActionPause:
		in = session.Pause{}
	case keymap.ActionPlayPause:
		if m.session.Status().State == playback.StatePlaying {
			in = session.Pause{}
		} else {
			in = session.Play{}
		}
	case keymap.ActionStop:
		in = session.Stop{}
	case keymap.ActionNextTrack:
		in = session.Next{}
	case keymap.ActionPrevTrack:
		in = session.Previous{}
	case keymap.ActionSeekForward:
		in = session.SeekBy{Delta: m.seekStep}
	case keymap.ActionSeekBack:
		in = session.SeekBy{Delta: -m.seekStep}
	case keymap.ActionVolumeUp:
		in = session.ChangeVolume{Delta: m.volumeStep}
	case keymap.ActionVolumeDown:
		in = session.ChangeVolume{Delta: -m.volumeStep}
	case keymap.ActionMute:
		in = session.ToggleMute{}
	default:
		return notHandled
	}
	m, cmd := m.dispatch(in)
	return handled(m, cmd)
}

func (m Model) handleQueueAction(a keymap.Action) keyResult {
	queue, cmd, ok := m.queue.HandleAction(a)
	if !ok {
		return notHandled
	}
	m.queue = queue
	return handled(m, cmd)
}
