// Package queuepanel renders the playlist with a highlight cursor and a
// marker on the track under the playlist cursor.
package queuepanel

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lagu-player/lagu/internal/keymap"
	"github.com/lagu-player/lagu/internal/playlist"
	"github.com/lagu-player/lagu/internal/ui"
	"github.com/lagu-player/lagu/internal/ui/cursor"
)

// Source is the read side of the playing queue.
type Source interface {
	QueueTracks() []playlist.Track
	QueueCurrentIndex() int
}

// SelectMsg is sent when the user picks the highlighted track.
type SelectMsg struct {
	Index int
}

// Model is the track list panel.
type Model struct {
	ui.Base
	source Source
	cursor cursor.Cursor
}

// New creates a panel reading from source.
func New(source Source) Model {
	return Model{
		source: source,
		cursor: cursor.New(ui.ScrollMargin),
	}
}

// Cursor returns the highlighted index.
func (m Model) Cursor() int {
	return m.cursor.Pos()
}

// SetSize sets the panel dimensions and keeps the highlight on screen.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.cursor.Fit(len(m.source.QueueTracks()), m.listHeight())
}

// Follow moves the highlight to the track under the playlist cursor.
func (m *Model) Follow() {
	if idx := m.source.QueueCurrentIndex(); idx >= 0 {
		m.cursor.Jump(idx, len(m.source.QueueTracks()), m.listHeight())
	}
}

// HandleAction applies a track list action. The bool reports whether the
// action belonged to the panel.
func (m Model) HandleAction(a keymap.Action) (Model, tea.Cmd, bool) {
	n := len(m.source.QueueTracks())

	if a == keymap.ActionSelect {
		if n == 0 {
			return m, nil, true
		}
		idx := m.cursor.Pos()
		return m, func() tea.Msg { return SelectMsg{Index: idx} }, true
	}

	return m, nil, m.cursor.Apply(a, n, m.listHeight())
}

// RowAt maps a y coordinate relative to the panel top to a track index,
// or -1 when it falls outside the list.
func (m Model) RowAt(y int) int {
	row := y - (ui.PanelOverhead - 1) // top border, header, separator
	if row < 0 || row >= m.listHeight() {
		return -1
	}
	idx := m.cursor.Offset() + row
	if idx >= len(m.source.QueueTracks()) {
		return -1
	}
	return idx
}

// Highlight moves the highlight to idx without scrolling past it.
func (m *Model) Highlight(idx int) {
	m.cursor.Jump(idx, len(m.source.QueueTracks()), m.listHeight())
}

func (m Model) listHeight() int {
	return m.ListHeight(ui.PanelOverhead)
}
