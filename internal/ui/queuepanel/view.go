package queuepanel

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lagu-player/lagu/internal/playlist"
	"github.com/lagu-player/lagu/internal/timefmt"
	"github.com/lagu-player/lagu/internal/ui/render"
	"github.com/lagu-player/lagu/internal/ui/styles"
)

const (
	playingSymbol = "▶"
	emptyHint     = "No tracks. Press o to add music files."
	durationWidth = 6 // "MM:SS" plus a leading space
)

// View renders the panel.
func (m Model) View() string {
	if m.Unsized() {
		return ""
	}

	innerWidth := m.InnerWidth()
	listHeight := m.listHeight()
	tracks := m.source.QueueTracks()

	content := m.renderHeader(len(tracks), innerWidth) + "\n" +
		render.Separator(innerWidth) + "\n" +
		m.renderTrackList(tracks, innerWidth, listHeight)

	return styles.PanelStyle(m.IsFocused()).
		Width(innerWidth).
		Render(content)
}

func (m Model) renderHeader(total, innerWidth int) string {
	current := m.source.QueueCurrentIndex() + 1
	text := fmt.Sprintf("Playlist (%d/%d)", current, total)
	return styles.T().S().Title.Render(render.TruncateAndPad(text, innerWidth))
}

func (m Model) renderTrackList(tracks []playlist.Track, innerWidth, listHeight int) string {
	if listHeight <= 0 {
		return ""
	}

	lines := make([]string, 0, listHeight)
	if len(tracks) == 0 {
		lines = append(lines, styles.T().S().Muted.Render(render.TruncateAndPad(
			render.Center(emptyHint, innerWidth), innerWidth)))
	}

	start, end := m.cursor.VisibleRange(len(tracks), listHeight)
	playingIdx := m.source.QueueCurrentIndex()
	for idx := start; idx < end; idx++ {
		lines = append(lines, m.renderTrackLine(tracks[idx], idx, playingIdx, innerWidth))
	}

	for len(lines) < listHeight {
		lines = append(lines, strings.Repeat(" ", innerWidth))
	}

	return strings.Join(lines, "\n")
}

// renderTrackLine renders "▶ title  artist  MM:SS" padded to width.
func (m Model) renderTrackLine(track playlist.Track, idx, playingIdx, width int) string {
	prefix := "  "
	if idx == playingIdx {
		prefix = playingSymbol + " "
	}

	duration := ""
	if track.Duration > 0 {
		duration = " " + timefmt.Duration(track.Duration)
	}

	contentWidth := max(width-lipgloss.Width(prefix)-durationWidth, 0)
	titleWidth := contentWidth / 2
	artistWidth := contentWidth - titleWidth

	line := prefix +
		render.TruncateAndPad(trackTitle(track), titleWidth) +
		render.TruncateAndPad(track.Artist, artistWidth) +
		render.Pad(duration, durationWidth)

	return m.trackStyle(idx, playingIdx).Render(line)
}

func (m Model) trackStyle(idx, playingIdx int) lipgloss.Style {
	s := styles.T().S()
	isCursor := idx == m.cursor.Pos() && m.IsFocused()
	isPlaying := idx == playingIdx

	switch {
	case isCursor && isPlaying:
		return s.Cursor.Inherit(s.Playing)
	case isCursor:
		return s.Cursor
	case isPlaying:
		return s.Playing
	default:
		return s.Base
	}
}

func trackTitle(t playlist.Track) string {
	if t.Title != "" {
		return t.Title
	}
	return filepath.Base(t.Path)
}
