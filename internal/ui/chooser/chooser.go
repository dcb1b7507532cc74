// Package chooser is the modal file chooser used to add tracks. It wraps
// the bubbles file picker, limited to music files.
package chooser

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/lagu-player/lagu/internal/keymap"
	"github.com/lagu-player/lagu/internal/playlist"
	"github.com/lagu-player/lagu/internal/ui"
	"github.com/lagu-player/lagu/internal/ui/render"
	"github.com/lagu-player/lagu/internal/ui/styles"
)

var chooserKeys = keymap.NewResolver(keymap.All, "chooser")

// pickerMargin is the number of rows the file picker subtracts from a
// window size message when sizing itself.
const pickerMargin = 5

// SelectedMsg carries the files the user picked and the directory they
// were picked from.
type SelectedMsg struct {
	Paths []string
	Dir   string
}

// CancelledMsg is sent when the chooser is dismissed without a choice.
type CancelledMsg struct{}

// Model is the file chooser panel.
type Model struct {
	ui.Base
	picker     filepicker.Model
	extensions []string
	open       bool
}

// New creates a closed chooser offering files with the given extensions.
func New(extensions []string) Model {
	if extensions == nil {
		extensions = playlist.DefaultExtensions
	}
	return Model{extensions: extensions}
}

// IsOpen reports whether the chooser is showing.
func (m Model) IsOpen() bool {
	return m.open
}

// Dir returns the directory currently shown.
func (m Model) Dir() string {
	return m.picker.CurrentDirectory
}

// Open shows the chooser at dir and returns the command that lists it.
func (m *Model) Open(dir string) tea.Cmd {
	fp := filepicker.New()
	fp.CurrentDirectory = dir
	fp.AllowedTypes = m.extensions
	fp.ShowPermissions = false
	fp.ShowSize = true
	fp.AutoHeight = true
	// esc belongs to the chooser itself
	fp.KeyMap.Back = key.NewBinding(
		key.WithKeys("h", "backspace", "left"),
		key.WithHelp("h", "back"),
	)

	m.picker = fp
	m.open = true
	m.resizePicker()
	return m.picker.Init()
}

// Close hides the chooser.
func (m *Model) Close() {
	m.open = false
}

// SetSize sets the panel dimensions.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	if m.open {
		m.resizePicker()
	}
}

func (m *Model) resizePicker() {
	m.picker, _ = m.picker.Update(tea.WindowSizeMsg{
		Width:  m.Width(),
		Height: m.listHeight() + pickerMargin,
	})
}

// Update routes messages to the picker while the chooser is open.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.open {
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch chooserKeys.Resolve(keyMsg.String()) {
		case keymap.ActionCancel:
			m.open = false
			return m, func() tea.Msg { return CancelledMsg{} }
		case keymap.ActionAddFolder:
			return m.addFolder()
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.open = false
		dir := m.picker.CurrentDirectory
		return m, func() tea.Msg { return SelectedMsg{Paths: []string{path}, Dir: dir} }
	}

	return m, cmd
}

func (m Model) addFolder() (Model, tea.Cmd) {
	dir := m.picker.CurrentDirectory
	paths, err := MusicFiles(dir, m.extensions)
	if err != nil || len(paths) == 0 {
		return m, nil
	}
	m.open = false
	return m, func() tea.Msg { return SelectedMsg{Paths: paths, Dir: dir} }
}

// MusicFiles lists the files in dir with one of the given extensions,
// sorted by name.
func MusicFiles(dir string, extensions []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if playlist.IsMusicFile(path, extensions) {
			paths = append(paths, path)
		}
	}
	slices.Sort(paths)
	return paths, nil
}

// View renders the chooser panel.
func (m Model) View() string {
	if m.Unsized() {
		return ""
	}

	innerWidth := m.InnerWidth()
	s := styles.T().S()

	header := s.Title.Render(render.TruncateAndPad("Open: "+m.picker.CurrentDirectory, innerWidth))

	lines := strings.Split(strings.TrimRight(m.picker.View(), "\n"), "\n")
	listHeight := m.listHeight()
	if len(lines) > listHeight {
		lines = lines[:listHeight]
	}
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, innerWidth, "")
	}
	for len(lines) < listHeight {
		lines = append(lines, "")
	}

	footer := s.Muted.Render(render.TruncateAndPad(
		"enter add  a add folder  h back  l open  esc cancel", innerWidth))

	content := header + "\n" +
		render.Separator(innerWidth) + "\n" +
		strings.Join(lines, "\n") + "\n" +
		footer

	return styles.PanelStyle(true).Width(innerWidth).Render(content)
}

// listHeight leaves room for border, header, separator and footer.
func (m Model) listHeight() int {
	return max(m.ListHeight(ui.PanelOverhead+1), 1)
}
