package app

import (
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/lagu-player/lagu/internal/errmsg"
	"github.com/lagu-player/lagu/internal/playback"
	"github.com/lagu-player/lagu/internal/session"
	"github.com/lagu-player/lagu/internal/ui/chooser"
	"github.com/lagu-player/lagu/internal/ui/helpbindings"
	"github.com/lagu-player/lagu/internal/ui/queuepanel"
)

// Update handles messages and returns the updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		m.tick(time.Time(msg))
		return m, TickCmd(m.pollInterval)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case IntentMsg:
		return m.dispatch(msg.Intent)

	case TrackFinishedMsg:
		var cmd tea.Cmd
		m, cmd = m.dispatch(session.TrackFinished{})
		return m, tea.Batch(cmd, m.WatchTrackFinished())

	case queuepanel.SelectMsg:
		return m.dispatch(session.SelectTrack{Index: msg.Index})

	case chooser.SelectedMsg:
		return m.handleChooserSelected(msg)

	case chooser.CancelledMsg:
		m.resize(m.width, m.height)
		return m, nil

	case helpbindings.CloseMsg:
		m.showHelp = false
		return m, nil

	case StderrMsg:
		m.setError(msg.Line)
		return m, WatchStderr(m.stderr)

	case ServiceTrackChangedMsg:
		m.handleTrackChanged(msg.TrackChange)
		return m, m.WatchServiceEvents()

	case ServiceErrorMsg:
		m.handleServiceError(msg.ErrorEvent)
		return m, m.WatchServiceEvents()

	case ServiceStateChangedMsg, ServiceQueueChangedMsg, ServicePositionMsg:
		return m, m.WatchServiceEvents()

	case ServiceClosedMsg:
		return m, nil
	}

	// Everything else (directory listings) belongs to the chooser.
	if m.chooser.IsOpen() {
		var cmd tea.Cmd
		m.chooser, cmd = m.chooser.Update(msg)
		return m, cmd
	}
	return m, nil
}

// dispatch hands an intent to the session and applies its result.
func (m Model) dispatch(in session.Intent) (Model, tea.Cmd) {
	res := m.session.Dispatch(in)
	return m.apply(res)
}

func (m Model) apply(res session.Result) (Model, tea.Cmd) {
	if res.ResetProgress {
		m.slider = 0
	}
	switch {
	case res.Err != nil:
		m.setError(res.Status)
	case res.Status != "":
		m.setStatus(res.Status)
	}

	// Refresh label and slider right away instead of waiting a period.
	m.tick(m.now())

	if res.OpenChooser {
		return m, m.openChooser()
	}
	return m, nil
}

func (m *Model) tick(now time.Time) {
	snap := m.session.Tick(now)
	if snap.SliderUpdated {
		m.slider = snap.SliderValue
	}
	if !snap.Active {
		m.slider = 0
	}
}

func (m *Model) openChooser() tea.Cmd {
	m.showHelp = false
	cmd := m.chooser.Open(m.chooserDir())
	m.resize(m.width, m.height)
	return cmd
}

func (m Model) handleChooserSelected(msg chooser.SelectedMsg) (tea.Model, tea.Cmd) {
	m.saveChooserDir(msg.Dir, msg.Paths)
	m.resize(m.width, m.height)

	m, cmd := m.dispatch(session.AddFiles{Paths: msg.Paths})
	if !m.statusErr && m.status != "" {
		if size := totalSize(msg.Paths); size > 0 {
			m.status += " (" + humanize.Bytes(size) + ")"
		}
	}
	return m, cmd
}

func (m *Model) handleTrackChanged(e playback.TrackChange) {
	m.queue.Follow()
	if m.announcer != nil && e.Current != nil {
		m.announcer.TrackChanged(*e.Current, e.Index, m.session.Service().QueueLen())
	}
}

func (m *Model) handleServiceError(e playback.ErrorEvent) {
	text := errmsg.Format(errmsg.OpPlaybackSeek, e.Err)
	if e.Operation == playback.OpLoad {
		text = errmsg.FormatWith(errmsg.OpTrackLoad, filepath.Base(e.Path), e.Err)
	}
	m.setError(text)
	if m.announcer != nil {
		m.announcer.Error(text)
	}
}

func (m *Model) setStatus(text string) {
	m.status = text
	m.statusErr = false
}

func (m *Model) setError(text string) {
	m.status = text
	m.statusErr = true
}
