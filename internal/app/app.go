// Package app is the terminal UI: the bubbletea root model that turns key
// presses, mouse gestures and timer ticks into session intents.
package app

import (
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lagu-player/lagu/internal/keymap"
	"github.com/lagu-player/lagu/internal/logging"
	"github.com/lagu-player/lagu/internal/playback"
	"github.com/lagu-player/lagu/internal/playlist"
	"github.com/lagu-player/lagu/internal/session"
	"github.com/lagu-player/lagu/internal/state"
	"github.com/lagu-player/lagu/internal/ui/chooser"
	"github.com/lagu-player/lagu/internal/ui/helpbindings"
	"github.com/lagu-player/lagu/internal/ui/layout"
	"github.com/lagu-player/lagu/internal/ui/playerbar"
	"github.com/lagu-player/lagu/internal/ui/queuepanel"
)

const (
	defaultPollInterval = 500 * time.Millisecond
	defaultSeekStep     = 5 * time.Second
	defaultVolumeStep   = 0.05
)

// Announcer receives playback events worth a desktop notification.
// notify.Desktop implements it.
type Announcer interface {
	TrackChanged(t playlist.Track, index, total int)
	Error(msg string)
}

// Options wires the model to its collaborators.
type Options struct {
	Session   *session.Session
	State     state.Interface
	Announcer Announcer    // nil disables notifications
	Logger    *slog.Logger // nil discards
	Stderr    <-chan string

	// StartupFiles are appended once the UI loop runs.
	StartupFiles []string

	Extensions    []string
	DefaultFolder string
	PollInterval  time.Duration
	SeekStep      time.Duration
	VolumeStep    float64
}

// Model is the root application model.
type Model struct {
	session   *session.Session
	stateMgr  state.Interface
	announcer Announcer
	logger    *slog.Logger
	keys      *keymap.Resolver
	sub       *playback.Subscription
	stderr    <-chan string
	startup   []string

	queue    queuepanel.Model
	chooser  chooser.Model
	help     helpbindings.Model
	showHelp bool

	pollInterval  time.Duration
	seekStep      time.Duration
	volumeStep    float64
	defaultFolder string

	slider    float64 // last value pushed by the poller
	status    string
	statusErr bool

	width   int
	height  int
	regions layout.Regions

	now func() time.Time
}

// New creates the root model.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	stateMgr := opts.State
	if stateMgr == nil {
		stateMgr = state.NewMock()
	}

	m := Model{
		session:       opts.Session,
		stateMgr:      stateMgr,
		announcer:     opts.Announcer,
		logger:        logger,
		keys:          keymap.NewResolver(keymap.All, "global", "playback", "tracklist"),
		sub:           opts.Session.Subscribe(),
		stderr:        opts.Stderr,
		startup:       opts.StartupFiles,
		queue:         queuepanel.New(opts.Session.Service()),
		chooser:       chooser.New(opts.Extensions),
		help:          helpbindings.New(),
		pollInterval:  durationOr(opts.PollInterval, defaultPollInterval),
		seekStep:      durationOr(opts.SeekStep, defaultSeekStep),
		volumeStep:    defaultVolumeStep,
		defaultFolder: opts.DefaultFolder,
		now:           time.Now,
	}
	if opts.VolumeStep > 0 {
		m.volumeStep = opts.VolumeStep
	}
	m.queue.SetFocused(true)
	return m
}

// Init starts the poll loop and the event watchers.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.addStartupFiles(),
		TickCmd(m.pollInterval),
		m.WatchServiceEvents(),
		m.WatchTrackFinished(),
		WatchStderr(m.stderr),
	)
}

func (m Model) addStartupFiles() tea.Cmd {
	if len(m.startup) == 0 {
		return nil
	}
	paths := m.startup
	return func() tea.Msg {
		return IntentMsg{Intent: session.AddFiles{Paths: paths}}
	}
}

// Status returns the status line text and whether it reports an error.
func (m Model) Status() (string, bool) {
	return m.status, m.statusErr
}

// chooserDir picks where the file chooser opens: last directory used,
// then the configured default folder, then the working directory.
func (m Model) chooserDir() string {
	if saved, err := m.stateMgr.GetChooser(); err == nil && saved != nil && isDir(saved.Directory) {
		return saved.Directory
	}
	if isDir(m.defaultFolder) {
		return m.defaultFolder
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

func isDir(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func durationOr(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}

// playerBarState collects what the player bar shows.
func (m Model) playerBarState() playerbar.State {
	st := m.session.Status()
	snap := m.session.Progress()

	s := playerbar.State{
		Playback: st.State,
		Index:    st.Index,
		Total:    st.Len,
		Label:    snap.Label,
		Slider:   m.slider,
		Held:     m.session.Held(),
	}
	if st.Track != nil {
		s.Title = st.Track.Title
		s.Artist = st.Track.Artist
		s.Album = st.Track.Album
	}
	if info := m.session.Service().Player().TrackInfo(); info != nil {
		s.Format = info.Format
		s.SampleRate = info.SampleRate
	}
	if m.session.Dragging() {
		s.Slider = m.session.DragValue()
	}
	return s
}
