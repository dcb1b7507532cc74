package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lagu-player/lagu/internal/playback"
	"github.com/lagu-player/lagu/internal/player"
	"github.com/lagu-player/lagu/internal/playlist"
	"github.com/lagu-player/lagu/internal/session"
	"github.com/lagu-player/lagu/internal/state"
	"github.com/lagu-player/lagu/internal/ui/chooser"
	"github.com/lagu-player/lagu/internal/ui/playerbar"
	"github.com/lagu-player/lagu/internal/ui/testutil"
)

// recordingAnnouncer records notification requests.
type recordingAnnouncer struct {
	tracks []playlist.Track
	errors []string
}

func (r *recordingAnnouncer) TrackChanged(t playlist.Track, _, _ int) {
	r.tracks = append(r.tracks, t)
}

func (r *recordingAnnouncer) Error(msg string) {
	r.errors = append(r.errors, msg)
}

type harness struct {
	m         Model
	mock      *player.Mock
	state     *state.Mock
	announcer *recordingAnnouncer
	dir       string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		mock:      player.NewMock(),
		state:     state.NewMock(),
		announcer: &recordingAnnouncer{},
		dir:       t.TempDir(),
	}
	svc := playback.New(h.mock, playlist.NewQueue(), playback.WithAutoAdvance(true))
	sess := session.New(svc, nil, session.Config{GateOnPlaying: true})
	t.Cleanup(func() { _ = sess.Close() })

	h.m = New(Options{
		Session:       sess,
		State:         h.state,
		Announcer:     h.announcer,
		DefaultFolder: h.dir,
	})
	h.send(tea.WindowSizeMsg{Width: 80, Height: 30})
	return h
}

// send runs msg through Update and returns the command.
func (h *harness) send(msg tea.Msg) tea.Cmd {
	next, cmd := h.m.Update(msg)
	h.m = next.(Model)
	return cmd
}

func (h *harness) key(k string) tea.Cmd {
	switch k {
	case " ":
		return h.send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	case "enter":
		return h.send(tea.KeyMsg{Type: tea.KeyEnter})
	case "esc":
		return h.send(tea.KeyMsg{Type: tea.KeyEsc})
	case "left":
		return h.send(tea.KeyMsg{Type: tea.KeyLeft})
	case "ctrl+c":
		return h.send(tea.KeyMsg{Type: tea.KeyCtrlC})
	}
	return h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
}

// files creates music files of size bytes in the harness directory.
func (h *harness) files(t *testing.T, size int, names ...string) []string {
	t.Helper()
	paths := make([]string, 0, len(names))
	for _, n := range names {
		p := filepath.Join(h.dir, n)
		require.NoError(t, os.WriteFile(p, make([]byte, size), 0o600))
		paths = append(paths, p)
	}
	return paths
}

func (h *harness) add(t *testing.T, names ...string) []string {
	t.Helper()
	paths := h.files(t, 10, names...)
	h.send(chooser.SelectedMsg{Paths: paths, Dir: h.dir})
	return paths
}

func (h *harness) playbackState() playback.State {
	return h.m.session.Status().State
}

func TestOpenKey_ShowsChooserAtDefaultFolder(t *testing.T) {
	h := newHarness(t)

	cmd := h.key("o")

	require.NotNil(t, cmd)
	assert.True(t, h.m.chooser.IsOpen())
	assert.Equal(t, h.dir, h.m.chooser.Dir())
	assert.Zero(t, h.mock.Calls())
}

func TestOpenKey_UsesSavedDirectory(t *testing.T) {
	h := newHarness(t)
	saved := t.TempDir()
	h.state.SaveChooser(state.ChooserState{Directory: saved})

	h.key("o")

	assert.Equal(t, saved, h.m.chooser.Dir())
}

func TestChooserCancel_LeavesPlaylistAlone(t *testing.T) {
	h := newHarness(t)
	h.key("o")

	cmd := h.key("esc")
	require.NotNil(t, cmd)
	h.send(cmd())

	assert.False(t, h.m.chooser.IsOpen())
	assert.Equal(t, 0, h.m.session.Service().QueueLen())
	assert.Zero(t, h.mock.Calls())
	assert.Zero(t, h.state.Saves())
}

func TestChooserSelected_AddsAndAutoStarts(t *testing.T) {
	h := newHarness(t)
	paths := h.files(t, 1000, "a.mp3", "b.mp3")

	h.send(chooser.SelectedMsg{Paths: paths, Dir: h.dir})

	assert.Equal(t, 2, h.m.session.Service().QueueLen())
	assert.Equal(t, paths[0], h.mock.Loaded())
	assert.Equal(t, playback.StatePlaying, h.playbackState())

	status, isErr := h.m.Status()
	assert.False(t, isErr)
	assert.Equal(t, "Added 2 tracks (2.0 kB)", status)

	assert.Equal(t, 1, h.state.Saves())
	saved, err := h.state.GetChooser()
	require.NoError(t, err)
	assert.Equal(t, h.dir, saved.Directory)
	assert.Equal(t, "b.mp3", saved.LastFile)
}

func TestPlayPauseKey(t *testing.T) {
	h := newHarness(t)
	h.add(t, "a.mp3")

	h.key(" ")
	assert.Equal(t, playback.StatePaused, h.playbackState())

	h.key(" ")
	assert.Equal(t, playback.StatePlaying, h.playbackState())
}

func TestPlayKey_EmptyPlaylistDoesNothing(t *testing.T) {
	h := newHarness(t)

	h.key("p")
	h.key(" ")
	h.key("n")

	assert.Zero(t, h.mock.Calls())
	assert.Equal(t, playback.StateStopped, h.playbackState())
}

func TestNextPrevKeys(t *testing.T) {
	h := newHarness(t)
	paths := h.add(t, "a.mp3", "b.mp3")

	h.key("n")
	assert.Equal(t, paths[1], h.mock.Loaded())

	h.key("n") // at the end
	assert.Equal(t, 1, h.m.session.Status().Index)

	h.key("b")
	assert.Equal(t, paths[0], h.mock.Loaded())
}

func TestStopKey_ResetsSlider(t *testing.T) {
	h := newHarness(t)
	h.mock.SetTrackDuration(filepath.Join(h.dir, "a.mp3"), 200*time.Second)
	h.add(t, "a.mp3")
	h.mock.SetPlayhead(100 * time.Second)
	h.send(TickMsg(time.Now()))
	require.InDelta(t, 0.5, h.m.slider, 1e-9)

	h.key("s")

	assert.Equal(t, playback.StateStopped, h.playbackState())
	assert.Zero(t, h.m.slider)
	assert.Contains(t, testutil.StripANSI(h.m.View()), "00:00 / 03:20")
}

func TestTick_UpdatesSliderAndLabel(t *testing.T) {
	h := newHarness(t)
	h.mock.SetTrackDuration(filepath.Join(h.dir, "a.mp3"), 200*time.Second)
	h.add(t, "a.mp3")
	h.mock.SetPlayhead(50 * time.Second)

	cmd := h.send(TickMsg(time.Now()))

	assert.NotNil(t, cmd, "poll loop continues")
	assert.InDelta(t, 0.25, h.m.slider, 1e-9)
	assert.Contains(t, testutil.StripANSI(h.m.View()), "00:50 / 03:20")
}

func TestTick_PausedFreezesSlider(t *testing.T) {
	h := newHarness(t)
	h.mock.SetTrackDuration(filepath.Join(h.dir, "a.mp3"), 200*time.Second)
	h.add(t, "a.mp3")
	h.mock.SetPlayhead(50 * time.Second)
	h.send(TickMsg(time.Now()))
	h.key("P")

	h.mock.SetPlayhead(150 * time.Second)
	h.send(TickMsg(time.Now()))

	assert.InDelta(t, 0.25, h.m.slider, 1e-9)
	assert.Contains(t, testutil.StripANSI(h.m.View()), "02:30 / 03:20")
}

func TestSeekKeys(t *testing.T) {
	h := newHarness(t)
	h.mock.SetTrackDuration(filepath.Join(h.dir, "a.mp3"), 200*time.Second)
	h.add(t, "a.mp3")
	h.mock.SetPlayhead(50 * time.Second)

	h.key("l")
	h.key("left")

	assert.Equal(t, []time.Duration{55 * time.Second, 50 * time.Second}, h.mock.SeekCalls())
}

func TestSeekKeys_WhilePausedMovesSlider(t *testing.T) {
	h := newHarness(t)
	h.mock.SetTrackDuration(filepath.Join(h.dir, "a.mp3"), 200*time.Second)
	h.add(t, "a.mp3")
	h.mock.SetPlayhead(50 * time.Second)
	h.send(TickMsg(time.Now()))
	h.key("P")
	require.Equal(t, playback.StatePaused, h.playbackState())

	for range 10 {
		h.key("l")
	}

	assert.Equal(t, playback.StatePaused, h.playbackState())
	assert.InDelta(t, 0.5, h.m.slider, 1e-9)
	assert.Contains(t, testutil.StripANSI(h.m.View()), "01:40 / 03:20")
}

func TestVolumeKeys(t *testing.T) {
	h := newHarness(t)
	h.add(t, "a.mp3")

	h.key("-")
	h.key("-")
	assert.InDelta(t, 0.9, h.mock.Volume(), 1e-9)
	assert.Equal(t, "Volume 90%", h.m.status)

	h.key("m")
	assert.True(t, h.mock.Muted())
	assert.Equal(t, "Muted", h.m.status)

	h.key("+")
	assert.False(t, h.mock.Muted(), "a level change unmutes")
	assert.InDelta(t, 0.95, h.m.session.Status().Volume, 1e-9)
}

func TestMouseDrag_SeeksOnceOnRelease(t *testing.T) {
	h := newHarness(t)
	h.mock.SetTrackDuration(filepath.Join(h.dir, "a.mp3"), 200*time.Second)
	h.add(t, "a.mp3")

	layout := playerbar.SliderLayout(h.m.playerBarState(), h.m.width)
	y := h.m.regions.PlayerBarTop + layout.Row
	half := layout.Start + (layout.Width-1)/2

	h.send(tea.MouseMsg{X: layout.Start, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.True(t, h.m.session.Held())

	h.send(tea.MouseMsg{X: half, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	assert.Empty(t, h.mock.SeekCalls(), "dragging does not seek")
	assert.True(t, h.m.playerBarState().Held)

	h.send(tea.MouseMsg{X: half, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	require.Len(t, h.mock.SeekCalls(), 1)
	want := time.Duration(layout.ValueAt(half) * float64(200*time.Second))
	assert.Equal(t, want, h.mock.SeekCalls()[0])
	assert.False(t, h.m.session.Held())
}

func TestMouseRelease_WithoutPressIgnored(t *testing.T) {
	h := newHarness(t)
	h.add(t, "a.mp3")
	calls := h.mock.Calls()

	h.send(tea.MouseMsg{X: 10, Y: 26, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	assert.Equal(t, calls, h.mock.Calls())
}

func TestMouseClick_QueueHighlightThenSelect(t *testing.T) {
	h := newHarness(t)
	paths := h.add(t, "a.mp3", "b.mp3")

	row, _ := testutil.Locate(h.m.View(), "b.mp3")
	require.Positive(t, row)

	click := tea.MouseMsg{X: 5, Y: row, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	h.send(click)
	assert.Equal(t, 1, h.m.queue.Cursor())
	assert.Equal(t, paths[0], h.mock.Loaded())

	h.send(click)
	assert.Equal(t, paths[1], h.mock.Loaded())
}

func TestEnterKey_PlaysHighlightedTrack(t *testing.T) {
	h := newHarness(t)
	paths := h.add(t, "a.mp3", "b.mp3", "c.mp3")

	h.key("j")
	h.key("j")
	cmd := h.key("enter")
	require.NotNil(t, cmd)
	h.send(cmd())

	assert.Equal(t, paths[2], h.mock.Loaded())
	assert.Equal(t, 2, h.m.session.Status().Index)
}

func TestLoadError_ShowsStatusAndKeepsCursor(t *testing.T) {
	h := newHarness(t)
	h.mock.SetOpenError(filepath.Join(h.dir, "b.mp3"), errors.New("bad header"))
	h.add(t, "a.mp3", "b.mp3")

	h.key("n")

	status, isErr := h.m.Status()
	assert.True(t, isErr)
	assert.Equal(t, "Failed to load track 'b.mp3': bad header", status)
	assert.Equal(t, 0, h.m.session.Status().Index)
	assert.Equal(t, playback.StatePlaying, h.playbackState())
}

func TestServiceError_NotifiesAndShowsStatus(t *testing.T) {
	h := newHarness(t)

	cmd := h.send(ServiceErrorMsg{playback.ErrorEvent{
		Operation: playback.OpLoad,
		Path:      "/m/x.flac",
		Err:       errors.New("unsupported"),
	}})

	assert.NotNil(t, cmd, "keeps watching events")
	status, isErr := h.m.Status()
	assert.True(t, isErr)
	assert.Equal(t, "Failed to load track 'x.flac': unsupported", status)
	assert.Equal(t, []string{status}, h.announcer.errors)
}

func TestServiceTrackChanged_Announces(t *testing.T) {
	h := newHarness(t)
	track := playlist.Track{Path: "/m/a.mp3", Title: "A"}

	cmd := h.send(ServiceTrackChangedMsg{playback.TrackChange{Current: &track, Index: 0}})

	assert.NotNil(t, cmd)
	assert.Equal(t, []playlist.Track{track}, h.announcer.tracks)
}

func TestWatchServiceEvents_DeliversTrackChange(t *testing.T) {
	h := newHarness(t)
	h.add(t, "a.mp3")

	msg := h.m.WatchServiceEvents()()

	// The first event of an auto-start is the state or track change.
	switch msg.(type) {
	case ServiceStateChangedMsg, ServiceTrackChangedMsg, ServiceQueueChangedMsg:
	default:
		t.Fatalf("unexpected message %T", msg)
	}
}

func TestTrackFinished_AdvancesAndRewatches(t *testing.T) {
	h := newHarness(t)
	paths := h.add(t, "a.mp3", "b.mp3")

	h.mock.SimulateFinished()
	msg := h.m.WatchTrackFinished()()
	require.Equal(t, TrackFinishedMsg{}, msg)

	cmd := h.send(msg)

	assert.NotNil(t, cmd)
	assert.Equal(t, paths[1], h.mock.Loaded())
	assert.Equal(t, playback.StatePlaying, h.playbackState())
}

func TestTrackFinished_StaleSignalAfterNextIsIgnored(t *testing.T) {
	h := newHarness(t)
	paths := h.add(t, "a.mp3", "b.mp3", "c.mp3")

	h.mock.SimulateFinished()
	msg := h.m.WatchTrackFinished()()
	h.key("n")
	h.send(msg)

	assert.Equal(t, paths[1], h.mock.Loaded())
	assert.Equal(t, 1, h.m.session.Status().Index)
}

func TestIntentMsg_Dispatches(t *testing.T) {
	h := newHarness(t)
	paths := h.add(t, "a.mp3", "b.mp3")

	h.send(IntentMsg{Intent: session.Next{}})

	assert.Equal(t, paths[1], h.mock.Loaded())
}

func TestStderrMsg_ShowsLine(t *testing.T) {
	h := newHarness(t)
	lines := make(chan string, 1)
	h.m.stderr = lines

	cmd := h.send(StderrMsg{Line: "ALSA lib: underrun"})

	status, isErr := h.m.Status()
	assert.True(t, isErr)
	assert.Equal(t, "ALSA lib: underrun", status)
	require.NotNil(t, cmd)
	lines <- "next"
	assert.Equal(t, StderrMsg{Line: "next"}, cmd())
}

func TestWatchStderr_ClosedChannel(t *testing.T) {
	lines := make(chan string)
	close(lines)

	assert.Nil(t, WatchStderr(lines)())
	assert.Nil(t, WatchStderr(nil))
}

func TestHelpKey_TogglesPanel(t *testing.T) {
	h := newHarness(t)

	h.key("?")
	require.True(t, h.m.showHelp)
	assert.Contains(t, testutil.StripANSI(h.m.View()), "Track List")

	// playback keys are swallowed while help is open
	h.key("p")
	assert.Zero(t, h.mock.Calls())

	cmd := h.key("?")
	require.NotNil(t, cmd)
	h.send(cmd())
	assert.False(t, h.m.showHelp)
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			h := newHarness(t)
			cmd := h.key(k)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestView_Layout(t *testing.T) {
	h := newHarness(t)
	h.add(t, "a.mp3", "b.mp3")

	lines := testutil.PlainLines(h.m.View())

	assert.Len(t, lines, 30)
	assert.Contains(t, lines[0], "lagu")
	assert.Contains(t, lines[0], "2 tracks")
	assert.Contains(t, testutil.StripANSI(h.m.View()), "Playlist (1/2)")
	assert.Contains(t, lines[h.m.regions.StatusRow], "Added 2 tracks")
	assert.Contains(t, lines[h.m.regions.HelpRow], "space play/pause")
}

func TestView_EmptyBeforeSize(t *testing.T) {
	h := newHarness(t)
	h.m.width = 0

	assert.Empty(t, h.m.View())
}

func TestInit_AddsStartupFiles(t *testing.T) {
	h := newHarness(t)
	paths := h.files(t, 10, "a.mp3", "b.mp3")
	h.m.startup = paths

	cmd := h.m.addStartupFiles()
	require.NotNil(t, cmd)
	h.send(cmd())

	assert.Equal(t, 2, h.m.session.Service().QueueLen())
	assert.Equal(t, paths[0], h.mock.Loaded())
	assert.NotNil(t, h.m.Init())
}
