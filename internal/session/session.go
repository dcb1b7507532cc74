// Package session is the single dispatcher between UI surfaces and playback.
//
// Every surface (the terminal UI, media keys, the command line) turns its
// input into an Intent and hands it to Dispatch. Dispatch runs on the UI
// loop; other goroutines only read the published Status.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"path/filepath"
	"sync"
	"time"

	"github.com/lagu-player/lagu/internal/errmsg"
	"github.com/lagu-player/lagu/internal/playback"
	"github.com/lagu-player/lagu/internal/playlist"
	"github.com/lagu-player/lagu/internal/progress"
)

// Config holds the session tunables.
type Config struct {
	// Extensions filters AddFiles. Nil means playlist.DefaultExtensions.
	Extensions    []string
	GateOnPlaying bool
	SeekTolerance time.Duration
	SeekSettle    time.Duration
}

// Result tells the UI what to do after a dispatch.
type Result struct {
	OpenChooser   bool
	ResetProgress bool
	Status        string
	Err           error
}

// Status is a snapshot of playback for outer surfaces.
type Status struct {
	State       playback.State
	Track       *playlist.Track
	Index       int
	Len         int
	Position    time.Duration
	Duration    time.Duration
	HasNext     bool
	HasPrevious bool
	Volume      float64
	Muted       bool
}

// Session owns the transport, the poller and the seek bridge.
type Session struct {
	svc        playback.Service
	poller     *progress.Poller
	bridge     *progress.Bridge
	logger     *slog.Logger
	extensions []string

	// Overridable in tests.
	now       func() time.Time
	loadTrack func(path string) playlist.Track

	mu     sync.RWMutex
	status Status
}

// New creates a session over svc. A nil logger discards log output.
func New(svc playback.Service, logger *slog.Logger, cfg Config) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	bridge := progress.NewBridge(svc)
	if cfg.SeekTolerance > 0 {
		bridge.Tolerance = cfg.SeekTolerance
	}
	if cfg.SeekSettle > 0 {
		bridge.Window = cfg.SeekSettle
	}

	s := &Session{
		svc:        svc,
		poller:     progress.NewPoller(svc, bridge, progress.Options{GateOnPlaying: cfg.GateOnPlaying}),
		bridge:     bridge,
		logger:     logger,
		extensions: cfg.Extensions,
		now:        time.Now,
		loadTrack:  playlist.FromPath,
	}
	s.publish()
	return s
}

// Dispatch handles one intent.
func (s *Session) Dispatch(in Intent) Result {
	res := s.dispatch(in)
	s.publish()
	return res
}

func (s *Session) dispatch(in Intent) Result {
	switch in := in.(type) {
	case Open:
		return Result{OpenChooser: true}
	case Play:
		return s.fail(errmsg.OpPlaybackStart, s.svc.Play())
	case Pause:
		return s.fail(errmsg.OpPlaybackPause, s.svc.Pause())
	case Stop:
		s.bridge.Cancel()
		s.poller.Reset()
		res := s.fail(errmsg.OpPlaybackStop, s.svc.Stop())
		res.ResetProgress = true
		return res
	case Next:
		return s.fail(errmsg.OpPlaybackStart, s.svc.Next())
	case Previous:
		return s.fail(errmsg.OpPlaybackStart, s.svc.Previous())
	case Seek:
		return s.seek(in.Position)
	case SeekBy:
		return s.seek(s.svc.Position() + in.Delta)
	case SetVolume:
		return s.setVolume(in.Level)
	case ChangeVolume:
		return s.setVolume(s.svc.Volume() + in.Delta)
	case ToggleMute:
		muted := !s.svc.Muted()
		s.svc.SetMuted(muted)
		if muted {
			return Result{Status: "Muted"}
		}
		return Result{Status: volumeStatus(s.svc.Volume())}
	case SelectTrack:
		return s.fail(errmsg.OpPlaybackStart, s.svc.JumpTo(in.Index))
	case AddFiles:
		return s.addFiles(in.Paths)
	case TrackFinished:
		return s.fail(errmsg.OpPlaybackAdvance, s.svc.HandleTrackFinished())
	default:
		return Result{}
	}
}

func (s *Session) seek(pos time.Duration) Result {
	if s.svc.QueueCurrentIndex() == playlist.NoCursor {
		return Result{}
	}
	pos = max(pos, 0)
	if dur := s.svc.Duration(); dur > 0 && pos > dur {
		pos = dur
	}
	return s.fail(errmsg.OpPlaybackSeek, s.bridge.Seek(pos, s.now()))
}

// setVolume applies level and lifts a mute, since a level change is
// meant to be heard.
func (s *Session) setVolume(level float64) Result {
	s.svc.SetVolume(level)
	s.svc.SetMuted(false)
	return Result{Status: volumeStatus(s.svc.Volume())}
}

func volumeStatus(level float64) string {
	return fmt.Sprintf("Volume %d%%", int(math.Round(level*100)))
}

func (s *Session) addFiles(paths []string) Result {
	tracks := make([]playlist.Track, 0, len(paths))
	skipped := 0
	for _, p := range paths {
		if !playlist.IsMusicFile(p, s.extensions) {
			skipped++
			continue
		}
		tracks = append(tracks, s.loadTrack(p))
	}
	if skipped > 0 {
		s.logger.Info("skipped unsupported files", "count", skipped)
	}
	if len(tracks) == 0 {
		if skipped > 0 {
			return Result{Status: "No supported music files selected"}
		}
		return Result{}
	}

	s.logger.Info("tracks added", "count", len(tracks))
	if err := s.svc.Append(tracks...); err != nil {
		return s.fail(errmsg.OpTrackAdd, err)
	}
	return Result{Status: addedStatus(len(tracks))}
}

func addedStatus(n int) string {
	if n == 1 {
		return "Added 1 track"
	}
	return fmt.Sprintf("Added %d tracks", n)
}

// fail turns err into a logged, user-facing result. A nil err is success.
func (s *Session) fail(op errmsg.Op, err error) Result {
	if err == nil {
		return Result{}
	}

	var loadErr *playback.LoadError
	if errors.As(err, &loadErr) {
		s.logger.Error("track load failed", "path", loadErr.Path, "error", loadErr.Err)
		return Result{
			Status: errmsg.FormatWith(errmsg.OpTrackLoad, filepath.Base(loadErr.Path), loadErr.Err),
			Err:    err,
		}
	}

	s.logger.Error("playback command failed", "op", string(op), "error", err)
	return Result{Status: errmsg.Format(op, err), Err: err}
}

// Tick runs one poll of the progress poller.
func (s *Session) Tick(now time.Time) progress.Snapshot {
	snap := s.poller.Tick(now)
	s.publish()
	return snap
}

// Progress returns the last poll result.
func (s *Session) Progress() progress.Snapshot {
	return s.poller.Last()
}

// BeginDrag starts a slider drag at fraction v.
func (s *Session) BeginDrag(v float64) {
	if s.svc.QueueCurrentIndex() == playlist.NoCursor {
		return
	}
	s.bridge.BeginDrag(v)
}

// Drag moves a slider drag to fraction v.
func (s *Session) Drag(v float64) {
	s.bridge.Drag(v)
}

// ReleaseDrag ends a slider drag at fraction v and seeks there.
func (s *Session) ReleaseDrag(v float64) Result {
	res := s.fail(errmsg.OpPlaybackSeek, s.bridge.Release(v, s.svc.Duration(), s.now()))
	s.publish()
	return res
}

// CancelDrag drops a slider drag without seeking.
func (s *Session) CancelDrag() {
	s.bridge.Cancel()
}

// Dragging reports whether the slider is owned by the user.
func (s *Session) Dragging() bool {
	return s.bridge.Dragging()
}

// Held reports whether a drag is in progress (mouse button down).
func (s *Session) Held() bool {
	return s.bridge.Held()
}

// DragValue returns the slider fraction chosen by the user.
func (s *Session) DragValue() float64 {
	return s.bridge.Value()
}

// Service exposes the transport for read-only rendering.
func (s *Session) Service() playback.Service {
	return s.svc
}

// Subscribe returns a playback event subscription.
func (s *Session) Subscribe() *playback.Subscription {
	return s.svc.Subscribe()
}

// Status returns the last published snapshot. Safe from any goroutine.
func (s *Session) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

func (s *Session) publish() {
	st := Status{
		State:       s.svc.State(),
		Track:       s.svc.CurrentTrack(),
		Index:       s.svc.QueueCurrentIndex(),
		Len:         s.svc.QueueLen(),
		Position:    s.svc.Position(),
		Duration:    s.svc.Duration(),
		HasNext:     s.svc.QueueHasNext(),
		HasPrevious: s.svc.QueueHasPrevious(),
		Volume:      s.svc.Volume(),
		Muted:       s.svc.Muted(),
	}
	s.mu.Lock()
	s.status = st
	s.mu.Unlock()
}

// Close shuts down playback.
func (s *Session) Close() error {
	return s.svc.Close()
}
