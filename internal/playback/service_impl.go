package playback

import (
	"time"

	"github.com/lagu-player/lagu/internal/player"
	"github.com/lagu-player/lagu/internal/playlist"
)

// Verify serviceImpl implements Service at compile time.
var _ Service = (*serviceImpl)(nil)

// Option configures a Service.
type Option func(*serviceImpl)

// WithAutoAdvance controls whether a track that plays to its end starts the
// next one.
func WithAutoAdvance(enabled bool) Option {
	return func(s *serviceImpl) {
		s.autoAdvance = enabled
	}
}

type serviceImpl struct {
	player      player.Interface
	queue       *playlist.PlayingQueue
	autoAdvance bool

	// loaded is the track last opened successfully, loadedIndex its cursor.
	loaded      *Track
	loadedIndex int
	// started is set while the engine runs a track this service started,
	// and cleared by Stop or by a handled finish.
	started bool

	subs   []*Subscription
	closed bool
}

// New creates a playback service over an engine and a queue.
func New(p player.Interface, q *playlist.PlayingQueue, opts ...Option) Service {
	s := &serviceImpl{
		player:      p,
		queue:       q,
		autoAdvance: true,
		loadedIndex: playlist.NoCursor,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Play resumes a paused track, otherwise (re)starts the track under the
// cursor from the beginning. Without a cursor it does nothing.
func (s *serviceImpl) Play() error {
	if s.player.State() == player.Paused {
		prev := s.State()
		s.player.Play()
		s.started = true
		s.emitStateChange(prev)
		return nil
	}

	track := s.queue.Current()
	if track == nil {
		return nil
	}
	return s.LoadAndPlay(*track)
}

// Pause pauses playback when a track is selected.
func (s *serviceImpl) Pause() error {
	if !s.queue.HasCursor() {
		return nil
	}
	prev := s.State()
	s.player.Pause()
	s.emitStateChange(prev)
	return nil
}

// Stop stops the engine and rewinds the displayed progress.
func (s *serviceImpl) Stop() error {
	prev := s.State()
	s.player.Stop()
	s.started = false
	s.emitStateChange(prev)
	s.emitPosition(0)
	return nil
}

// Next moves to the following track and starts it.
func (s *serviceImpl) Next() error {
	return s.moveAndPlay(s.queue.Next)
}

// Previous moves to the preceding track and starts it.
func (s *serviceImpl) Previous() error {
	return s.moveAndPlay(s.queue.Previous)
}

// JumpTo moves to index and starts that track.
func (s *serviceImpl) JumpTo(index int) error {
	return s.moveAndPlay(func() *playlist.Track {
		return s.queue.JumpTo(index)
	})
}

// moveAndPlay applies a cursor move and starts the new track. A move that
// did nothing is a no-op; a move whose track fails to load is undone.
func (s *serviceImpl) moveAndPlay(move func() *playlist.Track) error {
	prevIndex := s.queue.CurrentIndex()
	track := move()
	if track == nil {
		return nil
	}
	if err := s.LoadAndPlay(*track); err != nil {
		s.queue.Restore(prevIndex)
		return err
	}
	s.emitQueueChange()
	return nil
}

// LoadAndPlay opens track in the engine and starts it from 0.
// On failure it returns a *LoadError and publishes an ErrorEvent.
func (s *serviceImpl) LoadAndPlay(track Track) error {
	prevState := s.State()
	if err := s.player.Open(track.Path); err != nil {
		loadErr := &LoadError{Path: track.Path, Err: err}
		s.emitError(ErrorEvent{Operation: OpLoad, Path: track.Path, Err: loadErr})
		return loadErr
	}
	s.player.Play()
	s.started = true

	change := TrackChange{
		Previous:      s.loaded,
		Current:       &track,
		PreviousIndex: s.loadedIndex,
		Index:         s.queue.CurrentIndex(),
	}
	s.loaded = &track
	s.loadedIndex = s.queue.CurrentIndex()

	s.emitTrackChange(change)
	s.emitStateChange(prevState)
	return nil
}

// Append adds tracks to the queue. The first append into an empty selection
// starts playback of the track now under the cursor.
func (s *serviceImpl) Append(tracks ...Track) error {
	start := s.queue.Append(tracks...)
	if len(tracks) > 0 {
		s.emitQueueChange()
	}
	if start == nil {
		return nil
	}
	return s.LoadAndPlay(*start)
}

// SeekTo moves the playing offset of the current track.
func (s *serviceImpl) SeekTo(position time.Duration) error {
	if !s.queue.HasCursor() {
		return nil
	}
	s.player.SetPosition(position)
	s.emitPosition(s.player.Position())
	return nil
}

// SetVolume sets the engine output level, clamped to 0..1.
func (s *serviceImpl) SetVolume(level float64) {
	s.player.SetVolume(player.ClampVolume(level))
}

func (s *serviceImpl) Volume() float64 { return s.player.Volume() }

// SetMuted silences or restores the output; the level is kept.
func (s *serviceImpl) SetMuted(muted bool) {
	s.player.SetMuted(muted)
}

func (s *serviceImpl) Muted() bool { return s.player.Muted() }

// HandleTrackFinished advances to the next track when auto-advance is on.
// At the end of the queue the engine simply stays stopped. A finish signal
// that arrives after the user already stopped or changed tracks is
// ignored: the engine is then either running another track or was stopped
// on purpose.
func (s *serviceImpl) HandleTrackFinished() error {
	if !s.started || s.player.State() != player.Stopped {
		return nil
	}
	s.started = false
	s.emitStateChange(StatePlaying)
	if !s.autoAdvance || !s.queue.HasNext() {
		return nil
	}
	return s.Next()
}

// State returns the current playback state.
func (s *serviceImpl) State() State {
	return FromPlayer(s.player.State())
}

// Position returns the current playback position.
func (s *serviceImpl) Position() time.Duration {
	return s.player.Position()
}

// Duration returns the current track duration.
func (s *serviceImpl) Duration() time.Duration {
	return s.player.Duration()
}

// CurrentTrack returns the track under the cursor, or nil.
func (s *serviceImpl) CurrentTrack() *Track {
	return s.queue.Current()
}

// Player returns the engine (for rendering only).
func (s *serviceImpl) Player() player.Interface {
	return s.player
}

func (s *serviceImpl) QueueTracks() []Track   { return s.queue.Tracks() }
func (s *serviceImpl) QueueCurrentIndex() int { return s.queue.CurrentIndex() }
func (s *serviceImpl) QueueLen() int          { return s.queue.Len() }
func (s *serviceImpl) QueueIsEmpty() bool     { return s.queue.IsEmpty() }
func (s *serviceImpl) QueueHasNext() bool     { return s.queue.HasNext() }
func (s *serviceImpl) QueueHasPrevious() bool { return s.queue.HasPrevious() }

// Subscribe creates a new event subscription.
func (s *serviceImpl) Subscribe() *Subscription {
	sub := newSubscription()
	if s.closed {
		sub.close()
		return sub
	}
	s.subs = append(s.subs, sub)
	return sub
}

// Close stops the engine and signals subscribers. Safe to call twice.
func (s *serviceImpl) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	for _, sub := range s.subs {
		sub.close()
	}
	s.subs = nil
	return s.player.Close()
}

func (s *serviceImpl) emitStateChange(prev State) {
	cur := s.State()
	if cur == prev {
		return
	}
	for _, sub := range s.subs {
		sub.sendState(StateChange{Previous: prev, Current: cur})
	}
}

func (s *serviceImpl) emitTrackChange(e TrackChange) {
	for _, sub := range s.subs {
		sub.sendTrack(e)
	}
}

func (s *serviceImpl) emitPosition(pos time.Duration) {
	for _, sub := range s.subs {
		sub.sendPosition(pos)
	}
}

func (s *serviceImpl) emitQueueChange() {
	e := QueueChange{Tracks: s.queue.Tracks(), Index: s.queue.CurrentIndex()}
	for _, sub := range s.subs {
		sub.sendQueue(e)
	}
}

func (s *serviceImpl) emitError(e ErrorEvent) {
	for _, sub := range s.subs {
		sub.sendError(e)
	}
}
