// Package playback is the transport controller: it turns play, pause, stop,
// seek and navigation requests into engine calls, keeping the engine and the
// playlist cursor consistent.
//
// A Service is owned by a single goroutine (the UI loop). Subscribers only
// read from event channels, which never block the service.
package playback

import (
	"time"

	"github.com/lagu-player/lagu/internal/player"
)

// Service defines the transport contract.
type Service interface {
	// Transport control. Requests that make no sense in the current state
	// (nothing loaded, edge of the playlist) are ignored and return nil.
	Play() error
	Pause() error
	Stop() error
	Next() error
	Previous() error
	JumpTo(index int) error
	SeekTo(position time.Duration) error
	LoadAndPlay(track Track) error

	// Output level (0..1) and mute. Both outlive track changes.
	SetVolume(level float64)
	Volume() float64
	SetMuted(muted bool)
	Muted() bool

	// Append adds tracks and starts the first one if nothing was selected.
	Append(tracks ...Track) error

	// HandleTrackFinished reacts to the engine reaching the end of a track.
	HandleTrackFinished() error

	// State queries
	State() State
	Position() time.Duration
	Duration() time.Duration
	CurrentTrack() *Track
	Player() player.Interface

	// Queue queries
	QueueTracks() []Track
	QueueCurrentIndex() int
	QueueLen() int
	QueueIsEmpty() bool
	QueueHasNext() bool
	QueueHasPrevious() bool

	Subscribe() *Subscription
	Close() error
}
