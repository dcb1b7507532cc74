package player

import "time"

// Interface is the playback engine contract.
//
// Open loads a track and leaves it stopped at position 0; a failed Open
// leaves the previously loaded track untouched. Play starts a stopped
// track from the beginning, resumes a paused one in place and restarts a
// playing one. Volume and mute survive track changes. All calls are cheap
// and return immediately.
type Interface interface {
	Open(path string) error
	Play()
	Pause()
	Stop()
	State() State
	Position() time.Duration
	Duration() time.Duration
	SetPosition(pos time.Duration)
	SetVolume(level float64)
	Volume() float64
	SetMuted(muted bool)
	Muted() bool
	TrackInfo() *TrackInfo
	FinishedChan() <-chan struct{}
	Close() error
}

// TrackInfo describes the loaded track.
type TrackInfo struct {
	Path       string
	Format     string // "MP3", "FLAC", "OGG" or "WAV"
	SampleRate int
	Duration   time.Duration
}

// Verify Player implements Interface at compile time.
var _ Interface = (*Player)(nil)
