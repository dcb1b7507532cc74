//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/lagu-player/lagu/internal/playback"
	"github.com/lagu-player/lagu/internal/playlist"
	"github.com/lagu-player/lagu/internal/session"
)

// StatusSource exposes the playback snapshot. Status must be safe to call
// from D-Bus goroutines.
type StatusSource interface {
	Status() session.Status
}

// Sender delivers an intent to the UI loop.
type Sender func(session.Intent)

// Adapter exposes the player over MPRIS on D-Bus.
// Media key presses become intents; they never touch playback directly.
type Adapter struct {
	server *server.Server
}

// New creates and starts a new MPRIS adapter.
func New(status StatusSource, send Sender) (*Adapter, error) {
	rootAdapter := &rootAdapter{}
	playerAdapter := &playerAdapter{status: status, send: send}

	a := &Adapter{
		server: server.NewServer("lagu", rootAdapter, playerAdapter),
	}

	// Start the server in background
	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - app manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "lagu", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/ogg", "audio/wav"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter.
type playerAdapter struct {
	status StatusSource
	send   Sender
}

func (p *playerAdapter) Next() error {
	p.send(session.Next{})
	return nil
}

func (p *playerAdapter) Previous() error {
	p.send(session.Previous{})
	return nil
}

func (p *playerAdapter) Pause() error {
	p.send(session.Pause{})
	return nil
}

func (p *playerAdapter) PlayPause() error {
	if p.status.Status().State == playback.StatePlaying {
		p.send(session.Pause{})
		return nil
	}
	p.send(session.Play{})
	return nil
}

func (p *playerAdapter) Stop() error {
	p.send(session.Stop{})
	return nil
}

func (p *playerAdapter) Play() error {
	p.send(session.Play{})
	return nil
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	p.send(session.SeekBy{Delta: time.Duration(offset) * time.Microsecond})
	return nil
}

func (p *playerAdapter) SetPosition(trackID string, position types.Microseconds) error {
	st := p.status.Status()
	// Stale track IDs are ignored per the MPRIS contract.
	if st.Track == nil || formatTrackID(st.Track.Path) != trackID {
		return nil
	}
	p.send(session.Seek{Position: time.Duration(position) * time.Microsecond})
	return nil
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	switch p.status.Status().State {
	case playback.StatePlaying:
		return types.PlaybackStatusPlaying, nil
	case playback.StatePaused:
		return types.PlaybackStatusPaused, nil
	case playback.StateStopped:
		return types.PlaybackStatusStopped, nil
	}
	return types.PlaybackStatusStopped, nil
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	st := p.status.Status()
	if st.Track == nil {
		return types.Metadata{}, nil
	}
	track := st.Track

	length := track.Duration
	if st.Duration > 0 {
		length = st.Duration
	}

	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(track.Path)),
		Length:  types.Microseconds(length.Microseconds()),
		Title:   track.Title,
		Album:   track.Album,
	}
	if track.Artist != "" {
		meta.Artist = []string{track.Artist}
	}

	if artPath := playlist.CoverArt(track.Path); artPath != "" {
		meta.ArtUrl = "file://" + artPath
	}

	return meta, nil
}

// Volume reports 0 while muted, as MPRIS has no mute property.
func (p *playerAdapter) Volume() (float64, error) {
	st := p.status.Status()
	if st.Muted {
		return 0, nil
	}
	return st.Volume, nil
}

func (p *playerAdapter) SetVolume(level float64) error {
	p.send(session.SetVolume{Level: level})
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return p.status.Status().Position.Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return p.status.Status().HasNext, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return p.status.Status().HasPrevious, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.status.Status().Len > 0, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return p.status.Status().Track != nil, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return p.status.Status().Track != nil, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

func formatTrackID(path string) string {
	h := fnv.New64a()
	h.Write([]byte(path))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
