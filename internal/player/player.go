// Package player is the audio engine: it decodes a single track at a time
// and plays it through the system speaker.
package player

import (
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

// resampleQuality is passed to beep.Resample when a track's sample rate
// differs from the speaker's.
const resampleQuality = 4

var (
	speakerInitialized bool
	speakerSampleRate  beep.SampleRate
)

// Player is a beep-backed engine. It must be driven from a single goroutine;
// only the end-of-stream callback runs on the speaker goroutine, and the
// fields it touches are guarded by the speaker lock.
type Player struct {
	state     State
	track     *decoded
	ctrl      *beep.Ctrl
	volume    *effects.Volume
	trackInfo *TrackInfo

	volumeLevel float64
	muted       bool

	// Guarded by speaker.Lock.
	queued bool // the track's sequence is in the speaker mixer
	ended  bool // the stream drained on its own

	finishedCh chan struct{}
}

// New creates an engine with nothing loaded.
func New() *Player {
	return &Player{
		state:       Stopped,
		volumeLevel: 1,
		finishedCh:  make(chan struct{}, 1),
	}
}

// Open decodes path and makes it the loaded track, stopped at 0.
// On error the previously loaded track is kept as is.
func (p *Player) Open(path string) error {
	track, err := decodeFile(path)
	if err != nil {
		return err
	}

	if !speakerInitialized {
		speakerSampleRate = track.format.SampleRate
		if err := speaker.Init(speakerSampleRate, speakerSampleRate.N(time.Second/10)); err != nil {
			track.close()
			return err
		}
		speakerInitialized = true
	}

	p.release()

	var s beep.Streamer = track.streamer
	if track.format.SampleRate != speakerSampleRate {
		s = beep.Resample(resampleQuality, track.format.SampleRate, speakerSampleRate, track.streamer)
	}

	p.track = track
	p.ctrl = &beep.Ctrl{Streamer: s, Paused: true}
	p.volume = &effects.Volume{
		Streamer: p.ctrl,
		Base:     2,
		Volume:   levelToGain(p.volumeLevel),
		Silent:   p.muted,
	}
	p.trackInfo = &TrackInfo{
		Path:       path,
		Format:     track.kind,
		SampleRate: int(track.format.SampleRate),
		Duration:   track.format.SampleRate.D(track.streamer.Len()),
	}
	p.state = Stopped

	// A finish signal from the previous track must not leak into this one.
	select {
	case <-p.finishedCh:
	default:
	}

	return nil
}

// release drops the loaded track and clears the speaker.
func (p *Player) release() {
	if p.track == nil {
		return
	}
	speaker.Clear()
	speaker.Lock()
	p.queued = false
	p.ended = false
	speaker.Unlock()

	p.track.close()
	p.track = nil
	p.ctrl = nil
	p.volume = nil
	p.trackInfo = nil
	p.state = Stopped
}

// Play starts, resumes or restarts the loaded track.
func (p *Player) Play() {
	if p.ctrl == nil {
		return
	}

	if p.State() == Paused {
		speaker.Lock()
		p.ctrl.Paused = false
		speaker.Unlock()
		p.state = Playing
		return
	}

	speaker.Lock()
	_ = p.track.streamer.Seek(0)
	p.ctrl.Paused = false
	p.ended = false
	needQueue := !p.queued
	p.queued = true
	speaker.Unlock()

	if needQueue {
		speaker.Play(beep.Seq(p.volume, beep.Callback(p.onStreamEnd)))
	}
	p.state = Playing
}

// onStreamEnd runs on the speaker goroutine with the speaker lock held.
func (p *Player) onStreamEnd() {
	p.ended = true
	p.queued = false
	select {
	case p.finishedCh <- struct{}{}:
	default:
	}
}

// Pause pauses a playing track. Anything else is ignored.
func (p *Player) Pause() {
	if p.ctrl == nil || p.State() != Playing {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.state = Paused
}

// Stop halts playback and rewinds to the beginning.
func (p *Player) Stop() {
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	_ = p.track.streamer.Seek(0)
	speaker.Unlock()
	p.state = Stopped
}

// State returns the current state. A track that played to its end reports
// Stopped.
func (p *Player) State() State {
	if p.state == Playing && p.hasEnded() {
		p.state = Stopped
	}
	return p.state
}

func (p *Player) hasEnded() bool {
	speaker.Lock()
	defer speaker.Unlock()
	return p.ended
}

// Position returns the playing offset of the loaded track.
func (p *Player) Position() time.Duration {
	if p.track == nil {
		return 0
	}
	speaker.Lock()
	pos := p.track.streamer.Position()
	speaker.Unlock()
	return p.track.format.SampleRate.D(pos)
}

// Duration returns the length of the loaded track.
func (p *Player) Duration() time.Duration {
	if p.trackInfo == nil {
		return 0
	}
	return p.trackInfo.Duration
}

// SetPosition moves the playing offset, clamped to the track bounds.
func (p *Player) SetPosition(pos time.Duration) {
	if p.track == nil {
		return
	}
	n := p.track.format.SampleRate.N(pos)
	n = min(max(n, 0), max(p.track.streamer.Len()-1, 0))

	speaker.Lock()
	_ = p.track.streamer.Seek(n)
	speaker.Unlock()
}

// TrackInfo returns information about the loaded track, or nil.
func (p *Player) TrackInfo() *TrackInfo {
	return p.trackInfo
}

// FinishedChan signals when a track plays to its end on its own.
func (p *Player) FinishedChan() <-chan struct{} {
	return p.finishedCh
}

// Close releases the loaded track.
func (p *Player) Close() error {
	p.release()
	return nil
}
