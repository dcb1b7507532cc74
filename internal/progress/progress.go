// Package progress keeps the progress slider and time label in step with the
// playback engine, and turns slider drags into seeks.
//
// The Poller only reads from the engine. The Bridge is the only part that
// issues commands, and only one seek per released drag.
package progress

import (
	"time"

	"github.com/lagu-player/lagu/internal/playback"
	"github.com/lagu-player/lagu/internal/timefmt"
)

// Source is the read-only view of playback the poller samples.
type Source interface {
	State() playback.State
	Position() time.Duration
	Duration() time.Duration
	QueueCurrentIndex() int
}

// Fraction returns pos/dur clamped to [0, 1], or 0 when dur is not positive.
func Fraction(pos, dur time.Duration) float64 {
	if dur <= 0 {
		return 0
	}
	f := float64(pos) / float64(dur)
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

// Snapshot is what one poll produced for the UI.
type Snapshot struct {
	// Active is false when no track is selected; nothing else is set then.
	Active   bool
	State    playback.State
	Position time.Duration
	Duration time.Duration
	Fraction float64
	Label    string

	// SliderUpdated reports whether the slider should take SliderValue.
	// It stays false while the user drags, and (when gated) while not playing
	// unless this tick ended a seek.
	SliderUpdated bool
	SliderValue   float64
	Dragging      bool
}

// Options configures a Poller.
type Options struct {
	// GateOnPlaying moves the slider only while the engine is playing.
	// The label is refreshed regardless.
	GateOnPlaying bool
}

// Poller samples a Source on each tick.
type Poller struct {
	src    Source
	bridge *Bridge
	opts   Options
	last   Snapshot
}

// NewPoller creates a poller over src. bridge may be nil.
func NewPoller(src Source, bridge *Bridge, opts Options) *Poller {
	return &Poller{src: src, bridge: bridge, opts: opts}
}

// Tick samples the source at now and returns the refreshed snapshot.
func (p *Poller) Tick(now time.Time) Snapshot {
	if p.src.QueueCurrentIndex() < 0 {
		p.last = Snapshot{Dragging: p.dragging()}
		return p.last
	}

	state := p.src.State()
	pos := p.src.Position()
	dur := p.src.Duration()
	frac := Fraction(pos, dur)

	settled := p.bridge != nil && p.bridge.Settle(pos, now)

	snap := Snapshot{
		Active:   true,
		State:    state,
		Position: pos,
		Duration: dur,
		Fraction: frac,
		Label:    timefmt.Pair(pos, dur),
		Dragging: p.dragging(),
	}
	// The tick that ends a seek always moves the slider, so a seek made
	// while paused shows where it landed.
	if !snap.Dragging && (settled || !p.opts.GateOnPlaying || state == playback.StatePlaying) {
		snap.SliderUpdated = true
		snap.SliderValue = frac
	}

	p.last = snap
	return snap
}

// Last returns the most recent snapshot.
func (p *Poller) Last() Snapshot {
	return p.last
}

// Reset clears the last snapshot, e.g. after Stop.
func (p *Poller) Reset() {
	p.last = Snapshot{}
}

func (p *Poller) dragging() bool {
	return p.bridge != nil && p.bridge.Dragging()
}
