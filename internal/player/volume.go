package player

import (
	"math"

	"github.com/gopxl/beep/v2/speaker"
)

// silentGain is the effects.Volume exponent used for level 0.
const silentGain = -10

// SetVolume sets the output level, clamped to 0..1. While muted only the
// level is stored; it applies again on unmute.
func (p *Player) SetVolume(level float64) {
	p.volumeLevel = ClampVolume(level)
	if p.muted || p.volume == nil {
		return
	}
	speaker.Lock()
	p.volume.Volume = levelToGain(p.volumeLevel)
	speaker.Unlock()
}

// Volume returns the output level (0..1).
func (p *Player) Volume() float64 {
	return p.volumeLevel
}

// SetMuted silences or restores the output without touching the level.
func (p *Player) SetMuted(muted bool) {
	p.muted = muted
	if p.volume == nil {
		return
	}
	speaker.Lock()
	p.volume.Silent = muted
	if !muted {
		p.volume.Volume = levelToGain(p.volumeLevel)
	}
	speaker.Unlock()
}

// Muted reports whether the output is silenced.
func (p *Player) Muted() bool {
	return p.muted
}

// ClampVolume limits level to 0..1.
func ClampVolume(level float64) float64 {
	return math.Max(0, math.Min(1, level))
}

// levelToGain maps a linear 0..1 level onto effects.Volume's base-2
// exponent: 1 -> 0, 0.5 -> -1, 0.25 -> -2, 0 -> silentGain.
func levelToGain(level float64) float64 {
	switch {
	case level <= 0:
		return silentGain
	case level >= 1:
		return 0
	}
	return math.Max(silentGain, math.Log2(level))
}
