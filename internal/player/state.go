package player

// State represents the engine's playback state.
//
//	┌──────────┐      play       ┌──────────┐
//	│  Stopped │ ───────────────▶│  Playing │◀──┐
//	└──────────┘                 └──────────┘   │ play (restart from 0)
//	     ▲                          │  │  └─────┘
//	     │ stop / end of stream     │  │ pause
//	     │                          │  ▼
//	     │                       ┌──────────┐
//	     └───────────────────────│  Paused  │
//	                  stop       └──────────┘
//	                                  │ play (resume in place)
//	                                  ▼
//	                               Playing
//
// Open always leaves the engine Stopped at position 0.
// Pause on a Stopped engine is ignored.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a track is playing or paused.
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}

// CanPause returns true if the state allows pausing.
func (s State) CanPause() bool {
	return s == Playing
}

// CanResume returns true if play would continue from the current offset.
func (s State) CanResume() bool {
	return s == Paused
}
