package playback

import "time"

// Operation names used in ErrorEvent.
const (
	OpLoad = "load"
	OpSeek = "seek"
)

// StateChange is emitted when playback state changes.
type StateChange struct {
	Previous State
	Current  State
}

// TrackChange is emitted when a track has been loaded and started.
//
// Emitted by Play (when it loads), Next, Previous, JumpTo, Append (auto-start)
// and auto-advance. Not emitted by Pause, Stop, or a resume from Paused.
type TrackChange struct {
	Previous      *Track
	Current       *Track
	PreviousIndex int
	Index         int
}

// QueueChange is emitted when tracks are appended or the cursor moves.
type QueueChange struct {
	Tracks []Track
	Index  int
}

// PositionChange is emitted when a seek occurs or stop rewinds.
type PositionChange struct {
	Position time.Duration
}

// ErrorEvent is emitted when an error occurs during playback.
type ErrorEvent struct {
	Operation string
	Path      string
	Err       error
}
