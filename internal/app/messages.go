package app

import (
	"time"

	"github.com/lagu-player/lagu/internal/playback"
	"github.com/lagu-player/lagu/internal/session"
)

// TickMsg drives the progress poller.
type TickMsg time.Time

// TrackFinishedMsg is sent when the engine reaches the end of a track.
type TrackFinishedMsg struct{}

// IntentMsg carries an intent from outside the UI loop (media keys,
// command line arguments) into it.
type IntentMsg struct {
	Intent session.Intent
}

// StderrMsg carries a line written to stderr by a C library.
type StderrMsg struct {
	Line string
}

// Service event messages, one per subscription channel.
type (
	ServiceStateChangedMsg struct{ playback.StateChange }
	ServiceTrackChangedMsg struct{ playback.TrackChange }
	ServiceQueueChangedMsg struct{ playback.QueueChange }
	ServicePositionMsg     struct{ playback.PositionChange }
	ServiceErrorMsg        struct{ playback.ErrorEvent }
	ServiceClosedMsg       struct{}
)
