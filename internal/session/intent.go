package session

import "time"

// Intent is a user or system request handled by Session.Dispatch.
// The set is closed: only the types in this file implement it.
type Intent interface {
	intent()
}

// Open asks the UI to show the file chooser.
type Open struct{}

// Play starts or resumes playback.
type Play struct{}

// Pause pauses playback.
type Pause struct{}

// Stop stops playback and rewinds.
type Stop struct{}

// Next moves to the following track.
type Next struct{}

// Previous moves to the preceding track.
type Previous struct{}

// Seek moves the playing offset to Position.
type Seek struct {
	Position time.Duration
}

// SeekBy moves the playing offset by Delta, clamped to the track.
type SeekBy struct {
	Delta time.Duration
}

// SetVolume sets the output level to Level (0..1).
type SetVolume struct {
	Level float64
}

// ChangeVolume moves the output level by Delta and unmutes.
type ChangeVolume struct {
	Delta float64
}

// ToggleMute silences or restores the output.
type ToggleMute struct{}

// SelectTrack jumps to the track at Index.
type SelectTrack struct {
	Index int
}

// AddFiles appends the chosen files to the playlist.
type AddFiles struct {
	Paths []string
}

// TrackFinished reports that the engine reached the end of the track.
type TrackFinished struct{}

func (Open) intent()          {}
func (Play) intent()          {}
func (Pause) intent()         {}
func (Stop) intent()          {}
func (Next) intent()          {}
func (Previous) intent()      {}
func (Seek) intent()          {}
func (SeekBy) intent()        {}
func (SetVolume) intent()     {}
func (ChangeVolume) intent()  {}
func (ToggleMute) intent()    {}
func (SelectTrack) intent()   {}
func (AddFiles) intent()      {}
func (TrackFinished) intent() {}
