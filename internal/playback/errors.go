package playback

import "fmt"

// LoadError reports that the engine could not open a track.
// Playback state and the playlist cursor are left as they were.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
