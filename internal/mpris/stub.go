//go:build !linux

package mpris

import "github.com/lagu-player/lagu/internal/session"

// StatusSource exposes the playback snapshot.
type StatusSource interface {
	Status() session.Status
}

// Sender delivers an intent to the UI loop.
type Sender func(session.Intent)

// Adapter is a no-op on non-Linux platforms.
type Adapter struct{}

// New returns a no-op adapter on non-Linux platforms.
func New(_ StatusSource, _ Sender) (*Adapter, error) {
	return &Adapter{}, nil
}

// Close is a no-op on non-Linux platforms.
func (a *Adapter) Close() error {
	return nil
}
