// Package notify provides desktop notifications via D-Bus.
package notify

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/lagu-player/lagu/internal/playlist"
)

// Urgency is the freedesktop notification urgency hint.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Icon       string  // Path to image file or icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are disabled or unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

// Desktop sends playback notifications. Each track change replaces the
// previous popup instead of stacking a new one.
type Desktop struct {
	notifier Notifier
	logger   *slog.Logger
	lastID   uint32
}

// NewDesktop wraps n. A nil logger discards errors.
func NewDesktop(n Notifier, logger *slog.Logger) *Desktop {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Desktop{notifier: n, logger: logger}
}

// TrackChanged announces the track now playing.
func (d *Desktop) TrackChanged(t playlist.Track, index, total int) {
	n := ForTrack(t, index, total)
	n.Icon = playlist.CoverArt(t.Path)
	d.send(n)
}

// Error shows an error popup.
func (d *Desktop) Error(msg string) {
	d.send(Notification{
		Title:   "lagu",
		Body:    msg,
		Timeout: 5000,
		Urgency: UrgencyCritical,
	})
}

func (d *Desktop) send(n Notification) {
	n.ReplacesID = d.lastID
	id, err := d.notifier.Notify(n)
	if err != nil {
		d.logger.Warn("notification failed", "error", err)
		return
	}
	d.lastID = id
}

// ForTrack builds the track change notification.
func ForTrack(t playlist.Track, index, total int) Notification {
	body := fmt.Sprintf("Track %d of %d", index+1, total)
	switch {
	case t.Artist != "" && t.Album != "":
		body = t.Artist + " - " + t.Album + "\n" + body
	case t.Artist != "":
		body = t.Artist + "\n" + body
	}

	title := t.Title
	if title == "" {
		title = filepath.Base(t.Path)
	}

	return Notification{
		Title:   title,
		Body:    body,
		Timeout: 3000,
		Urgency: UrgencyLow,
	}
}
