package notify

import (
	"errors"
	"testing"

	"github.com/lagu-player/lagu/internal/playlist"
)

func TestUrgencyValues(t *testing.T) {
	// Values are fixed by the notification protocol.
	if UrgencyLow != 0 {
		t.Errorf("UrgencyLow = %d, want 0", UrgencyLow)
	}
	if UrgencyNormal != 1 {
		t.Errorf("UrgencyNormal = %d, want 1", UrgencyNormal)
	}
	if UrgencyCritical != 2 {
		t.Errorf("UrgencyCritical = %d, want 2", UrgencyCritical)
	}
}

func TestNotificationZeroValue(t *testing.T) {
	var n Notification
	if n.Urgency != UrgencyLow {
		t.Errorf("zero value Urgency = %d, want UrgencyLow (0)", n.Urgency)
	}
	if n.Timeout != 0 {
		t.Error("zero value Timeout should be 0 (never expire)")
	}
	if n.ReplacesID != 0 {
		t.Error("zero value ReplacesID should be 0 (new notification)")
	}
}

type recordingNotifier struct {
	sent []Notification
	id   uint32
	err  error
}

func (r *recordingNotifier) Notify(n Notification) (uint32, error) {
	r.sent = append(r.sent, n)
	if r.err != nil {
		return 0, r.err
	}
	r.id++
	return r.id, nil
}

func (r *recordingNotifier) Close(_ uint32) error { return nil }

func TestForTrack(t *testing.T) {
	tests := []struct {
		name      string
		track     playlist.Track
		wantTitle string
		wantBody  string
	}{
		{
			name:      "full tags",
			track:     playlist.Track{Path: "/m/a.mp3", Title: "Song", Artist: "Band", Album: "LP"},
			wantTitle: "Song",
			wantBody:  "Band - LP\nTrack 2 of 3",
		},
		{
			name:      "artist only",
			track:     playlist.Track{Path: "/m/a.mp3", Title: "Song", Artist: "Band"},
			wantTitle: "Song",
			wantBody:  "Band\nTrack 2 of 3",
		},
		{
			name:      "untagged",
			track:     playlist.Track{Path: "/m/a.mp3"},
			wantTitle: "a.mp3",
			wantBody:  "Track 2 of 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := ForTrack(tt.track, 1, 3)
			if n.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", n.Title, tt.wantTitle)
			}
			if n.Body != tt.wantBody {
				t.Errorf("Body = %q, want %q", n.Body, tt.wantBody)
			}
		})
	}
}

func TestDesktop_ReplacesPreviousPopup(t *testing.T) {
	rec := &recordingNotifier{}
	d := NewDesktop(rec, nil)

	d.TrackChanged(playlist.Track{Path: "/m/a.mp3", Title: "A"}, 0, 2)
	d.TrackChanged(playlist.Track{Path: "/m/b.mp3", Title: "B"}, 1, 2)

	if len(rec.sent) != 2 {
		t.Fatalf("sent %d notifications, want 2", len(rec.sent))
	}
	if rec.sent[0].ReplacesID != 0 {
		t.Errorf("first ReplacesID = %d, want 0", rec.sent[0].ReplacesID)
	}
	if rec.sent[1].ReplacesID != 1 {
		t.Errorf("second ReplacesID = %d, want 1", rec.sent[1].ReplacesID)
	}
}

func TestDesktop_ErrorIsCritical(t *testing.T) {
	rec := &recordingNotifier{}
	d := NewDesktop(rec, nil)

	d.Error("Failed to load track 'x.mp3': bad header")

	if len(rec.sent) != 1 || rec.sent[0].Urgency != UrgencyCritical {
		t.Errorf("sent = %+v, want one critical notification", rec.sent)
	}
}

func TestDesktop_FailedSendKeepsLastID(t *testing.T) {
	rec := &recordingNotifier{}
	d := NewDesktop(rec, nil)
	d.TrackChanged(playlist.Track{Path: "/m/a.mp3"}, 0, 1)

	rec.err = errors.New("no server")
	d.TrackChanged(playlist.Track{Path: "/m/b.mp3"}, 0, 1)
	rec.err = nil
	d.TrackChanged(playlist.Track{Path: "/m/c.mp3"}, 0, 1)

	if got := rec.sent[2].ReplacesID; got != 1 {
		t.Errorf("ReplacesID after failure = %d, want 1", got)
	}
}
