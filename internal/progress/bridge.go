package progress

import "time"

// Default settle parameters.
const (
	DefaultTolerance = time.Second
	DefaultSettle    = 2 * time.Second
)

// Seeker receives the seek issued when a drag is released.
type Seeker interface {
	SeekTo(position time.Duration) error
}

// Bridge turns slider gestures into seeks.
//
// While a drag is in progress, or while a released seek has not yet been
// observed by the poller, Dragging reports true and the poller leaves the
// slider alone. The flag clears once the engine position is within Tolerance
// of the target, or once Window has elapsed since the release.
type Bridge struct {
	seeker    Seeker
	Tolerance time.Duration
	Window    time.Duration

	dragging bool
	value    float64

	settling bool
	target   time.Duration
	deadline time.Time
}

// NewBridge creates a bridge that seeks through seeker.
func NewBridge(seeker Seeker) *Bridge {
	return &Bridge{
		seeker:    seeker,
		Tolerance: DefaultTolerance,
		Window:    DefaultSettle,
	}
}

// BeginDrag marks the slider as held at v.
func (b *Bridge) BeginDrag(v float64) {
	b.dragging = true
	b.settling = false
	b.value = clamp01(v)
}

// Drag moves the held slider to v. Ignored when no drag is in progress.
func (b *Bridge) Drag(v float64) {
	if !b.dragging {
		return
	}
	b.value = clamp01(v)
}

// Release ends the drag at v and seeks to v*dur. It issues exactly one seek.
func (b *Bridge) Release(v float64, dur time.Duration, now time.Time) error {
	if !b.dragging {
		return nil
	}
	b.dragging = false
	b.value = clamp01(v)
	return b.Seek(time.Duration(b.value*float64(dur)), now)
}

// Seek issues one seek to target and holds the flag until it settles.
// On error the flag clears immediately and the error is returned.
func (b *Bridge) Seek(target time.Duration, now time.Time) error {
	if err := b.seeker.SeekTo(target); err != nil {
		b.settling = false
		return err
	}
	b.settling = true
	b.target = target
	b.deadline = now.Add(b.Window)
	return nil
}

// Cancel drops the current drag without seeking.
func (b *Bridge) Cancel() {
	b.dragging = false
	b.settling = false
}

// Settle clears a pending seek once pos has caught up with the target or
// the settle window is over. It reports whether this call cleared it.
func (b *Bridge) Settle(pos time.Duration, now time.Time) bool {
	if !b.settling {
		return false
	}
	diff := pos - b.target
	if diff < 0 {
		diff = -diff
	}
	if diff <= b.Tolerance || !now.Before(b.deadline) {
		b.settling = false
		return true
	}
	return false
}

// Dragging reports whether the slider is owned by the user.
func (b *Bridge) Dragging() bool {
	return b.dragging || b.settling
}

// Held reports whether a drag gesture is in progress.
func (b *Bridge) Held() bool {
	return b.dragging
}

// Value returns the last slider value set by a gesture.
func (b *Bridge) Value() float64 {
	return b.value
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
