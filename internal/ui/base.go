package ui

// Base is embedded by the bordered panels (track list, file chooser, help).
// It tracks the outer size assigned by the layout and whether the panel has
// keyboard focus.
type Base struct {
	width, height int
	focused       bool
}

func (b *Base) SetFocused(focused bool) { b.focused = focused }
func (b Base) IsFocused() bool          { return b.focused }

// SetSize sets the outer size, border included.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

func (b Base) Width() int  { return b.width }
func (b Base) Height() int { return b.height }

// Unsized reports whether no size has been assigned yet. Panels render
// nothing until the first WindowSizeMsg.
func (b Base) Unsized() bool {
	return b.width <= 0 || b.height <= 0
}

// InnerWidth is the width left inside the rounded border.
func (b Base) InnerWidth() int {
	return max(b.width-BorderWidth, 0)
}

// ListHeight returns the rows left for list content once overhead rows are
// taken, never negative.
func (b Base) ListHeight(overhead int) int {
	return max(b.height-overhead, 0)
}
