// Package layout provides pure functions for UI dimension calculations.
package layout

// Fixed heights of the screen regions, top to bottom.
const (
	HeaderHeight = 1
	StatusHeight = 1
	HelpHeight   = 1

	// MinContentHeight keeps a usable list even in tiny terminals.
	MinContentHeight = 5
)

// Regions gives the 0-based top row of each screen region.
// Mouse coordinates from bubbletea are 0-based too.
type Regions struct {
	ContentTop    int
	ContentHeight int
	PlayerBarTop  int
	StatusRow     int
	HelpRow       int
}

// Compute splits a window of the given height around a player bar of
// playerBarHeight rows. The content panel takes whatever is left.
func Compute(windowHeight, playerBarHeight int) Regions {
	content := ContentHeight(windowHeight, playerBarHeight)

	r := Regions{
		ContentTop:    HeaderHeight,
		ContentHeight: content,
	}
	r.PlayerBarTop = r.ContentTop + content
	r.StatusRow = r.PlayerBarTop + playerBarHeight
	r.HelpRow = r.StatusRow + StatusHeight
	return r
}

// ContentHeight is the window height minus header, player bar, status
// and help lines, never below MinContentHeight.
func ContentHeight(windowHeight, playerBarHeight int) int {
	height := windowHeight
	height -= HeaderHeight
	height -= playerBarHeight
	height -= StatusHeight
	height -= HelpHeight
	return max(height, MinContentHeight)
}

// InPlayerBar reports whether row y falls on the player bar, and returns
// the row relative to the bar's top.
func (r Regions) InPlayerBar(y int) (int, bool) {
	rel := y - r.PlayerBarTop
	return rel, rel >= 0 && y < r.StatusRow
}

// InContent reports whether row y falls in the content panel, and returns
// the row relative to the panel's top.
func (r Regions) InContent(y int) (int, bool) {
	rel := y - r.ContentTop
	return rel, rel >= 0 && rel < r.ContentHeight
}
