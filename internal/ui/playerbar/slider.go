package playerbar

import (
	"strings"

	"github.com/lagu-player/lagu/internal/ui/styles"
)

const (
	filledCell = "━"
	emptyCell  = "─"
	handleCell = "●"
)

// Layout locates the slider inside a rendered bar, in terminal cells
// relative to the bar's top-left corner.
type Layout struct {
	Row   int
	Start int
	Width int
}

// Contains reports whether the cell (x, y) lies on the slider.
func (l Layout) Contains(x, y int) bool {
	return y == l.Row && x >= l.Start && x < l.Start+l.Width
}

// ValueAt maps column x to a slider fraction in [0, 1].
func (l Layout) ValueAt(x int) float64 {
	if l.Width <= 1 {
		return 0
	}
	v := float64(x-l.Start) / float64(l.Width-1)
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// handleIndex returns the cell holding the handle for value v.
func handleIndex(v float64, width int) int {
	if width <= 1 {
		return 0
	}
	v = min(max(v, 0), 1)
	return int(v*float64(width-1) + 0.5)
}

// RenderSlider draws a slider of width cells at value v. The filled part
// follows the theme ramp so the bar shifts color as the track advances.
// held switches the handle to the drag color.
func RenderSlider(v float64, width int, held bool) string {
	if width <= 0 {
		return ""
	}
	s := styles.T().S()
	idx := handleIndex(v, width)

	handle := s.SliderHandle
	if held {
		handle = s.SliderHeld
	}

	var b strings.Builder
	ramp := styles.Ramp(width)
	for i := range idx {
		b.WriteString(s.SliderFilled.Foreground(ramp[i]).Render(filledCell))
	}
	b.WriteString(handle.Render(handleCell))
	b.WriteString(s.SliderEmpty.Render(strings.Repeat(emptyCell, width-idx-1)))
	return b.String()
}
