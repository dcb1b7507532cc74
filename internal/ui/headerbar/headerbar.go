// Package headerbar renders the single title line at the top of the screen.
package headerbar

import (
	"fmt"

	"github.com/lagu-player/lagu/internal/ui/render"
	"github.com/lagu-player/lagu/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

const appTitle = "lagu"

// Render returns the header for the given width: the title on the left
// and the playlist size on the right.
func Render(trackCount, width int) string {
	if width < len(appTitle) {
		return ""
	}

	title := styles.Title(appTitle)
	if width < 20 {
		return title
	}

	return render.Row(title, styles.T().S().Muted.Render(countLabel(trackCount)), width)
}

func countLabel(n int) string {
	switch n {
	case 0:
		return "empty playlist"
	case 1:
		return "1 track"
	default:
		return fmt.Sprintf("%d tracks", n)
	}
}
