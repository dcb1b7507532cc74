// Package stderr captures stderr output from C libraries (ALSA, oto)
// that write directly to file descriptor 2, bypassing Go's os.Stderr.
// This prevents raw error messages from corrupting the TUI layout.
package stderr

import (
	"bufio"
	"io"
	"log/slog"
	"strings"
)

const bufferSize = 100

// Capture holds a redirected stderr. Captured lines are logged and
// forwarded on Lines for display.
type Capture struct {
	lines  chan string
	logger *slog.Logger
	done   chan struct{}

	platform
}

func newCapture(logger *slog.Logger) *Capture {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Capture{
		lines:  make(chan string, bufferSize),
		logger: logger,
		done:   make(chan struct{}),
	}
}

// Lines receives captured stderr lines. Closed once reading stops.
func (c *Capture) Lines() <-chan string {
	return c.lines
}

// pump reads r line by line until EOF. Blank lines are skipped.
// When the channel is full, lines are still logged but not forwarded.
func (c *Capture) pump(r io.Reader) {
	defer close(c.done)
	defer close(c.lines)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		c.logger.Warn("stderr", "line", line)
		select {
		case c.lines <- line:
		default:
		}
	}
}
