//go:build !windows

package stderr

import (
	"log/slog"
	"os"
	"syscall"
)

type platform struct {
	origStderr int
	pipeRead   *os.File
	pipeWrite  *os.File
}

// Start begins capturing stderr output.
// Must be called early in main(), before any C library initialization.
// On error the program can continue without capture.
func Start(logger *slog.Logger) (*Capture, error) {
	c := newCapture(logger)

	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}

	// Save original stderr file descriptor
	orig, err := syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return nil, err
	}

	// Redirect stderr (fd 2) to the pipe's write end
	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(orig)
		r.Close()
		w.Close()
		return nil, err
	}

	c.origStderr = orig
	c.pipeRead = r
	c.pipeWrite = w

	go c.pump(r)

	return c, nil
}

// Stop restores the original stderr and waits for the reader to finish.
func (c *Capture) Stop() {
	if c.pipeWrite == nil {
		return
	}

	_ = syscall.Dup2(c.origStderr, int(os.Stderr.Fd()))
	_ = syscall.Close(c.origStderr)

	// Closing the write end lets pump drain and exit.
	c.pipeWrite.Close()
	<-c.done
	c.pipeRead.Close()
	c.pipeWrite = nil
}
