//go:build !windows

// Package stderr redirects file descriptor 2 while a full-screen view owns
// the terminal. The logger, the runtime and child processes write there
// directly; captured lines are handed to a callback instead of landing on
// top of the view.
package stderr

import (
	"bufio"
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

// Capture is an active redirection of stderr.
type Capture struct {
	orig      int
	pipeRead  *os.File
	pipeWrite *os.File
	done      chan struct{}
}

// Start redirects stderr into a pipe and calls onLine for every non-empty
// line written to it, from a dedicated goroutine. If capture cannot be set
// up the error is returned and stderr is left untouched.
func Start(onLine func(string)) (*Capture, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}

	orig, err := unix.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return nil, err
	}

	if err := unix.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		unix.Close(orig)
		r.Close()
		w.Close()
		return nil, err
	}

	c := &Capture{orig: orig, pipeRead: r, pipeWrite: w, done: make(chan struct{})}
	go c.read(onLine)
	return c, nil
}

func (c *Capture) read(onLine func(string)) {
	defer close(c.done)
	scanner := bufio.NewScanner(c.pipeRead)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			onLine(line)
		}
	}
}

// Stop restores the original stderr and waits for pending lines to be
// delivered. Safe to call on a nil Capture.
func (c *Capture) Stop() {
	if c == nil {
		return
	}
	_ = unix.Dup2(c.orig, int(os.Stderr.Fd()))
	_ = unix.Close(c.orig)

	c.pipeWrite.Close()
	<-c.done
	c.pipeRead.Close()
}
