//go:build unix

// Package stderr redirects file descriptor 2 while the TUI owns the
// terminal. Anything written there, by the standard logger of a library
// or by a child process, would otherwise be drawn over the screen.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"sync"

	"golang.org/x/sys/unix"
)

var (
	mu       sync.Mutex
	orig     = -1
	pipeRead *os.File
	pipeW    *os.File
	done     chan struct{}
)

// Start redirects stderr to a pipe and hands every non-empty line to
// sink, from a background goroutine. On error nothing is redirected and
// the program can continue without capture.
func Start(sink func(line string)) error {
	mu.Lock()
	defer mu.Unlock()
	if orig >= 0 {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}
	saved, err := unix.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}
	if err := unix.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		unix.Close(saved)
		r.Close()
		w.Close()
		return err
	}

	orig, pipeRead, pipeW = saved, r, w
	done = make(chan struct{})
	go func(r *os.File, done chan<- struct{}) {
		defer close(done)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				sink(line)
			}
		}
	}(r, done)
	return nil
}

// WriteOriginal writes to the terminal's stderr, bypassing the capture.
func WriteOriginal(msg string) {
	mu.Lock()
	fd := orig
	mu.Unlock()
	if fd < 0 {
		_, _ = os.Stderr.WriteString(msg)
		return
	}
	_, _ = unix.Write(fd, []byte(msg))
}

// Stop restores stderr and waits for the captured lines to be handed over.
func Stop() {
	mu.Lock()
	defer mu.Unlock()
	if orig < 0 {
		return
	}

	_ = unix.Dup2(orig, int(os.Stderr.Fd()))
	_ = unix.Close(orig)
	orig = -1

	// fd 2 no longer refers to the pipe; closing our end ends the reader.
	pipeW.Close()
	<-done
	pipeRead.Close()
}
