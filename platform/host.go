package platform

import (
	"bufio"
	"io"
	"os"
	"sync"
)

const (
	exitSuccess = 0
	exitFailure = 1
)

// Host is a Platform running as an ordinary process: the console is an io.Writer and shutdown
// exits the process.
type Host struct {
	mutex sync.Mutex
	out   *bufio.Writer
	exit  func(code int)
}

// NewHost creates a Host writing console output to out. If exit is nil, os.Exit is used.
func NewHost(out io.Writer, exit func(code int)) *Host {
	if exit == nil {
		exit = os.Exit
	}

	return &Host{
		out:  bufio.NewWriter(out),
		exit: exit,
	}
}

func (h *Host) PutChar(c byte) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	_ = h.out.WriteByte(c)
	if c == '\n' {
		_ = h.out.Flush()
	}
}

func (h *Host) Shutdown(failure bool) {
	h.mutex.Lock()
	_ = h.out.Flush()
	h.mutex.Unlock()

	if failure {
		h.exit(exitFailure)
		return
	}
	h.exit(exitSuccess)
}
