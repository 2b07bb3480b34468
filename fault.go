package framealloc

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/arsenal/framealloc/console"
	"github.com/vkngwrapper/arsenal/framealloc/platform"
)

// FaultHandler is invoked when the allocator detects that its invariants have been violated:
// a double free, a free of a frame that was never allocated, re-entrant access, or use before
// initialization. Fault is not expected to return. If it does, the allocator panics with the
// same error.
type FaultHandler interface {
	Fault(err error)
}

// FaultHandlerFunc adapts a function to the FaultHandler interface
type FaultHandlerFunc func(err error)

func (f FaultHandlerFunc) Fault(err error) { f(err) }

// PanicFaultHandler turns every fault into a Go panic carrying the fault error. It is the
// default when no FaultHandler is provided.
type PanicFaultHandler struct{}

func (PanicFaultHandler) Fault(err error) {
	panic(err)
}

// HaltFaultHandler reports the fault on the machine console and shuts the machine down.
type HaltFaultHandler struct {
	console  *console.Writer
	platform platform.Platform
}

func NewHaltFaultHandler(p platform.Platform) *HaltFaultHandler {
	return &HaltFaultHandler{
		console:  console.NewWriter(p),
		platform: p,
	}
}

func (h *HaltFaultHandler) Fault(err error) {
	if file, line, _, ok := errors.GetOneLineSource(err); ok {
		h.console.Printf("[kernel] Panicked at %s:%d %s\n", file, line, err.Error())
	} else {
		h.console.Printf("[kernel] Panicked: %s\n", err.Error())
	}

	h.platform.Shutdown(true)
}
