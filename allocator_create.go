package framealloc

import (
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slog"
)

// CreateFlags indicate specific allocator behaviors to activate or deactivate
type CreateFlags int32

var allocatorCreateFlagsMapping = map[CreateFlags]string{}

func (f CreateFlags) Register(str string) {
	allocatorCreateFlagsMapping[f] = str
}

func (f CreateFlags) String() string {
	if f == 0 {
		return "None"
	}

	var names []string
	for bit := CreateFlags(1); bit != 0 && bit <= f; bit <<= 1 {
		if f&bit == 0 {
			continue
		}
		name, ok := allocatorCreateFlagsMapping[bit]
		if !ok {
			name = "Unknown"
		}
		names = append(names, name)
	}
	return strings.Join(names, "|")
}

const (
	// AllocatorCreateExternallySynchronized replaces the allocator's internal mutex with a plain
	// re-entrancy flag. The consumer must guarantee that the allocator and every Frame created from it
	// are only used from one goroutine at a time. Re-entrant access is still detected and reported as
	// a fault.
	AllocatorCreateExternallySynchronized CreateFlags = 1 << iota
)

func init() {
	AllocatorCreateExternallySynchronized.Register("AllocatorCreateExternallySynchronized")
}

// PhysicalMemory gives byte access to the frames an allocator manages. The allocator uses it to
// zero-fill frames as they are handed out, and Frame handles read and write through it.
// physmem.Arena implements this interface.
type PhysicalMemory interface {
	// PageBytes returns the contents of the frame with the given physical page number as a
	// slice of exactly PageSize bytes
	PageBytes(ppn uint64) []byte
}

// CreateOptions contains optional settings when creating an allocator
type CreateOptions struct {
	// Flags indicates specific allocator behaviors to activate or deactivate
	Flags CreateFlags

	// FaultHandler receives invariant violations. If it is nil, violations panic with the
	// fault error.
	FaultHandler FaultHandler
}

// New creates a new Allocator. The allocator manages no frames until Init is called.
//
// logger - Receives allocation events at debug level and diagnostics at higher levels. May be nil.
//
// memory - The physical memory backing every frame the allocator will manage
//
// options - Optional parameters: it is valid to leave all the fields blank
func New(logger *slog.Logger, memory PhysicalMemory, options CreateOptions) (*Allocator, error) {
	if memory == nil {
		return nil, errors.New("a frame allocator requires physical memory to back its frames")
	}

	return newAllocator(logger, memory, options), nil
}

func newAllocator(logger *slog.Logger, memory PhysicalMemory, options CreateOptions) *Allocator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard))
	}

	faultHandler := options.FaultHandler
	if faultHandler == nil {
		faultHandler = PanicFaultHandler{}
	}

	allocator := &Allocator{
		logger:       logger,
		memory:       memory,
		faultHandler: faultHandler,
		createFlags:  options.Flags,
	}

	useMutex := options.Flags&AllocatorCreateExternallySynchronized == 0
	allocator.state = newAllocatorCell(useMutex, func(err error) {
		allocator.faultHandler.Fault(err)
	})
	return allocator
}
