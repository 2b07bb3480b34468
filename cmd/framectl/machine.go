package main

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/arsenal/framealloc"
	"github.com/vkngwrapper/arsenal/framealloc/console"
	"github.com/vkngwrapper/arsenal/framealloc/physmem"
	"github.com/vkngwrapper/arsenal/framealloc/platform"
	"golang.org/x/exp/slog"
)

// machine is a simulated computer: RAM starts at the kernel load address, and the console and
// shutdown are provided by the host process.
type machine struct {
	platform     *platform.Host
	console      *console.Writer
	logger       *slog.Logger
	memory       *physmem.Arena
	faultHandler framealloc.FaultHandler

	kernelEnd framealloc.PhysAddr
	memoryEnd framealloc.PhysAddr
}

func bootMachine() (*machine, error) {
	kernelEndAddr := framealloc.PhysAddr(kernelEnd)
	memoryEndAddr := framealloc.PhysAddr(memoryEnd)
	if kernelEndAddr < framealloc.KernelBase || kernelEndAddr > memoryEndAddr {
		return nil, errors.Newf("kernel end %s must lie between %s and the end of memory %s", kernelEndAddr, framealloc.KernelBase, memoryEndAddr)
	}

	ramEnd := memoryEndAddr.Floor().Addr()
	memory, err := physmem.New(uint64(framealloc.KernelBase), int(ramEnd-framealloc.KernelBase), framealloc.PageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create physical memory")
	}

	host := platform.NewHost(stdout, exit)
	out := console.NewWriter(host)

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.HandlerOptions{Level: level}.NewTextHandler(out))

	return &machine{
		platform:     host,
		console:      out,
		logger:       logger,
		memory:       memory,
		faultHandler: framealloc.NewHaltFaultHandler(host),
		kernelEnd:    kernelEndAddr,
		memoryEnd:    memoryEndAddr,
	}, nil
}

// newAllocator creates an allocator bound to the frames between the kernel image and the end of RAM
func (m *machine) newAllocator() (*framealloc.Allocator, error) {
	allocator, err := framealloc.New(m.logger, m.memory, framealloc.CreateOptions{
		FaultHandler: m.faultHandler,
	})
	if err != nil {
		return nil, err
	}

	allocator.Init(m.kernelEnd.Ceil(), m.memoryEnd.Floor())
	return allocator, nil
}

func (m *machine) shutdown() error {
	return m.memory.Close()
}
