package main

import (
	"github.com/spf13/cobra"
	"github.com/vkngwrapper/arsenal/framealloc"
	"github.com/vkngwrapper/arsenal/framealloc/memutils"
)

func init() {
	rootCmd.AddCommand(newExhaustCmd())
}

func newExhaustCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exhaust",
		Short: "Allocate frames until physical memory runs out",
		Long: `The exhaust command allocates raw frames until the allocator reports that
no frame is available, reports how many were handed out, and returns them all.

Example:
  framectl exhaust
  framectl exhaust --memory-end 0x80300000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExhaust()
		},
	}
	return cmd
}

func runExhaust() error {
	m, err := bootMachine()
	if err != nil {
		return err
	}
	defer m.shutdown()

	allocator, err := m.newAllocator()
	if err != nil {
		return err
	}

	var stats memutils.DetailedStatistics
	allocator.CalculateStatistics(&stats)

	var allocated []framealloc.PhysPageNum
	for {
		ppn, ok := allocator.AllocPPN()
		if !ok {
			break
		}
		allocated = append(allocated, ppn)
	}
	m.console.Printf("allocated %d of %d frames before exhaustion\n", len(allocated), stats.TotalFrames)

	for _, ppn := range allocated {
		allocator.Dealloc(ppn)
	}
	return allocator.Validate()
}
