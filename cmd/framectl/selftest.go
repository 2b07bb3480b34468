package main

import (
	"github.com/spf13/cobra"
	"github.com/vkngwrapper/arsenal/framealloc"
)

func init() {
	rootCmd.AddCommand(newSelftestCmd())
}

func newSelftestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Initialize the kernel frame allocator and run its self test",
		Long: `The selftest command binds the kernel-wide frame allocator to the memory
after the kernel image, allocates and releases a handful of frames twice, and
checks that the second round reuses the frames released by the first.

Example:
  framectl selftest
  framectl selftest --kernel-end 0x80400000 -v`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelftest()
		},
	}
	return cmd
}

func runSelftest() error {
	m, err := bootMachine()
	if err != nil {
		return err
	}
	defer m.shutdown()

	err = framealloc.InitFrameAllocator(m.logger, m.memory, m.faultHandler, m.kernelEnd, m.memoryEnd)
	if err != nil {
		return err
	}

	err = framealloc.FrameAllocatorTest(framealloc.FrameAllocator(), m.console)
	if err != nil {
		return err
	}

	return framealloc.FrameAllocator().Destroy()
}
