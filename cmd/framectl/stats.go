package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/vkngwrapper/arsenal/framealloc"
)

var (
	statsFrames   int
	statsRelease  int
	statsDetailed bool
)

func init() {
	cmd := newStatsCmd()
	cmd.Flags().IntVar(&statsFrames, "frames", 16, "Number of frames to allocate")
	cmd.Flags().IntVar(&statsRelease, "release", 4, "Number of the allocated frames to release again")
	cmd.Flags().BoolVar(&statsDetailed, "detailed", false, "List recycled frames and live handles")
	rootCmd.AddCommand(cmd)
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Allocate and release frames, then print allocator statistics as JSON",
		Long: `The stats command allocates a number of frames, releases some of them,
and prints the allocator's range, frame partition and lifetime counters.

Example:
  framectl stats --frames 32 --release 8
  framectl stats --detailed`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats()
		},
	}
	return cmd
}

func runStats() error {
	if statsRelease > statsFrames {
		return errors.Newf("cannot release %d of %d frames", statsRelease, statsFrames)
	}

	m, err := bootMachine()
	if err != nil {
		return err
	}
	defer m.shutdown()

	allocator, err := m.newAllocator()
	if err != nil {
		return err
	}

	frames := make([]*framealloc.Frame, 0, statsFrames)
	defer func() {
		for _, frame := range frames {
			frame.Release()
		}
	}()

	for i := 0; i < statsFrames; i++ {
		frame, ok := allocator.Alloc()
		if !ok {
			return errors.Newf("physical memory exhausted after %d frames", i)
		}
		frames = append(frames, frame)
	}

	for _, frame := range frames[:statsRelease] {
		frame.Release()
	}
	frames = frames[statsRelease:]

	m.console.Println(allocator.BuildStatsString(statsDetailed))
	return nil
}
