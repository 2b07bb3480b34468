package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/vkngwrapper/arsenal/framealloc"
)

var (
	// Global flags
	verbose   bool
	kernelEnd uint64
	memoryEnd uint64

	// stdout is the machine console; replaced in tests
	stdout io.Writer = os.Stdout
	// exit is called by the machine on shutdown; replaced in tests
	exit = os.Exit
)

var rootCmd = &cobra.Command{
	Use:   "framectl",
	Short: "Exercise the physical frame allocator on a simulated machine",
	Long: `framectl boots a simulated machine whose physical memory runs from the
kernel load address to the end of RAM, binds a frame allocator to the memory that
follows the kernel image, and runs allocation workloads against it.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every allocation event to the console")
	rootCmd.PersistentFlags().Uint64Var(&kernelEnd, "kernel-end", uint64(framealloc.KernelBase+0x20_0000), "Physical address of the end of the kernel image")
	rootCmd.PersistentFlags().Uint64Var(&memoryEnd, "memory-end", uint64(framealloc.MemoryEnd), "Physical address of the end of RAM")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
