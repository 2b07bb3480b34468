package framealloc

const (
	// KernelBase is the physical address the kernel image is loaded at on the reference
	// RISC-V virt machine
	KernelBase PhysAddr = 0x8020_0000
	// MemoryEnd is the top of physical memory on the reference machine (8MiB of RAM from 0x8000_0000)
	MemoryEnd PhysAddr = 0x8080_0000
)
