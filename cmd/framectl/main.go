// Command framectl runs the physical frame allocator on a simulated machine: physical memory is an
// anonymous host mapping and the machine console is the process's standard output.
package main

func main() {
	execute()
}
