// Package platform describes the machine services the kernel relies on: a character console and
// a way to stop the machine.
package platform

//go:generate mockgen -source platform.go -destination ./mocks/platform.go -package mock_platform

// Platform is the low-level call interface provided by firmware or a hypervisor
type Platform interface {
	// PutChar writes a single byte to the machine console
	PutChar(c byte)
	// Shutdown stops the machine. A true failure reports an abnormal exit. Implementations
	// backed by real hardware never return.
	Shutdown(failure bool)
}
