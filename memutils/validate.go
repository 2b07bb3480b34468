package memutils

// Validatable is used by the DebugValidate method to allow it to act upon
// all types with a Validate method, such as a frame allocator checking its
// recycle pool against its frontier
type Validatable interface {
	Validate() error
}
