package memutils

// Validatable is anything with an internal consistency check, such as a FreeSpaceManager or a Pool.
// DebugValidate accepts it.
type Validatable interface {
	Validate() error
}
