// Package crucible holds the error kinds shared by the allocator, resource, node and command
// packages. Every operation in this module that fails for one of these reasons returns an error
// for which errors.Is(err, ErrX) is true.
package crucible

import "github.com/cockroachdb/errors"

var (
	// ErrOutOfDeviceMemory is returned when a pool could not grow because the device refused to
	// allocate a new page
	ErrOutOfDeviceMemory = errors.New("out of device memory")
	// ErrInvalidArgument is returned when a size, shape, alignment or descriptor field is not usable
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidState is returned when an object is used outside the lifecycle state the operation
	// requires, such as recording a node that was never initialized
	ErrInvalidState = errors.New("invalid state")
	// ErrPortTypeMismatch is returned when an object bound to a node port does not satisfy the
	// port's declared type, direction or checks
	ErrPortTypeMismatch = errors.New("port type mismatch")
	// ErrKeyNotFound is returned by lookups by name (ports, child nodes, parameters, builders)
	ErrKeyNotFound = errors.New("key not found")
	// ErrBufferCopy is returned when a buffer copy destination is smaller than its source
	ErrBufferCopy = errors.New("buffer copy error")
	// ErrMappingConflict is returned when a host mapping would overlap a live mapping in the same page
	ErrMappingConflict = errors.New("memory mapping conflict")
	// ErrEnumConversionFailed is returned when a value has no equivalent on the other side of the
	// driver boundary
	ErrEnumConversionFailed = errors.New("enum conversion failed")
)
