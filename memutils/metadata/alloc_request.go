package metadata

import "fmt"

// AllocationRequest is returned from FreeSpaceManager.CreateAllocationRequest and describes where the
// manager intends to place an allocation. Nothing is reserved until the request is passed to
// FreeSpaceManager.Alloc, and a request is only valid until the next change to the manager.
type AllocationRequest struct {
	// Offset is the aligned offset of the allocation within the page
	Offset int
	// Size is the requested size in bytes
	Size int
	// LeftPadding is the number of bytes between the start of the free region and Offset that were
	// consumed to satisfy the alignment
	LeftPadding int
	// FreeRegionIndex is the index of the free region the allocation is carved from
	FreeRegionIndex int
}

// ReservedOffset is the start of the range that committing this request removes from the free space
func (r AllocationRequest) ReservedOffset() int {
	return r.Offset - r.LeftPadding
}

// ReservedSize is the number of bytes that committing this request removes from the free space
func (r AllocationRequest) ReservedSize() int {
	return r.LeftPadding + r.Size
}

func (r AllocationRequest) String() string {
	return fmt.Sprintf("AllocationRequest{Offset: %d, Size: %d, LeftPadding: %d, FreeRegionIndex: %d}",
		r.Offset, r.Size, r.LeftPadding, r.FreeRegionIndex)
}
