package memory

import "fmt"

// AllocationInfo records where the bytes of a Buffer or Image live inside their pool
type AllocationInfo struct {
	// Page is the index of the page in the pool
	Page int
	// Offset is the aligned offset of the resource within the page
	Offset int
	// Size is the size in bytes the resource asked for
	Size int
	// LeftPadding is the number of bytes before Offset that were consumed by alignment
	LeftPadding int
}

// ReservedOffset is the start of the page range held by the allocation
func (i AllocationInfo) ReservedOffset() int {
	return i.Offset - i.LeftPadding
}

// ReservedSize is the length of the page range held by the allocation, padding included
func (i AllocationInfo) ReservedSize() int {
	return i.LeftPadding + i.Size
}

func (i AllocationInfo) String() string {
	return fmt.Sprintf("[%d, %d, %d, %d]", i.Offset, i.Size, i.LeftPadding, i.Page)
}
