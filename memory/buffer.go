package memory

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/crucible"
	"github.com/vkngwrapper/crucible/driver"
)

// DefaultBufferUsage is the usage of buffers created with Pool.CreateBufferWithDefaultUsage
const DefaultBufferUsage = core1_0.BufferUsageStorageBuffer | core1_0.BufferUsageTransferSrc | core1_0.BufferUsageTransferDst

// Buffer is a device buffer bound to memory from a Pool. It must be destroyed with Destroy, which
// returns its memory to the pool.
type Buffer struct {
	pool           *Pool
	buffer         driver.Buffer
	allocationInfo AllocationInfo
	size           int
	usage          core1_0.BufferUsageFlags

	mapped    bool
	destroyed bool
}

func (b *Buffer) Type() ObjectType { return ObjectTypeBuffer }

// Size returns the size in bytes the buffer was created with
func (b *Buffer) Size() int { return b.size }

func (b *Buffer) Usage() core1_0.BufferUsageFlags { return b.usage }

func (b *Buffer) AllocationInfo() AllocationInfo { return b.allocationInfo }

func (b *Buffer) Pool() *Pool { return b.pool }

func (b *Buffer) DriverBuffer() driver.Buffer { return b.buffer }

func (b *Buffer) IsMappable() bool { return b.pool.IsMappable() }

// IsMapped returns true between a successful Map and the matching Unmap
func (b *Buffer) IsMapped() bool { return b.mapped }

// Map maps the buffer's memory into host address space. The returned pointer addresses the first
// byte of the buffer and is valid until Unmap. Other buffers in the same page may be mapped at the
// same time, but a range overlapping a live mapping is rejected with crucible.ErrMappingConflict.
func (b *Buffer) Map() (unsafe.Pointer, error) {
	if b.destroyed {
		return nil, errors.Wrap(crucible.ErrInvalidState, "the buffer has been destroyed")
	}
	if !b.IsMappable() {
		return nil, errors.Wrap(crucible.ErrInvalidState, "the buffer's memory is not host visible")
	}
	if b.mapped {
		return nil, errors.Wrap(crucible.ErrMappingConflict, "the buffer is already mapped")
	}

	data, err := b.pool.mapAllocation(b.allocationInfo)
	if err != nil {
		return nil, err
	}

	b.mapped = true
	return data, nil
}

func (b *Buffer) Unmap() error {
	if !b.mapped {
		return errors.Wrap(crucible.ErrInvalidState, "the buffer is not mapped")
	}

	err := b.pool.unmapAllocation(b.allocationInfo)
	if err != nil {
		return err
	}

	b.mapped = false
	return nil
}

// Flush makes host writes to [offset, offset+size) of the buffer visible to the device. A size of 0
// flushes to the end of the buffer. Flushing host-coherent memory does nothing.
func (b *Buffer) Flush(offset, size int) error {
	return b.pool.syncAllocation(b.allocationInfo, offset, size, true)
}

// Invalidate makes device writes to [offset, offset+size) of the buffer visible to the host. A size of
// 0 invalidates to the end of the buffer.
func (b *Buffer) Invalidate(offset, size int) error {
	return b.pool.syncAllocation(b.allocationInfo, offset, size, false)
}

// CopyFromHost maps the buffer, copies data to its start and unmaps it again
func (b *Buffer) CopyFromHost(data []byte) error {
	if len(data) > b.size {
		return errors.Wrapf(crucible.ErrBufferCopy, "cannot copy %d bytes into a buffer of %d bytes", len(data), b.size)
	}

	ptr, err := b.Map()
	if err != nil {
		return err
	}

	copy(unsafe.Slice((*byte)(ptr), b.size), data)

	err = b.Flush(0, 0)
	return errors.CombineErrors(err, b.Unmap())
}

// CopyToHost maps the buffer, copies its first len(data) bytes into data and unmaps it again
func (b *Buffer) CopyToHost(data []byte) error {
	if len(data) > b.size {
		return errors.Wrapf(crucible.ErrBufferCopy, "cannot copy %d bytes out of a buffer of %d bytes", len(data), b.size)
	}

	ptr, err := b.Map()
	if err != nil {
		return err
	}

	err = b.Invalidate(0, 0)
	if err == nil {
		copy(data, unsafe.Slice((*byte)(ptr), b.size))
	}

	return errors.CombineErrors(err, b.Unmap())
}

// Destroy destroys the device buffer and returns its memory to the pool. A mapped buffer is
// unmapped first.
func (b *Buffer) Destroy() error {
	if b.destroyed {
		return errors.Wrap(crucible.ErrInvalidState, "the buffer has already been destroyed")
	}

	var err error
	if b.mapped {
		err = b.Unmap()
	}

	b.buffer.Destroy()
	b.destroyed = true

	return errors.CombineErrors(err, b.pool.Release(b.allocationInfo))
}
