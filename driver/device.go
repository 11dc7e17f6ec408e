// Package driver is the boundary between this module and the GPU driver. Everything above it
// (pools, resources, nodes, command buffers) talks to these interfaces only. The vulkan package
// implements them on top of vkngwrapper, and tests use the gomock implementations in
// driver/mocks.
package driver

//go:generate mockgen -source device.go -destination ./mocks/mocks.go -package mock_driver

import "unsafe"

// ResourceDevice is the part of a logical device that creates and backs memory resources
type ResourceDevice interface {
	// MemoryTypes lists the device's memory types, in memory type index order
	MemoryTypes() []MemoryType
	// BufferImageGranularity is the granularity in bytes at which linear and optimal resources
	// may be placed next to each other in one allocation
	BufferImageGranularity() int

	AllocateMemory(memoryTypeIndex int, size int) (DeviceMemory, error)
	CreateBuffer(info BufferCreateInfo) (Buffer, error)
	CreateImage(info ImageCreateInfo) (Image, error)
	CreateImageView(image Image, info ImageViewCreateInfo) (ImageView, error)
	CreateSampler(info SamplerCreateInfo) (Sampler, error)
}

// ComputeDevice is the part of a logical device that builds and runs compute work
type ComputeDevice interface {
	CreateComputePipeline(info ComputePipelineCreateInfo) (Pipeline, error)
	CreateCommandBuffer() (CommandBuffer, error)
	CreateQueryPool(queryCount int) (QueryPool, error)
	// TimestampPeriod is the number of nanoseconds per timestamp tick
	TimestampPeriod() float64
	// Submit submits a single command buffer to the compute queue and blocks until the queue is idle
	Submit(commandBuffer CommandBuffer) error
}

// Device is a logical device with a compute queue
type Device interface {
	ResourceDevice
	ComputeDevice
}

type DeviceMemory interface {
	Map(offset, size int) (unsafe.Pointer, error)
	Unmap()
	Flush(offset, size int) error
	Invalidate(offset, size int) error
	Free()
}

type Buffer interface {
	MemoryRequirements() MemoryRequirements
	BindMemory(memory DeviceMemory, offset int) error
	Destroy()
}

type Image interface {
	MemoryRequirements() MemoryRequirements
	BindMemory(memory DeviceMemory, offset int) error
	Destroy()
}

type ImageView interface {
	Destroy()
}

type Sampler interface {
	Destroy()
}

// Program is a compiled compute kernel module. Loading programs happens outside this module.
type Program interface {
	Destroy()
}

// Pipeline is a compute pipeline together with the single descriptor set it is dispatched with
type Pipeline interface {
	WriteBuffer(binding int, buffer Buffer, size int) error
	// WriteImage binds a view to an image binding. sampler is nil for storage images.
	WriteImage(binding int, view ImageView, sampler Sampler, layout ImageLayout) error
	Destroy()
}

// QueryPool holds timestamp queries
type QueryPool interface {
	Results(firstQuery, queryCount int) ([]uint64, error)
	Destroy()
}

// CommandBuffer records device commands. Commands may only be recorded between Begin and End.
type CommandBuffer interface {
	Begin() error
	End() error

	BindPipeline(pipeline Pipeline)
	PushConstants(pipeline Pipeline, data []byte)
	Dispatch(x, y, z int)

	CopyBuffer(src, dst Buffer, size int)
	CopyBufferToImage(src Buffer, dst Image, dstLayout ImageLayout, extent Extent3D)
	CopyImageToBuffer(src Image, srcLayout ImageLayout, dst Buffer, extent Extent3D)
	CopyImage(src Image, srcLayout ImageLayout, dst Image, dstLayout ImageLayout, extent Extent3D)
	ClearColorImage(image Image, layout ImageLayout, color [4]float32)

	ImageBarrier(image Image, oldLayout, newLayout ImageLayout)
	MemoryBarrier()

	ResetQueryPool(pool QueryPool, firstQuery, queryCount int)
	WriteTimestamp(pool QueryPool, query int)

	Free()
}
