// Package vulkan implements the driver interfaces on top of a vkngwrapper core 1.0 device
package vulkan

import (
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	vkdriver "github.com/vkngwrapper/core/v2/driver"
	"github.com/vkngwrapper/crucible"
	"github.com/vkngwrapper/crucible/driver"
	"github.com/vkngwrapper/crucible/memutils"
	"golang.org/x/exp/slog"
)

// Options configures a ResourceDevice. It is valid to leave every field blank.
type Options struct {
	// AllocationCallbacks are passed to every vulkan create, allocate, destroy and free call
	AllocationCallbacks *vkdriver.AllocationCallbacks
	// HeapSizeLimits caps the number of bytes allocated from each memory heap. If provided, it
	// must have one entry per heap, and 0 means the heap is not limited.
	HeapSizeLimits []int
}

// ResourceDevice allocates device memory and creates buffers, images, views and samplers through
// vkngwrapper. Its methods may be called from several goroutines at once.
type ResourceDevice struct {
	logger    *slog.Logger
	callbacks *vkdriver.AllocationCallbacks

	device           core1_0.Device
	deviceProperties *core1_0.PhysicalDeviceProperties
	memoryProperties *core1_0.PhysicalDeviceMemoryProperties

	memoryCount uint32
	heapLimits  []int
	heapBytes   [common.MaxMemoryHeaps]int64
}

var _ driver.ResourceDevice = &ResourceDevice{}

// New reads the physical device's properties and returns a ResourceDevice for the provided logical
// device
func New(logger *slog.Logger, device core1_0.Device, physicalDevice core1_0.PhysicalDevice, options Options) (*ResourceDevice, error) {
	deviceProperties, err := physicalDevice.Properties()
	if err != nil {
		return nil, err
	}
	memoryProperties := physicalDevice.MemoryProperties()

	err = memutils.CheckPow2(deviceProperties.Limits.BufferImageGranularity, "device bufferImageGranularity")
	if err != nil {
		return nil, errors.Mark(err, crucible.ErrInvalidArgument)
	}
	err = memutils.CheckPow2(deviceProperties.Limits.NonCoherentAtomSize, "device nonCoherentAtomSize")
	if err != nil {
		return nil, errors.Mark(err, crucible.ErrInvalidArgument)
	}

	heapCount := len(memoryProperties.MemoryHeaps)
	if len(options.HeapSizeLimits) > 0 && len(options.HeapSizeLimits) != heapCount {
		return nil, errors.Wrapf(crucible.ErrInvalidArgument, "vulkan.Options.HeapSizeLimits has %d entries but the physical device has %d heaps",
			len(options.HeapSizeLimits), heapCount)
	}

	logger.Debug("ResourceDevice::New",
		slog.Int("MemoryTypes", len(memoryProperties.MemoryTypes)),
		slog.Int("MemoryHeaps", heapCount))

	return &ResourceDevice{
		logger:    logger,
		callbacks: options.AllocationCallbacks,

		device:           device,
		deviceProperties: deviceProperties,
		memoryProperties: memoryProperties,

		heapLimits: options.HeapSizeLimits,
	}, nil
}

func (d *ResourceDevice) MemoryTypes() []driver.MemoryType {
	memoryTypes := make([]driver.MemoryType, 0, len(d.memoryProperties.MemoryTypes))
	for _, memoryType := range d.memoryProperties.MemoryTypes {
		memoryTypes = append(memoryTypes, driver.MemoryType{
			PropertyFlags: memoryType.PropertyFlags,
			HeapIndex:     memoryType.HeapIndex,
		})
	}
	return memoryTypes
}

func (d *ResourceDevice) BufferImageGranularity() int {
	granularity := d.deviceProperties.Limits.BufferImageGranularity
	if granularity < 1 {
		return 1
	}
	return granularity
}

// HeapUsage returns the number of bytes currently allocated from the heap at heapIndex
func (d *ResourceDevice) HeapUsage(heapIndex int) int {
	return int(atomic.LoadInt64(&d.heapBytes[heapIndex]))
}

// AllocateMemory allocates size bytes of the memory type at memoryTypeIndex. Exceeding the device's
// allocation count limit or a configured heap size limit fails without calling into vulkan.
func (d *ResourceDevice) AllocateMemory(memoryTypeIndex int, size int) (mem driver.DeviceMemory, err error) {
	if memoryTypeIndex < 0 || memoryTypeIndex >= len(d.memoryProperties.MemoryTypes) {
		return nil, errors.Wrapf(crucible.ErrInvalidArgument, "memory type index %d is out of range", memoryTypeIndex)
	}

	newCount := atomic.AddUint32(&d.memoryCount, 1)
	defer func() {
		if err != nil {
			atomic.AddUint32(&d.memoryCount, ^uint32(0))
		}
	}()

	if int(newCount) > d.deviceProperties.Limits.MaxMemoryAllocationCount {
		return nil, core1_0.VKErrorTooManyObjects.ToError()
	}

	heapIndex := d.memoryProperties.MemoryTypes[memoryTypeIndex].HeapIndex
	err = d.reserveHeapBytes(heapIndex, size)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			atomic.AddInt64(&d.heapBytes[heapIndex], -int64(size))
		}
	}()

	d.logger.Debug("ResourceDevice::AllocateMemory", slog.Int("MemoryTypeIndex", memoryTypeIndex), slog.Int("size", size))

	vkMemory, _, err := d.device.AllocateMemory(d.callbacks, core1_0.MemoryAllocateInfo{
		AllocationSize:  size,
		MemoryTypeIndex: memoryTypeIndex,
	})
	if err != nil {
		return nil, err
	}

	return &DeviceMemory{
		owner:     d,
		memory:    vkMemory,
		size:      size,
		heapIndex: heapIndex,
		atomSize:  d.atomSize(memoryTypeIndex),
	}, nil
}

func (d *ResourceDevice) reserveHeapBytes(heapIndex int, size int) error {
	if len(d.heapLimits) == 0 || d.heapLimits[heapIndex] == 0 {
		atomic.AddInt64(&d.heapBytes[heapIndex], int64(size))
		return nil
	}

	limit := int64(d.heapLimits[heapIndex])
	for {
		current := atomic.LoadInt64(&d.heapBytes[heapIndex])
		if current+int64(size) > limit {
			return errors.Wrapf(core1_0.VKErrorOutOfDeviceMemory.ToError(), "heap %d would hold %d bytes, over its limit of %d",
				heapIndex, current+int64(size), limit)
		}

		if atomic.CompareAndSwapInt64(&d.heapBytes[heapIndex], current, current+int64(size)) {
			return nil
		}
	}
}

func (d *ResourceDevice) releaseMemory(memory *DeviceMemory) {
	atomic.AddInt64(&d.heapBytes[memory.heapIndex], -int64(memory.size))
	atomic.AddUint32(&d.memoryCount, ^uint32(0))
}

// atomSize returns the range alignment used when flushing memory of the provided type, which is 1
// for host-coherent memory
func (d *ResourceDevice) atomSize(memoryTypeIndex int) uint {
	flags := d.memoryProperties.MemoryTypes[memoryTypeIndex].PropertyFlags
	if flags&(core1_0.MemoryPropertyHostVisible|core1_0.MemoryPropertyHostCoherent) != core1_0.MemoryPropertyHostVisible {
		return 1
	}

	atomSize := d.deviceProperties.Limits.NonCoherentAtomSize
	if atomSize < 1 {
		return 1
	}
	return uint(atomSize)
}
