package vulkan

import (
	"unsafe"

	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/crucible/memutils"
)

// DeviceMemory is a single vulkan device memory allocation
type DeviceMemory struct {
	owner     *ResourceDevice
	memory    core1_0.DeviceMemory
	size      int
	heapIndex int
	atomSize  uint
}

// VulkanDeviceMemory returns the underlying vkngwrapper object
func (m *DeviceMemory) VulkanDeviceMemory() core1_0.DeviceMemory { return m.memory }

func (m *DeviceMemory) Map(offset, size int) (unsafe.Pointer, error) {
	data, _, err := m.memory.Map(offset, size, 0)
	return data, err
}

func (m *DeviceMemory) Unmap() {
	m.memory.Unmap()
}

func (m *DeviceMemory) Flush(offset, size int) error {
	_, err := m.owner.device.FlushMappedMemoryRanges([]core1_0.MappedMemoryRange{m.atomRange(offset, size)})
	return err
}

func (m *DeviceMemory) Invalidate(offset, size int) error {
	_, err := m.owner.device.InvalidateMappedMemoryRanges([]core1_0.MappedMemoryRange{m.atomRange(offset, size)})
	return err
}

// atomRange widens [offset, offset+size) to whole non-coherent atoms, clamped to the end of the
// allocation
func (m *DeviceMemory) atomRange(offset, size int) core1_0.MappedMemoryRange {
	start := memutils.AlignDown(offset, m.atomSize)
	end := memutils.Min(memutils.AlignUp(offset+size, m.atomSize), m.size)

	return core1_0.MappedMemoryRange{
		Memory: m.memory,
		Offset: start,
		Size:   end - start,
	}
}

func (m *DeviceMemory) Free() {
	m.memory.Free(m.owner.callbacks)
	m.owner.releaseMemory(m)
}
