package driver

import "github.com/vkngwrapper/core/v2/core1_0"

// MemoryType is one entry of the device's memory type list
type MemoryType struct {
	PropertyFlags core1_0.MemoryPropertyFlags
	HeapIndex     int
}

// MemoryRequirements describes the memory a buffer or image must be bound to
type MemoryRequirements struct {
	Size           int
	Alignment      uint
	MemoryTypeBits uint32
}

// SupportsMemoryType returns true if the memory type at typeIndex can back the resource
func (r MemoryRequirements) SupportsMemoryType(typeIndex int) bool {
	return r.MemoryTypeBits&(1<<uint32(typeIndex)) != 0
}

type Extent3D struct {
	Width  int
	Height int
	Depth  int
}

type BufferCreateInfo struct {
	Size  int
	Usage core1_0.BufferUsageFlags
}

type ImageCreateInfo struct {
	ImageType     ImageType
	Format        Format
	Extent        Extent3D
	Tiling        ImageTiling
	Usage         core1_0.ImageUsageFlags
	InitialLayout ImageLayout
}

type ImageViewCreateInfo struct {
	ViewType ImageViewType
	Format   Format
}

type SamplerCreateInfo struct {
	AddressModeU            SamplerAddressMode
	AddressModeV            SamplerAddressMode
	AddressModeW            SamplerAddressMode
	MagFilter               Filter
	MinFilter               Filter
	UnnormalizedCoordinates bool
}

// DescriptorBinding declares one shader binding of a compute pipeline
type DescriptorBinding struct {
	Binding int
	Type    DescriptorType
}

// ComputePipelineCreateInfo carries everything needed to build a compute pipeline together with its
// descriptor set and push constant layout
type ComputePipelineCreateInfo struct {
	Program          Program
	FunctionName     string
	LocalShape       [3]int
	Bindings         []DescriptorBinding
	PushConstantSize int
}
