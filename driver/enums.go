package driver

import "fmt"

// ImageLayout is the GPU-visible access pattern an image is currently arranged for. Values match
// VkImageLayout.
type ImageLayout int32

const (
	ImageLayoutUndefined             ImageLayout = 0
	ImageLayoutGeneral               ImageLayout = 1
	ImageLayoutShaderReadOnlyOptimal ImageLayout = 5
	ImageLayoutTransferSrcOptimal    ImageLayout = 6
	ImageLayoutTransferDstOptimal    ImageLayout = 7
	ImageLayoutPreinitialized        ImageLayout = 8
)

var imageLayoutMapping = map[ImageLayout]string{
	ImageLayoutUndefined:             "Undefined",
	ImageLayoutGeneral:               "General",
	ImageLayoutShaderReadOnlyOptimal: "ShaderReadOnlyOptimal",
	ImageLayoutTransferSrcOptimal:    "TransferSrcOptimal",
	ImageLayoutTransferDstOptimal:    "TransferDstOptimal",
	ImageLayoutPreinitialized:        "Preinitialized",
}

func (l ImageLayout) String() string {
	str, ok := imageLayoutMapping[l]
	if !ok {
		return fmt.Sprintf("ImageLayout(%d)", int32(l))
	}
	return str
}

// DescriptorType identifies how a shader binding accesses a resource. Values match VkDescriptorType.
type DescriptorType int32

const (
	DescriptorTypeSampler              DescriptorType = 0
	DescriptorTypeCombinedImageSampler DescriptorType = 1
	DescriptorTypeSampledImage         DescriptorType = 2
	DescriptorTypeStorageImage         DescriptorType = 3
	DescriptorTypeUniformTexelBuffer   DescriptorType = 4
	DescriptorTypeStorageTexelBuffer   DescriptorType = 5
	DescriptorTypeUniformBuffer        DescriptorType = 6
	DescriptorTypeStorageBuffer        DescriptorType = 7
)

var descriptorTypeMapping = map[DescriptorType]string{
	DescriptorTypeSampler:              "Sampler",
	DescriptorTypeCombinedImageSampler: "CombinedImageSampler",
	DescriptorTypeSampledImage:         "SampledImage",
	DescriptorTypeStorageImage:         "StorageImage",
	DescriptorTypeUniformTexelBuffer:   "UniformTexelBuffer",
	DescriptorTypeStorageTexelBuffer:   "StorageTexelBuffer",
	DescriptorTypeUniformBuffer:        "UniformBuffer",
	DescriptorTypeStorageBuffer:        "StorageBuffer",
}

func (t DescriptorType) String() string {
	str, ok := descriptorTypeMapping[t]
	if !ok {
		return fmt.Sprintf("DescriptorType(%d)", int32(t))
	}
	return str
}

// ImageType is the dimensionality of an image. Values match VkImageType.
type ImageType int32

const (
	ImageType1D ImageType = 0
	ImageType2D ImageType = 1
	ImageType3D ImageType = 2
)

var imageTypeMapping = map[ImageType]string{
	ImageType1D: "1D",
	ImageType2D: "2D",
	ImageType3D: "3D",
}

func (t ImageType) String() string {
	return imageTypeMapping[t]
}

// ImageViewType is the dimensionality of a view. Values match VkImageViewType.
type ImageViewType int32

const (
	ImageViewType1D ImageViewType = 0
	ImageViewType2D ImageViewType = 1
	ImageViewType3D ImageViewType = 2
)

// ViewType returns the view type that covers a whole image of this type
func (t ImageType) ViewType() ImageViewType {
	return ImageViewType(t)
}

func (t ImageViewType) String() string {
	return imageTypeMapping[ImageType(t)]
}

// ImageTiling is the arrangement of texels in device memory. Values match VkImageTiling.
type ImageTiling int32

const (
	ImageTilingOptimal ImageTiling = 0
	ImageTilingLinear  ImageTiling = 1
)

var imageTilingMapping = map[ImageTiling]string{
	ImageTilingOptimal: "Optimal",
	ImageTilingLinear:  "Linear",
}

func (t ImageTiling) String() string {
	return imageTilingMapping[t]
}

// SamplerAddressMode decides how out-of-range texture coordinates are resolved. Values match
// VkSamplerAddressMode.
type SamplerAddressMode int32

const (
	SamplerAddressModeRepeat            SamplerAddressMode = 0
	SamplerAddressModeMirroredRepeat    SamplerAddressMode = 1
	SamplerAddressModeClampToEdge       SamplerAddressMode = 2
	SamplerAddressModeClampToBorder     SamplerAddressMode = 3
	SamplerAddressModeMirrorClampToEdge SamplerAddressMode = 4
)

var samplerAddressModeMapping = map[SamplerAddressMode]string{
	SamplerAddressModeRepeat:            "Repeat",
	SamplerAddressModeMirroredRepeat:    "MirroredRepeat",
	SamplerAddressModeClampToEdge:       "ClampToEdge",
	SamplerAddressModeClampToBorder:     "ClampToBorder",
	SamplerAddressModeMirrorClampToEdge: "MirrorClampToEdge",
}

func (m SamplerAddressMode) String() string {
	return samplerAddressModeMapping[m]
}

// Filter is a texel filtering mode. Values match VkFilter.
type Filter int32

const (
	FilterNearest Filter = 0
	FilterLinear  Filter = 1
)

var filterMapping = map[Filter]string{
	FilterNearest: "Nearest",
	FilterLinear:  "Linear",
}

func (f Filter) String() string {
	return filterMapping[f]
}
