package vulkan

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/core1_0"
	vkdriver "github.com/vkngwrapper/core/v2/driver"
	"github.com/vkngwrapper/crucible"
	"github.com/vkngwrapper/crucible/driver"
	"golang.org/x/exp/slog"
)

func vulkanMemory(memory driver.DeviceMemory) (core1_0.DeviceMemory, error) {
	vkMemory, ok := memory.(*DeviceMemory)
	if !ok {
		return nil, errors.Wrapf(crucible.ErrInvalidArgument, "memory of type %T was not allocated by a vulkan.ResourceDevice", memory)
	}
	return vkMemory.memory, nil
}

func memoryRequirements(requirements *core1_0.MemoryRequirements) driver.MemoryRequirements {
	return driver.MemoryRequirements{
		Size:           requirements.Size,
		Alignment:      uint(requirements.Alignment),
		MemoryTypeBits: requirements.MemoryTypeBits,
	}
}

// Buffer wraps a vulkan buffer
type Buffer struct {
	buffer    core1_0.Buffer
	callbacks *vkdriver.AllocationCallbacks
}

func (b *Buffer) VulkanBuffer() core1_0.Buffer { return b.buffer }

func (b *Buffer) MemoryRequirements() driver.MemoryRequirements {
	return memoryRequirements(b.buffer.MemoryRequirements())
}

func (b *Buffer) BindMemory(memory driver.DeviceMemory, offset int) error {
	vkMemory, err := vulkanMemory(memory)
	if err != nil {
		return err
	}

	_, err = b.buffer.BindBufferMemory(vkMemory, offset)
	return err
}

func (b *Buffer) Destroy() {
	b.buffer.Destroy(b.callbacks)
}

// Image wraps a vulkan image
type Image struct {
	image     core1_0.Image
	callbacks *vkdriver.AllocationCallbacks
}

func (i *Image) VulkanImage() core1_0.Image { return i.image }

func (i *Image) MemoryRequirements() driver.MemoryRequirements {
	return memoryRequirements(i.image.MemoryRequirements())
}

func (i *Image) BindMemory(memory driver.DeviceMemory, offset int) error {
	vkMemory, err := vulkanMemory(memory)
	if err != nil {
		return err
	}

	_, err = i.image.BindImageMemory(vkMemory, offset)
	return err
}

func (i *Image) Destroy() {
	i.image.Destroy(i.callbacks)
}

type ImageView struct {
	view      core1_0.ImageView
	callbacks *vkdriver.AllocationCallbacks
}

func (v *ImageView) VulkanImageView() core1_0.ImageView { return v.view }

func (v *ImageView) Destroy() {
	v.view.Destroy(v.callbacks)
}

type Sampler struct {
	sampler   core1_0.Sampler
	callbacks *vkdriver.AllocationCallbacks
}

func (s *Sampler) VulkanSampler() core1_0.Sampler { return s.sampler }

func (s *Sampler) Destroy() {
	s.sampler.Destroy(s.callbacks)
}

func (d *ResourceDevice) CreateBuffer(info driver.BufferCreateInfo) (driver.Buffer, error) {
	d.logger.Debug("ResourceDevice::CreateBuffer", slog.Int("size", info.Size))

	buffer, _, err := d.device.CreateBuffer(d.callbacks, core1_0.BufferCreateInfo{
		Size:        info.Size,
		Usage:       info.Usage,
		SharingMode: core1_0.SharingModeExclusive,
	})
	if err != nil {
		return nil, err
	}

	return &Buffer{buffer: buffer, callbacks: d.callbacks}, nil
}

func (d *ResourceDevice) CreateImage(info driver.ImageCreateInfo) (driver.Image, error) {
	d.logger.Debug("ResourceDevice::CreateImage",
		slog.String("type", info.ImageType.String()),
		slog.String("format", info.Format.String()))

	image, _, err := d.device.CreateImage(d.callbacks, core1_0.ImageCreateInfo{
		ImageType: core1_0.ImageType(info.ImageType),
		Format:    core1_0.Format(info.Format),
		Extent: core1_0.Extent3D{
			Width:  info.Extent.Width,
			Height: info.Extent.Height,
			Depth:  info.Extent.Depth,
		},
		MipLevels:     1,
		ArrayLayers:   1,
		Samples:       core1_0.Samples1,
		Tiling:        core1_0.ImageTiling(info.Tiling),
		Usage:         info.Usage,
		SharingMode:   core1_0.SharingModeExclusive,
		InitialLayout: core1_0.ImageLayout(info.InitialLayout),
	})
	if err != nil {
		return nil, err
	}

	return &Image{image: image, callbacks: d.callbacks}, nil
}

func (d *ResourceDevice) CreateImageView(image driver.Image, info driver.ImageViewCreateInfo) (driver.ImageView, error) {
	vkImage, ok := image.(*Image)
	if !ok {
		return nil, errors.Wrapf(crucible.ErrInvalidArgument, "image of type %T was not created by a vulkan.ResourceDevice", image)
	}

	view, _, err := d.device.CreateImageView(d.callbacks, core1_0.ImageViewCreateInfo{
		Image:    vkImage.image,
		ViewType: core1_0.ImageViewType(info.ViewType),
		Format:   core1_0.Format(info.Format),
		SubresourceRange: core1_0.ImageSubresourceRange{
			AspectMask: core1_0.ImageAspectColor,
			LevelCount: 1,
			LayerCount: 1,
		},
	})
	if err != nil {
		return nil, err
	}

	return &ImageView{view: view, callbacks: d.callbacks}, nil
}

func (d *ResourceDevice) CreateSampler(info driver.SamplerCreateInfo) (driver.Sampler, error) {
	sampler, _, err := d.device.CreateSampler(d.callbacks, core1_0.SamplerCreateInfo{
		MagFilter:               core1_0.Filter(info.MagFilter),
		MinFilter:               core1_0.Filter(info.MinFilter),
		AddressModeU:            core1_0.SamplerAddressMode(info.AddressModeU),
		AddressModeV:            core1_0.SamplerAddressMode(info.AddressModeV),
		AddressModeW:            core1_0.SamplerAddressMode(info.AddressModeW),
		UnnormalizedCoordinates: info.UnnormalizedCoordinates,
	})
	if err != nil {
		return nil, err
	}

	return &Sampler{sampler: sampler, callbacks: d.callbacks}, nil
}
