package memory

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/crucible"
	"github.com/vkngwrapper/crucible/driver"
)

// Image is a device image bound to memory from a Pool. Its layout is tracked on the host and
// changes when a command buffer records a layout transition for it.
type Image struct {
	pool           *Pool
	image          driver.Image
	allocationInfo AllocationInfo
	descriptor     ImageDescriptor
	format         driver.Format

	layout    driver.ImageLayout
	destroyed bool
}

func (i *Image) Type() ObjectType { return ObjectTypeImage }

func (i *Image) Descriptor() ImageDescriptor { return i.descriptor }

func (i *Image) Width() int  { return i.descriptor.Width }
func (i *Image) Height() int { return i.descriptor.Height }
func (i *Image) Depth() int  { return i.descriptor.Depth }

func (i *Image) Shape() [3]int { return i.descriptor.Shape() }

// Extent returns the image's size as a driver extent
func (i *Image) Extent() driver.Extent3D {
	return driver.Extent3D{Width: i.descriptor.Width, Height: i.descriptor.Height, Depth: i.descriptor.Depth}
}

func (i *Image) ChannelCount() int              { return i.descriptor.ChannelCount }
func (i *Image) ChannelType() ChannelType       { return i.descriptor.ChannelType }
func (i *Image) ChannelTypeSize() int           { return i.descriptor.ChannelType.Size() }
func (i *Image) Format() driver.Format          { return i.format }
func (i *Image) Usage() core1_0.ImageUsageFlags { return i.descriptor.Usage }
func (i *Image) Tiling() driver.ImageTiling     { return i.descriptor.Tiling }

// Size returns the number of bytes of device memory the image occupies
func (i *Image) Size() int { return i.allocationInfo.Size }

// MinimumSize returns the number of bytes needed to hold the image's texels
func (i *Image) MinimumSize() int { return i.descriptor.Size() }

func (i *Image) AllocationInfo() AllocationInfo { return i.allocationInfo }

func (i *Image) Pool() *Pool { return i.pool }

func (i *Image) DriverImage() driver.Image { return i.image }

// Layout returns the layout the image was last transitioned to by a recorded command
func (i *Image) Layout() driver.ImageLayout { return i.layout }

// SetLayout changes the tracked layout without recording anything. Command buffers call it when they
// record a transition.
func (i *Image) SetLayout(layout driver.ImageLayout) {
	i.layout = layout
}

// CreateImageView creates a view over this image. The view must be destroyed before the image.
func (i *Image) CreateImageView(descriptor ImageViewDescriptor) (*ImageView, error) {
	if i.destroyed {
		return nil, errors.Wrap(crucible.ErrInvalidState, "the image has been destroyed")
	}

	view, err := i.pool.device.CreateImageView(i.image, driver.ImageViewCreateInfo{
		ViewType: i.descriptor.ImageType().ViewType(),
		Format:   i.format,
	})
	if err != nil {
		return nil, err
	}

	var sampler driver.Sampler
	if descriptor.Sampled {
		sampler, err = i.pool.device.CreateSampler(descriptor.SamplerCreateInfo())
		if err != nil {
			view.Destroy()
			return nil, err
		}
	}

	return &ImageView{
		image:      i,
		view:       view,
		sampler:    sampler,
		descriptor: descriptor,
	}, nil
}

// Destroy destroys the device image and returns its memory to the pool
func (i *Image) Destroy() error {
	if i.destroyed {
		return errors.Wrap(crucible.ErrInvalidState, "the image has already been destroyed")
	}

	i.image.Destroy()
	i.destroyed = true

	return i.pool.Release(i.allocationInfo)
}
