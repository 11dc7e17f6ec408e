package memory

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/crucible"
	"github.com/vkngwrapper/crucible/driver"
)

// ImageView is a shader-facing view of an Image. It owns the device view and, for sampled views, a
// sampler. Every image query is answered by the underlying image.
type ImageView struct {
	image      *Image
	view       driver.ImageView
	sampler    driver.Sampler
	descriptor ImageViewDescriptor

	ownsImage bool
	destroyed bool
}

func (v *ImageView) Type() ObjectType { return ObjectTypeImageView }

func (v *ImageView) Image() *Image { return v.image }

func (v *ImageView) Descriptor() ImageViewDescriptor { return v.descriptor }

func (v *ImageView) IsSampled() bool { return v.descriptor.Sampled }

func (v *ImageView) DriverImageView() driver.ImageView { return v.view }

// DriverSampler returns the view's sampler, or nil if the view is not sampled
func (v *ImageView) DriverSampler() driver.Sampler { return v.sampler }

func (v *ImageView) Width() int                     { return v.image.Width() }
func (v *ImageView) Height() int                    { return v.image.Height() }
func (v *ImageView) Depth() int                     { return v.image.Depth() }
func (v *ImageView) Shape() [3]int                  { return v.image.Shape() }
func (v *ImageView) ChannelCount() int              { return v.image.ChannelCount() }
func (v *ImageView) ChannelType() ChannelType       { return v.image.ChannelType() }
func (v *ImageView) ChannelTypeSize() int           { return v.image.ChannelTypeSize() }
func (v *ImageView) Format() driver.Format          { return v.image.Format() }
func (v *ImageView) Usage() core1_0.ImageUsageFlags { return v.image.Usage() }
func (v *ImageView) Tiling() driver.ImageTiling     { return v.image.Tiling() }
func (v *ImageView) Size() int                      { return v.image.Size() }
func (v *ImageView) Layout() driver.ImageLayout     { return v.image.Layout() }
func (v *ImageView) AllocationInfo() AllocationInfo { return v.image.AllocationInfo() }
func (v *ImageView) Pool() *Pool                    { return v.image.Pool() }

// Destroy destroys the view and its sampler. The image is left alone unless the view was created
// together with it by Pool.CreateImageView.
func (v *ImageView) Destroy() error {
	if v.destroyed {
		return errors.Wrap(crucible.ErrInvalidState, "the image view has already been destroyed")
	}

	v.view.Destroy()
	if v.sampler != nil {
		v.sampler.Destroy()
	}
	v.destroyed = true

	if v.ownsImage {
		return v.image.Destroy()
	}
	return nil
}
