package memory

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/crucible"
	"github.com/vkngwrapper/crucible/driver"
)

// DefaultImageUsage is the usage given to images whose descriptor does not set one
const DefaultImageUsage = core1_0.ImageUsageStorage | core1_0.ImageUsageSampled |
	core1_0.ImageUsageTransferSrc | core1_0.ImageUsageTransferDst

var formatTable = [4]map[ChannelType]driver.Format{
	{
		ChannelTypeUint8:   driver.FormatR8Uint,
		ChannelTypeInt8:    driver.FormatR8Sint,
		ChannelTypeUint16:  driver.FormatR16Uint,
		ChannelTypeInt16:   driver.FormatR16Sint,
		ChannelTypeFloat16: driver.FormatR16Sfloat,
		ChannelTypeUint32:  driver.FormatR32Uint,
		ChannelTypeInt32:   driver.FormatR32Sint,
		ChannelTypeFloat32: driver.FormatR32Sfloat,
		ChannelTypeUint64:  driver.FormatR64Uint,
		ChannelTypeInt64:   driver.FormatR64Sint,
		ChannelTypeFloat64: driver.FormatR64Sfloat,
	},
	{
		ChannelTypeUint8:   driver.FormatR8G8Uint,
		ChannelTypeInt8:    driver.FormatR8G8Sint,
		ChannelTypeUint16:  driver.FormatR16G16Uint,
		ChannelTypeInt16:   driver.FormatR16G16Sint,
		ChannelTypeFloat16: driver.FormatR16G16Sfloat,
		ChannelTypeUint32:  driver.FormatR32G32Uint,
		ChannelTypeInt32:   driver.FormatR32G32Sint,
		ChannelTypeFloat32: driver.FormatR32G32Sfloat,
		ChannelTypeUint64:  driver.FormatR64G64Uint,
		ChannelTypeInt64:   driver.FormatR64G64Sint,
		ChannelTypeFloat64: driver.FormatR64G64Sfloat,
	},
	{
		ChannelTypeUint8:   driver.FormatR8G8B8Uint,
		ChannelTypeInt8:    driver.FormatR8G8B8Sint,
		ChannelTypeUint16:  driver.FormatR16G16B16Uint,
		ChannelTypeInt16:   driver.FormatR16G16B16Sint,
		ChannelTypeFloat16: driver.FormatR16G16B16Sfloat,
		ChannelTypeUint32:  driver.FormatR32G32B32Uint,
		ChannelTypeInt32:   driver.FormatR32G32B32Sint,
		ChannelTypeFloat32: driver.FormatR32G32B32Sfloat,
		ChannelTypeUint64:  driver.FormatR64G64B64Uint,
		ChannelTypeInt64:   driver.FormatR64G64B64Sint,
		ChannelTypeFloat64: driver.FormatR64G64B64Sfloat,
	},
	{
		ChannelTypeUint8:   driver.FormatR8G8B8A8Uint,
		ChannelTypeInt8:    driver.FormatR8G8B8A8Sint,
		ChannelTypeUint16:  driver.FormatR16G16B16A16Uint,
		ChannelTypeInt16:   driver.FormatR16G16B16A16Sint,
		ChannelTypeFloat16: driver.FormatR16G16B16A16Sfloat,
		ChannelTypeUint32:  driver.FormatR32G32B32A32Uint,
		ChannelTypeInt32:   driver.FormatR32G32B32A32Sint,
		ChannelTypeFloat32: driver.FormatR32G32B32A32Sfloat,
		ChannelTypeUint64:  driver.FormatR64G64B64A64Uint,
		ChannelTypeInt64:   driver.FormatR64G64B64A64Sint,
		ChannelTypeFloat64: driver.FormatR64G64B64A64Sfloat,
	},
}

// ImageDescriptor describes an image to be created by Pool.CreateImage
type ImageDescriptor struct {
	Width        int
	Height       int
	Depth        int
	ChannelCount int
	ChannelType  ChannelType
	// Usage defaults to DefaultImageUsage when 0
	Usage  core1_0.ImageUsageFlags
	Tiling driver.ImageTiling
}

// NewImageDescriptor returns a descriptor with default usage and optimal tiling
func NewImageDescriptor(width, height, depth, channelCount int, channelType ChannelType) ImageDescriptor {
	return ImageDescriptor{
		Width:        width,
		Height:       height,
		Depth:        depth,
		ChannelCount: channelCount,
		ChannelType:  channelType,
		Usage:        DefaultImageUsage,
		Tiling:       driver.ImageTilingOptimal,
	}
}

// Validate returns an error wrapping crucible.ErrInvalidArgument if the descriptor cannot describe
// an image
func (d ImageDescriptor) Validate() error {
	if d.Width <= 0 {
		return errors.Wrapf(crucible.ErrInvalidArgument, "image width must be greater than zero, got %d", d.Width)
	}
	if d.Height <= 0 {
		return errors.Wrapf(crucible.ErrInvalidArgument, "image height must be greater than zero, got %d", d.Height)
	}
	if d.Depth <= 0 {
		return errors.Wrapf(crucible.ErrInvalidArgument, "image depth must be greater than zero, got %d", d.Depth)
	}
	if d.ChannelCount < 1 || d.ChannelCount > 4 {
		return errors.Wrapf(crucible.ErrInvalidArgument, "image channel count must be between 1 and 4, got %d", d.ChannelCount)
	}

	return nil
}

// Shape returns the width, height and depth of the image
func (d ImageDescriptor) Shape() [3]int {
	return [3]int{d.Width, d.Height, d.Depth}
}

func (d ImageDescriptor) ImageType() driver.ImageType {
	if d.Depth > 1 {
		return driver.ImageType3D
	}
	if d.Height > 1 {
		return driver.ImageType2D
	}
	return driver.ImageType1D
}

// Format returns the driver format for the descriptor's channel count and type
func (d ImageDescriptor) Format() (driver.Format, error) {
	if d.ChannelCount < 1 || d.ChannelCount > 4 {
		return driver.FormatUndefined, errors.Wrapf(crucible.ErrEnumConversionFailed, "no format has %d channels", d.ChannelCount)
	}

	format, ok := formatTable[d.ChannelCount-1][d.ChannelType]
	if !ok {
		return driver.FormatUndefined, errors.Wrapf(crucible.ErrEnumConversionFailed, "no format for %d channels of %s", d.ChannelCount, d.ChannelType)
	}

	return format, nil
}

// Size returns the number of bytes needed to hold every texel of the image
func (d ImageDescriptor) Size() int {
	return d.Width * d.Height * d.Depth * d.ChannelCount * d.ChannelType.Size()
}

func (d ImageDescriptor) usage() core1_0.ImageUsageFlags {
	if d.Usage == 0 {
		return DefaultImageUsage
	}
	return d.Usage
}
