package memory

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/crucible"
	"github.com/vkngwrapper/crucible/driver"
)

// Axis names one coordinate of an image
type Axis int

const (
	AxisU Axis = iota
	AxisV
	AxisW
)

// ImageViewDescriptor describes how an image view is accessed by shaders. Sampled views also get a
// sampler built from the address and filter modes.
type ImageViewDescriptor struct {
	AddressMode           [3]driver.SamplerAddressMode
	FilterMode            driver.Filter
	NormalizedCoordinates bool
	Sampled               bool
}

func NewImageViewDescriptor(addressMode driver.SamplerAddressMode, filterMode driver.Filter, normalizedCoordinates, sampled bool) ImageViewDescriptor {
	d := ImageViewDescriptor{
		FilterMode:            filterMode,
		NormalizedCoordinates: normalizedCoordinates,
		Sampled:               sampled,
	}
	d.SetAddressMode(addressMode)
	return d
}

// SetAddressMode uses the same address mode on every axis
func (d *ImageViewDescriptor) SetAddressMode(addressMode driver.SamplerAddressMode) {
	d.AddressMode = [3]driver.SamplerAddressMode{addressMode, addressMode, addressMode}
}

func (d *ImageViewDescriptor) SetAxisAddressMode(axis Axis, addressMode driver.SamplerAddressMode) error {
	if axis < AxisU || axis > AxisW {
		return errors.Wrapf(crucible.ErrInvalidArgument, "unknown axis %d", axis)
	}

	d.AddressMode[axis] = addressMode
	return nil
}

func (d ImageViewDescriptor) SamplerCreateInfo() driver.SamplerCreateInfo {
	return driver.SamplerCreateInfo{
		AddressModeU:            d.AddressMode[AxisU],
		AddressModeV:            d.AddressMode[AxisV],
		AddressModeW:            d.AddressMode[AxisW],
		MagFilter:               d.FilterMode,
		MinFilter:               d.FilterMode,
		UnnormalizedCoordinates: !d.NormalizedCoordinates,
	}
}
