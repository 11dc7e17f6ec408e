package node

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/crucible"
	"github.com/vkngwrapper/crucible/memory"
	"golang.org/x/exp/slices"
)

// PortDescriptor declares one named input or output of a node, the shader binding it maps to and
// the checks an object must pass to be bound to it
type PortDescriptor struct {
	Binding   int
	Name      string
	Direction PortDirection
	Type      PortType

	channelCount          int
	channelTypes          []memory.ChannelType
	normalizedCoordinates *bool
}

func NewPortDescriptor(binding int, name string, direction PortDirection, portType PortType) PortDescriptor {
	return PortDescriptor{
		Binding:   binding,
		Name:      name,
		Direction: direction,
		Type:      portType,
	}
}

// CheckImageChannelCountIs requires bound image views to have count channels
func (p PortDescriptor) CheckImageChannelCountIs(count int) PortDescriptor {
	p.channelCount = count
	return p
}

// CheckImageChannelTypeIsAnyOf requires bound image views to use one of channelTypes. Each call
// replaces the previous list.
func (p PortDescriptor) CheckImageChannelTypeIsAnyOf(channelTypes ...memory.ChannelType) PortDescriptor {
	p.channelTypes = slices.Clone(channelTypes)
	return p
}

func (p PortDescriptor) CheckImageChannelTypeIs(channelType memory.ChannelType) PortDescriptor {
	return p.CheckImageChannelTypeIsAnyOf(channelType)
}

// CheckImageViewNormalizedCoordinatesIs requires bound sampled views to use, or not use,
// normalized coordinates
func (p PortDescriptor) CheckImageViewNormalizedCoordinatesIs(normalized bool) PortDescriptor {
	p.normalizedCoordinates = &normalized
	return p
}

// Validate returns an error wrapping crucible.ErrPortTypeMismatch if obj cannot be bound to the port
func (p PortDescriptor) Validate(obj memory.Object) error {
	if obj == nil {
		return errors.Wrapf(crucible.ErrPortTypeMismatch, "port %s: cannot bind a nil object", p.Name)
	}

	switch p.Type {
	case PortTypeBuffer, PortTypeUniformBuffer:
		if obj.Type() != memory.ObjectTypeBuffer {
			return errors.Wrapf(crucible.ErrPortTypeMismatch, "port %s of type %s: cannot bind an object of type %s",
				p.Name, p.Type, obj.Type())
		}
		return nil
	case PortTypeImageView, PortTypeSampledImageView:
		view, ok := obj.(*memory.ImageView)
		if !ok {
			return errors.Wrapf(crucible.ErrPortTypeMismatch, "port %s of type %s: cannot bind an object of type %s",
				p.Name, p.Type, obj.Type())
		}
		return p.validateImageView(view)
	}

	return errors.Wrapf(crucible.ErrPortTypeMismatch, "port %s has unknown type %s", p.Name, p.Type)
}

func (p PortDescriptor) validateImageView(view *memory.ImageView) error {
	sampled := p.Type == PortTypeSampledImageView
	if view.IsSampled() != sampled {
		return errors.Wrapf(crucible.ErrPortTypeMismatch, "port %s of type %s: image view sampled flag is %t",
			p.Name, p.Type, view.IsSampled())
	}

	if p.channelCount > 0 && view.ChannelCount() != p.channelCount {
		return errors.Wrapf(crucible.ErrPortTypeMismatch, "port %s: expected %d channels, got %d",
			p.Name, p.channelCount, view.ChannelCount())
	}

	if len(p.channelTypes) > 0 && !slices.Contains(p.channelTypes, view.ChannelType()) {
		return errors.Wrapf(crucible.ErrPortTypeMismatch, "port %s: channel type %s is not one of %v",
			p.Name, view.ChannelType(), p.channelTypes)
	}

	if p.normalizedCoordinates != nil && view.Descriptor().NormalizedCoordinates != *p.normalizedCoordinates {
		return errors.Wrapf(crucible.ErrPortTypeMismatch, "port %s: expected normalized coordinates %t",
			p.Name, *p.normalizedCoordinates)
	}

	return nil
}
