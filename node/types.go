// Package node holds the compute graph model: compute nodes that dispatch a single kernel, and
// container nodes that group child nodes under builder-supplied init and record logic.
package node

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/crucible"
	"github.com/vkngwrapper/crucible/driver"
)

type NodeType int32

const (
	NodeTypeCompute NodeType = iota
	NodeTypeContainer
)

var nodeTypeMapping = map[NodeType]string{
	NodeTypeCompute:   "Compute",
	NodeTypeContainer: "Container",
}

func (t NodeType) String() string {
	str, ok := nodeTypeMapping[t]
	if !ok {
		return fmt.Sprintf("NodeType(%d)", int32(t))
	}
	return str
}

// NodeState is the lifecycle state of a node. Nodes start out Created and become Initialized
// exactly once.
type NodeState int32

const (
	NodeStateCreated NodeState = iota
	NodeStateInitialized
)

var nodeStateMapping = map[NodeState]string{
	NodeStateCreated:     "Created",
	NodeStateInitialized: "Initialized",
}

func (s NodeState) String() string {
	str, ok := nodeStateMapping[s]
	if !ok {
		return fmt.Sprintf("NodeState(%d)", int32(s))
	}
	return str
}

type PortDirection int32

const (
	PortDirectionIn PortDirection = iota
	PortDirectionOut
)

var portDirectionMapping = map[PortDirection]string{
	PortDirectionIn:  "In",
	PortDirectionOut: "Out",
}

func (d PortDirection) String() string {
	str, ok := portDirectionMapping[d]
	if !ok {
		return fmt.Sprintf("PortDirection(%d)", int32(d))
	}
	return str
}

// PortType is the kind of object a port accepts and how the kernel accesses it
type PortType int32

const (
	PortTypeBuffer PortType = iota
	PortTypeImageView
	PortTypeSampledImageView
	PortTypeUniformBuffer
)

var portTypeMapping = map[PortType]string{
	PortTypeBuffer:           "Buffer",
	PortTypeImageView:        "ImageView",
	PortTypeSampledImageView: "SampledImageView",
	PortTypeUniformBuffer:    "UniformBuffer",
}

func (t PortType) String() string {
	str, ok := portTypeMapping[t]
	if !ok {
		return fmt.Sprintf("PortType(%d)", int32(t))
	}
	return str
}

// DescriptorType returns the shader binding type a port of this type is declared with
func (t PortType) DescriptorType() (driver.DescriptorType, error) {
	switch t {
	case PortTypeBuffer:
		return driver.DescriptorTypeStorageBuffer, nil
	case PortTypeImageView:
		return driver.DescriptorTypeStorageImage, nil
	case PortTypeSampledImageView:
		return driver.DescriptorTypeCombinedImageSampler, nil
	case PortTypeUniformBuffer:
		return driver.DescriptorTypeUniformBuffer, nil
	}

	return 0, errors.Wrapf(crucible.ErrEnumConversionFailed, "port type %s has no descriptor type", t)
}

// PortTypeFromDescriptorType is the inverse of PortType.DescriptorType
func PortTypeFromDescriptorType(descriptorType driver.DescriptorType) (PortType, error) {
	switch descriptorType {
	case driver.DescriptorTypeStorageBuffer:
		return PortTypeBuffer, nil
	case driver.DescriptorTypeStorageImage:
		return PortTypeImageView, nil
	case driver.DescriptorTypeCombinedImageSampler:
		return PortTypeSampledImageView, nil
	case driver.DescriptorTypeUniformBuffer:
		return PortTypeUniformBuffer, nil
	}

	return 0, errors.Wrapf(crucible.ErrEnumConversionFailed, "descriptor type %s has no port type", descriptorType)
}
