package node

import (
	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/crucible"
	"github.com/vkngwrapper/crucible/driver"
	"github.com/vkngwrapper/crucible/memutils"
)

// ComputeNodeDescriptor describes a compute node: the kernel it runs, its ports, the workgroup
// size the kernel was written for (LocalShape) and the number of workgroups dispatched (GridShape)
type ComputeNodeDescriptor struct {
	Program      driver.Program
	FunctionName string
	// BuilderName optionally names a builder whose OnNodeInit runs before the pipeline is built
	BuilderName string

	GridShape  [3]int
	LocalShape [3]int

	PushConstants PushConstants

	ports      ports
	parameters *swiss.Map[string, Parameter]
}

func NewComputeNodeDescriptor() *ComputeNodeDescriptor {
	return &ComputeNodeDescriptor{
		GridShape:  [3]int{1, 1, 1},
		LocalShape: [3]int{1, 1, 1},
		ports:      newPorts(),
		parameters: swiss.NewMap[string, Parameter](4),
	}
}

// AddPort declares port, replacing a previously declared port of the same name. Each port needs
// its own binding index.
func (d *ComputeNodeDescriptor) AddPort(port PortDescriptor) error {
	owner, taken := d.ports.bindingOwner(port.Binding, port.Name)
	if taken {
		return errors.Wrapf(crucible.ErrInvalidArgument, "port %s: binding %d is already used by port %s", port.Name, port.Binding, owner)
	}
	return d.ports.add(port)
}

func (d *ComputeNodeDescriptor) Port(name string) (PortDescriptor, error) {
	return d.ports.get(name)
}

// Ports returns the declared ports in declaration order
func (d *ComputeNodeDescriptor) Ports() []PortDescriptor {
	return d.ports.list()
}

func (d *ComputeNodeDescriptor) SetParameter(name string, value Parameter) {
	d.parameters.Put(name, value)
}

func (d *ComputeNodeDescriptor) Parameter(name string) (Parameter, error) {
	return lookupParameter(d.parameters, name)
}

// ConfigureGridShape sets GridShape to the number of workgroups of LocalShape needed to cover
// globalShape
func (d *ComputeNodeDescriptor) ConfigureGridShape(globalShape [3]int) error {
	grid, err := gridShapeFor(globalShape, d.LocalShape)
	if err != nil {
		return err
	}
	d.GridShape = grid
	return nil
}

func gridShapeFor(globalShape, localShape [3]int) ([3]int, error) {
	var grid [3]int
	for i := range globalShape {
		if globalShape[i] <= 0 || localShape[i] <= 0 {
			return grid, errors.Wrapf(crucible.ErrInvalidArgument, "cannot derive a grid shape from global shape %v and local shape %v",
				globalShape, localShape)
		}
		grid[i] = memutils.DivideRoundingUp(globalShape[i], localShape[i])
	}
	return grid, nil
}

// Validate checks the fields a compute node cannot be built without
func (d *ComputeNodeDescriptor) Validate() error {
	if d.Program == nil {
		return errors.Wrap(crucible.ErrInvalidArgument, "compute node descriptor has no program")
	}
	if d.FunctionName == "" {
		return errors.Wrap(crucible.ErrInvalidArgument, "compute node descriptor has no function name")
	}
	for _, component := range d.LocalShape {
		if component <= 0 {
			return errors.Wrapf(crucible.ErrInvalidArgument, "local shape components must be greater than zero, got %v", d.LocalShape)
		}
	}
	return nil
}

// Bindings returns the shader bindings of the declared ports
func (d *ComputeNodeDescriptor) Bindings() ([]driver.DescriptorBinding, error) {
	ports := d.ports.list()
	bindings := make([]driver.DescriptorBinding, 0, len(ports))
	for _, port := range ports {
		descriptorType, err := port.Type.DescriptorType()
		if err != nil {
			return nil, errors.Wrapf(err, "port %s", port.Name)
		}
		bindings = append(bindings, driver.DescriptorBinding{Binding: port.Binding, Type: descriptorType})
	}
	return bindings, nil
}

// Clone returns a deep copy of the descriptor. The program handle is shared.
func (d *ComputeNodeDescriptor) Clone() *ComputeNodeDescriptor {
	return &ComputeNodeDescriptor{
		Program:       d.Program,
		FunctionName:  d.FunctionName,
		BuilderName:   d.BuilderName,
		GridShape:     d.GridShape,
		LocalShape:    d.LocalShape,
		PushConstants: d.PushConstants.clone(),
		ports:         d.ports.clone(),
		parameters:    cloneParameters(d.parameters),
	}
}
