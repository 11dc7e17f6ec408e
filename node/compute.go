package node

import (
	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/crucible"
	"github.com/vkngwrapper/crucible/command"
	"github.com/vkngwrapper/crucible/driver"
	"github.com/vkngwrapper/crucible/memory"
	"golang.org/x/exp/slog"
)

// ComputeNode dispatches one kernel over a grid of workgroups. Objects can be bound to its ports
// before or after Init; the pipeline is built during Init.
type ComputeNode struct {
	lifecycle

	logger   *slog.Logger
	device   driver.ComputeDevice
	builders *Registry

	descriptor *ComputeNodeDescriptor
	bindings   []driver.DescriptorBinding
	objects    *swiss.Map[string, memory.Object]

	pipeline driver.Pipeline
}

var _ Node = &ComputeNode{}

// NewComputeNode builds a node from a copy of descriptor. builders is only consulted when the
// descriptor names a builder and may be nil otherwise.
func NewComputeNode(logger *slog.Logger, device driver.ComputeDevice, builders *Registry, descriptor *ComputeNodeDescriptor) (*ComputeNode, error) {
	if descriptor == nil {
		return nil, errors.Wrap(crucible.ErrInvalidArgument, "compute node descriptor cannot be nil")
	}

	err := descriptor.Validate()
	if err != nil {
		return nil, err
	}

	bindings, err := descriptor.Bindings()
	if err != nil {
		return nil, err
	}

	return &ComputeNode{
		logger:     logger,
		device:     device,
		builders:   builders,
		descriptor: descriptor.Clone(),
		bindings:   bindings,
		objects:    swiss.NewMap[string, memory.Object](uint32(len(bindings))),
	}, nil
}

func (n *ComputeNode) Type() NodeType { return NodeTypeCompute }

// Descriptor returns a copy of the node's descriptor
func (n *ComputeNode) Descriptor() *ComputeNodeDescriptor { return n.descriptor.Clone() }

func (n *ComputeNode) FunctionName() string { return n.descriptor.FunctionName }

func (n *ComputeNode) Program() driver.Program { return n.descriptor.Program }

func (n *ComputeNode) LocalShape() [3]int { return n.descriptor.LocalShape }

func (n *ComputeNode) GridShape() [3]int { return n.descriptor.GridShape }

func (n *ComputeNode) SetGridShape(grid [3]int) { n.descriptor.GridShape = grid }

func (n *ComputeNode) ConfigureGridShape(globalShape [3]int) error {
	return n.descriptor.ConfigureGridShape(globalShape)
}

func (n *ComputeNode) PushConstants() *PushConstants { return &n.descriptor.PushConstants }

// PipelineObject returns the driver pipeline, or nil before Init
func (n *ComputeNode) PipelineObject() driver.Pipeline { return n.pipeline }

func (n *ComputeNode) Parameter(name string) (Parameter, error) {
	return n.descriptor.Parameter(name)
}

func (n *ComputeNode) SetParameter(name string, value Parameter) {
	n.descriptor.SetParameter(name, value)
}

func (n *ComputeNode) Port(name string) (memory.Object, error) {
	_, err := n.descriptor.Port(name)
	if err != nil {
		return nil, err
	}
	return lookupObject(n.objects, name)
}

// Bind attaches object to the named port. The object must pass the port's checks.
func (n *ComputeNode) Bind(name string, object memory.Object) error {
	port, err := n.descriptor.Port(name)
	if err != nil {
		return err
	}

	err = port.Validate(object)
	if err != nil {
		return err
	}

	if n.pipeline != nil {
		err = n.write(port, object)
		if err != nil {
			return err
		}
	}

	n.objects.Put(name, object)
	return nil
}

func (n *ComputeNode) write(port PortDescriptor, object memory.Object) error {
	switch typed := object.(type) {
	case *memory.Buffer:
		return n.pipeline.WriteBuffer(port.Binding, typed.DriverBuffer(), typed.Size())
	case *memory.ImageView:
		return n.pipeline.WriteImage(port.Binding, typed.DriverImageView(), typed.DriverSampler(), typed.Layout())
	}

	return errors.Wrapf(crucible.ErrPortTypeMismatch, "port %s: cannot write an object of type %s", port.Name, object.Type())
}

// Init runs the descriptor's builder, if any, builds the pipeline and writes every object bound
// so far
func (n *ComputeNode) Init() error {
	return n.init(n.onInit)
}

func (n *ComputeNode) onInit() error {
	if n.descriptor.BuilderName != "" {
		builder, err := lookupBuilder(n.builders, n.descriptor.BuilderName)
		if err != nil {
			return err
		}

		err = callBuilder(n.descriptor.BuilderName, "OnNodeInit", func() error {
			return builder.OnNodeInit(n)
		})
		if err != nil {
			return err
		}
	}

	n.logger.Debug("ComputeNode::Init",
		slog.String("function", n.descriptor.FunctionName),
		slog.Int("bindings", len(n.bindings)),
		slog.Int("pushConstantSize", n.descriptor.PushConstants.Size()))

	pipeline, err := n.device.CreateComputePipeline(driver.ComputePipelineCreateInfo{
		Program:          n.descriptor.Program,
		FunctionName:     n.descriptor.FunctionName,
		LocalShape:       n.descriptor.LocalShape,
		Bindings:         n.bindings,
		PushConstantSize: n.descriptor.PushConstants.Size(),
	})
	if err != nil {
		return err
	}
	n.pipeline = pipeline

	for _, port := range n.descriptor.Ports() {
		object, bound := n.objects.Get(port.Name)
		if !bound {
			continue
		}

		err = n.write(port, object)
		if err != nil {
			n.pipeline.Destroy()
			n.pipeline = nil
			return err
		}
	}

	return nil
}

// Record dispatches the kernel over the node's grid shape
func (n *ComputeNode) Record(buffer *command.Buffer) error {
	err := n.requireInitialized("ComputeNode.Record")
	if err != nil {
		return err
	}

	grid := n.descriptor.GridShape
	for _, component := range grid {
		if component <= 0 {
			return errors.Wrapf(crucible.ErrInvalidArgument, "grid shape components must be greater than zero, got %v", grid)
		}
	}

	return buffer.Dispatch(n.pipeline, n.descriptor.PushConstants.data, grid)
}

// Destroy releases the pipeline. Bound objects are owned by the caller.
func (n *ComputeNode) Destroy() {
	if n.pipeline != nil {
		n.pipeline.Destroy()
		n.pipeline = nil
	}
}
