package node

import (
	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/crucible"
	"github.com/vkngwrapper/crucible/command"
	"github.com/vkngwrapper/crucible/memory"
	"golang.org/x/exp/slog"
)

// ContainerNodeDescriptor describes a container node: its declared ports, its parameters and the
// builder that supplies its init and record logic
type ContainerNodeDescriptor struct {
	BuilderName string

	ports      ports
	parameters *swiss.Map[string, Parameter]
}

func NewContainerNodeDescriptor() *ContainerNodeDescriptor {
	return &ContainerNodeDescriptor{
		ports:      newPorts(),
		parameters: swiss.NewMap[string, Parameter](4),
	}
}

func (d *ContainerNodeDescriptor) AddPort(port PortDescriptor) error {
	return d.ports.add(port)
}

func (d *ContainerNodeDescriptor) Port(name string) (PortDescriptor, error) {
	return d.ports.get(name)
}

func (d *ContainerNodeDescriptor) Ports() []PortDescriptor {
	return d.ports.list()
}

func (d *ContainerNodeDescriptor) SetParameter(name string, value Parameter) {
	d.parameters.Put(name, value)
}

func (d *ContainerNodeDescriptor) Parameter(name string) (Parameter, error) {
	return lookupParameter(d.parameters, name)
}

func (d *ContainerNodeDescriptor) Clone() *ContainerNodeDescriptor {
	return &ContainerNodeDescriptor{
		BuilderName: d.BuilderName,
		ports:       d.ports.clone(),
		parameters:  cloneParameters(d.parameters),
	}
}

// ContainerNode groups child nodes. Its init and record logic come from the builder named by its
// descriptor; without one, Init does nothing and Record records every child in the order it was
// added, each followed by a memory barrier.
type ContainerNode struct {
	lifecycle

	logger   *slog.Logger
	builders *Registry

	descriptor *ContainerNodeDescriptor
	objects    *swiss.Map[string, memory.Object]

	childOrder []string
	children   *swiss.Map[string, Node]
}

var _ Node = &ContainerNode{}

func NewContainerNode(logger *slog.Logger, builders *Registry, descriptor *ContainerNodeDescriptor) (*ContainerNode, error) {
	if descriptor == nil {
		return nil, errors.Wrap(crucible.ErrInvalidArgument, "container node descriptor cannot be nil")
	}

	return &ContainerNode{
		logger:     logger,
		builders:   builders,
		descriptor: descriptor.Clone(),
		objects:    swiss.NewMap[string, memory.Object](4),
		children:   swiss.NewMap[string, Node](4),
	}, nil
}

func (n *ContainerNode) Type() NodeType { return NodeTypeContainer }

func (n *ContainerNode) Descriptor() *ContainerNodeDescriptor { return n.descriptor.Clone() }

func (n *ContainerNode) Parameter(name string) (Parameter, error) {
	return n.descriptor.Parameter(name)
}

func (n *ContainerNode) SetParameter(name string, value Parameter) {
	n.descriptor.SetParameter(name, value)
}

func (n *ContainerNode) Port(name string) (memory.Object, error) {
	return lookupObject(n.objects, name)
}

// Bind attaches object to the named port. Ports declared in the descriptor check the object;
// any other name is accepted as is, which lets builders pass intermediate objects around.
func (n *ContainerNode) Bind(name string, object memory.Object) error {
	if object == nil {
		return errors.Wrapf(crucible.ErrInvalidArgument, "cannot bind a nil object to port %s", name)
	}

	port, err := n.descriptor.Port(name)
	if err == nil {
		err = port.Validate(object)
		if err != nil {
			return err
		}
	}

	n.objects.Put(name, object)
	return nil
}

// BindNode adds a child under name. Rebinding a name replaces the child but keeps its position.
func (n *ContainerNode) BindNode(name string, child Node) error {
	if child == nil {
		return errors.Wrapf(crucible.ErrInvalidArgument, "cannot bind a nil node as %s", name)
	}

	if !n.children.Has(name) {
		n.childOrder = append(n.childOrder, name)
	}
	n.children.Put(name, child)
	return nil
}

func (n *ContainerNode) Node(name string) (Node, error) {
	child, ok := n.children.Get(name)
	if !ok {
		return nil, errors.Wrapf(crucible.ErrKeyNotFound, "no child node named %s", name)
	}
	return child, nil
}

// NodeNames returns the child names in the order they were first bound
func (n *ContainerNode) NodeNames() []string {
	names := make([]string, len(n.childOrder))
	copy(names, n.childOrder)
	return names
}

func (n *ContainerNode) Init() error {
	return n.init(n.onInit)
}

func (n *ContainerNode) onInit() error {
	if n.descriptor.BuilderName == "" {
		return nil
	}

	builder, err := lookupBuilder(n.builders, n.descriptor.BuilderName)
	if err != nil {
		return err
	}

	n.logger.Debug("ContainerNode::Init", slog.String("builder", n.descriptor.BuilderName))

	return callBuilder(n.descriptor.BuilderName, "OnNodeInit", func() error {
		return builder.OnNodeInit(n)
	})
}

func (n *ContainerNode) Record(buffer *command.Buffer) error {
	err := n.requireInitialized("ContainerNode.Record")
	if err != nil {
		return err
	}

	if n.descriptor.BuilderName == "" {
		return n.RecordChildren(buffer)
	}

	builder, err := lookupBuilder(n.builders, n.descriptor.BuilderName)
	if err != nil {
		return err
	}

	return callBuilder(n.descriptor.BuilderName, "OnNodeRecord", func() error {
		return builder.OnNodeRecord(n, buffer)
	})
}

// RecordChildren records every child in order with a memory barrier after each one, so each child
// reads what the previous children wrote
func (n *ContainerNode) RecordChildren(buffer *command.Buffer) error {
	for _, name := range n.childOrder {
		child, _ := n.children.Get(name)

		err := buffer.Run(child)
		if err != nil {
			return errors.Wrapf(err, "recording child node %s", name)
		}

		err = buffer.MemoryBarrier()
		if err != nil {
			return err
		}
	}
	return nil
}
