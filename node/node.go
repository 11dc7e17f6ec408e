package node

import (
	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/crucible"
	"github.com/vkngwrapper/crucible/command"
	"github.com/vkngwrapper/crucible/memory"
)

// Node is a unit of the compute graph: a set of named ports objects are bound to, a set of
// parameters, and the commands it records into a command buffer once initialized
type Node interface {
	Type() NodeType
	State() NodeState

	// Init moves a Created node to Initialized. Calling it a second time fails with
	// crucible.ErrInvalidState.
	Init() error

	Port(name string) (memory.Object, error)
	Bind(name string, object memory.Object) error

	Parameter(name string) (Parameter, error)
	SetParameter(name string, value Parameter)

	Record(buffer *command.Buffer) error
}

type lifecycle struct {
	state NodeState
}

func (l *lifecycle) State() NodeState { return l.state }

// init runs onInit and commits the Initialized state only if it succeeds
func (l *lifecycle) init(onInit func() error) error {
	if l.state != NodeStateCreated {
		return errors.Wrapf(crucible.ErrInvalidState, "node is already %s", l.state)
	}

	err := onInit()
	if err != nil {
		return err
	}

	l.state = NodeStateInitialized
	return nil
}

func (l *lifecycle) requireInitialized(operation string) error {
	if l.state != NodeStateInitialized {
		return errors.Wrapf(crucible.ErrInvalidState, "%s requires an initialized node, but it is %s", operation, l.state)
	}
	return nil
}

// ports finds port descriptors by name while keeping their declaration order
type ports struct {
	order  []string
	byName *swiss.Map[string, PortDescriptor]
}

func newPorts() ports {
	return ports{byName: swiss.NewMap[string, PortDescriptor](4)}
}

func (p *ports) add(port PortDescriptor) error {
	if port.Name == "" {
		return errors.Wrap(crucible.ErrInvalidArgument, "port name cannot be empty")
	}
	if port.Binding < 0 {
		return errors.Wrapf(crucible.ErrInvalidArgument, "port %s: binding cannot be negative", port.Name)
	}

	if !p.byName.Has(port.Name) {
		p.order = append(p.order, port.Name)
	}
	p.byName.Put(port.Name, port)
	return nil
}

// bindingOwner returns the name of a declared port other than name that uses binding
func (p *ports) bindingOwner(binding int, name string) (string, bool) {
	for _, declared := range p.order {
		if declared == name {
			continue
		}
		port, _ := p.byName.Get(declared)
		if port.Binding == binding {
			return declared, true
		}
	}
	return "", false
}

func (p *ports) get(name string) (PortDescriptor, error) {
	port, ok := p.byName.Get(name)
	if !ok {
		return PortDescriptor{}, errors.Wrapf(crucible.ErrKeyNotFound, "port %s is not declared", name)
	}
	return port, nil
}

func (p *ports) list() []PortDescriptor {
	list := make([]PortDescriptor, 0, len(p.order))
	for _, name := range p.order {
		port, _ := p.byName.Get(name)
		list = append(list, port)
	}
	return list
}

func (p *ports) clone() ports {
	cloned := newPorts()
	for _, port := range p.list() {
		_ = cloned.add(port)
	}
	return cloned
}

func cloneParameters(parameters *swiss.Map[string, Parameter]) *swiss.Map[string, Parameter] {
	cloned := swiss.NewMap[string, Parameter](uint32(parameters.Count()))
	parameters.Iter(func(name string, value Parameter) bool {
		cloned.Put(name, value)
		return false
	})
	return cloned
}

func lookupParameter(parameters *swiss.Map[string, Parameter], name string) (Parameter, error) {
	value, ok := parameters.Get(name)
	if !ok {
		return Parameter{}, errors.Wrapf(crucible.ErrKeyNotFound, "parameter %s is not set", name)
	}
	return value, nil
}

func lookupObject(objects *swiss.Map[string, memory.Object], name string) (memory.Object, error) {
	object, ok := objects.Get(name)
	if !ok {
		return nil, errors.Wrapf(crucible.ErrKeyNotFound, "nothing is bound to port %s", name)
	}
	return object, nil
}
