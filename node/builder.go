package node

import (
	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/crucible"
	"github.com/vkngwrapper/crucible/command"
	"golang.org/x/exp/slices"
)

// Builder supplies the init and record logic of nodes that name it. Implementations may be native
// Go or backed by a scripting environment; nodes call them synchronously and pass themselves in.
type Builder interface {
	// NewDescriptor returns the descriptor container nodes built by this builder start from
	NewDescriptor() (*ContainerNodeDescriptor, error)
	// OnNodeInit runs during Init, after the caller has bound the node's inputs. For container
	// nodes it typically creates child nodes and binds their ports.
	OnNodeInit(node Node) error
	// OnNodeRecord records the node's work into buffer
	OnNodeRecord(node Node, buffer *command.Buffer) error
}

// Registry maps builder names to builders. It is not safe for concurrent use.
type Registry struct {
	builders *swiss.Map[string, Builder]
}

func NewRegistry() *Registry {
	return &Registry{builders: swiss.NewMap[string, Builder](8)}
}

// Register adds builder under name, replacing any builder previously registered under it
func (r *Registry) Register(name string, builder Builder) error {
	if name == "" {
		return errors.Wrap(crucible.ErrInvalidArgument, "builder name cannot be empty")
	}
	if builder == nil {
		return errors.Wrapf(crucible.ErrInvalidArgument, "builder %q cannot be nil", name)
	}

	r.builders.Put(name, builder)
	return nil
}

func (r *Registry) Builder(name string) (Builder, error) {
	builder, ok := r.builders.Get(name)
	if !ok {
		return nil, errors.Wrapf(crucible.ErrKeyNotFound, "no builder registered as %q", name)
	}
	return builder, nil
}

// Names returns the registered builder names in sorted order
func (r *Registry) Names() []string {
	names := make([]string, 0, r.builders.Count())
	r.builders.Iter(func(name string, _ Builder) bool {
		names = append(names, name)
		return false
	})
	slices.Sort(names)
	return names
}

func lookupBuilder(registry *Registry, name string) (Builder, error) {
	if registry == nil {
		return nil, errors.Wrapf(crucible.ErrKeyNotFound, "no builder registry to look up %q", name)
	}
	return registry.Builder(name)
}

// callBuilder runs one builder callback, turning a panic into an error so that a failing builder
// always surfaces as a single error to the caller
func callBuilder(name string, phase string, call func() error) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = errors.Newf("builder %q panicked in %s: %v", name, phase, recovered)
		}
	}()

	err = call()
	if err != nil {
		return errors.Wrapf(err, "builder %q failed in %s", name, phase)
	}
	return nil
}
