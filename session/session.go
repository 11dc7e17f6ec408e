// Package session ties a device to the rest of the module: it owns the default memory pools, the
// builder registry and the program table, and runs command buffers one at a time.
package session

import (
	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/crucible"
	"github.com/vkngwrapper/crucible/command"
	"github.com/vkngwrapper/crucible/driver"
	"github.com/vkngwrapper/crucible/internal/utils"
	"github.com/vkngwrapper/crucible/memory"
	"github.com/vkngwrapper/crucible/node"
	"golang.org/x/exp/slog"
)

// Session owns the pools, programs and builders used with one device. Run submits a single
// command buffer and waits for the device to go idle before returning, so at most one buffer is
// ever in flight. Image layouts tracked at record time rely on that.
type Session struct {
	logger  *slog.Logger
	device  driver.Device
	options CreateOptions
	mutex   utils.OptionalMutex
	// runMutex serializes submissions. It is separate from mutex so validation messages can be
	// reported while a submission blocks.
	runMutex utils.OptionalMutex

	pools        []*memory.Pool
	hostMemory   *memory.Pool
	deviceMemory *memory.Pool

	builders *node.Registry
	programs *swiss.Map[string, driver.Program]

	validationMessages []string
	destroyed          bool
}

// New creates a session over device together with its default host and device memory pools
func New(logger *slog.Logger, device driver.Device, options CreateOptions) (*Session, error) {
	options = options.withDefaults()

	session := &Session{
		logger:   logger,
		device:   device,
		options:  options,
		mutex:    utils.NewOptionalMutex(options.Flags&CreateExternallySynchronized == 0),
		runMutex: utils.NewOptionalMutex(options.Flags&CreateExternallySynchronized == 0),
		builders: node.NewRegistry(),
		programs: swiss.NewMap[string, driver.Program](8),
	}

	var err error
	session.hostMemory, err = session.CreateMemory(options.HostMemoryFlags, options.HostPageSize)
	if err != nil {
		return nil, errors.Wrap(err, "creating the host memory pool")
	}

	session.deviceMemory, err = session.CreateMemory(options.DeviceMemoryFlags, options.DevicePageSize)
	if err != nil {
		return nil, errors.CombineErrors(errors.Wrap(err, "creating the device memory pool"), session.hostMemory.Destroy())
	}

	logger.Debug("Session::New",
		slog.String("HostMemoryFlags", options.HostMemoryFlags.String()),
		slog.String("DeviceMemoryFlags", options.DeviceMemoryFlags.String()))

	return session, nil
}

func (s *Session) Device() driver.Device { return s.device }

// CreateMemory creates a pool over the first memory type with flags. The session destroys it in
// Destroy.
func (s *Session) CreateMemory(flags core1_0.MemoryPropertyFlags, pageSize int) (*memory.Pool, error) {
	var poolFlags memory.PoolCreateFlags
	if s.options.Flags&CreateExternallySynchronized != 0 {
		poolFlags |= memory.PoolCreateExternallySynchronized
	}

	pool, err := memory.NewPool(s.logger, s.device, flags, memory.CreateOptions{
		Flags:    poolFlags,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.pools = append(s.pools, pool)
	return pool, nil
}

// HostMemory is the default host-visible pool, used for staging data in and out of the device
func (s *Session) HostMemory() *memory.Pool { return s.hostMemory }

func (s *Session) DeviceMemory() *memory.Pool { return s.deviceMemory }

// Pools returns every pool the session created, default pools first
func (s *Session) Pools() []*memory.Pool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	pools := make([]*memory.Pool, len(s.pools))
	copy(pools, s.pools)
	return pools
}

func (s *Session) CreateCommandBuffer() (*command.Buffer, error) {
	return command.New(s.logger, s.device)
}

// Run submits an ended command buffer and blocks until the device is idle. Concurrent calls are
// submitted one at a time.
func (s *Session) Run(buffer *command.Buffer) error {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	return buffer.Submit(s.device)
}

// RunNode records n into a fresh command buffer and runs it
func (s *Session) RunNode(n node.Node) error {
	return s.oneShot(func(buffer *command.Buffer) error {
		return buffer.Run(n)
	})
}

// oneShot records and runs a temporary command buffer. No other submission can happen between
// recording and running it. If anything fails before submission, Destroy gives the images the
// recording transitioned their previous layouts back.
func (s *Session) oneShot(record func(buffer *command.Buffer) error) error {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	buffer, err := s.CreateCommandBuffer()
	if err != nil {
		return err
	}
	defer buffer.Destroy()

	err = buffer.Begin()
	if err != nil {
		return err
	}

	err = record(buffer)
	if err != nil {
		return err
	}

	err = buffer.End()
	if err != nil {
		return err
	}

	return buffer.Submit(s.device)
}

func (s *Session) CreateDuration() (*command.Duration, error) {
	return command.NewDuration(s.device)
}

func (s *Session) Builders() *node.Registry { return s.builders }

func (s *Session) RegisterBuilder(name string, builder node.Builder) error {
	return s.builders.Register(name, builder)
}

func (s *Session) Builder(name string) (node.Builder, error) {
	return s.builders.Builder(name)
}

// SetProgram stores program under name. A program previously stored under the same name is
// destroyed.
func (s *Session) SetProgram(name string, program driver.Program) error {
	if name == "" {
		return errors.Wrap(crucible.ErrInvalidArgument, "program name cannot be empty")
	}
	if program == nil {
		return errors.Wrapf(crucible.ErrInvalidArgument, "program %q cannot be nil", name)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	previous, ok := s.programs.Get(name)
	if ok && previous != program {
		previous.Destroy()
	}
	s.programs.Put(name, program)
	return nil
}

func (s *Session) Program(name string) (driver.Program, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	program, ok := s.programs.Get(name)
	if !ok {
		return nil, errors.Wrapf(crucible.ErrKeyNotFound, "no program named %q", name)
	}
	return program, nil
}

func (s *Session) CreateComputeNode(descriptor *node.ComputeNodeDescriptor) (*node.ComputeNode, error) {
	return node.NewComputeNode(s.logger, s.device, s.builders, descriptor)
}

// CreateContainerNode asks the builder registered as builderName for a descriptor and creates a
// container node from it
func (s *Session) CreateContainerNode(builderName string) (*node.ContainerNode, error) {
	builder, err := s.builders.Builder(builderName)
	if err != nil {
		return nil, err
	}

	descriptor, err := builder.NewDescriptor()
	if err != nil {
		return nil, errors.Wrapf(err, "builder %q failed in NewDescriptor", builderName)
	}
	if descriptor == nil {
		return nil, errors.Wrapf(crucible.ErrInvalidArgument, "builder %q returned no descriptor", builderName)
	}

	descriptor.BuilderName = builderName
	return node.NewContainerNode(s.logger, s.builders, descriptor)
}

func (s *Session) CreateContainerNodeFromDescriptor(descriptor *node.ContainerNodeDescriptor) (*node.ContainerNode, error) {
	return node.NewContainerNode(s.logger, s.builders, descriptor)
}

// Destroy destroys the stored programs and every pool. Pools still holding allocations report
// them; all failures are returned together.
func (s *Session) Destroy() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.destroyed {
		return errors.Wrap(crucible.ErrInvalidState, "the session has already been destroyed")
	}
	s.destroyed = true

	s.programs.Iter(func(name string, program driver.Program) bool {
		program.Destroy()
		return false
	})
	s.programs.Clear()

	var err error
	for _, pool := range s.pools {
		err = errors.CombineErrors(err, pool.Destroy())
	}
	return err
}
