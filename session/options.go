package session

import (
	"bytes"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/crucible"
	"gopkg.in/yaml.v3"
)

// CreateFlags indicate specific session behaviors to activate or deactivate
type CreateFlags int32

var createFlagsMapping = common.NewFlagStringMapping[CreateFlags]()

func (f CreateFlags) Register(str string) {
	createFlagsMapping.Register(f, str)
}
func (f CreateFlags) String() string {
	return createFlagsMapping.FlagsToString(f)
}

const (
	// CreateExternallySynchronized ensures the session and every pool it creates are not
	// synchronized internally. The consumer must guarantee they are used from one goroutine at a
	// time.
	CreateExternallySynchronized CreateFlags = 1 << iota
)

func init() {
	CreateExternallySynchronized.Register("CreateExternallySynchronized")
}

var createFlagNames = map[string]CreateFlags{
	"ExternallySynchronized": CreateExternallySynchronized,
}

var memoryPropertyNames = map[string]core1_0.MemoryPropertyFlags{
	"DeviceLocal":     core1_0.MemoryPropertyDeviceLocal,
	"HostVisible":     core1_0.MemoryPropertyHostVisible,
	"HostCoherent":    core1_0.MemoryPropertyHostCoherent,
	"HostCached":      core1_0.MemoryPropertyHostCached,
	"LazilyAllocated": core1_0.MemoryPropertyLazilyAllocated,
}

const (
	// DefaultPageSize is the page size of the default pools when CreateOptions leaves it at 0. It is
	// equal to 32Mb.
	DefaultPageSize int = 32 * 1024 * 1024

	DefaultHostMemoryFlags   = core1_0.MemoryPropertyHostVisible | core1_0.MemoryPropertyHostCoherent
	DefaultDeviceMemoryFlags = core1_0.MemoryPropertyDeviceLocal
)

// CreateOptions contains optional settings when creating a session. It is valid to leave every
// field blank.
type CreateOptions struct {
	Flags CreateFlags

	// HostPageSize is the page size of the default host memory pool
	HostPageSize int
	// DevicePageSize is the page size of the default device memory pool
	DevicePageSize int

	// HostMemoryFlags selects the memory type of the default host memory pool. It must include
	// HostVisible for buffers of that pool to be mappable.
	HostMemoryFlags core1_0.MemoryPropertyFlags
	// DeviceMemoryFlags selects the memory type of the default device memory pool
	DeviceMemoryFlags core1_0.MemoryPropertyFlags
}

func (o CreateOptions) withDefaults() CreateOptions {
	if o.HostPageSize == 0 {
		o.HostPageSize = DefaultPageSize
	}
	if o.DevicePageSize == 0 {
		o.DevicePageSize = DefaultPageSize
	}
	if o.HostMemoryFlags == 0 {
		o.HostMemoryFlags = DefaultHostMemoryFlags
	}
	if o.DeviceMemoryFlags == 0 {
		o.DeviceMemoryFlags = DefaultDeviceMemoryFlags
	}
	return o
}

type optionsDocument struct {
	Flags             []string `yaml:"flags"`
	HostPageSize      int      `yaml:"hostPageSize"`
	DevicePageSize    int      `yaml:"devicePageSize"`
	HostMemoryFlags   []string `yaml:"hostMemoryFlags"`
	DeviceMemoryFlags []string `yaml:"deviceMemoryFlags"`
}

// LoadOptions decodes CreateOptions from a YAML document such as
//
//	flags: [ExternallySynchronized]
//	hostPageSize: 16777216
//	deviceMemoryFlags: [DeviceLocal]
//
// Unknown keys and flag names are rejected. An empty document yields zero options.
func LoadOptions(data []byte) (CreateOptions, error) {
	var document optionsDocument

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	err := decoder.Decode(&document)
	if err != nil && !errors.Is(err, io.EOF) {
		return CreateOptions{}, errors.Mark(errors.Wrap(err, "decoding session options"), crucible.ErrInvalidArgument)
	}

	if document.HostPageSize < 0 || document.DevicePageSize < 0 {
		return CreateOptions{}, errors.Wrapf(crucible.ErrInvalidArgument, "page sizes must not be negative, got %d and %d",
			document.HostPageSize, document.DevicePageSize)
	}

	options := CreateOptions{
		HostPageSize:   document.HostPageSize,
		DevicePageSize: document.DevicePageSize,
	}

	for _, name := range document.Flags {
		flag, ok := createFlagNames[name]
		if !ok {
			return CreateOptions{}, errors.Wrapf(crucible.ErrInvalidArgument, "unknown session flag %q", name)
		}
		options.Flags |= flag
	}

	options.HostMemoryFlags, err = parseMemoryFlags(document.HostMemoryFlags)
	if err != nil {
		return CreateOptions{}, err
	}

	options.DeviceMemoryFlags, err = parseMemoryFlags(document.DeviceMemoryFlags)
	if err != nil {
		return CreateOptions{}, err
	}

	return options, nil
}

// LoadOptionsFile reads and decodes the YAML options file at path
func LoadOptionsFile(path string) (CreateOptions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CreateOptions{}, errors.Wrapf(err, "reading session options %s", path)
	}
	return LoadOptions(data)
}

func parseMemoryFlags(names []string) (core1_0.MemoryPropertyFlags, error) {
	var flags core1_0.MemoryPropertyFlags
	for _, name := range names {
		flag, ok := memoryPropertyNames[name]
		if !ok {
			return 0, errors.Wrapf(crucible.ErrInvalidArgument, "unknown memory property %q", name)
		}
		flags |= flag
	}
	return flags, nil
}
