package vulkan

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/core1_0"
	vkdriver "github.com/vkngwrapper/core/v2/driver"
	"github.com/vkngwrapper/crucible"
	"github.com/vkngwrapper/crucible/driver"
	"github.com/vkngwrapper/crucible/internal/utils"
	"golang.org/x/exp/slog"
)

// ComputeDevice builds compute pipelines, records command buffers and submits them to a single
// queue through vkngwrapper. Submissions are serialized by an internal mutex.
type ComputeDevice struct {
	logger    *slog.Logger
	callbacks *vkdriver.AllocationCallbacks

	device          core1_0.Device
	queue           core1_0.Queue
	commandPool     core1_0.CommandPool
	timestampPeriod float64

	submitMutex utils.OptionalMutex
}

var _ driver.ComputeDevice = &ComputeDevice{}

// NewComputeDevice creates a command pool for queueFamilyIndex and returns a ComputeDevice that
// submits to the first queue of that family. The family must support compute work.
func NewComputeDevice(logger *slog.Logger, device core1_0.Device, physicalDevice core1_0.PhysicalDevice, queueFamilyIndex int, options Options) (*ComputeDevice, error) {
	deviceProperties, err := physicalDevice.Properties()
	if err != nil {
		return nil, err
	}

	commandPool, _, err := device.CreateCommandPool(options.AllocationCallbacks, core1_0.CommandPoolCreateInfo{
		QueueFamilyIndex: queueFamilyIndex,
		Flags:            core1_0.CommandPoolCreateResetBuffer,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create the command pool")
	}

	logger.Debug("ComputeDevice::New", slog.Int("QueueFamilyIndex", queueFamilyIndex))

	return &ComputeDevice{
		logger:    logger,
		callbacks: options.AllocationCallbacks,

		device:          device,
		queue:           device.GetQueue(queueFamilyIndex, 0),
		commandPool:     commandPool,
		timestampPeriod: float64(deviceProperties.Limits.TimestampPeriod),

		submitMutex: utils.NewOptionalMutex(true),
	}, nil
}

func (d *ComputeDevice) TimestampPeriod() float64 { return d.timestampPeriod }

// CreateProgram builds a shader module from SPIR-V words
func (d *ComputeDevice) CreateProgram(code []uint32) (*Program, error) {
	if len(code) == 0 {
		return nil, errors.Wrap(crucible.ErrInvalidArgument, "program code cannot be empty")
	}

	module, _, err := d.device.CreateShaderModule(d.callbacks, core1_0.ShaderModuleCreateInfo{Code: code})
	if err != nil {
		return nil, err
	}

	return &Program{module: module, callbacks: d.callbacks}, nil
}

func (d *ComputeDevice) CreateCommandBuffer() (driver.CommandBuffer, error) {
	buffers, _, err := d.device.AllocateCommandBuffers(core1_0.CommandBufferAllocateInfo{
		CommandPool:        d.commandPool,
		Level:              core1_0.CommandBufferLevelPrimary,
		CommandBufferCount: 1,
	})
	if err != nil {
		return nil, err
	}

	return &CommandBuffer{commandBuffer: buffers[0]}, nil
}

func (d *ComputeDevice) CreateQueryPool(queryCount int) (driver.QueryPool, error) {
	if queryCount <= 0 {
		return nil, errors.Wrapf(crucible.ErrInvalidArgument, "query count must be greater than 0, got %d", queryCount)
	}

	queryPool, _, err := d.device.CreateQueryPool(d.callbacks, core1_0.QueryPoolCreateInfo{
		QueryType:  core1_0.QueryTypeTimestamp,
		QueryCount: queryCount,
	})
	if err != nil {
		return nil, err
	}

	return &QueryPool{queryPool: queryPool, callbacks: d.callbacks}, nil
}

// Submit submits commandBuffer to the queue and waits until the queue is idle
func (d *ComputeDevice) Submit(commandBuffer driver.CommandBuffer) error {
	vkCommandBuffer, ok := commandBuffer.(*CommandBuffer)
	if !ok {
		return errors.Wrapf(crucible.ErrInvalidArgument, "command buffer of type %T was not created by a vulkan.ComputeDevice", commandBuffer)
	}

	d.submitMutex.Lock()
	defer d.submitMutex.Unlock()

	d.logger.Debug("ComputeDevice::Submit")

	_, err := d.queue.Submit(nil, []core1_0.SubmitInfo{
		{CommandBuffers: []core1_0.CommandBuffer{vkCommandBuffer.commandBuffer}},
	})
	if err != nil {
		return errors.Wrap(err, "failed to submit the command buffer")
	}

	_, err = d.queue.WaitIdle()
	if err != nil {
		return errors.Wrap(err, "failed to wait for the queue")
	}
	return nil
}

// Destroy destroys the command pool, which frees every command buffer allocated from it
func (d *ComputeDevice) Destroy() {
	d.commandPool.Destroy(d.callbacks)
}

// Device is a ResourceDevice and a ComputeDevice over the same logical device, suitable for
// session.New
type Device struct {
	*ResourceDevice
	*ComputeDevice
}

var _ driver.Device = &Device{}

// NewDevice returns a Device whose compute work is submitted to the first queue of
// queueFamilyIndex
func NewDevice(logger *slog.Logger, device core1_0.Device, physicalDevice core1_0.PhysicalDevice, queueFamilyIndex int, options Options) (*Device, error) {
	resourceDevice, err := New(logger, device, physicalDevice, options)
	if err != nil {
		return nil, err
	}

	computeDevice, err := NewComputeDevice(logger, device, physicalDevice, queueFamilyIndex, options)
	if err != nil {
		return nil, err
	}

	return &Device{
		ResourceDevice: resourceDevice,
		ComputeDevice:  computeDevice,
	}, nil
}
