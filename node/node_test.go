package node_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/crucible"
	"github.com/vkngwrapper/crucible/command"
	"github.com/vkngwrapper/crucible/driver"
	mock_driver "github.com/vkngwrapper/crucible/driver/mocks"
	"github.com/vkngwrapper/crucible/memory"
	"github.com/vkngwrapper/crucible/node"
	"go.uber.org/mock/gomock"
)

type testBuilder struct {
	descriptor func() (*node.ContainerNodeDescriptor, error)
	onInit     func(n node.Node) error
	onRecord   func(n node.Node, buffer *command.Buffer) error
}

func (b *testBuilder) NewDescriptor() (*node.ContainerNodeDescriptor, error) {
	if b.descriptor == nil {
		return node.NewContainerNodeDescriptor(), nil
	}
	return b.descriptor()
}

func (b *testBuilder) OnNodeInit(n node.Node) error {
	if b.onInit == nil {
		return nil
	}
	return b.onInit(n)
}

func (b *testBuilder) OnNodeRecord(n node.Node, buffer *command.Buffer) error {
	if b.onRecord == nil {
		return nil
	}
	return b.onRecord(n, buffer)
}

func computeDescriptor(t *testing.T, ctrl *gomock.Controller) *node.ComputeNodeDescriptor {
	descriptor := node.NewComputeNodeDescriptor()
	descriptor.Program = mock_driver.EasyMockProgram(ctrl)
	descriptor.FunctionName = "main"
	descriptor.LocalShape = [3]int{32, 32, 1}
	require.NoError(t, descriptor.AddPort(node.NewPortDescriptor(0, "in_buffer", node.PortDirectionIn, node.PortTypeBuffer)))
	require.NoError(t, descriptor.AddPort(node.NewPortDescriptor(1, "out_image", node.PortDirectionOut, node.PortTypeImageView)))
	return descriptor
}

func readyCommandBuffer(t *testing.T, ctrl *gomock.Controller, device *mock_driver.MockComputeDevice) (*mock_driver.MockCommandBuffer, *command.Buffer) {
	commandBuffer := mock_driver.EasyMockCommandBuffer(ctrl)
	device.EXPECT().CreateCommandBuffer().Return(commandBuffer, nil)

	buffer, err := command.New(testLogger(), device)
	require.NoError(t, err)
	require.NoError(t, buffer.Begin())
	return commandBuffer, buffer
}

func TestComputeNodeDescriptorValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	device := mock_driver.NewMockComputeDevice(ctrl)

	noProgram := computeDescriptor(t, ctrl)
	noProgram.Program = nil
	noFunction := computeDescriptor(t, ctrl)
	noFunction.FunctionName = ""
	badLocal := computeDescriptor(t, ctrl)
	badLocal.LocalShape = [3]int{32, 0, 1}

	for _, descriptor := range []*node.ComputeNodeDescriptor{noProgram, noFunction, badLocal, nil} {
		_, err := node.NewComputeNode(testLogger(), device, nil, descriptor)
		require.True(t, errors.Is(err, crucible.ErrInvalidArgument))
	}

	badPort := computeDescriptor(t, ctrl)
	require.NoError(t, badPort.AddPort(node.NewPortDescriptor(2, "weird", node.PortDirectionIn, node.PortType(40))))
	_, err := node.NewComputeNode(testLogger(), device, nil, badPort)
	require.True(t, errors.Is(err, crucible.ErrEnumConversionFailed))

	require.True(t, errors.Is(badPort.AddPort(node.NewPortDescriptor(3, "", node.PortDirectionIn, node.PortTypeBuffer)), crucible.ErrInvalidArgument))
}

func TestComputeNodeDescriptorBindingCollision(t *testing.T) {
	ctrl := gomock.NewController(t)
	descriptor := computeDescriptor(t, ctrl)

	err := descriptor.AddPort(node.NewPortDescriptor(0, "in_other", node.PortDirectionIn, node.PortTypeBuffer))
	require.True(t, errors.Is(err, crucible.ErrInvalidArgument))
	require.Len(t, descriptor.Ports(), 2)

	// Redeclaring a port keeps or moves its own binding
	require.NoError(t, descriptor.AddPort(node.NewPortDescriptor(0, "in_buffer", node.PortDirectionIn, node.PortTypeUniformBuffer)))
	require.NoError(t, descriptor.AddPort(node.NewPortDescriptor(2, "in_buffer", node.PortDirectionIn, node.PortTypeBuffer)))
	require.NoError(t, descriptor.AddPort(node.NewPortDescriptor(0, "in_other", node.PortDirectionIn, node.PortTypeBuffer)))

	err = descriptor.AddPort(node.NewPortDescriptor(1, "in_buffer", node.PortDirectionIn, node.PortTypeBuffer))
	require.True(t, errors.Is(err, crucible.ErrInvalidArgument))

	port, err := descriptor.Port("in_buffer")
	require.NoError(t, err)
	require.Equal(t, 2, port.Binding)
	require.Len(t, descriptor.Ports(), 3)
}

func TestConfigureGridShape(t *testing.T) {
	ctrl := gomock.NewController(t)

	descriptor := computeDescriptor(t, ctrl)
	require.NoError(t, descriptor.ConfigureGridShape([3]int{640, 480, 1}))
	require.Equal(t, [3]int{20, 15, 1}, descriptor.GridShape)

	require.NoError(t, descriptor.ConfigureGridShape([3]int{641, 1, 1}))
	require.Equal(t, [3]int{21, 1, 1}, descriptor.GridShape)

	require.True(t, errors.Is(descriptor.ConfigureGridShape([3]int{0, 1, 1}), crucible.ErrInvalidArgument))
	require.Equal(t, [3]int{21, 1, 1}, descriptor.GridShape)
}

func TestComputeNodeKeepsDescriptorCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	device := mock_driver.NewMockComputeDevice(ctrl)

	descriptor := computeDescriptor(t, ctrl)
	descriptor.SetParameter("radius", node.IntParameter(3))
	descriptor.PushConstants.SetInt32(5)

	computeNode, err := node.NewComputeNode(testLogger(), device, nil, descriptor)
	require.NoError(t, err)

	descriptor.FunctionName = "other"
	descriptor.SetParameter("radius", node.IntParameter(9))
	descriptor.PushConstants.SetInt32(6)

	require.Equal(t, "main", computeNode.FunctionName())
	radius, err := computeNode.Parameter("radius")
	require.NoError(t, err)
	value, err := radius.Int()
	require.NoError(t, err)
	require.Equal(t, 3, value)

	pushed, err := computeNode.PushConstants().Int32()
	require.NoError(t, err)
	require.Equal(t, int32(5), pushed)

	_, err = computeNode.Parameter("missing")
	require.True(t, errors.Is(err, crucible.ErrKeyNotFound))
}

func TestComputeNodeLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	device := mock_driver.NewMockComputeDevice(ctrl)
	pool := readyPool(t, ctrl)

	descriptor := computeDescriptor(t, ctrl)
	descriptor.PushConstants.SetFloat32(0.5)

	computeNode, err := node.NewComputeNode(testLogger(), device, nil, descriptor)
	require.NoError(t, err)
	require.Equal(t, node.NodeTypeCompute, computeNode.Type())
	require.Equal(t, node.NodeStateCreated, computeNode.State())

	buffer, err := pool.CreateBufferWithDefaultUsage(1024)
	require.NoError(t, err)
	view := createView(t, pool, 4, memory.ChannelTypeFloat32, true, false)
	view.Image().SetLayout(driver.ImageLayoutGeneral)

	_, err = computeNode.Port("in_buffer")
	require.True(t, errors.Is(err, crucible.ErrKeyNotFound))
	_, err = computeNode.Port("unknown")
	require.True(t, errors.Is(err, crucible.ErrKeyNotFound))
	require.True(t, errors.Is(computeNode.Bind("unknown", buffer), crucible.ErrKeyNotFound))
	require.True(t, errors.Is(computeNode.Bind("in_buffer", view), crucible.ErrPortTypeMismatch))

	require.NoError(t, computeNode.Bind("in_buffer", buffer))
	bound, err := computeNode.Port("in_buffer")
	require.NoError(t, err)
	require.Same(t, buffer, bound)

	pipeline := mock_driver.NewMockPipeline(ctrl)
	device.EXPECT().CreateComputePipeline(driver.ComputePipelineCreateInfo{
		Program:      descriptor.Program,
		FunctionName: "main",
		LocalShape:   [3]int{32, 32, 1},
		Bindings: []driver.DescriptorBinding{
			{Binding: 0, Type: driver.DescriptorTypeStorageBuffer},
			{Binding: 1, Type: driver.DescriptorTypeStorageImage},
		},
		PushConstantSize: 4,
	}).Return(pipeline, nil)
	pipeline.EXPECT().WriteBuffer(0, buffer.DriverBuffer(), 1024).Return(nil)

	require.NoError(t, computeNode.Init())
	require.Equal(t, node.NodeStateInitialized, computeNode.State())
	require.Same(t, pipeline, computeNode.PipelineObject())

	require.True(t, errors.Is(computeNode.Init(), crucible.ErrInvalidState))

	pipeline.EXPECT().WriteImage(1, view.DriverImageView(), nil, driver.ImageLayoutGeneral).Return(nil)
	require.NoError(t, computeNode.Bind("out_image", view))

	pipeline.EXPECT().Destroy()
	computeNode.Destroy()
	require.Nil(t, computeNode.PipelineObject())
}

func TestComputeNodeInitFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	device := mock_driver.NewMockComputeDevice(ctrl)

	computeNode, err := node.NewComputeNode(testLogger(), device, nil, computeDescriptor(t, ctrl))
	require.NoError(t, err)

	device.EXPECT().CreateComputePipeline(gomock.Any()).Return(nil, errors.New("no pipelines left"))
	require.EqualError(t, computeNode.Init(), "no pipelines left")
	require.Equal(t, node.NodeStateCreated, computeNode.State())

	pipeline := mock_driver.NewMockPipeline(ctrl)
	device.EXPECT().CreateComputePipeline(gomock.Any()).Return(pipeline, nil)
	require.NoError(t, computeNode.Init())
	require.Equal(t, node.NodeStateInitialized, computeNode.State())
}

func TestComputeNodeRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	device := mock_driver.NewMockComputeDevice(ctrl)

	descriptor := computeDescriptor(t, ctrl)
	descriptor.PushConstants.SetInt32(1)

	computeNode, err := node.NewComputeNode(testLogger(), device, nil, descriptor)
	require.NoError(t, err)

	commandBuffer, buffer := readyCommandBuffer(t, ctrl, device)
	require.True(t, errors.Is(buffer.Run(computeNode), crucible.ErrInvalidState))

	pipeline := mock_driver.NewMockPipeline(ctrl)
	device.EXPECT().CreateComputePipeline(gomock.Any()).Return(pipeline, nil)
	require.NoError(t, computeNode.Init())

	computeNode.SetGridShape([3]int{0, 1, 1})
	require.True(t, errors.Is(buffer.Run(computeNode), crucible.ErrInvalidArgument))

	require.NoError(t, computeNode.ConfigureGridShape([3]int{100, 64, 1}))
	require.Equal(t, [3]int{4, 2, 1}, computeNode.GridShape())

	gomock.InOrder(
		commandBuffer.EXPECT().BindPipeline(pipeline),
		commandBuffer.EXPECT().PushConstants(pipeline, []byte{1, 0, 0, 0}),
		commandBuffer.EXPECT().Dispatch(4, 2, 1),
	)
	require.NoError(t, buffer.Run(computeNode))
}

func TestComputeNodeBuilder(t *testing.T) {
	ctrl := gomock.NewController(t)
	device := mock_driver.NewMockComputeDevice(ctrl)
	registry := node.NewRegistry()

	descriptor := computeDescriptor(t, ctrl)
	descriptor.BuilderName = "Resize"

	computeNode, err := node.NewComputeNode(testLogger(), device, registry, descriptor)
	require.NoError(t, err)
	require.True(t, errors.Is(computeNode.Init(), crucible.ErrKeyNotFound))

	calls := 0
	require.NoError(t, registry.Register("Resize", &testBuilder{
		onInit: func(n node.Node) error {
			calls++
			require.Equal(t, node.NodeStateCreated, n.State())
			return n.(*node.ComputeNode).ConfigureGridShape([3]int{64, 64, 1})
		},
	}))

	device.EXPECT().CreateComputePipeline(gomock.Any()).Return(mock_driver.NewMockPipeline(ctrl), nil)
	require.NoError(t, computeNode.Init())
	require.Equal(t, 1, calls)
	require.Equal(t, [3]int{2, 2, 1}, computeNode.GridShape())

	failing := computeDescriptor(t, ctrl)
	failing.BuilderName = "Broken"
	require.NoError(t, registry.Register("Broken", &testBuilder{
		onInit: func(n node.Node) error {
			return errors.Wrap(crucible.ErrKeyNotFound, "script error")
		},
	}))

	failingNode, err := node.NewComputeNode(testLogger(), device, registry, failing)
	require.NoError(t, err)
	err = failingNode.Init()
	require.True(t, errors.Is(err, crucible.ErrKeyNotFound))
	require.Contains(t, err.Error(), `builder "Broken" failed in OnNodeInit`)
	require.Equal(t, node.NodeStateCreated, failingNode.State())
}

func TestRegistry(t *testing.T) {
	registry := node.NewRegistry()

	require.True(t, errors.Is(registry.Register("", &testBuilder{}), crucible.ErrInvalidArgument))
	require.True(t, errors.Is(registry.Register("Nil", nil), crucible.ErrInvalidArgument))

	first := &testBuilder{}
	second := &testBuilder{}
	require.NoError(t, registry.Register("Sobel", first))
	require.NoError(t, registry.Register("Blur", first))
	require.NoError(t, registry.Register("Sobel", second))

	builder, err := registry.Builder("Sobel")
	require.NoError(t, err)
	require.Same(t, second, builder)

	_, err = registry.Builder("Missing")
	require.True(t, errors.Is(err, crucible.ErrKeyNotFound))

	require.Equal(t, []string{"Blur", "Sobel"}, registry.Names())
}
