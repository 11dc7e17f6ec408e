package node_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/crucible"
	"github.com/vkngwrapper/crucible/command"
	mock_driver "github.com/vkngwrapper/crucible/driver/mocks"
	"github.com/vkngwrapper/crucible/memory"
	"github.com/vkngwrapper/crucible/node"
	"go.uber.org/mock/gomock"
)

func initializedComputeNode(t *testing.T, ctrl *gomock.Controller, device *mock_driver.MockComputeDevice) (*node.ComputeNode, *mock_driver.MockPipeline) {
	computeNode, err := node.NewComputeNode(testLogger(), device, nil, computeDescriptor(t, ctrl))
	require.NoError(t, err)

	pipeline := mock_driver.NewMockPipeline(ctrl)
	device.EXPECT().CreateComputePipeline(gomock.Any()).Return(pipeline, nil)
	require.NoError(t, computeNode.Init())
	return computeNode, pipeline
}

func TestContainerNodeChildren(t *testing.T) {
	ctrl := gomock.NewController(t)
	device := mock_driver.NewMockComputeDevice(ctrl)

	container, err := node.NewContainerNode(testLogger(), nil, node.NewContainerNodeDescriptor())
	require.NoError(t, err)
	require.Equal(t, node.NodeTypeContainer, container.Type())

	first, _ := initializedComputeNode(t, ctrl, device)
	second, secondPipeline := initializedComputeNode(t, ctrl, device)
	replacement, replacementPipeline := initializedComputeNode(t, ctrl, device)

	require.NoError(t, container.BindNode("gray", first))
	require.NoError(t, container.BindNode("sobel", second))
	require.NoError(t, container.BindNode("gray", replacement))
	require.True(t, errors.Is(container.BindNode("empty", nil), crucible.ErrInvalidArgument))
	require.Equal(t, []string{"gray", "sobel"}, container.NodeNames())

	child, err := container.Node("gray")
	require.NoError(t, err)
	require.Same(t, replacement, child)
	_, err = container.Node("blur")
	require.True(t, errors.Is(err, crucible.ErrKeyNotFound))

	commandBuffer, buffer := readyCommandBuffer(t, ctrl, device)
	require.True(t, errors.Is(buffer.Run(container), crucible.ErrInvalidState))

	require.NoError(t, container.Init())
	require.True(t, errors.Is(container.Init(), crucible.ErrInvalidState))

	gomock.InOrder(
		commandBuffer.EXPECT().BindPipeline(replacementPipeline),
		commandBuffer.EXPECT().Dispatch(1, 1, 1),
		commandBuffer.EXPECT().MemoryBarrier(),
		commandBuffer.EXPECT().BindPipeline(secondPipeline),
		commandBuffer.EXPECT().Dispatch(1, 1, 1),
		commandBuffer.EXPECT().MemoryBarrier(),
	)
	require.NoError(t, buffer.Run(container))
}

func TestContainerNodePorts(t *testing.T) {
	ctrl := gomock.NewController(t)
	pool := readyPool(t, ctrl)

	descriptor := node.NewContainerNodeDescriptor()
	require.NoError(t, descriptor.AddPort(node.NewPortDescriptor(0, "in_rgba", node.PortDirectionIn, node.PortTypeSampledImageView).
		CheckImageChannelCountIs(4)))

	container, err := node.NewContainerNode(testLogger(), nil, descriptor)
	require.NoError(t, err)

	rgba := createView(t, pool, 4, memory.ChannelTypeUint8, true, true)
	gray := createView(t, pool, 1, memory.ChannelTypeUint8, true, true)
	buffer, err := pool.CreateBufferWithDefaultUsage(256)
	require.NoError(t, err)

	require.True(t, errors.Is(container.Bind("in_rgba", gray), crucible.ErrPortTypeMismatch))
	require.NoError(t, container.Bind("in_rgba", rgba))
	require.NoError(t, container.Bind("scratch", buffer))
	require.True(t, errors.Is(container.Bind("scratch", nil), crucible.ErrInvalidArgument))

	bound, err := container.Port("scratch")
	require.NoError(t, err)
	require.Same(t, buffer, bound)
	_, err = container.Port("out_gray")
	require.True(t, errors.Is(err, crucible.ErrKeyNotFound))
}

func TestContainerNodeBuilder(t *testing.T) {
	ctrl := gomock.NewController(t)
	device := mock_driver.NewMockComputeDevice(ctrl)
	registry := node.NewRegistry()

	var recorded node.Node
	require.NoError(t, registry.Register("Pipeline", &testBuilder{
		onInit: func(n node.Node) error {
			container := n.(*node.ContainerNode)
			child, _ := initializedComputeNode(t, ctrl, device)
			return container.BindNode("child", child)
		},
		onRecord: func(n node.Node, buffer *command.Buffer) error {
			recorded = n
			return n.(*node.ContainerNode).RecordChildren(buffer)
		},
	}))

	descriptor := node.NewContainerNodeDescriptor()
	descriptor.BuilderName = "Pipeline"
	descriptor.SetParameter("levels", node.IntParameter(3))

	container, err := node.NewContainerNode(testLogger(), registry, descriptor)
	require.NoError(t, err)
	require.NoError(t, container.Init())
	require.Equal(t, []string{"child"}, container.NodeNames())

	levels, err := container.Parameter("levels")
	require.NoError(t, err)
	count, err := levels.Int()
	require.NoError(t, err)
	require.Equal(t, 3, count)

	commandBuffer, buffer := readyCommandBuffer(t, ctrl, device)
	commandBuffer.EXPECT().BindPipeline(gomock.Any())
	commandBuffer.EXPECT().Dispatch(1, 1, 1)
	commandBuffer.EXPECT().MemoryBarrier()

	require.NoError(t, buffer.Run(container))
	require.Same(t, container, recorded)
}

func TestContainerNodeBuilderPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	device := mock_driver.NewMockComputeDevice(ctrl)
	registry := node.NewRegistry()

	require.NoError(t, registry.Register("Panics", &testBuilder{
		onRecord: func(n node.Node, buffer *command.Buffer) error {
			panic("index out of range")
		},
	}))

	descriptor := node.NewContainerNodeDescriptor()
	descriptor.BuilderName = "Panics"
	container, err := node.NewContainerNode(testLogger(), registry, descriptor)
	require.NoError(t, err)
	require.NoError(t, container.Init())

	_, buffer := readyCommandBuffer(t, ctrl, device)
	err = buffer.Run(container)
	require.EqualError(t, err, `builder "Panics" panicked in OnNodeRecord: index out of range`)
}

func TestContainerNodeMissingBuilder(t *testing.T) {
	descriptor := node.NewContainerNodeDescriptor()
	descriptor.BuilderName = "Missing"

	container, err := node.NewContainerNode(testLogger(), node.NewRegistry(), descriptor)
	require.NoError(t, err)
	require.True(t, errors.Is(container.Init(), crucible.ErrKeyNotFound))
	require.Equal(t, node.NodeStateCreated, container.State())
}
