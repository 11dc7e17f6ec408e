package node_test

import (
	"io"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/crucible"
	"github.com/vkngwrapper/crucible/driver"
	mock_driver "github.com/vkngwrapper/crucible/driver/mocks"
	"github.com/vkngwrapper/crucible/memory"
	"github.com/vkngwrapper/crucible/node"
	"go.uber.org/mock/gomock"
	"golang.org/x/exp/slog"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard))
}

func readyPool(t *testing.T, ctrl *gomock.Controller) *memory.Pool {
	device := mock_driver.NewMockResourceDevice(ctrl)
	device.EXPECT().MemoryTypes().Return([]driver.MemoryType{
		{PropertyFlags: core1_0.MemoryPropertyDeviceLocal},
	}).AnyTimes()
	device.EXPECT().BufferImageGranularity().Return(1).AnyTimes()
	device.EXPECT().AllocateMemory(0, gomock.Any()).Return(mock_driver.EasyMockDeviceMemory(ctrl), nil).AnyTimes()
	device.EXPECT().CreateBuffer(gomock.Any()).DoAndReturn(func(info driver.BufferCreateInfo) (driver.Buffer, error) {
		return mock_driver.EasyMockBuffer(ctrl, driver.MemoryRequirements{
			Size:           info.Size,
			Alignment:      16,
			MemoryTypeBits: 0b1,
		}), nil
	}).AnyTimes()
	device.EXPECT().CreateImage(gomock.Any()).DoAndReturn(func(info driver.ImageCreateInfo) (driver.Image, error) {
		return mock_driver.EasyMockImage(ctrl, driver.MemoryRequirements{
			Size:           info.Extent.Width * info.Extent.Height * info.Extent.Depth * 16,
			Alignment:      256,
			MemoryTypeBits: 0b1,
		}), nil
	}).AnyTimes()
	device.EXPECT().CreateImageView(gomock.Any(), gomock.Any()).DoAndReturn(func(image driver.Image, info driver.ImageViewCreateInfo) (driver.ImageView, error) {
		return mock_driver.EasyMockImageView(ctrl), nil
	}).AnyTimes()
	device.EXPECT().CreateSampler(gomock.Any()).DoAndReturn(func(info driver.SamplerCreateInfo) (driver.Sampler, error) {
		return mock_driver.EasyMockSampler(ctrl), nil
	}).AnyTimes()

	pool, err := memory.NewPool(testLogger(), device, core1_0.MemoryPropertyDeviceLocal, memory.CreateOptions{PageSize: 1 << 20})
	require.NoError(t, err)
	return pool
}

func createView(t *testing.T, pool *memory.Pool, channels int, channelType memory.ChannelType, normalized, sampled bool) *memory.ImageView {
	view, err := pool.CreateImageView(
		memory.NewImageDescriptor(8, 8, 1, channels, channelType),
		memory.NewImageViewDescriptor(driver.SamplerAddressModeClampToEdge, driver.FilterNearest, normalized, sampled),
	)
	require.NoError(t, err)
	return view
}

func TestPortTypeDescriptorType(t *testing.T) {
	cases := map[node.PortType]driver.DescriptorType{
		node.PortTypeBuffer:           driver.DescriptorTypeStorageBuffer,
		node.PortTypeImageView:        driver.DescriptorTypeStorageImage,
		node.PortTypeSampledImageView: driver.DescriptorTypeCombinedImageSampler,
		node.PortTypeUniformBuffer:    driver.DescriptorTypeUniformBuffer,
	}

	for portType, descriptorType := range cases {
		converted, err := portType.DescriptorType()
		require.NoError(t, err)
		require.Equal(t, descriptorType, converted)

		back, err := node.PortTypeFromDescriptorType(descriptorType)
		require.NoError(t, err)
		require.Equal(t, portType, back)
	}

	_, err := node.PortType(12).DescriptorType()
	require.True(t, errors.Is(err, crucible.ErrEnumConversionFailed))

	_, err = node.PortTypeFromDescriptorType(driver.DescriptorTypeSampler)
	require.True(t, errors.Is(err, crucible.ErrEnumConversionFailed))
}

func TestPortValidateObjectType(t *testing.T) {
	ctrl := gomock.NewController(t)
	pool := readyPool(t, ctrl)

	buffer, err := pool.CreateBufferWithDefaultUsage(64)
	require.NoError(t, err)
	storage := createView(t, pool, 4, memory.ChannelTypeFloat32, true, false)
	sampled := createView(t, pool, 4, memory.ChannelTypeFloat32, true, true)

	bufferPort := node.NewPortDescriptor(0, "in_buffer", node.PortDirectionIn, node.PortTypeBuffer)
	uniformPort := node.NewPortDescriptor(1, "params", node.PortDirectionIn, node.PortTypeUniformBuffer)
	imagePort := node.NewPortDescriptor(2, "out_image", node.PortDirectionOut, node.PortTypeImageView)
	sampledPort := node.NewPortDescriptor(3, "in_image", node.PortDirectionIn, node.PortTypeSampledImageView)

	require.NoError(t, bufferPort.Validate(buffer))
	require.NoError(t, uniformPort.Validate(buffer))
	require.NoError(t, imagePort.Validate(storage))
	require.NoError(t, sampledPort.Validate(sampled))

	mismatches := []struct {
		port   node.PortDescriptor
		object memory.Object
	}{
		{bufferPort, storage},
		{bufferPort, storage.Image()},
		{bufferPort, nil},
		{imagePort, buffer},
		{imagePort, storage.Image()},
		{imagePort, sampled},
		{sampledPort, storage},
	}
	for _, mismatch := range mismatches {
		err = mismatch.port.Validate(mismatch.object)
		require.True(t, errors.Is(err, crucible.ErrPortTypeMismatch), "port %s", mismatch.port.Name)
	}
}

func TestPortValidateChecks(t *testing.T) {
	ctrl := gomock.NewController(t)
	pool := readyPool(t, ctrl)

	rgba := createView(t, pool, 4, memory.ChannelTypeUint8, true, true)
	gray := createView(t, pool, 1, memory.ChannelTypeFloat32, false, true)

	port := node.NewPortDescriptor(0, "in_rgba", node.PortDirectionIn, node.PortTypeSampledImageView).
		CheckImageChannelCountIs(4).
		CheckImageChannelTypeIs(memory.ChannelTypeUint8)
	require.NoError(t, port.Validate(rgba))
	require.True(t, errors.Is(port.Validate(gray), crucible.ErrPortTypeMismatch))

	anyFloat := node.NewPortDescriptor(0, "in_gray", node.PortDirectionIn, node.PortTypeSampledImageView).
		CheckImageChannelTypeIsAnyOf(memory.ChannelTypeFloat16, memory.ChannelTypeFloat32)
	require.NoError(t, anyFloat.Validate(gray))
	require.True(t, errors.Is(anyFloat.Validate(rgba), crucible.ErrPortTypeMismatch))

	normalized := node.NewPortDescriptor(0, "in_normalized", node.PortDirectionIn, node.PortTypeSampledImageView).
		CheckImageViewNormalizedCoordinatesIs(true)
	require.NoError(t, normalized.Validate(rgba))
	require.True(t, errors.Is(normalized.Validate(gray), crucible.ErrPortTypeMismatch))

	unchecked := node.NewPortDescriptor(0, "in_any", node.PortDirectionIn, node.PortTypeSampledImageView)
	require.NoError(t, unchecked.Validate(rgba))
	require.NoError(t, unchecked.Validate(gray))
}
