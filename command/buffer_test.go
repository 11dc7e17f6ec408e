package command_test

import (
	"io"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/crucible"
	"github.com/vkngwrapper/crucible/command"
	"github.com/vkngwrapper/crucible/driver"
	mock_driver "github.com/vkngwrapper/crucible/driver/mocks"
	"github.com/vkngwrapper/crucible/memory"
	"go.uber.org/mock/gomock"
	"golang.org/x/exp/slog"
)

type recordFunc func(buffer *command.Buffer) error

func (f recordFunc) Record(buffer *command.Buffer) error {
	return f(buffer)
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
			Alignment:      1,
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

	pool, err := memory.NewPool(slog.New(slog.NewTextHandler(io.Discard)), device, core1_0.MemoryPropertyDeviceLocal, memory.CreateOptions{PageSize: 1 << 20})
	require.NoError(t, err)
	return pool
}

func readyCommandBuffer(t *testing.T, ctrl *gomock.Controller) (*mock_driver.MockComputeDevice, *mock_driver.MockCommandBuffer, *command.Buffer) {
	device := mock_driver.NewMockComputeDevice(ctrl)
	commandBuffer := mock_driver.EasyMockCommandBuffer(ctrl)
	device.EXPECT().CreateCommandBuffer().Return(commandBuffer, nil)

	buffer, err := command.New(slog.New(slog.NewTextHandler(io.Discard)), device)
	require.NoError(t, err)
	return device, commandBuffer, buffer
}

func TestBufferStates(t *testing.T) {
	ctrl := gomock.NewController(t)

	device, commandBuffer, buffer := readyCommandBuffer(t, ctrl)
	require.Equal(t, command.StateInitial, buffer.State())

	require.True(t, errors.Is(buffer.MemoryBarrier(), crucible.ErrInvalidState))
	require.True(t, errors.Is(buffer.End(), crucible.ErrInvalidState))
	require.True(t, errors.Is(buffer.Submit(device), crucible.ErrInvalidState))

	require.NoError(t, buffer.Begin())
	require.Equal(t, command.StateRecording, buffer.State())
	require.True(t, errors.Is(buffer.Begin(), crucible.ErrInvalidState))

	commandBuffer.EXPECT().MemoryBarrier()
	require.NoError(t, buffer.MemoryBarrier())

	require.NoError(t, buffer.End())
	require.Equal(t, command.StateExecutable, buffer.State())
	require.True(t, errors.Is(buffer.MemoryBarrier(), crucible.ErrInvalidState))

	device.EXPECT().Submit(commandBuffer).Return(nil)
	require.NoError(t, buffer.Submit(device))
	require.Equal(t, command.StateSubmitted, buffer.State())

	require.True(t, errors.Is(buffer.Begin(), crucible.ErrInvalidState))
	require.True(t, errors.Is(buffer.Submit(device), crucible.ErrInvalidState))
	require.Equal(t, "Submitted", buffer.State().String())
}

func TestBufferSubmitFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	device, commandBuffer, buffer := readyCommandBuffer(t, ctrl)
	require.NoError(t, buffer.Begin())
	require.NoError(t, buffer.End())

	device.EXPECT().Submit(commandBuffer).Return(errors.New("device lost"))
	require.EqualError(t, buffer.Submit(device), "device lost")
	require.Equal(t, command.StateInitial, buffer.State())

	// The buffer can be recorded again
	require.NoError(t, buffer.Begin())
}

func TestSubmitFailureRestoresLayouts(t *testing.T) {
	ctrl := gomock.NewController(t)

	pool := readyPool(t, ctrl)
	device, commandBuffer, buffer := readyCommandBuffer(t, ctrl)

	image, err := pool.CreateImage(memory.NewImageDescriptor(8, 8, 1, 4, memory.ChannelTypeFloat32))
	require.NoError(t, err)

	require.NoError(t, buffer.Begin())
	commandBuffer.EXPECT().ImageBarrier(image.DriverImage(), driver.ImageLayoutUndefined, driver.ImageLayoutGeneral)
	require.NoError(t, buffer.ChangeImageLayout(image, driver.ImageLayoutGeneral))
	require.NoError(t, buffer.End())
	require.Equal(t, driver.ImageLayoutGeneral, image.Layout())

	device.EXPECT().Submit(commandBuffer).Return(errors.New("device lost"))
	require.Error(t, buffer.Submit(device))
	require.Equal(t, driver.ImageLayoutUndefined, image.Layout())
	_, ok := buffer.LayoutOf(image)
	require.False(t, ok)
}

func TestDiscardedRecordingRestoresLayouts(t *testing.T) {
	ctrl := gomock.NewController(t)

	pool := readyPool(t, ctrl)
	device, commandBuffer, buffer := readyCommandBuffer(t, ctrl)

	image, err := pool.CreateImage(memory.NewImageDescriptor(8, 8, 1, 4, memory.ChannelTypeFloat32))
	require.NoError(t, err)
	image.SetLayout(driver.ImageLayoutShaderReadOnlyOptimal)

	// Several transitions of one image go back to the layout before the first one
	require.NoError(t, buffer.Begin())
	commandBuffer.EXPECT().ImageBarrier(image.DriverImage(), gomock.Any(), gomock.Any()).Times(2)
	require.NoError(t, buffer.ChangeImageLayout(image, driver.ImageLayoutTransferDstOptimal))
	require.NoError(t, buffer.ChangeImageLayout(image, driver.ImageLayoutGeneral))
	require.NoError(t, buffer.End())

	require.NoError(t, buffer.Begin())
	require.Equal(t, driver.ImageLayoutShaderReadOnlyOptimal, image.Layout())

	// Destroying an unsubmitted buffer restores as well
	commandBuffer.EXPECT().ImageBarrier(image.DriverImage(), driver.ImageLayoutShaderReadOnlyOptimal, driver.ImageLayoutGeneral)
	require.NoError(t, buffer.ChangeImageLayout(image, driver.ImageLayoutGeneral))
	buffer.Destroy()
	require.Equal(t, driver.ImageLayoutShaderReadOnlyOptimal, image.Layout())

	// Submitted transitions stay
	_, commandBuffer, buffer = readyCommandBuffer(t, ctrl)
	require.NoError(t, buffer.Begin())
	commandBuffer.EXPECT().ImageBarrier(image.DriverImage(), driver.ImageLayoutShaderReadOnlyOptimal, driver.ImageLayoutGeneral)
	require.NoError(t, buffer.ChangeImageLayout(image, driver.ImageLayoutGeneral))
	require.NoError(t, buffer.End())

	device.EXPECT().Submit(commandBuffer).Return(nil)
	require.NoError(t, buffer.Submit(device))
	buffer.Destroy()
	require.Equal(t, driver.ImageLayoutGeneral, image.Layout())
}

func TestCopyBufferGuard(t *testing.T) {
	ctrl := gomock.NewController(t)

	pool := readyPool(t, ctrl)
	_, commandBuffer, buffer := readyCommandBuffer(t, ctrl)

	small, err := pool.CreateBufferWithDefaultUsage(32)
	require.NoError(t, err)
	large, err := pool.CreateBufferWithDefaultUsage(64)
	require.NoError(t, err)

	require.NoError(t, buffer.Begin())

	// Nothing is recorded when the destination is too small
	err = buffer.CopyBuffer(large, small)
	require.True(t, errors.Is(err, crucible.ErrBufferCopy))

	commandBuffer.EXPECT().CopyBuffer(small.DriverBuffer(), large.DriverBuffer(), 32)
	require.NoError(t, buffer.CopyBuffer(small, large))
}

func TestChangeImageLayout(t *testing.T) {
	ctrl := gomock.NewController(t)

	pool := readyPool(t, ctrl)
	_, commandBuffer, buffer := readyCommandBuffer(t, ctrl)

	image, err := pool.CreateImage(memory.NewImageDescriptor(8, 8, 1, 4, memory.ChannelTypeFloat32))
	require.NoError(t, err)
	require.Equal(t, driver.ImageLayoutUndefined, image.Layout())

	_, ok := buffer.LayoutOf(image)
	require.False(t, ok)

	require.NoError(t, buffer.Begin())

	commandBuffer.EXPECT().ImageBarrier(image.DriverImage(), driver.ImageLayoutUndefined, driver.ImageLayoutGeneral)
	require.NoError(t, buffer.ChangeImageLayout(image, driver.ImageLayoutGeneral))
	require.Equal(t, driver.ImageLayoutGeneral, image.Layout())

	layout, ok := buffer.LayoutOf(image)
	require.True(t, ok)
	require.Equal(t, driver.ImageLayoutGeneral, layout)
}

func TestChangeImageViewLayout(t *testing.T) {
	ctrl := gomock.NewController(t)

	pool := readyPool(t, ctrl)
	_, commandBuffer, buffer := readyCommandBuffer(t, ctrl)

	image, err := pool.CreateImage(memory.NewImageDescriptor(8, 8, 1, 4, memory.ChannelTypeFloat32))
	require.NoError(t, err)
	image.SetLayout(driver.ImageLayoutGeneral)

	require.NoError(t, buffer.Begin())

	commandBuffer.EXPECT().ImageBarrier(image.DriverImage(), driver.ImageLayoutGeneral, driver.ImageLayoutTransferDstOptimal)
	commandBuffer.EXPECT().ClearColorImage(image.DriverImage(), driver.ImageLayoutTransferDstOptimal, [4]float32{})
	commandBuffer.EXPECT().ImageBarrier(image.DriverImage(), driver.ImageLayoutTransferDstOptimal, driver.ImageLayoutShaderReadOnlyOptimal)

	require.NoError(t, buffer.ChangeImageLayout(image, driver.ImageLayoutTransferDstOptimal))
	require.NoError(t, buffer.ClearImage(image))
	require.NoError(t, buffer.ChangeImageLayout(image, driver.ImageLayoutShaderReadOnlyOptimal))

	layout, ok := buffer.LayoutOf(image)
	require.True(t, ok)
	require.Equal(t, driver.ImageLayoutShaderReadOnlyOptimal, layout)

	// Beginning again discards the recorded transitions
	require.NoError(t, buffer.End())
	require.NoError(t, buffer.Begin())
	_, ok = buffer.LayoutOf(image)
	require.False(t, ok)
	require.Equal(t, driver.ImageLayoutGeneral, image.Layout())
}

func TestImageCopies(t *testing.T) {
	ctrl := gomock.NewController(t)

	pool := readyPool(t, ctrl)
	_, commandBuffer, buffer := readyCommandBuffer(t, ctrl)

	staging, err := pool.CreateBufferWithDefaultUsage(4 * 4 * 16)
	require.NoError(t, err)
	first, err := pool.CreateImage(memory.NewImageDescriptor(4, 4, 1, 4, memory.ChannelTypeFloat32))
	require.NoError(t, err)
	second, err := pool.CreateImage(memory.NewImageDescriptor(4, 4, 1, 4, memory.ChannelTypeFloat32))
	require.NoError(t, err)

	first.SetLayout(driver.ImageLayoutTransferDstOptimal)
	second.SetLayout(driver.ImageLayoutGeneral)
	extent := driver.Extent3D{Width: 4, Height: 4, Depth: 1}

	gomock.InOrder(
		commandBuffer.EXPECT().CopyBufferToImage(staging.DriverBuffer(), first.DriverImage(), driver.ImageLayoutTransferDstOptimal, extent),
		commandBuffer.EXPECT().CopyImage(first.DriverImage(), driver.ImageLayoutTransferDstOptimal, second.DriverImage(), driver.ImageLayoutGeneral, extent),
		commandBuffer.EXPECT().CopyImageToBuffer(second.DriverImage(), driver.ImageLayoutGeneral, staging.DriverBuffer(), extent),
	)

	require.NoError(t, buffer.Begin())
	require.NoError(t, buffer.CopyBufferToImage(staging, first))
	require.NoError(t, buffer.CopyImageToImage(first, second))
	require.NoError(t, buffer.CopyImageToBuffer(second, staging))
	require.NoError(t, buffer.End())
}

func TestRunRecordable(t *testing.T) {
	ctrl := gomock.NewController(t)

	_, commandBuffer, buffer := readyCommandBuffer(t, ctrl)

	node := recordFunc(func(buffer *command.Buffer) error {
		return buffer.MemoryBarrier()
	})

	require.True(t, errors.Is(buffer.Run(node), crucible.ErrInvalidState))

	require.NoError(t, buffer.Begin())
	commandBuffer.EXPECT().MemoryBarrier()
	require.NoError(t, buffer.Run(node))

	failing := recordFunc(func(buffer *command.Buffer) error {
		return errors.New("record failed")
	})
	require.EqualError(t, buffer.Run(failing), "record failed")
}

func TestDispatch(t *testing.T) {
	ctrl := gomock.NewController(t)

	_, commandBuffer, buffer := readyCommandBuffer(t, ctrl)
	pipeline := mock_driver.NewMockPipeline(ctrl)

	require.True(t, errors.Is(buffer.Dispatch(pipeline, nil, [3]int{1, 1, 1}), crucible.ErrInvalidState))

	require.NoError(t, buffer.Begin())

	gomock.InOrder(
		commandBuffer.EXPECT().BindPipeline(pipeline),
		commandBuffer.EXPECT().Dispatch(4, 2, 1),
		commandBuffer.EXPECT().BindPipeline(pipeline),
		commandBuffer.EXPECT().PushConstants(pipeline, []byte{1, 2, 3, 4}),
		commandBuffer.EXPECT().Dispatch(1, 1, 1),
	)

	require.NoError(t, buffer.Dispatch(pipeline, nil, [3]int{4, 2, 1}))
	require.NoError(t, buffer.Dispatch(pipeline, []byte{1, 2, 3, 4}, [3]int{1, 1, 1}))
}

func TestDuration(t *testing.T) {
	ctrl := gomock.NewController(t)

	device, commandBuffer, buffer := readyCommandBuffer(t, ctrl)

	queryPool := mock_driver.NewMockQueryPool(ctrl)
	device.EXPECT().CreateQueryPool(2).Return(queryPool, nil)
	device.EXPECT().TimestampPeriod().Return(2.5)

	duration, err := command.NewDuration(device)
	require.NoError(t, err)

	gomock.InOrder(
		commandBuffer.EXPECT().ResetQueryPool(queryPool, 0, 2),
		commandBuffer.EXPECT().WriteTimestamp(queryPool, 0),
		commandBuffer.EXPECT().WriteTimestamp(queryPool, 1),
	)

	require.NoError(t, buffer.Begin())
	require.NoError(t, buffer.DurationStart(duration))
	require.NoError(t, buffer.DurationEnd(duration))
	require.NoError(t, buffer.End())

	queryPool.EXPECT().Results(0, 2).Return([]uint64{1000, 1400}, nil).Times(2)

	ns, err := duration.Nanoseconds()
	require.NoError(t, err)
	require.Equal(t, int64(1000), ns)

	elapsed, err := duration.Duration()
	require.NoError(t, err)
	require.Equal(t, time.Microsecond, elapsed)

	queryPool.EXPECT().Results(0, 2).Return([]uint64{1400, 1000}, nil)
	_, err = duration.Nanoseconds()
	require.True(t, errors.Is(err, crucible.ErrInvalidState))

	queryPool.EXPECT().Destroy()
	duration.Destroy()
}
