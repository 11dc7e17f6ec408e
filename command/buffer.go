// Package command records device work: node dispatches, copies, layout transitions, barriers and
// timestamps. A Buffer is begun, recorded into, ended and then submitted exactly once.
package command

import (
	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/crucible"
	"github.com/vkngwrapper/crucible/driver"
	"github.com/vkngwrapper/crucible/memory"
	"golang.org/x/exp/slog"
)

// Recordable is anything that records its own commands into a Buffer, such as a compute or
// container node
type Recordable interface {
	Record(buffer *Buffer) error
}

// Buffer wraps a driver command buffer with a recording state machine and image layout tracking.
//
// Layout transitions update the image's tracked layout as soon as they are recorded, so later
// commands read the post-transition layout immediately. That value is only correct when buffers
// execute in the order they were recorded, which Session.Run guarantees by submitting one buffer
// at a time. Each buffer also keeps the layout it last recorded for every image it transitioned,
// available through LayoutOf, which does not depend on submission order.
//
// A recording that will never execute gives its images back the layouts they had before it
// transitioned them: when the buffer is begun again, when Submit fails and when the buffer is
// destroyed before submission.
type Buffer struct {
	logger        *slog.Logger
	commandBuffer driver.CommandBuffer
	state         State

	layouts  *swiss.Map[*memory.Image, driver.ImageLayout]
	previous *swiss.Map[*memory.Image, driver.ImageLayout]
}

// New allocates a command buffer from the device
func New(logger *slog.Logger, device driver.ComputeDevice) (*Buffer, error) {
	commandBuffer, err := device.CreateCommandBuffer()
	if err != nil {
		return nil, err
	}

	return &Buffer{
		logger:        logger,
		commandBuffer: commandBuffer,
		state:         StateInitial,
		layouts:       swiss.NewMap[*memory.Image, driver.ImageLayout](4),
		previous:      swiss.NewMap[*memory.Image, driver.ImageLayout](4),
	}, nil
}

func (b *Buffer) State() State { return b.state }

func (b *Buffer) DriverCommandBuffer() driver.CommandBuffer { return b.commandBuffer }

func (b *Buffer) requireState(state State, operation string) error {
	if b.state != state {
		return errors.Wrapf(crucible.ErrInvalidState, "%s requires a command buffer in state %s, but it is %s", operation, state, b.state)
	}
	return nil
}

// Begin starts recording. A buffer that was ended but not submitted may be begun again, which
// discards what it recorded.
func (b *Buffer) Begin() error {
	if b.state == StateRecording || b.state == StateSubmitted {
		return errors.Wrapf(crucible.ErrInvalidState, "cannot begin a command buffer in state %s", b.state)
	}

	b.discard()

	err := b.commandBuffer.Begin()
	if err != nil {
		return err
	}

	b.state = StateRecording
	return nil
}

// discard restores the layout every transitioned image had before this recording and returns the
// buffer to StateInitial
func (b *Buffer) discard() {
	b.previous.Iter(func(image *memory.Image, layout driver.ImageLayout) bool {
		b.logger.Debug("Buffer::discard",
			slog.String("from", image.Layout().String()),
			slog.String("to", layout.String()))

		image.SetLayout(layout)
		return false
	})

	b.previous.Clear()
	b.layouts.Clear()
	b.state = StateInitial
}

func (b *Buffer) End() error {
	err := b.requireState(StateRecording, "End")
	if err != nil {
		return err
	}

	err = b.commandBuffer.End()
	if err != nil {
		return err
	}

	b.state = StateExecutable
	return nil
}

// Submit hands an executable buffer to the device and blocks until the device is idle. If the
// device rejects it, the recording is discarded and the buffer returns to StateInitial.
func (b *Buffer) Submit(device driver.ComputeDevice) error {
	err := b.requireState(StateExecutable, "Submit")
	if err != nil {
		return err
	}

	b.logger.Debug("Buffer::Submit")

	err = device.Submit(b.commandBuffer)
	if err != nil {
		b.discard()
		return err
	}

	b.previous.Clear()
	b.state = StateSubmitted
	return nil
}

// Run records node into the buffer
func (b *Buffer) Run(node Recordable) error {
	err := b.requireState(StateRecording, "Run")
	if err != nil {
		return err
	}

	return node.Record(b)
}

// Dispatch binds pipeline, pushes pushConstants if there are any and dispatches grid workgroups
func (b *Buffer) Dispatch(pipeline driver.Pipeline, pushConstants []byte, grid [3]int) error {
	err := b.requireState(StateRecording, "Dispatch")
	if err != nil {
		return err
	}

	b.commandBuffer.BindPipeline(pipeline)
	if len(pushConstants) > 0 {
		b.commandBuffer.PushConstants(pipeline, pushConstants)
	}
	b.commandBuffer.Dispatch(grid[0], grid[1], grid[2])
	return nil
}

// CopyBuffer copies all of src to the start of dst. It fails with crucible.ErrBufferCopy, recording
// nothing, when dst is smaller than src.
func (b *Buffer) CopyBuffer(src, dst *memory.Buffer) error {
	err := b.requireState(StateRecording, "CopyBuffer")
	if err != nil {
		return err
	}

	if dst.Size() < src.Size() {
		return errors.Wrapf(crucible.ErrBufferCopy, "destination size must be greater or equal than source: got %d, expected %d",
			dst.Size(), src.Size())
	}

	b.commandBuffer.CopyBuffer(src.DriverBuffer(), dst.DriverBuffer(), src.Size())
	return nil
}

// CopyBufferToImage copies tightly packed texels from the start of src into all of dst, which is
// used in its current layout
func (b *Buffer) CopyBufferToImage(src *memory.Buffer, dst *memory.Image) error {
	err := b.requireState(StateRecording, "CopyBufferToImage")
	if err != nil {
		return err
	}

	b.commandBuffer.CopyBufferToImage(src.DriverBuffer(), dst.DriverImage(), dst.Layout(), dst.Extent())
	return nil
}

func (b *Buffer) CopyImageToBuffer(src *memory.Image, dst *memory.Buffer) error {
	err := b.requireState(StateRecording, "CopyImageToBuffer")
	if err != nil {
		return err
	}

	b.commandBuffer.CopyImageToBuffer(src.DriverImage(), src.Layout(), dst.DriverBuffer(), src.Extent())
	return nil
}

// CopyImageToImage copies src into dst using both images' current layouts. The images must have
// the same extent.
func (b *Buffer) CopyImageToImage(src, dst *memory.Image) error {
	err := b.requireState(StateRecording, "CopyImageToImage")
	if err != nil {
		return err
	}

	b.commandBuffer.CopyImage(src.DriverImage(), src.Layout(), dst.DriverImage(), dst.Layout(), src.Extent())
	return nil
}

// ChangeImageLayout records a transition of image to layout and updates the image's tracked
// layout right away
func (b *Buffer) ChangeImageLayout(image *memory.Image, layout driver.ImageLayout) error {
	err := b.requireState(StateRecording, "ChangeImageLayout")
	if err != nil {
		return err
	}

	b.logger.Debug("Buffer::ChangeImageLayout",
		slog.String("from", image.Layout().String()),
		slog.String("to", layout.String()))

	if !b.previous.Has(image) {
		b.previous.Put(image, image.Layout())
	}

	b.commandBuffer.ImageBarrier(image.DriverImage(), image.Layout(), layout)
	image.SetLayout(layout)
	b.layouts.Put(image, layout)
	return nil
}

func (b *Buffer) ChangeImageViewLayout(view *memory.ImageView, layout driver.ImageLayout) error {
	return b.ChangeImageLayout(view.Image(), layout)
}

// LayoutOf returns the layout image will be in once this buffer has executed, if the buffer
// records a transition for it
func (b *Buffer) LayoutOf(image *memory.Image) (driver.ImageLayout, bool) {
	return b.layouts.Get(image)
}

// MemoryBarrier makes shader writes recorded before the barrier visible to shader reads recorded
// after it
func (b *Buffer) MemoryBarrier() error {
	err := b.requireState(StateRecording, "MemoryBarrier")
	if err != nil {
		return err
	}

	b.commandBuffer.MemoryBarrier()
	return nil
}

// ClearImage sets every texel of image to zero. The image must be in a layout that accepts
// transfer writes, General or TransferDstOptimal.
func (b *Buffer) ClearImage(image *memory.Image) error {
	err := b.requireState(StateRecording, "ClearImage")
	if err != nil {
		return err
	}

	b.commandBuffer.ClearColorImage(image.DriverImage(), image.Layout(), [4]float32{})
	return nil
}

// DurationStart resets duration and records its start timestamp
func (b *Buffer) DurationStart(duration *Duration) error {
	err := b.requireState(StateRecording, "DurationStart")
	if err != nil {
		return err
	}

	b.commandBuffer.ResetQueryPool(duration.queryPool, 0, 2)
	b.commandBuffer.WriteTimestamp(duration.queryPool, startQuery)
	return nil
}

func (b *Buffer) DurationEnd(duration *Duration) error {
	err := b.requireState(StateRecording, "DurationEnd")
	if err != nil {
		return err
	}

	b.commandBuffer.WriteTimestamp(duration.queryPool, endQuery)
	return nil
}

// Destroy frees the driver command buffer, discarding a recording that was not submitted
func (b *Buffer) Destroy() {
	if b.state == StateRecording || b.state == StateExecutable {
		b.discard()
	}
	b.commandBuffer.Free()
}
