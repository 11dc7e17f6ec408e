package vulkan

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/crucible"
	"github.com/vkngwrapper/crucible/driver"
)

// queueFamilyIgnored is VK_QUEUE_FAMILY_IGNORED once converted to uint32
const queueFamilyIgnored = -1

var colorSubresourceRange = core1_0.ImageSubresourceRange{
	AspectMask: core1_0.ImageAspectColor,
	LevelCount: 1,
	LayerCount: 1,
}

var colorSubresourceLayers = core1_0.ImageSubresourceLayers{
	AspectMask: core1_0.ImageAspectColor,
	LayerCount: 1,
}

// CommandBuffer records into a vulkan command buffer. Recording methods do not return errors: the
// first failure is kept and returned by End, and later commands are dropped.
type CommandBuffer struct {
	commandBuffer core1_0.CommandBuffer
	recordErr     error
}

func (c *CommandBuffer) VulkanCommandBuffer() core1_0.CommandBuffer { return c.commandBuffer }

func (c *CommandBuffer) Begin() error {
	c.recordErr = nil

	_, err := c.commandBuffer.Begin(core1_0.CommandBufferBeginInfo{
		Flags: core1_0.CommandBufferUsageOneTimeSubmit,
	})
	return err
}

func (c *CommandBuffer) End() error {
	if c.recordErr != nil {
		return errors.Wrap(c.recordErr, "failed to record the command buffer")
	}

	_, err := c.commandBuffer.End()
	return err
}

func (c *CommandBuffer) fail(err error) {
	if c.recordErr == nil {
		c.recordErr = err
	}
}

func (c *CommandBuffer) recording() bool {
	return c.recordErr == nil
}

func (c *CommandBuffer) pipeline(pipeline driver.Pipeline) *Pipeline {
	vkPipeline, ok := pipeline.(*Pipeline)
	if !ok {
		c.fail(errors.Wrapf(crucible.ErrInvalidArgument, "pipeline of type %T was not created by a vulkan.ComputeDevice", pipeline))
		return nil
	}
	return vkPipeline
}

func (c *CommandBuffer) buffer(buffer driver.Buffer) core1_0.Buffer {
	vkBuffer, ok := buffer.(*Buffer)
	if !ok {
		c.fail(errors.Wrapf(crucible.ErrInvalidArgument, "buffer of type %T was not created by a vulkan.ResourceDevice", buffer))
		return nil
	}
	return vkBuffer.buffer
}

func (c *CommandBuffer) image(image driver.Image) core1_0.Image {
	vkImage, ok := image.(*Image)
	if !ok {
		c.fail(errors.Wrapf(crucible.ErrInvalidArgument, "image of type %T was not created by a vulkan.ResourceDevice", image))
		return nil
	}
	return vkImage.image
}

func (c *CommandBuffer) queryPool(pool driver.QueryPool) core1_0.QueryPool {
	vkPool, ok := pool.(*QueryPool)
	if !ok {
		c.fail(errors.Wrapf(crucible.ErrInvalidArgument, "query pool of type %T was not created by a vulkan.ComputeDevice", pool))
		return nil
	}
	return vkPool.queryPool
}

func extent(e driver.Extent3D) core1_0.Extent3D {
	return core1_0.Extent3D{Width: e.Width, Height: e.Height, Depth: e.Depth}
}

// BindPipeline binds the compute pipeline and its descriptor set
func (c *CommandBuffer) BindPipeline(pipeline driver.Pipeline) {
	vkPipeline := c.pipeline(pipeline)
	if !c.recording() {
		return
	}

	c.commandBuffer.CmdBindPipeline(core1_0.PipelineBindPointCompute, vkPipeline.pipeline)
	if vkPipeline.descriptorSet != nil {
		c.commandBuffer.CmdBindDescriptorSets(core1_0.PipelineBindPointCompute, vkPipeline.layout, 0,
			[]core1_0.DescriptorSet{vkPipeline.descriptorSet}, nil)
	}
}

func (c *CommandBuffer) PushConstants(pipeline driver.Pipeline, data []byte) {
	vkPipeline := c.pipeline(pipeline)
	if !c.recording() {
		return
	}

	c.commandBuffer.CmdPushConstants(vkPipeline.layout, core1_0.StageCompute, 0, data)
}

func (c *CommandBuffer) Dispatch(x, y, z int) {
	if !c.recording() {
		return
	}

	c.commandBuffer.CmdDispatch(x, y, z)
}

func (c *CommandBuffer) CopyBuffer(src, dst driver.Buffer, size int) {
	vkSrc, vkDst := c.buffer(src), c.buffer(dst)
	if !c.recording() {
		return
	}

	c.fail(c.commandBuffer.CmdCopyBuffer(vkSrc, vkDst, []core1_0.BufferCopy{{Size: size}}))
}

func (c *CommandBuffer) CopyBufferToImage(src driver.Buffer, dst driver.Image, dstLayout driver.ImageLayout, imageExtent driver.Extent3D) {
	vkSrc, vkDst := c.buffer(src), c.image(dst)
	if !c.recording() {
		return
	}

	c.fail(c.commandBuffer.CmdCopyBufferToImage(vkSrc, vkDst, core1_0.ImageLayout(dstLayout), []core1_0.BufferImageCopy{
		{ImageSubresource: colorSubresourceLayers, ImageExtent: extent(imageExtent)},
	}))
}

func (c *CommandBuffer) CopyImageToBuffer(src driver.Image, srcLayout driver.ImageLayout, dst driver.Buffer, imageExtent driver.Extent3D) {
	vkSrc, vkDst := c.image(src), c.buffer(dst)
	if !c.recording() {
		return
	}

	c.fail(c.commandBuffer.CmdCopyImageToBuffer(vkSrc, core1_0.ImageLayout(srcLayout), vkDst, []core1_0.BufferImageCopy{
		{ImageSubresource: colorSubresourceLayers, ImageExtent: extent(imageExtent)},
	}))
}

func (c *CommandBuffer) CopyImage(src driver.Image, srcLayout driver.ImageLayout, dst driver.Image, dstLayout driver.ImageLayout, imageExtent driver.Extent3D) {
	vkSrc, vkDst := c.image(src), c.image(dst)
	if !c.recording() {
		return
	}

	c.fail(c.commandBuffer.CmdCopyImage(vkSrc, core1_0.ImageLayout(srcLayout), vkDst, core1_0.ImageLayout(dstLayout), []core1_0.ImageCopy{
		{
			SrcSubresource: colorSubresourceLayers,
			DstSubresource: colorSubresourceLayers,
			Extent:         extent(imageExtent),
		},
	}))
}

func (c *CommandBuffer) ClearColorImage(image driver.Image, layout driver.ImageLayout, color [4]float32) {
	vkImage := c.image(image)
	if !c.recording() {
		return
	}

	clearColor := core1_0.ClearValueFloat(color)
	c.commandBuffer.CmdClearColorImage(vkImage, core1_0.ImageLayout(layout), &clearColor,
		[]core1_0.ImageSubresourceRange{colorSubresourceRange})
}

// ImageBarrier transitions image between layouts, ordering it against all earlier and later
// commands
func (c *CommandBuffer) ImageBarrier(image driver.Image, oldLayout, newLayout driver.ImageLayout) {
	vkImage := c.image(image)
	if !c.recording() {
		return
	}

	c.fail(c.commandBuffer.CmdPipelineBarrier(core1_0.PipelineStageAllCommands, core1_0.PipelineStageAllCommands, 0,
		nil, nil, []core1_0.ImageMemoryBarrier{
			{
				SrcAccessMask:       core1_0.AccessMemoryRead | core1_0.AccessMemoryWrite,
				DstAccessMask:       core1_0.AccessMemoryRead | core1_0.AccessMemoryWrite,
				OldLayout:           core1_0.ImageLayout(oldLayout),
				NewLayout:           core1_0.ImageLayout(newLayout),
				SrcQueueFamilyIndex: queueFamilyIgnored,
				DstQueueFamilyIndex: queueFamilyIgnored,
				Image:               vkImage,
				SubresourceRange:    colorSubresourceRange,
			},
		}))
}

// MemoryBarrier makes shader writes of earlier dispatches visible to shader reads of later ones
func (c *CommandBuffer) MemoryBarrier() {
	if !c.recording() {
		return
	}

	c.fail(c.commandBuffer.CmdPipelineBarrier(core1_0.PipelineStageComputeShader, core1_0.PipelineStageComputeShader, 0,
		[]core1_0.MemoryBarrier{
			{
				SrcAccessMask: core1_0.AccessShaderWrite,
				DstAccessMask: core1_0.AccessShaderRead,
			},
		}, nil, nil))
}

func (c *CommandBuffer) ResetQueryPool(pool driver.QueryPool, firstQuery, queryCount int) {
	vkPool := c.queryPool(pool)
	if !c.recording() {
		return
	}

	c.commandBuffer.CmdResetQueryPool(vkPool, firstQuery, queryCount)
}

func (c *CommandBuffer) WriteTimestamp(pool driver.QueryPool, query int) {
	vkPool := c.queryPool(pool)
	if !c.recording() {
		return
	}

	c.commandBuffer.CmdWriteTimestamp(core1_0.PipelineStageBottomOfPipe, vkPool, query)
}

func (c *CommandBuffer) Free() {
	c.commandBuffer.Free()
}
