package vulkan

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	vkdriver "github.com/vkngwrapper/core/v2/driver"
	"github.com/vkngwrapper/crucible"
	"github.com/vkngwrapper/crucible/driver"
	"golang.org/x/exp/slog"
)

// Specialization constant ids the local workgroup shape is passed through. Kernels declare
// local_size_x_id = 1, local_size_y_id = 2 and local_size_z_id = 3.
const (
	localShapeXConstant uint32 = 1
	localShapeYConstant uint32 = 2
	localShapeZConstant uint32 = 3
)

// Program wraps a vulkan shader module
type Program struct {
	module    core1_0.ShaderModule
	callbacks *vkdriver.AllocationCallbacks
}

// NewProgram wraps a shader module created elsewhere. The program takes ownership of module.
func NewProgram(module core1_0.ShaderModule, callbacks *vkdriver.AllocationCallbacks) *Program {
	return &Program{module: module, callbacks: callbacks}
}

func (p *Program) VulkanShaderModule() core1_0.ShaderModule { return p.module }

func (p *Program) Destroy() {
	p.module.Destroy(p.callbacks)
}

// Pipeline is a compute pipeline with its layout and the one descriptor set it dispatches with
type Pipeline struct {
	device    core1_0.Device
	callbacks *vkdriver.AllocationCallbacks

	setLayout      core1_0.DescriptorSetLayout
	descriptorPool core1_0.DescriptorPool
	descriptorSet  core1_0.DescriptorSet
	layout         core1_0.PipelineLayout
	pipeline       core1_0.Pipeline

	bindings map[int]driver.DescriptorType
}

func (p *Pipeline) VulkanPipeline() core1_0.Pipeline { return p.pipeline }

// CreateComputePipeline builds the descriptor set layout, descriptor set, pipeline layout and
// pipeline described by info. Anything created before a failure is destroyed.
func (d *ComputeDevice) CreateComputePipeline(info driver.ComputePipelineCreateInfo) (pipeline driver.Pipeline, err error) {
	program, ok := info.Program.(*Program)
	if !ok {
		return nil, errors.Wrapf(crucible.ErrInvalidArgument, "program of type %T was not created by a vulkan.ComputeDevice", info.Program)
	}

	d.logger.Debug("ComputeDevice::CreateComputePipeline",
		slog.String("function", info.FunctionName),
		slog.Int("bindings", len(info.Bindings)),
		slog.Int("pushConstantSize", info.PushConstantSize))

	vkPipeline := &Pipeline{
		device:    d.device,
		callbacks: d.callbacks,
		bindings:  make(map[int]driver.DescriptorType, len(info.Bindings)),
	}
	defer func() {
		if err != nil {
			vkPipeline.Destroy()
		}
	}()

	layoutBindings := make([]core1_0.DescriptorSetLayoutBinding, 0, len(info.Bindings))
	typeCounts := make(map[driver.DescriptorType]int)
	var poolTypes []driver.DescriptorType
	for _, binding := range info.Bindings {
		_, duplicate := vkPipeline.bindings[binding.Binding]
		if duplicate {
			return nil, errors.Wrapf(crucible.ErrInvalidArgument, "binding %d is declared more than once", binding.Binding)
		}
		vkPipeline.bindings[binding.Binding] = binding.Type

		layoutBindings = append(layoutBindings, core1_0.DescriptorSetLayoutBinding{
			Binding:         binding.Binding,
			DescriptorType:  core1_0.DescriptorType(binding.Type),
			DescriptorCount: 1,
			StageFlags:      core1_0.StageCompute,
		})

		if typeCounts[binding.Type] == 0 {
			poolTypes = append(poolTypes, binding.Type)
		}
		typeCounts[binding.Type]++
	}

	vkPipeline.setLayout, _, err = d.device.CreateDescriptorSetLayout(d.callbacks, core1_0.DescriptorSetLayoutCreateInfo{
		Bindings: layoutBindings,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create the descriptor set layout")
	}

	// A descriptor pool needs at least one pool size
	if len(poolTypes) > 0 {
		poolSizes := make([]core1_0.DescriptorPoolSize, 0, len(poolTypes))
		for _, descriptorType := range poolTypes {
			poolSizes = append(poolSizes, core1_0.DescriptorPoolSize{
				Type:            core1_0.DescriptorType(descriptorType),
				DescriptorCount: typeCounts[descriptorType],
			})
		}

		vkPipeline.descriptorPool, _, err = d.device.CreateDescriptorPool(d.callbacks, core1_0.DescriptorPoolCreateInfo{
			MaxSets:   1,
			PoolSizes: poolSizes,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create the descriptor pool")
		}

		var sets []core1_0.DescriptorSet
		sets, _, err = d.device.AllocateDescriptorSets(core1_0.DescriptorSetAllocateInfo{
			DescriptorPool: vkPipeline.descriptorPool,
			SetLayouts:     []core1_0.DescriptorSetLayout{vkPipeline.setLayout},
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to allocate the descriptor set")
		}
		vkPipeline.descriptorSet = sets[0]
	}

	var pushConstantRanges []core1_0.PushConstantRange
	if info.PushConstantSize > 0 {
		pushConstantRanges = []core1_0.PushConstantRange{
			{StageFlags: core1_0.StageCompute, Offset: 0, Size: info.PushConstantSize},
		}
	}

	vkPipeline.layout, _, err = d.device.CreatePipelineLayout(d.callbacks, core1_0.PipelineLayoutCreateInfo{
		SetLayouts:         []core1_0.DescriptorSetLayout{vkPipeline.setLayout},
		PushConstantRanges: pushConstantRanges,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create the pipeline layout")
	}

	pipelines, _, err := d.device.CreateComputePipelines(nil, d.callbacks, []core1_0.ComputePipelineCreateInfo{
		{
			Stage: core1_0.PipelineShaderStageCreateInfo{
				Name:   info.FunctionName,
				Stage:  core1_0.StageCompute,
				Module: program.module,
				SpecializationInfo: map[uint32]any{
					localShapeXConstant: uint32(info.LocalShape[0]),
					localShapeYConstant: uint32(info.LocalShape[1]),
					localShapeZConstant: uint32(info.LocalShape[2]),
				},
			},
			Layout: vkPipeline.layout,
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create the compute pipeline for %q", info.FunctionName)
	}
	vkPipeline.pipeline = pipelines[0]

	return vkPipeline, nil
}

func (p *Pipeline) checkBinding(binding int, allowed ...driver.DescriptorType) (driver.DescriptorType, error) {
	descriptorType, ok := p.bindings[binding]
	if !ok {
		return 0, errors.Wrapf(crucible.ErrInvalidArgument, "the pipeline has no binding %d", binding)
	}

	for _, allowedType := range allowed {
		if descriptorType == allowedType {
			return descriptorType, nil
		}
	}
	return 0, errors.Wrapf(crucible.ErrPortTypeMismatch, "binding %d is a %s binding", binding, descriptorType)
}

func (p *Pipeline) WriteBuffer(binding int, buffer driver.Buffer, size int) error {
	descriptorType, err := p.checkBinding(binding, driver.DescriptorTypeStorageBuffer, driver.DescriptorTypeUniformBuffer)
	if err != nil {
		return err
	}

	vkBuffer, ok := buffer.(*Buffer)
	if !ok {
		return errors.Wrapf(crucible.ErrInvalidArgument, "buffer of type %T was not created by a vulkan.ResourceDevice", buffer)
	}

	return p.device.UpdateDescriptorSets([]core1_0.WriteDescriptorSet{
		{
			DstSet:         p.descriptorSet,
			DstBinding:     binding,
			DescriptorType: core1_0.DescriptorType(descriptorType),
			BufferInfo: []core1_0.DescriptorBufferInfo{
				{Buffer: vkBuffer.buffer, Offset: 0, Range: size},
			},
		},
	}, nil)
}

func (p *Pipeline) WriteImage(binding int, view driver.ImageView, sampler driver.Sampler, layout driver.ImageLayout) error {
	descriptorType, err := p.checkBinding(binding, driver.DescriptorTypeStorageImage, driver.DescriptorTypeCombinedImageSampler)
	if err != nil {
		return err
	}

	vkView, ok := view.(*ImageView)
	if !ok {
		return errors.Wrapf(crucible.ErrInvalidArgument, "image view of type %T was not created by a vulkan.ResourceDevice", view)
	}

	imageInfo := core1_0.DescriptorImageInfo{
		ImageView:   vkView.view,
		ImageLayout: core1_0.ImageLayout(layout),
	}

	if descriptorType == driver.DescriptorTypeCombinedImageSampler {
		vkSampler, ok := sampler.(*Sampler)
		if !ok {
			return errors.Wrapf(crucible.ErrInvalidArgument, "binding %d needs a sampler created by a vulkan.ResourceDevice, got %T", binding, sampler)
		}
		imageInfo.Sampler = vkSampler.sampler
	}

	return p.device.UpdateDescriptorSets([]core1_0.WriteDescriptorSet{
		{
			DstSet:         p.descriptorSet,
			DstBinding:     binding,
			DescriptorType: core1_0.DescriptorType(descriptorType),
			ImageInfo:      []core1_0.DescriptorImageInfo{imageInfo},
		},
	}, nil)
}

// Destroy destroys the pipeline, its layout and its descriptor objects. The descriptor set is
// freed together with its pool.
func (p *Pipeline) Destroy() {
	if p.pipeline != nil {
		p.pipeline.Destroy(p.callbacks)
		p.pipeline = nil
	}
	if p.layout != nil {
		p.layout.Destroy(p.callbacks)
		p.layout = nil
	}
	if p.descriptorPool != nil {
		p.descriptorPool.Destroy(p.callbacks)
		p.descriptorPool = nil
		p.descriptorSet = nil
	}
	if p.setLayout != nil {
		p.setLayout.Destroy(p.callbacks)
		p.setLayout = nil
	}
}

// QueryPool wraps a vulkan timestamp query pool
type QueryPool struct {
	queryPool core1_0.QueryPool
	callbacks *vkdriver.AllocationCallbacks
}

func (q *QueryPool) VulkanQueryPool() core1_0.QueryPool { return q.queryPool }

// Results waits for queryCount timestamps starting at firstQuery and returns them
func (q *QueryPool) Results(firstQuery, queryCount int) ([]uint64, error) {
	const stride = 8

	data := make([]byte, queryCount*stride)
	_, err := q.queryPool.PopulateResults(firstQuery, queryCount, data, stride, core1_0.QueryResult64Bit|core1_0.QueryResultWait)
	if err != nil {
		return nil, err
	}

	results := make([]uint64, queryCount)
	for i := range results {
		results[i] = common.ByteOrder.Uint64(data[i*stride:])
	}
	return results, nil
}

func (q *QueryPool) Destroy() {
	q.queryPool.Destroy(q.callbacks)
}
