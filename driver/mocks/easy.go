package mock_driver

import (
	"github.com/vkngwrapper/crucible/driver"
	"go.uber.org/mock/gomock"
)

// EasyMockDeviceMemory returns a device memory mock that tolerates being freed. Map and Unmap
// expectations are left to the test.
func EasyMockDeviceMemory(ctrl *gomock.Controller) *MockDeviceMemory {
	memory := NewMockDeviceMemory(ctrl)
	memory.EXPECT().Free().AnyTimes()
	return memory
}

// EasyMockBuffer returns a buffer mock reporting the provided requirements, accepting any memory
// binding and tolerating destruction
func EasyMockBuffer(ctrl *gomock.Controller, requirements driver.MemoryRequirements) *MockBuffer {
	buffer := NewMockBuffer(ctrl)
	buffer.EXPECT().MemoryRequirements().Return(requirements).AnyTimes()
	buffer.EXPECT().BindMemory(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	buffer.EXPECT().Destroy().AnyTimes()
	return buffer
}

// EasyMockImage returns an image mock reporting the provided requirements, accepting any memory
// binding and tolerating destruction
func EasyMockImage(ctrl *gomock.Controller, requirements driver.MemoryRequirements) *MockImage {
	image := NewMockImage(ctrl)
	image.EXPECT().MemoryRequirements().Return(requirements).AnyTimes()
	image.EXPECT().BindMemory(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	image.EXPECT().Destroy().AnyTimes()
	return image
}

func EasyMockImageView(ctrl *gomock.Controller) *MockImageView {
	view := NewMockImageView(ctrl)
	view.EXPECT().Destroy().AnyTimes()
	return view
}

func EasyMockSampler(ctrl *gomock.Controller) *MockSampler {
	sampler := NewMockSampler(ctrl)
	sampler.EXPECT().Destroy().AnyTimes()
	return sampler
}

func EasyMockProgram(ctrl *gomock.Controller) *MockProgram {
	program := NewMockProgram(ctrl)
	program.EXPECT().Destroy().AnyTimes()
	return program
}

// EasyMockCommandBuffer returns a command buffer mock that accepts Begin, End and Free. Recorded
// commands must still be expected by the test.
func EasyMockCommandBuffer(ctrl *gomock.Controller) *MockCommandBuffer {
	commandBuffer := NewMockCommandBuffer(ctrl)
	commandBuffer.EXPECT().Begin().Return(nil).AnyTimes()
	commandBuffer.EXPECT().End().Return(nil).AnyTimes()
	commandBuffer.EXPECT().Free().AnyTimes()
	return commandBuffer
}
