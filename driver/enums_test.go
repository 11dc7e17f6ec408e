package driver_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/crucible/driver"
)

func TestEnumStrings(t *testing.T) {
	require.Equal(t, "TransferDstOptimal", driver.ImageLayoutTransferDstOptimal.String())
	require.Equal(t, "ImageLayout(1000001002)", driver.ImageLayout(1000001002).String())
	require.Equal(t, "CombinedImageSampler", driver.DescriptorTypeCombinedImageSampler.String())
	require.Equal(t, "R32G32B32A32Sfloat", driver.FormatR32G32B32A32Sfloat.String())
	require.Equal(t, "Format(37)", driver.Format(37).String())
	require.Equal(t, "MirrorClampToEdge", driver.SamplerAddressModeMirrorClampToEdge.String())
	require.Equal(t, "Linear", driver.ImageTilingLinear.String())
}

func TestImageViewType(t *testing.T) {
	require.Equal(t, driver.ImageViewType1D, driver.ImageType1D.ViewType())
	require.Equal(t, driver.ImageViewType2D, driver.ImageType2D.ViewType())
	require.Equal(t, driver.ImageViewType3D, driver.ImageType3D.ViewType())
	require.Equal(t, "3D", driver.ImageViewType3D.String())
}

func TestSupportsMemoryType(t *testing.T) {
	requirements := driver.MemoryRequirements{MemoryTypeBits: 0b1010}

	require.False(t, requirements.SupportsMemoryType(0))
	require.True(t, requirements.SupportsMemoryType(1))
	require.False(t, requirements.SupportsMemoryType(2))
	require.True(t, requirements.SupportsMemoryType(3))
}
