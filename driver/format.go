package driver

import "fmt"

// Format is a texel format. Values match VkFormat; only the single-plane integer and float
// formats used by compute images are named here.
type Format int32

const (
	FormatUndefined Format = 0

	FormatR8Uint       Format = 13
	FormatR8Sint       Format = 14
	FormatR8G8Uint     Format = 20
	FormatR8G8Sint     Format = 21
	FormatR8G8B8Uint   Format = 27
	FormatR8G8B8Sint   Format = 28
	FormatR8G8B8A8Uint Format = 41
	FormatR8G8B8A8Sint Format = 42

	FormatR16Uint            Format = 74
	FormatR16Sint            Format = 75
	FormatR16Sfloat          Format = 76
	FormatR16G16Uint         Format = 81
	FormatR16G16Sint         Format = 82
	FormatR16G16Sfloat       Format = 83
	FormatR16G16B16Uint      Format = 88
	FormatR16G16B16Sint      Format = 89
	FormatR16G16B16Sfloat    Format = 90
	FormatR16G16B16A16Uint   Format = 95
	FormatR16G16B16A16Sint   Format = 96
	FormatR16G16B16A16Sfloat Format = 97

	FormatR32Uint            Format = 98
	FormatR32Sint            Format = 99
	FormatR32Sfloat          Format = 100
	FormatR32G32Uint         Format = 101
	FormatR32G32Sint         Format = 102
	FormatR32G32Sfloat       Format = 103
	FormatR32G32B32Uint      Format = 104
	FormatR32G32B32Sint      Format = 105
	FormatR32G32B32Sfloat    Format = 106
	FormatR32G32B32A32Uint   Format = 107
	FormatR32G32B32A32Sint   Format = 108
	FormatR32G32B32A32Sfloat Format = 109

	FormatR64Uint            Format = 110
	FormatR64Sint            Format = 111
	FormatR64Sfloat          Format = 112
	FormatR64G64Uint         Format = 113
	FormatR64G64Sint         Format = 114
	FormatR64G64Sfloat       Format = 115
	FormatR64G64B64Uint      Format = 116
	FormatR64G64B64Sint      Format = 117
	FormatR64G64B64Sfloat    Format = 118
	FormatR64G64B64A64Uint   Format = 119
	FormatR64G64B64A64Sint   Format = 120
	FormatR64G64B64A64Sfloat Format = 121
)

var formatMapping = map[Format]string{
	FormatUndefined: "Undefined",

	FormatR8Uint:       "R8Uint",
	FormatR8Sint:       "R8Sint",
	FormatR8G8Uint:     "R8G8Uint",
	FormatR8G8Sint:     "R8G8Sint",
	FormatR8G8B8Uint:   "R8G8B8Uint",
	FormatR8G8B8Sint:   "R8G8B8Sint",
	FormatR8G8B8A8Uint: "R8G8B8A8Uint",
	FormatR8G8B8A8Sint: "R8G8B8A8Sint",

	FormatR16Uint:            "R16Uint",
	FormatR16Sint:            "R16Sint",
	FormatR16Sfloat:          "R16Sfloat",
	FormatR16G16Uint:         "R16G16Uint",
	FormatR16G16Sint:         "R16G16Sint",
	FormatR16G16Sfloat:       "R16G16Sfloat",
	FormatR16G16B16Uint:      "R16G16B16Uint",
	FormatR16G16B16Sint:      "R16G16B16Sint",
	FormatR16G16B16Sfloat:    "R16G16B16Sfloat",
	FormatR16G16B16A16Uint:   "R16G16B16A16Uint",
	FormatR16G16B16A16Sint:   "R16G16B16A16Sint",
	FormatR16G16B16A16Sfloat: "R16G16B16A16Sfloat",

	FormatR32Uint:            "R32Uint",
	FormatR32Sint:            "R32Sint",
	FormatR32Sfloat:          "R32Sfloat",
	FormatR32G32Uint:         "R32G32Uint",
	FormatR32G32Sint:         "R32G32Sint",
	FormatR32G32Sfloat:       "R32G32Sfloat",
	FormatR32G32B32Uint:      "R32G32B32Uint",
	FormatR32G32B32Sint:      "R32G32B32Sint",
	FormatR32G32B32Sfloat:    "R32G32B32Sfloat",
	FormatR32G32B32A32Uint:   "R32G32B32A32Uint",
	FormatR32G32B32A32Sint:   "R32G32B32A32Sint",
	FormatR32G32B32A32Sfloat: "R32G32B32A32Sfloat",

	FormatR64Uint:            "R64Uint",
	FormatR64Sint:            "R64Sint",
	FormatR64Sfloat:          "R64Sfloat",
	FormatR64G64Uint:         "R64G64Uint",
	FormatR64G64Sint:         "R64G64Sint",
	FormatR64G64Sfloat:       "R64G64Sfloat",
	FormatR64G64B64Uint:      "R64G64B64Uint",
	FormatR64G64B64Sint:      "R64G64B64Sint",
	FormatR64G64B64Sfloat:    "R64G64B64Sfloat",
	FormatR64G64B64A64Uint:   "R64G64B64A64Uint",
	FormatR64G64B64A64Sint:   "R64G64B64A64Sint",
	FormatR64G64B64A64Sfloat: "R64G64B64A64Sfloat",
}

func (f Format) String() string {
	str, ok := formatMapping[f]
	if !ok {
		return fmt.Sprintf("Format(%d)", int32(f))
	}
	return str
}
