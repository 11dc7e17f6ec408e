package memory

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/crucible"
)

// ChannelType is the scalar type of each channel of an image texel
type ChannelType int32

const (
	ChannelTypeUint8 ChannelType = iota
	ChannelTypeInt8
	ChannelTypeUint16
	ChannelTypeInt16
	ChannelTypeFloat16
	ChannelTypeUint32
	ChannelTypeInt32
	ChannelTypeFloat32
	ChannelTypeUint64
	ChannelTypeInt64
	ChannelTypeFloat64
)

var channelTypeMapping = map[ChannelType]string{
	ChannelTypeUint8:   "Uint8",
	ChannelTypeInt8:    "Int8",
	ChannelTypeUint16:  "Uint16",
	ChannelTypeInt16:   "Int16",
	ChannelTypeFloat16: "Float16",
	ChannelTypeUint32:  "Uint32",
	ChannelTypeInt32:   "Int32",
	ChannelTypeFloat32: "Float32",
	ChannelTypeUint64:  "Uint64",
	ChannelTypeInt64:   "Int64",
	ChannelTypeFloat64: "Float64",
}

func (t ChannelType) String() string {
	str, ok := channelTypeMapping[t]
	if !ok {
		return fmt.Sprintf("ChannelType(%d)", int32(t))
	}
	return str
}

// Size returns the size in bytes of one channel of this type, or 0 for an unknown type
func (t ChannelType) Size() int {
	switch t {
	case ChannelTypeUint8, ChannelTypeInt8:
		return 1
	case ChannelTypeUint16, ChannelTypeInt16, ChannelTypeFloat16:
		return 2
	case ChannelTypeUint32, ChannelTypeInt32, ChannelTypeFloat32:
		return 4
	case ChannelTypeUint64, ChannelTypeInt64, ChannelTypeFloat64:
		return 8
	}

	return 0
}

// ParseChannelType returns the channel type with the provided name, as printed by String
func ParseChannelType(str string) (ChannelType, error) {
	for channelType, name := range channelTypeMapping {
		if name == str {
			return channelType, nil
		}
	}

	return 0, errors.Wrapf(crucible.ErrEnumConversionFailed, "unknown channel type %q", str)
}
