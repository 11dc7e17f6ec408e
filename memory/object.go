package memory

import "fmt"

// ObjectType identifies the concrete type behind an Object
type ObjectType int32

const (
	ObjectTypeBuffer ObjectType = iota
	ObjectTypeImage
	ObjectTypeImageView
)

var objectTypeMapping = map[ObjectType]string{
	ObjectTypeBuffer:    "Buffer",
	ObjectTypeImage:     "Image",
	ObjectTypeImageView: "ImageView",
}

func (t ObjectType) String() string {
	str, ok := objectTypeMapping[t]
	if !ok {
		return fmt.Sprintf("ObjectType(%d)", int32(t))
	}
	return str
}

// Object is a device resource that can be bound to a node port: a *Buffer, *Image or *ImageView
type Object interface {
	Type() ObjectType
}
