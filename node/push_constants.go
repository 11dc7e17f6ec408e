package node

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/crucible"
	"golang.org/x/exp/slices"
)

// PushConstants is the byte block pushed to a compute kernel before each dispatch. Values are
// packed little-endian in the order they are pushed.
type PushConstants struct {
	data []byte
}

func (p *PushConstants) Size() int { return len(p.data) }

// Bytes returns a copy of the packed block
func (p *PushConstants) Bytes() []byte { return slices.Clone(p.data) }

func (p *PushConstants) SetBytes(data []byte) { p.data = slices.Clone(data) }

func (p *PushConstants) Clear() { p.data = nil }

// Push appends value, which must be a fixed-size value or struct as accepted by encoding/binary
func (p *PushConstants) Push(value any) error {
	if binary.Size(value) < 0 {
		return errors.Wrapf(crucible.ErrInvalidArgument, "cannot push value of type %T", value)
	}

	buffer := bytes.NewBuffer(p.data)
	err := binary.Write(buffer, binary.LittleEndian, value)
	if err != nil {
		return errors.Wrapf(crucible.ErrInvalidArgument, "push constants: %v", err)
	}

	p.data = buffer.Bytes()
	return nil
}

// Set replaces the block with value
func (p *PushConstants) Set(value any) error {
	previous := p.data
	p.data = nil

	err := p.Push(value)
	if err != nil {
		p.data = previous
	}
	return err
}

// Get decodes the whole block into out, which must point to a value of exactly the block's size
func (p *PushConstants) Get(out any) error {
	size := binary.Size(out)
	if size != len(p.data) {
		return errors.Wrapf(crucible.ErrInvalidArgument, "push constants hold %d bytes, cannot read them into %T of %d bytes",
			len(p.data), out, size)
	}

	return binary.Read(bytes.NewReader(p.data), binary.LittleEndian, out)
}

func (p *PushConstants) PushFloat32(value float32) {
	p.data = binary.LittleEndian.AppendUint32(p.data, math.Float32bits(value))
}

func (p *PushConstants) PushInt32(value int32) {
	p.data = binary.LittleEndian.AppendUint32(p.data, uint32(value))
}

func (p *PushConstants) SetFloat32(value float32) {
	p.data = nil
	p.PushFloat32(value)
}

func (p *PushConstants) SetInt32(value int32) {
	p.data = nil
	p.PushInt32(value)
}

func (p *PushConstants) Float32() (float32, error) {
	var value float32
	err := p.Get(&value)
	return value, err
}

func (p *PushConstants) Int32() (int32, error) {
	var value int32
	err := p.Get(&value)
	return value, err
}

func (p PushConstants) clone() PushConstants {
	return PushConstants{data: slices.Clone(p.data)}
}
